package main

import (
	"path/filepath"

	"github.com/cristianoliveira/showreel/internal/config"
	"github.com/cristianoliveira/showreel/internal/journal"
	"github.com/cristianoliveira/showreel/internal/tui/app"
	"github.com/cristianoliveira/showreel/internal/version"
)

var appClient = app.NewDefaultClient(nil, nil, nil, nil)

var historyClientImpl = &defaultHistoryClient{}

var versionClientImpl = &defaultVersionClient{}

// defaultHistoryClient opens the journal in the configured state directory.
// The path is resolved on use because configuration loads in PreRun.
type defaultHistoryClient struct{}

func (c *defaultHistoryClient) OpenJournal() (historyStore, error) {
	stateDir := config.Get("state_dir", "")
	if stateDir == "" {
		return nil, app.ErrNoStateDir
	}
	j, err := journal.Open(filepath.Join(stateDir, journal.FileName))
	if err != nil {
		return nil, err
	}
	return j, nil
}

type defaultVersionClient struct{}

func (defaultVersionClient) Version() string     { return version.String() }
func (defaultVersionClient) LongVersion() string { return version.Long() }
