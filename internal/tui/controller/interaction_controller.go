// Package controller provides side-effect orchestration for TUI interactions.
package controller

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/cristianoliveira/showreel/internal/journal"
	"github.com/cristianoliveira/showreel/internal/tui/model"
)

var (
	// ErrNoLink is returned when the current item has no link.
	ErrNoLink = errors.New("project has no link")
	// ErrUnsupportedLink is returned for links that are not http(s) URLs.
	ErrUnsupportedLink = errors.New("unsupported link")
)

// JournalWriter is the slice of the journal the controller writes to.
type JournalWriter interface {
	Record(ctx context.Context, e journal.Entry) (int64, error)
}

// CommandRunner runs an external program to completion.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// DefaultInteractionController is the production controller implementation.
type DefaultInteractionController struct {
	journal JournalWriter
	run     CommandRunner
	goos    string
}

// NewInteractionController builds a controller. A nil writer turns
// RecordNavigation into a no-op; a nil runner uses os/exec.
func NewInteractionController(w JournalWriter, run CommandRunner) *DefaultInteractionController {
	if run == nil {
		run = execRunner
	}
	return &DefaultInteractionController{journal: w, run: run, goos: runtime.GOOS}
}

var _ model.InteractionController = (*DefaultInteractionController)(nil)

// RecordNavigation writes ev to the journal when one is configured.
func (c *DefaultInteractionController) RecordNavigation(ctx context.Context, ev model.NavigationEvent) error {
	if c.journal == nil {
		return nil
	}
	_, err := c.journal.Record(ctx, journal.Entry{
		At:        ev.At,
		From:      ev.From,
		To:        ev.To,
		Direction: int(ev.Direction),
		Source:    string(ev.Source),
		ItemID:    ev.ItemID,
	})
	if err != nil {
		return fmt.Errorf("failed to record navigation: %w", err)
	}
	return nil
}

// OpenLink validates link and runs the platform opener on it.
func (c *DefaultInteractionController) OpenLink(ctx context.Context, link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return ErrNoLink
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedLink, link)
	}

	name, args := openerCommand(c.goos, u.String())
	if err := c.run(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", u.String(), err)
	}
	return nil
}

func openerCommand(goos, link string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{link}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	default:
		return "xdg-open", []string{link}
	}
}

// execRunner discards the child's output so it cannot draw over the TUI.
func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
