// Package app provides TUI application adapters for command wiring.
package app

import (
	stderrors "errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/colors"
	"github.com/cristianoliveira/showreel/internal/errors"
	"github.com/cristianoliveira/showreel/internal/journal"
	"github.com/cristianoliveira/showreel/internal/logging"
	"github.com/cristianoliveira/showreel/internal/tui/controller"
	"github.com/cristianoliveira/showreel/internal/tui/state"
)

// ErrNoStateDir is returned when the journal is enabled without a state directory.
var ErrNoStateDir = stderrors.New("state directory is not configured")

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
	Release()
}

// Client defines dependencies needed by the play command.
type Client interface {
	LoadSettings() (*Settings, error)
	LoadCatalog(path string) (*catalog.Catalog, error)
	CreateModel(settings *Settings, items *catalog.Catalog) (Model, error)
	RunProgram(model Model) error
	Close() error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	programRunner  ProgramRunner
	settingsLoader SettingsLoader
	catalogLoader  CatalogLoader
	journalFactory JournalFactory
	errorHandler   errors.ErrorHandler

	journal *journal.Journal
}

// NewDefaultClient creates a default TUI client adapter. Nil arguments are
// replaced by the default implementations.
func NewDefaultClient(programRunner ProgramRunner, settingsLoader SettingsLoader, catalogLoader CatalogLoader, journalFactory JournalFactory) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	if settingsLoader == nil {
		settingsLoader = NewDefaultSettingsLoader()
	}
	if catalogLoader == nil {
		catalogLoader = NewDefaultCatalogLoader()
	}
	if journalFactory == nil {
		journalFactory = NewDefaultJournalFactory()
	}
	return &DefaultClient{
		programRunner:  programRunner,
		settingsLoader: settingsLoader,
		catalogLoader:  catalogLoader,
		journalFactory: journalFactory,
		errorHandler:   errors.NewDefaultCLIHandler(),
	}
}

// WithErrorHandler replaces where failures are reported. Nil keeps the console.
func (d *DefaultClient) WithErrorHandler(h errors.ErrorHandler) *DefaultClient {
	if h != nil {
		d.errorHandler = h
	}
	return d
}

// LoadSettings loads settings using the injected SettingsLoader.
func (d *DefaultClient) LoadSettings() (*Settings, error) {
	return d.settingsLoader.Load()
}

// LoadCatalog loads the catalog using the injected CatalogLoader.
func (d *DefaultClient) LoadCatalog(path string) (*catalog.Catalog, error) {
	items, err := d.catalogLoader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return items, nil
}

// CreateModel builds the carousel model. A journal that cannot be opened
// is reported and skipped; the carousel still runs.
func (d *DefaultClient) CreateModel(settings *Settings, items *catalog.Catalog) (Model, error) {
	if settings == nil {
		return nil, stderrors.New("settings are required")
	}

	var writer controller.JournalWriter
	if settings.Journal {
		j, err := d.openJournal(settings.StateDir)
		if err != nil {
			d.errorHandler.Warning(fmt.Sprintf("Navigation journal disabled: %v", err))
			colors.StructuredWarn("journal", "open", "disabled", err, "", map[string]any{"state_dir": settings.StateDir})
		} else {
			writer = j
		}
	}

	model, err := state.NewModel(state.Config{
		Catalog:    items,
		Options:    settings.Options,
		Dark:       settings.Dark(),
		Controller: controller.NewInteractionController(writer, nil),
		Logger:     logging.GetGlobal(),
	})
	if err != nil {
		return nil, err
	}
	return model, nil
}

func (d *DefaultClient) openJournal(stateDir string) (*journal.Journal, error) {
	if stateDir == "" {
		return nil, ErrNoStateDir
	}
	if d.journal != nil {
		return d.journal, nil
	}
	j, err := d.journalFactory.Open(stateDir)
	if err != nil {
		return nil, err
	}
	d.journal = j
	return j, nil
}

// RunProgram starts the bubbletea program using the configured ProgramRunner
// and releases the model's timers once it returns.
func (d *DefaultClient) RunProgram(model Model) error {
	err := d.programRunner.Run(model)
	model.Release()
	if err != nil {
		errors.Report(d.errorHandler, "Error running TUI", err)
		return err
	}
	return nil
}

// Close closes the journal if one was opened.
func (d *DefaultClient) Close() error {
	if d.journal == nil {
		return nil
	}
	err := d.journal.Close()
	d.journal = nil
	return err
}
