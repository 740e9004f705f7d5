package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/colors"
	"github.com/cristianoliveira/showreel/internal/journal"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner runs the model full screen with mouse support.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program with the given model. Structured stderr
// logging is paused while the alternate screen is active.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

// SettingsLoader defines the interface for loading settings.
type SettingsLoader interface {
	Load() (*Settings, error)
}

// DefaultSettingsLoader reads settings from the global configuration.
type DefaultSettingsLoader struct{}

// NewDefaultSettingsLoader creates a new DefaultSettingsLoader.
func NewDefaultSettingsLoader() *DefaultSettingsLoader {
	return &DefaultSettingsLoader{}
}

// Load loads settings using SettingsFromConfig.
func (l *DefaultSettingsLoader) Load() (*Settings, error) {
	return SettingsFromConfig()
}

// CatalogLoader loads the items to show.
type CatalogLoader interface {
	// Load reads the catalog at path, or the embedded sample when path is empty.
	Load(path string) (*catalog.Catalog, error)
}

// DefaultCatalogLoader wraps catalog.LoadOrDefault.
type DefaultCatalogLoader struct{}

// NewDefaultCatalogLoader creates a new DefaultCatalogLoader.
func NewDefaultCatalogLoader() *DefaultCatalogLoader {
	return &DefaultCatalogLoader{}
}

// Load implements CatalogLoader.
func (l *DefaultCatalogLoader) Load(path string) (*catalog.Catalog, error) {
	return catalog.LoadOrDefault(path)
}

// JournalFactory opens the navigation journal.
type JournalFactory interface {
	Open(stateDir string) (*journal.Journal, error)
}

// DefaultJournalFactory opens the SQLite journal under the state directory.
type DefaultJournalFactory struct{}

// NewDefaultJournalFactory creates a new DefaultJournalFactory.
func NewDefaultJournalFactory() *DefaultJournalFactory {
	return &DefaultJournalFactory{}
}

// Open implements JournalFactory.
func (f *DefaultJournalFactory) Open(stateDir string) (*journal.Journal, error) {
	return journal.Open(filepath.Join(stateDir, journal.FileName))
}
