package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/config"
)

// Theme values accepted by the theme setting.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings is everything the play command needs to build a carousel.
type Settings struct {
	CatalogPath string
	Options     carousel.Options
	Theme       string
	Journal     bool
	StateDir    string
	// DebounceExplicit is set when debounce_ms was configured, so a
	// variant change keeps it instead of taking the variant default.
	DebounceExplicit bool
}

// SettingsFromConfig builds Settings from the loaded configuration.
// An empty debounce_ms keeps the default of the configured variant.
func SettingsFromConfig() (*Settings, error) {
	variant, err := carousel.ParseVariant(config.Get("variant", string(carousel.VariantDirectional)))
	if err != nil {
		return nil, fmt.Errorf("variant: %w", err)
	}

	opts := carousel.DefaultOptions(variant)
	opts.AutoplayInterval = time.Duration(config.GetInt("autoplay_interval_ms", int(carousel.DefaultAutoplayInterval/time.Millisecond))) * time.Millisecond
	opts.SwipeThreshold = config.GetFloat("swipe_threshold", carousel.DefaultSwipeThreshold)
	opts.PixelsPerCell = config.GetFloat("pixels_per_cell", carousel.DefaultPixelsPerCell)
	raw := config.Get("debounce_ms", "")
	if raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("debounce_ms: %w", err)
		}
		opts.Debounce = time.Duration(ms) * time.Millisecond
	}

	s := &Settings{
		CatalogPath: config.Get("catalog_path", ""),
		Options:     opts,
		Theme:       config.Get("theme", ThemeAuto),
		Journal:     config.GetBool("journal_enabled", false),
		StateDir:    config.Get("state_dir", ""),

		DebounceExplicit: raw != "",
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetVariant switches the carousel variant.
func (s *Settings) SetVariant(v carousel.Variant) {
	s.Options.Variant = v
	if !s.DebounceExplicit {
		s.Options.Debounce = carousel.DefaultOptions(v).Debounce
	}
}

// SetDebounce sets an explicit debounce.
func (s *Settings) SetDebounce(d time.Duration) {
	s.Options.Debounce = d
	s.DebounceExplicit = true
}

// Validate checks the carousel options and the theme.
func (s *Settings) Validate() error {
	if err := s.Options.Validate(); err != nil {
		return err
	}
	switch s.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
		return nil
	default:
		return fmt.Errorf("invalid theme %q: expected auto, dark or light", s.Theme)
	}
}

// hasDarkBackground is replaced in tests.
var hasDarkBackground = lipgloss.HasDarkBackground

// Dark resolves the theme to the dark mode flag. auto asks the terminal.
func (s *Settings) Dark() bool {
	switch s.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return hasDarkBackground()
	}
}
