// Package render turns carousel state into terminal output.
//
// Every function here is pure: it takes a state struct and returns a
// string, so views can be tested without a running program.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/showreel/internal/catalog"
)

// Palette is the set of colors one theme uses.
type Palette struct {
	Accent    lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	BadgeText lipgloss.Color
	Web       lipgloss.Color
	Health    lipgloss.Color
	Other     lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Success   lipgloss.Color
}

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return Palette{
			Accent:    lipgloss.Color("#34D399"),
			Secondary: lipgloss.Color("#22D3EE"),
			Text:      lipgloss.Color("#E5E7EB"),
			Muted:     lipgloss.Color("#6B7280"),
			Border:    lipgloss.Color("#374151"),
			BadgeText: lipgloss.Color("#0B1120"),
			Web:       lipgloss.Color("#22D3EE"),
			Health:    lipgloss.Color("#34D399"),
			Other:     lipgloss.Color("#A78BFA"),
			Error:     lipgloss.Color("#F87171"),
			Warning:   lipgloss.Color("#FBBF24"),
			Success:   lipgloss.Color("#34D399"),
		}
	}
	return Palette{
		Accent:    lipgloss.Color("#059669"),
		Secondary: lipgloss.Color("#0891B2"),
		Text:      lipgloss.Color("#111827"),
		Muted:     lipgloss.Color("#6B7280"),
		Border:    lipgloss.Color("#D1D5DB"),
		BadgeText: lipgloss.Color("#FFFFFF"),
		Web:       lipgloss.Color("#0891B2"),
		Health:    lipgloss.Color("#059669"),
		Other:     lipgloss.Color("#7C3AED"),
		Error:     lipgloss.Color("#DC2626"),
		Warning:   lipgloss.Color("#D97706"),
		Success:   lipgloss.Color("#059669"),
	}
}

// badgeColor picks the badge background for a category kind.
func (p Palette) badgeColor(kind catalog.CategoryKind) lipgloss.Color {
	switch kind {
	case catalog.KindWeb:
		return p.Web
	case catalog.KindHealth:
		return p.Health
	default:
		return p.Other
	}
}

// badgeIcon mirrors the category icons of the web card.
func badgeIcon(kind catalog.CategoryKind) string {
	switch kind {
	case catalog.KindWeb:
		return "</>"
	case catalog.KindHealth:
		return "♥"
	default:
		return "◆"
	}
}
