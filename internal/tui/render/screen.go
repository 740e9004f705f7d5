package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/errors"
)

// EmptyText is shown in place of the card when there is nothing to show.
const EmptyText = "No projects to show"

const appTitle = "showreel"

// ScreenState defines the inputs needed to render the whole screen.
type ScreenState struct {
	Layout        Layout
	Palette       Palette
	Item          catalog.Item
	Pose          carousel.Pose
	PixelsPerCell float64
	Index         int
	Total         int
	Status        StatusState
	Help          string
}

// StatusState is the transient message row.
type StatusState struct {
	Text string
	Type errors.MessageType
}

// Screen renders header, posed card, controls, status and footer.
func Screen(s ScreenState) string {
	l := s.Layout
	rows := []string{
		Header(l.Width, s.Index, s.Total, s.Palette),
		"",
	}
	if s.Total == 0 {
		empty := lipgloss.Place(l.Width, l.Card.H, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(s.Palette.Muted).Render(EmptyText))
		rows = append(rows, empty)
	} else {
		rows = append(rows, Posed(PoseState{
			Card:          CardState{Item: s.Item, Palette: s.Palette},
			Pose:          s.Pose,
			PixelsPerCell: s.PixelsPerCell,
			Region:        l.Card,
			CanvasWidth:   l.Width,
		}))
	}
	rows = append(rows,
		"",
		Controls(l, s.Palette),
		Status(s.Status, l.Width, s.Palette),
		s.Help,
	)
	return strings.Join(rows, "\n")
}

// Header renders the title on the left and "current / total" on the right.
func Header(width, index, total int, p Palette) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(appTitle)
	indicator := lipgloss.NewStyle().Foreground(p.Muted).Render(Indicator(index, total))
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(indicator), 1)
	return title + strings.Repeat(" ", gap) + indicator
}

// Indicator returns the 1-based "current / total" label.
func Indicator(index, total int) string {
	if total <= 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", index+1, total)
}

// Controls renders the previous button, one dot per item and the next
// button at the columns Layout assigned them.
func Controls(l Layout, p Palette) string {
	if len(l.Dots) == 0 {
		return ""
	}
	button := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	active := lipgloss.NewStyle().Foreground(p.Accent)
	idle := lipgloss.NewStyle().Foreground(p.Muted)

	var b strings.Builder
	col := 0
	pad := func(to int) {
		if to > col {
			b.WriteString(strings.Repeat(" ", to-col))
			col = to
		}
	}

	pad(l.Prev.X)
	b.WriteString(button.Render(" " + prevGlyph + " "))
	col += l.Prev.W
	for _, r := range l.Dots {
		pad(r.X)
		if r.W == activeDotW {
			b.WriteString(active.Render(strings.Repeat(activeGlyph, r.W)))
		} else {
			b.WriteString(idle.Render(dotGlyph))
		}
		col += r.W
	}
	pad(l.Next.X)
	b.WriteString(button.Render(" " + nextGlyph + " "))
	return b.String()
}

// Status renders the transient message row, or an empty line.
func Status(s StatusState, width int, p Palette) string {
	if s.Text == "" {
		return ""
	}
	style := lipgloss.NewStyle().MaxWidth(width)
	prefix := ""
	switch s.Type {
	case errors.MessageTypeError:
		style = style.Foreground(p.Error)
		prefix = "✗ "
	case errors.MessageTypeWarning:
		style = style.Foreground(p.Warning)
		prefix = "! "
	case errors.MessageTypeSuccess:
		style = style.Foreground(p.Success)
		prefix = "✓ "
	default:
		style = style.Foreground(p.Muted)
	}
	return style.Render(prefix + s.Text)
}
