package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/catalog"
)

// fadeBelow is the opacity under which a card is drawn faint.
const fadeBelow = 0.6

// CardState defines the inputs needed to render one project card.
type CardState struct {
	Item    catalog.Item
	Width   int
	Height  int
	Palette Palette
	// Faded draws every element in the muted color.
	Faded bool
}

// Card renders an item as a bordered box of exactly Height lines.
func Card(s CardState) string {
	p := s.Palette
	inner := max(s.Width-4, 1)

	text := lipgloss.NewStyle().Foreground(p.Text)
	muted := lipgloss.NewStyle().Foreground(p.Muted)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	chip := lipgloss.NewStyle().Foreground(p.Secondary)
	link := lipgloss.NewStyle().Underline(true).Foreground(p.Accent)
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Background(p.badgeColor(s.Item.Kind())).
		Foreground(p.BadgeText)
	if s.Faded {
		text, title, chip, link = muted, muted, muted, muted
		badge = muted.Padding(0, 1)
	}

	var lines []string
	if s.Item.Category != "" {
		lines = append(lines, badge.Render(badgeIcon(s.Item.Kind())+" "+s.Item.Category), "")
	}
	lines = append(lines, title.Width(inner).Render(s.Item.Title))
	if s.Item.Description != "" {
		lines = append(lines, "", text.Width(inner).Render(s.Item.Description))
	}
	if len(s.Item.Technologies) > 0 {
		chips := make([]string, len(s.Item.Technologies))
		for i, tech := range s.Item.Technologies {
			chips[i] = "[" + tech + "]"
		}
		lines = append(lines, "", chip.Width(inner).Render(strings.Join(chips, " ")))
	}
	if s.Item.Image != "" {
		lines = append(lines, "", muted.Render(ansi.Truncate("▣ "+s.Item.Image, inner, "…")))
	}
	if s.Item.Link != "" {
		lines = append(lines, link.Render(ansi.Truncate("↗ View Project "+s.Item.Link, inner, "…")))
	}

	body := clipLines(strings.Split(strings.Join(lines, "\n"), "\n"), s.Height-2)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Width(max(s.Width-2, 1)).
		Height(max(s.Height-2, 1))
	if !s.Faded {
		border = border.BorderForeground(p.Accent)
	}
	return border.Render(strings.Join(body, "\n"))
}

// clipLines keeps at most n lines, marking the cut with an ellipsis.
func clipLines(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	out[n-1] = "…"
	return out
}

// PoseState places a card inside the card region according to a pose.
type PoseState struct {
	Card          CardState
	Pose          carousel.Pose
	PixelsPerCell float64
	// Region is the card slot; the card may slide out of it horizontally
	// up to CanvasWidth.
	Region      Rect
	CanvasWidth int
}

// Posed renders a card moved, scaled and faded by pose. The result is
// exactly Region.H lines, each CanvasWidth cells wide at most.
func Posed(s PoseState) string {
	ppc := s.PixelsPerCell
	if ppc <= 0 || math.IsNaN(ppc) || math.IsInf(ppc, 0) {
		ppc = carousel.DefaultPixelsPerCell
	}

	scale := s.Pose.Scale
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	card := s.Card
	card.Width = max(int(math.Round(float64(s.Region.W)*scale)), minCardCols/2)
	card.Height = s.Region.H
	card.Faded = card.Faded || s.Pose.Opacity < fadeBelow

	shift := int(math.Round(s.Pose.Offset / ppc))
	dx, dy := 0, 0
	if s.Pose.Axis == carousel.AxisY {
		dy = shift
	} else {
		dx = shift
	}

	x := s.Region.X + (s.Region.W-card.Width)/2 + dx
	return place(strings.Split(Card(card), "\n"), x, dy, s.CanvasWidth, s.Region.H)
}

// place moves lines to column x and row offset dy on a width x height
// canvas, cutting whatever falls outside.
func place(lines []string, x, dy, width, height int) string {
	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		src := row - dy
		if src < 0 || src >= len(lines) {
			out = append(out, "")
			continue
		}
		line := lines[src]
		switch {
		case x >= width:
			line = ""
		case x >= 0:
			line = ansi.Truncate(strings.Repeat(" ", x)+line, width, "")
		default:
			line = ansi.Truncate(ansi.TruncateLeft(line, -x, ""), width, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
