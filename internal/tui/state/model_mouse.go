package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/showreel/internal/carousel"
)

// handleMouseMsg maps clicks on the controls to navigation and drags on
// the card to gestures. Only the horizontal coordinate of a drag counts.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	now := m.now()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		l := m.layout()
		if l.Prev.Contains(msg.X, msg.Y) {
			return m.dispatch(carousel.Paginate(-1, carousel.SourceButton, now))
		}
		if l.Next.Contains(msg.X, msg.Y) {
			return m.dispatch(carousel.Paginate(1, carousel.SourceButton, now))
		}
		if i, ok := l.DotAt(msg.X, msg.Y); ok {
			return m.dispatch(carousel.GoTo(i, carousel.SourceDot, now))
		}
		if m.items.Len() > 0 && l.Card.Contains(msg.X, msg.Y) {
			m.drag.Press(msg.X, now)
		}
	case tea.MouseActionMotion:
		m.drag.Move(msg.X, now)
	case tea.MouseActionRelease:
		sample, ok := m.drag.Release(msg.X, now)
		if !ok {
			return nil
		}
		return m.handleGesture(sample)
	}
	return nil
}
