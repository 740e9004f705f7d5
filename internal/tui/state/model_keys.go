package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/errors"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		return m, m.dispatch(carousel.Paginate(-1, carousel.SourceKey, now))
	case key.Matches(msg, m.keys.Next):
		return m, m.dispatch(carousel.Paginate(1, carousel.SourceKey, now))
	case key.Matches(msg, m.keys.First):
		return m, m.dispatch(carousel.GoTo(0, carousel.SourceKey, now))
	case key.Matches(msg, m.keys.Last):
		return m, m.dispatch(carousel.GoTo(m.items.Len()-1, carousel.SourceKey, now))
	case key.Matches(msg, m.keys.Jump):
		target := int(msg.String()[0] - '1')
		return m, m.dispatch(carousel.GoTo(target, carousel.SourceKey, now))
	case key.Matches(msg, m.keys.Open):
		return m, m.openCurrentLink()
	}
	return m, nil
}

func (m *Model) openCurrentLink() tea.Cmd {
	item, ok := m.items.At(m.nav.Index)
	if !ok {
		return nil
	}
	if item.Link == "" {
		return m.notify(errors.MessageTypeWarning, "No link for "+item.Title)
	}
	if m.ctrl == nil {
		return m.notify(errors.MessageTypeWarning, "Opening links is not available")
	}
	return OpenLinkCmd(m.ctrl, item.Link)
}
