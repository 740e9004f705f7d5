package state

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/tui/model"
)

const (
	sideEffectTimeout = 5 * time.Second
	frameInterval     = time.Second / frameRate
)

// autoplayTickMsg is delivered when an armed autoplay countdown elapses.
type autoplayTickMsg struct {
	ticket carousel.Ticket
}

// unlockMsg is delivered when the debounce cool-down elapses.
type unlockMsg struct{}

// frameMsg advances the running transition by one spring step.
type frameMsg struct {
	gen uint64
}

// statusClearMsg hides the status line unless a newer message replaced it.
type statusClearMsg struct {
	gen uint64
}

// journalFailedMsg reports a navigation that could not be recorded.
type journalFailedMsg struct {
	err error
}

// linkOpenedMsg reports a link handed to the system opener.
type linkOpenedMsg struct {
	url string
}

// linkOpenFailedMsg reports a link that could not be opened.
type linkOpenFailedMsg struct {
	err error
}

func autoplayTickAfter(d time.Duration, t carousel.Ticket) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return autoplayTickMsg{ticket: t}
	})
}

func unlockAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return unlockMsg{}
	})
}

func nextFrame(gen uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func statusClearAfter(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{gen: gen}
	})
}

// RecordNavigationCmd returns a command that journals ev.
func RecordNavigationCmd(ctrl model.InteractionController, ev model.NavigationEvent) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()
		if err := ctrl.RecordNavigation(ctx, ev); err != nil {
			return journalFailedMsg{err: err}
		}
		return nil
	}
}

// OpenLinkCmd returns a command that opens url.
func OpenLinkCmd(ctrl model.InteractionController, url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()
		if err := ctrl.OpenLink(ctx, url); err != nil {
			return linkOpenFailedMsg{err: err}
		}
		return linkOpenedMsg{url: url}
	}
}
