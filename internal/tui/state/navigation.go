package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/tui/model"
)

// dispatch is the only place navigation state changes. It runs the
// reducer and schedules the consequences of an accepted command: the
// cool-down timer, re-arming autoplay, the transition and the journal
// write.
func (m *Model) dispatch(c carousel.Command) tea.Cmd {
	prev := m.nav
	next, out := carousel.Reduce(m.nav, m.policy, c)
	m.nav = next

	if !out.Accepted {
		if out.Reason != carousel.ReasonNone {
			m.logger.Debug("navigation rejected",
				"source", string(c.Source), "reason", string(out.Reason), "target", c.Target, "step", c.Step)
		}
		return nil
	}
	if c.Kind == carousel.KindUnlock {
		return nil
	}

	m.logger.Debug("navigation",
		"source", string(c.Source), "from", out.From, "to", out.To, "direction", next.Direction.String())

	var cmds []tea.Cmd
	if next.Animating && !next.LockedUntil.Equal(prev.LockedUntil) {
		cmds = append(cmds, unlockAfter(m.policy.Debounce))
	}
	if out.Changed || c.Source == carousel.SourceAutoplay {
		cmds = append(cmds, m.armAutoplay())
	}
	if out.Changed {
		shown, _ := m.anim.frame(out.From)
		m.drag.Cancel()
		if m.anim.start(m.strategy.Describe(next.Direction), shown, out.To) {
			cmds = append(cmds, nextFrame(m.anim.gen))
		}
	}
	cmds = append(cmds, m.recordNavigation(c, out, next.Direction))
	return tea.Batch(cmds...)
}

// armAutoplay starts a fresh countdown, invalidating the previous one.
func (m *Model) armAutoplay() tea.Cmd {
	t, ok := m.autoplay.Arm()
	if !ok {
		return nil
	}
	m.ticket = t
	return autoplayTickAfter(m.autoplay.Period(), t)
}

func (m *Model) handleAutoplayTick(msg autoplayTickMsg) tea.Cmd {
	if !m.autoplay.Fire(msg.ticket) {
		return nil
	}
	cmd := m.dispatch(carousel.Paginate(1, carousel.SourceAutoplay, m.now()))
	if !m.autoplay.Armed() {
		return tea.Batch(cmd, m.armAutoplay())
	}
	return cmd
}

func (m *Model) recordNavigation(c carousel.Command, out carousel.Outcome, dir carousel.Direction) tea.Cmd {
	if m.ctrl == nil || m.journalFailed {
		return nil
	}
	item, _ := m.items.At(out.To)
	return RecordNavigationCmd(m.ctrl, model.NavigationEvent{
		At:        c.At,
		From:      out.From,
		To:        out.To,
		Direction: dir,
		Source:    c.Source,
		ItemID:    item.ID,
	})
}

// handleGesture turns a completed drag into a page turn, or springs the
// card back when the swipe was not confident enough.
func (m *Model) handleGesture(g carousel.GestureSample) tea.Cmd {
	step := carousel.Interpret(g, m.opts.SwipeThreshold)
	m.logger.Debug("gesture",
		"offset", g.Offset, "velocity", g.Velocity, "confidence", g.Confidence(), "step", step)
	if step == 0 {
		if m.anim.settle(g.Offset, m.nav.Index) {
			return nextFrame(m.anim.gen)
		}
		return nil
	}
	return m.dispatch(carousel.Paginate(step, carousel.SourceGesture, m.now()))
}
