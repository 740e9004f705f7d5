package state

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/errors"
	"github.com/cristianoliveira/showreel/internal/tui/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeController struct {
	mu        sync.Mutex
	events    []model.NavigationEvent
	links     []string
	recordErr error
	openErr   error
}

func (f *fakeController) RecordNavigation(_ context.Context, ev model.NavigationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return f.recordErr
}

func (f *fakeController) OpenLink(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links = append(f.links, url)
	return f.openErr
}

func testCatalog(n int) *catalog.Catalog {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{
			ID:       fmt.Sprintf("p%d", i+1),
			Title:    fmt.Sprintf("Project %d", i+1),
			Category: "Web Development",
			Link:     fmt.Sprintf("https://example.com/p%d", i+1),
		}
	}
	return catalog.New("test", items)
}

func newTestModel(t *testing.T, n int, variant carousel.Variant, ctrl model.InteractionController) (*Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: t0}
	m, err := NewModel(Config{
		Catalog:    testCatalog(n),
		Options:    carousel.DefaultOptions(variant),
		Controller: ctrl,
		Now:        clock.Now,
	})
	require.NoError(t, err)
	return m, clock
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(keyMsg(s))
	return cmd
}

func TestNewModelRejectsInvalidOptions(t *testing.T) {
	opts := carousel.DefaultOptions(carousel.VariantDirectional)
	opts.SwipeThreshold = 0

	_, err := NewModel(Config{Catalog: testCatalog(3), Options: opts})
	assert.ErrorIs(t, err, carousel.ErrInvalidOptions)
}

func TestNewModelDefaultsToEmptyCatalog(t *testing.T) {
	m, err := NewModel(Config{Options: carousel.DefaultOptions(carousel.VariantDirectional)})
	require.NoError(t, err)

	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "No projects to show")
}

func TestKeyNavigationWrapsAround(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)

	press(m, "left")
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, carousel.Backward, m.nav.Direction)

	press(m, "right")
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, carousel.Forward, m.nav.Direction)

	press(m, "l")
	press(m, "l")
	assert.Equal(t, 2, m.Index())
	press(m, "h")
	assert.Equal(t, 1, m.Index())
}

func TestJumpKeys(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)

	press(m, "3")
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, carousel.Forward, m.nav.Direction)

	press(m, "g")
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, carousel.Backward, m.nav.Direction)

	press(m, "G")
	assert.Equal(t, 2, m.Index())

	press(m, "9")
	assert.Equal(t, 2, m.Index(), "out of range jump is rejected")
}

func TestGoToCurrentIsIdempotent(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)

	press(m, "1")

	assert.Equal(t, 0, m.Index())
	assert.Equal(t, carousel.Neutral, m.nav.Direction)
	assert.False(t, m.anim.running(), "no visual movement for an idempotent jump")
}

func TestAutoplayTickAdvancesAndRearms(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)
	require.NotNil(t, m.Init())
	first := m.ticket

	_, cmd := m.Update(autoplayTickMsg{ticket: first})

	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.Index())
	assert.True(t, m.autoplay.Armed())
	assert.NotEqual(t, first, m.ticket)
}

func TestManualNavigationInvalidatesPendingTick(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)
	m.Init()
	stale := m.ticket

	press(m, "right")
	require.Equal(t, 1, m.Index())

	_, cmd := m.Update(autoplayTickMsg{ticket: stale})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Index(), "the countdown restarted on manual navigation")

	m.Update(autoplayTickMsg{ticket: m.ticket})
	assert.Equal(t, 2, m.Index())
}

func TestAutoplayKeepsTickingForSingleItem(t *testing.T) {
	m, _ := newTestModel(t, 1, carousel.VariantDirectional, nil)
	m.Init()

	for i := 0; i < 3; i++ {
		prev := m.ticket
		_, cmd := m.Update(autoplayTickMsg{ticket: prev})
		assert.NotNil(t, cmd)
		assert.Equal(t, 0, m.Index())
		assert.True(t, m.autoplay.Armed())
		assert.NotEqual(t, prev, m.ticket)
	}
}

func TestEmptyCatalog(t *testing.T) {
	m, _ := newTestModel(t, 0, carousel.VariantDirectional, nil)

	assert.Nil(t, m.Init())
	assert.True(t, m.autoplay.Released())

	press(m, "right")
	press(m, "3")
	_, cmd := m.Update(autoplayTickMsg{ticket: m.ticket})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Index())
	view := m.View()
	assert.Contains(t, view, "No projects to show")
	assert.Contains(t, view, "0 / 0")
}

func TestCardVariantDebouncesRapidKeys(t *testing.T) {
	m, clock := newTestModel(t, 5, carousel.VariantCard, nil)

	press(m, "right")
	clock.Advance(100 * time.Millisecond)
	press(m, "right")
	assert.Equal(t, 1, m.Index(), "second press inside the cool-down is dropped")

	clock.Advance(200 * time.Millisecond)
	press(m, "right")
	assert.Equal(t, 2, m.Index(), "press after the cool-down is accepted")
}

func TestCardVariantUnlockMessage(t *testing.T) {
	m, clock := newTestModel(t, 5, carousel.VariantCard, nil)

	press(m, "right")
	require.True(t, m.nav.Animating)

	clock.Advance(carousel.DefaultCardDebounce)
	m.Update(unlockMsg{})
	assert.False(t, m.nav.Animating)
	assert.True(t, m.nav.LockedUntil.IsZero())
}

func TestCardVariantDoesNotGateAutoplay(t *testing.T) {
	m, _ := newTestModel(t, 5, carousel.VariantCard, nil)
	m.Init()

	press(m, "right")
	m.Update(autoplayTickMsg{ticket: m.ticket})

	assert.Equal(t, 2, m.Index())
}

func TestDirectionalVariantNeverLocks(t *testing.T) {
	m, _ := newTestModel(t, 5, carousel.VariantDirectional, nil)

	for i := 0; i < 3; i++ {
		press(m, "right")
	}
	assert.Equal(t, 3, m.Index())
}

func cardCentre(m *Model) (int, int) {
	l := m.layout()
	return l.Card.X + l.Card.W/2, l.Card.Y + l.Card.H/2
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestMouseSwipeLeftAdvances(t *testing.T) {
	m, clock := newTestModel(t, 3, carousel.VariantDirectional, nil)
	x, y := cardCentre(m)

	m.Update(mouse(tea.MouseActionPress, x, y))
	clock.Advance(50 * time.Millisecond)
	m.Update(mouse(tea.MouseActionMotion, x-2, y+3))
	assert.Equal(t, -20.0, m.drag.Offset())
	clock.Advance(50 * time.Millisecond)
	m.Update(mouse(tea.MouseActionRelease, x-5, y))

	// -50 px in 100 ms: |offset| * velocity = 50 * -500 < -10000
	assert.Equal(t, 1, m.Index())
	assert.True(t, m.anim.running())
	assert.False(t, m.drag.Active())
}

func TestMouseSwipeRightGoesBack(t *testing.T) {
	m, clock := newTestModel(t, 3, carousel.VariantDirectional, nil)
	x, y := cardCentre(m)

	m.Update(mouse(tea.MouseActionPress, x, y))
	clock.Advance(100 * time.Millisecond)
	m.Update(mouse(tea.MouseActionRelease, x+6, y))

	assert.Equal(t, 2, m.Index())
}

func TestWeakSwipeSpringsBack(t *testing.T) {
	m, clock := newTestModel(t, 3, carousel.VariantDirectional, nil)
	x, y := cardCentre(m)

	m.Update(mouse(tea.MouseActionPress, x, y))
	clock.Advance(200 * time.Millisecond)
	_, cmd := m.Update(mouse(tea.MouseActionRelease, x-1, y))

	assert.Equal(t, 0, m.Index())
	assert.NotNil(t, cmd)
	assert.Equal(t, phaseSettle, m.anim.phase)
}

func TestMouseOutsideCardDoesNotDrag(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)

	m.Update(mouse(tea.MouseActionPress, 0, 0))
	assert.False(t, m.drag.Active())

	m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, m.drag.Active())
}

func TestMouseClicksOnControls(t *testing.T) {
	m, _ := newTestModel(t, 4, carousel.VariantDirectional, nil)

	l := m.layout()
	m.Update(mouse(tea.MouseActionPress, l.Next.X+1, l.Next.Y))
	assert.Equal(t, 1, m.Index())

	l = m.layout()
	m.Update(mouse(tea.MouseActionPress, l.Prev.X, l.Prev.Y))
	assert.Equal(t, 0, m.Index())

	l = m.layout()
	m.Update(mouse(tea.MouseActionPress, l.Dots[3].X, l.Dots[3].Y))
	assert.Equal(t, 3, m.Index())
	assert.Equal(t, carousel.Forward, m.nav.Direction)
}

func TestStaleFramesAreIgnored(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)
	press(m, "right")
	old := m.anim.gen
	press(m, "right")

	_, cmd := m.Update(frameMsg{gen: old})
	assert.Nil(t, cmd)

	_, cmd = m.Update(frameMsg{gen: m.anim.gen})
	assert.NotNil(t, cmd)
}

func TestQuitReleasesTimers(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)
	m.Init()
	live := m.ticket

	cmd := press(m, "q")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.autoplay.Released())
	assert.Empty(t, m.View())

	_, cmd = m.Update(autoplayTickMsg{ticket: live})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Index())
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)
	short := m.layout()

	press(m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.layout().Card.H, short.Card.H, "full help takes more footer rows")

	press(m, "?")
	assert.False(t, m.help.ShowAll)
}

func TestViewShowsCurrentItem(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Project 1")
	assert.Contains(t, view, "1 / 3")
	assert.Contains(t, view, "‹")
	assert.Contains(t, view, "›")
}

func TestNavigationIsRecorded(t *testing.T) {
	ctrl := &fakeController{}
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, ctrl)

	cmd := m.recordNavigation(carousel.GoTo(2, carousel.SourceDot, t0),
		carousel.Outcome{Accepted: true, Changed: true, From: 0, To: 2}, carousel.Forward)
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	require.Len(t, ctrl.events, 1)
	ev := ctrl.events[0]
	assert.Equal(t, 0, ev.From)
	assert.Equal(t, 2, ev.To)
	assert.Equal(t, carousel.Forward, ev.Direction)
	assert.Equal(t, carousel.SourceDot, ev.Source)
	assert.Equal(t, "p3", ev.ItemID)
	assert.True(t, ev.At.Equal(t0))
}

func TestJournalFailureWarnsOnce(t *testing.T) {
	ctrl := &fakeController{recordErr: stderrors.New("disk full")}
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, ctrl)

	msg := RecordNavigationCmd(ctrl, model.NavigationEvent{To: 1})()
	require.IsType(t, journalFailedMsg{}, msg)

	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, errors.MessageTypeWarning, m.status.Type)
	assert.Contains(t, m.status.Text, "disk full")
	gen := m.statusGen

	_, cmd = m.Update(msg)
	assert.Nil(t, cmd)
	assert.Equal(t, gen, m.statusGen)
	assert.Nil(t, m.recordNavigation(carousel.Paginate(1, carousel.SourceKey, t0), carousel.Outcome{To: 1}, carousel.Forward))
}

func TestStatusClearsOnlyForLatestMessage(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)

	m.notify(errors.MessageTypeInfo, "first")
	old := m.statusGen
	m.notify(errors.MessageTypeInfo, "second")

	m.Update(statusClearMsg{gen: old})
	assert.Equal(t, "second", m.status.Text)

	m.Update(statusClearMsg{gen: m.statusGen})
	assert.Empty(t, m.status.Text)
}

func TestOpenLink(t *testing.T) {
	ctrl := &fakeController{}
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, ctrl)

	cmd := press(m, "o")
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, linkOpenedMsg{url: "https://example.com/p1"}, msg)
	assert.Equal(t, []string{"https://example.com/p1"}, ctrl.links)

	m.Update(msg)
	assert.Equal(t, errors.MessageTypeSuccess, m.status.Type)
}

func TestOpenLinkFailureShowsError(t *testing.T) {
	ctrl := &fakeController{openErr: stderrors.New("no opener")}
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, ctrl)

	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, errors.MessageTypeError, m.status.Type)
	assert.Contains(t, m.status.Text, "no opener")
}

func TestOpenLinkWithoutLink(t *testing.T) {
	clock := &fakeClock{now: t0}
	m, err := NewModel(Config{
		Catalog:    catalog.New("test", []catalog.Item{{ID: "a", Title: "Alpha"}}),
		Options:    carousel.DefaultOptions(carousel.VariantDirectional),
		Controller: &fakeController{},
		Now:        clock.Now,
	})
	require.NoError(t, err)

	press(m, "o")
	assert.Equal(t, errors.MessageTypeWarning, m.status.Type)
	assert.Contains(t, m.status.Text, "Alpha")
}

func TestOpenLinkWithoutController(t *testing.T) {
	m, _ := newTestModel(t, 3, carousel.VariantDirectional, nil)

	press(m, "o")
	assert.Equal(t, errors.MessageTypeWarning, m.status.Type)
}
