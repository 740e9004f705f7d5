// Package state provides the bubbletea model of the carousel.
package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/errors"
	"github.com/cristianoliveira/showreel/internal/logging"
	"github.com/cristianoliveira/showreel/internal/tui/model"
	"github.com/cristianoliveira/showreel/internal/tui/render"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
)

// Config holds the dependencies of a Model.
type Config struct {
	Catalog *catalog.Catalog
	Options carousel.Options
	Dark    bool
	// Controller runs journal writes and link opening. Nil disables both.
	Controller model.InteractionController
	Logger     logging.Logger
	// Now is the clock used to stamp commands. Defaults to time.Now.
	Now func() time.Time
}

// Model represents the TUI model for bubbletea.
type Model struct {
	// Carousel state
	items    *catalog.Catalog
	opts     carousel.Options
	policy   carousel.Policy
	strategy carousel.TransitionStrategy
	nav      carousel.State
	autoplay *carousel.Autoplay
	ticket   carousel.Ticket
	drag     *carousel.DragTracker
	anim     animation

	// Presentation
	keys    KeyMap
	help    help.Model
	palette render.Palette
	width   int
	height  int

	// Side effects and status line
	ctrl          model.InteractionController
	journalFailed bool
	errorHandler  *errors.TUIHandler
	status        render.StatusState
	statusGen     uint64
	logger        logging.Logger
	now           func() time.Time
	quitting      bool
}

// NewModel creates a new TUI model.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Options.Validate(); err != nil {
		return nil, err
	}
	items := cfg.Catalog
	if items == nil {
		items = catalog.New("", nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Noop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	m := &Model{
		items:    items,
		opts:     cfg.Options,
		policy:   cfg.Options.Policy(items.Len()),
		strategy: cfg.Options.Strategy(),
		nav:      carousel.Initial(),
		autoplay: carousel.NewAutoplay(cfg.Options.AutoplayInterval),
		drag:     carousel.NewDragTracker(cfg.Options.PixelsPerCell, carousel.DefaultVelocityWindow),
		anim:     newAnimation(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		palette:  render.PaletteFor(cfg.Dark),
		ctrl:     cfg.Controller,
		logger:   logger.With("component", "carousel", "variant", cfg.Options.Variant),
		now:      now,
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.status = render.StatusState{Text: msg.Text, Type: msg.Type}
		m.statusGen++
	}).WithClock(now)

	if items.Len() == 0 {
		m.autoplay.Release()
	}
	return m, nil
}

// Init arms the autoplay countdown.
func (m *Model) Init() tea.Cmd {
	return m.armAutoplay()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m, m.handleMouseMsg(msg)
	case autoplayTickMsg:
		return m, m.handleAutoplayTick(msg)
	case unlockMsg:
		return m, m.dispatch(carousel.Unlock(m.now()))
	case frameMsg:
		return m, m.handleFrame(msg)
	case statusClearMsg:
		if msg.gen == m.statusGen {
			m.status = render.StatusState{}
		}
		return m, nil
	case journalFailedMsg:
		return m, m.handleJournalFailed(msg)
	case linkOpenedMsg:
		return m, m.notify(errors.MessageTypeSuccess, "Opened "+msg.url)
	case linkOpenFailedMsg:
		m.logger.Warn("open link failed", "error", msg.err)
		return m, m.notify(errors.MessageTypeError, msg.err.Error())
	}
	return m, nil
}

// View renders the carousel.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	helpView := m.help.View(m.keys)
	index, pose := m.anim.frame(m.nav.Index)
	if m.drag.Active() && !m.anim.running() {
		pose.Offset = m.drag.Offset()
	}
	item, _ := m.items.At(index)

	return render.Screen(render.ScreenState{
		Layout:        m.layoutFor(helpView),
		Palette:       m.palette,
		Item:          item,
		Pose:          pose,
		PixelsPerCell: m.opts.PixelsPerCell,
		Index:         m.nav.Index,
		Total:         m.items.Len(),
		Status:        m.status,
		Help:          helpView,
	})
}

// Index returns the current position.
func (m *Model) Index() int {
	return m.nav.Index
}

// Release stops the autoplay timer and any running transition. It is safe
// to call more than once and is called on every exit path.
func (m *Model) Release() {
	m.autoplay.Release()
	m.anim.stop()
	m.drag.Cancel()
}

func (m *Model) quit() tea.Cmd {
	m.Release()
	m.quitting = true
	return tea.Quit
}

func (m *Model) layout() render.Layout {
	return m.layoutFor(m.help.View(m.keys))
}

func (m *Model) layoutFor(helpView string) render.Layout {
	width, height := m.width, m.height
	if width == 0 {
		width = defaultViewportWidth
	}
	if height == 0 {
		height = defaultViewportHeight
	}
	return render.Compute(render.LayoutSpec{
		Width:      width,
		Height:     height,
		Count:      m.items.Len(),
		Active:     m.nav.Index,
		FooterRows: lipgloss.Height(helpView),
	})
}

// notify shows text on the status line and schedules its removal.
func (m *Model) notify(kind errors.MessageType, text string) tea.Cmd {
	switch kind {
	case errors.MessageTypeError:
		m.errorHandler.Error(text)
	case errors.MessageTypeWarning:
		m.errorHandler.Warning(text)
	case errors.MessageTypeSuccess:
		m.errorHandler.Success(text)
	default:
		m.errorHandler.Info(text)
	}
	return statusClearAfter(m.errorHandler.TTL(), m.statusGen)
}

func (m *Model) handleJournalFailed(msg journalFailedMsg) tea.Cmd {
	m.logger.Error("journal write failed", "error", msg.err)
	if m.journalFailed {
		return nil
	}
	m.journalFailed = true
	return m.notify(errors.MessageTypeWarning, "Navigation journal disabled: "+msg.err.Error())
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if msg.gen != m.anim.gen {
		return nil
	}
	if m.anim.step() {
		return nextFrame(m.anim.gen)
	}
	return nil
}
