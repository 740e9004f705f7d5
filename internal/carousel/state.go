package carousel

import "time"

// Direction is the sign of the most recent navigation.
// It only selects the transition poses and never affects position.
type Direction int

const (
	Backward Direction = -1
	Neutral  Direction = 0
	Forward  Direction = 1
)

// directionOf returns the sign of n as a Direction.
func directionOf(n int) Direction {
	switch {
	case n > 0:
		return Forward
	case n < 0:
		return Backward
	default:
		return Neutral
	}
}

// String returns a short label used in logs and the journal.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// State is the carousel navigation state.
type State struct {
	// Index is the position of the visible item. Always in [0, len-1] when
	// the collection is non-empty, 0 otherwise.
	Index int
	// Direction of the last accepted navigation.
	Direction Direction
	// Animating is the debounce lock. Only meaningful when the policy has
	// a non-zero Debounce.
	Animating bool
	// LockedUntil is the instant the debounce lock expires.
	LockedUntil time.Time
}

// Initial returns the state a freshly mounted carousel starts in.
func Initial() State {
	return State{Index: 0, Direction: Neutral}
}

// Locked reports whether the debounce lock is still held at instant at.
func (s State) Locked(at time.Time) bool {
	if !s.Animating {
		return false
	}
	if at.IsZero() {
		return true
	}
	return at.Before(s.LockedUntil)
}

// Source identifies which trigger produced a command.
type Source string

const (
	SourceAutoplay Source = "autoplay"
	SourceGesture  Source = "gesture"
	SourceButton   Source = "button"
	SourceDot      Source = "dot"
	SourceKey      Source = "key"
	SourceTimer    Source = "timer"
)

// gated reports whether commands from this source respect the debounce lock.
func (s Source) gated() bool {
	switch s {
	case SourceButton, SourceDot, SourceKey:
		return true
	default:
		return false
	}
}

// CommandKind enumerates the reducer inputs.
type CommandKind int

const (
	// KindPaginate moves one step forward or backward with wraparound.
	KindPaginate CommandKind = iota
	// KindGoTo jumps to an absolute index.
	KindGoTo
	// KindUnlock clears the debounce lock once the cool-down elapsed.
	KindUnlock
)

// Command is a single navigation request.
type Command struct {
	Kind   CommandKind
	Step   int
	Target int
	Source Source
	At     time.Time
}

// Paginate builds a step command. Only the sign of step is used.
func Paginate(step int, source Source, at time.Time) Command {
	return Command{Kind: KindPaginate, Step: step, Source: source, At: at}
}

// GoTo builds a jump command.
func GoTo(target int, source Source, at time.Time) Command {
	return Command{Kind: KindGoTo, Target: target, Source: source, At: at}
}

// Unlock builds the command issued when the debounce cool-down fires.
func Unlock(at time.Time) Command {
	return Command{Kind: KindUnlock, Source: SourceTimer, At: at}
}
