package carousel

import "time"

// Policy holds the inputs Reduce needs besides state and command.
type Policy struct {
	// Len is the number of items in the collection.
	Len int
	// Debounce is the cool-down applied after every accepted navigation.
	// Zero disables the lock.
	Debounce time.Duration
}

// Reason explains why a command was not applied.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonEmpty      Reason = "empty collection"
	ReasonLocked     Reason = "transition in flight"
	ReasonOutOfRange Reason = "target out of range"
	ReasonNoStep     Reason = "zero step"
	ReasonUnknown    Reason = "unknown command"
)

// Outcome describes what Reduce did with a command.
type Outcome struct {
	// Accepted is true when the command was applied to the state.
	Accepted bool
	// Changed is true when the index moved.
	Changed bool
	From    int
	To      int
	Reason  Reason
}

// Reduce applies c to s and returns the next state.
// It is pure: it never reads the clock and never mutates its inputs.
func Reduce(s State, p Policy, c Command) (State, Outcome) {
	out := Outcome{From: s.Index, To: s.Index}

	if c.Kind == KindUnlock {
		if s.Animating && (c.At.IsZero() || !c.At.Before(s.LockedUntil)) {
			s.Animating = false
			s.LockedUntil = time.Time{}
			out.Accepted = true
		}
		return s, out
	}

	if p.Len <= 0 {
		out.Reason = ReasonEmpty
		return s, out
	}
	if s.Index < 0 || s.Index >= p.Len {
		s.Index = wrap(s.Index, p.Len)
		out.From = s.Index
	}

	// An expired lock is cleared even if its unlock timer has not been
	// delivered yet.
	if s.Animating && !s.Locked(c.At) {
		s.Animating = false
		s.LockedUntil = time.Time{}
	}
	if p.Debounce > 0 && c.Source.gated() && s.Locked(c.At) {
		out.Reason = ReasonLocked
		return s, out
	}

	switch c.Kind {
	case KindPaginate:
		step := int(directionOf(c.Step))
		if step == 0 {
			out.Reason = ReasonNoStep
			return s, out
		}
		s.Direction = Direction(step)
		s.Index = wrap(s.Index+step, p.Len)
	case KindGoTo:
		if c.Target < 0 || c.Target >= p.Len {
			out.Reason = ReasonOutOfRange
			return s, out
		}
		s.Direction = directionOf(c.Target - s.Index)
		s.Index = c.Target
	default:
		out.Reason = ReasonUnknown
		return s, out
	}

	if p.Debounce > 0 {
		s.Animating = true
		s.LockedUntil = c.At.Add(p.Debounce)
	}

	out.Accepted = true
	out.To = s.Index
	out.Changed = out.To != out.From
	return s, out
}

// wrap maps i into [0, n) with wraparound in both directions.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
