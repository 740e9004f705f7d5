package carousel

import "time"

// DefaultAutoplayInterval is the period between unattended advances.
const DefaultAutoplayInterval = 6 * time.Second

// Ticket identifies one arming of the autoplay timer.
// A tick is honoured only if it carries the ticket of the live arming.
type Ticket struct {
	gen uint64
}

// Autoplay tracks the single live countdown of a mounted carousel.
//
// The host schedules one wake-up per Arm and hands the ticket back to Fire
// when it elapses. Re-arming invalidates every earlier ticket, so a host
// that cannot cancel its scheduled wake-ups (tea.Tick, for example) still
// never advances twice for one period.
type Autoplay struct {
	period   time.Duration
	gen      uint64
	armed    bool
	released bool
}

// NewAutoplay returns a timer with the given period. A period <= 0
// disables autoplay.
func NewAutoplay(period time.Duration) *Autoplay {
	return &Autoplay{period: period}
}

// Period returns the configured interval.
func (a *Autoplay) Period() time.Duration {
	return a.period
}

// Enabled reports whether Arm can ever succeed.
func (a *Autoplay) Enabled() bool {
	return a.period > 0 && !a.released
}

// Arm cancels any live countdown and starts a new one.
// It returns false when autoplay is disabled or released.
func (a *Autoplay) Arm() (Ticket, bool) {
	if !a.Enabled() {
		return Ticket{}, false
	}
	a.gen++
	a.armed = true
	return Ticket{gen: a.gen}, true
}

// Cancel stops the live countdown without releasing the timer.
func (a *Autoplay) Cancel() {
	a.armed = false
	a.gen++
}

// Release cancels the countdown permanently. Used on teardown and when the
// collection is empty.
func (a *Autoplay) Release() {
	a.Cancel()
	a.released = true
}

// Released reports whether Release was called.
func (a *Autoplay) Released() bool {
	return a.released
}

// Armed reports whether a countdown is live.
func (a *Autoplay) Armed() bool {
	return a.armed && !a.released
}

// Fire consumes t. It returns true only when t belongs to the live arming,
// in which case the timer is disarmed until the next Arm.
func (a *Autoplay) Fire(t Ticket) bool {
	if !a.Armed() || t.gen != a.gen {
		return false
	}
	a.armed = false
	return true
}
