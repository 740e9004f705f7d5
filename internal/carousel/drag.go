package carousel

import "time"

const (
	// DefaultPixelsPerCell approximates the width of one terminal cell.
	DefaultPixelsPerCell = 10.0
	// DefaultVelocityWindow is how far back motion samples count toward the
	// release velocity.
	DefaultVelocityWindow = 100 * time.Millisecond
)

type dragPoint struct {
	x  int
	at time.Time
}

// DragTracker turns horizontal pointer positions, measured in terminal
// cells, into a GestureSample on release. Vertical movement is never
// recorded.
type DragTracker struct {
	pixelsPerCell float64
	window        time.Duration

	active bool
	origin dragPoint
	points []dragPoint
}

// NewDragTracker returns a tracker. Non-positive arguments fall back to the
// defaults.
func NewDragTracker(pixelsPerCell float64, window time.Duration) *DragTracker {
	if pixelsPerCell <= 0 || !isFinite(pixelsPerCell) {
		pixelsPerCell = DefaultPixelsPerCell
	}
	if window <= 0 {
		window = DefaultVelocityWindow
	}
	return &DragTracker{pixelsPerCell: pixelsPerCell, window: window}
}

// Active reports whether a drag is in progress.
func (d *DragTracker) Active() bool {
	return d.active
}

// Press starts a drag at column x.
func (d *DragTracker) Press(x int, at time.Time) {
	d.active = true
	d.origin = dragPoint{x: x, at: at}
	d.points = append(d.points[:0], d.origin)
}

// Move records the pointer at column x. Ignored when no drag is active.
func (d *DragTracker) Move(x int, at time.Time) {
	if !d.active {
		return
	}
	d.points = append(d.points, dragPoint{x: x, at: at})
	d.trim(at)
}

// Offset returns the current horizontal displacement in pixels.
func (d *DragTracker) Offset() float64 {
	if !d.active || len(d.points) == 0 {
		return 0
	}
	last := d.points[len(d.points)-1]
	return float64(last.x-d.origin.x) * d.pixelsPerCell
}

// Release ends the drag at column x and returns the completed sample.
// ok is false when no drag was active.
func (d *DragTracker) Release(x int, at time.Time) (GestureSample, bool) {
	if !d.active {
		return GestureSample{}, false
	}
	d.Move(x, at)
	sample := GestureSample{
		Offset:   d.Offset(),
		Velocity: d.velocity(),
	}
	d.Cancel()
	return sample, true
}

// Cancel drops the drag without producing a sample.
func (d *DragTracker) Cancel() {
	d.active = false
	d.points = d.points[:0]
}

// velocity is the displacement over the trailing window in pixels per
// second. A drag with no elapsed time has zero velocity.
func (d *DragTracker) velocity() float64 {
	if len(d.points) < 2 {
		return 0
	}
	first := d.points[0]
	last := d.points[len(d.points)-1]
	elapsed := last.at.Sub(first.at).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(last.x-first.x) * d.pixelsPerCell / elapsed
}

// trim drops points older than the window, keeping at least one point
// before now so velocity always spans a real interval.
func (d *DragTracker) trim(now time.Time) {
	cut := 0
	for i := 0; i < len(d.points)-1; i++ {
		if now.Sub(d.points[i+1].at) < d.window {
			break
		}
		cut = i + 1
	}
	if cut > 0 {
		d.points = append(d.points[:0], d.points[cut:]...)
	}
}
