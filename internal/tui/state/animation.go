package state

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/cristianoliveira/showreel/internal/carousel"
)

const (
	frameRate       = 60
	springStiffness = 300.0
	springDamping   = 30.0
	settleEpsilon   = 0.005
	// maxLegFrames ends a leg that has not converged after two seconds.
	maxLegFrames = 2 * frameRate
)

type phase int

const (
	phaseIdle phase = iota
	// phaseExit moves the outgoing item from Center to Exit.
	phaseExit
	// phaseEnter moves the incoming item from Enter to Center.
	phaseEnter
	// phaseSettle springs a dragged card back to the centre.
	phaseSettle
)

// animation plays a transition descriptor as spring legs driven by
// frame messages. Each start bumps gen so frames of an interrupted
// transition are ignored.
type animation struct {
	spring harmonica.Spring
	phase  phase
	desc   carousel.Descriptor
	from   int
	to     int
	pos    float64
	vel    float64
	frames int
	drag   float64
	gen    uint64
}

func newAnimation() animation {
	omega := math.Sqrt(springStiffness)
	return animation{
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), omega, springDamping/(2*omega)),
	}
}

// start begins a transition from item from to item to. It returns false
// when the descriptor moves nothing.
func (a *animation) start(desc carousel.Descriptor, from, to int) bool {
	a.gen++
	if desc.Still() {
		a.phase = phaseIdle
		return false
	}
	a.desc = desc
	a.from, a.to = from, to
	a.enter(phaseExit)
	return true
}

// settle springs item index back from a horizontal drag offset.
func (a *animation) settle(offset float64, index int) bool {
	a.gen++
	if offset == 0 {
		a.phase = phaseIdle
		return false
	}
	a.drag = offset
	a.to = index
	a.enter(phaseSettle)
	return true
}

func (a *animation) enter(p phase) {
	a.phase = p
	a.pos, a.vel, a.frames = 0, 0, 0
}

func (a *animation) stop() {
	a.gen++
	a.phase = phaseIdle
}

func (a *animation) running() bool {
	return a.phase != phaseIdle
}

// step advances one frame and reports whether another frame is needed.
func (a *animation) step() bool {
	if !a.running() {
		return false
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, 1)
	a.frames++
	done := math.Abs(1-a.pos) < settleEpsilon && math.Abs(a.vel) < settleEpsilon
	if done || a.frames >= maxLegFrames {
		if a.phase == phaseExit {
			a.enter(phaseEnter)
		} else {
			a.phase = phaseIdle
		}
	}
	return a.running()
}

// frame returns the item to draw and its pose. current is the settled
// index used when nothing is running.
func (a *animation) frame(current int) (int, carousel.Pose) {
	switch a.phase {
	case phaseExit:
		return a.from, lerpPose(a.desc.Center, a.desc.Exit, a.pos)
	case phaseEnter:
		return a.to, lerpPose(a.desc.Enter, a.desc.Center, a.pos)
	case phaseSettle:
		p := carousel.Resting(carousel.AxisX)
		p.Offset = a.drag * (1 - a.pos)
		return a.to, p
	default:
		return current, carousel.Resting(carousel.AxisX)
	}
}

func lerpPose(from, to carousel.Pose, t float64) carousel.Pose {
	z := from.Z
	if t >= 0.5 {
		z = to.Z
	}
	return carousel.Pose{
		Axis:    to.Axis,
		Offset:  from.Offset + (to.Offset-from.Offset)*t,
		Opacity: clamp01(from.Opacity + (to.Opacity-from.Opacity)*t),
		Scale:   from.Scale + (to.Scale-from.Scale)*t,
		Z:       z,
	}
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
