package carousel

import (
	"fmt"
	"strings"
)

// Axis is the direction along which a pose is offset.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Pose is one keyframe of a transition.
type Pose struct {
	Axis    Axis
	Offset  float64
	Opacity float64
	Scale   float64
	Z       int
}

// Resting is the only pose visible between transitions.
func Resting(axis Axis) Pose {
	return Pose{Axis: axis, Offset: 0, Opacity: 1, Scale: 1, Z: 1}
}

// Descriptor holds the three poses of a transition.
type Descriptor struct {
	Enter  Pose
	Center Pose
	Exit   Pose
}

// Still reports whether the descriptor moves nothing.
func (d Descriptor) Still() bool {
	return d.Enter == d.Center && d.Exit == d.Center
}

// TransitionStrategy selects the poses for a navigation direction.
// Implementations must be pure functions of the direction.
type TransitionStrategy interface {
	Name() string
	Describe(direction Direction) Descriptor
}

// Variant names a presentation style.
type Variant string

const (
	VariantDirectional Variant = "directional"
	VariantCard        Variant = "card"
)

// ParseVariant accepts the config spelling of a variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantDirectional, "":
		return VariantDirectional, nil
	case VariantCard:
		return VariantCard, nil
	default:
		return "", fmt.Errorf("unknown carousel variant %q", s)
	}
}

// StrategyFor returns the default strategy for a variant.
func StrategyFor(v Variant) TransitionStrategy {
	if v == VariantCard {
		return Card{Rise: DefaultCardRise}
	}
	return Directional{Distance: DefaultSlideDistance}
}

const (
	// DefaultSlideDistance is the horizontal travel of the directional
	// variant, in pixels.
	DefaultSlideDistance = 1000.0
	// DefaultCardRise is the vertical travel of the card variant, in pixels.
	DefaultCardRise = 20.0

	directionalHiddenScale = 0.8
	cardHiddenScale        = 0.98
)

// Directional slides the new item in from the side it arrives from and the
// old one out toward the opposite side.
type Directional struct {
	Distance float64
}

func (Directional) Name() string { return string(VariantDirectional) }

// Describe implements TransitionStrategy.
func (s Directional) Describe(direction Direction) Descriptor {
	center := Resting(AxisX)
	if direction == Neutral {
		return Descriptor{Enter: center, Center: center, Exit: center}
	}
	sign := float64(direction)
	hidden := Pose{Axis: AxisX, Opacity: 0, Scale: directionalHiddenScale}

	enter := hidden
	enter.Offset = sign * s.Distance
	enter.Z = 1

	exit := hidden
	exit.Offset = -sign * s.Distance
	exit.Z = 0

	return Descriptor{Enter: enter, Center: center, Exit: exit}
}

// Card fades the new item up from below and the old one up and out,
// regardless of direction.
type Card struct {
	Rise float64
}

func (Card) Name() string { return string(VariantCard) }

// Describe implements TransitionStrategy.
func (s Card) Describe(direction Direction) Descriptor {
	center := Resting(AxisY)
	if direction == Neutral {
		return Descriptor{Enter: center, Center: center, Exit: center}
	}
	return Descriptor{
		Enter:  Pose{Axis: AxisY, Offset: s.Rise, Opacity: 0, Scale: cardHiddenScale, Z: 1},
		Center: center,
		Exit:   Pose{Axis: AxisY, Offset: -s.Rise, Opacity: 0, Scale: cardHiddenScale, Z: 0},
	}
}
