// Package detailed holds the detailing input of a precast stair flight: holes,
// joints, step slots, water drips, embedded parts and rebar. Each group is
// governed by a design mode that either fills fixed defaults or validates the
// values supplied by the engineer.
package detailed

import (
	"fmt"

	"Stairs/internal/record"
)

// DesignMode selects how a group of detailing fields is populated.
type DesignMode int

const (
	Automatic DesignMode = iota
	Manual
	No
)

func (m DesignMode) String() string {
	switch m {
	case Automatic:
		return "automatic"
	case Manual:
		return "manual"
	case No:
		return "no"
	default:
		return fmt.Sprintf("DesignMode(%d)", int(m))
	}
}

// ParseDesignMode converts the wire integer of a design mode.
func ParseDesignMode(n int) (DesignMode, error) {
	return record.ParseEnum(n, Automatic, Manual, No)
}

// HoleType discriminates the shape of a support hole.
type HoleType int

const (
	FixedHingeHole HoleType = iota
	SlidingHingeHole
)

var HoleTypes = []HoleType{FixedHingeHole, SlidingHingeHole}

func (t HoleType) String() string {
	switch t {
	case FixedHingeHole:
		return "fixed_hinge"
	case SlidingHingeHole:
		return "sliding_hinge"
	default:
		return fmt.Sprintf("HoleType(%d)", int(t))
	}
}

// PouringWay is the casting orientation of the flight.
type PouringWay int

const (
	VerticalHorizontal PouringWay = iota
	VerticalVertical
	HorizontalHorizontal
)

var PouringWays = []PouringWay{VerticalHorizontal, VerticalVertical, HorizontalHorizontal}

func (p PouringWay) String() string {
	switch p {
	case VerticalHorizontal:
		return "vertical_horizontal"
	case VerticalVertical:
		return "vertical_vertical"
	case HorizontalHorizontal:
		return "horizontal_horizontal"
	default:
		return fmt.Sprintf("PouringWay(%d)", int(p))
	}
}

// WaterDripLayout says on which landing edges a water drip is cut.
type WaterDripLayout int

const (
	OnlyTop WaterDripLayout = iota
	OnlyBottom
	Both
)

var WaterDripLayouts = []WaterDripLayout{OnlyTop, OnlyBottom, Both}

func (l WaterDripLayout) String() string {
	switch l {
	case OnlyTop:
		return "only_top"
	case OnlyBottom:
		return "only_bottom"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("WaterDripLayout(%d)", int(l))
	}
}

// WaterDripShape discriminates the water drip cross-section.
type WaterDripShape int

const (
	Trapezoid WaterDripShape = iota
	Semicircle
)

var WaterDripShapes = []WaterDripShape{Trapezoid, Semicircle}

func (s WaterDripShape) String() string {
	switch s {
	case Trapezoid:
		return "trapezoid"
	case Semicircle:
		return "semicircle"
	default:
		return fmt.Sprintf("WaterDripShape(%d)", int(s))
	}
}
