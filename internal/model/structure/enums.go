// Package structure holds the structural design input of a precast stair
// flight and the result record produced by the structural calculation.
package structure

import (
	"fmt"

	"Stairs/internal/record"
)

// ConcreteGrade is the strength class of the flight concrete.
type ConcreteGrade int

const (
	C20 ConcreteGrade = iota
	C25
	C30
	C35
	C40
	C45
	C50
	C55
	C60
)

var ConcreteGrades = []ConcreteGrade{C20, C25, C30, C35, C40, C45, C50, C55, C60}

func (g ConcreteGrade) String() string {
	if g < C20 || g > C60 {
		return fmt.Sprintf("ConcreteGrade(%d)", int(g))
	}
	return fmt.Sprintf("C%d", 20+5*int(g))
}

// ParseConcreteGrade converts the wire integer of a concrete grade.
func ParseConcreteGrade(n int) (ConcreteGrade, error) {
	return record.ParseEnum(n, ConcreteGrades...)
}

// RebarGrade is the steel grade of the reinforcement.
type RebarGrade int

const (
	HPB300 RebarGrade = iota
	HRB335
	HRB400
	RRB400
	HRB500
)

var RebarGrades = []RebarGrade{HPB300, HRB335, HRB400, RRB400, HRB500}

func (g RebarGrade) String() string {
	switch g {
	case HPB300:
		return "HPB300"
	case HRB335:
		return "HRB335"
	case HRB400:
		return "HRB400"
	case RRB400:
		return "RRB400"
	case HRB500:
		return "HRB500"
	default:
		return fmt.Sprintf("RebarGrade(%d)", int(g))
	}
}

// ParseRebarGrade converts the wire integer of a rebar grade.
func ParseRebarGrade(n int) (RebarGrade, error) {
	return record.ParseEnum(n, RebarGrades...)
}
