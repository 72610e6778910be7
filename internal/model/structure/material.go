package structure

import (
	"fmt"

	"Stairs/internal/record"
)

// ConcreteParameter holds the GB 50010 design values of a concrete grade, MPa.
type ConcreteParameter struct {
	Grade ConcreteGrade `json:"grade"`
	Fck   float64       `json:"fck"` // characteristic compressive strength
	Ftk   float64       `json:"ftk"` // characteristic tensile strength
	Fc    float64       `json:"fc"`  // design compressive strength
	Ft    float64       `json:"ft"`  // design tensile strength
	Ec    float64       `json:"ec"`  // elastic modulus
}

// SteelParameter holds the design values of a rebar grade, MPa.
type SteelParameter struct {
	Grade RebarGrade `json:"grade"`
	Fy    float64    `json:"fy"`
	Fyk   float64    `json:"fyk"`
	Es    float64    `json:"es"`
}

var concreteTable = map[ConcreteGrade]ConcreteParameter{
	C20: {C20, 13.4, 1.54, 9.6, 1.10, 2.55e4},
	C25: {C25, 16.7, 1.78, 11.9, 1.27, 2.80e4},
	C30: {C30, 20.1, 2.01, 14.3, 1.43, 3.00e4},
	C35: {C35, 23.4, 2.20, 16.7, 1.57, 3.15e4},
	C40: {C40, 26.8, 2.39, 19.1, 1.71, 3.25e4},
	C45: {C45, 29.6, 2.51, 21.1, 1.80, 3.35e4},
	C50: {C50, 32.4, 2.64, 23.1, 1.89, 3.45e4},
	C55: {C55, 35.5, 2.74, 25.3, 1.96, 3.55e4},
	C60: {C60, 38.5, 2.85, 27.5, 2.04, 3.60e4},
}

var steelTable = map[RebarGrade]SteelParameter{
	HPB300: {HPB300, 270, 300, 2.1e5},
	HRB335: {HRB335, 300, 335, 2.0e5},
	HRB400: {HRB400, 360, 400, 2.0e5},
	RRB400: {RRB400, 360, 400, 2.0e5},
	HRB500: {HRB500, 435, 500, 2.0e5},
}

// Concrete returns the table entry of g.
func Concrete(g ConcreteGrade) (ConcreteParameter, bool) {
	p, ok := concreteTable[g]
	return p, ok
}

// Steel returns the table entry of g.
func Steel(g RebarGrade) (SteelParameter, bool) {
	p, ok := steelTable[g]
	return p, ok
}

var concreteSchema = record.MustDeclare[ConcreteParameter](
	record.Required("grade", record.Enum(ConcreteGrades...)),
	record.Required("fck", record.Float()),
	record.Required("ftk", record.Float()),
	record.Required("fc", record.Float()),
	record.Required("ft", record.Float()),
	record.Required("ec", record.Float()),
).WithHook(func(p ConcreteParameter, _ record.Values) (ConcreteParameter, error) {
	if want := concreteTable[p.Grade]; p != want {
		return p, record.Mismatch("grade", p.Grade, fmt.Errorf("values differ from the %v table entry", p.Grade))
	}
	return p, nil
})

var steelSchema = record.MustDeclare[SteelParameter](
	record.Required("grade", record.Enum(RebarGrades...)),
	record.Required("fy", record.Float()),
	record.Required("fyk", record.Float()),
	record.Required("es", record.Float()),
).WithHook(func(p SteelParameter, _ record.Values) (SteelParameter, error) {
	if want := steelTable[p.Grade]; p != want {
		return p, record.Mismatch("grade", p.Grade, fmt.Errorf("values differ from the %v table entry", p.Grade))
	}
	return p, nil
})

// NewConcreteParameter builds a concrete record and checks it against the table.
func NewConcreteParameter(raw any) (ConcreteParameter, error) {
	return concreteSchema.Construct(raw)
}

// NewSteelParameter builds a steel record and checks it against the table.
func NewSteelParameter(raw any) (SteelParameter, error) {
	return steelSchema.Construct(raw)
}
