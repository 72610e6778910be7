// Package structure derives the step geometry, the computational span and the
// load combinations of a flight from its StructuralDesign.
package structure

import (
	"fmt"
	"math"

	model "Stairs/internal/model/structure"
)

// baseDesignFactor is the permanent-load factor of the combination governed
// by permanent actions.
const baseDesignFactor = 1.35

// Calculate derives the result of d and validates it. Loads are per metre of
// flight width.
func Calculate(d model.StructuralDesign) (model.StructuralDesignResult, error) {
	g := d.Geometric
	if g.StepsNumber < 2 {
		return model.StructuralDesignResult{}, fmt.Errorf("invalid steps number %d", g.StepsNumber)
	}
	concrete, ok := model.Concrete(d.Material.ConcreteGrade)
	if !ok {
		return model.StructuralDesignResult{}, fmt.Errorf("unknown concrete grade %v", d.Material.ConcreteGrade)
	}
	steel, ok := model.Steel(d.Material.RebarGrade)
	if !ok {
		return model.StructuralDesignResult{}, fmt.Errorf("unknown rebar grade %v", d.Material.RebarGrade)
	}

	stepHeight := g.Height / float64(g.StepsNumber)
	stepWidth := g.ClearSpan / float64(g.StepsNumber-1)
	cosAlpha := stepWidth / math.Hypot(stepWidth, stepHeight)

	l := d.LoadData
	// Dead load of the inclined waist plus half a step, kN/m.
	selfWeight := l.ReinforceConcreteWeight * (stepHeight/2 + g.Thickness/cosAlpha) / 1000
	permanent := selfWeight
	live := l.LiveLoad

	variableGoverned := l.PermanentLoadPartialFactor*permanent + l.LiveLoadPartialFactor*live
	permanentGoverned := baseDesignFactor*permanent + l.LiveLoadPartialFactor*l.CombinationValueCoefficient*live

	res := model.StructuralDesignResult{
		StructuralDesign:      d,
		Concrete:              concrete,
		Steel:                 steel,
		StepHeight:            stepHeight,
		StepWidth:             stepWidth,
		CosAlpha:              cosAlpha,
		L0:                    g.ClearSpan + (g.TopTopLength+g.BottomTopLength)/2,
		TotalHorizontalLength: g.ClearSpan + g.TopTopLength + g.BottomTopLength,
		SelfWeight:            selfWeight,
		PermanentLoad:         permanent,
		LiveLoad:              live,
		DesignLoad:            math.Max(variableGoverned, permanentGoverned),
		StandardLoad:          permanent + live,
		QuasiPermanentLoad:    permanent + l.QuasiPermanentValueCoefficient*live,
	}
	return res.Validate()
}
