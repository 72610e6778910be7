// Package detailed sizes the cast-in parts of a flight: it estimates the
// concrete volume and weight, derives the lifting and demolding loads and
// picks or checks the catalogue parts.
package detailed

import (
	"fmt"

	"Stairs/internal/catalog"
	model "Stairs/internal/model/detailed"
	"Stairs/internal/model/structure"
)

const (
	liftingPoints   = 4
	demoldingPoints = 4
	// Form adhesion while demolding, kN/m2.
	adhesion = 1.5
)

// Calculate details s with d and validates the result.
func Calculate(s structure.StructuralDesignResult, d model.DetailedDesign) (model.DetailedDesignResult, error) {
	volume := ConcreteVolume(s, d.GeometricDetailed)
	load := s.StructuralDesign.LoadData
	weight := volume * load.ReinforceConcreteWeight

	liftingLoad := weight * load.DynamicLoadFactor / liftingPoints
	demoldingLoad := (weight*load.DynamicLoadFactor + adhesion*formArea(s, d)) / demoldingPoints

	in := d.InsertsDetailed
	lifting, err := pickPart(in.LiftingDesignMode, in.LiftingType, in.LiftingName, liftingLoad)
	if err != nil {
		return model.DetailedDesignResult{}, fmt.Errorf("lifting: %w", err)
	}
	demolding, err := pickPart(in.DemoldingDesignMode, in.DemoldingType, in.DemoldingName, demoldingLoad)
	if err != nil {
		return model.DetailedDesignResult{}, fmt.Errorf("demolding: %w", err)
	}

	res := model.DetailedDesignResult{
		DetailedDesign:     d,
		LiftingType:        in.LiftingType,
		LiftingParameter:   lifting,
		DemoldingType:      in.DemoldingType,
		DemoldingParameter: demolding,
		ConcreteVolume:     volume,
		SelfWeight:         weight,
		LiftingLoad:        liftingLoad,
		DemoldingLoad:      demoldingLoad,
	}
	return res.Validate()
}

// ConcreteVolume returns the volume of the flight in m3: the inclined waist,
// the step triangles and both landings.
func ConcreteVolume(s structure.StructuralDesignResult, g model.GeometricDetailed) float64 {
	geo := s.StructuralDesign.Geometric
	waist := geo.ClearSpan / s.CosAlpha * geo.Thickness
	steps := float64(geo.StepsNumber-1) * s.StepWidth * s.StepHeight / 2
	landings := g.TopToLength*g.TopThickness + g.BottomToLength*g.BottomThickness
	return (waist + steps + landings) * g.Width / 1e9
}

// formArea is the mould contact area in m2, which depends on how the flight
// was cast.
func formArea(s structure.StructuralDesignResult, d model.DetailedDesign) float64 {
	g := d.GeometricDetailed
	switch d.InsertsDetailed.PouringWay {
	case model.VerticalVertical, model.HorizontalHorizontal:
		// Cast on its side: the side face lies on the mould.
		geo := s.StructuralDesign.Geometric
		return (s.TotalHorizontalLength*geo.Height/2 + geo.ClearSpan/s.CosAlpha*geo.Thickness) / 1e6
	default:
		return s.TotalHorizontalLength * g.Width / 1e6
	}
}

// pickPart selects the lightest part covering load in automatic mode and
// looks up the named part otherwise. The capacity of a named part is checked
// when the result is validated.
func pickPart(mode model.DesignMode, t catalog.PartType, name string, load float64) (catalog.Part, error) {
	if mode == model.Automatic {
		return catalog.Select(t, load)
	}
	p, ok := catalog.Lookup(t, name)
	if !ok {
		return nil, fmt.Errorf("part %q is not in the %v catalog", name, t)
	}
	return p, nil
}
