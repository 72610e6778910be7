// Package book assembles the calculation book of a flight: the structural
// result and the detailing result, each re-validated on assembly.
package book

import (
	"fmt"

	"Stairs/internal/calc/detailed"
	"Stairs/internal/calc/structure"
	dmodel "Stairs/internal/model/detailed"
	smodel "Stairs/internal/model/structure"
	"Stairs/internal/record"
)

// CalculationBook is everything the drawing and report stages read.
type CalculationBook struct {
	StructuralDesignResult smodel.StructuralDesignResult `json:"structural_design_result"`
	DetailedDesignResult   dmodel.DetailedDesignResult   `json:"detailed_design_result"`
}

// Schema declares CalculationBook. Both results are validated again even
// when passed as instances.
var Schema = record.MustDeclare[CalculationBook](
	record.Required("structural_design_result", record.Nested(smodel.ResultSchema)),
	record.Required("detailed_design_result", record.Nested(dmodel.ResultSchema)),
).WithHook(func(b CalculationBook, _ record.Values) (CalculationBook, error) {
	s, err := b.StructuralDesignResult.Validate()
	if err != nil {
		return b, record.Mismatch("structural_design_result", nil, err)
	}
	d, err := b.DetailedDesignResult.Validate()
	if err != nil {
		return b, record.Mismatch("detailed_design_result", nil, err)
	}
	b.StructuralDesignResult, b.DetailedDesignResult = s, d
	return b, nil
})

// Assemble builds a CalculationBook from an instance or raw values.
func Assemble(raw any) (CalculationBook, error) {
	if b, ok := raw.(CalculationBook); ok {
		return Schema.Normalize(b)
	}
	return Schema.Construct(raw)
}

// Input holds both design stages of a flight.
type Input struct {
	StructuralDesign smodel.StructuralDesign `json:"structural_design"`
	DetailedDesign   dmodel.DetailedDesign   `json:"detailed_design"`
}

var inputSchema = record.MustDeclare[Input](
	record.Required("structural_design", record.Nested(smodel.DesignSchema)),
	record.Required("detailed_design", record.Nested(dmodel.DesignSchema)),
)

// NewInput builds an Input from raw values.
func NewInput(raw any) (Input, error) {
	return inputSchema.Construct(raw)
}

// Calculate runs the structural stage and then the detailing stage.
func Calculate(in Input) (CalculationBook, error) {
	s, err := structure.Calculate(in.StructuralDesign)
	if err != nil {
		return CalculationBook{}, fmt.Errorf("structure: %w", err)
	}
	d, err := detailed.Calculate(s, in.DetailedDesign)
	if err != nil {
		return CalculationBook{}, fmt.Errorf("detailing: %w", err)
	}
	return Assemble(CalculationBook{StructuralDesignResult: s, DetailedDesignResult: d})
}
