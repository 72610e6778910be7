// Package batch runs the structural calculation over many designs.
package batch

import (
	"fmt"

	"Stairs/internal/calc/structure"
	model "Stairs/internal/model/structure"
	"Stairs/internal/record"
)

type Input struct {
	Items []any `json:"items"`
}

type Result struct {
	Results []model.StructuralDesignResult `json:"results"`
}

// ItemError names the failing item of a batch.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string { return fmt.Sprintf("item %d: %v", e.Index, e.Err) }
func (e *ItemError) Unwrap() error { return e.Err }

// Calculate validates and calculates every item in order and stops at the
// first failure.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]model.StructuralDesignResult, 0, len(in.Items))}
	for i, item := range in.Items {
		d, err := model.NewStructuralDesign(item)
		if err != nil {
			return Result{}, &ItemError{Index: i, Err: err}
		}
		res, err := structure.Calculate(d)
		if err != nil {
			return Result{}, &ItemError{Index: i, Err: err}
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

var inputSchema = record.MustDeclare[Input](
	record.Required("items", record.SliceOf(func(v any) (any, error) { return v, nil })),
)

// NewInput builds an Input from raw values.
func NewInput(raw any) (Input, error) {
	return inputSchema.Construct(raw)
}
