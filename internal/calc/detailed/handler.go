package detailed

import (
	"net/http"

	"github.com/rs/zerolog"

	"Stairs/internal/calc/reply"
	model "Stairs/internal/model/detailed"
	"Stairs/internal/model/structure"
	"Stairs/internal/record"
)

// Input pairs a structural result with the detailing to apply to it.
type Input struct {
	StructuralDesignResult structure.StructuralDesignResult `json:"structural_design_result"`
	DetailedDesign         model.DetailedDesign             `json:"detailed_design"`
}

var inputSchema = record.MustDeclare[Input](
	record.Required("structural_design_result", record.Nested(structure.ResultSchema)),
	record.Required("detailed_design", record.Nested(model.DesignSchema)),
)

// NewInput builds an Input from raw values.
func NewInput(raw any) (Input, error) {
	return inputSchema.Construct(raw)
}

type Handler struct {
	Log zerolog.Logger
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	raw, err := reply.Body(r)
	if err != nil {
		reply.BadRequest(w, h.Log, err)
		return
	}
	in, err := NewInput(raw)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}
	res, err := Calculate(in.StructuralDesignResult, in.DetailedDesign)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}
	reply.JSON(w, res)
}
