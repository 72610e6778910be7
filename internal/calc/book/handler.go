package book

import (
	"net/http"

	"github.com/rs/zerolog"

	"Stairs/internal/calc/reply"
)

type Handler struct {
	Log zerolog.Logger
}

// Calc runs both stages from {structural_design, detailed_design}.
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
	b, err := Calculate(in)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}
	h.Log.Debug().
		Str("lifting", b.DetailedDesignResult.LiftingParameter.PartName()).
		Str("demolding", b.DetailedDesignResult.DemoldingParameter.PartName()).
		Msg("calculation book assembled")
	reply.JSON(w, b)
}

// Check validates a posted calculation book.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	raw, err := reply.Body(r)
	if err != nil {
		reply.BadRequest(w, h.Log, err)
		return
	}
	b, err := Assemble(raw)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}
	reply.JSON(w, b)
}
