package structure

import (
	"net/http"

	"github.com/rs/zerolog"

	"Stairs/internal/calc/reply"
	model "Stairs/internal/model/structure"
)

type Handler struct {
	Log zerolog.Logger
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	raw, err := reply.Body(r)
	if err != nil {
		reply.BadRequest(w, h.Log, err)
		return
	}
	design, err := model.NewStructuralDesign(raw)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}
	res, err := Calculate(design)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}
	reply.JSON(w, res)
}
