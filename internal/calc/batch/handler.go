package batch

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"Stairs/internal/calc/reply"
)

type Handler struct {
	Log zerolog.Logger
}

func (h *Handler) Structure(w http.ResponseWriter, r *http.Request) {
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
	res, err := Calculate(in)
	if err != nil {
		var ie *ItemError
		if errors.As(err, &ie) {
			h.Log.Info().Int("item", ie.Index).Msg("batch item rejected")
		}
		reply.Error(w, h.Log, err)
		return
	}
	reply.JSON(w, res)
}
