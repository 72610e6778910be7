package importer

import (
	"net/http"

	"github.com/rs/zerolog"

	"Stairs/internal/calc/reply"
)

type Handler struct {
	Log zerolog.Logger
}

// Structure calculates every flight of an uploaded workbook.
func (h *Handler) Structure(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := Calculate(file)
	if err != nil {
		h.Log.Warn().Err(err).Msg("workbook rejected")
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	h.Log.Info().Int("rows", len(res.Rows)).Int("calculated", res.Count).Msg("workbook imported")
	reply.JSON(w, res)
}
