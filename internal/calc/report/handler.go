package report

import (
	"bytes"
	"net/http"

	"github.com/rs/zerolog"

	"Stairs/internal/calc/book"
	"Stairs/internal/calc/reply"
	"Stairs/internal/record"
)

// Request carries the title block and the book to render.
type Request struct {
	Project string               `json:"project"`
	Author  string               `json:"author"`
	Title   string               `json:"title"`
	Notes   string               `json:"notes"`
	Book    book.CalculationBook `json:"book"`
}

var requestSchema = record.MustDeclare[Request](
	record.Optional("project", record.String()),
	record.Optional("author", record.String()),
	record.Optional("title", record.String()),
	record.Optional("notes", record.String()),
	record.Required("book", func(v any) (any, error) { return book.Assemble(v) }),
)

type Handler struct {
	Log zerolog.Logger
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	raw, err := reply.Body(r)
	if err != nil {
		reply.BadRequest(w, h.Log, err)
		return
	}
	req, err := requestSchema.Construct(raw)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}

	var buf bytes.Buffer
	meta := Meta{Project: req.Project, Author: req.Author, Title: req.Title, Notes: req.Notes}
	if err := Render(&buf, meta, req.Book); err != nil {
		h.Log.Error().Err(err).Msg("report generation failed")
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"calculation-book.pdf\"")
	w.Write(buf.Bytes())
}
