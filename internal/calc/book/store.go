package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"Stairs/internal/auth"
	"Stairs/internal/calc/reply"
	"Stairs/internal/repo"
	"Stairs/internal/record"
)

// Saved is a named calculation book posted for storage.
type Saved struct {
	Name string          `json:"name"`
	Book CalculationBook `json:"book"`
}

var savedSchema = record.MustDeclare[Saved](
	record.Required("name", record.String()),
	record.Required("book", func(v any) (any, error) { return Assemble(v) }),
).WithHook(func(s Saved, _ record.Values) (Saved, error) {
	s.Name = strings.TrimSpace(s.Name)
	return s, record.Require("name", s.Name != "")
})

// StoreHandler keeps calculation books per user.
type StoreHandler struct {
	Repo repo.Repository
	Log  zerolog.Logger
}

func (h *StoreHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	raw, err := reply.Body(r)
	if err != nil {
		reply.BadRequest(w, h.Log, err)
		return
	}
	s, err := savedSchema.Construct(raw)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}
	data, err := json.Marshal(s.Book)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	id, err := h.Repo.SaveBook(r.Context(), userID, s.Name, data)
	if err != nil {
		h.Log.Error().Err(err).Int("user_id", userID).Msg("save book failed")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(repo.BookInfo{ID: id, Name: s.Name})
}

func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	books, err := h.Repo.ListBooks(r.Context(), userID)
	if err != nil {
		h.Log.Error().Err(err).Int("user_id", userID).Msg("list books failed")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if books == nil {
		books = []repo.BookInfo{}
	}
	reply.JSON(w, books)
}

// Get returns a stored book after validating it again, so books saved by an
// older release are rejected rather than served stale.
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	data, err := h.Repo.GetBook(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Int("book_id", id).Msg("load book failed")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	var raw any
	if err := reply.Decode(bytes.NewReader(data), &raw); err != nil {
		h.Log.Error().Err(err).Int("book_id", id).Msg("stored book is not JSON")
		http.Error(w, "Stored book is corrupt", http.StatusInternalServerError)
		return
	}
	b, err := Assemble(raw)
	if err != nil {
		reply.Error(w, h.Log, err)
		return
	}
	reply.JSON(w, b)
}
