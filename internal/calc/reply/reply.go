// Package reply holds the request decoding and response writing shared by the
// calculation handlers.
package reply

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"Stairs/internal/catalog"
	"Stairs/internal/record"
)

// Problem is the body of a rejected request.
type Problem struct {
	Field   string `json:"field,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var kinds = map[error]string{
	record.ErrMissing:      "missing",
	record.ErrTypeMismatch: "type_mismatch",
	record.ErrCatalog:      "catalog",
	record.ErrUnreachable:  "unreachable",
	record.ErrConversion:   "conversion",
	record.ErrUnknownField: "unknown_field",
	record.ErrDeclaration:  "declaration",
}

// Decode reads a JSON body into generic values. Numbers stay json.Number so
// integer fields are not rounded through float64.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after JSON value")
	}
	return nil
}

// Body decodes the request body as a raw record.
func Body(r *http.Request) (any, error) {
	var raw any
	if err := Decode(r.Body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// JSON writes v with status 200.
func JSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// BadRequest answers a body that is not valid JSON.
func BadRequest(w http.ResponseWriter, log zerolog.Logger, err error) {
	log.Warn().Err(err).Msg("invalid request payload")
	write(w, http.StatusBadRequest, Problem{Kind: "payload", Message: "Invalid request payload"})
}

// Error answers a failed validation or calculation. Record errors become 422
// with the offending field, anything else a plain 400.
func Error(w http.ResponseWriter, log zerolog.Logger, err error) {
	if kind := record.KindOf(err); kind != nil {
		field := record.FieldOf(err)
		log.Info().Str("field", field).Str("kind", kinds[kind]).Err(err).Msg("design rejected")
		write(w, http.StatusUnprocessableEntity, Problem{Field: field, Kind: kinds[kind], Message: err.Error()})
		return
	}
	if errors.Is(err, catalog.ErrNoPart) {
		log.Info().Err(err).Msg("no catalog part")
		write(w, http.StatusUnprocessableEntity, Problem{Kind: "no_part", Message: err.Error()})
		return
	}
	log.Warn().Err(err).Msg("calculation error")
	write(w, http.StatusBadRequest, Problem{Kind: "calculation", Message: "Calculation error"})
}

func write(w http.ResponseWriter, status int, p Problem) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(p)
}
