package batch_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairs/internal/calc/batch"
	"Stairs/internal/record"
)

func item(steps int) map[string]any {
	return map[string]any{
		"geometric": map[string]any{
			"height": 1600, "thickness": 200, "clear_span": 2620,
			"top_top_length": 400, "bottom_top_length": 400, "steps_number": steps,
		},
		"load_data": map[string]any{"live_load": 3.5},
		"material":  map[string]any{"rebar_grade": 2, "concrete_grade": 2},
	}
}

func TestCalculate(t *testing.T) {
	res, err := batch.Calculate(batch.Input{Items: []any{item(10), item(11)}})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Greater(t, res.Results[0].StepHeight, res.Results[1].StepHeight)
}

func TestCalculate_Failures(t *testing.T) {
	_, err := batch.Calculate(batch.Input{})
	assert.Error(t, err)

	_, err = batch.Calculate(batch.Input{Items: []any{item(10), item(1)}})
	var ie *batch.ItemError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)
	assert.Equal(t, "steps_number", record.FieldOf(err))
}

func TestHandler_Structure(t *testing.T) {
	h := &batch.Handler{Log: zerolog.Nop()}

	rec := httptest.NewRecorder()
	h.Structure(rec, httptest.NewRequest(http.MethodPost, "/api/stair/batch", strings.NewReader(`{"items": 3}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	h.Structure(rec, httptest.NewRequest(http.MethodPost, "/api/stair/batch", strings.NewReader(`{"items": []}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
