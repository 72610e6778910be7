package book_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairs/internal/calc/book"
	"Stairs/internal/calc/reply"
	"Stairs/internal/record"
)

func rawInput() map[string]any {
	return map[string]any{
		"structural_design": map[string]any{
			"geometric": map[string]any{
				"height": 1600, "thickness": 200, "clear_span": 2620,
				"top_top_length": 400, "bottom_top_length": 400, "steps_number": 10,
			},
			"load_data": map[string]any{"live_load": 3.5},
			"material":  map[string]any{"rebar_grade": 2, "concrete_grade": 2},
		},
		"detailed_design": map[string]any{
			"geometric_detailed": map[string]any{
				"width": 1200, "top_to_length": 400, "bottom_to_length": 400,
				"top_thickness": 220, "bottom_thickness": 220,
			},
			"construction_detailed": map[string]any{
				"hole_design_mode": 0, "joint_design_mode": 0,
				"step_slot_design_mode": 0, "water_drip_design_mode": 2,
			},
			"inserts_detailed": map[string]any{"lifting_design_mode": 0},
			"rebar_detailed":   map[string]any{"rebar_design_mode": 0},
		},
	}
}

func calculated(t *testing.T) book.CalculationBook {
	t.Helper()
	in, err := book.NewInput(rawInput())
	require.NoError(t, err)
	b, err := book.Calculate(in)
	require.NoError(t, err)
	return b
}

func TestAssemble_InstanceAndMappingAgree(t *testing.T) {
	b := calculated(t)

	same, err := book.Assemble(b)
	require.NoError(t, err)
	assert.Equal(t, b, same)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	var raw any
	require.NoError(t, reply.Decode(bytes.NewReader(data), &raw))
	decoded, err := book.Assemble(raw)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
}

func TestAssemble_RevalidatesInstances(t *testing.T) {
	b := calculated(t)
	b.DetailedDesignResult.LiftingLoad = 500

	_, err := book.Assemble(b)
	require.Error(t, err)
	assert.Equal(t, "detailed_design_result", record.FieldOf(err))
	assert.ErrorIs(t, err, record.ErrTypeMismatch)
}

func TestAssemble_MissingPart(t *testing.T) {
	_, err := book.Assemble(map[string]any{"structural_design_result": nil})
	assert.ErrorIs(t, err, record.ErrMissing)
	assert.Equal(t, "structural_design_result", record.FieldOf(err))
}

func TestHandler(t *testing.T) {
	h := &book.Handler{Log: zerolog.Nop()}
	data, err := json.Marshal(rawInput())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/stair/book", bytes.NewReader(data)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec2 := httptest.NewRecorder()
	h.Check(rec2, httptest.NewRequest(http.MethodPost, "/api/stair/book/check", bytes.NewReader(rec.Body.Bytes())))
	require.Equal(t, http.StatusOK, rec2.Code, rec2.Body.String())
	assert.JSONEq(t, rec.Body.String(), rec2.Body.String())

	in := rawInput()
	in["detailed_design"].(map[string]any)["rebar_detailed"] = map[string]any{"rebar_design_mode": 1}
	data, err = json.Marshal(in)
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/stair/book", bytes.NewReader(data)))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var p reply.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "bottom_edge_longitudinal_rebar", p.Field)
	assert.Equal(t, "missing", p.Kind)
}
