package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"Stairs/internal/config"
	"Stairs/internal/repo"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := mux.NewRouter()
	cfg := config.Config{TokenKey: []byte("k"), RateLimit: rate.Inf, RateBurst: 1}
	HandleList(router, cfg, repo.NewMemory(), zerolog.Nop())
	srv := httptest.NewServer(CORS(router))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRoutes(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/stair/book", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/user/stair/book", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/register", "", map[string]string{
		"login": "anna", "email": "a@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reg))

	design := map[string]any{
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
	resp = do(t, http.MethodPost, srv.URL+"/api/user/stair/book", reg.Token, design)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var b map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))

	resp = do(t, http.MethodPost, srv.URL+"/api/user/books", reg.Token, map[string]any{"name": "A", "book": b})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/user/books/1", reg.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/catalog/0", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Equal(t, "DJ-13-120", names[0])

	resp = do(t, http.MethodOptions, srv.URL+"/api/login", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
