package detailed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairs/internal/model/detailed"
	"Stairs/internal/record"
)

func manualRebar() map[string]any {
	return map[string]any{
		"rebar_design_mode":              1,
		"bottom_edge_longitudinal_rebar": map[string]any{"diameter": 12, "spacing": 120},
		"top_edge_longitudinal_rebar":    map[string]any{"diameter": 12, "spacing": 150},
		"mid_distribution_rebar":         []any{8, 200},
		"bottom_edge_stirrup":            map[string]any{"diameter": 8, "spacing": 100},
		"top_edge_stirrup":               map[string]any{"diameter": 8, "spacing": 100},
		"hole_reinforce_rebar":           map[string]any{"diameter": 10},
		"lifting_reinforce_rebar":        []any{12},
		"top_edge_reinforce_rebar":       map[string]any{"diameter": 14},
		"bottom_edge_reinforce_rebar":    map[string]any{"diameter": 14},
	}
}

func TestRebarDetailed_Automatic(t *testing.T) {
	r, err := detailed.NewRebarDetailed(map[string]any{
		"rebar_design_mode":      0,
		"mid_distribution_rebar": map[string]any{"diameter": 7},
	})
	require.NoError(t, err)
	assert.Equal(t, detailed.AutoRebar, r)
	assert.Equal(t, detailed.RebarDiamSpac{Diameter: 8, Spacing: 200}, r.MidDistributionRebar)
}

func TestRebarDetailed_Manual(t *testing.T) {
	r, err := detailed.NewRebarDetailed(manualRebar())
	require.NoError(t, err)
	assert.Equal(t, detailed.RebarDiamSpac{Diameter: 12, Spacing: 120}, r.BottomEdgeLongitudinalRebar)
	assert.Equal(t, detailed.RebarDiamSpac{Diameter: 8, Spacing: 200}, r.MidDistributionRebar)
	assert.Equal(t, detailed.RebarDiam{Diameter: 12}, r.LiftingReinforceRebar)
	assert.Equal(t, 14, r.BottomEdgeReinforceRebar.Diameter)
}

func TestRebarDetailed_ManualRequiresEveryField(t *testing.T) {
	for field := range manualRebar() {
		if field == "rebar_design_mode" {
			continue
		}
		t.Run(field, func(t *testing.T) {
			raw := manualRebar()
			delete(raw, field)
			_, err := detailed.NewRebarDetailed(raw)
			assert.ErrorIs(t, err, record.ErrMissing)
			assert.Equal(t, field, record.FieldOf(err))
		})
	}
}

func TestRebarDetailed_DiameterCatalog(t *testing.T) {
	raw := manualRebar()
	raw["top_edge_stirrup"] = map[string]any{"diameter": 9, "spacing": 100}
	_, err := detailed.NewRebarDetailed(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrCatalog)
	assert.Equal(t, "top_edge_stirrup", record.FieldOf(err))

	raw = manualRebar()
	raw["top_edge_stirrup"] = map[string]any{"diameter": 8, "spacing": 0}
	_, err = detailed.NewRebarDetailed(raw)
	assert.Equal(t, record.ErrTypeMismatch, record.KindOf(err))
	assert.Equal(t, "top_edge_stirrup", record.FieldOf(err))

	_, err = detailed.NewRebarDiam(map[string]any{"diameter": 7})
	assert.ErrorIs(t, err, record.ErrCatalog)
	assert.Equal(t, "diameter", record.FieldOf(err))
}

func TestRebarDetailed_NoModeRejected(t *testing.T) {
	raw := manualRebar()
	raw["rebar_design_mode"] = 2
	_, err := detailed.NewRebarDetailed(raw)
	assert.Equal(t, "rebar_design_mode", record.FieldOf(err))
}
