package detailed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairs/internal/catalog"
	"Stairs/internal/model/detailed"
	"Stairs/internal/record"
)

func manualInserts() map[string]any {
	return map[string]any{
		"lifting_design_mode":   1,
		"lifting_type":          0,
		"lifting_position":      map[string]any{"a": 450, "b": 450, "c": 250, "d": 250},
		"lifting_name":          "DJ-25-170",
		"pouring_way":           1,
		"demolding_design_mode": 1,
		"demolding_type":        1,
		"demolding_position":    map[string]any{"a": 500, "b": 500, "c": 300, "t": 70},
		"demolding_name":        "MS-20-80",
		"rail_design_mode":      1,
		"rail_parameter":        map[string]any{"a": 100, "b": 100, "c": 20, "d": 20, "t": 8},
		"rail_number":           []any{1, 4, 7},
	}
}

func TestInsertsDetailed_Automatic(t *testing.T) {
	in, err := detailed.NewInsertsDetailed(map[string]any{
		"lifting_design_mode": 0,
		"lifting_name":        "BAD-NAME",
		"rail_number":         []any{1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.RoundingHead, in.LiftingType)
	assert.Equal(t, detailed.AutoLiftingPosition, in.LiftingPosition)
	assert.Empty(t, in.LiftingName)
	assert.Equal(t, detailed.VerticalHorizontal, in.PouringWay)
	assert.Equal(t, detailed.Automatic, in.DemoldingDesignMode)
	assert.Equal(t, catalog.Anchor, in.DemoldingType)
	assert.Equal(t, detailed.No, in.RailDesignMode)
	assert.Nil(t, in.RailParameter)
	assert.Nil(t, in.RailNumber)
}

func TestInsertsDetailed_Manual(t *testing.T) {
	in, err := detailed.NewInsertsDetailed(manualInserts())
	require.NoError(t, err)

	assert.Equal(t, "DJ-25-170", in.LiftingName)
	assert.Equal(t, detailed.VerticalVertical, in.PouringWay)
	assert.Equal(t, catalog.Anchor, in.DemoldingType)
	assert.Equal(t, detailed.DemoldingPosition{A: 500, B: 500, C: 300, T: 70}, in.DemoldingPosition)
	require.NotNil(t, in.RailParameter)
	assert.Equal(t, 8.0, in.RailParameter.T)
	assert.Equal(t, []int{1, 4, 7}, in.RailNumber)
}

func TestInsertsDetailed_BadLiftingName(t *testing.T) {
	_, err := detailed.NewInsertsDetailed(map[string]any{
		"lifting_design_mode": 1,
		"lifting_type":        0,
		"lifting_name":        "BAD-NAME",
		"lifting_position":    map[string]any{"a": 400, "b": 400, "c": 300, "d": 300},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrCatalog)
	assert.Equal(t, "lifting_name", record.FieldOf(err))
	assert.Contains(t, err.Error(), "lifting_name")
	assert.Contains(t, err.Error(), "DJ-13-120")
}

func TestInsertsDetailed_NameMustMatchType(t *testing.T) {
	raw := manualInserts()
	raw["lifting_type"] = 1
	_, err := detailed.NewInsertsDetailed(raw)
	assert.ErrorIs(t, err, record.ErrCatalog)
	assert.Equal(t, "lifting_name", record.FieldOf(err))
}

func TestInsertsDetailed_ManualRequiresEveryField(t *testing.T) {
	for _, field := range []string{
		"lifting_type", "lifting_position", "lifting_name",
		"demolding_type", "demolding_position", "demolding_name",
		"rail_parameter", "rail_number",
	} {
		t.Run(field, func(t *testing.T) {
			raw := manualInserts()
			delete(raw, field)
			_, err := detailed.NewInsertsDetailed(raw)
			assert.ErrorIs(t, err, record.ErrMissing)
			assert.Equal(t, field, record.FieldOf(err))
		})
	}
}

func TestInsertsDetailed_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		patch map[string]any
		field string
		kind  error
	}{
		{"rail mode automatic", map[string]any{"rail_design_mode": 0}, "rail_design_mode", record.ErrTypeMismatch},
		{"repeated rail step", map[string]any{"rail_number": []any{2, 2}}, "rail_number", record.ErrTypeMismatch},
		{"rail step zero", map[string]any{"rail_number": []any{0, 3}}, "rail_number", record.ErrTypeMismatch},
		{"no rail steps", map[string]any{"rail_number": []any{}}, "rail_number", record.ErrTypeMismatch},
		{"fractional rail step", map[string]any{"rail_number": []any{1.5}}, "rail_number", record.ErrTypeMismatch},
		{"lifting name not a string", map[string]any{"lifting_name": 25}, "lifting_name", record.ErrTypeMismatch},
		{"part type out of range", map[string]any{"demolding_type": 4}, "demolding_type", record.ErrTypeMismatch},
		{"demolding name unknown", map[string]any{"demolding_name": "MS-99"}, "demolding_name", record.ErrCatalog},
		{"pouring way out of range", map[string]any{"pouring_way": 3}, "pouring_way", record.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := manualInserts()
			for k, v := range tt.patch {
				raw[k] = v
			}
			_, err := detailed.NewInsertsDetailed(raw)
			require.Error(t, err)
			assert.Equal(t, tt.kind, record.KindOf(err))
			assert.Equal(t, tt.field, record.FieldOf(err))
		})
	}
}

func TestInsertsDetailed_ForeignEnumMember(t *testing.T) {
	raw := manualInserts()
	raw["lifting_type"] = detailed.SlidingHingeHole
	raw["lifting_name"] = "MS-12-60"

	_, err := detailed.NewInsertsDetailed(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrTypeMismatch)
	assert.Equal(t, "lifting_type", record.FieldOf(err))

	raw["lifting_type"] = catalog.Anchor
	in, err := detailed.NewInsertsDetailed(raw)
	require.NoError(t, err)
	assert.Equal(t, catalog.Anchor, in.LiftingType)
}
