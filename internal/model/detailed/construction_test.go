package detailed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairs/internal/model/detailed"
	"Stairs/internal/record"
)

func manualConstruction() map[string]any {
	return map[string]any{
		"hole_design_mode":       1,
		"top_hole_type":          0,
		"top_hole":               map[string]any{"fix_hinge_c2": 65, "fix_hinge_d2": 55},
		"bottom_hole_type":       1,
		"bottom_hole":            []any{75, 60, 70, 50, 50},
		"top_hole_position":      map[string]any{"a1": 110, "a2": 110, "b1": 280, "b2": 280},
		"bottom_hole_position":   map[string]any{"a1": 120, "a2": 120, "b1": 290, "b2": 290},
		"joint_design_mode":      1,
		"top_joint":              map[string]any{"joint_a": 30, "joint_b": 25, "joint_c": 20},
		"bottom_joint":           map[string]any{"joint_a": 30, "joint_b": 25, "joint_c": 20},
		"step_slot_design_mode":  1,
		"step_slot":              map[string]any{"a": 10, "b": 6, "c": 15, "d": 8, "e": 6},
		"step_slot_position":     map[string]any{"c1": 40, "c2": 40, "c3": 20},
		"water_drip_design_mode": 1,
		"water_drip_layout":      0,
		"water_drip_shape":       1,
		"water_drip":             map[string]any{"a": 15, "b": 8},
		"water_drip_position":    map[string]any{"a1": 20, "a2": 20, "b1": 20, "b2": 20},
	}
}

func TestConstructionDetailed_AutomaticDefaults(t *testing.T) {
	c, err := detailed.NewConstructionDetailed(map[string]any{
		"hole_design_mode":       0,
		"joint_design_mode":      0,
		"step_slot_design_mode":  0,
		"water_drip_design_mode": 2,
	})
	require.NoError(t, err)

	assert.Equal(t, detailed.Automatic, c.HoleDesignMode)
	assert.Equal(t, detailed.FixedHingeHole, c.TopHoleType)
	assert.Equal(t, detailed.FixedHinge{FixHingeC2: 60, FixHingeD2: 50}, c.TopHole)
	assert.Equal(t, detailed.SlidingHingeHole, c.BottomHoleType)
	assert.Equal(t, detailed.SlidingHinge{SlidingHingeC1: 70, SlidingHingeD1: 55, SlidingHingeE1: 65, SlidingHingeF1: 50, SlidingHingeH1: 50}, c.BottomHole)
	assert.Equal(t, detailed.HolePosition{A1: 100, A2: 100, B1: 300, B2: 300}, c.TopHolePosition)
	assert.Equal(t, c.TopHolePosition, c.BottomHolePosition)
	assert.Equal(t, detailed.AutoJoint, c.TopJoint)
	require.NotNil(t, c.StepSlot)
	assert.Equal(t, detailed.StepSlot{A: 9, B: 6, C: 15, D: 8, E: 6}, *c.StepSlot)
	assert.Equal(t, detailed.No, c.WaterDripDesignMode)
	assert.Nil(t, c.WaterDrip)
	assert.Nil(t, c.WaterDripLayout)
	assert.Nil(t, c.WaterDripShape)
	assert.Nil(t, c.WaterDripPosition)
}

func TestConstructionDetailed_AutomaticDiscardsInput(t *testing.T) {
	c, err := detailed.NewConstructionDetailed(map[string]any{
		"hole_design_mode":       0,
		"top_hole":               "garbage",
		"top_hole_type":          7,
		"joint_design_mode":      0,
		"top_joint":              []any{-1},
		"step_slot_design_mode":  2,
		"step_slot":              map[string]any{"a": 1},
		"water_drip_design_mode": 0,
		"water_drip":             42,
	})
	require.NoError(t, err)

	assert.Equal(t, detailed.AutoTopHole, c.TopHole)
	assert.Equal(t, detailed.FixedHingeHole, c.TopHoleType)
	assert.Equal(t, detailed.AutoJoint, c.TopJoint)
	assert.Nil(t, c.StepSlot)
	assert.Equal(t, detailed.AutoWaterDrip, c.WaterDrip)
	require.NotNil(t, c.WaterDripLayout)
	assert.Equal(t, detailed.Both, *c.WaterDripLayout)
}

func TestConstructionDetailed_Manual(t *testing.T) {
	c, err := detailed.NewConstructionDetailed(manualConstruction())
	require.NoError(t, err)

	assert.Equal(t, detailed.FixedHinge{FixHingeC2: 65, FixHingeD2: 55}, c.TopHole)
	assert.Equal(t, detailed.SlidingHinge{SlidingHingeC1: 75, SlidingHingeD1: 60, SlidingHingeE1: 70, SlidingHingeF1: 50, SlidingHingeH1: 50}, c.BottomHole)
	assert.Equal(t, 280.0, c.TopHolePosition.B1)
	assert.Equal(t, 25.0, c.BottomJoint.JointB)
	require.NotNil(t, c.StepSlotPosition)
	assert.Equal(t, 40.0, c.StepSlotPosition.C1)
	assert.Equal(t, detailed.WaterDripSemicircle{A: 15, B: 8}, c.WaterDrip)
	require.NotNil(t, c.WaterDripLayout)
	assert.Equal(t, detailed.OnlyTop, *c.WaterDripLayout)
}

func TestConstructionDetailed_ManualRequiresEveryField(t *testing.T) {
	for field := range manualConstruction() {
		if field == "hole_design_mode" || field == "joint_design_mode" ||
			field == "step_slot_design_mode" || field == "water_drip_design_mode" {
			continue
		}
		t.Run(field, func(t *testing.T) {
			raw := manualConstruction()
			delete(raw, field)

			_, err := detailed.NewConstructionDetailed(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, record.ErrMissing)
			assert.Equal(t, field, record.FieldOf(err))
		})
	}
}

func TestConstructionDetailed_MissingMode(t *testing.T) {
	for _, mode := range []string{"hole_design_mode", "joint_design_mode", "step_slot_design_mode", "water_drip_design_mode"} {
		t.Run(mode, func(t *testing.T) {
			raw := manualConstruction()
			delete(raw, mode)
			_, err := detailed.NewConstructionDetailed(raw)
			assert.ErrorIs(t, err, record.ErrMissing)
			assert.Equal(t, mode, record.FieldOf(err))
		})
	}
}

func TestConstructionDetailed_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		patch map[string]any
		field string
		kind  error
	}{
		{"hole mode NO is not allowed", map[string]any{"hole_design_mode": 2}, "hole_design_mode", record.ErrTypeMismatch},
		{"mode out of range", map[string]any{"step_slot_design_mode": 3}, "step_slot_design_mode", record.ErrTypeMismatch},
		{"hole type out of range", map[string]any{"top_hole_type": 5}, "top_hole_type", record.ErrTypeMismatch},
		{"hole shape disagrees with type", map[string]any{"top_hole_type": 1}, "top_hole", record.ErrTypeMismatch},
		{"hole dimension not positive", map[string]any{"top_hole": map[string]any{"fix_hinge_c2": 0, "fix_hinge_d2": 50}}, "top_hole", record.ErrTypeMismatch},
		{"position wrong shape", map[string]any{"top_hole_position": "left"}, "top_hole_position", record.ErrTypeMismatch},
		{"drip shape disagrees", map[string]any{"water_drip_shape": 0}, "water_drip", record.ErrTypeMismatch},
		{"drip layout out of range", map[string]any{"water_drip_layout": 9}, "water_drip_layout", record.ErrTypeMismatch},
		{"unknown key", map[string]any{"handrail": 1}, "handrail", record.ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := manualConstruction()
			for k, v := range tt.patch {
				raw[k] = v
			}
			_, err := detailed.NewConstructionDetailed(raw)
			require.Error(t, err)
			assert.Equal(t, tt.kind, record.KindOf(err))
			assert.Equal(t, tt.field, record.FieldOf(err))
		})
	}
}

func TestConstructionDetailed_Deterministic(t *testing.T) {
	a, err := detailed.NewConstructionDetailed(manualConstruction())
	require.NoError(t, err)
	b, err := detailed.NewConstructionDetailed(manualConstruction())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	same, err := detailed.NewConstructionDetailed(a)
	require.NoError(t, err)
	assert.Equal(t, a, same)
}

func TestConstructionDetailed_PrebuiltUnionMembers(t *testing.T) {
	raw := manualConstruction()
	raw["top_hole"] = detailed.FixedHinge{FixHingeC2: 61, FixHingeD2: 51}
	raw["water_drip"] = &detailed.WaterDripSemicircle{A: 12, B: 6}

	c, err := detailed.NewConstructionDetailed(raw)
	require.NoError(t, err)
	assert.Equal(t, detailed.FixedHinge{FixHingeC2: 61, FixHingeD2: 51}, c.TopHole)
	assert.Equal(t, detailed.WaterDripSemicircle{A: 12, B: 6}, c.WaterDrip)
}
