package structure

import (
	"errors"

	"Stairs/internal/record"
)

// StructuralDesignResult is a validated design together with the derived
// geometry and load combinations. Lengths in mm, loads in kN/m.
type StructuralDesignResult struct {
	StructuralDesign      StructuralDesign  `json:"structural_design"`
	Concrete              ConcreteParameter `json:"concrete"`
	Steel                 SteelParameter    `json:"steel"`
	StepHeight            float64           `json:"step_height"`
	StepWidth             float64           `json:"step_width"`
	CosAlpha              float64           `json:"cos_alpha"`
	L0                    float64           `json:"l0"`
	TotalHorizontalLength float64           `json:"total_horizontal_length"`
	SelfWeight            float64           `json:"self_weight"`
	PermanentLoad         float64           `json:"permanent_load"`
	LiveLoad              float64           `json:"live_load"`
	DesignLoad            float64           `json:"design_load"`
	StandardLoad          float64           `json:"standard_load"`
	QuasiPermanentLoad    float64           `json:"quasi_permanent_load"`
}

// ResultSchema declares StructuralDesignResult.
var ResultSchema = record.MustDeclare[StructuralDesignResult](
	record.Required("structural_design", record.Nested(DesignSchema)),
	record.Required("concrete", record.Nested(concreteSchema)),
	record.Required("steel", record.Nested(steelSchema)),
	record.Required("step_height", record.Float()),
	record.Required("step_width", record.Float()),
	record.Required("cos_alpha", record.Float()),
	record.Required("l0", record.Float()),
	record.Required("total_horizontal_length", record.Float()),
	record.Required("self_weight", record.Float()),
	record.Required("permanent_load", record.Float()),
	record.Required("live_load", record.Float()),
	record.Required("design_load", record.Float()),
	record.Required("standard_load", record.Float()),
	record.Required("quasi_permanent_load", record.Float()),
).WithHook(checkResult)

func checkResult(r StructuralDesignResult, _ record.Values) (StructuralDesignResult, error) {
	m := r.StructuralDesign.Material
	if r.Concrete.Grade != m.ConcreteGrade {
		return r, record.Mismatch("concrete", r.Concrete.Grade, errors.New("grade differs from material.concrete_grade"))
	}
	if r.Steel.Grade != m.RebarGrade {
		return r, record.Mismatch("steel", r.Steel.Grade, errors.New("grade differs from material.rebar_grade"))
	}
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"step_height", r.StepHeight},
		{"step_width", r.StepWidth},
		{"cos_alpha", r.CosAlpha},
		{"l0", r.L0},
		{"total_horizontal_length", r.TotalHorizontalLength},
		{"self_weight", r.SelfWeight},
		{"permanent_load", r.PermanentLoad},
		{"design_load", r.DesignLoad},
		{"standard_load", r.StandardLoad},
		{"quasi_permanent_load", r.QuasiPermanentLoad},
	} {
		if err := record.Positive(c.field, c.v); err != nil {
			return r, err
		}
	}
	if r.CosAlpha > 1 {
		return r, record.Mismatch("cos_alpha", r.CosAlpha, errors.New("must not exceed 1"))
	}
	if r.DesignLoad < r.StandardLoad {
		return r, record.Mismatch("design_load", r.DesignLoad, errors.New("below the standard combination"))
	}
	return r, nil
}

// NewStructuralDesignResult builds a result from an instance or raw data.
func NewStructuralDesignResult(raw any) (StructuralDesignResult, error) {
	return ResultSchema.Construct(raw)
}

// Validate re-runs the result checks over r.
func (r StructuralDesignResult) Validate() (StructuralDesignResult, error) {
	return ResultSchema.Normalize(r)
}
