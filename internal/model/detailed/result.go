package detailed

import (
	"fmt"

	"Stairs/internal/catalog"
	"Stairs/internal/record"
)

// DetailedDesignResult is the output of the detailing stage. The part
// parameters are catalogue entries whose concrete type follows the part type.
type DetailedDesignResult struct {
	DetailedDesign     DetailedDesign   `json:"detailed_design"`
	LiftingType        catalog.PartType `json:"lifting_type"`
	LiftingParameter   catalog.Part     `json:"lifting_parameter"`
	DemoldingType      catalog.PartType `json:"demolding_type"`
	DemoldingParameter catalog.Part     `json:"demolding_parameter"`
	ConcreteVolume     float64          `json:"concrete_volume"` // m3
	SelfWeight         float64          `json:"self_weight_kn"`
	LiftingLoad        float64          `json:"lifting_load_kn"`   // per point
	DemoldingLoad      float64          `json:"demolding_load_kn"` // per point
}

var ResultSchema = record.MustDeclare[DetailedDesignResult](
	record.Required("detailed_design", record.Nested(DesignSchema)),
	record.Required("lifting_type", record.Enum(catalog.PartTypes...)),
	record.Deferred("lifting_parameter"),
	record.Required("demolding_type", record.Enum(catalog.PartTypes...)),
	record.Deferred("demolding_parameter"),
	record.Required("concrete_volume", record.Float()),
	record.Required("self_weight_kn", record.Float()),
	record.Required("lifting_load_kn", record.Float()),
	record.Required("demolding_load_kn", record.Float()),
).WithHook(checkResult)

func checkResult(r DetailedDesignResult, raw record.Values) (DetailedDesignResult, error) {
	var err error
	if r.LiftingParameter, err = record.Resolve("lifting_parameter", r.LiftingType, raw.Get("lifting_parameter"), catalog.PartVariants); err != nil {
		return r, err
	}
	if r.DemoldingParameter, err = record.Resolve("demolding_parameter", r.DemoldingType, raw.Get("demolding_parameter"), catalog.PartVariants); err != nil {
		return r, err
	}
	for _, d := range []dim{
		{"concrete_volume", r.ConcreteVolume},
		{"self_weight_kn", r.SelfWeight},
		{"lifting_load_kn", r.LiftingLoad},
		{"demolding_load_kn", r.DemoldingLoad},
	} {
		if err := record.Positive(d.field, d.v); err != nil {
			return r, err
		}
	}

	in := r.DetailedDesign.InsertsDetailed
	for _, c := range []struct {
		field  string
		typ    catalog.PartType
		part   catalog.Part
		load   float64
		want   catalog.PartType
		name   string
		manual bool
	}{
		{"lifting_parameter", r.LiftingType, r.LiftingParameter, r.LiftingLoad, in.LiftingType, in.LiftingName, in.LiftingDesignMode == Manual},
		{"demolding_parameter", r.DemoldingType, r.DemoldingParameter, r.DemoldingLoad, in.DemoldingType, in.DemoldingName, in.DemoldingDesignMode == Manual},
	} {
		entry, ok := catalog.Lookup(c.typ, c.part.PartName())
		if !ok || entry != c.part {
			return r, record.NotInCatalog(c.field, c.part.PartName(), catalog.Names(c.typ))
		}
		if c.typ != c.want {
			return r, record.Mismatch(c.field, c.typ, fmt.Errorf("inserts specify %v", c.want))
		}
		if c.manual && c.part.PartName() != c.name {
			return r, record.Mismatch(c.field, c.part.PartName(), fmt.Errorf("inserts specify %s", c.name))
		}
		if c.part.LoadCapacity() < c.load {
			return r, record.Mismatch(c.field, c.part.PartName(),
				fmt.Errorf("capacity %.1f kN below load %.2f kN", c.part.LoadCapacity(), c.load))
		}
	}
	return r, nil
}

// NewDetailedDesignResult builds a DetailedDesignResult from an instance, a
// sequence or a mapping.
func NewDetailedDesignResult(raw any) (DetailedDesignResult, error) {
	return ResultSchema.Construct(raw)
}

// Validate re-runs coercion and every check over r.
func (r DetailedDesignResult) Validate() (DetailedDesignResult, error) {
	return ResultSchema.Normalize(r)
}
