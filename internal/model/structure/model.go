package structure

import (
	"errors"
	"fmt"

	"Stairs/internal/record"
)

// Geometric is the overall geometry of the flight, mm.
type Geometric struct {
	Height          float64 `json:"height"`
	Thickness       float64 `json:"thickness"`
	ClearSpan       float64 `json:"clear_span"`
	TopTopLength    float64 `json:"top_top_length"`
	BottomTopLength float64 `json:"bottom_top_length"`
	StepsNumber     int     `json:"steps_number"`
}

// LoadData holds the live load (kN/m2) and the load factors of the check.
type LoadData struct {
	LiveLoad                       float64 `json:"live_load"`
	ReinforceConcreteWeight        float64 `json:"reinforce_concrete_weight"` // kN/m3
	PermanentLoadPartialFactor     float64 `json:"permanent_load_partial_factor"`
	LiveLoadPartialFactor          float64 `json:"live_load_partial_factor"`
	CombinationValueCoefficient    float64 `json:"combination_value_coefficient"`
	QuasiPermanentValueCoefficient float64 `json:"quasi_permanent_value_coefficient"`
	DynamicLoadFactor              float64 `json:"dynamic_load_factor"`
}

// LimitSetting holds the serviceability limits: crack width in mm and the
// deflection limit as a span ratio.
type LimitSetting struct {
	CrackLimit      float64 `json:"crack_limit"`
	DeflectionLimit float64 `json:"deflection_limit"`
}

// Material selects the rebar and concrete grades.
type Material struct {
	RebarGrade    RebarGrade    `json:"rebar_grade"`
	ConcreteGrade ConcreteGrade `json:"concrete_grade"`
}

// Construction holds cover and bar margins, mm.
type Construction struct {
	ConcreteCover            float64 `json:"concrete_cover"`
	LongitudinalTopMargin    float64 `json:"longitudinal_top_margin"`
	LongitudinalBottomMargin float64 `json:"longitudinal_bottom_margin"`
}

// StructuralDesign is the full input of the structural calculation.
type StructuralDesign struct {
	Geometric    Geometric    `json:"geometric"`
	LoadData     LoadData     `json:"load_data"`
	LimitSetting LimitSetting `json:"limit_setting"`
	Material     Material     `json:"material"`
	Construction Construction `json:"construction"`
}

func DefaultLimitSetting() LimitSetting {
	return LimitSetting{CrackLimit: 0.3, DeflectionLimit: 200}
}

func DefaultConstruction() Construction {
	return Construction{ConcreteCover: 20, LongitudinalTopMargin: 20, LongitudinalBottomMargin: 20}
}

var errCoefficient = errors.New("must lie in [0, 1]")

var geometricSchema = record.MustDeclare[Geometric](
	record.Required("height", record.Float()),
	record.Required("thickness", record.Float()),
	record.Required("clear_span", record.Float()),
	record.Required("top_top_length", record.Float()),
	record.Required("bottom_top_length", record.Float()),
	record.Required("steps_number", record.Int()),
).WithHook(func(g Geometric, _ record.Values) (Geometric, error) {
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"height", g.Height},
		{"thickness", g.Thickness},
		{"clear_span", g.ClearSpan},
		{"top_top_length", g.TopTopLength},
		{"bottom_top_length", g.BottomTopLength},
	} {
		if err := record.Positive(c.field, c.v); err != nil {
			return g, err
		}
	}
	if g.StepsNumber < 2 {
		return g, record.Mismatch("steps_number", g.StepsNumber, errors.New("a flight needs at least two steps"))
	}
	return g, nil
})

var loadDataSchema = record.MustDeclare[LoadData](
	record.Required("live_load", record.Float()),
	record.Default("reinforce_concrete_weight", record.Float(), 25.0),
	record.Default("permanent_load_partial_factor", record.Float(), 1.3),
	record.Default("live_load_partial_factor", record.Float(), 1.5),
	record.Default("combination_value_coefficient", record.Float(), 0.7),
	record.Default("quasi_permanent_value_coefficient", record.Float(), 0.4),
	record.Default("dynamic_load_factor", record.Float(), 1.5),
).WithHook(func(l LoadData, _ record.Values) (LoadData, error) {
	if l.LiveLoad < 0 {
		return l, record.Mismatch("live_load", l.LiveLoad, errors.New("must not be negative"))
	}
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"reinforce_concrete_weight", l.ReinforceConcreteWeight},
		{"permanent_load_partial_factor", l.PermanentLoadPartialFactor},
		{"live_load_partial_factor", l.LiveLoadPartialFactor},
		{"dynamic_load_factor", l.DynamicLoadFactor},
	} {
		if err := record.Positive(c.field, c.v); err != nil {
			return l, err
		}
	}
	if l.CombinationValueCoefficient < 0 || l.CombinationValueCoefficient > 1 {
		return l, record.Mismatch("combination_value_coefficient", l.CombinationValueCoefficient, errCoefficient)
	}
	if l.QuasiPermanentValueCoefficient < 0 || l.QuasiPermanentValueCoefficient > 1 {
		return l, record.Mismatch("quasi_permanent_value_coefficient", l.QuasiPermanentValueCoefficient, errCoefficient)
	}
	return l, nil
})

var limitSettingSchema = record.MustDeclare[LimitSetting](
	record.Default("crack_limit", record.Float(), 0.3),
	record.Default("deflection_limit", record.Float(), 200.0),
).WithHook(func(l LimitSetting, _ record.Values) (LimitSetting, error) {
	if err := record.Positive("crack_limit", l.CrackLimit); err != nil {
		return l, err
	}
	return l, record.Positive("deflection_limit", l.DeflectionLimit)
})

var materialSchema = record.MustDeclare[Material](
	record.Required("rebar_grade", record.Enum(RebarGrades...)),
	record.Required("concrete_grade", record.Enum(ConcreteGrades...)),
)

var constructionSchema = record.MustDeclare[Construction](
	record.Default("concrete_cover", record.Float(), 20.0),
	record.Default("longitudinal_top_margin", record.Float(), 20.0),
	record.Default("longitudinal_bottom_margin", record.Float(), 20.0),
).WithHook(func(c Construction, _ record.Values) (Construction, error) {
	if err := record.Positive("concrete_cover", c.ConcreteCover); err != nil {
		return c, err
	}
	if c.LongitudinalTopMargin < 0 || c.LongitudinalBottomMargin < 0 {
		return c, record.Mismatch("longitudinal_top_margin", c.LongitudinalTopMargin, fmt.Errorf("margins must not be negative"))
	}
	return c, nil
})

// DesignSchema declares StructuralDesign; every nested field is coerced by
// its own schema.
var DesignSchema = record.MustDeclare[StructuralDesign](
	record.Required("geometric", record.Nested(geometricSchema)),
	record.Required("load_data", record.Nested(loadDataSchema)),
	record.Factory("limit_setting", record.Nested(limitSettingSchema), func() any { return DefaultLimitSetting() }),
	record.Required("material", record.Nested(materialSchema)),
	record.Factory("construction", record.Nested(constructionSchema), func() any { return DefaultConstruction() }),
).WithHook(func(d StructuralDesign, _ record.Values) (StructuralDesign, error) {
	if d.Construction.ConcreteCover*2 >= d.Geometric.Thickness {
		return d, record.Mismatch("concrete_cover", d.Construction.ConcreteCover,
			fmt.Errorf("cover leaves no section in a %.0f mm slab", d.Geometric.Thickness))
	}
	return d, nil
})

// NewStructuralDesign builds a StructuralDesign from an instance, a sequence
// or a mapping, validating the whole tree.
func NewStructuralDesign(raw any) (StructuralDesign, error) {
	return DesignSchema.Construct(raw)
}

func NewGeometric(raw any) (Geometric, error)       { return geometricSchema.Construct(raw) }
func NewLoadData(raw any) (LoadData, error)         { return loadDataSchema.Construct(raw) }
func NewLimitSetting(raw any) (LimitSetting, error) { return limitSettingSchema.Construct(raw) }
func NewMaterial(raw any) (Material, error)         { return materialSchema.Construct(raw) }
func NewConstruction(raw any) (Construction, error) { return constructionSchema.Construct(raw) }
