package detailed

import (
	"errors"

	"Stairs/internal/record"
)

// GeometricDetailed refines the flight geometry for detailing, mm.
type GeometricDetailed struct {
	Width              float64 `json:"width"`
	TopToLength        float64 `json:"top_to_length"`
	BottomToLength     float64 `json:"bottom_to_length"`
	TopExtendLength    float64 `json:"top_extend_length"`
	BottomExtendLength float64 `json:"bottom_extend_length"`
	TopB               float64 `json:"top_b"`
	BottomB            float64 `json:"bottom_b"`
	TopThickness       float64 `json:"top_thickness"`
	BottomThickness    float64 `json:"bottom_thickness"`
}

// DetailedDesign is the full input of the detailing stage.
type DetailedDesign struct {
	GeometricDetailed    GeometricDetailed    `json:"geometric_detailed"`
	ConstructionDetailed ConstructionDetailed `json:"construction_detailed"`
	InsertsDetailed      InsertsDetailed      `json:"inserts_detailed"`
	RebarDetailed        RebarDetailed        `json:"rebar_detailed"`
}

var errNegative = errors.New("must not be negative")

var geometricSchema = record.MustDeclare[GeometricDetailed](
	record.Required("width", record.Float()),
	record.Required("top_to_length", record.Float()),
	record.Required("bottom_to_length", record.Float()),
	record.Default("top_extend_length", record.Float(), 0.0),
	record.Default("bottom_extend_length", record.Float(), 0.0),
	record.Default("top_b", record.Float(), 0.0),
	record.Default("bottom_b", record.Float(), 0.0),
	record.Required("top_thickness", record.Float()),
	record.Required("bottom_thickness", record.Float()),
).WithHook(func(g GeometricDetailed, _ record.Values) (GeometricDetailed, error) {
	for _, d := range []dim{
		{"width", g.Width},
		{"top_to_length", g.TopToLength},
		{"bottom_to_length", g.BottomToLength},
		{"top_thickness", g.TopThickness},
		{"bottom_thickness", g.BottomThickness},
	} {
		if err := record.Positive(d.field, d.v); err != nil {
			return g, err
		}
	}
	for _, d := range []dim{
		{"top_extend_length", g.TopExtendLength},
		{"bottom_extend_length", g.BottomExtendLength},
		{"top_b", g.TopB},
		{"bottom_b", g.BottomB},
	} {
		if d.v < 0 {
			return g, record.Mismatch(d.field, d.v, errNegative)
		}
	}
	return g, nil
})

// DesignSchema declares DetailedDesign.
var DesignSchema = record.MustDeclare[DetailedDesign](
	record.Required("geometric_detailed", record.Nested(geometricSchema)),
	record.Required("construction_detailed", record.Nested(constructionSchema)),
	record.Required("inserts_detailed", record.Nested(insertsSchema)),
	record.Required("rebar_detailed", record.Nested(rebarSchema)),
)

// NewDetailedDesign builds a DetailedDesign, coercing every nested record.
func NewDetailedDesign(raw any) (DetailedDesign, error) {
	return DesignSchema.Construct(raw)
}

func NewGeometricDetailed(raw any) (GeometricDetailed, error) { return geometricSchema.Construct(raw) }
