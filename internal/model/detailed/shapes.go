package detailed

import (
	"strconv"

	"Stairs/internal/catalog"
	"Stairs/internal/record"
)

// All dimensions below are in mm.

// Hole is the shape of a support hole; the concrete type follows HoleType.
type Hole interface {
	HoleType() HoleType
}

// FixedHinge is the hole of a pinned support.
type FixedHinge struct {
	FixHingeC2 float64 `json:"fix_hinge_c2"`
	FixHingeD2 float64 `json:"fix_hinge_d2"`
}

func (FixedHinge) HoleType() HoleType { return FixedHingeHole }

// SlidingHinge is the stepped hole of a sliding support.
type SlidingHinge struct {
	SlidingHingeC1 float64 `json:"sliding_hinge_c1"`
	SlidingHingeD1 float64 `json:"sliding_hinge_d1"`
	SlidingHingeE1 float64 `json:"sliding_hinge_e1"`
	SlidingHingeF1 float64 `json:"sliding_hinge_f1"`
	SlidingHingeH1 float64 `json:"sliding_hinge_h1"`
}

func (SlidingHinge) HoleType() HoleType { return SlidingHingeHole }

// HolePosition locates the two holes of a landing: a from the end edge, b
// from the side edge.
type HolePosition struct {
	A1 float64 `json:"a1"`
	A2 float64 `json:"a2"`
	B1 float64 `json:"b1"`
	B2 float64 `json:"b2"`
}

// Joint is the gap detail between a landing and its supporting beam.
type Joint struct {
	JointA float64 `json:"joint_a"`
	JointB float64 `json:"joint_b"`
	JointC float64 `json:"joint_c"`
}

// StepSlot is the anti-slip groove cut into each tread.
type StepSlot struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	E float64 `json:"e"`
}

type StepSlotPosition struct {
	C1 float64 `json:"c1"`
	C2 float64 `json:"c2"`
	C3 float64 `json:"c3"`
}

// WaterDrip is the drip groove section; the concrete type follows
// WaterDripShape.
type WaterDrip interface {
	WaterDripShape() WaterDripShape
}

type WaterDripTrapezoid struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

func (WaterDripTrapezoid) WaterDripShape() WaterDripShape { return Trapezoid }

type WaterDripSemicircle struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

func (WaterDripSemicircle) WaterDripShape() WaterDripShape { return Semicircle }

type WaterDripPosition struct {
	A1 float64 `json:"a1"`
	A2 float64 `json:"a2"`
	B1 float64 `json:"b1"`
	B2 float64 `json:"b2"`
}

// LiftingPosition places the four lifting points: a and b along the flight
// from the top and bottom ends, c and d from the two side edges.
type LiftingPosition struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// DemoldingPosition places the demolding points; t is the embedment depth.
type DemoldingPosition struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	T float64 `json:"t"`
}

// RailParameter is the embedded plate of a handrail post.
type RailParameter struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	T float64 `json:"t"`
}

// RebarDiamSpac is a bar size with its spacing.
type RebarDiamSpac struct {
	Diameter int     `json:"diameter"`
	Spacing  float64 `json:"spacing"`
}

// RebarDiam is a bar size.
type RebarDiam struct {
	Diameter int `json:"diameter"`
}

type dim struct {
	field string
	v     float64
}

// leaf declares a record of required float dimensions that must all be
// positive.
func leaf[T any](dims func(T) []dim, names ...string) *record.Schema[T] {
	fields := make([]record.Field, len(names))
	for i, n := range names {
		fields[i] = record.Required(n, record.Float())
	}
	return record.MustDeclare[T](fields...).WithHook(func(rec T, _ record.Values) (T, error) {
		for _, d := range dims(rec) {
			if err := record.Positive(d.field, d.v); err != nil {
				return rec, err
			}
		}
		return rec, nil
	})
}

var (
	fixedHingeSchema = leaf(func(h FixedHinge) []dim {
		return []dim{{"fix_hinge_c2", h.FixHingeC2}, {"fix_hinge_d2", h.FixHingeD2}}
	}, "fix_hinge_c2", "fix_hinge_d2")

	slidingHingeSchema = leaf(func(h SlidingHinge) []dim {
		return []dim{
			{"sliding_hinge_c1", h.SlidingHingeC1}, {"sliding_hinge_d1", h.SlidingHingeD1},
			{"sliding_hinge_e1", h.SlidingHingeE1}, {"sliding_hinge_f1", h.SlidingHingeF1},
			{"sliding_hinge_h1", h.SlidingHingeH1},
		}
	}, "sliding_hinge_c1", "sliding_hinge_d1", "sliding_hinge_e1", "sliding_hinge_f1", "sliding_hinge_h1")

	holePositionSchema = leaf(func(p HolePosition) []dim {
		return []dim{{"a1", p.A1}, {"a2", p.A2}, {"b1", p.B1}, {"b2", p.B2}}
	}, "a1", "a2", "b1", "b2")

	jointSchema = leaf(func(j Joint) []dim {
		return []dim{{"joint_a", j.JointA}, {"joint_b", j.JointB}, {"joint_c", j.JointC}}
	}, "joint_a", "joint_b", "joint_c")

	stepSlotSchema = leaf(func(s StepSlot) []dim {
		return []dim{{"a", s.A}, {"b", s.B}, {"c", s.C}, {"d", s.D}, {"e", s.E}}
	}, "a", "b", "c", "d", "e")

	stepSlotPositionSchema = leaf(func(p StepSlotPosition) []dim {
		return []dim{{"c1", p.C1}, {"c2", p.C2}, {"c3", p.C3}}
	}, "c1", "c2", "c3")

	waterDripTrapezoidSchema = leaf(func(w WaterDripTrapezoid) []dim {
		return []dim{{"a", w.A}, {"b", w.B}, {"c", w.C}}
	}, "a", "b", "c")

	waterDripSemicircleSchema = leaf(func(w WaterDripSemicircle) []dim {
		return []dim{{"a", w.A}, {"b", w.B}}
	}, "a", "b")

	waterDripPositionSchema = leaf(func(p WaterDripPosition) []dim {
		return []dim{{"a1", p.A1}, {"a2", p.A2}, {"b1", p.B1}, {"b2", p.B2}}
	}, "a1", "a2", "b1", "b2")

	liftingPositionSchema = leaf(func(p LiftingPosition) []dim {
		return []dim{{"a", p.A}, {"b", p.B}, {"c", p.C}, {"d", p.D}}
	}, "a", "b", "c", "d")

	demoldingPositionSchema = leaf(func(p DemoldingPosition) []dim {
		return []dim{{"a", p.A}, {"b", p.B}, {"c", p.C}, {"t", p.T}}
	}, "a", "b", "c", "t")

	railParameterSchema = leaf(func(p RailParameter) []dim {
		return []dim{{"a", p.A}, {"b", p.B}, {"c", p.C}, {"d", p.D}, {"t", p.T}}
	}, "a", "b", "c", "d", "t")

	rebarDiamSpacSchema = record.MustDeclare[RebarDiamSpac](
		record.Required("diameter", record.Int()),
		record.Required("spacing", record.Float()),
	).WithHook(func(r RebarDiamSpac, _ record.Values) (RebarDiamSpac, error) {
		if err := checkDiameter(r.Diameter); err != nil {
			return r, err
		}
		return r, record.Positive("spacing", r.Spacing)
	})

	rebarDiamSchema = record.MustDeclare[RebarDiam](
		record.Required("diameter", record.Int()),
	).WithHook(func(r RebarDiam, _ record.Values) (RebarDiam, error) {
		return r, checkDiameter(r.Diameter)
	})
)

func checkDiameter(d int) error {
	if catalog.ValidDiameter(d) {
		return nil
	}
	allowed := make([]string, 0, 12)
	for _, v := range catalog.RebarDiameters() {
		allowed = append(allowed, strconv.Itoa(v))
	}
	return record.NotInCatalog("diameter", d, allowed)
}

var holeVariants = map[HoleType]func(any) (Hole, error){
	FixedHingeHole:   record.Variant[Hole](fixedHingeSchema),
	SlidingHingeHole: record.Variant[Hole](slidingHingeSchema),
}

var waterDripVariants = map[WaterDripShape]func(any) (WaterDrip, error){
	Trapezoid:  record.Variant[WaterDrip](waterDripTrapezoidSchema),
	Semicircle: record.Variant[WaterDrip](waterDripSemicircleSchema),
}

// ResolveHole builds the hole shape of field from raw according to t.
func ResolveHole(field string, t HoleType, raw any) (Hole, error) {
	return record.Resolve(field, t, raw, holeVariants)
}

// ResolveWaterDrip builds the water drip section of field from raw according to s.
func ResolveWaterDrip(field string, s WaterDripShape, raw any) (WaterDrip, error) {
	return record.Resolve(field, s, raw, waterDripVariants)
}

func NewFixedHinge(raw any) (FixedHinge, error)       { return fixedHingeSchema.Construct(raw) }
func NewSlidingHinge(raw any) (SlidingHinge, error)   { return slidingHingeSchema.Construct(raw) }
func NewStepSlot(raw any) (StepSlot, error)           { return stepSlotSchema.Construct(raw) }
func NewRebarDiamSpac(raw any) (RebarDiamSpac, error) { return rebarDiamSpacSchema.Construct(raw) }
func NewRebarDiam(raw any) (RebarDiam, error)         { return rebarDiamSchema.Construct(raw) }
