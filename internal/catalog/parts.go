// Package catalog holds the closed sets of embedded parts and rebar sizes a
// staircase may be detailed with. The tables are built once at init and only
// read afterwards.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"Stairs/internal/record"
)

// PartType selects the family of a lifting or demolding embedded part.
type PartType int

const (
	RoundingHead PartType = iota
	Anchor
)

// PartTypes lists every member of PartType.
var PartTypes = []PartType{RoundingHead, Anchor}

func (t PartType) String() string {
	switch t {
	case RoundingHead:
		return "rounding_head"
	case Anchor:
		return "anchor"
	default:
		return fmt.Sprintf("PartType(%d)", int(t))
	}
}

// ParsePartType converts the wire integer of a part type.
func ParsePartType(n int) (PartType, error) {
	return record.ParseEnum(n, PartTypes...)
}

var ErrNoPart = errors.New("no catalog part covers the load")

// Part is one catalog entry; the concrete type follows its PartType.
type Part interface {
	PartType() PartType
	PartName() string
	LoadCapacity() float64
}

// RoundHeadParameter describes a round-head lifting anchor.
type RoundHeadParameter struct {
	Name           string  `json:"name"`
	Capacity       float64 `json:"capacity"` // kN
	Length         float64 `json:"length"`   // mm
	TopDiameter    float64 `json:"top_diameter"`
	TopHeight      float64 `json:"top_height"`
	BottomDiameter float64 `json:"bottom_diameter"`
	Radius         float64 `json:"radius"` // recess former radius
}

func (RoundHeadParameter) PartType() PartType      { return RoundingHead }
func (p RoundHeadParameter) PartName() string      { return p.Name }
func (p RoundHeadParameter) LoadCapacity() float64 { return p.Capacity }

// AnchorParameter describes a threaded sleeve anchor.
type AnchorParameter struct {
	Name           string  `json:"name"`
	Capacity       float64 `json:"capacity"` // kN
	ThreadDiameter float64 `json:"thread_diameter"`
	Length         float64 `json:"length"`
	OuterDiameter  float64 `json:"outer_diameter"`
	EdgeDistance   float64 `json:"edge_distance"`
}

func (AnchorParameter) PartType() PartType      { return Anchor }
func (p AnchorParameter) PartName() string      { return p.Name }
func (p AnchorParameter) LoadCapacity() float64 { return p.Capacity }

var (
	RoundHeadSchema = record.MustDeclare[RoundHeadParameter](
		record.Required("name", record.String()),
		record.Required("capacity", record.Float()),
		record.Required("length", record.Float()),
		record.Required("top_diameter", record.Float()),
		record.Required("top_height", record.Float()),
		record.Required("bottom_diameter", record.Float()),
		record.Required("radius", record.Float()),
	).WithHook(func(p RoundHeadParameter, _ record.Values) (RoundHeadParameter, error) {
		return p, checkEntry(p)
	})

	AnchorSchema = record.MustDeclare[AnchorParameter](
		record.Required("name", record.String()),
		record.Required("capacity", record.Float()),
		record.Required("thread_diameter", record.Float()),
		record.Required("length", record.Float()),
		record.Required("outer_diameter", record.Float()),
		record.Required("edge_distance", record.Float()),
	).WithHook(func(p AnchorParameter, _ record.Values) (AnchorParameter, error) {
		return p, checkEntry(p)
	})
)

// PartVariants resolves a raw part parameter by its PartType.
var PartVariants = map[PartType]func(any) (Part, error){
	RoundingHead: record.Variant[Part](RoundHeadSchema),
	Anchor:       record.Variant[Part](AnchorSchema),
}

func checkEntry(p Part) error {
	if p.PartName() == "" {
		return record.Missing("name")
	}
	if p.LoadCapacity() <= 0 {
		return record.Mismatch("capacity", p.LoadCapacity(), errors.New("must be positive"))
	}
	return nil
}

var parts = map[PartType][]Part{
	RoundingHead: {
		RoundHeadParameter{Name: "DJ-13-120", Capacity: 13, Length: 120, TopDiameter: 19, TopHeight: 10, BottomDiameter: 25, Radius: 30},
		RoundHeadParameter{Name: "DJ-20-140", Capacity: 20, Length: 140, TopDiameter: 26, TopHeight: 10, BottomDiameter: 35, Radius: 37},
		RoundHeadParameter{Name: "DJ-25-170", Capacity: 25, Length: 170, TopDiameter: 26, TopHeight: 10, BottomDiameter: 35, Radius: 37},
		RoundHeadParameter{Name: "DJ-40-210", Capacity: 40, Length: 210, TopDiameter: 36, TopHeight: 15, BottomDiameter: 45, Radius: 47},
		RoundHeadParameter{Name: "DJ-50-240", Capacity: 50, Length: 240, TopDiameter: 36, TopHeight: 15, BottomDiameter: 45, Radius: 47},
	},
	Anchor: {
		AnchorParameter{Name: "MS-12-60", Capacity: 8, ThreadDiameter: 12, Length: 60, OuterDiameter: 15, EdgeDistance: 100},
		AnchorParameter{Name: "MS-16-70", Capacity: 12, ThreadDiameter: 16, Length: 70, OuterDiameter: 21, EdgeDistance: 120},
		AnchorParameter{Name: "MS-20-80", Capacity: 20, ThreadDiameter: 20, Length: 80, OuterDiameter: 27, EdgeDistance: 140},
		AnchorParameter{Name: "MS-24-100", Capacity: 25, ThreadDiameter: 24, Length: 100, OuterDiameter: 31, EdgeDistance: 160},
		AnchorParameter{Name: "MS-30-120", Capacity: 40, ThreadDiameter: 30, Length: 120, OuterDiameter: 39, EdgeDistance: 200},
	},
}

var names map[PartType]map[string]Part

func init() {
	names = make(map[PartType]map[string]Part, len(parts))
	for t, entries := range parts {
		slices.SortFunc(entries, func(a, b Part) int {
			switch {
			case a.LoadCapacity() < b.LoadCapacity():
				return -1
			case a.LoadCapacity() > b.LoadCapacity():
				return 1
			}
			return 0
		})
		set := make(map[string]Part, len(entries))
		for _, p := range entries {
			set[p.PartName()] = p
		}
		names[t] = set
	}
}

// Names returns the allowed part names for t, lightest first.
func Names(t PartType) []string {
	out := make([]string, 0, len(parts[t]))
	for _, p := range parts[t] {
		out = append(out, p.PartName())
	}
	return out
}

// Allowed reports whether name belongs to the catalog of t.
func Allowed(t PartType, name string) bool {
	_, ok := names[t][name]
	return ok
}

// Lookup returns the catalog entry of t called name.
func Lookup(t PartType, name string) (Part, bool) {
	p, ok := names[t][name]
	return p, ok
}

// Select returns the lightest part of t whose capacity covers load (kN).
func Select(t PartType, load float64) (Part, error) {
	entries, ok := parts[t]
	if !ok {
		return nil, fmt.Errorf("select %v: unknown part type", t)
	}
	for _, p := range entries {
		if p.LoadCapacity() >= load {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %v, %.2f kN", ErrNoPart, t, load)
}

// CheckName validates name against the catalog selected by t.
func CheckName(field string, t PartType, name string) error {
	if _, ok := names[t]; !ok {
		return record.Unreachable(field, t)
	}
	if !Allowed(t, name) {
		return record.NotInCatalog(field, name, Names(t))
	}
	return nil
}
