package detailed

import "Stairs/internal/record"

// RebarDetailed is the reinforcement layout of the flight.
type RebarDetailed struct {
	RebarDesignMode DesignMode `json:"rebar_design_mode"`

	BottomEdgeLongitudinalRebar RebarDiamSpac `json:"bottom_edge_longitudinal_rebar"`
	TopEdgeLongitudinalRebar    RebarDiamSpac `json:"top_edge_longitudinal_rebar"`
	MidDistributionRebar        RebarDiamSpac `json:"mid_distribution_rebar"`
	BottomEdgeStirrup           RebarDiamSpac `json:"bottom_edge_stirrup"`
	TopEdgeStirrup              RebarDiamSpac `json:"top_edge_stirrup"`

	HoleReinforceRebar       RebarDiam `json:"hole_reinforce_rebar"`
	LiftingReinforceRebar    RebarDiam `json:"lifting_reinforce_rebar"`
	TopEdgeReinforceRebar    RebarDiam `json:"top_edge_reinforce_rebar"`
	BottomEdgeReinforceRebar RebarDiam `json:"bottom_edge_reinforce_rebar"`
}

// AutoRebar is the automatic reinforcement layout.
var AutoRebar = RebarDetailed{
	RebarDesignMode:             Automatic,
	BottomEdgeLongitudinalRebar: RebarDiamSpac{Diameter: 10, Spacing: 150},
	TopEdgeLongitudinalRebar:    RebarDiamSpac{Diameter: 10, Spacing: 150},
	MidDistributionRebar:        RebarDiamSpac{Diameter: 8, Spacing: 200},
	BottomEdgeStirrup:           RebarDiamSpac{Diameter: 8, Spacing: 100},
	TopEdgeStirrup:              RebarDiamSpac{Diameter: 8, Spacing: 100},
	HoleReinforceRebar:          RebarDiam{Diameter: 10},
	LiftingReinforceRebar:       RebarDiam{Diameter: 10},
	TopEdgeReinforceRebar:       RebarDiam{Diameter: 12},
	BottomEdgeReinforceRebar:    RebarDiam{Diameter: 12},
}

var (
	spacedRebars = []string{
		"bottom_edge_longitudinal_rebar",
		"top_edge_longitudinal_rebar",
		"mid_distribution_rebar",
		"bottom_edge_stirrup",
		"top_edge_stirrup",
	}
	plainRebars = []string{
		"hole_reinforce_rebar",
		"lifting_reinforce_rebar",
		"top_edge_reinforce_rebar",
		"bottom_edge_reinforce_rebar",
	}
)

var rebarSchema = func() *record.Schema[RebarDetailed] {
	fields := []record.Field{record.Required("rebar_design_mode", twoModes)}
	for _, n := range spacedRebars {
		fields = append(fields, record.Deferred(n))
	}
	for _, n := range plainRebars {
		fields = append(fields, record.Deferred(n))
	}
	return record.MustDeclare[RebarDetailed](fields...).WithHook(detailRebar)
}()

func detailRebar(r RebarDetailed, raw record.Values) (RebarDetailed, error) {
	if r.RebarDesignMode == Automatic {
		return AutoRebar, nil
	}
	spaced := []*RebarDiamSpac{
		&r.BottomEdgeLongitudinalRebar,
		&r.TopEdgeLongitudinalRebar,
		&r.MidDistributionRebar,
		&r.BottomEdgeStirrup,
		&r.TopEdgeStirrup,
	}
	for i, n := range spacedRebars {
		v, err := record.Need(raw, n, rebarDiamSpacSchema.Construct)
		if err != nil {
			return r, err
		}
		*spaced[i] = v
	}
	plain := []*RebarDiam{
		&r.HoleReinforceRebar,
		&r.LiftingReinforceRebar,
		&r.TopEdgeReinforceRebar,
		&r.BottomEdgeReinforceRebar,
	}
	for i, n := range plainRebars {
		v, err := record.Need(raw, n, rebarDiamSchema.Construct)
		if err != nil {
			return r, err
		}
		*plain[i] = v
	}
	return r, nil
}

// NewRebarDetailed builds a RebarDetailed from an instance, a sequence or a
// mapping.
func NewRebarDetailed(raw any) (RebarDetailed, error) {
	return rebarSchema.Construct(raw)
}
