package detailed

import (
	"fmt"

	"Stairs/internal/catalog"
	"Stairs/internal/record"
)

// InsertsDetailed describes the parts cast into the flight: lifting points,
// demolding points and handrail plates. An empty part name in automatic mode
// means the part is selected from the catalogue by load during detailing.
type InsertsDetailed struct {
	LiftingDesignMode DesignMode       `json:"lifting_design_mode"`
	LiftingType       catalog.PartType `json:"lifting_type"`
	LiftingPosition   LiftingPosition  `json:"lifting_position"`
	LiftingName       string           `json:"lifting_name"`

	PouringWay PouringWay `json:"pouring_way"`

	DemoldingDesignMode DesignMode        `json:"demolding_design_mode"`
	DemoldingType       catalog.PartType  `json:"demolding_type"`
	DemoldingPosition   DemoldingPosition `json:"demolding_position"`
	DemoldingName       string            `json:"demolding_name"`

	RailDesignMode DesignMode     `json:"rail_design_mode"`
	RailParameter  *RailParameter `json:"rail_parameter"`
	RailNumber     []int          `json:"rail_number"`
}

// Automatic inserts.
var (
	AutoLiftingType       = catalog.RoundingHead
	AutoLiftingPosition   = LiftingPosition{A: 400, B: 400, C: 300, D: 300}
	AutoDemoldingType     = catalog.Anchor
	AutoDemoldingPosition = DemoldingPosition{A: 400, B: 400, C: 300, T: 60}
)

var partType = record.Typed[catalog.PartType](record.Enum(catalog.PartTypes...))

var insertsSchema = record.MustDeclare[InsertsDetailed](
	record.Required("lifting_design_mode", twoModes),
	record.Deferred("lifting_type"),
	record.Deferred("lifting_position"),
	record.Deferred("lifting_name"),
	record.Default("pouring_way", record.Enum(PouringWays...), VerticalHorizontal),
	record.Default("demolding_design_mode", twoModes, Automatic),
	record.Deferred("demolding_type"),
	record.Deferred("demolding_position"),
	record.Deferred("demolding_name"),
	record.Default("rail_design_mode", record.Enum(Manual, No), No),
	record.Deferred("rail_parameter"),
	record.Deferred("rail_number"),
).WithHook(func(in InsertsDetailed, raw record.Values) (InsertsDetailed, error) {
	if err := in.detailLifting(raw); err != nil {
		return in, err
	}
	if err := in.detailDemolding(raw); err != nil {
		return in, err
	}
	return in, in.detailRail(raw)
})

func (in *InsertsDetailed) detailLifting(raw record.Values) error {
	if in.LiftingDesignMode == Automatic {
		in.LiftingType, in.LiftingPosition, in.LiftingName = AutoLiftingType, AutoLiftingPosition, ""
		return nil
	}
	var err error
	if in.LiftingType, err = record.Need(raw, "lifting_type", partType); err != nil {
		return err
	}
	if in.LiftingPosition, err = record.Need(raw, "lifting_position", liftingPositionSchema.Construct); err != nil {
		return err
	}
	if in.LiftingName, err = record.Need(raw, "lifting_name", record.Typed[string](record.String())); err != nil {
		return err
	}
	return catalog.CheckName("lifting_name", in.LiftingType, in.LiftingName)
}

func (in *InsertsDetailed) detailDemolding(raw record.Values) error {
	if in.DemoldingDesignMode == Automatic {
		in.DemoldingType, in.DemoldingPosition, in.DemoldingName = AutoDemoldingType, AutoDemoldingPosition, ""
		return nil
	}
	var err error
	if in.DemoldingType, err = record.Need(raw, "demolding_type", partType); err != nil {
		return err
	}
	if in.DemoldingPosition, err = record.Need(raw, "demolding_position", demoldingPositionSchema.Construct); err != nil {
		return err
	}
	if in.DemoldingName, err = record.Need(raw, "demolding_name", record.Typed[string](record.String())); err != nil {
		return err
	}
	return catalog.CheckName("demolding_name", in.DemoldingType, in.DemoldingName)
}

func (in *InsertsDetailed) detailRail(raw record.Values) error {
	if in.RailDesignMode == No {
		in.RailParameter, in.RailNumber = nil, nil
		return nil
	}
	param, err := record.Need(raw, "rail_parameter", railParameterSchema.Construct)
	if err != nil {
		return err
	}
	numbers, err := record.Need(raw, "rail_number", railNumbers)
	if err != nil {
		return err
	}
	in.RailParameter, in.RailNumber = &param, numbers
	return nil
}

// railNumbers coerces the step indices carrying a handrail plate. Indices
// are 1-based and unique.
func railNumbers(v any) ([]int, error) {
	elems, err := record.SliceOf(record.Int())(v)
	if err != nil {
		return nil, err
	}
	list := elems.([]any)
	if len(list) == 0 {
		return nil, fmt.Errorf("no steps given")
	}
	seen := make(map[int]bool, len(list))
	out := make([]int, 0, len(list))
	for _, e := range list {
		n := e.(int)
		if n < 1 {
			return nil, fmt.Errorf("step %d is not positive", n)
		}
		if seen[n] {
			return nil, fmt.Errorf("step %d repeated", n)
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

// NewInsertsDetailed builds an InsertsDetailed from an instance, a sequence
// or a mapping.
func NewInsertsDetailed(raw any) (InsertsDetailed, error) {
	return insertsSchema.Construct(raw)
}
