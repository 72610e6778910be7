package detailed

import (
	"Stairs/internal/record"
)

// ConstructionDetailed is the concrete detailing of the flight: support
// holes, joints, step slots and water drips. Every group is driven by its own
// design mode; the dependent fields are filled by the mode and any input
// supplied for them in automatic mode is discarded.
type ConstructionDetailed struct {
	HoleDesignMode     DesignMode   `json:"hole_design_mode"`
	TopHoleType        HoleType     `json:"top_hole_type"`
	TopHole            Hole         `json:"top_hole"`
	BottomHoleType     HoleType     `json:"bottom_hole_type"`
	BottomHole         Hole         `json:"bottom_hole"`
	TopHolePosition    HolePosition `json:"top_hole_position"`
	BottomHolePosition HolePosition `json:"bottom_hole_position"`

	JointDesignMode DesignMode `json:"joint_design_mode"`
	TopJoint        Joint      `json:"top_joint"`
	BottomJoint     Joint      `json:"bottom_joint"`

	StepSlotDesignMode DesignMode        `json:"step_slot_design_mode"`
	StepSlot           *StepSlot         `json:"step_slot"`
	StepSlotPosition   *StepSlotPosition `json:"step_slot_position"`

	WaterDripDesignMode DesignMode         `json:"water_drip_design_mode"`
	WaterDripLayout     *WaterDripLayout   `json:"water_drip_layout"`
	WaterDripShape      *WaterDripShape    `json:"water_drip_shape"`
	WaterDrip           WaterDrip          `json:"water_drip"`
	WaterDripPosition   *WaterDripPosition `json:"water_drip_position"`
}

// Automatic construction detailing.
var (
	AutoTopHole      = FixedHinge{FixHingeC2: 60, FixHingeD2: 50}
	AutoBottomHole   = SlidingHinge{SlidingHingeC1: 70, SlidingHingeD1: 55, SlidingHingeE1: 65, SlidingHingeF1: 50, SlidingHingeH1: 50}
	AutoHolePosition = HolePosition{A1: 100, A2: 100, B1: 300, B2: 300}

	AutoJoint = Joint{JointA: 30, JointB: 20, JointC: 20}

	AutoStepSlot         = StepSlot{A: 9, B: 6, C: 15, D: 8, E: 6}
	AutoStepSlotPosition = StepSlotPosition{C1: 50, C2: 50, C3: 20}

	AutoWaterDripLayout   = Both
	AutoWaterDripShape    = Trapezoid
	AutoWaterDrip         = WaterDripTrapezoid{A: 20, B: 15, C: 10}
	AutoWaterDripPosition = WaterDripPosition{A1: 15, A2: 15, B1: 15, B2: 15}
)

var (
	twoModes   = record.Enum(Automatic, Manual)
	threeModes = record.Enum(Automatic, Manual, No)
)

var constructionSchema = record.MustDeclare[ConstructionDetailed](
	record.Required("hole_design_mode", twoModes),
	record.Deferred("top_hole_type"),
	record.Deferred("top_hole"),
	record.Deferred("bottom_hole_type"),
	record.Deferred("bottom_hole"),
	record.Deferred("top_hole_position"),
	record.Deferred("bottom_hole_position"),
	record.Required("joint_design_mode", twoModes),
	record.Deferred("top_joint"),
	record.Deferred("bottom_joint"),
	record.Required("step_slot_design_mode", threeModes),
	record.Deferred("step_slot"),
	record.Deferred("step_slot_position"),
	record.Required("water_drip_design_mode", threeModes),
	record.Deferred("water_drip_layout"),
	record.Deferred("water_drip_shape"),
	record.Deferred("water_drip"),
	record.Deferred("water_drip_position"),
).WithHook(func(c ConstructionDetailed, raw record.Values) (ConstructionDetailed, error) {
	for _, axis := range []func(*ConstructionDetailed, record.Values) error{
		(*ConstructionDetailed).detailHoles,
		(*ConstructionDetailed).detailJoints,
		(*ConstructionDetailed).detailStepSlot,
		(*ConstructionDetailed).detailWaterDrip,
	} {
		if err := axis(&c, raw); err != nil {
			return c, err
		}
	}
	return c, nil
})

func (c *ConstructionDetailed) detailHoles(raw record.Values) error {
	if c.HoleDesignMode == Automatic {
		c.TopHoleType, c.TopHole = FixedHingeHole, AutoTopHole
		c.BottomHoleType, c.BottomHole = SlidingHingeHole, AutoBottomHole
		c.TopHolePosition, c.BottomHolePosition = AutoHolePosition, AutoHolePosition
		return nil
	}

	var err error
	if c.TopHoleType, err = record.Need(raw, "top_hole_type", record.Typed[HoleType](record.Enum(HoleTypes...))); err != nil {
		return err
	}
	if c.TopHole, err = ResolveHole("top_hole", c.TopHoleType, raw.Get("top_hole")); err != nil {
		return err
	}
	if c.BottomHoleType, err = record.Need(raw, "bottom_hole_type", record.Typed[HoleType](record.Enum(HoleTypes...))); err != nil {
		return err
	}
	if c.BottomHole, err = ResolveHole("bottom_hole", c.BottomHoleType, raw.Get("bottom_hole")); err != nil {
		return err
	}
	if c.TopHolePosition, err = record.Need(raw, "top_hole_position", holePositionSchema.Construct); err != nil {
		return err
	}
	c.BottomHolePosition, err = record.Need(raw, "bottom_hole_position", holePositionSchema.Construct)
	return err
}

func (c *ConstructionDetailed) detailJoints(raw record.Values) error {
	if c.JointDesignMode == Automatic {
		c.TopJoint, c.BottomJoint = AutoJoint, AutoJoint
		return nil
	}
	var err error
	if c.TopJoint, err = record.Need(raw, "top_joint", jointSchema.Construct); err != nil {
		return err
	}
	c.BottomJoint, err = record.Need(raw, "bottom_joint", jointSchema.Construct)
	return err
}

func (c *ConstructionDetailed) detailStepSlot(raw record.Values) error {
	switch c.StepSlotDesignMode {
	case Automatic:
		slot, pos := AutoStepSlot, AutoStepSlotPosition
		c.StepSlot, c.StepSlotPosition = &slot, &pos
	case Manual:
		slot, err := record.Need(raw, "step_slot", stepSlotSchema.Construct)
		if err != nil {
			return err
		}
		pos, err := record.Need(raw, "step_slot_position", stepSlotPositionSchema.Construct)
		if err != nil {
			return err
		}
		c.StepSlot, c.StepSlotPosition = &slot, &pos
	case No:
		c.StepSlot, c.StepSlotPosition = nil, nil
	default:
		return record.Unreachable("step_slot_design_mode", c.StepSlotDesignMode)
	}
	return nil
}

func (c *ConstructionDetailed) detailWaterDrip(raw record.Values) error {
	switch c.WaterDripDesignMode {
	case Automatic:
		layout, shape, pos := AutoWaterDripLayout, AutoWaterDripShape, AutoWaterDripPosition
		c.WaterDripLayout, c.WaterDripShape, c.WaterDrip, c.WaterDripPosition = &layout, &shape, AutoWaterDrip, &pos
	case Manual:
		layout, err := record.Need(raw, "water_drip_layout", record.Typed[WaterDripLayout](record.Enum(WaterDripLayouts...)))
		if err != nil {
			return err
		}
		shape, err := record.Need(raw, "water_drip_shape", record.Typed[WaterDripShape](record.Enum(WaterDripShapes...)))
		if err != nil {
			return err
		}
		drip, err := ResolveWaterDrip("water_drip", shape, raw.Get("water_drip"))
		if err != nil {
			return err
		}
		pos, err := record.Need(raw, "water_drip_position", waterDripPositionSchema.Construct)
		if err != nil {
			return err
		}
		c.WaterDripLayout, c.WaterDripShape, c.WaterDrip, c.WaterDripPosition = &layout, &shape, drip, &pos
	case No:
		c.WaterDripLayout, c.WaterDripShape, c.WaterDrip, c.WaterDripPosition = nil, nil, nil, nil
	default:
		return record.Unreachable("water_drip_design_mode", c.WaterDripDesignMode)
	}
	return nil
}

// NewConstructionDetailed builds a ConstructionDetailed from an instance, a
// sequence or a mapping.
func NewConstructionDetailed(raw any) (ConstructionDetailed, error) {
	return constructionSchema.Construct(raw)
}
