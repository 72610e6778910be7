// Package report renders a calculation book as a PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"Stairs/internal/calc/book"
	"Stairs/internal/catalog"
	"Stairs/internal/model/detailed"
)

// Meta is the title block of the report.
type Meta struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Title   string    `json:"title"`
	Notes   string    `json:"notes"`
	Date    time.Time `json:"date"`
}

type line struct {
	label string
	value string
}

// Render writes the PDF of b to w.
func Render(w io.Writer, meta Meta, b book.CalculationBook) error {
	if meta.Title == "" {
		meta.Title = "Precast Stair Calculation Book"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	s := b.StructuralDesignResult
	d := s.StructuralDesign
	section(pdf, "1. Structural design", []line{
		{"Height / thickness", fmt.Sprintf("%.0f / %.0f mm", d.Geometric.Height, d.Geometric.Thickness)},
		{"Clear span", fmt.Sprintf("%.0f mm", d.Geometric.ClearSpan)},
		{"Landings (top / bottom)", fmt.Sprintf("%.0f / %.0f mm", d.Geometric.TopTopLength, d.Geometric.BottomTopLength)},
		{"Steps", fmt.Sprintf("%d", d.Geometric.StepsNumber)},
		{"Live load", fmt.Sprintf("%.2f kN/m2", d.LoadData.LiveLoad)},
		{"Concrete", fmt.Sprintf("%v (fc %.1f MPa, ft %.2f MPa)", s.Concrete.Grade, s.Concrete.Fc, s.Concrete.Ft)},
		{"Rebar", fmt.Sprintf("%v (fy %.0f MPa)", s.Steel.Grade, s.Steel.Fy)},
		{"Cover", fmt.Sprintf("%.0f mm", d.Construction.ConcreteCover)},
		{"Limits", fmt.Sprintf("crack %.2f mm, deflection l0/%.0f", d.LimitSetting.CrackLimit, d.LimitSetting.DeflectionLimit)},
	})
	section(pdf, "2. Loads", []line{
		{"Step height x width", fmt.Sprintf("%.1f x %.1f mm", s.StepHeight, s.StepWidth)},
		{"cos alpha", fmt.Sprintf("%.4f", s.CosAlpha)},
		{"Computational span l0", fmt.Sprintf("%.0f mm", s.L0)},
		{"Self weight", fmt.Sprintf("%.2f kN/m", s.SelfWeight)},
		{"Design load", fmt.Sprintf("%.2f kN/m", s.DesignLoad)},
		{"Standard load", fmt.Sprintf("%.2f kN/m", s.StandardLoad)},
		{"Quasi-permanent load", fmt.Sprintf("%.2f kN/m", s.QuasiPermanentLoad)},
	})

	r := b.DetailedDesignResult
	c := r.DetailedDesign.ConstructionDetailed
	section(pdf, "3. Construction detailing", []line{
		{"Top hole", holeText(c.TopHoleType, c.TopHole)},
		{"Bottom hole", holeText(c.BottomHoleType, c.BottomHole)},
		{"Joints", fmt.Sprintf("%.0f / %.0f / %.0f mm", c.TopJoint.JointA, c.TopJoint.JointB, c.TopJoint.JointC)},
		{"Step slot", stepSlotText(c.StepSlot)},
		{"Water drip", waterDripText(c)},
	})
	section(pdf, "4. Inserts", []line{
		{"Concrete volume", fmt.Sprintf("%.3f m3", r.ConcreteVolume)},
		{"Self weight", fmt.Sprintf("%.2f kN", r.SelfWeight)},
		{"Lifting", partText(r.LiftingParameter, r.LiftingLoad)},
		{"Demolding", partText(r.DemoldingParameter, r.DemoldingLoad)},
		{"Pouring", r.DetailedDesign.InsertsDetailed.PouringWay.String()},
	})
	rb := r.DetailedDesign.RebarDetailed
	section(pdf, "5. Reinforcement", []line{
		{"Bottom longitudinal", spacText(rb.BottomEdgeLongitudinalRebar)},
		{"Top longitudinal", spacText(rb.TopEdgeLongitudinalRebar)},
		{"Distribution", spacText(rb.MidDistributionRebar)},
		{"Stirrups (bottom / top)", spacText(rb.BottomEdgeStirrup) + " / " + spacText(rb.TopEdgeStirrup)},
		{"Hole / lifting reinforcement", fmt.Sprintf("d%d / d%d", rb.HoleReinforceRebar.Diameter, rb.LiftingReinforceRebar.Diameter)},
		{"Edge reinforcement", fmt.Sprintf("d%d / d%d", rb.TopEdgeReinforceRebar.Diameter, rb.BottomEdgeReinforceRebar.Diameter)},
	})

	if meta.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string, lines []line) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		pdf.CellFormat(70, 6, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, l.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func holeText(t detailed.HoleType, h detailed.Hole) string {
	switch h := h.(type) {
	case detailed.FixedHinge:
		return fmt.Sprintf("%v c2=%.0f d2=%.0f", t, h.FixHingeC2, h.FixHingeD2)
	case detailed.SlidingHinge:
		return fmt.Sprintf("%v c1=%.0f d1=%.0f e1=%.0f f1=%.0f h1=%.0f",
			t, h.SlidingHingeC1, h.SlidingHingeD1, h.SlidingHingeE1, h.SlidingHingeF1, h.SlidingHingeH1)
	}
	return "-"
}

func stepSlotText(s *detailed.StepSlot) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%.0f x %.0f x %.0f x %.0f x %.0f mm", s.A, s.B, s.C, s.D, s.E)
}

func waterDripText(c detailed.ConstructionDetailed) string {
	if c.WaterDrip == nil || c.WaterDripLayout == nil {
		return "none"
	}
	switch w := c.WaterDrip.(type) {
	case detailed.WaterDripTrapezoid:
		return fmt.Sprintf("%v, trapezoid %.0f/%.0f/%.0f mm", *c.WaterDripLayout, w.A, w.B, w.C)
	case detailed.WaterDripSemicircle:
		return fmt.Sprintf("%v, semicircle %.0f/%.0f mm", *c.WaterDripLayout, w.A, w.B)
	}
	return "-"
}

func partText(p catalog.Part, load float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%v), %.1f kN for %.2f kN", p.PartName(), p.PartType(), p.LoadCapacity(), load)
}

func spacText(r detailed.RebarDiamSpac) string {
	return fmt.Sprintf("d%d@%.0f", r.Diameter, r.Spacing)
}
