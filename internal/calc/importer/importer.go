// Package importer reads structural designs from an .xlsx sheet, one flight
// per row, and calculates them.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Stairs/internal/calc/structure"
	model "Stairs/internal/model/structure"
)

// Columns lists the expected header, in order. Columns after live_load are
// optional and fall back to the design defaults.
var Columns = []string{
	"height", "thickness", "clear_span", "top_top_length", "bottom_top_length",
	"steps_number", "live_load", "rebar_grade", "concrete_grade",
	"concrete_cover", "crack_limit", "deflection_limit",
}

const requiredColumns = 9

// Row is one imported flight. Err is set when the row was rejected.
type Row struct {
	Line   int                           `json:"line"`
	Result *model.StructuralDesignResult `json:"result,omitempty"`
	Err    string                        `json:"error,omitempty"`
}

type Result struct {
	Count int   `json:"count"`
	Rows  []Row `json:"rows"`
}

// ReadDesigns parses the first sheet of an .xlsx workbook into raw designs
// keyed by sheet line. Row parsing errors are returned per line.
func ReadDesigns(r io.Reader) ([]any, []error, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("empty sheet")
	}
	designs := make([]any, 0, len(rows)-1)
	errs := make([]error, 0, len(rows)-1)
	for _, row := range rows[1:] {
		d, err := parseRow(row)
		designs = append(designs, d)
		errs = append(errs, err)
	}
	return designs, errs, nil
}

// Calculate reads and calculates every row. Rejected rows are reported, not
// fatal.
func Calculate(r io.Reader) (Result, error) {
	designs, errs, err := ReadDesigns(r)
	if err != nil {
		return Result{}, err
	}
	var out Result
	for i, raw := range designs {
		row := Row{Line: i + 2}
		if err := errs[i]; err != nil {
			row.Err = err.Error()
			out.Rows = append(out.Rows, row)
			continue
		}
		res, err := calculate(raw)
		if err != nil {
			row.Err = err.Error()
		} else {
			row.Result = &res
			out.Count++
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func calculate(raw any) (model.StructuralDesignResult, error) {
	d, err := model.NewStructuralDesign(raw)
	if err != nil {
		return model.StructuralDesignResult{}, err
	}
	return structure.Calculate(d)
}

func parseRow(row []string) (map[string]any, error) {
	if len(row) < requiredColumns {
		return nil, fmt.Errorf("bad row: %d of %d required columns", len(row), requiredColumns)
	}
	vals := make(map[string]any, len(Columns))
	for i, name := range Columns {
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", name, row[i])
		}
		vals[name] = v
	}

	design := map[string]any{
		"geometric": pick(vals, "height", "thickness", "clear_span", "top_top_length", "bottom_top_length", "steps_number"),
		"load_data": pick(vals, "live_load"),
		"material":  pick(vals, "rebar_grade", "concrete_grade"),
	}
	if c := pick(vals, "concrete_cover"); len(c) > 0 {
		design["construction"] = c
	}
	if l := pick(vals, "crack_limit", "deflection_limit"); len(l) > 0 {
		design["limit_setting"] = l
	}
	return design, nil
}

func pick(vals map[string]any, names ...string) map[string]any {
	out := make(map[string]any, len(names))
	for _, n := range names {
		if v, ok := vals[n]; ok {
			out[n] = v
		}
	}
	return out
}
