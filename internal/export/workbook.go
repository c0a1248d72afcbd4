package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GridDash/internal/model"
)

// ExportWorkbook writes the arranged board to an Excel workbook with a
// Placements sheet (one row per tile) and a Summary sheet with the grid
// metrics.
func ExportWorkbook(path string, board model.Board, layout model.Layout) error {
	if len(layout.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	visible := board.VisibleTiles()

	f := excelize.NewFile()
	defer f.Close()

	const placementsSheet = "Placements"
	if err := f.SetSheetName("Sheet1", placementsSheet); err != nil {
		return err
	}

	header := []interface{}{"Index", "Label", "Row", "Col", "Left", "Top", "Right", "Bottom", "Width", "Height", "Link"}
	if err := writeRow(f, placementsSheet, 1, header); err != nil {
		return err
	}

	for i, p := range layout.Placements {
		label, link := "", ""
		if i < len(visible) {
			label = visible[i].Label
			link = visible[i].Link
		}
		row := []interface{}{
			p.Index, label, p.Row, p.Col,
			p.Left, p.Top, p.Right, p.Bottom,
			p.Width(), p.Height(), link,
		}
		if err := writeRow(f, placementsSheet, i+2, row); err != nil {
			return err
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	g := layout.Grid
	summary := [][]interface{}{
		{"Board", board.Name},
		{"Container width", layout.Container.Width},
		{"Container height", layout.Container.Height},
		{"Cell width", layout.Cell.Width},
		{"Cell height", layout.Cell.Height},
		{"Columns", g.Cols},
		{"Rows", g.Rows},
		{"Horizontal gap", g.HSpace},
		{"Vertical gap", g.VSpace},
		{"Drawn cell width", g.CellWidth},
		{"Drawn cell height", g.CellHeight},
		{"Tiles placed", len(layout.Placements)},
		{"Coverage %", layout.Coverage()},
	}
	for i, row := range summary {
		if err := writeRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeRow writes one row of values starting at column A of the given row.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for j, v := range values {
		cellRef, err := excelize.CoordinatesToCellName(j+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, v); err != nil {
			return err
		}
	}
	return nil
}
