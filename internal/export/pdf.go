// Package export provides functionality for exporting board layouts to
// various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/GridDash/internal/model"
)

// tileColor represents an RGB color for a placed tile.
type tileColor struct {
	R, G, B int
}

// tileColors mirrors the color scheme used in the UI board canvas widget.
var tileColors = []tileColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document containing the arranged board: a scaled
// drawing of the container with every tile rectangle, followed by the grid
// statistics and a tile legend.
func ExportPDF(path string, board model.Board, layout model.Layout) error {
	if len(layout.Placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderBoardPage(pdf, board, layout)

	return pdf.OutputFileAndClose(path)
}

// renderBoardPage draws the board layout on the current PDF page.
func renderBoardPage(pdf *fpdf.Fpdf, board model.Board, layout model.Layout) {
	visible := board.VisibleTiles()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%d x %d px)", board.Name, layout.Container.Width, layout.Container.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	g := layout.Grid
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Tiles: %d | Grid: %d x %d | Gaps: %d px horizontal, %d px vertical | Coverage: %.1f%%",
		len(layout.Placements), g.Cols, g.Rows, g.HSpace, g.VSpace, layout.Coverage())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	// Calculate scale to fit the container within the drawing area
	scaleX := drawWidth / float64(layout.Container.Width)
	scaleY := drawHeight / float64(layout.Container.Height)
	scale := math.Min(scaleX, scaleY)

	canvasW := float64(layout.Container.Width) * scale
	canvasH := float64(layout.Container.Height) * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Container background
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed tiles
	for i, p := range layout.Placements {
		col := tileColors[i%len(tileColors)]
		pw := float64(p.Width()) * scale
		ph := float64(p.Height()) * scale
		px := offsetX + float64(p.Left)*scale
		py := offsetY + float64(p.Top)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Tile label (only if rectangle is large enough)
		if pw > 15 && ph > 8 && i < len(visible) {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := visible[i].Label
			cellRef := fmt.Sprintf("r%d c%d", p.Row+1, p.Col+1)

			labelW := pdf.GetStringWidth(label)
			cellW := pdf.GetStringWidth(cellRef)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && cellW < pw-2 {
				pdf.SetXY(px+(pw-cellW)/2, py+ph/2)
				pdf.CellFormat(cellW, 4, cellRef, "", 0, "C", false, 0, "")
			}
		}
	}

	drawTileLegend(pdf, visible, layout, offsetY+canvasH+5)
}

// labelFontSize picks a font size that fits the drawn rectangle.
func labelFontSize(w, h float64) float64 {
	size := 8.0
	if w < 30 || h < 14 {
		size = 6.0
	}
	if w < 20 {
		size = 5.0
	}
	return size
}

// drawTileLegend renders a compact color legend under the drawing.
func drawTileLegend(pdf *fpdf.Fpdf, visible []model.Tile, layout model.Layout, y float64) {
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)

	x := marginLeft
	for i, p := range layout.Placements {
		if i >= len(visible) {
			break
		}
		col := tileColors[i%len(tileColors)]

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(x, y, 3, 3, "F")

		entry := fmt.Sprintf("%s (%d,%d)", visible[i].Label, p.Left, p.Top)
		entryW := pdf.GetStringWidth(entry) + 6
		pdf.SetXY(x+4, y-0.5)
		pdf.CellFormat(entryW, 4, entry, "", 0, "L", false, 0, "")

		x += entryW + 6
		if x > pageWidth-marginRight-30 {
			x = marginLeft
			y += 5
		}
	}
}
