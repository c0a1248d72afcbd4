package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/GridDash/internal/model"
)

// LabelInfo holds the data encoded into each tile label's QR code.
type LabelInfo struct {
	TileLabel string `json:"label"`
	Link      string `json:"link,omitempty"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Left      int    `json:"left"`
	Top       int    `json:"top"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels for all placed tiles.
// Each label contains the tile name, its grid cell, and a QR code encoding
// the tile link and placement metadata as JSON. Labels are laid out on a
// standard label sheet format (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, board model.Board, layout model.Layout) error {
	labels := CollectLabelInfos(board, layout)
	if len(labels) == 0 {
		return fmt.Errorf("no placed tiles to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.TileLabel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s_%d_%d", info.TileLabel, info.Row, info.Col)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Tile label (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate label if too long
	tileLabel := info.TileLabel
	if pdf.GetStringWidth(tileLabel) > textW {
		for len(tileLabel) > 0 && pdf.GetStringWidth(tileLabel+"...") > textW {
			tileLabel = tileLabel[:len(tileLabel)-1]
		}
		tileLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, tileLabel, "", 1, "L", false, 0, "")

	// Grid cell
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	cell := fmt.Sprintf("Row %d, Col %d", info.Row+1, info.Col+1)
	pdf.CellFormat(textW, 3.5, cell, "", 1, "L", false, 0, "")

	// Rectangle info
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	rect := fmt.Sprintf("%d x %d @ (%d, %d)", info.Width, info.Height, info.Left, info.Top)
	pdf.CellFormat(textW, 3, rect, "", 1, "L", false, 0, "")

	// Link line
	if info.Link != "" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		link := info.Link
		if pdf.GetStringWidth(link) > textW {
			for len(link) > 0 && pdf.GetStringWidth(link+"...") > textW {
				link = link[:len(link)-1]
			}
			link += "..."
		}
		pdf.CellFormat(textW, 3, link, "", 0, "L", false, 0, "")
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from an arranged board
// for use in testing or alternative export formats.
func CollectLabelInfos(board model.Board, layout model.Layout) []LabelInfo {
	visible := board.VisibleTiles()

	var labels []LabelInfo
	for i, p := range layout.Placements {
		if i >= len(visible) {
			break
		}
		labels = append(labels, LabelInfo{
			TileLabel: visible[i].Label,
			Link:      visible[i].Link,
			Row:       p.Row,
			Col:       p.Col,
			Left:      p.Left,
			Top:       p.Top,
			Width:     p.Width(),
			Height:    p.Height(),
		})
	}
	return labels
}
