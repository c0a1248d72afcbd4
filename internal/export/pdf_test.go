package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GridDash/internal/model"
)

// buildTestBoard creates a realistic arranged board for testing.
func buildTestBoard() (model.Board, model.Layout) {
	board := model.Board{
		Name:      "Ops Dashboard",
		Container: model.Size{Width: 420, Height: 420},
		Tiles: []model.Tile{
			{ID: "t1", Label: "Mail", Link: "app://mail", Width: 100, Height: 100},
			{ID: "t2", Label: "Stats", Link: "app://stats", Width: 100, Height: 100},
			{ID: "t3", Label: "Alerts", Link: "app://alerts", Width: 100, Height: 100},
			{ID: "t4", Label: "Deploys", Link: "app://deploys", Width: 100, Height: 100},
		},
	}

	layout := model.Layout{
		Container: board.Container,
		Cell:      model.Size{Width: 100, Height: 100},
		Grid:      model.Grid{Cols: 2, Rows: 2, HSpace: 73, VSpace: 73, CellWidth: 100, CellHeight: 100},
		Placements: []model.Placement{
			{Index: 0, Row: 0, Col: 0, Left: 73, Top: 73, Right: 173, Bottom: 173},
			{Index: 1, Row: 0, Col: 1, Left: 246, Top: 73, Right: 346, Bottom: 173},
			{Index: 2, Row: 1, Col: 0, Left: 73, Top: 246, Right: 173, Bottom: 346},
			{Index: 3, Row: 1, Col: 1, Left: 246, Top: 246, Right: 346, Bottom: 346},
		},
	}
	return board, layout
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.pdf")

	board, layout := buildTestBoard()

	err := ExportPDF(path, board, layout)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	board := model.NewBoard()
	layout := model.Layout{}

	err := ExportPDF(path, board, layout)
	if err == nil {
		t.Fatal("expected error for empty layout, got nil")
	}
}
