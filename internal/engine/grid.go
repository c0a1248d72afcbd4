// Package engine implements the grid arrangement algorithm: given a set of
// uniform-size tiles and a container, it searches column counts for the grid
// with the most even horizontal and vertical whitespace and computes exact
// per-tile rectangles.
package engine

import (
	"math"

	"github.com/piwi3910/GridDash/internal/model"
)

const (
	// UnevenGridPenalty multiplies the whitespace imbalance of grids whose
	// trailing cells are unfilled (rows*cols != itemCount).
	UnevenGridPenalty = 10

	// SingleColumnPenalty is added to single-column candidates once there are
	// more than three tiles, pushing the search toward multi-column grids.
	SingleColumnPenalty = 1000

	// UnfitScore disqualifies candidates whose gaps are negative.
	UnfitScore = math.MaxInt32
)

// MeasureCells returns the uniform cell size for a set of tiles: the maximum
// natural width and maximum natural height across all of them.
func MeasureCells(tiles []model.Tile) model.Size {
	var cell model.Size
	for _, t := range tiles {
		if t.Width > cell.Width {
			cell.Width = t.Width
		}
		if t.Height > cell.Height {
			cell.Height = t.Height
		}
	}
	return cell
}

// searchColumns runs the column-count search and returns the best column
// count, or -1 if no candidate fits the container. Starting from a single
// column, each candidate grid is scored by the absolute difference between
// its vertical and horizontal gaps, adjusted by the fixed penalties and the
// aspect-ratio division. The loop stops as soon as a fitting single-row grid
// is adopted, or once cols exceeds itemCount or sqrt(itemCount)*2+1.
//
// visit, when non-nil, observes every evaluated candidate in order.
func searchColumns(itemCount int, cell, container model.Size, visit func(Candidate)) int {
	bestCols := -1
	bestScore := 0

	for cols := 1; ; cols++ {
		rows := (itemCount-1)/cols + 1

		hSpace := (container.Width - cell.Width*cols) / (cols + 1)
		vSpace := (container.Height - cell.Height*rows) / (rows + 1)

		diff := vSpace - hSpace
		if diff < 0 {
			diff = -diff
		}
		if rows*cols != itemCount {
			diff *= UnevenGridPenalty
		}

		fits := hSpace >= 0 && vSpace >= 0
		if !fits {
			diff = UnfitScore
		}

		aspect := float64(maxInt(cols, rows)) / float64(minInt(cols, rows))
		adjusted := int(float64(diff) / aspect)

		if cols == 1 && itemCount > 3 {
			adjusted += SingleColumnPenalty
		}

		chosen := fits && (bestCols == -1 || adjusted < bestScore)
		if visit != nil {
			visit(Candidate{
				Cols:     cols,
				Rows:     rows,
				HSpace:   hSpace,
				VSpace:   vSpace,
				Fits:     fits,
				Score:    diff,
				Adjusted: adjusted,
				Chosen:   chosen,
			})
		}

		if chosen {
			bestScore = adjusted
			bestCols = cols

			// A fitting single-row grid cannot be beaten by wider candidates.
			if rows == 1 {
				break
			}
		}

		if cols+1 > itemCount {
			break
		}
		if float64(cols+1) > math.Sqrt(float64(itemCount))*2+1 {
			break
		}
	}

	return bestCols
}

// ChooseGrid determines the best grid for itemCount tiles of the given
// uniform cell size inside the container, then derives the final spacing and
// the stretched cell size that distributes leftover space.
//
// When no candidate fits, it falls back to a single column with gaps clamped
// to zero; the result is always usable.
func ChooseGrid(itemCount int, cell, container model.Size) model.Grid {
	if itemCount <= 0 {
		return model.Grid{}
	}

	cols := searchColumns(itemCount, cell, container, nil)
	if cols == -1 {
		// Nothing fits: degrade to one overflowing column rather than fail.
		cols = 1
	}

	rows := (itemCount-1)/cols + 1

	hSpace := (container.Width - cell.Width*cols) / (cols + 1)
	vSpace := (container.Height - cell.Height*rows) / (rows + 1)
	if hSpace < 0 {
		hSpace = 0
	}
	if vSpace < 0 {
		vSpace = 0
	}

	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}

	return model.Grid{
		Cols:       cols,
		Rows:       rows,
		HSpace:     hSpace,
		VSpace:     vSpace,
		CellWidth:  (container.Width - hSpace*(cols+1)) / cols,
		CellHeight: (container.Height - vSpace*(rows+1)) / rows,
	}
}

// Arrange places itemCount tiles of the given uniform cell size inside the
// container and returns the full layout. Tiles fill the grid row-major; when
// the gap on an axis is zero, the trailing row or column is stretched to the
// container edge so integer-division remainders never leave a sliver.
//
// Arrange is a pure function: identical inputs always produce identical
// output, and itemCount == 0 yields a layout with no placements.
func Arrange(itemCount int, cell, container model.Size) model.Layout {
	layout := model.Layout{Container: container, Cell: cell}
	if itemCount <= 0 {
		return layout
	}

	g := ChooseGrid(itemCount, cell, container)
	layout.Grid = g

	layout.Placements = make([]model.Placement, itemCount)
	for i := 0; i < itemCount; i++ {
		row := i / g.Cols
		col := i % g.Cols

		left := g.HSpace*(col+1) + g.CellWidth*col
		top := g.VSpace*(row+1) + g.CellHeight*row

		right := left + g.CellWidth
		if g.HSpace == 0 && col == g.Cols-1 {
			right = container.Width
		}
		bottom := top + g.CellHeight
		if g.VSpace == 0 && row == g.Rows-1 {
			bottom = container.Height
		}

		layout.Placements[i] = model.Placement{
			Index:  i,
			Row:    row,
			Col:    col,
			Left:   left,
			Top:    top,
			Right:  right,
			Bottom: bottom,
		}
	}

	return layout
}

// ArrangeBoard measures and arranges the visible tiles of a board. Hidden
// tiles are filtered out before measurement, so they affect neither the cell
// size nor the grid.
func ArrangeBoard(b model.Board) model.Layout {
	visible := b.VisibleTiles()
	cell := MeasureCells(visible)
	return Arrange(len(visible), cell, b.Container)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
