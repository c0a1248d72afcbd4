package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates_MatchesChooseGrid(t *testing.T) {
	cases := []struct {
		name      string
		itemCount int
		cell      [2]int
		container [2]int
	}{
		{"wide", 4, [2]int{100, 100}, [2]int{400, 220}},
		{"square", 4, [2]int{100, 100}, [2]int{420, 420}},
		{"five", 5, [2]int{100, 100}, [2]int{500, 500}},
		{"narrow", 5, [2]int{100, 100}, [2]int{120, 1000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cell := sz(tc.cell[0], tc.cell[1])
			container := sz(tc.container[0], tc.container[1])

			candidates := Candidates(tc.itemCount, cell, container)
			require.NotEmpty(t, candidates)

			// The last chosen candidate is the grid ChooseGrid picks.
			chosenCols := -1
			for _, c := range candidates {
				if c.Chosen {
					chosenCols = c.Cols
				}
				assert.LessOrEqual(t, c.Cols, tc.itemCount)
				assert.Equal(t, (tc.itemCount-1)/c.Cols+1, c.Rows)
			}

			grid := ChooseGrid(tc.itemCount, cell, container)
			require.NotEqual(t, -1, chosenCols, "at least one candidate should fit")
			assert.Equal(t, grid.Cols, chosenCols)
		})
	}
}

func TestCandidates_NoneFit(t *testing.T) {
	candidates := Candidates(2, sz(100, 100), sz(50, 50))
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.False(t, c.Fits)
		assert.False(t, c.Chosen)
	}
}

func TestCandidates_ZeroItems(t *testing.T) {
	assert.Nil(t, Candidates(0, sz(100, 100), sz(500, 500)))
}
