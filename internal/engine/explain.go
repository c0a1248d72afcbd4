package engine

import "github.com/piwi3910/GridDash/internal/model"

// Candidate records one evaluated arrangement during the column search.
// Score is the raw whitespace imbalance (after the uneven-grid multiplier);
// Adjusted is the final comparison value after the aspect-ratio division and
// the single-column penalty. Chosen marks the candidates that became the
// best-so-far when they were evaluated; the last chosen entry wins.
type Candidate struct {
	Cols     int  `json:"cols"`
	Rows     int  `json:"rows"`
	HSpace   int  `json:"h_space"`
	VSpace   int  `json:"v_space"`
	Fits     bool `json:"fits"`
	Score    int  `json:"score"`
	Adjusted int  `json:"adjusted"`
	Chosen   bool `json:"chosen"`
}

// Candidates re-runs the column search and returns every candidate it
// evaluated, in evaluation order. It shares the search loop with ChooseGrid,
// so the reported decision always matches the grid Arrange would pick.
func Candidates(itemCount int, cell, container model.Size) []Candidate {
	if itemCount <= 0 {
		return nil
	}
	var out []Candidate
	searchColumns(itemCount, cell, container, func(c Candidate) {
		out = append(out, c)
	})
	return out
}
