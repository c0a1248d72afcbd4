package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/GridDash/internal/model"
)

// BoardExtension is the file extension used for board documents.
const BoardExtension = ".griddash"

// SaveBoard writes a board document to a JSON file, creating parent
// directories as needed.
func SaveBoard(path string, board model.Board) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadBoard reads a board document from a JSON file.
func LoadBoard(path string) (model.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Board{}, err
	}
	var board model.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return model.Board{}, err
	}
	if board.Tiles == nil {
		board.Tiles = []model.Tile{}
	}
	return board, nil
}
