package model

import (
	"time"

	"github.com/google/uuid"
)

// BoardPreset is a reusable board configuration: tiles and container size,
// without any document-specific state.
type BoardPreset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Tiles       []Tile `json:"tiles"`
	Container   Size   `json:"container"`
}

// NewBoardPreset creates a preset from the given board data.
func NewBoardPreset(name, description string, tiles []Tile, container Size) BoardPreset {
	now := time.Now().UTC().Format(time.RFC3339)
	return BoardPreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tiles:       copyTiles(tiles),
		Container:   container,
	}
}

// ToBoard creates a new Board from this preset. Tiles get fresh IDs so they
// are independent of the preset.
func (p BoardPreset) ToBoard(boardName string) Board {
	tiles := make([]Tile, len(p.Tiles))
	for i, t := range p.Tiles {
		tiles[i] = NewTile(t.Label, t.Link, t.Width, t.Height)
		tiles[i].Hidden = t.Hidden
	}
	return Board{
		Name:      boardName,
		Tiles:     tiles,
		Container: p.Container,
	}
}

// copyTiles returns a deep copy of a tile slice.
func copyTiles(tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	return out
}

// PresetStore holds a collection of board presets.
type PresetStore struct {
	Presets []BoardPreset `json:"presets"`
}

// NewPresetStore creates an empty preset store.
func NewPresetStore() PresetStore {
	return PresetStore{Presets: []BoardPreset{}}
}

// Add appends a preset to the store.
func (s *PresetStore) Add(p BoardPreset) {
	s.Presets = append(s.Presets, p)
}

// Remove deletes the preset with the given ID. It is a no-op if the ID is
// not present.
func (s *PresetStore) Remove(id string) {
	for i, p := range s.Presets {
		if p.ID == id {
			s.Presets = append(s.Presets[:i], s.Presets[i+1:]...)
			return
		}
	}
}

// Find returns the preset with the given ID, or false if absent.
func (s PresetStore) Find(id string) (BoardPreset, bool) {
	for _, p := range s.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return BoardPreset{}, false
}
