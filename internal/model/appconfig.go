package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new boards
	DefaultContainerWidth  int `json:"default_container_width"`
	DefaultContainerHeight int `json:"default_container_height"`
	DefaultTileWidth       int `json:"default_tile_width"`
	DefaultTileHeight      int `json:"default_tile_height"`

	// Application preferences
	RecentBoards []string `json:"recent_boards"`
	Theme        string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultContainerWidth:  800,
		DefaultContainerHeight: 600,
		DefaultTileWidth:       160,
		DefaultTileHeight:      100,
		RecentBoards:           []string{},
		Theme:                  "system",
	}
}

// ApplyToBoard copies the configured defaults into a board. This is used when
// creating a new board so it inherits the user's saved preferences.
func (c AppConfig) ApplyToBoard(b *Board) {
	b.Container = Size{
		Width:  c.DefaultContainerWidth,
		Height: c.DefaultContainerHeight,
	}
}

// NewDefaultTile creates a tile at the configured default size.
func (c AppConfig) NewDefaultTile(label, link string) Tile {
	return NewTile(label, link, c.DefaultTileWidth, c.DefaultTileHeight)
}
