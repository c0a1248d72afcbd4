package model

import "github.com/google/uuid"

// Size represents an integer pixel size.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width * Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Tile represents a single dashboard tile.
// Width and Height are the tile's natural (preferred) size in pixels; the
// arranger stretches every tile to a shared cell size, so these only feed
// the max-size measurement pass.
type Tile struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Link   string `json:"link,omitempty"` // Target opened by the tile (URL or app route)
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Hidden bool   `json:"hidden,omitempty"`
}

func NewTile(label, link string, w, h int) Tile {
	return Tile{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Link:   link,
		Width:  w,
		Height: h,
	}
}

// Size returns the tile's natural size.
func (t Tile) Size() Size {
	return Size{Width: t.Width, Height: t.Height}
}

// Board is the dashboard document: a named list of tiles plus the container
// the preview arranges them into.
type Board struct {
	Name      string `json:"name"`
	Tiles     []Tile `json:"tiles"`
	Container Size   `json:"container"`
}

func NewBoard() Board {
	return Board{
		Name:      "Untitled",
		Tiles:     []Tile{},
		Container: Size{Width: 800, Height: 600},
	}
}

// VisibleTiles returns the tiles that participate in arrangement, in
// presentation order. Hidden tiles are excluded before the arranger runs.
func (b Board) VisibleTiles() []Tile {
	var visible []Tile
	for _, t := range b.Tiles {
		if !t.Hidden {
			visible = append(visible, t)
		}
	}
	return visible
}

// Grid is a chosen arrangement: the column/row counts, the whitespace gaps on
// each axis, and the stretched cell size tiles are drawn at.
type Grid struct {
	Cols       int `json:"cols"`
	Rows       int `json:"rows"`
	HSpace     int `json:"h_space"` // Gap between and around columns (px)
	VSpace     int `json:"v_space"` // Gap between and around rows (px)
	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`
}

// Cells returns the total cell count of the grid, including unfilled
// trailing cells.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// Balance returns the absolute difference between the vertical and
// horizontal gaps. Zero means perfectly even whitespace.
func (g Grid) Balance() int {
	d := g.VSpace - g.HSpace
	if d < 0 {
		d = -d
	}
	return d
}

// Placement is the output rectangle for one tile, in container-local pixels.
// Index refers to the tile's ordinal position among the visible tiles.
type Placement struct {
	Index  int `json:"index"`
	Row    int `json:"row"`
	Col    int `json:"col"`
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Width returns the placed rectangle width.
func (p Placement) Width() int {
	return p.Right - p.Left
}

// Height returns the placed rectangle height.
func (p Placement) Height() int {
	return p.Bottom - p.Top
}

// Layout holds the full result of one arrangement pass.
type Layout struct {
	Container  Size        `json:"container"`
	Cell       Size        `json:"cell"` // Uniform measured cell (max tile size)
	Grid       Grid        `json:"grid"`
	Placements []Placement `json:"placements"`
}

// UsedArea returns the total area covered by placed tiles.
func (l Layout) UsedArea() int {
	var total int
	for _, p := range l.Placements {
		total += p.Width() * p.Height()
	}
	return total
}

// Coverage returns the percentage of the container covered by tiles.
func (l Layout) Coverage() float64 {
	ca := l.Container.Area()
	if ca == 0 {
		return 0
	}
	return float64(l.UsedArea()) / float64(ca) * 100.0
}
