package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GridDash/internal/model"
	"github.com/piwi3910/GridDash/internal/project"
)

func newTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestResolveBoard_Synthetic(t *testing.T) {
	opts := arrangeOpts{
		tiles:           4,
		tileWidth:       100,
		tileHeight:      100,
		containerWidth:  420,
		containerHeight: 420,
	}

	board, err := resolveBoard(nil, &opts, false)
	require.NoError(t, err)
	assert.Len(t, board.Tiles, 4)
	assert.Equal(t, model.Size{Width: 420, Height: 420}, board.Container)
	assert.Equal(t, "Tile 1", board.Tiles[0].Label)
}

func TestResolveBoard_InvalidFlags(t *testing.T) {
	_, err := resolveBoard(nil, &arrangeOpts{tiles: 0}, false)
	assert.Error(t, err)

	_, err = resolveBoard(nil, &arrangeOpts{tiles: 2, tileWidth: -1, tileHeight: 100}, false)
	assert.Error(t, err)
}

func TestResolveBoard_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b"+project.BoardExtension)
	board := model.Board{
		Name:      "saved",
		Container: model.Size{Width: 300, Height: 300},
		Tiles:     []model.Tile{model.NewTile("A", "", 50, 50)},
	}
	require.NoError(t, project.SaveBoard(path, board))

	opts := arrangeOpts{containerWidth: 500, containerHeight: 400}
	loaded, err := resolveBoard([]string{path}, &opts, true)
	require.NoError(t, err)
	assert.Equal(t, "saved", loaded.Name)
	// Flags override the stored container size.
	assert.Equal(t, model.Size{Width: 500, Height: 400}, loaded.Container)
}

func TestRunArrange_PrintsGridAndPlacements(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(&out)

	opts := arrangeOpts{
		tiles:           4,
		tileWidth:       100,
		tileHeight:      100,
		containerWidth:  420,
		containerHeight: 420,
	}
	board, err := resolveBoard(nil, &opts, false)
	require.NoError(t, err)

	require.NoError(t, runArrange(cmd, board, &opts))

	text := out.String()
	assert.Contains(t, text, "Grid: 2 cols x 2 rows")
	assert.Contains(t, text, "Tile 4")
	assert.NotContains(t, text, "Column search:")
}

func TestRunArrange_Explain(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(&out)

	opts := arrangeOpts{
		tiles:           4,
		tileWidth:       100,
		tileHeight:      100,
		containerWidth:  420,
		containerHeight: 420,
		explain:         true,
	}
	board, err := resolveBoard(nil, &opts, false)
	require.NoError(t, err)

	require.NoError(t, runArrange(cmd, board, &opts))

	text := out.String()
	assert.Contains(t, text, "Column search:")
	assert.Contains(t, text, "CHOSEN")
}

func TestRunArrange_NoVisibleTiles(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(&out)

	board := model.Board{Name: "empty", Container: model.Size{Width: 100, Height: 100}}
	err := runArrange(cmd, board, &arrangeOpts{})
	assert.Error(t, err)
}

func TestRunConvert_CSVToBoard(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tiles.csv")
	output := filepath.Join(dir, "tiles"+project.BoardExtension)

	csv := "label,width,height,link\nMail,160,100,app://mail\nStats,160,100,\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))

	var out bytes.Buffer
	cmd := newTestCmd(&out)

	opts := convertOpts{containerWidth: 800, containerHeight: 600}
	require.NoError(t, runConvert(cmd, input, output, &opts))

	board, err := project.LoadBoard(output)
	require.NoError(t, err)
	assert.Equal(t, "tiles", board.Name)
	require.Len(t, board.Tiles, 2)
	assert.Equal(t, "Mail", board.Tiles[0].Label)
	assert.Equal(t, model.Size{Width: 800, Height: 600}, board.Container)
}

func TestRunConvert_UnsupportedFormat(t *testing.T) {
	var out bytes.Buffer
	cmd := newTestCmd(&out)

	err := runConvert(cmd, "tiles.pdf", "out"+project.BoardExtension, &convertOpts{})
	assert.Error(t, err)
}
