package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/GridDash/internal/engine"
	"github.com/piwi3910/GridDash/internal/export"
	"github.com/piwi3910/GridDash/internal/model"
	"github.com/piwi3910/GridDash/internal/project"
)

// arrangeOpts holds the command-line flags for the arrange command.
type arrangeOpts struct {
	tiles           int    // synthetic tile count when no board file is given
	tileWidth       int    // synthetic tile width in px
	tileHeight      int    // synthetic tile height in px
	containerWidth  int    // container width in px
	containerHeight int    // container height in px
	explain         bool   // print every evaluated column candidate
	pdfPath         string // write a layout PDF to this path
	labelsPath      string // write a QR label sheet to this path
	xlsxPath        string // write a placement workbook to this path
}

// newArrangeCmd creates the arrange command. With a board file argument it
// arranges that board; without one it builds a synthetic board from the
// --tiles/--tile-width/--tile-height flags.
func newArrangeCmd() *cobra.Command {
	opts := arrangeOpts{
		tiles:           4,
		tileWidth:       160,
		tileHeight:      100,
		containerWidth:  800,
		containerHeight: 600,
	}

	cmd := &cobra.Command{
		Use:   "arrange [board-file]",
		Short: "Arrange a board and print the chosen grid and placements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override := cmd.Flags().Changed("container-width") || cmd.Flags().Changed("container-height")
			board, err := resolveBoard(args, &opts, override)
			if err != nil {
				return err
			}
			return runArrange(cmd, board, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.tiles, "tiles", "n", opts.tiles, "number of tiles for a synthetic board")
	cmd.Flags().IntVar(&opts.tileWidth, "tile-width", opts.tileWidth, "tile width in px for a synthetic board")
	cmd.Flags().IntVar(&opts.tileHeight, "tile-height", opts.tileHeight, "tile height in px for a synthetic board")
	cmd.Flags().IntVar(&opts.containerWidth, "container-width", opts.containerWidth, "container width in px")
	cmd.Flags().IntVar(&opts.containerHeight, "container-height", opts.containerHeight, "container height in px")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "print every column candidate the search evaluated")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "write a layout PDF to this path")
	cmd.Flags().StringVar(&opts.labelsPath, "labels", "", "write a QR label sheet PDF to this path")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "write a placement workbook to this path")

	return cmd
}

// resolveBoard loads the board file if one was given, otherwise builds a
// synthetic board from the flags. overrideContainer replaces a loaded
// board's container with the flag values; it is set only when the container
// flags were passed explicitly, so a stored board keeps its own size by
// default.
func resolveBoard(args []string, opts *arrangeOpts, overrideContainer bool) (model.Board, error) {
	if len(args) == 1 {
		board, err := project.LoadBoard(args[0])
		if err != nil {
			return model.Board{}, fmt.Errorf("failed to load board: %w", err)
		}
		if overrideContainer {
			board.Container = model.Size{Width: opts.containerWidth, Height: opts.containerHeight}
		}
		return board, nil
	}

	if opts.tiles <= 0 {
		return model.Board{}, fmt.Errorf("--tiles must be > 0")
	}
	if opts.tileWidth <= 0 || opts.tileHeight <= 0 {
		return model.Board{}, fmt.Errorf("tile dimensions must be > 0")
	}

	board := model.Board{
		Name:      "synthetic",
		Container: model.Size{Width: opts.containerWidth, Height: opts.containerHeight},
	}
	for i := 0; i < opts.tiles; i++ {
		board.Tiles = append(board.Tiles,
			model.NewTile(fmt.Sprintf("Tile %d", i+1), "", opts.tileWidth, opts.tileHeight))
	}
	return board, nil
}

func runArrange(cmd *cobra.Command, board model.Board, opts *arrangeOpts) error {
	logger := loggerFromContext(cmd.Context())

	visible := board.VisibleTiles()
	if len(visible) == 0 {
		return fmt.Errorf("board has no visible tiles")
	}

	layout := engine.ArrangeBoard(board)
	cell := layout.Cell
	logger.Debug("arranged board",
		"tiles", len(visible),
		"cell", fmt.Sprintf("%dx%d", cell.Width, cell.Height),
		"container", fmt.Sprintf("%dx%d", layout.Container.Width, layout.Container.Height))

	out := cmd.OutOrStdout()
	g := layout.Grid
	fmt.Fprintf(out, "Board: %s\n", board.Name)
	fmt.Fprintf(out, "Container: %d x %d px, cell %d x %d px\n",
		layout.Container.Width, layout.Container.Height, cell.Width, cell.Height)
	fmt.Fprintf(out, "Grid: %d cols x %d rows, gaps h=%d v=%d, coverage %.1f%%\n\n",
		g.Cols, g.Rows, g.HSpace, g.VSpace, layout.Coverage())

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tLABEL\tROW\tCOL\tLEFT\tTOP\tRIGHT\tBOTTOM")
	for i, p := range layout.Placements {
		label := ""
		if i < len(visible) {
			label = visible[i].Label
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			p.Index, label, p.Row, p.Col, p.Left, p.Top, p.Right, p.Bottom)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if opts.explain {
		fmt.Fprintln(out)
		if err := printCandidates(out, len(visible), cell, layout.Container); err != nil {
			return err
		}
	}

	if opts.pdfPath != "" {
		if err := export.ExportPDF(opts.pdfPath, board, layout); err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}
		logger.Info("wrote layout PDF", "path", opts.pdfPath)
	}
	if opts.labelsPath != "" {
		if err := export.ExportLabels(opts.labelsPath, board, layout); err != nil {
			return fmt.Errorf("failed to export labels: %w", err)
		}
		logger.Info("wrote label sheet", "path", opts.labelsPath)
	}
	if opts.xlsxPath != "" {
		if err := export.ExportWorkbook(opts.xlsxPath, board, layout); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
		logger.Info("wrote workbook", "path", opts.xlsxPath)
	}

	return nil
}

// printCandidates renders the column-search trace as a table. The last chosen
// row is the grid Arrange used.
func printCandidates(out io.Writer, itemCount int, cell, container model.Size) error {
	candidates := engine.Candidates(itemCount, cell, container)

	fmt.Fprintln(out, "Column search:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLS\tROWS\tHSPACE\tVSPACE\tFITS\tSCORE\tADJUSTED\tCHOSEN")
	for _, c := range candidates {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\t%s\t%s\n",
			c.Cols, c.Rows, c.HSpace, c.VSpace,
			yesNo(c.Fits), scoreString(c.Score), scoreString(c.Adjusted), yesNo(c.Chosen))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// scoreString formats a search score, replacing the does-not-fit sentinel
// with a dash.
func scoreString(v int) string {
	if v >= engine.UnfitScore {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}
