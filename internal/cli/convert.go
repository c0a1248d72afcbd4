package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/GridDash/internal/importer"
	"github.com/piwi3910/GridDash/internal/model"
	"github.com/piwi3910/GridDash/internal/project"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	name            string // board name; defaults to the input file stem
	containerWidth  int    // container width in px
	containerHeight int    // container height in px
}

// newConvertCmd creates the convert command, which imports a tile list from
// CSV or Excel and writes it as a board file.
func newConvertCmd() *cobra.Command {
	opts := convertOpts{
		containerWidth:  800,
		containerHeight: 600,
	}

	cmd := &cobra.Command{
		Use:   "convert <input.csv|input.xlsx> <output" + project.BoardExtension + ">",
		Short: "Convert a CSV or Excel tile list into a board file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "board name (defaults to the input file name)")
	cmd.Flags().IntVar(&opts.containerWidth, "container-width", opts.containerWidth, "container width in px")
	cmd.Flags().IntVar(&opts.containerHeight, "container-height", opts.containerHeight, "container height in px")

	return cmd
}

func runConvert(cmd *cobra.Command, input, output string, opts *convertOpts) error {
	logger := loggerFromContext(cmd.Context())

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(input)) {
	case ".csv", ".txt":
		result = importer.ImportCSV(input)
	case ".xlsx", ".xlsm":
		result = importer.ImportExcel(input)
	default:
		return fmt.Errorf("unsupported input format: %s", filepath.Ext(input))
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	for _, e := range result.Errors {
		logger.Error(e)
	}
	if len(result.Tiles) == 0 {
		return fmt.Errorf("no tiles imported from %s", input)
	}

	name := opts.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	board := model.Board{
		Name:      name,
		Tiles:     result.Tiles,
		Container: model.Size{Width: opts.containerWidth, Height: opts.containerHeight},
	}

	if err := project.SaveBoard(output, board); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	logger.Info("converted tile list",
		"tiles", len(result.Tiles),
		"skipped", len(result.Errors),
		"board", output)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tiles into %s\n", len(result.Tiles), output)
	return nil
}
