package cmd

import (
	"github.com/coolzilj/advdrag/termhost"
	"github.com/spf13/cobra"
)

var (
	cellWidth  float64
	cellHeight float64
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the scene in the terminal",
	Long: `Run the scene in the terminal with mouse support. Each character cell
covers a block of page pixels. Press d to toggle input and q to quit.

Examples:
  advdrag term
  advdrag term --cell-width 4 --cell-height 8 --axis y`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	rootCmd.AddCommand(termCmd)

	termCmd.Flags().Float64Var(&cellWidth, "cell-width", 8, "page pixels per column")
	termCmd.Flags().Float64Var(&cellHeight, "cell-height", 16, "page pixels per row")
}

func runTerm(cmd *cobra.Command, args []string) error {
	s, err := buildSurface()
	if err != nil {
		return err
	}
	return termhost.Run(s, termhost.Options{CellWidth: cellWidth, CellHeight: cellHeight})
}
