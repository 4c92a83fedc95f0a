package cmd

import (
	"fmt"

	"github.com/coolzilj/advdrag/snapshot"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <out.png>",
	Short: "Render the initial scene to a PNG",
	Long: `Render the scene, as configured by the global flags, to a PNG file
without opening a window.

Examples:
  advdrag snapshot box.png
  advdrag snapshot turned.png --angle 45 --x 40`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().BoolVar(&pngCaption, "caption", false, "write the transform onto the PNG")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := buildSurface()
	if err != nil {
		return err
	}
	if err := (snapshot.Renderer{Caption: pngCaption}).Save(args[0], s); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}
