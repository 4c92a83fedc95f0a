package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/coolzilj/advdrag/snapshot"
	"github.com/spf13/cobra"
)

var (
	scriptTPS       int
	scriptMaxFrames int
	scriptPNGDir    string
	pngCaption      bool
)

var scriptCmd = &cobra.Command{
	Use:   "script <script.json>",
	Short: "Replay a JSON script headless and print its snapshots",
	Long: `Replay a JSON test script without a window. Every snapshot step is
printed as JSON and, with --png, rendered to LABEL.png in the given directory.

Examples:
  advdrag script steps.json
  advdrag script steps.json --bounds parent --png shots/`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)

	scriptCmd.Flags().IntVar(&scriptTPS, "tps", 60, "simulated ticks per second")
	scriptCmd.Flags().IntVar(&scriptMaxFrames, "max-frames", 10000, "give up after this many ticks")
	scriptCmd.Flags().StringVar(&scriptPNGDir, "png", "", "directory to render snapshot PNGs into")
	scriptCmd.Flags().BoolVar(&pngCaption, "caption", false, "write the transform onto each PNG")
}

func runScript(cmd *cobra.Command, args []string) error {
	if scriptTPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", scriptTPS)
	}
	s, err := buildSurface()
	if err != nil {
		return err
	}
	runner, err := loadScript(args[0])
	if err != nil {
		return err
	}

	s.SetTestRunner(runner)
	dt := 1 / float64(scriptTPS)
	seen := 0
	for i := 0; i < scriptMaxFrames && !runner.Done(); i++ {
		s.Update(dt)
		snaps := runner.Snapshots()
		if scriptPNGDir != "" {
			for _, snap := range snaps[seen:] {
				path := filepath.Join(scriptPNGDir, pngName(snap.Label))
				if err := (snapshot.Renderer{Caption: pngCaption}).Save(path, s); err != nil {
					return err
				}
			}
		}
		seen = len(snaps)
	}
	if !runner.Done() {
		return fmt.Errorf("script did not finish within %d frames", scriptMaxFrames)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(runner.Snapshots()); err != nil {
		return fmt.Errorf("failed to encode snapshots: %w", err)
	}
	return nil
}

// pngName turns a snapshot label into a file name inside the PNG directory.
func pngName(label string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, strings.TrimSpace(label))
	if name == "" {
		name = "unlabeled"
	}
	return name + ".png"
}
