package cmd

import (
	"fmt"
	"os"

	"github.com/coolzilj/advdrag"
	"github.com/coolzilj/advdrag/ebitenhost"
	"github.com/spf13/cobra"
)

var (
	showStatus    bool
	windowScript  string
	exitWhenDone  bool
	screenshotDir string
	windowTitle   string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the scene in a window",
	Long: `Open the scene in an Ebitengine window. Drag the box with the mouse or
a finger and rotate it by its handle. Press D to toggle input and P to save a
screenshot.

Examples:
  advdrag window
  advdrag window --status --bounds parent
  advdrag window --script steps.json --exit-when-done`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().BoolVar(&showStatus, "status", false, "draw the state overlay")
	windowCmd.Flags().StringVar(&windowScript, "script", "", "JSON script to replay in the window")
	windowCmd.Flags().BoolVar(&exitWhenDone, "exit-when-done", false, "close the window when the script finishes")
	windowCmd.Flags().StringVar(&screenshotDir, "screenshots", "screenshots", "directory for screenshots")
	windowCmd.Flags().StringVar(&windowTitle, "title", "advdrag", "window title")
}

// loadScript reads a JSON test script from path.
func loadScript(path string) (*advdrag.TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	runner, err := advdrag.LoadTestScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return runner, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := buildSurface()
	if err != nil {
		return err
	}
	var runner *advdrag.TestRunner
	if windowScript != "" {
		if runner, err = loadScript(windowScript); err != nil {
			return err
		}
	}
	return ebitenhost.Run(s, runner, ebitenhost.RunConfig{
		Title:         windowTitle,
		ShowStatus:    showStatus,
		ScreenshotDir: screenshotDir,
		ExitWhenDone:  exitWhenDone,
	})
}
