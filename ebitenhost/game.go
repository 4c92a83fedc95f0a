// Package ebitenhost runs an advdrag Surface in an Ebitengine window.
package ebitenhost

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/coolzilj/advdrag"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size in pixels. Zero uses the size of
	// the surface's parent node.
	Width, Height int
	// Background is the clear colour behind the page. Zero uses a dark grey.
	Background color.RGBA
	// ShowStatus draws the state overlay in the top-left corner.
	ShowStatus bool
	// ScreenshotDir is where screenshot steps and the P key write PNGs.
	// Defaults to "screenshots".
	ScreenshotDir string
	// ExitWhenDone closes the window once an attached test runner finishes.
	ExitWhenDone bool
}

var defaultBackground = color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}

func (c RunConfig) withDefaults(s *advdrag.Surface) RunConfig {
	if c.Title == "" {
		c.Title = "advdrag"
	}
	if c.Width <= 0 {
		c.Width = int(s.Parent().Width)
	}
	if c.Height <= 0 {
		c.Height = int(s.Parent().Height)
	}
	if c.Background == (color.RGBA{}) {
		c.Background = defaultBackground
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}

// Game implements ebiten.Game for one Surface. Screen pixels are page
// coordinates.
type Game struct {
	surface *advdrag.Surface
	runner  *advdrag.TestRunner
	cfg     RunConfig

	pointers pointerInput
	status   statusOverlay

	screenshotQueue []string
	seenSnapshots   int
}

// NewGame wraps s. runner may be nil.
func NewGame(s *advdrag.Surface, runner *advdrag.TestRunner, cfg RunConfig) *Game {
	g := &Game{
		surface: s,
		runner:  runner,
		cfg:     cfg.withDefaults(s),
	}
	if runner != nil {
		s.SetTestRunner(runner)
	}
	return g
}

// Surface returns the driven surface.
func (g *Game) Surface() *advdrag.Surface { return g.surface }

// Update advances one tick. Injected input from a test runner takes the
// place of real pointer input for the frame it is consumed in.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if !g.surface.Update(dt) {
		mods := readModifiers()
		g.pointers.processMouse(g.surface, mods)
		g.pointers.processTouches(g.surface, mods)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		disabled := !g.surface.Draggable().Config().Disabled
		g.surface.SetDisabled(disabled)
		advdrag.Logger().Info("ebitenhost: toggled input", slog.Bool("disabled", disabled))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Screenshot("manual")
	}
	g.captureRunnerSnapshots()
	g.status.update(dt)

	if g.cfg.ExitWhenDone && g.runner != nil && g.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

// captureRunnerSnapshots queues a screenshot for every snapshot step the
// test runner took since the last tick.
func (g *Game) captureRunnerSnapshots() {
	if g.runner == nil {
		return
	}
	snaps := g.runner.Snapshots()
	for _, snap := range snaps[g.seenSnapshots:] {
		g.Screenshot(snap.Label)
	}
	g.seenSnapshots = len(snaps)
}

// Draw renders the page, the element and its rotate handle.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	out := g.surface.Render()
	drawPage(screen, g.surface.Parent())
	drawElement(screen, g.surface.Element(), out)
	if out.Handle.Visible {
		c := g.surface.HandleCenter()
		drawHandle(screen, c, out.Handle)
	}
	if g.cfg.ShowStatus {
		g.status.draw(screen, g.surface.Draggable().State(), out)
	}
	g.flushScreenshots(screen)
}

// Layout keeps one screen pixel per page unit.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and runs s until the window is closed.
func Run(s *advdrag.Surface, runner *advdrag.TestRunner, cfg RunConfig) error {
	g := NewGame(s, runner, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
