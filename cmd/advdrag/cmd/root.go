package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/coolzilj/advdrag"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	pageSize string
	boxRect  string
	bodyFlag string

	axisFlag      string
	boundsFlag    string
	startX        float64
	startY        float64
	angle         float64
	scale         float64
	disabled      bool
	controlled    bool
	svg           bool
	grid          float64
	deadZone      float64
	allowAnyClick bool
)

var rootCmd = &cobra.Command{
	Use:   "advdrag",
	Short: "Drag and rotate a box with the advdrag state machine",
	Long: `Run a box that can be dragged by its body and rotated by its handle.
The same scene runs in a window, in a terminal, or headless from a JSON
script.

Examples:
  advdrag window --bounds parent --status        # Window, kept inside the page
  advdrag term --axis x                          # Terminal, horizontal drags only
  advdrag script steps.json --png shots/         # Headless run with PNG snapshots
  advdrag snapshot box.png --angle 90            # Render the initial scene`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "log every gesture step to stderr")

	pf.StringVar(&pageSize, "page", "640x480", "page size as WIDTHxHEIGHT")
	pf.StringVar(&boxRect, "box", "100,100,160,100", "box layout as left,top,width,height")
	pf.StringVar(&bodyFlag, "body", "", "convex grab area as x1,y1,x2,y2,... in box coordinates (default: the whole box)")

	pf.StringVar(&axisFlag, "axis", "both", "drag axis: both, x, y or none")
	pf.StringVar(&boundsFlag, "bounds", "", `drag bounds: "parent" or left,right,top,bottom`)
	pf.Float64Var(&startX, "x", 0, "starting x offset")
	pf.Float64Var(&startY, "y", 0, "starting y offset")
	pf.Float64Var(&angle, "angle", 0, "starting angle in degrees")
	pf.Float64Var(&scale, "scale", 1, "zoom factor the rotate handle compensates for")
	pf.BoolVar(&disabled, "disabled", false, "start with input disabled")
	pf.BoolVar(&controlled, "controlled", false, "let an owner hold the position and accept it on drop")
	pf.BoolVar(&svg, "svg", false, "treat the box as an SVG element")
	pf.Float64Var(&grid, "grid", 0, "snap drags to a square grid of this size")
	pf.Float64Var(&deadZone, "dead-zone", 0, "pixels to travel before a press becomes a gesture")
	pf.BoolVar(&allowAnyClick, "any-button", false, "allow any mouse button to start a gesture")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	advdrag.SetLogger(slog.New(h))
	return nil
}

// buildConfig maps the scene flags onto a Config. Owner callbacks for
// controlled mode are attached by buildSurface.
func buildConfig() (advdrag.Config, error) {
	axis, err := advdrag.ParseAxis(axisFlag)
	if err != nil {
		return advdrag.Config{}, err
	}
	bounds, err := advdrag.ParseBounds(boundsFlag)
	if err != nil {
		return advdrag.Config{}, err
	}
	if grid < 0 {
		return advdrag.Config{}, fmt.Errorf("grid must not be negative, got %v", grid)
	}
	cfg := advdrag.Config{
		CoreConfig: advdrag.CoreConfig{
			Disabled:      disabled,
			AllowAnyClick: allowAnyClick,
			DeadZone:      deadZone,
			Grid:          [2]float64{grid, grid},
		},
		Axis:            axis,
		Bounds:          bounds,
		DefaultPosition: advdrag.Vec2{X: startX, Y: startY},
		DefaultAngle:    angle,
		Scale:           scale,
	}
	if controlled {
		cfg.Position = &advdrag.Vec2{X: startX, Y: startY}
	}
	return cfg, nil
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (float64, float64, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("parse page size %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse page size %q: %w", s, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse page size %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("parse page size %q: must be positive", s)
	}
	return width, height, nil
}

// parseBox parses "left,top,width,height".
func parseBox(s string) ([4]float64, error) {
	var v [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return v, fmt.Errorf("parse box %q: want left,top,width,height", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("parse box %q: %w", s, err)
		}
		v[i] = f
	}
	if v[2] <= 0 || v[3] <= 0 {
		return v, fmt.Errorf("parse box %q: size must be positive", s)
	}
	return v, nil
}

// parseBody parses "x1,y1,x2,y2,..." into a polygon of at least three
// vertices. An empty string means the whole box.
func parseBody(s string) (advdrag.HitShape, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts)%2 != 0 || len(parts) < 6 {
		return nil, fmt.Errorf("parse body %q: want at least three x,y pairs", s)
	}
	pts := make([]advdrag.Vec2, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse body %q: %w", s, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[i+1]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse body %q: %w", s, err)
		}
		pts = append(pts, advdrag.Vec2{X: x, Y: y})
	}
	return advdrag.HitPolygon{Vertices: pts}, nil
}

// buildSurface assembles the page, the box and its Draggable from the
// scene flags. In controlled mode an owner adopts every accepted drop.
func buildSurface() (*advdrag.Surface, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}
	pw, ph, err := parseSize(pageSize)
	if err != nil {
		return nil, err
	}
	b, err := parseBox(boxRect)
	if err != nil {
		return nil, err
	}
	body, err := parseBody(bodyFlag)
	if err != nil {
		return nil, err
	}

	var dropped *advdrag.Vec2
	if controlled {
		cfg.OnStop = func(_ advdrag.PointerEvent, data advdrag.DragData) advdrag.Outcome {
			dropped = &advdrag.Vec2{X: data.X, Y: data.Y}
			return advdrag.Proceed
		}
	}

	page := advdrag.NewNode("page", 0, 0, pw, ph)
	box := advdrag.NewNode("box", b[0], b[1], b[2], b[3])
	box.SVG = svg
	s := advdrag.NewSurface(page, box, cfg)
	s.BodyShape = body

	if controlled {
		s.Draggable().Subscribe(func(st advdrag.State) {
			if st.Dragging || dropped == nil {
				return
			}
			p := *dropped
			dropped = nil
			advdrag.Logger().Debug("owner: adopt drop", slog.Float64("x", p.X), slog.Float64("y", p.Y))
			s.SetPosition(&p)
		})
	}
	return s, nil
}
