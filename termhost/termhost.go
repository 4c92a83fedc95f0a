// Package termhost runs an advdrag Surface in a terminal with tcell. Each
// character cell stands for a CellWidth x CellHeight block of page pixels.
package termhost

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/coolzilj/advdrag"
	"github.com/gdamore/tcell/v2"
)

const (
	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0
	frameInterval     = 50 * time.Millisecond
)

var (
	stylePage    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray)
	styleElement = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHandle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFaded   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// Options configures an App.
type Options struct {
	// CellWidth and CellHeight are page pixels per character cell.
	CellWidth, CellHeight float64
}

// App draws one Surface on a tcell screen and feeds it mouse input.
type App struct {
	screen  tcell.Screen
	surface *advdrag.Surface
	cellW   float64
	cellH   float64
	last    time.Time
}

// New creates an App on an initialised screen. Mouse reporting is enabled.
func New(screen tcell.Screen, s *advdrag.Surface, opts Options) *App {
	if opts.CellWidth <= 0 {
		opts.CellWidth = defaultCellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = defaultCellHeight
	}
	screen.EnableMouse()
	return &App{screen: screen, surface: s, cellW: opts.CellWidth, cellH: opts.CellHeight}
}

// Run opens the terminal, runs s until the user quits, and restores the
// terminal.
func Run(s *advdrag.Surface, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termhost: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termhost: init screen: %w", err)
	}
	defer screen.Fini()
	New(screen, s, opts).Loop()
	return nil
}

// Loop draws and handles events until HandleEvent asks to quit. A ticker
// posts interrupts so animations advance without input.
func (a *App) Loop() {
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				a.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	a.last = time.Now()
	for {
		a.Draw()
		a.screen.Show()
		ev := a.screen.PollEvent()
		if ev == nil || a.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent processes one event. It reports whether the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventInterrupt:
		now := ev.When()
		a.surface.Update(now.Sub(a.last).Seconds())
		a.last = now
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
		return true
	case ev.Rune() == 'd':
		disabled := !a.surface.Draggable().Config().Disabled
		a.surface.SetDisabled(disabled)
		advdrag.Logger().Info("termhost: toggled input", slog.Bool("disabled", disabled))
	}
	return false
}

// buttonFromMask maps a tcell button mask to the button a gesture reports.
func buttonFromMask(mask tcell.ButtonMask) (advdrag.MouseButton, bool) {
	switch {
	case mask&tcell.Button1 != 0:
		return advdrag.MouseButtonLeft, true
	case mask&tcell.Button2 != 0:
		return advdrag.MouseButtonRight, true
	case mask&tcell.Button3 != 0:
		return advdrag.MouseButtonMiddle, true
	}
	return advdrag.MouseButtonLeft, false
}

func modifiersFromMask(mask tcell.ModMask) advdrag.KeyModifiers {
	var mods advdrag.KeyModifiers
	if mask&tcell.ModShift != 0 {
		mods |= advdrag.ModShift
	}
	if mask&tcell.ModCtrl != 0 {
		mods |= advdrag.ModCtrl
	}
	if mask&tcell.ModAlt != 0 {
		mods |= advdrag.ModAlt
	}
	if mask&tcell.ModMeta != 0 {
		mods |= advdrag.ModMeta
	}
	return mods
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	px, py := a.cellCenter(cx, cy)
	button, pressed := buttonFromMask(ev.Buttons())
	a.surface.Feed(0, px, py, pressed, button, modifiersFromMask(ev.Modifiers()))
}

// cellCenter returns the page coordinates of the centre of a cell.
func (a *App) cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * a.cellW, (float64(cy) + 0.5) * a.cellH
}

// pageCell returns the cell containing a page point.
func (a *App) pageCell(x, y float64) (int, int) {
	return int(x / a.cellW), int(y / a.cellH)
}
