package termhost

import (
	"strings"
	"testing"

	"github.com/coolzilj/advdrag"
	"github.com/gdamore/tcell/v2"
)

// newTestApp builds an 80x25 simulation screen showing a 640x384 page with a
// 100x50 box at (100, 100). With 8x16 cells the box covers columns 12-24 and
// rows 6-9; the rotate handle sits in cell (18, 5).
func newTestApp(t *testing.T, cfg advdrag.Config) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	page := advdrag.NewNode("page", 0, 0, 640, 384)
	box := advdrag.NewNode("box", 100, 100, 100, 50)
	s := advdrag.NewSurface(page, box, cfg)
	return New(screen, s, Options{}), screen
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func cellRune(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(cellRune(screen, x, y))
	}
	return b.String()
}

func TestMouseDrag(t *testing.T) {
	app, _ := newTestApp(t, advdrag.Config{})
	app.HandleEvent(mouse(18, 7, tcell.Button1))
	if !app.surface.Draggable().State().Dragging {
		t.Fatal("press on the box should start a drag")
	}
	app.HandleEvent(mouse(28, 7, tcell.Button1))
	app.HandleEvent(mouse(28, 8, tcell.Button1))
	app.HandleEvent(mouse(28, 8, tcell.ButtonNone))

	st := app.surface.Draggable().State()
	if st.Dragging || st.X != 80 || st.Y != 16 {
		t.Errorf("state = %+v, want idle at (80, 16)", st)
	}
}

func TestMouseRotate(t *testing.T) {
	app, _ := newTestApp(t, advdrag.Config{})
	app.HandleEvent(mouse(18, 5, tcell.Button1))
	if !app.surface.Draggable().State().Rotating {
		t.Fatal("press on the handle should start a rotation")
	}
	// Cell (40, 7) centres on page (324, 120), level with the pivot (150, 125)
	// to within the snap zone.
	app.HandleEvent(mouse(40, 7, tcell.Button1))
	app.HandleEvent(mouse(40, 7, tcell.ButtonNone))
	if got := app.surface.Draggable().State().Angle; got != 90 {
		t.Errorf("angle = %v, want 90", got)
	}
}

func TestRightButtonIgnored(t *testing.T) {
	app, _ := newTestApp(t, advdrag.Config{})
	app.HandleEvent(mouse(18, 7, tcell.Button2))
	if app.surface.Draggable().State().Dragging {
		t.Error("right button should not drag by default")
	}
}

func TestDraw(t *testing.T) {
	app, screen := newTestApp(t, advdrag.Config{})
	app.Draw()

	if r := cellRune(screen, 18, 7); r != runeElement {
		t.Errorf("box cell = %q, want %q", r, runeElement)
	}
	if r := cellRune(screen, 2, 2); r != runePage {
		t.Errorf("page cell = %q, want %q", r, runePage)
	}
	if r := cellRune(screen, 18, 5); r != runeHandle {
		t.Errorf("handle cell = %q, want %q", r, runeHandle)
	}
	status := rowText(screen, 24)
	if !strings.Contains(status, "idle") || !strings.Contains(status, "translate(0px,0px) rotate(0deg)") {
		t.Errorf("status = %q", status)
	}
}

func TestDrawFollowsDrag(t *testing.T) {
	app, screen := newTestApp(t, advdrag.Config{})
	app.HandleEvent(mouse(18, 7, tcell.Button1))
	app.HandleEvent(mouse(38, 7, tcell.Button1))
	app.Draw()
	if r := cellRune(screen, 14, 7); r == runeElement {
		t.Error("old box position still drawn")
	}
	if r := cellRune(screen, 36, 7); r != runeElement {
		t.Errorf("moved box cell = %q", r)
	}
	if !strings.Contains(rowText(screen, 24), "dragging") {
		t.Error("status should report dragging")
	}
}

func TestKeys(t *testing.T) {
	app, screen := newTestApp(t, advdrag.Config{})
	if app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)) {
		t.Fatal("d should not quit")
	}
	if !app.surface.Draggable().Config().Disabled {
		t.Error("d should disable input")
	}
	// Let the handle fade out.
	for i := 0; i < 10; i++ {
		app.surface.Update(0.05)
	}
	app.Draw()
	if r := cellRune(screen, 18, 5); r == runeHandle {
		t.Error("disabled handle still drawn")
	}
	if !app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if !app.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
}

func TestModifiersFromMask(t *testing.T) {
	got := modifiersFromMask(tcell.ModShift | tcell.ModAlt)
	if got != advdrag.ModShift|advdrag.ModAlt {
		t.Errorf("modifiers = %v", got)
	}
	if modifiersFromMask(tcell.ModNone) != 0 {
		t.Error("no modifiers expected")
	}
}

func TestButtonFromMask(t *testing.T) {
	tests := []struct {
		mask        tcell.ButtonMask
		want        advdrag.MouseButton
		wantPressed bool
	}{
		{tcell.ButtonNone, advdrag.MouseButtonLeft, false},
		{tcell.Button1, advdrag.MouseButtonLeft, true},
		{tcell.Button2, advdrag.MouseButtonRight, true},
		{tcell.Button3, advdrag.MouseButtonMiddle, true},
		{tcell.WheelUp, advdrag.MouseButtonLeft, false},
	}
	for _, tt := range tests {
		got, pressed := buttonFromMask(tt.mask)
		if got != tt.want || pressed != tt.wantPressed {
			t.Errorf("buttonFromMask(%v) = %v, %v", tt.mask, got, pressed)
		}
	}
}
