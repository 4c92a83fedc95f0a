package advdrag

import "testing"

func TestRenderHTML(t *testing.T) {
	d := New(Config{DefaultPosition: Vec2{X: 10, Y: 20}, DefaultAngle: 45})
	out := d.Render()
	if out.Kind != ElementHTML {
		t.Errorf("Kind = %v", out.Kind)
	}
	if got := out.Style["transform"]; got != "translate(10px,20px) rotate(45deg)" {
		t.Errorf("transform = %q", got)
	}
	if got := out.Style["z-index"]; got != "99999" {
		t.Errorf("z-index = %q", got)
	}
	if out.SVGTransform != "" {
		t.Errorf("SVGTransform = %q, want empty", out.SVGTransform)
	}
	if !out.Handle.Visible || out.Handle.Size != 16 || out.Handle.Alpha != 1 {
		t.Errorf("Handle = %+v", out.Handle)
	}
}

func TestRenderSVG(t *testing.T) {
	d := New(Config{DefaultPosition: Vec2{X: 3, Y: 4}, DefaultAngle: -90})
	d.Mount(&fakeElement{svg: true})
	out := d.Render()
	if out.Kind != ElementSVG {
		t.Fatalf("Kind = %v", out.Kind)
	}
	if out.SVGTransform != "translate(3,4) rotate(-90)" {
		t.Errorf("SVGTransform = %q", out.SVGTransform)
	}
	if _, ok := out.Style["transform"]; ok {
		t.Error("SVG output should not carry a CSS transform")
	}
	if out.Style["z-index"] != "99999" {
		t.Errorf("z-index = %q", out.Style["z-index"])
	}
}

func TestRenderDisabled(t *testing.T) {
	d := New(Config{CoreConfig: CoreConfig{Disabled: true}})
	out := d.Render()
	if out.Style["z-index"] != "auto" {
		t.Errorf("z-index = %q, want auto", out.Style["z-index"])
	}
	if out.Handle.Visible || out.Handle.Alpha != 0 {
		t.Errorf("Handle = %+v, want hidden", out.Handle)
	}

	d.SetDisabled(false)
	if out := d.Render(); !out.Handle.Visible || out.Style["z-index"] != "99999" {
		t.Errorf("after enable: %+v", out)
	}
}

func TestRenderHandleScale(t *testing.T) {
	tests := []struct {
		scale float64
		want  float64
	}{
		{0, 16},
		{1, 16},
		{2, 8},
		{0.5, 32},
	}
	for _, tt := range tests {
		d := New(Config{Scale: tt.scale})
		if got := d.Render().Handle.Size; got != tt.want {
			t.Errorf("scale %v: handle size = %v, want %v", tt.scale, got, tt.want)
		}
	}
}

func TestRenderScaleDoesNotAffectDrag(t *testing.T) {
	d := New(Config{Scale: 4})
	startDrag(d)
	dragBy(d, 10, 10)
	if tr := d.Render().Transform; tr.X != 10 || tr.Y != 10 {
		t.Errorf("transform = %+v, want (10, 10)", tr)
	}
}

func TestRenderAxisFallback(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantX, wantY float64
	}{
		{"uncontrolled x", Config{Axis: AxisX, DefaultPosition: Vec2{X: 5, Y: 7}}, 15, 7},
		{"uncontrolled y", Config{Axis: AxisY, DefaultPosition: Vec2{X: 5, Y: 7}}, 5, 17},
		{"uncontrolled none", Config{Axis: AxisNone, DefaultPosition: Vec2{X: 5, Y: 7}}, 5, 7},
		{"controlled x", Config{
			Axis:       AxisX,
			Position:   &Vec2{X: 1, Y: 2},
			CoreConfig: CoreConfig{OnDrag: func(PointerEvent, DragData) Outcome { return Proceed }},
		}, 11, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.cfg)
			startDrag(d)
			dragBy(d, 10, 10)
			tr := d.Render().Transform
			if tr.X != tt.wantX || tr.Y != tt.wantY {
				t.Errorf("transform = (%v, %v), want (%v, %v)", tr.X, tr.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRenderControlledAtRest(t *testing.T) {
	d := New(Config{
		DefaultPosition: Vec2{X: 100, Y: 100},
		Position:        &Vec2{X: 1, Y: 2},
		CoreConfig:      CoreConfig{OnStop: func(PointerEvent, DragData) Outcome { return Proceed }},
	})
	if tr := d.Render().Transform; tr.X != 1 || tr.Y != 2 {
		t.Errorf("transform = (%v, %v), want owner position (1, 2)", tr.X, tr.Y)
	}
}

func TestRenderFlags(t *testing.T) {
	d, _ := rotatable(Config{})
	startDrag(d)
	out := d.Render()
	if !out.Dragging || !out.Dragged || out.Rotating || out.Rotated {
		t.Errorf("flags while dragging: %+v", out)
	}
	stopDrag(d)
	d.HandleRotateStart(pointerAt(0, 0))
	out = d.Render()
	if out.Dragging || !out.Dragged || !out.Rotating || !out.Rotated {
		t.Errorf("flags while rotating: %+v", out)
	}
}
