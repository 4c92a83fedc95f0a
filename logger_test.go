package advdrag

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLoggerCapturesWarnings(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	New(Config{Position: &Vec2{X: 1, Y: 2}})
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "controlled position") {
		t.Errorf("missing warning, got %q", buf.String())
	}

	buf.Reset()
	d := New(Config{})
	startDrag(d)
	dragBy(d, 1, 2)
	if !strings.Contains(buf.String(), "advdrag: drag") {
		t.Errorf("missing debug output, got %q", buf.String())
	}
}
