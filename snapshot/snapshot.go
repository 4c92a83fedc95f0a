// Package snapshot renders an advdrag Surface to an image with the gg
// software rasteriser. It needs no window, so scripted runs and tests can
// capture what a host would draw.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/coolzilj/advdrag"
	"github.com/gogpu/gg"
)

// Palette holds the colours used for each part of the drawing.
type Palette struct {
	Background color.Color
	Page       color.Color
	Element    color.Color
	Active     color.Color
	Handle     color.Color
	Caption    color.Color
}

// DefaultPalette matches the colours of the ebitenhost window.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff},
	Page:       color.RGBA{R: 0x33, G: 0x36, B: 0x3f, A: 0xff},
	Element:    color.RGBA{R: 0x4d, G: 0xb3, B: 0xff, A: 0xff},
	Active:     color.RGBA{R: 0xff, G: 0xb3, B: 0x4d, A: 0xff},
	Handle:     color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
	Caption:    color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
}

// Renderer draws surfaces. The zero value uses DefaultPalette and sizes the
// image to the surface's parent node.
type Renderer struct {
	Palette *Palette
	// Width and Height override the image size.
	Width, Height int
	// Caption writes the element's transform along the bottom edge.
	Caption bool
}

func (r Renderer) palette() Palette {
	if r.Palette != nil {
		return *r.Palette
	}
	return DefaultPalette
}

func (r Renderer) size(s *advdrag.Surface) (int, int, error) {
	w, h := r.Width, r.Height
	if w <= 0 {
		w = int(s.Parent().Width)
	}
	if h <= 0 {
		h = int(s.Parent().Height)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("snapshot: empty canvas %dx%d", w, h)
	}
	return w, h, nil
}

// ggMatrix converts a node matrix [a, b, c, d, tx, ty] into gg's row-major
// layout.
func ggMatrix(m [6]float64) gg.Matrix {
	return gg.Matrix{
		A: m[0], B: m[2], C: m[4],
		D: m[1], E: m[3], F: m[5],
	}
}

// draw paints the surface onto a new context. The caller closes it.
func (r Renderer) draw(s *advdrag.Surface) (*gg.Context, error) {
	w, h, err := r.size(s)
	if err != nil {
		return nil, err
	}
	pal := r.palette()
	out := s.Render()

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.FromColor(pal.Background))

	if err := fillNode(dc, s.Parent(), pal.Page); err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot: page: %w", err)
	}
	body := pal.Element
	if out.Dragging || out.Rotating {
		body = pal.Active
	}
	if err := fillNode(dc, s.Element(), body); err != nil {
		dc.Close()
		return nil, fmt.Errorf("snapshot: element: %w", err)
	}

	if out.Handle.Visible && out.Handle.Alpha > 0 {
		c := s.HandleCenter()
		hr, hg, hb, _ := pal.Handle.RGBA()
		dc.SetRGBA(float64(hr)/0xffff, float64(hg)/0xffff, float64(hb)/0xffff, out.Handle.Alpha)
		dc.DrawCircle(c.X, c.Y, out.Handle.Size/2)
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("snapshot: handle: %w", err)
		}
	}
	return dc, nil
}

// fillNode fills a node's box in page space.
func fillNode(dc *gg.Context, n *advdrag.Node, clr color.Color) error {
	dc.Push()
	defer dc.Pop()
	dc.SetTransform(ggMatrix(n.WorldMatrix()))
	dc.SetColor(clr)
	dc.DrawRectangle(0, 0, n.Width, n.Height)
	return dc.Fill()
}

// Image renders s and returns the result.
func (r Renderer) Image(s *advdrag.Surface) (image.Image, error) {
	dc, err := r.draw(s)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	if !r.Caption {
		return dc.Image(), nil
	}
	clr := r.palette().Caption
	if clr == nil {
		clr = DefaultPalette.Caption
	}
	return addCaption(dc.Image(), captionText(s.Render()), clr)
}

// Encode renders s and writes it to w as PNG.
func (r Renderer) Encode(w io.Writer, s *advdrag.Surface) error {
	if r.Caption {
		img, err := r.Image(s)
		if err != nil {
			return err
		}
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("snapshot: encode: %w", err)
		}
		return nil
	}
	dc, err := r.draw(s)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// Save renders s to a PNG file, creating parent directories as needed.
func (r Renderer) Save(path string, s *advdrag.Surface) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := r.Encode(f, s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	advdrag.Logger().Info("snapshot: saved", slog.String("path", path))
	return nil
}

// Save renders s with the default renderer.
func Save(path string, s *advdrag.Surface) error {
	return Renderer{}.Save(path, s)
}
