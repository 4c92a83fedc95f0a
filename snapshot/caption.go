package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/coolzilj/advdrag"
)

const (
	captionSize    = 12.0
	captionPadding = 4
)

var (
	captionOnce sync.Once
	captionFace font.Face
	captionErr  error
)

// loadCaptionFace parses the embedded Go Regular font once.
func loadCaptionFace() (font.Face, error) {
	captionOnce.Do(func() {
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			captionErr = fmt.Errorf("snapshot: parse font: %w", err)
			return
		}
		captionFace, captionErr = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    captionSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return captionFace, captionErr
}

// captionText describes the rendered transform the way the element would
// receive it.
func captionText(out advdrag.RenderOutput) string {
	if out.Kind == advdrag.ElementSVG {
		return "transform=" + out.SVGTransform
	}
	return "transform: " + out.Style["transform"]
}

// addCaption copies src and writes text along its bottom-left corner.
func addCaption(src image.Image, text string, clr color.Color) (*image.RGBA, error) {
	face, err := loadCaptionFace()
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)

	baseline := b.Max.Y - captionPadding - face.Metrics().Descent.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(b.Min.X+captionPadding, baseline),
	}
	d.DrawString(text)
	return dst, nil
}
