package ebitenhost

import (
	"image/color"

	"github.com/coolzilj/advdrag"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	pageColor     = color.RGBA{R: 0x33, G: 0x36, B: 0x3f, A: 0xff}
	elementColor  = color.RGBA{R: 0x4d, G: 0xb3, B: 0xff, A: 0xff}
	activeColor   = color.RGBA{R: 0xff, G: 0xb3, B: 0x4d, A: 0xff}
	handleColor   = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	whitePixelImg *ebiten.Image
)

// whitePixel returns a lazily created 1x1 white image scaled to draw
// solid boxes.
func whitePixel() *ebiten.Image {
	if whitePixelImg == nil {
		whitePixelImg = ebiten.NewImage(1, 1)
		whitePixelImg.Fill(color.White)
	}
	return whitePixelImg
}

// boxGeoM maps the unit square onto a width x height box placed by the
// affine matrix m ([a, b, c, d, tx, ty]).
func boxGeoM(m [6]float64, width, height float64) ebiten.GeoM {
	var world ebiten.GeoM
	world.SetElement(0, 0, m[0])
	world.SetElement(1, 0, m[1])
	world.SetElement(0, 1, m[2])
	world.SetElement(1, 1, m[3])
	world.SetElement(0, 2, m[4])
	world.SetElement(1, 2, m[5])

	var g ebiten.GeoM
	g.Scale(width, height)
	g.Concat(world)
	return g
}

func fillBox(dst *ebiten.Image, n *advdrag.Node, clr color.RGBA) {
	var op ebiten.DrawImageOptions
	op.GeoM = boxGeoM(n.WorldMatrix(), n.Width, n.Height)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(whitePixel(), &op)
}

func drawPage(dst *ebiten.Image, page *advdrag.Node) {
	fillBox(dst, page, pageColor)
}

// drawElement fills the element box, highlighted while a gesture is active.
func drawElement(dst *ebiten.Image, el *advdrag.Node, out advdrag.RenderOutput) {
	clr := elementColor
	if out.Dragging || out.Rotating {
		clr = activeColor
	}
	fillBox(dst, el, clr)
}

// drawHandle draws the rotate handle as a filled circle at its page centre.
func drawHandle(dst *ebiten.Image, center advdrag.Vec2, style advdrag.HandleStyle) {
	if style.Alpha <= 0 {
		return
	}
	clr := color.NRGBA{R: handleColor.R, G: handleColor.G, B: handleColor.B, A: uint8(style.Alpha * 255)}
	vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(style.Size/2), clr, true)
}
