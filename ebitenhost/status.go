package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/coolzilj/advdrag"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statusRefresh is how often the FPS figures are resampled, in seconds.
const statusRefresh = 0.5

// statusOverlay prints the interaction state and frame rate with
// ebitenutil.DebugPrint on a translucent panel.
type statusOverlay struct {
	sinceRefresh float64
	fps, tps     float64
}

func (o *statusOverlay) update(dt float64) {
	o.sinceRefresh += dt
	if o.sinceRefresh < statusRefresh {
		return
	}
	o.sinceRefresh = 0
	o.fps = ebiten.ActualFPS()
	o.tps = ebiten.ActualTPS()
}

func (o *statusOverlay) draw(screen *ebiten.Image, st advdrag.State, out advdrag.RenderOutput) {
	msg := statusText(st, out, o.fps, o.tps)
	fillPanel(screen, 0, 0, 260, 84)
	ebitenutil.DebugPrintAt(screen, msg, 4, 2)
}

// statusText formats the overlay lines.
func statusText(st advdrag.State, out advdrag.RenderOutput, fps, tps float64) string {
	transform := out.Style["transform"]
	if out.Kind == advdrag.ElementSVG {
		transform = out.SVGTransform
	}
	return fmt.Sprintf("%s  pos %.1f,%.1f  angle %.0f\nslack %.1f,%.1f  z %s\n%s\nFPS: %.1f  TPS: %.1f\n[D] toggle disabled  [P] screenshot",
		st.Phase(), st.X, st.Y, st.Angle,
		st.SlackX, st.SlackY, out.Style["z-index"],
		transform,
		fps, tps)
}

var panelColor = color.RGBA{A: 128}

func fillPanel(dst *ebiten.Image, x, y, w, h float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(panelColor)
	dst.DrawImage(whitePixel(), &op)
}
