package termhost

import (
	"fmt"

	"github.com/coolzilj/advdrag"
)

const (
	runePage    = '·'
	runeElement = '█'
	runeHandle  = 'O'
)

// Draw renders the page, the element, its handle and the status line. The
// element is rasterised by mapping every cell centre into its local space.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if h == 0 {
		return
	}
	out := a.surface.Render()
	page := a.surface.Parent()
	el := a.surface.Element()

	elStyle := styleElement
	if out.Dragging || out.Rotating {
		elStyle = styleActive
	}

	for cy := 0; cy < h-1; cy++ {
		for cx := 0; cx < w; cx++ {
			px, py := a.cellCenter(cx, cy)
			if inside(el, px, py) {
				a.screen.SetContent(cx, cy, runeElement, nil, elStyle)
			} else if inside(page, px, py) {
				a.screen.SetContent(cx, cy, runePage, nil, stylePage)
			}
		}
	}

	if out.Handle.Alpha > 0 {
		c := a.surface.HandleCenter()
		hx, hy := a.pageCell(c.X, c.Y)
		style := styleHandle
		if out.Handle.Alpha < 1 {
			style = styleFaded
		}
		if hy >= 0 && hy < h-1 {
			a.screen.SetContent(hx, hy, runeHandle, nil, style)
		}
	}

	a.drawStatus(w, h-1, statusLine(a.surface.Draggable().State(), out))
}

// inside reports whether a page point lies in the node's transformed box.
func inside(n *advdrag.Node, px, py float64) bool {
	lx, ly := n.WorldToLocal(px, py)
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

func (a *App) drawStatus(w, y int, msg string) {
	col := 0
	for _, r := range msg {
		if col >= w {
			break
		}
		a.screen.SetContent(col, y, r, nil, styleStatus)
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, y, ' ', nil, styleStatus)
	}
}

func statusLine(st advdrag.State, out advdrag.RenderOutput) string {
	transform := out.Style["transform"]
	if out.Kind == advdrag.ElementSVG {
		transform = out.SVGTransform
	}
	return fmt.Sprintf(" %s | %s | slack %.0f,%.0f | d: disable  q: quit",
		st.Phase(), transform, st.SlackX, st.SlackY)
}
