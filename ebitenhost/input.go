package ebitenhost

import (
	"github.com/coolzilj/advdrag"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxTouches matches the surface's pointer slots: 0 is the mouse, 1-9 touches.
const maxTouches = 10

type pointerInput struct {
	touchIDs  []ebiten.TouchID
	touchMap  [maxTouches]ebiten.TouchID
	touchUsed [maxTouches]bool
	touchLast [maxTouches][2]float64
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() advdrag.KeyModifiers {
	var mods advdrag.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= advdrag.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= advdrag.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= advdrag.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= advdrag.ModMeta
	}
	return mods
}

// pressedButton picks the button to report when several are held.
func pressedButton(left, right, middle bool) (advdrag.MouseButton, bool) {
	switch {
	case left:
		return advdrag.MouseButtonLeft, true
	case right:
		return advdrag.MouseButtonRight, true
	case middle:
		return advdrag.MouseButtonMiddle, true
	}
	return advdrag.MouseButtonLeft, false
}

// processMouse feeds the mouse as pointer 0.
func (p *pointerInput) processMouse(s *advdrag.Surface, mods advdrag.KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	button, pressed := pressedButton(
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	)
	s.Feed(0, float64(mx), float64(my), pressed, button, mods)
}

// processTouches feeds active touches as pointers 1-9 and releases the slots
// of touches that ended.
func (p *pointerInput) processTouches(s *advdrag.Surface, mods advdrag.KeyModifiers) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	var active [maxTouches]bool
	for _, tid := range p.touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		p.touchLast[slot] = [2]float64{float64(tx), float64(ty)}
		s.Feed(slot, float64(tx), float64(ty), true, advdrag.MouseButtonLeft, mods)
	}

	for i := 1; i < maxTouches; i++ {
		if p.touchUsed[i] && !active[i] {
			last := p.touchLast[i]
			s.Feed(i, last[0], last[1], false, advdrag.MouseButtonLeft, mods)
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps a touch to a pointer slot (1-9), allocating one if needed.
// Returns -1 when every slot is taken.
func (p *pointerInput) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxTouches; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxTouches; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}
