package advdrag

// queuedPointer is one scripted pointer sample in page coordinates.
type queuedPointer struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

func (s *Surface) enqueue(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, queuedPointer{x: x, y: y, pressed: pressed, button: MouseButtonLeft})
}

// InjectPress queues a left-button press at (x, y).
func (s *Surface) InjectPress(x, y float64) { s.enqueue(x, y, true) }

// InjectMove queues a move with the button still down.
func (s *Surface) InjectMove(x, y float64) { s.enqueue(x, y, true) }

// InjectHover queues a move with no button down.
func (s *Surface) InjectHover(x, y float64) { s.enqueue(x, y, false) }

// InjectRelease queues a button release at (x, y).
func (s *Surface) InjectRelease(x, y float64) { s.enqueue(x, y, false) }

// InjectClick queues a press and a release on the same spot.
func (s *Surface) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at the start point, evenly spaced moves that
// end on the target, and a release there: one sample per frame, frames in
// all, never fewer than three.
func (s *Surface) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	moves := max(frames, 3) - 2
	s.InjectPress(fromX, fromY)
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectRotate grabs the rotate handle where it currently sits and drags it
// to (toX, toY).
func (s *Surface) InjectRotate(toX, toY float64, frames int) {
	c := s.HandleCenter()
	s.InjectDrag(c.X, c.Y, toX, toY, frames)
}

// Pending reports how many scripted samples are still queued.
func (s *Surface) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput feeds the oldest queued sample as pointer 0. It
// reports false when the queue is empty and live input should be read.
func (s *Surface) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	p := s.injectQueue[0]
	s.injectQueue = s.injectQueue[1:]
	s.processPointer(0, p.x, p.y, p.pressed, p.button, 0)
	return true
}
