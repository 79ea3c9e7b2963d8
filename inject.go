package touchlook

// injectedTouch represents a single queued synthetic touch event.
type injectedTouch struct {
	phase TouchPhase
	event TouchEvent
}

// InjectBegin queues a touch begin at the given screen coordinates. The
// event is consumed by the next Poll.
func (h *TouchHub) InjectBegin(x, y float64) {
	h.injectQueue = append(h.injectQueue, injectedTouch{
		phase: TouchBegin,
		event: TouchEvent{X: x, Y: y, Touches: 1},
	})
}

// InjectMove queues a touch update at the given screen coordinates. Use it
// between InjectBegin and InjectEnd to simulate a drag.
func (h *TouchHub) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, injectedTouch{
		phase: TouchUpdate,
		event: TouchEvent{X: x, Y: y, Touches: 1},
	})
}

// InjectEnd queues a touch end at the given screen coordinates.
func (h *TouchHub) InjectEnd(x, y float64) {
	h.injectQueue = append(h.injectQueue, injectedTouch{
		phase: TouchEnd,
		event: TouchEvent{X: x, Y: y},
	})
}

// InjectDrag queues a full drag: begin at (fromX, fromY), frames-2
// linearly interpolated moves, then a final move and end at (toX, toY).
// The sequence consumes frames+1 polls. Minimum frames is 2.
func (h *TouchHub) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectBegin(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectMove(toX, toY)
	h.InjectEnd(toX, toY)
}

// Pending returns the number of queued injected events.
func (h *TouchHub) Pending() int {
	return len(h.injectQueue)
}

// processInjected pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (device input should be skipped).
func (h *TouchHub) processInjected() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.dispatch(evt.phase, evt.event)
	return true
}
