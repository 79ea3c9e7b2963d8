package touchlook

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// TouchInputSource delivers touch events and arbitrates exclusive capture
// between a script and the host's default touch handling.
type TouchInputSource interface {
	OnTouchBegin(fn func(TouchEvent)) CallbackHandle
	OnTouchUpdate(fn func(TouchEvent)) CallbackHandle
	OnTouchEnd(fn func(TouchEvent)) CallbackHandle
	// CaptureTouchEvents suppresses the host's default touch handling.
	CaptureTouchEvents()
	// ReleaseTouchEvents restores the host's default touch handling.
	ReleaseTouchEvents()
}

// TouchHub is the ebiten-backed TouchInputSource. It reduces all active
// touch points (and optionally the left mouse button) to one logical touch
// at their centroid, the way the host reports touch events.
type TouchHub struct {
	// MouseAsTouch treats the left mouse button as an extra touch point so
	// the look controls work on desktop.
	MouseAsTouch bool

	begin  handlerList[func(TouchEvent)]
	update handlerList[func(TouchEvent)]
	end    handlerList[func(TouchEvent)]

	defaultFn func(TouchPhase, TouchEvent)
	captured  bool

	active bool
	last   TouchEvent

	touchIDs    []ebiten.TouchID
	injectQueue []injectedTouch

	logger *slog.Logger
}

// NewTouchHub creates a hub in the released state. A nil logger uses
// slog.Default.
func NewTouchHub(logger *slog.Logger) *TouchHub {
	if logger == nil {
		logger = slog.Default()
	}
	return &TouchHub{logger: logger}
}

// OnTouchBegin registers a callback for touch begin events.
func (h *TouchHub) OnTouchBegin(fn func(TouchEvent)) CallbackHandle {
	return h.begin.add(fn)
}

// OnTouchUpdate registers a callback for touch move events.
func (h *TouchHub) OnTouchUpdate(fn func(TouchEvent)) CallbackHandle {
	return h.update.add(fn)
}

// OnTouchEnd registers a callback for touch end events.
func (h *TouchHub) OnTouchEnd(fn func(TouchEvent)) CallbackHandle {
	return h.end.add(fn)
}

// SetDefaultHandler installs the host's default touch handling. It sees
// every event while the hub is released and nothing while captured.
func (h *TouchHub) SetDefaultHandler(fn func(TouchPhase, TouchEvent)) {
	h.defaultFn = fn
}

func (h *TouchHub) CaptureTouchEvents() {
	if !h.captured {
		h.logger.Debug("touch capture claimed")
	}
	h.captured = true
}

func (h *TouchHub) ReleaseTouchEvents() {
	if h.captured {
		h.logger.Debug("touch capture released")
	}
	h.captured = false
}

// Captured reports whether default touch handling is suppressed.
func (h *TouchHub) Captured() bool {
	return h.captured
}

// Active reports whether a touch is currently down.
func (h *TouchHub) Active() bool {
	return h.active
}

// Poll reads this frame's touch input and dispatches events. Call it once
// per tick from the game's Update, before the frame clock ticks. A queued
// injected event, if any, replaces device input for this poll.
func (h *TouchHub) Poll() {
	if h.processInjected() {
		return
	}
	x, y, n := h.readDevice()
	h.feed(x, y, n)
}

// readDevice returns the centroid and count of all active touch points.
func (h *TouchHub) readDevice() (x, y float64, n int) {
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		x += float64(tx)
		y += float64(ty)
		n++
	}
	if h.MouseAsTouch && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x += float64(mx)
		y += float64(my)
		n++
	}
	if n > 0 {
		x /= float64(n)
		y /= float64(n)
	}
	return x, y, n
}

// feed runs the logical-touch state machine for one sample of n points
// centered on (x, y).
func (h *TouchHub) feed(x, y float64, n int) {
	e := TouchEvent{X: x, Y: y, Touches: n}
	switch {
	case n == 0:
		if h.active {
			h.dispatch(TouchEnd, h.last)
		}
		return
	case !h.active:
		h.dispatch(TouchBegin, e)
	case n != h.last.Touches:
		// A finger landed or lifted: the centroid jumps, so re-baseline
		// instead of reporting the jump as motion.
		h.dispatch(TouchBegin, e)
	case x != h.last.X || y != h.last.Y:
		h.dispatch(TouchUpdate, e)
	}
}

// dispatch records the event as the hub's current touch and fires the
// default handler (if released) and the subscribed callbacks.
func (h *TouchHub) dispatch(phase TouchPhase, e TouchEvent) {
	switch phase {
	case TouchBegin, TouchUpdate:
		h.active = true
		h.last = e
	case TouchEnd:
		h.active = false
	}

	if !h.captured && h.defaultFn != nil {
		h.defaultFn(phase, e)
	}

	var list *handlerList[func(TouchEvent)]
	switch phase {
	case TouchBegin:
		list = &h.begin
	case TouchUpdate:
		list = &h.update
	default:
		list = &h.end
	}
	for _, entry := range list.snapshot() {
		entry.fn(e)
	}
}
