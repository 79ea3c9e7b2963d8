package touchlook

// FrameInfo describes one frame tick.
type FrameInfo struct {
	// Frame is the 1-based tick number.
	Frame uint64
	// Delta is the time since the previous tick in seconds.
	Delta float32
}

// FrameClock notifies subscribers once per rendered frame.
//
// Implementations must invoke each callback exactly once per frame and
// never re-enter a callback from inside another; Looker relies on this to
// drain its accumulated motion exactly once.
type FrameClock interface {
	OnFrame(fn func(FrameInfo)) CallbackHandle
}

// FrameTicker is a FrameClock driven by the host calling Tick once per
// frame.
type FrameTicker struct {
	handlers handlerList[func(FrameInfo)]
	frame    uint64
	ticking  bool
}

// NewFrameTicker creates a ticker at frame 0.
func NewFrameTicker() *FrameTicker {
	return &FrameTicker{}
}

// OnFrame registers a per-frame callback. Callbacks run in registration
// order.
func (t *FrameTicker) OnFrame(fn func(FrameInfo)) CallbackHandle {
	return t.handlers.add(fn)
}

// Tick advances one frame and runs every callback once. Calling Tick from
// inside a frame callback returns ErrReentrantTick and runs nothing.
func (t *FrameTicker) Tick(dt float32) error {
	if t.ticking {
		return ErrReentrantTick
	}
	t.ticking = true
	defer func() { t.ticking = false }()

	t.frame++
	info := FrameInfo{Frame: t.frame, Delta: dt}
	for _, h := range t.handlers.snapshot() {
		h.fn(info)
	}
	return nil
}

// Frame returns the number of completed or in-progress ticks.
func (t *FrameTicker) Frame() uint64 {
	return t.frame
}
