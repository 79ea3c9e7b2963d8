package touchlook

// Script models the lifetime of a host script. Hooks registered with
// OnEnding run once when the script ends.
type Script struct {
	ending handlerList[func()]
	ended  bool
}

// NewScript creates a running script.
func NewScript() *Script {
	return &Script{}
}

// OnEnding registers a callback to run when the script ends.
func (s *Script) OnEnding(fn func()) CallbackHandle {
	return s.ending.add(fn)
}

// End runs the ending callbacks in registration order. Later calls do
// nothing.
func (s *Script) End() {
	if s.ended {
		return
	}
	s.ended = true
	for _, h := range s.ending.snapshot() {
		h.fn()
	}
}

// Ended reports whether End has been called.
func (s *Script) Ended() bool {
	return s.ended
}
