package touchlook

// TouchState is the mutable look state of one Looker: the last touch
// position and the yaw/pitch motion not yet applied to the avatar.
type TouchState struct {
	LastX, LastY float64
	YawDelta     float64
	PitchDelta   float64
}

// begin moves the baseline to (x, y) without accumulating anything.
func (s *TouchState) begin(x, y float64) {
	s.LastX = x
	s.LastY = y
}

// update accumulates the motion from the baseline to (x, y) and moves the
// baseline there.
func (s *TouchState) update(x, y float64, sens Sensitivity) {
	s.YawDelta += sens.Yaw(x - s.LastX)
	s.PitchDelta += sens.Pitch(y - s.LastY)
	s.LastX = x
	s.LastY = y
}

// drain returns the pending deltas and zeroes them.
func (s *TouchState) drain() (yaw, pitch float64) {
	yaw, pitch = s.YawDelta, s.PitchDelta
	s.YawDelta = 0
	s.PitchDelta = 0
	return yaw, pitch
}
