package touchlook

import (
	"errors"
	"math"
)

// Default sensitivity constants. They are empirically tuned, not physically
// derived: one pixel of horizontal drag turns the body by YawScale*Timestep
// radians, one pixel of vertical drag tilts the head by PitchScale*Timestep
// degrees.
const (
	DefaultYawScale   = -0.25
	DefaultPitchScale = -12.5
	DefaultTimestep   = 0.016
)

var (
	// ErrAlreadyStarted is returned by Looker.Start when the looker already
	// holds the touch capture.
	ErrAlreadyStarted = errors.New("touchlook: looker already started")
	// ErrReentrantTick is returned by FrameTicker.Tick when called from
	// inside a frame callback.
	ErrReentrantTick = errors.New("touchlook: reentrant frame tick")
	// ErrNilAvatar is returned by Looker.Start when no avatar was supplied.
	ErrNilAvatar = errors.New("touchlook: nil avatar")
)

// Sensitivity scales raw touch motion into yaw and pitch deltas.
type Sensitivity struct {
	YawScale   float64 `yaml:"yaw_scale" json:"yawScale"`
	PitchScale float64 `yaml:"pitch_scale" json:"pitchScale"`
	Timestep   float64 `yaml:"timestep" json:"timestep"`
}

// DefaultSensitivity returns the stock sensitivity.
func DefaultSensitivity() Sensitivity {
	return Sensitivity{
		YawScale:   DefaultYawScale,
		PitchScale: DefaultPitchScale,
		Timestep:   DefaultTimestep,
	}
}

// Yaw converts a horizontal drag distance into a yaw delta in radians.
func (s Sensitivity) Yaw(dx float64) float64 {
	return dx * s.YawScale * s.Timestep
}

// Pitch converts a vertical drag distance into a head pitch delta.
func (s Sensitivity) Pitch(dy float64) float64 {
	return dy * s.PitchScale * s.Timestep
}

// TouchEvent is a single logical touch sample in screen coordinates.
// When several fingers are down, X and Y are their centroid.
type TouchEvent struct {
	X, Y    float64
	Touches int
}

// finite reports whether both coordinates are usable numbers.
func (e TouchEvent) finite() bool {
	return !math.IsNaN(e.X) && !math.IsInf(e.X, 0) &&
		!math.IsNaN(e.Y) && !math.IsInf(e.Y, 0)
}

// TouchPhase identifies a kind of touch event.
type TouchPhase uint8

const (
	TouchBegin  TouchPhase = iota // first finger down, or finger count changed
	TouchUpdate                   // logical touch point moved
	TouchEnd                      // last finger lifted
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegin:
		return "begin"
	case TouchUpdate:
		return "update"
	case TouchEnd:
		return "end"
	default:
		return "unknown"
	}
}

// CaptureState tells whether a looker holds exclusive touch input.
type CaptureState uint8

const (
	Released CaptureState = iota // host default touch handling is active
	Captured                     // touch input belongs to the looker
)

func (c CaptureState) String() string {
	if c == Captured {
		return "captured"
	}
	return "released"
}
