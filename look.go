package touchlook

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// EventSink is the interface for optional per-frame look reporting.
// When set on a Looker, every drained frame is forwarded to it.
type EventSink interface {
	EmitLook(event LookEvent)
}

// LookEvent describes the motion applied to the avatar in one frame.
type LookEvent struct {
	Frame       uint64
	Yaw         float64 // radians applied about +Y this frame
	Pitch       float64 // head pitch added this frame
	HeadPitch   float64 // head pitch after the frame
	Orientation mgl64.Quat
}

// Looker binds touch drags to an avatar's body yaw and head pitch. It owns
// its TouchState; every handler runs on the host's single event thread.
type Looker struct {
	src    TouchInputSource
	clock  FrameClock
	script *Script
	avatar Avatar
	cfg    Config
	log    *slog.Logger

	state   TouchState
	capture CaptureState
	handles []CallbackHandle
	frame   uint64

	sink  EventSink
	glide *pitchGlide
}

// NewLooker creates a released looker. script may be nil when the host has
// no script lifetime to follow; End must then be called explicitly. A zero
// Sensitivity in cfg is replaced by DefaultSensitivity.
func NewLooker(src TouchInputSource, clock FrameClock, script *Script, avatar Avatar, cfg Config) *Looker {
	if cfg.Sensitivity == (Sensitivity{}) {
		cfg.Sensitivity = DefaultSensitivity()
	}
	return &Looker{
		src:    src,
		clock:  clock,
		script: script,
		avatar: avatar,
		cfg:    cfg,
		log:    cfg.logger(),
	}
}

// Start subscribes the touch and frame handlers, claims exclusive touch
// capture and levels the avatar's body.
func (l *Looker) Start() error {
	if l.capture == Captured {
		return ErrAlreadyStarted
	}
	if l.avatar == nil {
		return ErrNilAvatar
	}

	l.handles = append(l.handles[:0],
		l.src.OnTouchBegin(l.TouchBegin),
		l.src.OnTouchUpdate(l.TouchUpdate),
		l.src.OnTouchEnd(l.TouchEnd),
		l.clock.OnFrame(l.onFrame),
	)
	if l.script != nil {
		l.handles = append(l.handles, l.script.OnEnding(l.End))
	}

	l.src.CaptureTouchEvents()
	l.capture = Captured

	l.avatar.SetBodyYaw(0)
	l.avatar.SetBodyPitch(0)
	l.avatar.SetBodyRoll(0)
	return nil
}

// End releases the touch capture, restoring the host's default handling,
// and unsubscribes every handler. Pending motion is discarded. Calling End
// on a released looker does nothing.
func (l *Looker) End() {
	if l.capture == Released {
		return
	}
	l.src.ReleaseTouchEvents()
	l.capture = Released

	for _, h := range l.handles {
		h.Remove()
	}
	l.handles = l.handles[:0]
	l.state = TouchState{}
	l.glide = nil
}

// Capture returns the current touch ownership state.
func (l *Looker) Capture() CaptureState {
	return l.capture
}

// State returns a copy of the current touch state.
func (l *Looker) State() TouchState {
	return l.state
}

// Avatar returns the avatar this looker drives.
func (l *Looker) Avatar() Avatar {
	return l.avatar
}

// SetEventSink sets the optional per-frame look sink.
func (l *Looker) SetEventSink(sink EventSink) {
	l.sink = sink
}

// TouchBegin moves the drag baseline to the touch position.
func (l *Looker) TouchBegin(e TouchEvent) {
	if !l.accept("begin", e) {
		return
	}
	l.state.begin(e.X, e.Y)
}

// TouchEnd is observational: lifting the finger keeps pending motion for
// the next frame.
func (l *Looker) TouchEnd(e TouchEvent) {
	l.accept("end", e)
}

// TouchUpdate accumulates the scaled motion since the previous touch
// position.
func (l *Looker) TouchUpdate(e TouchEvent) {
	if !l.accept("update", e) {
		return
	}
	l.state.update(e.X, e.Y, l.cfg.Sensitivity)
}

// accept traces the event and rejects non-finite coordinates.
func (l *Looker) accept(kind string, e TouchEvent) bool {
	if !e.finite() {
		l.log.Debug("dropping non-finite touch", "event", kind, "x", e.X, "y", e.Y)
		return false
	}
	if l.cfg.Debug {
		l.log.Debug("touch "+kind, "x", e.X, "y", e.Y, "touches", e.Touches)
	}
	return true
}

func (l *Looker) onFrame(info FrameInfo) {
	l.frame = info.Frame
	l.advanceGlide(info.Delta)
	l.FrameUpdate()
}

// FrameUpdate drains the accumulated motion into the avatar: the yaw is
// composed onto the orientation as orientation*rotY(yaw) and the pitch is
// added to the head pitch. Both deltas are zero afterwards. The frame
// clock calls this exactly once per frame.
func (l *Looker) FrameUpdate() {
	yaw, pitch := l.state.drain()

	old := l.avatar.Orientation()
	next := old.Mul(YawRotation(yaw))
	if l.cfg.Debug {
		l.log.Debug("changing orientation",
			"old", fmtQuat(old), "new", fmtQuat(next))
	}
	l.avatar.SetOrientation(next)

	oldPitch := l.avatar.HeadPitch()
	newPitch := l.clampPitch(oldPitch + pitch)
	if l.cfg.Debug {
		l.log.Debug("changing pitch", "old", oldPitch, "new", newPitch)
	}
	l.avatar.SetHeadPitch(newPitch)
	if l.glide != nil {
		l.glide.offset += pitch
	}

	if l.sink != nil {
		l.sink.EmitLook(LookEvent{
			Frame:       l.frame,
			Yaw:         yaw,
			Pitch:       pitch,
			HeadPitch:   newPitch,
			Orientation: next,
		})
	}
}

func (l *Looker) clampPitch(p float64) float64 {
	limit := l.cfg.PitchLimit
	if limit <= 0 {
		return p
	}
	return mgl64.Clamp(p, -limit, limit)
}

func fmtQuat(q mgl64.Quat) [4]float64 {
	return [4]float64{q.X(), q.Y(), q.Z(), q.W}
}
