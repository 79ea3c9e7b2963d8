package touchlook

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// newTestLooker returns a started looker with its hub, ticker and body.
func newTestLooker(t *testing.T, cfg Config) (*Looker, *TouchHub, *FrameTicker, *Body) {
	t.Helper()
	hub := NewTouchHub(nil)
	ticker := NewFrameTicker()
	body := NewBody()
	l := NewLooker(hub, ticker, nil, body, cfg)
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return l, hub, ticker, body
}

func TestTouchUpdateAccumulatesScaledDeltas(t *testing.T) {
	l, _, _, _ := newTestLooker(t, DefaultConfig())

	points := [][2]float64{{5, 7}, {12, 3}, {-4, 20}, {-4, 20}, {100, -50}}
	l.TouchBegin(TouchEvent{X: 0, Y: 0})

	var wantYaw, wantPitch float64
	lastX, lastY := 0.0, 0.0
	for _, p := range points {
		l.TouchUpdate(TouchEvent{X: p[0], Y: p[1]})
		wantYaw += (p[0] - lastX) * -0.25 * 0.016
		wantPitch += (p[1] - lastY) * -12.5 * 0.016
		lastX, lastY = p[0], p[1]
	}

	st := l.State()
	if !approxEqual(st.YawDelta, wantYaw, epsilon) {
		t.Errorf("YawDelta = %v, want %v", st.YawDelta, wantYaw)
	}
	if !approxEqual(st.PitchDelta, wantPitch, epsilon) {
		t.Errorf("PitchDelta = %v, want %v", st.PitchDelta, wantPitch)
	}
	if st.LastX != 100 || st.LastY != -50 {
		t.Errorf("baseline = (%v,%v), want (100,-50)", st.LastX, st.LastY)
	}
}

func TestFrameUpdateZeroesDeltas(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"no motion", 0, 0},
		{"horizontal", 37, 0},
		{"vertical", 0, -19},
		{"both", 1e6, -1e6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, _, _ := newTestLooker(t, DefaultConfig())
			l.TouchBegin(TouchEvent{})
			l.TouchUpdate(TouchEvent{X: tt.x, Y: tt.y})
			l.FrameUpdate()
			st := l.State()
			if st.YawDelta != 0 || st.PitchDelta != 0 {
				t.Errorf("deltas after frame = (%v,%v), want exactly 0", st.YawDelta, st.PitchDelta)
			}
		})
	}
}

func TestBeginEndWithoutUpdateLeavesDeltas(t *testing.T) {
	l, _, _, _ := newTestLooker(t, DefaultConfig())
	l.TouchBegin(TouchEvent{})
	l.TouchUpdate(TouchEvent{X: 3, Y: 4})
	before := l.State()

	l.TouchBegin(TouchEvent{X: 200, Y: 300})
	l.TouchEnd(TouchEvent{X: 200, Y: 300})

	after := l.State()
	if after.YawDelta != before.YawDelta || after.PitchDelta != before.PitchDelta {
		t.Errorf("deltas changed: before %+v, after %+v", before, after)
	}
}

func TestTouchEndDoesNotMoveBaseline(t *testing.T) {
	l, _, _, _ := newTestLooker(t, DefaultConfig())
	l.TouchBegin(TouchEvent{X: 10, Y: 10})
	l.TouchEnd(TouchEvent{X: 90, Y: 90})
	if st := l.State(); st.LastX != 10 || st.LastY != 10 {
		t.Errorf("baseline = (%v,%v), want (10,10)", st.LastX, st.LastY)
	}
}

func TestSingleUpdateYaw(t *testing.T) {
	l, _, _, body := newTestLooker(t, DefaultConfig())
	l.TouchBegin(TouchEvent{X: 0, Y: 0})
	l.TouchUpdate(TouchEvent{X: 10, Y: 0})

	st := l.State()
	if !approxEqual(st.YawDelta, -0.04, epsilon) {
		t.Errorf("YawDelta = %v, want -0.04", st.YawDelta)
	}
	if st.PitchDelta != 0 {
		t.Errorf("PitchDelta = %v, want 0", st.PitchDelta)
	}

	start := YawRotation(0.3)
	body.SetOrientation(start)
	l.FrameUpdate()

	want := start.Mul(mgl64.QuatRotate(-0.04, mgl64.Vec3{0, 1, 0}))
	if !body.Orientation().ApproxEqualThreshold(want, epsilon) {
		t.Errorf("orientation = %v, want %v", body.Orientation(), want)
	}
	if l.State().YawDelta != 0 {
		t.Errorf("YawDelta after frame = %v, want 0", l.State().YawDelta)
	}
	if !approxEqual(body.Yaw(), 0.26, 1e-9) {
		t.Errorf("Yaw = %v, want 0.26", body.Yaw())
	}
}

func TestFrameUpdateAddsPitchUnclamped(t *testing.T) {
	l, _, _, body := newTestLooker(t, DefaultConfig())
	body.SetHeadPitch(80)
	l.TouchBegin(TouchEvent{})
	l.TouchUpdate(TouchEvent{Y: -100}) // +20 degrees
	l.FrameUpdate()
	if !approxEqual(body.HeadPitch(), 100, epsilon) {
		t.Errorf("HeadPitch = %v, want 100", body.HeadPitch())
	}
}

func TestPitchLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PitchLimit = 60
	l, _, _, body := newTestLooker(t, cfg)

	l.TouchBegin(TouchEvent{})
	l.TouchUpdate(TouchEvent{Y: -1000}) // +200 degrees
	l.FrameUpdate()
	if body.HeadPitch() != 60 {
		t.Errorf("HeadPitch = %v, want 60", body.HeadPitch())
	}

	l.TouchUpdate(TouchEvent{Y: 2000})
	l.FrameUpdate()
	if body.HeadPitch() != -60 {
		t.Errorf("HeadPitch = %v, want -60", body.HeadPitch())
	}
}

func TestNonFiniteTouchesAreDropped(t *testing.T) {
	l, _, _, _ := newTestLooker(t, DefaultConfig())
	l.TouchBegin(TouchEvent{X: 1, Y: 2})

	bad := []TouchEvent{
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.Inf(1)},
		{X: math.Inf(-1), Y: math.NaN()},
	}
	for _, e := range bad {
		l.TouchBegin(e)
		l.TouchUpdate(e)
		l.TouchEnd(e)
	}

	st := l.State()
	if st != (TouchState{LastX: 1, LastY: 2}) {
		t.Errorf("state = %+v, want untouched baseline (1,2)", st)
	}
}

func TestStartCapturesAndLevelsBody(t *testing.T) {
	hub := NewTouchHub(nil)
	body := NewBody()
	body.SetBodyYaw(1)
	body.SetBodyPitch(2)
	body.SetBodyRoll(3)
	l := NewLooker(hub, NewFrameTicker(), nil, body, DefaultConfig())

	if l.Capture() != Released {
		t.Fatalf("initial capture = %v, want released", l.Capture())
	}
	if err := l.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if l.Capture() != Captured || !hub.Captured() {
		t.Errorf("after Start: looker %v, hub captured %v", l.Capture(), hub.Captured())
	}
	if y, p, r := body.BodyAngles(); y != 0 || p != 0 || r != 0 {
		t.Errorf("body angles = (%v,%v,%v), want zeros", y, p, r)
	}
	if err := l.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start = %v, want ErrAlreadyStarted", err)
	}
}

func TestStartNilAvatar(t *testing.T) {
	l := NewLooker(NewTouchHub(nil), NewFrameTicker(), nil, nil, DefaultConfig())
	if err := l.Start(); !errors.Is(err, ErrNilAvatar) {
		t.Errorf("Start = %v, want ErrNilAvatar", err)
	}
	if l.Capture() != Released {
		t.Errorf("capture = %v, want released", l.Capture())
	}
}

func TestStartThenEndReleases(t *testing.T) {
	hub := NewTouchHub(nil)
	ticker := NewFrameTicker()
	l := NewLooker(hub, ticker, nil, NewBody(), DefaultConfig())

	if err := l.Start(); err != nil {
		t.Fatal(err)
	}
	l.End()

	if l.Capture() != Released || hub.Captured() {
		t.Errorf("after End: looker %v, hub captured %v", l.Capture(), hub.Captured())
	}
	if hub.begin.len() != 0 || hub.update.len() != 0 || hub.end.len() != 0 {
		t.Error("touch handlers still subscribed after End")
	}
	if ticker.handlers.len() != 0 {
		t.Error("frame handler still subscribed after End")
	}

	// End is idempotent and Start works again.
	l.End()
	if err := l.Start(); err != nil {
		t.Errorf("restart: %v", err)
	}
}

func TestEndDiscardsPendingMotion(t *testing.T) {
	l, _, _, _ := newTestLooker(t, DefaultConfig())
	l.TouchBegin(TouchEvent{})
	l.TouchUpdate(TouchEvent{X: 50, Y: 50})
	l.End()
	if st := l.State(); st != (TouchState{}) {
		t.Errorf("state after End = %+v, want zero", st)
	}
}

func TestScriptEndingReleasesCapture(t *testing.T) {
	hub := NewTouchHub(nil)
	script := NewScript()
	l := NewLooker(hub, NewFrameTicker(), script, NewBody(), DefaultConfig())
	if err := l.Start(); err != nil {
		t.Fatal(err)
	}
	script.End()
	if l.Capture() != Released || hub.Captured() {
		t.Errorf("after script end: looker %v, hub captured %v", l.Capture(), hub.Captured())
	}
	if script.ending.len() != 0 {
		t.Error("ending hook still registered after End")
	}
}

func TestLookerDrivenByHubAndTicker(t *testing.T) {
	l, hub, ticker, body := newTestLooker(t, DefaultConfig())

	hub.InjectDrag(100, 100, 200, 100, 5)
	for hub.Pending() > 0 {
		hub.Poll()
	}
	// Deltas are pending until the frame ticks.
	if !approxEqual(l.State().YawDelta, 100*-0.25*0.016, epsilon) {
		t.Errorf("YawDelta = %v, want %v", l.State().YawDelta, 100*-0.25*0.016)
	}
	if err := ticker.Tick(1.0 / 60); err != nil {
		t.Fatal(err)
	}
	if !approxEqual(body.Yaw(), -0.4, 1e-9) {
		t.Errorf("Yaw = %v, want -0.4", body.Yaw())
	}
	if l.State().YawDelta != 0 {
		t.Error("YawDelta not drained by tick")
	}
}

type recordingSink struct {
	events []LookEvent
}

func (s *recordingSink) EmitLook(e LookEvent) {
	s.events = append(s.events, e)
}

func TestEventSinkReceivesEachFrame(t *testing.T) {
	l, _, ticker, _ := newTestLooker(t, DefaultConfig())
	sink := &recordingSink{}
	l.SetEventSink(sink)

	l.TouchBegin(TouchEvent{})
	l.TouchUpdate(TouchEvent{X: 10, Y: -10})
	_ = ticker.Tick(0.016)
	_ = ticker.Tick(0.016)

	if len(sink.events) != 2 {
		t.Fatalf("events = %d, want 2", len(sink.events))
	}
	e0 := sink.events[0]
	if e0.Frame != 1 || !approxEqual(e0.Yaw, -0.04, epsilon) || !approxEqual(e0.Pitch, 2, epsilon) {
		t.Errorf("event 0 = %+v", e0)
	}
	if !approxEqual(e0.HeadPitch, 2, epsilon) {
		t.Errorf("event 0 HeadPitch = %v, want 2", e0.HeadPitch)
	}
	e1 := sink.events[1]
	if e1.Frame != 2 || e1.Yaw != 0 || e1.Pitch != 0 {
		t.Errorf("event 1 = %+v, want empty frame 2", e1)
	}
}

func TestDebugTracing(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.Logger = NewLogger(LogConfig{Level: "debug", Format: "console", Output: &buf})
	l, _, _, _ := newTestLooker(t, cfg)

	l.TouchBegin(TouchEvent{X: 1, Y: 2})
	l.TouchUpdate(TouchEvent{X: 3, Y: 4})
	l.TouchEnd(TouchEvent{X: 3, Y: 4})
	l.FrameUpdate()

	out := buf.String()
	for _, want := range []string{"touch begin", "touch update", "touch end", "changing orientation", "changing pitch"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestNoTracingWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = NewLogger(LogConfig{Level: "debug", Output: &buf})
	l, _, _, _ := newTestLooker(t, cfg)

	l.TouchBegin(TouchEvent{X: 1, Y: 2})
	l.TouchUpdate(TouchEvent{X: 3, Y: 4})
	l.FrameUpdate()

	if buf.Len() != 0 {
		t.Errorf("unexpected log output:\n%s", buf.String())
	}
}

func TestZeroSensitivityUsesDefault(t *testing.T) {
	l := NewLooker(NewTouchHub(nil), NewFrameTicker(), nil, NewBody(), Config{})
	if l.cfg.Sensitivity != DefaultSensitivity() {
		t.Errorf("Sensitivity = %+v, want default", l.cfg.Sensitivity)
	}
}
