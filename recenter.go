package touchlook

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pitchGlide eases the head pitch back to level. offset carries the touch
// pitch drained while the glide runs so the finger still steers on top of
// the animation.
type pitchGlide struct {
	tween  *gween.Tween
	offset float64
}

// Recenter animates the head pitch from its current value to 0 over
// duration seconds, advanced by frame ticks. A nil easeFn uses ease.OutQuad.
// A non-positive duration levels the head immediately. Only a started
// looker can recenter.
func (l *Looker) Recenter(duration float32, easeFn ease.TweenFunc) {
	if l.capture != Captured {
		return
	}
	if duration <= 0 {
		l.glide = nil
		l.avatar.SetHeadPitch(0)
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	from := float32(l.avatar.HeadPitch())
	l.glide = &pitchGlide{tween: gween.New(from, 0, duration, easeFn)}
}

// Recentering reports whether a recenter glide is running.
func (l *Looker) Recentering() bool {
	return l.glide != nil
}

// advanceGlide steps the glide by dt seconds and writes the eased pitch
// to the avatar.
func (l *Looker) advanceGlide(dt float32) {
	if l.glide == nil {
		return
	}
	val, done := l.glide.tween.Update(dt)
	l.avatar.SetHeadPitch(l.clampPitch(float64(val) + l.glide.offset))
	if done {
		l.glide = nil
	}
}
