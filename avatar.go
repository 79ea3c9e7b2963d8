package touchlook

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Avatar is the host-owned orientation state a Looker drives. The host is
// authoritative: the looker reads and writes through these accessors and
// never caches the values across frames.
type Avatar interface {
	Orientation() mgl64.Quat
	SetOrientation(q mgl64.Quat)
	HeadPitch() float64
	SetHeadPitch(pitch float64)
	SetBodyYaw(yaw float64)
	SetBodyPitch(pitch float64)
	SetBodyRoll(roll float64)
}

// Body is an in-memory Avatar. The zero value is not usable; create one
// with NewBody.
type Body struct {
	orientation mgl64.Quat
	headPitch   float64
	bodyYaw     float64
	bodyPitch   float64
	bodyRoll    float64
}

// NewBody returns a Body facing forward with a level head.
func NewBody() *Body {
	return &Body{orientation: mgl64.QuatIdent()}
}

func (b *Body) Orientation() mgl64.Quat { return b.orientation }
func (b *Body) SetOrientation(q mgl64.Quat) { b.orientation = q }
func (b *Body) HeadPitch() float64 { return b.headPitch }
func (b *Body) SetHeadPitch(pitch float64) { b.headPitch = pitch }
func (b *Body) SetBodyYaw(yaw float64) { b.bodyYaw = yaw }
func (b *Body) SetBodyPitch(pitch float64) { b.bodyPitch = pitch }
func (b *Body) SetBodyRoll(roll float64) { b.bodyRoll = roll }

// BodyAngles returns the body yaw, pitch and roll scalars.
func (b *Body) BodyAngles() (yaw, pitch, roll float64) {
	return b.bodyYaw, b.bodyPitch, b.bodyRoll
}

// Yaw returns the heading of the body orientation in radians, measured
// about +Y.
func (b *Body) Yaw() float64 {
	return QuatYaw(b.orientation)
}

var axisY = mgl64.Vec3{0, 1, 0}

// YawRotation returns a rotation of yaw radians about the vertical axis.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, axisY)
}

// FromEuler builds a quaternion from Euler angles in radians
// (x = pitch, y = yaw, z = roll), composed as Rz(roll)*Ry(yaw)*Rx(pitch).
// FromEuler(mgl64.Vec3{0, y, 0}) equals YawRotation(y).
func FromEuler(euler mgl64.Vec3) mgl64.Quat {
	return mgl64.AnglesToQuat(euler[2], euler[1], euler[0], mgl64.ZYX)
}

// QuatYaw extracts the heading about +Y from q, ignoring pitch and roll.
func QuatYaw(q mgl64.Quat) float64 {
	fwd := q.Rotate(mgl64.Vec3{0, 0, 1})
	return math.Atan2(fwd[0], fwd[2])
}
