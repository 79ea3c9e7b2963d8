package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/touchlook"
)

// AvatarData is the orientation state of an avatar entity.
type AvatarData struct {
	Orientation mgl64.Quat
	HeadPitch   float64
	BodyYaw     float64
	BodyPitch   float64
	BodyRoll    float64
}

// AvatarComponent holds an entity's AvatarData.
var AvatarComponent = donburi.NewComponentType[AvatarData]()

// LookEventType is the Donburi event type for per-frame look events.
// Subscribe to this in your ECS systems to follow the applied motion.
var LookEventType = events.NewEventType[touchlook.LookEvent]()

// CreateAvatar creates an entity facing forward with a level head and
// returns it with an Avatar view of its component.
func CreateAvatar(world donburi.World) (donburi.Entity, touchlook.Avatar) {
	entity := world.Create(AvatarComponent)
	AvatarComponent.SetValue(world.Entry(entity), AvatarData{
		Orientation: mgl64.QuatIdent(),
	})
	return entity, NewEntityAvatar(world, entity)
}

type entityAvatar struct {
	world  donburi.World
	entity donburi.Entity
}

// NewEntityAvatar returns an Avatar that reads and writes the entity's
// AvatarComponent on every access. The entity must carry the component.
func NewEntityAvatar(world donburi.World, entity donburi.Entity) touchlook.Avatar {
	return &entityAvatar{world: world, entity: entity}
}

func (a *entityAvatar) data() *AvatarData {
	return AvatarComponent.Get(a.world.Entry(a.entity))
}

func (a *entityAvatar) Orientation() mgl64.Quat { return a.data().Orientation }
func (a *entityAvatar) SetOrientation(q mgl64.Quat) { a.data().Orientation = q }
func (a *entityAvatar) HeadPitch() float64 { return a.data().HeadPitch }
func (a *entityAvatar) SetHeadPitch(pitch float64) { a.data().HeadPitch = pitch }
func (a *entityAvatar) SetBodyYaw(yaw float64) { a.data().BodyYaw = yaw }
func (a *entityAvatar) SetBodyPitch(pitch float64) { a.data().BodyPitch = pitch }
func (a *entityAvatar) SetBodyRoll(roll float64) { a.data().BodyRoll = roll }

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Look events are published to LookEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) touchlook.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitLook(event touchlook.LookEvent) {
	LookEventType.Publish(s.world, event)
}
