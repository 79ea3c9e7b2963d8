// Package ecs provides Donburi adapters for touchlook.
//
// [NewEntityAvatar] exposes an entity's [AvatarComponent] as a
// touchlook.Avatar, so a Looker can steer an avatar that lives in an ECS
// world. [NewDonburiSink] bridges per-frame look events into the same world
// as typed events. Subscribe to [LookEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	entity, avatar := ecs.CreateAvatar(world)
//	looker := touchlook.NewLooker(hub, ticker, script, avatar, cfg)
//	looker.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
