// Package touchlook turns touch drags into avatar look controls for
// [Ebitengine] games.
//
// A [Looker] subscribes to a [TouchInputSource] for touch begin, update and
// end events, accumulates mouse-like yaw and pitch deltas, and applies them
// to an [Avatar] once per frame when its [FrameClock] ticks. While started it
// holds exclusive touch capture, so the host's default touch handling is
// suppressed until [Looker.End].
//
// # Quick start
//
// The simplest way to get started is [Run], which wires everything and
// opens a window:
//
//	game := touchlook.NewGame(touchlook.NewBody(), touchlook.DefaultConfig())
//	if err := touchlook.Run(game, "Look With Touch"); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, build the pieces yourself and call [TouchHub.Poll]
// followed by [FrameTicker.Tick] from your own ebiten Update:
//
//	hub := touchlook.NewTouchHub(nil)
//	ticker := touchlook.NewFrameTicker()
//	looker := touchlook.NewLooker(hub, ticker, nil, avatar, cfg)
//	_ = looker.Start()
//
//	func (g *Game) Update() error {
//		g.hub.Poll()
//		return g.ticker.Tick(1.0 / 60)
//	}
//
// # Motion model
//
// Each touch update adds dx*YawScale*Timestep to the pending yaw and
// dy*PitchScale*Timestep to the pending pitch. Each frame the pending yaw
// is composed onto the avatar orientation as orientation*rotY(yaw), the
// pending pitch is added to the head pitch, and both are reset to zero.
// Head pitch is unbounded unless [Config].PitchLimit is set.
//
// # Extras
//
// [Looker.Recenter] eases the head back to level (via [gween]). The ecs
// subpackage stores avatars in a [Donburi] world and publishes per-frame
// [LookEvent] values as Donburi events. The prefs subpackage persists a
// user's [Sensitivity].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package touchlook
