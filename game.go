package touchlook

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{0x23, 0x1e, 0x2d, 0xff}
	horizonColor    = color.RGBA{0x4c, 0xb3, 0xe6, 0xff}
	needleColor     = color.RGBA{0xe6, 0x4c, 0x4c, 0xff}
)

// Game hosts a Looker inside an ebiten game loop: each tick it plays any
// scripted input, polls touches, then ticks the frame clock once.
type Game struct {
	Hub    *TouchHub
	Ticker *FrameTicker
	Script *Script
	Looker *Looker
	// Runner, when set, injects scripted gestures before each poll.
	Runner *TestRunner
	// RecenterDuration, when positive, makes the R key glide the head back
	// to level over that many seconds.
	RecenterDuration float32

	width, height int
	showHUD       bool
}

// NewGame wires a hub, ticker, script and looker for avatar using cfg.
// The looker is not started; Run starts it.
func NewGame(avatar Avatar, cfg Config) *Game {
	hub := NewTouchHub(cfg.logger())
	hub.MouseAsTouch = cfg.MouseAsTouch
	ticker := NewFrameTicker()
	script := NewScript()
	return &Game{
		Hub:     hub,
		Ticker:  ticker,
		Script:  script,
		Looker:  NewLooker(hub, ticker, script, avatar, cfg),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		showHUD: true,
	}
}

// SetShowHUD toggles the text overlay.
func (g *Game) SetShowHUD(show bool) {
	g.showHUD = show
}

func (g *Game) Update() error {
	if g.RecenterDuration > 0 && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Looker.Recenter(g.RecenterDuration, nil)
	}
	return g.step(float32(1.0 / float64(ebiten.TPS())))
}

// step runs one tick with a fixed dt. Returns ebiten.Termination once the
// script has ended.
func (g *Game) step(dt float32) error {
	if g.Script.Ended() {
		return ebiten.Termination
	}
	if g.Runner != nil {
		g.Runner.Step(g.Hub)
	}
	g.Hub.Poll()
	return g.Ticker.Tick(dt)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w, h := float32(g.width), float32(g.height)
	cx, cy := w/2, h/2

	// Horizon moves against the head pitch (degrees, one pixel per degree).
	pitch := float32(g.Looker.Avatar().HeadPitch())
	vector.StrokeLine(screen, 0, cy+pitch, w, cy+pitch, 2, horizonColor, true)

	// Compass needle points along the body heading.
	yaw := QuatYaw(g.Looker.Avatar().Orientation())
	r := float32(math.Min(float64(w), float64(h)) / 4)
	nx := cx + r*float32(math.Sin(yaw))
	ny := cy - r*float32(math.Cos(yaw))
	vector.StrokeLine(screen, cx, cy, nx, ny, 3, needleColor, true)

	if g.showHUD {
		DrawHUD(screen, g.Looker)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and runs the game loop until the window closes or
// the script ends. The looker is started first and released on exit.
func Run(g *Game, title string) error {
	if err := g.Looker.Start(); err != nil {
		return err
	}
	defer g.Script.End()

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}
