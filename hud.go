package touchlook

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawHUD prints frame rates and the looker's state in the top-left corner.
func DrawHUD(screen *ebiten.Image, l *Looker) {
	text := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrint(screen, text+hudText(l))
}

// hudText formats the looker state shown under the frame rates.
func hudText(l *Looker) string {
	a := l.Avatar()
	yaw := mgl64.RadToDeg(QuatYaw(a.Orientation()))
	return fmt.Sprintf("Yaw: %.1f\nPitch: %.1f\nTouch: %s",
		yaw, a.HeadPitch(), l.Capture())
}
