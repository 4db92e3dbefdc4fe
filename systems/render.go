package systems

import (
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	spriteQuery = donburi.NewQuery(filter.Contains(components.Object, components.Sprite))
)

// screenY converts the bottom edge of a y-up world rectangle to the top edge
// on screen.
func screenY(y, h float64) float64 {
	return float64(cfg.C.Height) - (y + h)
}

// DrawSprites draws every entity's current image at its body position.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	offset := cameraOffset(ecs)
	spriteQuery.Each(ecs.World, func(e *donburi.Entry) {
		img := components.Sprite.Get(e).Image
		if img == nil {
			return
		}
		o := components.Object.Get(e)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(o.X+offset, screenY(o.Y, float64(img.Bounds().Dy())))
		screen.DrawImage(img, drawOp)
	})
}
