package systems

import (
	"image/color"

	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitboxes outlines the player's active hitboxes in their own colours.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	offset := cameraOffset(ecs)
	for _, hb := range components.Player.Get(playerEntry).ActiveHitboxes() {
		strokeObject(screen, hb.Object, offset, hb.Color)
	}
}

// DrawBodies outlines every body registered in the collision space.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBodies {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	offset := cameraOffset(ecs)
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		strokeObject(screen, obj, offset, bodyColor(obj))
	}
}

// bodyColor picks a body's outline colour from its resolv tags.
func bodyColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvEnemy):
		return cfg.UI.EnemyColor
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.UI.PlayerColor
	}
	return cfg.UI.BodyColor
}

func strokeObject(screen *ebiten.Image, o *resolv.Object, offsetX float64, c color.RGBA) {
	vector.StrokeRect(screen,
		float32(o.X+offsetX), float32(screenY(o.Y, o.H)),
		float32(o.W), float32(o.H),
		1, c, false)
}
