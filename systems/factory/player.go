package factory

import (
	"github.com/automoto/forward-fighter/archetypes"
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the player with its bottom-left corner at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, frames []*ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, *components.NewPlayerData(x, y, w, h))
	components.Physics.SetValue(player, components.PhysicsData{})

	animData := GenerateAnimations("player", frames, cfg.AnimIdle)
	components.Animation.SetValue(player, *animData)
	components.Sprite.SetValue(player, components.SpriteData{Image: animData.Image()})

	return player
}
