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

// CreateEnemy places an enemy at (x, y) walking in the facing direction.
func CreateEnemy(ecs *ecs.ECS, x, y, facing float64, frames []*ebiten.Image) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	enemyData := components.NewEnemyData(facing, cfg.Enemy.Speed)
	components.Enemy.SetValue(enemy, *enemyData)
	components.Physics.SetValue(enemy, components.PhysicsData{
		SpeedX: enemyData.Speed * facing,
	})

	animData := GenerateAnimations("enemy", frames, cfg.AnimWalk)
	components.Animation.SetValue(enemy, *animData)
	components.Sprite.SetValue(enemy, components.SpriteData{Image: animData.Image()})

	return enemy
}
