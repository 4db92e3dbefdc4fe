package factory

import (
	"github.com/automoto/forward-fighter/archetypes"
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame creates the match state entry with the configured starting
// health.
func CreateGame(ecs *ecs.ECS) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		Health: cfg.Game.StartingHealth,
	})
	components.Collision.SetValue(game, components.CollisionData{})
	return game
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(input, components.InputData{})
	return input
}
