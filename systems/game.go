package systems

import (
	"time"

	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDelta is the simulated time one system update covers.
func frameDelta() time.Duration {
	return cfg.C.FrameDelta()
}

// GetGame returns the match state, or nil before the game entry exists.
func GetGame(ecs *ecs.ECS) *components.GameData {
	return gameData(ecs.World)
}

func gameData(w donburi.World) *components.GameData {
	entry, ok := components.Game.First(w)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

func getCollision(ecs *ecs.ECS) *components.CollisionData {
	entry, ok := components.Collision.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Collision.Get(entry)
}

// fail records err on the match state so the scene can stop on it.
func fail(ecs *ecs.ECS, err error) {
	if game := GetGame(ecs); game != nil {
		game.Fail(err)
		return
	}
	cfg.Log.Error("system failed without a game entry", "err", err)
}
