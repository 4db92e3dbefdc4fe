package systems

import (
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/systems/factory"
	"github.com/automoto/forward-fighter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawners runs every spawner's timer and creates the enemies that are
// due. Enemies are created after the scan so the world is not modified
// while it is being iterated.
func UpdateSpawners(ecs *ecs.ECS) {
	dt := frameDelta()

	type spawn struct {
		x, y, facing float64
		frames       []*ebiten.Image
	}
	var due []spawn
	tags.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Spawner.Get(e)
		if s.UpdateTimer(dt) {
			x, y, facing := s.NextSpawn()
			due = append(due, spawn{x: x, y: y, facing: facing, frames: s.Frames})
		}
	})

	for _, s := range due {
		factory.CreateEnemy(ecs, s.x, s.y, s.facing, s.frames)
		cfg.Log.Debug("enemy spawned", "x", s.x, "y", s.y, "facing", s.facing)
	}
}

// UpdateAttackTimers expires the player's attack and returns it to idle.
func UpdateAttackTimers(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if !components.Player.Get(playerEntry).AdvanceAttackTimer(frameDelta()) {
		return
	}
	playAnimation(ecs, playerEntry, cfg.AnimIdle)
}

// RetuneSpawners applies the live spawner configuration to existing
// spawners after a tuning reload. Elapsed time is kept.
func RetuneSpawners(ecs *ecs.ECS) {
	tags.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Spawner.Get(e)
		s.Interval = cfg.Spawner.Interval
		s.Lanes = cfg.Spawner.Lanes
	})
}
