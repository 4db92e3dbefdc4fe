package archetypes

import (
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Sprite,
		components.Animation,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	// Game holds the match state and the per-frame scratch hitbox list.
	Game = newArchetype(
		components.Game,
		components.Collision,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(a.components[:len(a.components):len(a.components)], cs...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}
