package systems

import (
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions tests every ordered pair of entity bodies, then every
// entity against the frame's scratch hitboxes. Reactions depend on the
// components an entry carries.
func UpdateCollisions(ecs *ecs.ECS) {
	collision := getCollision(ecs)

	var entries []*donburi.Entry
	movingQuery.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	for _, a := range entries {
		objA := components.Object.Get(a)
		for _, b := range entries {
			if components.RectsOverlap(objA.Object, components.Object.Get(b).Object) {
				publish(ecs.World, a, resolveEntityContact(a, b))
			}
		}
		if collision == nil {
			continue
		}
		for _, hb := range collision.Hitboxes {
			if hb.OverlapsObject(objA.Object) {
				publish(ecs.World, a, resolveHitboxContact(ecs, a, hb))
			}
		}
	}
}

// resolveEntityContact handles one body touching another. No entity reacts
// to bodies, only to hitboxes.
func resolveEntityContact(_, _ *donburi.Entry) []components.Event {
	return nil
}

func resolveHitboxContact(ecs *ecs.ECS, e *donburi.Entry, hb *components.HitboxData) []components.Event {
	if !e.HasComponent(components.Enemy) {
		return nil
	}
	enemy := components.Enemy.Get(e)
	before := enemy.State
	evs := enemy.ResolveCollision(hb, components.Physics.Get(e))
	if before != enemy.State {
		playAnimation(ecs, e, cfg.AnimFall)
	}
	return evs
}
