package systems

import (
	"github.com/automoto/forward-fighter/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var movingQuery = donburi.NewQuery(filter.Contains(components.Object, components.Physics))

// UpdateObjects integrates every entity's velocity. Falling enemies run
// their fall step and the player's hitboxes follow its body.
func UpdateObjects(ecs *ecs.ECS) {
	dt := frameDelta()
	movingQuery.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		physics.Advance(obj.Object, dt)

		if e.HasComponent(components.Enemy) {
			enemy := components.Enemy.Get(e)
			if enemy.State == components.EnemyFalling {
				publish(ecs.World, e, enemy.FallStep(obj.Object, physics))
			}
		}
		if e.HasComponent(components.Player) {
			components.Player.Get(e).SyncHitboxes(obj.X, obj.Y)
		}

		obj.Update()
	})
}
