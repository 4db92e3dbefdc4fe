package systems

import (
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRemovals deletes the entries queued during the previous frame,
// taking their bodies out of the collision space with them. It runs first
// so nothing is removed while other systems iterate.
func UpdateRemovals(ecs *ecs.ECS) {
	game := GetGame(ecs)
	if game == nil || game.PendingRemovals() == 0 {
		return
	}

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, entity := range game.DrainRemovals() {
		if !ecs.World.Valid(entity) {
			continue
		}
		entry := ecs.World.Entry(entity)
		if hasSpace && entry.HasComponent(components.Object) {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
		}
		ecs.World.Remove(entity)
		cfg.Log.Debug("entity removed", "entity", entity)
	}
}
