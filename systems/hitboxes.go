package systems

import (
	"github.com/automoto/forward-fighter/components"
	"github.com/automoto/forward-fighter/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxList copies the player's active hitboxes into the frame's
// scratch list. The player keeps its own list; the copy only lives until
// ClearHitboxList.
func UpdateHitboxList(ecs *ecs.ECS) {
	collision := getCollision(ecs)
	if collision == nil {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	collision.Hitboxes = append(collision.Hitboxes, player.ActiveHitboxes()...)
}

func ClearHitboxList(ecs *ecs.ECS) {
	if collision := getCollision(ecs); collision != nil {
		collision.Reset()
	}
}
