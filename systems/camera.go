package systems

import (
	"github.com/automoto/forward-fighter/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances the damage shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	components.Camera.Get(cameraEntry).Step(frameDelta())
}

func cameraOffset(e *ecs.ECS) float64 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0
	}
	return components.Camera.Get(cameraEntry).Offset
}
