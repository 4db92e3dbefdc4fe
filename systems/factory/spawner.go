package factory

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/forward-fighter/archetypes"
	"github.com/automoto/forward-fighter/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner places a spawner at (x, y). phase is the fraction of the
// interval already elapsed, so spawners on both sides can be staggered.
func CreateSpawner(ecs *ecs.ECS, x, y, laneStep, phase float64, rng *rand.Rand, enemyFrames []*ebiten.Image) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)

	data := components.NewSpawnerData(x, y, laneStep, rng)
	data.Elapsed = time.Duration(float64(data.Interval) * phase)
	data.Frames = enemyFrames
	components.Spawner.SetValue(spawner, *data)

	return spawner
}
