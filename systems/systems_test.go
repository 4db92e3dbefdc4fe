package systems

import (
	"testing"

	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with the shared entries every scene creates.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 32, 32)
	factory.CreateGame(e)
	factory.CreateCamera(e)
	factory.CreateInput(e)
	SubscribeEvents(e.World)
	return e
}

func newTestPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	return factory.CreatePlayer(e, 480, 170, nil)
}

// runFrames runs systems n times in order.
func runFrames(e *ecs.ECS, n int, systems ...func(*ecs.ECS)) {
	for i := 0; i < n; i++ {
		for _, s := range systems {
			s(e)
		}
	}
}

func countEnemies(e *ecs.ECS) int {
	n := 0
	components.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func game(t *testing.T, e *ecs.ECS) *components.GameData {
	t.Helper()
	g := GetGame(e)
	require.NotNil(t, g)
	return g
}

// pressKeys makes KeyPressed report keys as held until the test ends.
func pressKeys(t *testing.T, held map[cfg.ActionID]bool) {
	t.Helper()
	saved := KeyPressed
	t.Cleanup(func() { KeyPressed = saved })
	KeyPressed = func(k ebiten.Key) bool {
		for a, on := range held {
			if !on {
				continue
			}
			for _, bound := range cfg.Input.Bindings[a].Keys {
				if bound == k {
					return true
				}
			}
		}
		return false
	}
}
