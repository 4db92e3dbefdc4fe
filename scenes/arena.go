package scenes

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/automoto/forward-fighter/assets"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/systems"
	"github.com/automoto/forward-fighter/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the single fight: the player in the middle of the arena and
// enemies walking in from both edges.
type ArenaScene struct {
	ecs     *ecs.ECS
	seed    uint64
	watcher *cfg.Watcher
	once    sync.Once
}

// NewArenaScene creates the scene. seed drives spawn lane selection; watcher
// may be nil.
func NewArenaScene(seed uint64, watcher *cfg.Watcher) *ArenaScene {
	return &ArenaScene{seed: seed, watcher: watcher}
}

// Update runs one simulation frame. It returns ebiten.Termination when the
// quit key is held and the first system error otherwise.
func (as *ArenaScene) Update() error {
	as.once.Do(as.configure)
	as.drainWatcher()

	as.ecs.Update()

	if game := systems.GetGame(as.ecs); game != nil && game.Err != nil {
		return game.Err
	}
	if systems.QuitRequested(as.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// drainWatcher applies tuning file changes between frames.
func (as *ArenaScene) drainWatcher() {
	if as.watcher == nil {
		return
	}
	for {
		select {
		case path := <-as.watcher.Events:
			if err := cfg.Load(path); err != nil {
				cfg.Log.Error("tuning reload failed", "path", path, "err", err)
				continue
			}
			systems.RetuneSpawners(as.ecs)
			cfg.Log.Info("tuning reloaded", "path", path)
		case err := <-as.watcher.Errors:
			cfg.Log.Error("tuning watcher", "err", err)
		default:
			return
		}
	}
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Frame order matters: removals queued last frame go first, events are
	// applied after the collision sweep, the scratch list is cleared last.
	ecs.AddSystem(systems.UpdateRemovals)
	ecs.AddSystem(systems.UpdateHitboxList)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayerInput)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateSpawners)
	ecs.AddSystem(systems.UpdateAttackTimers)
	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.ClearHitboxList)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = ecs
	systems.SubscribeEvents(ecs.World)

	level := assets.MustLoadArena()
	factory.CreateSpace(as.ecs, level.Width, level.Height, 32, 32)
	factory.CreateGame(as.ecs)
	factory.CreateCamera(as.ecs)
	factory.CreateInput(as.ecs)

	playerFrames := assets.PlaceholderSheet(cfg.SheetFrames["player"],
		int(cfg.Player.Width), int(cfg.Player.Height), cfg.UI.PlayerColor)
	enemyFrames := assets.PlaceholderSheet(cfg.SheetFrames["enemy"],
		int(cfg.Enemy.Width), int(cfg.Enemy.Height), cfg.UI.EnemyColor)

	spawn := level.PlayerSpawn
	factory.CreatePlayer(as.ecs, spawn.X, spawn.Y, playerFrames)

	// Each spawner gets its own stream so one side's draws never shift the other's.
	laneStep := cfg.Player.Height / 3
	for i, s := range level.Spawners {
		rng := rand.New(rand.NewPCG(as.seed, uint64(i)))
		factory.CreateSpawner(as.ecs, s.X, s.Y, laneStep, s.Phase, rng, enemyFrames)
	}

	cfg.Log.Info("arena ready",
		"level", level.Name,
		"spawners", len(level.Spawners),
		"seed", as.seed,
	)
}

// IsTermination reports whether err is the normal quit signal.
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
