package systems

import (
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// publish queues the events an entity's behavior returned. They are applied
// by ProcessEvents once the frame's sweep is over.
func publish(w donburi.World, e *donburi.Entry, evs []components.Event) {
	for _, ev := range evs {
		switch ev.Kind {
		case components.EventScoreDelta:
			components.ScoreChanged.Publish(w, components.ScoreEvent{Amount: ev.Amount})
		case components.EventDamageNotice:
			components.PlayerDamaged.Publish(w, components.DamageEvent{})
		case components.EventRemovalRequest:
			components.RemovalRequested.Publish(w, components.RemovalEvent{Entity: e.Entity()})
		}
	}
}

// SubscribeEvents installs the handlers that turn entity events into match
// state. Call it once per world.
func SubscribeEvents(w donburi.World) {
	components.ScoreChanged.Subscribe(w, onScore)
	components.PlayerDamaged.Subscribe(w, onDamage)
	components.RemovalRequested.Subscribe(w, onRemoval)
}

// ProcessEvents applies every event published this frame.
func ProcessEvents(ecs *ecs.ECS) {
	components.ScoreChanged.ProcessEvents(ecs.World)
	components.PlayerDamaged.ProcessEvents(ecs.World)
	components.RemovalRequested.ProcessEvents(ecs.World)
}

func onScore(w donburi.World, ev components.ScoreEvent) {
	game := gameData(w)
	if game == nil {
		return
	}
	game.Score += ev.Amount
	game.Defeated++
	cfg.Log.Debug("enemy struck", "score", game.Score, "amount", ev.Amount)
}

func onDamage(w donburi.World, _ components.DamageEvent) {
	game := gameData(w)
	if game == nil {
		return
	}
	game.Health--
	game.Hits++
	cfg.Log.Debug("player hit", "health", game.Health, "hits", game.Hits)
	if game.Health == 0 {
		cfg.Log.Info("player defeated", "score", game.Score, "hits", game.Hits)
	}

	if cameraEntry, ok := components.Camera.First(w); ok {
		components.Camera.Get(cameraEntry).StartShake(cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
	}
}

func onRemoval(w donburi.World, ev components.RemovalEvent) {
	if game := gameData(w); game != nil {
		game.RequestRemoval(ev.Entity)
	}
}
