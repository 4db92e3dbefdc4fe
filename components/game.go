package components

import (
	"slices"

	"github.com/yohamta/donburi"
)

// GameData is the match state shown on the HUD, plus the entries waiting to
// be removed at the start of the next frame.
type GameData struct {
	Score    int
	Health   int
	Hits     int // times the player was touched
	Defeated int // enemies knocked back by an attack

	// First error raised by a system; the scene stops on it
	Err error

	removals []donburi.Entity
}

// RequestRemoval queues e for removal. Queuing the same entity twice is a
// no-op; the return value reports whether e was newly queued.
func (g *GameData) RequestRemoval(e donburi.Entity) bool {
	if slices.Contains(g.removals, e) {
		return false
	}
	g.removals = append(g.removals, e)
	return true
}

// DrainRemovals returns the queued entities in request order and empties
// the queue.
func (g *GameData) DrainRemovals() []donburi.Entity {
	out := g.removals
	g.removals = nil
	return out
}

// PendingRemovals is the number of queued entities.
func (g *GameData) PendingRemovals() int {
	return len(g.removals)
}

// Fail records err unless an earlier error is already stored.
func (g *GameData) Fail(err error) {
	if g.Err == nil {
		g.Err = err
	}
}

var Game = donburi.NewComponentType[GameData]()
