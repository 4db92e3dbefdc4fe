package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventKind is what a simulation object asks the game to do after a frame's
// collision sweep.
type EventKind int

const (
	EventScoreDelta EventKind = iota
	EventDamageNotice
	EventRemovalRequest
)

// Event is returned by entity behavior instead of calling back into the
// scene. Amount is only used by EventScoreDelta.
type Event struct {
	Kind   EventKind
	Amount int
}

func ScoreDelta(amount int) Event { return Event{Kind: EventScoreDelta, Amount: amount} }
func DamageNotice() Event         { return Event{Kind: EventDamageNotice} }
func RemovalRequest() Event       { return Event{Kind: EventRemovalRequest} }

type ScoreEvent struct {
	Amount int
}

type DamageEvent struct{}

type RemovalEvent struct {
	Entity donburi.Entity
}

var (
	ScoreChanged     = events.NewEventType[ScoreEvent]()
	PlayerDamaged    = events.NewEventType[DamageEvent]()
	RemovalRequested = events.NewEventType[RemovalEvent]()
)
