package components

import (
	"github.com/automoto/forward-fighter/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// EnemyState is the enemy's position in its approach/fall lifecycle. The
// transition to EnemyFalling is one-way.
type EnemyState int

const (
	EnemyApproaching EnemyState = iota
	EnemyFalling
)

func (s EnemyState) String() string {
	if s == EnemyFalling {
		return "falling"
	}
	return "approaching"
}

type EnemyData struct {
	Facing float64 // +1 moves right, -1 moves left
	Speed  float64
	State  EnemyState

	// Set once the enemy has asked to be removed from the world
	RemovalRequested bool
}

func NewEnemyData(facing, speed float64) *EnemyData {
	return &EnemyData{Facing: facing, Speed: speed}
}

// ResolveCollision reacts to touching a hitbox while approaching. Touching
// the player damages them and bounces the enemy off; an attack knocks it
// back hard and scores.
func (e *EnemyData) ResolveCollision(hb *HitboxData, ph *PhysicsData) []Event {
	if e.State != EnemyApproaching {
		return nil
	}
	switch hb.Tag() {
	case HitboxPlayer:
		e.State = EnemyFalling
		ph.SpeedX *= config.Enemy.RecoilScale
		return []Event{DamageNotice()}
	case HitboxPlayerAttack:
		return e.knockBack(ph)
	}
	return nil
}

// FallStep accelerates a falling enemy downward and asks for removal once it
// is below its own height. An enemy that reaches here without having been
// hit is knocked back first.
func (e *EnemyData) FallStep(o *resolv.Object, ph *PhysicsData) []Event {
	var evs []Event
	if e.State != EnemyFalling {
		evs = e.knockBack(ph)
	}
	ph.SpeedY -= config.Enemy.FallAcceleration
	if o.Y < o.H && !e.RemovalRequested {
		e.RemovalRequested = true
		evs = append(evs, RemovalRequest())
	}
	return evs
}

func (e *EnemyData) knockBack(ph *PhysicsData) []Event {
	e.State = EnemyFalling
	ph.SpeedX *= config.Enemy.KnockbackScale
	return []Event{ScoreDelta(config.Enemy.ScoreValue)}
}

var Enemy = donburi.NewComponentType[EnemyData]()
