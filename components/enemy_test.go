package components

import (
	"testing"

	"github.com/automoto/forward-fighter/config"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approaching(facing float64) (*EnemyData, *PhysicsData) {
	e := NewEnemyData(facing, config.Enemy.Speed)
	return e, &PhysicsData{SpeedX: e.Speed * facing}
}

func TestEnemyStruckByAttack(t *testing.T) {
	e, ph := approaching(config.DirectionRight)

	evs := e.ResolveCollision(NewHitbox(0, 0, 1, 1, HitboxPlayerAttack), ph)
	assert.Equal(t, []Event{ScoreDelta(10)}, evs)
	assert.Equal(t, EnemyFalling, e.State)
	assert.Equal(t, -6*200.0, ph.SpeedX)
}

func TestEnemyTouchesPlayer(t *testing.T) {
	e, ph := approaching(config.DirectionLeft)

	evs := e.ResolveCollision(NewHitbox(0, 0, 1, 1, HitboxPlayer), ph)
	assert.Equal(t, []Event{DamageNotice()}, evs)
	assert.Equal(t, EnemyFalling, e.State)
	assert.Equal(t, -0.5*-200.0, ph.SpeedX)
}

func TestEnemyIgnoresUntaggedAndRepeatHits(t *testing.T) {
	e, ph := approaching(config.DirectionRight)

	assert.Empty(t, e.ResolveCollision(NewHitbox(0, 0, 1, 1, HitboxNone), ph))
	assert.Equal(t, EnemyApproaching, e.State)

	e.ResolveCollision(NewHitbox(0, 0, 1, 1, HitboxPlayerAttack), ph)
	speed := ph.SpeedX
	assert.Empty(t, e.ResolveCollision(NewHitbox(0, 0, 1, 1, HitboxPlayerAttack), ph))
	assert.Empty(t, e.ResolveCollision(NewHitbox(0, 0, 1, 1, HitboxPlayer), ph))
	assert.Equal(t, speed, ph.SpeedX)
}

func TestFallStepAccelerates(t *testing.T) {
	e, ph := approaching(config.DirectionRight)
	e.ResolveCollision(NewHitbox(0, 0, 1, 1, HitboxPlayer), ph)
	o := resolv.NewObject(0, 300, 64, 64)

	assert.Empty(t, e.FallStep(o, ph))
	assert.Equal(t, -config.Enemy.FallAcceleration, ph.SpeedY)
	e.FallStep(o, ph)
	assert.Equal(t, -2*config.Enemy.FallAcceleration, ph.SpeedY)
}

func TestFallStepRequestsRemovalOnce(t *testing.T) {
	e, ph := approaching(config.DirectionRight)
	e.ResolveCollision(NewHitbox(0, 0, 1, 1, HitboxPlayerAttack), ph)
	o := resolv.NewObject(0, 63, 64, 64)

	var removals int
	for i := 0; i < 5; i++ {
		for _, ev := range e.FallStep(o, ph) {
			if ev.Kind == EventRemovalRequest {
				removals++
			}
		}
	}
	assert.Equal(t, 1, removals)
	assert.True(t, e.RemovalRequested)
}

func TestFallStepKnocksBackApproachingEnemy(t *testing.T) {
	e, ph := approaching(config.DirectionLeft)
	o := resolv.NewObject(0, 300, 64, 64)

	evs := e.FallStep(o, ph)
	require.Len(t, evs, 1)
	assert.Equal(t, ScoreDelta(config.Enemy.ScoreValue), evs[0])
	assert.Equal(t, EnemyFalling, e.State)
	assert.Equal(t, 1200.0, ph.SpeedX)
}
