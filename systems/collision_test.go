package systems

import (
	"testing"

	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackKnocksEnemyBack(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(t, e)
	// inside the right mid attack, clear of the hurtbox
	enemy := factory.CreateEnemy(e, 540, 200, cfg.DirectionLeft, nil)

	components.Player.Get(player).Attack(components.FacingRight, components.HeightMd)
	UpdateHitboxList(e)
	UpdateCollisions(e)
	ProcessEvents(e)

	g := game(t, e)
	assert.Equal(t, 10, g.Score)
	assert.Equal(t, 1, g.Defeated)
	assert.Zero(t, g.Hits)
	assert.Equal(t, components.EnemyFalling, components.Enemy.Get(enemy).State)
	assert.Equal(t, -6*-cfg.Enemy.Speed, components.Physics.Get(enemy).SpeedX)
}

func TestEnemyTouchingPlayerDealsDamage(t *testing.T) {
	e := newTestECS(t)
	newTestPlayer(t, e)
	enemy := factory.CreateEnemy(e, 500, 170, cfg.DirectionRight, nil)

	UpdateHitboxList(e)
	UpdateCollisions(e)
	ProcessEvents(e)

	g := game(t, e)
	assert.Equal(t, 1, g.Hits)
	assert.Equal(t, cfg.Game.StartingHealth-1, g.Health)
	assert.Zero(t, g.Score)
	assert.Equal(t, -0.5*cfg.Enemy.Speed, components.Physics.Get(enemy).SpeedX)

	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	assert.True(t, components.Camera.Get(cameraEntry).Shaking())
}

func TestEnemyIsHitOnlyOnce(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(t, e)
	factory.CreateEnemy(e, 540, 200, cfg.DirectionLeft, nil)
	components.Player.Get(player).Attack(components.FacingRight, components.HeightMd)

	for i := 0; i < 3; i++ {
		UpdateHitboxList(e)
		UpdateCollisions(e)
		ProcessEvents(e)
		ClearHitboxList(e)
	}
	assert.Equal(t, 10, game(t, e).Score)
}

func TestDistantEnemyIsUntouched(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(t, e)
	enemy := factory.CreateEnemy(e, -64, 170, cfg.DirectionRight, nil)
	components.Player.Get(player).Attack(components.FacingLeft, components.HeightLo)

	UpdateHitboxList(e)
	UpdateCollisions(e)
	ProcessEvents(e)

	assert.Equal(t, components.EnemyApproaching, components.Enemy.Get(enemy).State)
	assert.Zero(t, game(t, e).Score)
}

func TestHitboxListIsRebuiltEachFrame(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(t, e)

	UpdateHitboxList(e)
	require.Len(t, getCollision(e).Hitboxes, 1)
	ClearHitboxList(e)
	assert.Empty(t, getCollision(e).Hitboxes)

	components.Player.Get(player).Attack(components.FacingLeft, components.HeightHi)
	UpdateHitboxList(e)
	assert.Len(t, getCollision(e).Hitboxes, 2)
}

func TestStruckEnemyPlaysFallAnimation(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(t, e)
	enemy := factory.CreateEnemy(e, 540, 200, cfg.DirectionLeft, nil)
	anim := components.Animation.Get(enemy).Animator

	id, _ := anim.Current()
	require.Equal(t, cfg.AnimWalk, id)

	components.Player.Get(player).Attack(components.FacingRight, components.HeightMd)
	UpdateHitboxList(e)
	UpdateCollisions(e)

	id, ok := anim.Current()
	require.True(t, ok)
	assert.Equal(t, cfg.AnimFall, id)
	assert.NoError(t, game(t, e).Err)

	// a frame later the fall animation keeps playing rather than restarting
	ClearHitboxList(e)
	UpdateAnimations(e)
	id, _ = anim.Current()
	assert.Equal(t, cfg.AnimFall, id)
}

func TestEnemyTouchingPlayerPlaysFallAnimation(t *testing.T) {
	e := newTestECS(t)
	newTestPlayer(t, e)
	enemy := factory.CreateEnemy(e, 500, 170, cfg.DirectionRight, nil)

	UpdateHitboxList(e)
	UpdateCollisions(e)

	id, _ := components.Animation.Get(enemy).Animator.Current()
	assert.Equal(t, cfg.AnimFall, id)
}

func TestBodyColorFollowsTags(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(t, e)
	enemy := factory.CreateEnemy(e, 0, 170, cfg.DirectionRight, nil)

	assert.Equal(t, cfg.UI.PlayerColor, bodyColor(components.Object.Get(player).Object))
	assert.Equal(t, cfg.UI.EnemyColor, bodyColor(components.Object.Get(enemy).Object))
	assert.Equal(t, cfg.UI.BodyColor, bodyColor(resolv.NewObject(0, 0, 1, 1)))
}
