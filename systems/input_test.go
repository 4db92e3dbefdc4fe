package systems

import (
	"testing"

	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAttackUsesDispatchOrder(t *testing.T) {
	tests := []struct {
		name    string
		pressed []cfg.ActionID
		want    cfg.ActionID
	}{
		{name: "single", pressed: []cfg.ActionID{cfg.ActionAttackRightLo}, want: cfg.ActionAttackRightLo},
		{name: "mid beats high", pressed: []cfg.ActionID{cfg.ActionAttackLeftHi, cfg.ActionAttackRightMd}, want: cfg.ActionAttackRightMd},
		{name: "left before right", pressed: []cfg.ActionID{cfg.ActionAttackRightMd, cfg.ActionAttackLeftMd}, want: cfg.ActionAttackLeftMd},
		{name: "high beats low", pressed: []cfg.ActionID{cfg.ActionAttackLeftLo, cfg.ActionAttackRightHi}, want: cfg.ActionAttackRightHi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in components.InputData
			for _, a := range tt.pressed {
				in.Current[a] = true
			}
			got, ok := ResolveAttack(&in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAttackNeedsEdge(t *testing.T) {
	var in components.InputData
	in.Current[cfg.ActionAttackLeftMd] = true
	in.Previous[cfg.ActionAttackLeftMd] = true

	_, ok := ResolveAttack(&in)
	assert.False(t, ok)
}

func TestKeysStartOneAttack(t *testing.T) {
	e := newTestECS(t)
	player := newTestPlayer(t, e)
	pressKeys(t, map[cfg.ActionID]bool{
		cfg.ActionAttackRightHi: true, // K
		cfg.ActionAttackLeftMd:  true, // F
	})

	UpdateInput(e)
	UpdatePlayerInput(e)

	p := components.Player.Get(player)
	cur, ok := p.CurrentAttack()
	require.True(t, ok)
	assert.Same(t, p.Attacks[components.FacingLeft][components.HeightMd], cur)
	assert.Len(t, p.ActiveHitboxes(), 2)

	id, ok := components.Animation.Get(player).Animator.Current()
	require.True(t, ok)
	assert.Equal(t, cfg.AnimAttackLeftMd, id)

	// held keys do not repeat the attack
	p.AdvanceAttackTimer(cfg.Player.MdAttack + 1)
	UpdateInput(e)
	UpdatePlayerInput(e)
	_, ok = p.CurrentAttack()
	assert.False(t, ok)
}

func TestToggleDebugAndQuit(t *testing.T) {
	saved := cfg.Debug
	t.Cleanup(func() { cfg.Debug = saved })

	e := newTestECS(t)
	pressKeys(t, map[cfg.ActionID]bool{
		cfg.ActionToggleDebug: true,
		cfg.ActionQuit:        true,
	})

	UpdateInput(e)
	UpdatePlayerInput(e)
	assert.Equal(t, !saved.ShowHitboxes, cfg.Debug.ShowHitboxes)
	assert.True(t, QuitRequested(e))

	UpdateInput(e)
	UpdatePlayerInput(e)
	assert.Equal(t, !saved.ShowHitboxes, cfg.Debug.ShowHitboxes, "held Tab toggles once")
}
