package systems

import (
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeyPressed reports whether a key is held. Tests substitute it.
var KeyPressed = ebiten.IsKeyPressed

var attackActions = map[cfg.ActionID]struct {
	facing components.Facing
	height components.Height
}{
	cfg.ActionAttackLeftHi:  {components.FacingLeft, components.HeightHi},
	cfg.ActionAttackLeftMd:  {components.FacingLeft, components.HeightMd},
	cfg.ActionAttackLeftLo:  {components.FacingLeft, components.HeightLo},
	cfg.ActionAttackRightHi: {components.FacingRight, components.HeightHi},
	cfg.ActionAttackRightMd: {components.FacingRight, components.HeightMd},
	cfg.ActionAttackRightLo: {components.FacingRight, components.HeightLo},
}

func getInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

// UpdateInput polls the keyboard once per frame.
// Must run BEFORE UpdatePlayerInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getInput(ecs)
	if input == nil {
		return
	}
	input.Sample(func(a cfg.ActionID) bool {
		for _, key := range cfg.Input.Bindings[a].Keys {
			if KeyPressed(key) {
				return true
			}
		}
		return false
	})
}

// ResolveAttack returns the first attack action pressed this frame, in
// dispatch order.
func ResolveAttack(input *components.InputData) (cfg.ActionID, bool) {
	for _, a := range cfg.Input.AttackOrder {
		if input.JustPressed(a) {
			return a, true
		}
	}
	return cfg.ActionNone, false
}

// UpdatePlayerInput starts at most one attack per frame and toggles debug
// drawing.
func UpdatePlayerInput(ecs *ecs.ECS) {
	input := getInput(ecs)
	if input == nil {
		return
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}

	action, ok := ResolveAttack(input)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	atk := attackActions[action]
	components.Player.Get(playerEntry).Attack(atk.facing, atk.height)

	playAnimation(ecs, playerEntry, components.AttackAnimation(atk.facing, atk.height))
}

// QuitRequested reports whether the quit binding is held.
func QuitRequested(ecs *ecs.ECS) bool {
	input := getInput(ecs)
	return input != nil && input.Pressed(cfg.ActionQuit)
}
