package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionAttackLeftHi
	ActionAttackLeftMd
	ActionAttackLeftLo
	ActionAttackRightHi
	ActionAttackRightMd
	ActionAttackRightLo
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Attack actions in dispatch order; the first one pressed in a frame wins.
	AttackOrder []ActionID
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionAttackLeftHi:  {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionAttackLeftMd:  {Keys: []ebiten.Key{ebiten.KeyF}},
			ActionAttackLeftLo:  {Keys: []ebiten.Key{ebiten.KeyV}},
			ActionAttackRightHi: {Keys: []ebiten.Key{ebiten.KeyK}},
			ActionAttackRightMd: {Keys: []ebiten.Key{ebiten.KeyJ}},
			ActionAttackRightLo: {Keys: []ebiten.Key{ebiten.KeyN}},
			ActionToggleDebug:   {Keys: []ebiten.Key{ebiten.KeyTab}},
			ActionQuit:          {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
		// Mid attacks are checked first, then high, then low.
		AttackOrder: []ActionID{
			ActionAttackLeftMd,
			ActionAttackRightMd,
			ActionAttackLeftHi,
			ActionAttackRightHi,
			ActionAttackLeftLo,
			ActionAttackRightLo,
		},
	}
}
