package factory

import (
	"fmt"

	"github.com/automoto/forward-fighter/assets/animations"
	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations creates an AnimationData component for the character key
// (e.g. "player", "enemy") and starts the given animation. frames is the
// character's sprite sheet, one image per sheet index.
func GenerateAnimations(key string, frames []*ebiten.Image, start cfg.AnimationID) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		// Missing definitions are a configuration error; panic to catch them early.
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animator: animations.NewAnimator(animations.FromDefs(defs)),
		Frames:   frames,
	}
	if err := animData.Animator.Play(start); err != nil {
		panic(fmt.Sprintf("Invalid start animation for %s: %v", key, err))
	}
	return animData
}
