package systems

import (
	"fmt"

	"github.com/automoto/forward-fighter/components"
	cfg "github.com/automoto/forward-fighter/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playAnimation switches an entry's animation, stopping the game if the
// animation does not exist.
func playAnimation(ecs *ecs.ECS, e *donburi.Entry, id cfg.AnimationID) {
	if !e.HasComponent(components.Animation) {
		return
	}
	if err := components.Animation.Get(e).Animator.Play(id); err != nil {
		fail(ecs, fmt.Errorf("entity %v: %w", e.Entity(), err))
		return
	}
	if e.HasComponent(components.Sprite) {
		components.Sprite.Get(e).Image = components.Animation.Get(e).Image()
	}
}

// UpdateAnimations advances every animator and shows its frame. The first
// animation error stops the game.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := frameDelta()
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if err := anim.Animator.Advance(dt); err != nil {
			fail(ecs, fmt.Errorf("entity %v: %w", e.Entity(), err))
			return
		}
		if e.HasComponent(components.Sprite) {
			components.Sprite.Get(e).Image = anim.Image()
		}
	})
}
