package components

import (
	"github.com/automoto/forward-fighter/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Animator *animations.Animator
	Frames   []*ebiten.Image // every frame of the sprite sheet, indexed by the animator
}

// Image returns the frame the animator is showing, or nil when nothing is
// playing or the sheet has no image for it.
func (a *AnimationData) Image() *ebiten.Image {
	i := a.Animator.Frame()
	if i < 0 || i >= len(a.Frames) {
		return nil
	}
	return a.Frames[i]
}

var Animation = donburi.NewComponentType[AnimationData]()
