package components

import (
	"fmt"
	"image/color"

	"github.com/automoto/forward-fighter/config"
	"github.com/solarlune/resolv"
)

// HitboxTag is the collision category of a hitbox.
type HitboxTag int

const (
	HitboxNone HitboxTag = iota
	HitboxPlayer
	HitboxPlayerAttack
)

func (t HitboxTag) String() string {
	switch t {
	case HitboxNone:
		return "None"
	case HitboxPlayer:
		return "Player"
	case HitboxPlayerAttack:
		return "PlayerAttack"
	}
	return fmt.Sprintf("HitboxTag(%d)", int(t))
}

// HitboxData is a tagged rectangle. Its size is fixed at construction; only
// its position follows the owning entity.
type HitboxData struct {
	Object *resolv.Object
	Color  color.RGBA // debug outline

	// Position relative to the owner's origin
	OffsetX float64
	OffsetY float64

	tag HitboxTag
}

// NewHitbox creates a hitbox drawn in green.
func NewHitbox(x, y, w, h float64, tag HitboxTag) *HitboxData {
	return NewHitboxWithColor(x, y, w, h, config.Green, tag)
}

func NewHitboxWithColor(x, y, w, h float64, c color.RGBA, tag HitboxTag) *HitboxData {
	return &HitboxData{
		Object: resolv.NewObject(x, y, w, h),
		Color:  c,
		tag:    tag,
	}
}

func (h *HitboxData) Tag() HitboxTag {
	return h.tag
}

func (h *HitboxData) Overlaps(other *HitboxData) bool {
	return RectsOverlap(h.Object, other.Object)
}

func (h *HitboxData) OverlapsObject(o *resolv.Object) bool {
	return RectsOverlap(h.Object, o)
}

// Follow moves the hitbox to its offset from an owner at (x, y).
func (h *HitboxData) Follow(x, y float64) {
	h.Object.X = x + h.OffsetX
	h.Object.Y = y + h.OffsetY
}
