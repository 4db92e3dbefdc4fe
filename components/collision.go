package components

import "github.com/yohamta/donburi"

// CollisionData is the per-frame scratch list of hitboxes entities are
// tested against. It is rebuilt from the player's active hitboxes every
// frame and cleared at the end of it.
type CollisionData struct {
	Hitboxes []*HitboxData
}

func (c *CollisionData) Reset() {
	clear(c.Hitboxes)
	c.Hitboxes = c.Hitboxes[:0]
}

var Collision = donburi.NewComponentType[CollisionData]()
