package components

import (
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is an entity's velocity in px/s. World space is y-up.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

// Advance integrates o's position over dt. There is no clamping and no
// collision response.
func (p *PhysicsData) Advance(o *resolv.Object, dt time.Duration) {
	s := dt.Seconds()
	o.X += p.SpeedX * s
	o.Y += p.SpeedY * s
}

var Physics = donburi.NewComponentType[PhysicsData]()
