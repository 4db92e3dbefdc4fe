package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CameraData shakes the view horizontally after the player is hit. The
// shake amplitude decays along Shake; Offset is the current displacement.
type CameraData struct {
	Shake  *gween.Tween
	Offset float64

	sign float64
}

// StartShake begins a shake of the given amplitude, replacing one in
// progress.
func (c *CameraData) StartShake(intensity float64, d time.Duration) {
	c.Shake = gween.New(float32(intensity), 0, float32(d.Seconds()), ease.OutQuad)
	c.sign = 1
}

// Step advances the shake by dt, alternating the offset's direction each
// frame.
func (c *CameraData) Step(dt time.Duration) {
	if c.Shake == nil {
		c.Offset = 0
		return
	}
	amp, done := c.Shake.Update(float32(dt.Seconds()))
	if done {
		c.Shake = nil
		c.Offset = 0
		return
	}
	c.Offset = float64(amp) * c.sign
	c.sign = -c.sign
}

func (c *CameraData) Shaking() bool {
	return c.Shake != nil
}

var Camera = donburi.NewComponentType[CameraData]()
