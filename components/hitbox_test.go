package components

import (
	"testing"

	"github.com/automoto/forward-fighter/config"
	"github.com/stretchr/testify/assert"
)

func TestHitboxOverlapIsSymmetric(t *testing.T) {
	base := NewHitbox(0, 0, 10, 10, HitboxPlayer)

	tests := []struct {
		name  string
		other *HitboxData
		want  bool
	}{
		{name: "inside", other: NewHitbox(2, 2, 4, 4, HitboxNone), want: true},
		{name: "partial", other: NewHitbox(5, 5, 10, 10, HitboxNone), want: true},
		{name: "touching edge", other: NewHitbox(10, 0, 5, 5, HitboxNone), want: false},
		{name: "touching corner", other: NewHitbox(10, 10, 5, 5, HitboxNone), want: false},
		{name: "apart", other: NewHitbox(20, 20, 5, 5, HitboxNone), want: false},
		{name: "covering", other: NewHitbox(-5, -5, 30, 30, HitboxNone), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
			assert.Equal(t, tt.want, base.OverlapsObject(tt.other.Object))
		})
	}
}

func TestHitboxConstruction(t *testing.T) {
	hb := NewHitbox(1, 2, 3, 4, HitboxPlayerAttack)
	assert.Equal(t, HitboxPlayerAttack, hb.Tag())
	assert.Equal(t, config.Green, hb.Color)
	assert.Equal(t, 3.0, hb.Object.W)
	assert.Equal(t, 4.0, hb.Object.H)

	red := NewHitboxWithColor(0, 0, 1, 1, config.Red, HitboxPlayer)
	assert.Equal(t, config.Red, red.Color)
	assert.Equal(t, HitboxPlayer, red.Tag())
}

func TestHitboxFollowKeepsSize(t *testing.T) {
	hb := NewHitbox(0, 0, 8, 6, HitboxNone)
	hb.OffsetX, hb.OffsetY = 4, -2

	hb.Follow(100, 50)
	assert.Equal(t, 104.0, hb.Object.X)
	assert.Equal(t, 48.0, hb.Object.Y)
	assert.Equal(t, 8.0, hb.Object.W)
	assert.Equal(t, 6.0, hb.Object.H)
}

func TestHitboxTagStrings(t *testing.T) {
	assert.Equal(t, "PlayerAttack", HitboxPlayerAttack.String())
	assert.Equal(t, "HitboxTag(9)", HitboxTag(9).String())
}
