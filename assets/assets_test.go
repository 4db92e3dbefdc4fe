package assets

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadArena(t *testing.T) {
	level := MustLoadArena()

	assert.Equal(t, "arena.tmx", level.Name)
	assert.Equal(t, 1024, level.Width)
	assert.Equal(t, 512, level.Height)

	assert.Equal(t, 480.0, level.PlayerSpawn.X)
	assert.Equal(t, 170.0, level.PlayerSpawn.Y)
	assert.Equal(t, 128.0, level.PlayerSpawn.Height)

	require.Len(t, level.Spawners, 2)
	left, right := level.Spawners[0], level.Spawners[1]
	assert.Equal(t, -64.0, left.X)
	assert.Equal(t, 1024.0, right.X)
	assert.Equal(t, 170.0, left.Y)
	assert.Equal(t, 170.0, right.Y)
	assert.Zero(t, left.Phase)
	assert.Equal(t, 0.5, right.Phase)
}

func TestMustLoadLevelPanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		NewLevelLoader().MustLoadLevel("levels/missing.tmx")
	})
}

func TestShadeAlternates(t *testing.T) {
	c := shade(colorWhite, 0)
	assert.Equal(t, colorWhite, c)
	d := shade(colorWhite, 1)
	assert.Less(t, d.R, colorWhite.R)
	assert.Equal(t, colorWhite.A, d.A)
}

var colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
