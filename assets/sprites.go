package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlaceholderSheet generates count solid frames of w x h for a character
// sheet. Each frame is a slightly different shade of c so frame changes stay
// visible on screen.
func PlaceholderSheet(count, w, h int, c color.RGBA) []*ebiten.Image {
	frames := make([]*ebiten.Image, count)
	for i := range frames {
		img := ebiten.NewImage(w, h)
		img.Fill(shade(c, i))
		frames[i] = img
	}
	return frames
}

func shade(c color.RGBA, i int) color.RGBA {
	// every other frame is darker
	if i%2 == 1 {
		c.R = uint8(int(c.R) * 3 / 4)
		c.G = uint8(int(c.G) * 3 / 4)
		c.B = uint8(int(c.B) * 3 / 4)
	}
	return c
}
