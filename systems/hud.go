package systems

import (
	"fmt"

	cfg "github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// HUDLines is the text shown over the arena, top line first.
func HUDLines(ecs *ecs.ECS) []string {
	game := GetGame(ecs)
	if game == nil {
		return nil
	}
	return []string{
		cfg.UI.VersionText,
		cfg.UI.HelpText,
		fmt.Sprintf("Times Hit: %d", game.Hits),
		fmt.Sprintf("Score: %d", game.Score),
	}
}

// DrawHUD writes the HUD lines in the bottom-left corner, the last line
// closest to the bottom edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := HUDLines(ecs)
	face := fonts.HUD.Get()

	bottom := cfg.C.Height - 2*cfg.UI.HUDLineGap
	for i, line := range lines {
		y := bottom - (len(lines)-1-i)*cfg.UI.HUDLineGap
		text.Draw(screen, line, face, cfg.UI.HUDMarginX, y, cfg.UI.TextColor)
	}
}
