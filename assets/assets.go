package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ArenaPath is the embedded arena layout.
const ArenaPath = "levels/arena.tmx"

// Spawn is a rectangle placed in the arena, in y-up world space.
type Spawn struct {
	Name          string
	X, Y          float64
	Width, Height float64
}

// SpawnerSpawn places an enemy spawner. Phase is the fraction of the spawn
// interval already elapsed when the match starts.
type SpawnerSpawn struct {
	Spawn
	Phase float64
}

type Level struct {
	Name        string
	Width       int
	Height      int
	PlayerSpawn Spawn
	Spawners    []SpawnerSpawn
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevel reads a Tiled map from the embedded levels directory. Tiled
// places objects by their top-left corner in y-down space; positions are
// flipped so Y is the bottom edge measured from the bottom of the map.
func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", levelPath, err))
	}

	level := Level{
		Name:     filepath.Base(levelPath),
		Width:    levelMap.Width * levelMap.TileWidth,
		Height:   levelMap.Height * levelMap.TileHeight,
		Spawners: []SpawnerSpawn{},
	}
	flip := func(o *tiled.Object) Spawn {
		return Spawn{
			Name:   o.Name,
			X:      o.X,
			Y:      float64(level.Height) - (o.Y + o.Height),
			Width:  o.Width,
			Height: o.Height,
		}
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawn = flip(o)
				foundPlayer = true
			}
		case "Spawners":
			for _, o := range og.Objects {
				level.Spawners = append(level.Spawners, SpawnerSpawn{
					Spawn: flip(o),
					Phase: o.Properties.GetFloat("phase"),
				})
			}
			// Left to right so spawner order does not depend on the editor
			sort.Slice(level.Spawners, func(i, j int) bool {
				return level.Spawners[i].X < level.Spawners[j].X
			})
		}
	}

	if !foundPlayer {
		panic(fmt.Sprintf("Level %s has no PlayerSpawn object", levelPath))
	}
	if len(level.Spawners) == 0 {
		panic(fmt.Sprintf("Level %s has no Spawners objects", levelPath))
	}

	return level
}

// MustLoadArena loads the embedded arena.
func MustLoadArena() Level {
	return NewLevelLoader().MustLoadLevel(ArenaPath)
}
