package components

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/forward-fighter/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpawnerData creates an enemy every Interval at a fixed screen-edge
// position. Each spawn picks one of Lanes rows spaced LaneStep apart above Y.
type SpawnerData struct {
	X, Y     float64
	LaneStep float64
	Lanes    int
	Facing   float64 // direction spawned enemies walk in

	Interval time.Duration
	Elapsed  time.Duration

	// Sprite sheet handed to every enemy this spawner creates
	Frames []*ebiten.Image

	rng *rand.Rand
}

// NewSpawnerData places a spawner at (x, y). Spawners left of the arena
// send enemies right, all others send them left.
func NewSpawnerData(x, y, laneStep float64, rng *rand.Rand) *SpawnerData {
	facing := config.DirectionLeft
	if x < 0 {
		facing = config.DirectionRight
	}
	return &SpawnerData{
		X:        x,
		Y:        y,
		LaneStep: laneStep,
		Lanes:    config.Spawner.Lanes,
		Facing:   facing,
		Interval: config.Spawner.Interval,
		rng:      rng,
	}
}

// UpdateTimer reports whether the spawner is due, restarting the timer when
// it is.
func (s *SpawnerData) UpdateTimer(dt time.Duration) bool {
	s.Elapsed += dt
	if s.Elapsed < s.Interval {
		return false
	}
	s.Elapsed = 0
	return true
}

// NextSpawn picks where the next enemy appears.
func (s *SpawnerData) NextSpawn() (x, y, facing float64) {
	lane := 0
	if s.rng != nil && s.Lanes > 1 {
		lane = s.rng.IntN(s.Lanes)
	}
	return s.X, s.Y + float64(lane)*s.LaneStep, s.Facing
}

var Spawner = donburi.NewComponentType[SpawnerData]()
