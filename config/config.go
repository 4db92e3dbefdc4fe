package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // ticks per second; one simulation frame per tick
}

// FrameDelta is the simulated time covered by one tick.
func (c *Config) FrameDelta() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions of the player sprite
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Attack hitboxes are square
	HitboxSize float64 `yaml:"hitboxSize"`

	// How long each attack height stays active
	HiAttack time.Duration `yaml:"hiAttack"`
	MdAttack time.Duration `yaml:"mdAttack"`
	LoAttack time.Duration `yaml:"loAttack"`
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Horizontal approach speed in px/s
	Speed float64 `yaml:"speed"`
	// Added to the downward speed every frame while falling
	FallAcceleration float64 `yaml:"fallAcceleration"`

	// Velocity multipliers applied when the enemy starts falling
	KnockbackScale float64 `yaml:"knockbackScale"` // struck by an attack
	RecoilScale    float64 `yaml:"recoilScale"`    // touched the player

	ScoreValue int `yaml:"scoreValue"`
}

// SpawnerConfig contains enemy spawner configuration
type SpawnerConfig struct {
	Interval time.Duration `yaml:"interval"`
	Lanes    int           `yaml:"lanes"`
}

// GameConfig contains match rules
type GameConfig struct {
	StartingHealth int `yaml:"startingHealth"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ShakeIntensity float64       `yaml:"shakeIntensity"` // pixels
	ShakeDuration  time.Duration `yaml:"shakeDuration"`
}

// DebugConfig contains debug drawing options
type DebugConfig struct {
	ShowHitboxes bool `yaml:"showHitboxes"`
	ShowBodies   bool `yaml:"showBodies"`
}

// UIConfig contains HUD and debug colors
type UIConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	HurtboxColor    color.RGBA
	AttackColor     color.RGBA
	BodyColor       color.RGBA
	PlayerColor     color.RGBA // placeholder sprite fill
	EnemyColor      color.RGBA

	HUDFontSize float64
	HUDMarginX  int
	HUDLineGap  int

	HelpText    string
	VersionText string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Spawner SpawnerConfig
var Game GameConfig
var Camera CameraConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 512,
		TPS:    60,
	}

	Player = PlayerConfig{
		Width:      64,
		Height:     128,
		HitboxSize: 64,

		// md is the fastest, lo lingers the longest
		HiAttack: 200 * time.Millisecond,
		MdAttack: 100 * time.Millisecond,
		LoAttack: 250 * time.Millisecond,
	}

	Enemy = EnemyConfig{
		Width:            64,
		Height:           64,
		Speed:            200,
		FallAcceleration: 200,
		KnockbackScale:   -6,
		RecoilScale:      -0.5,
		ScoreValue:       10,
	}

	Spawner = SpawnerConfig{
		Interval: 1500 * time.Millisecond,
		Lanes:    3,
	}

	Game = GameConfig{
		StartingHealth: 1,
	}

	Camera = CameraConfig{
		ShakeIntensity: 6,
		ShakeDuration:  250 * time.Millisecond,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes: true,
		ShowBodies:   false,
	}

	UI = UIConfig{
		BackgroundColor: Black,
		TextColor:       White,
		HurtboxColor:    Red,
		AttackColor:     Green,
		BodyColor:       Cyan,
		PlayerColor:     White,
		EnemyColor:      color.RGBA{R: 200, G: 120, B: 40, A: 255},

		HUDFontSize: 16,
		HUDMarginX:  16,
		HUDLineGap:  32,

		HelpText:    "D | F | V  and  K | J | N for Hi, Mid, Low attacks respectively.",
		VersionText: "Forward Fighter v0.1",
	}
}
