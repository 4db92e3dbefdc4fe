package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their current values.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Game    GameConfig    `yaml:"game"`
	Camera  CameraConfig  `yaml:"camera"`
	Debug   DebugConfig   `yaml:"debug"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Player:  Player,
		Enemy:   Enemy,
		Spawner: Spawner,
		Game:    Game,
		Camera:  Camera,
		Debug:   Debug,
	}
}

// Apply makes t the live configuration.
func (t Tuning) Apply() {
	Player = t.Player
	Enemy = t.Enemy
	Spawner = t.Spawner
	Game = t.Game
	Camera = t.Camera
	Debug = t.Debug
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.HiAttack <= 0 || t.Player.MdAttack <= 0 || t.Player.LoAttack <= 0 {
		errs = append(errs, errors.New("player attack durations must be positive"))
	}
	if t.Player.Width <= 0 || t.Player.Height <= 0 || t.Player.HitboxSize <= 0 {
		errs = append(errs, errors.New("player dimensions must be positive"))
	}
	if t.Enemy.Width <= 0 || t.Enemy.Height <= 0 {
		errs = append(errs, errors.New("enemy dimensions must be positive"))
	}
	if t.Spawner.Interval <= 0 {
		errs = append(errs, errors.New("spawner interval must be positive"))
	}
	if t.Spawner.Lanes < 1 {
		errs = append(errs, errors.New("spawner needs at least one lane"))
	}
	return errors.Join(errs...)
}

// ParseTuning decodes YAML on top of base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Load reads a tuning file and applies it on top of the live configuration.
// Nothing changes if the file cannot be read or is invalid.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply()
	return nil
}
