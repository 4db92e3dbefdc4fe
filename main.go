// ffighter is a small side-view fighting game: strike the enemies walking in
// from both edges of the arena before they reach you.
//
// Usage:
//
//	ffighter [--config tuning.yaml] [--watch] [--seed n] [--log-level debug] [--debug]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/automoto/forward-fighter/config"
	"github.com/automoto/forward-fighter/fonts"
	"github.com/automoto/forward-fighter/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagWatch    bool
	flagSeed     uint64
	flagLogLevel string
	flagDebug    bool
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "ffighter",
	Short: "Forward Fighter - a two-sided arena brawler",
	Long: `Forward Fighter puts you in the middle of the arena. Enemies walk in
from both sides; strike them before they touch you.

Controls:
  D | F | V  - Left high, mid, low attack
  K | J | N  - Right high, mid, low attack
  Tab        - Toggle hitbox outlines
  Esc        - Quit

Examples:
  ffighter
  ffighter --seed 42
  ffighter --config tuning.yaml --watch`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning file")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed for spawn lanes (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Outline every collision body")
}

func run(_ *cobra.Command, _ []string) error {
	if err := config.SetLogLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagWatch && flagConfig == "" {
		return fmt.Errorf("--watch needs --config")
	}

	if flagConfig != "" {
		if err := config.Load(flagConfig); err != nil {
			return err
		}
		config.Log.Info("tuning loaded", "path", flagConfig)
	}
	if flagDebug {
		config.Debug.ShowHitboxes = true
		config.Debug.ShowBodies = true
	}

	var watcher *config.Watcher
	if flagWatch {
		w, err := config.NewWatcher(flagConfig)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", flagConfig, err)
		}
		defer func() { _ = w.Close() }()
		watcher = w
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Forward Fighter")
	ebiten.SetTPS(config.C.TPS)

	err := ebiten.RunGame(NewGame(scenes.NewArenaScene(seed, watcher)))
	if err != nil && !scenes.IsTermination(err) {
		config.Log.Error("game stopped", "err", err)
		return err
	}
	config.Log.Info("bye")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
