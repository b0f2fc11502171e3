// antpicnic is a small single-screen arcade game: an autonomous ant chases
// food across the board while the player keeps it alive by clicking poison
// away.
//
// Usage:
//
//	antpicnic            - play
//	antpicnic genassets  - write placeholder sprites and sounds to ./images
//	                       and ./sounds
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"antpicnic/game"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "antpicnic"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "antpicnic",
	Short: "Keep the ant fed and away from the poison",
	Long: `Ant Picnic is a single-screen arcade game. The ant walks to the
nearest food on its own; your job is to click poison off the board before
the ant steps in it. Click the title screen to play, press Escape to quit.`,
	SilenceUsage: true,
	RunE:         runGame,
}

var genassetsCmd = &cobra.Command{
	Use:   "genassets",
	Short: "Generate placeholder sprites and sounds in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := game.WritePlaceholderAssets("."); err != nil {
			return err
		}
		logger.Info("placeholder assets written", "image dir", "images", "sound dir", "sounds")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genassetsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg := game.DefaultConfig()

	assets, err := game.LoadAssets(".", cfg)
	if err != nil {
		return err
	}
	mixer, err := game.NewWavMixer("sounds", cfg.TPS)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.NewGame(cfg, assets, mixer, rng, logger)

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Ant Picnic")
	ebiten.SetTPS(cfg.TPS)

	logger.Info("starting", "size", fmt.Sprintf("%dx%d", cfg.ScreenWidth, cfg.ScreenHeight), "tps", cfg.TPS)
	return ebiten.RunGame(g)
}
