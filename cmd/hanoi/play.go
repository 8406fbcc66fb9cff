package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/younwookim/hanoi/internal/application/game"
	"github.com/younwookim/hanoi/internal/application/replay"
	"github.com/younwookim/hanoi/internal/application/system"
	"github.com/younwookim/hanoi/internal/domain/entity"
	"github.com/younwookim/hanoi/internal/infrastructure/assets"
	"github.com/younwookim/hanoi/internal/infrastructure/render"
)

var (
	flagRecord string
	flagDebug  bool
)

func init() {
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay (overrides debug.overlay)")
}

// rendererFactory builds renderers from loader. Common images are decoded
// once and shared between themes.
func rendererFactory(loader *assets.Loader) game.RendererFactory {
	return func(theme entity.Theme) (game.Renderer, error) {
		b, err := loader.Load(theme)
		if err != nil {
			return nil, err
		}
		return render.New(b), nil
	}
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug.Overlay = flagDebug
	}

	settings, err := cfg.InitialSettings()
	if err != nil {
		return err
	}

	fsys := os.DirFS(cfg.Assets.Dir)
	if err := assets.Check(fsys); err != nil {
		return fmt.Errorf("asset check failed for %s: %w", cfg.Assets.Dir, err)
	}

	var recorder *replay.Recorder
	if flagRecord != "" {
		recorder = replay.NewRecorder(settings)
		logger.Info("Recording input", "file", flagRecord)
	}

	g, err := game.New(game.Options{
		Settings:    settings,
		NewRenderer: rendererFactory(assets.NewLoader(fsys)),
		Input:       system.NewInputSystem(),
		Resize: func(res entity.Resolution) {
			ebiten.SetWindowSize(res.Width, res.Height)
		},
		Recorder: recorder,
		Logger:   logger,
		Debug:    cfg.Debug.Overlay,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(settings.Resolution.Width, settings.Resolution.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	logger.Info("Starting", "theme", settings.Theme, "resolution", settings.Resolution, "difficulty", settings.Difficulty)
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(flagRecord); err != nil {
			logger.Error("Failed to save recording", "file", flagRecord, "error", err)
		} else {
			logger.Info("Recording saved", "file", flagRecord, "frames", recorder.FrameCount())
		}
	}

	if runErr != nil {
		return fmt.Errorf("game loop: %w", runErr)
	}
	return nil
}
