package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/younwookim/hanoi/internal/application/game"
	"github.com/younwookim/hanoi/internal/application/model"
	"github.com/younwookim/hanoi/internal/application/replay"
	"github.com/younwookim/hanoi/internal/domain/entity"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recorded session without a window",
	Long: `Feeds every recorded frame through the program loop with rendering
disabled, then logs where the session ended.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// nopRenderer stands in for the renderer when no window exists
type nopRenderer struct{}

func (nopRenderer) RenderMenu(*model.Menu, *ebiten.Image) {}
func (nopRenderer) RenderGame(*model.Game, *ebiten.Image) {}

func runReplay(cmd *cobra.Command, args []string) error {
	_, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	logger.Info("Replaying", "file", args[0], "version", data.Version, "recorded", data.StartTime, "frames", len(data.Frames))

	g, err := playback(*data, logger)
	if err != nil {
		return err
	}

	fields := []any{"frames", g.Frame(), "state", g.Mode()}
	if s := g.Session(); s != nil {
		fields = append(fields, "moves", s.Moves(), "solved", s.IsComplete())
	} else {
		fields = append(fields, "screen", g.Menu().CurrentMenu())
	}
	logger.Info("Replay finished", fields...)
	return nil
}

// playback runs every frame of data through a headless game. It stops early
// when the recording pressed EXIT.
func playback(data replay.ReplayData, logger *log.Logger) (*game.Game, error) {
	r := replay.NewReplayer(data)
	settings, err := r.Settings()
	if err != nil {
		return nil, err
	}

	g, err := game.New(game.Options{
		Settings: settings,
		NewRenderer: func(entity.Theme) (game.Renderer, error) {
			return nopRenderer{}, nil
		},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	for {
		in, ok := r.GetInput()
		if !ok {
			return g, nil
		}
		if err := g.Step(in); err != nil {
			if errors.Is(err, game.ErrExit) {
				return g, nil
			}
			return nil, err
		}
	}
}
