// hanoi is a Towers of Hanoi puzzle game with a mouse-driven menu.
//
// Usage:
//
//	hanoi                  - Check assets and start the game
//	hanoi check            - Only check that the asset directory is complete
//	hanoi replay <file>    - Run a recorded session without a window
//
// Global flags:
//
//	--config <path>     - YAML config file (default: hanoi.yaml if present)
//	--assets <dir>      - Asset directory (overrides assets.dir)
//	--log-level <lvl>   - debug, info, warn or error (overrides log.level)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younwookim/hanoi/internal/infrastructure/config"
)

const defaultConfigFile = "hanoi.yaml"

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Towers of Hanoi - move the stack to the last tower",
	Long: `Towers of Hanoi moves a stack of discs from the left tower to the right
tower, one disc at a time, never placing a larger disc on a smaller one.

Click a tower to pick up its top disc, then click another tower to drop it.
Difficulty (3 to 5 discs), window resolution and theme are set in Options.

Examples:
  hanoi
  hanoi --assets ./Assets --record session.json
  hanoi check --assets ./Assets
  hanoi replay session.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (default: "+defaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides assets.dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads path, or the default config file when path is empty.
// A missing default file falls back to the embedded defaults; a missing
// explicit file is an error.
func loadConfig(path string) (*config.GameConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	cfg, err := config.NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default()
	}
	return nil, err
}

// setup loads the config and builds the logger, applying global flag overrides
func setup(cmd *cobra.Command) (*config.GameConfig, *log.Logger, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("assets") {
		cfg.Assets.Dir = flagAssets
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hanoi",
		Level:           lvl,
	}), nil
}
