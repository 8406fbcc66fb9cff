package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/younwookim/hanoi/internal/infrastructure/assets"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the asset directory is complete",
	Long: `Verifies that the default, red and blue theme folders each contain
exactly three PNG files and that every shared image is present.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := assets.Check(os.DirFS(cfg.Assets.Dir)); err != nil {
		return fmt.Errorf("asset check failed for %s: %w", cfg.Assets.Dir, err)
	}

	logger.Info("Assets OK", "dir", cfg.Assets.Dir, "images", len(assets.CommonFiles())+3*len(assets.ThemeDirs()))
	return nil
}
