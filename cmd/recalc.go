package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ecofleet/carbon-tracker/app"
	"github.com/ecofleet/carbon-tracker/config"
	"github.com/ecofleet/carbon-tracker/infra/logger"
	"github.com/ecofleet/carbon-tracker/jobs/recalc"
)

var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recompute stored emissions with the current calculator",
	RunE:  runRecalc,
}

func init() {
	rootCmd.AddCommand(recalcCmd)
}

func runRecalc(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := app.OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if c, ok := store.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	rw, ok := store.(recalc.RewriteStore)
	if !ok {
		return fmt.Errorf("store backend does not support rewriting inspections")
	}
	changed, err := recalc.Run(rw, logger.New("recalc"))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d inspections rewritten\n", changed)
	return nil
}
