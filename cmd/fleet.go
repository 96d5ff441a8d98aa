package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ecofleet/carbon-tracker/app"
	"github.com/ecofleet/carbon-tracker/config"
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registered vehicles",
	RunE:  runFleetLs,
}

func init() {
	fleetCmd.AddCommand(fleetLsCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetLs(cmd *cobra.Command, args []string) error {
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

	vehicles, err := store.Vehicles()
	if err != nil {
		return err
	}
	for _, v := range vehicles {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-20s %s %s (%s)  odo %.0f km\n",
			v.Plate, v.ProviderName, v.Make, v.Model, v.FuelType, v.LastOdometer)
	}
	return nil
}
