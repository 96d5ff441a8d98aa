package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ecofleet/carbon-tracker/app"
	"github.com/ecofleet/carbon-tracker/config"
	"github.com/ecofleet/carbon-tracker/core/report"
)

var reportFilter report.DateFilter

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the fleet emissions report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFilter.Start, "start", "", "inclusive start date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportFilter.End, "end", "", "inclusive end date (YYYY-MM-DD)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
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

	inspections, err := store.Inspections()
	if err != nil {
		return err
	}
	rep := report.Build(inspections, reportFilter)
	if rep == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no trips recorded for the selected period")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total emissions: %.3f t CO2e\n", rep.TotalEmissionsTons)
	fmt.Fprintf(out, "Total distance:  %.1f km\n", rep.TotalDistanceKm)
	fmt.Fprintf(out, "Idle time:       %.0f min\n", rep.TotalIdleMinutes)
	fmt.Fprintf(out, "Intensity:       %.1f g/km\n", rep.EmissionsPerKm*1000)
	fmt.Fprintf(out, "Fleet score:     %d/100\n", rep.FleetScore)
	fmt.Fprintf(out, "Tree offset:     %d trees\n", rep.TreesNeeded)
	fmt.Fprintln(out, "\nBy provider:")
	for _, p := range rep.Providers {
		fmt.Fprintf(out, "  %-20s %3d trips  %8.1f kg  %8.1f km\n", p.Name, p.Trips, p.EmissionsKg, p.DistanceKm)
	}
	if len(rep.MonthlyTrend) > 0 {
		fmt.Fprintln(out, "\nMonthly trend:")
		for _, m := range rep.MonthlyTrend {
			fmt.Fprintf(out, "  %s  %.3f t\n", m.Month, m.EmissionsTons)
		}
	}
	return nil
}
