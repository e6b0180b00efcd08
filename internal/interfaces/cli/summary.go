package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCommand(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print aggregate statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.cleanup()

			summary, err := a.service.Summary(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "regions: %d (source: %s)\n", summary.RegionCount, summary.Source)
			fmt.Fprintf(out, "mean final score: %.2f\n", summary.MeanFinalScore)
			fmt.Fprintf(out, "installed capacity: solar %.0f MW, wind %.0f MW, small hydro %.0f MW, bio %.0f MW, large hydro %.0f MW\n",
				summary.TotalCapacity.SolarMW, summary.TotalCapacity.WindMW,
				summary.TotalCapacity.SmallHydroMW, summary.TotalCapacity.BioMW,
				summary.TotalCapacity.LargeHydroMW)

			fmt.Fprintln(out, "top:")
			for _, b := range summary.Top {
				fmt.Fprintf(out, "  %2d. %-20s %.1f\n", b.Rank, b.Name, b.FinalScore)
			}
			fmt.Fprintln(out, "bottom:")
			for _, b := range summary.Bottom {
				fmt.Fprintf(out, "  %2d. %-20s %.1f\n", b.Rank, b.Name, b.FinalScore)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	return cmd
}
