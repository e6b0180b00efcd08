package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRecommendCommand(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend <region>",
		Short: "Print per-category advisories for one region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.cleanup()

			detail, err := a.service.RegionDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(detail)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  rank %d  final score %.1f  (%.0fth percentile)\n\n",
				detail.Name, detail.Rank, detail.Scores.Final, detail.Percentile)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRIORITY\tCATEGORY\tACTION\tSCORE\tREASON")
			for _, adv := range detail.Recommendations {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\n",
					adv.Priority, adv.Label, adv.Action, adv.Score, adv.Reason)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}
