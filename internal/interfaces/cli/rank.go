package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRankCommand(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the readiness ranking",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.cleanup()

			views, err := a.service.ListRegions(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tREGION\tFINAL\tSOLAR\tWIND\tSMALL HYDRO\tBIO\tCLUSTER")
			for _, v := range views {
				fmt.Fprintf(w, "%d\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n",
					v.Rank, v.Name, v.Scores.Final,
					v.Scores.Solar, v.Scores.Wind, v.Scores.SmallHydro, v.Scores.Bio,
					v.Insight.ClusterName)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}
