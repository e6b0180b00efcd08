package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/GreenScore-Intelligence/internal/domain/region"
	"github.com/turtacn/GreenScore-Intelligence/internal/domain/scenario"
)

func newScenarioCommand(configPath *string) *cobra.Command {
	var (
		mode       string
		solar      float64
		wind       float64
		smallHydro float64
		bio        float64
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "scenario <region>",
		Short: "Evaluate a what-if capacity adjustment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedMode, err := scenario.ParseMode(mode)
			if err != nil {
				return err
			}

			a, err := buildApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.cleanup()

			result, err := a.service.Scenario(cmd.Context(), scenario.Request{
				Region: args[0],
				Mode:   parsedMode,
				Deltas: [region.NumCategories]float64{solar, wind, smallHydro, bio},
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s mode)\n", result.Region, result.Mode)
			fmt.Fprintf(out, "  score: %.2f -> %.2f (%+.2f)\n", result.BaseScore, result.NewScore, result.DeltaScore)
			fmt.Fprintf(out, "  rank:  %d -> %d (%+d)\n", result.BaseRank, result.NewRank, result.DeltaRank)
			for _, cc := range result.Categories {
				if cc.BaseMW == cc.NewMW {
					continue
				}
				fmt.Fprintf(out, "  %-12s %.1f MW -> %.1f MW (score %.1f -> %.1f)\n",
					cc.Category, cc.BaseMW, cc.NewMW, cc.BaseScore, cc.NewScore)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "percent", `adjustment mode: "percent" or "mw"`)
	cmd.Flags().Float64Var(&solar, "solar", 0, "solar delta")
	cmd.Flags().Float64Var(&wind, "wind", 0, "wind delta")
	cmd.Flags().Float64Var(&smallHydro, "small-hydro", 0, "small hydro delta")
	cmd.Flags().Float64Var(&bio, "bio", 0, "bio power delta")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	return cmd
}
