package main

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutmanager/internal/config"
	"github.com/2beens/workoutmanager/internal/nutrition"
	"github.com/2beens/workoutmanager/internal/telemetry/metrics"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Nutrition plan queries",
}

var planMeals string

var planValuesCmd = &cobra.Command{
	Use:   "values <plan id>",
	Short: "Print the nutritional values of a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		filter, err := nutrition.ParseMealFilter(planMeals)
		if err != nil {
			return err
		}

		return withPool(cmd.Context(), func(cfg *config.Config, pool *pgxpool.Pool) error {
			repo := nutrition.NewRepo(pool)
			metricsManager := metrics.NewManager("workoutmanager", "manage", prometheus.NewRegistry())
			service := nutrition.NewService(repo, repo, cfg.IngredientLanguages, metricsManager)

			values, err := service.PlanValues(cmd.Context(), ids[0], filter)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(values); err != nil {
				return fmt.Errorf("encode values: %w", err)
			}
			return nil
		})
	},
}

func init() {
	planValuesCmd.Flags().StringVar(&planMeals, "meals", "all", "meals to count [all | daily]")

	planCmd.AddCommand(planValuesCmd)
}
