package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutmanager/internal/config"
	"github.com/2beens/workoutmanager/internal/nutrition"
	"github.com/2beens/workoutmanager/internal/nutrition/openfoodfacts"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage ingredients",
}

var ingredientImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Add the ingredients listed in a yaml file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		fixtures, err := parseIngredients(f)
		if err != nil {
			return err
		}

		return withPool(cmd.Context(), func(_ *config.Config, pool *pgxpool.Pool) error {
			importer := nutrition.NewImporter(nil, nutrition.NewRepo(pool))
			for _, fix := range fixtures {
				added, err := importer.AddIngredient(cmd.Context(), fix.ingredient(), fix.Units)
				if errors.Is(err, nutrition.ErrIngredientExists) {
					log.Warnf("skipping %s: %s", fix.Name, err)
					continue
				}
				if err != nil {
					return fmt.Errorf("import %s: %w", fix.Name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", added.ID, added.Name, added.Status)
			}
			log.Debugf("imported %d ingredients from %s", len(fixtures), args[0])
			return nil
		})
	},
}

var ingredientBarcodeCmd = &cobra.Command{
	Use:   "barcode <barcode>",
	Short: "Import a product from Open Food Facts as a pending ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), func(cfg *config.Config, pool *pgxpool.Pool) error {
			client := openfoodfacts.NewClient(cfg.OpenFoodFactsURL, &http.Client{Timeout: 15 * time.Second})
			importer := nutrition.NewImporter(client, nutrition.NewRepo(pool))
			added, err := importer.ImportBarcode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", added.ID, added.Name, added.Status)
			return nil
		})
	},
}

var ingredientStatus string

var ingredientStatusCmd = &cobra.Command{
	Use:   "accept <id>...",
	Short: "Set the status of ingredients, accepted by default",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := nutrition.IngredientStatus(ingredientStatus)
		if !status.Valid() {
			return fmt.Errorf("invalid status: %s", ingredientStatus)
		}
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		return withPool(cmd.Context(), func(_ *config.Config, pool *pgxpool.Pool) error {
			repo := nutrition.NewRepo(pool)
			for _, id := range ids {
				if err := repo.SetIngredientStatus(cmd.Context(), id, status); err != nil {
					return fmt.Errorf("ingredient %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ingredient %d: %s\n", id, status)
			}
			return nil
		})
	},
}

func init() {
	ingredientStatusCmd.Flags().StringVar(&ingredientStatus, "status", string(nutrition.StatusAccepted), "new status [pending | accepted | declined | admin]")

	ingredientCmd.AddCommand(ingredientImportCmd, ingredientBarcodeCmd, ingredientStatusCmd)
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id: %s", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
