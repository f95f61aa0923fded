package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutmanager/internal/config"
	"github.com/2beens/workoutmanager/internal/db"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database tasks",
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the missing tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), func(_ *config.Config, pool *pgxpool.Pool) error {
			if err := db.ApplySchema(cmd.Context(), pool); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		})
	},
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
}
