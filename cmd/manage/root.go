package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/workoutmanager/internal/config"
	"github.com/2beens/workoutmanager/internal/db"
	"github.com/2beens/workoutmanager/internal/logging"
)

var (
	env        string
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "manage",
	Short: "manage runs admin tasks against the workoutmanager database",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// stdout is kept for command output
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logging.GetLevel(logLevel))
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(dbCmd, userCmd, ingredientCmd, planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withPool loads the config and opens a db pool for the duration of fn.
func withPool(ctx context.Context, fn func(cfg *config.Config, pool *pgxpool.Pool) error) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("WM_POSTGRES_PASS"),
		MaxConns:   2,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	return fn(cfg, pool)
}
