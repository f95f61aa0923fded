// Package main runs the nutrition MCP server over stdio.
// The backend mounts the same server at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/workoutmanager/internal/config"
	"github.com/2beens/workoutmanager/internal/db"
	"github.com/2beens/workoutmanager/internal/nutrition"
	nutritionmcp "github.com/2beens/workoutmanager/internal/nutrition/mcp"
	"github.com/2beens/workoutmanager/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("WM_POSTGRES_PASS"),
		MaxConns:       4,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	repo := nutrition.NewRepo(dbPool)
	service := nutrition.NewService(repo, repo, cfg.IngredientLanguages, metrics.NewManager("workoutmanager", "mcp_stdio", prometheus.NewRegistry()))
	server := nutritionmcp.NewServer(nutritionmcp.NewPoolSchemaRepo(dbPool), service, nil)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
