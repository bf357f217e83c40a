// Command seed loads the demo catalog into MongoDB.
package main

import (
	"context"
	"os"

	"github.com/jazflix/jazflix-bo/backend/go-services/internal/catalog"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/config"
	"github.com/jazflix/jazflix-bo/backend/go-services/internal/database"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/logger"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI is required")
	}

	ctx := context.Background()
	client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, database.DefaultRetry)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	cat := catalog.NewMongo(client.Database(cfg.MongoDB.Database), catalog.Options{})
	if err := catalog.Seed(ctx, cat, cfg.SeedReset); err != nil {
		logger.Errorf("seed failed: %v", err)
		_ = client.Disconnect(ctx)
		os.Exit(1)
	}
	logger.Infof("demo catalog loaded into %s", cfg.MongoDB.Database)
}
