package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitrinalocal/services/api/internal/config"
	"github.com/vitrinalocal/services/api/internal/server"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "tiendas-api").Logger()

	// A missing .env is fine in production; env vars take precedence.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal().Err(err).Msg("MongoDB connection failed")
	}

	app := server.New(cfg, client, logger)
	if err := app.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server failed to start")
	}
}
