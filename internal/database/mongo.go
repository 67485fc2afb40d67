package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/simranbali-ace04/CampusHubX/internal/config"
)

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) *mongo.Client {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to MongoDB")

	return client
}

// Disconnect closes the MongoDB connection, logging any error.
func Disconnect(ctx context.Context, logger *zerolog.Logger, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
	}
}
