package repository

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
)

// RecruiterRepository defines the interface for recruiter-related database operations.
type RecruiterRepository interface {
	FindByID(ctx context.Context, id string) (*model.Recruiter, error)
	FindByUserID(ctx context.Context, userID string) (*model.Recruiter, error)
}

const recruiterCollection = "recruiters"

type recruiterMongoRepository struct {
	db *mongo.Database
}

// NewRecruiterMongoRepository creates a new MongoDB repository for recruiters.
func NewRecruiterMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) RecruiterRepository {
	collection := db.Collection(recruiterCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create recruiter indexes")
	}

	return &recruiterMongoRepository{db: db}
}

func (r *recruiterMongoRepository) FindByID(ctx context.Context, id string) (*model.Recruiter, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(recruiterCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var recruiter model.Recruiter
	if err := result.Decode(&recruiter); err != nil {
		return nil, err
	}

	return &recruiter, nil
}

func (r *recruiterMongoRepository) FindByUserID(ctx context.Context, userID string) (*model.Recruiter, error) {
	objectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(recruiterCollection).FindOne(ctx, bson.M{"userId": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var recruiter model.Recruiter
	if err := result.Decode(&recruiter); err != nil {
		return nil, err
	}

	return &recruiter, nil
}
