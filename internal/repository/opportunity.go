package repository

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
)

// OpportunityRepository defines the interface for opportunity-related database operations.
type OpportunityRepository interface {
	FindByID(ctx context.Context, id string) (*model.Opportunity, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Opportunity, error)
	IDsByRecruiter(ctx context.Context, recruiterID bson.ObjectID) ([]bson.ObjectID, error)
}

const opportunityCollection = "opportunities"

type opportunityMongoRepository struct {
	db *mongo.Database
}

// NewOpportunityMongoRepository creates a new MongoDB repository for opportunities.
func NewOpportunityMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) OpportunityRepository {
	collection := db.Collection(opportunityCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "recruiterId", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create opportunity indexes")
	}

	return &opportunityMongoRepository{db: db}
}

func (r *opportunityMongoRepository) FindByID(ctx context.Context, id string) (*model.Opportunity, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(opportunityCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var opportunity model.Opportunity
	if err := result.Decode(&opportunity); err != nil {
		return nil, err
	}

	return &opportunity, nil
}

func (r *opportunityMongoRepository) FindByIDs(
	ctx context.Context,
	ids []bson.ObjectID,
) ([]*model.Opportunity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.db.Collection(opportunityCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var opportunities []*model.Opportunity
	if err := cursor.All(ctx, &opportunities); err != nil {
		return nil, err
	}

	return opportunities, nil
}

func (r *opportunityMongoRepository) IDsByRecruiter(
	ctx context.Context,
	recruiterID bson.ObjectID,
) ([]bson.ObjectID, error) {
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := r.db.Collection(opportunityCollection).Find(ctx, bson.M{"recruiterId": recruiterID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]bson.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}

	return ids, nil
}
