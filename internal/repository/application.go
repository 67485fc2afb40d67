package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
)

// ApplicationRepository defines the interface for application-related database operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) (*model.Application, error)
	FindByID(ctx context.Context, id string) (*model.Application, error)
	List(ctx context.Context, params FilterApplicationsParams) ([]*model.Application, error)
	Count(ctx context.Context, params FilterApplicationsParams) (int64, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status model.ApplicationStatus) (*model.Application, error)

	// HasActive reports whether the student already holds a non-withdrawn
	// application for the opportunity.
	HasActive(ctx context.Context, studentID, opportunityID bson.ObjectID) (bool, error)
}

// FilterApplicationsParams defines the parameters for filtering and paginating
// applications. Results are always sorted by appliedAt descending.
type FilterApplicationsParams struct {
	OpportunityIDs []bson.ObjectID
	StudentID      *bson.ObjectID
	Status         *model.ApplicationStatus
	Limit          int64
	Skip           int64
}

const applicationCollection = "applications"

type applicationMongoRepository struct {
	db *mongo.Database
}

// NewApplicationMongoRepository creates a new MongoDB repository for applications.
func NewApplicationMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) ApplicationRepository {
	collection := db.Collection(applicationCollection)

	// The student/opportunity pair is not uniquely indexed: withdrawn
	// applications free the slot, and partial indexes cannot express $ne.
	// Uniqueness is enforced with HasActive before insert.
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "opportunityId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "opportunityId", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "appliedAt", Value: -1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create application indexes")
	}

	return &applicationMongoRepository{db: db}
}

func (r *applicationMongoRepository) Create(
	ctx context.Context,
	application *model.Application,
) (*model.Application, error) {
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	if application.AppliedAt.IsZero() {
		application.AppliedAt = now
	}

	result, err := r.db.Collection(applicationCollection).InsertOne(ctx, application)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		application.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return application, nil
}

func (r *applicationMongoRepository) FindByID(ctx context.Context, id string) (*model.Application, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(applicationCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var application model.Application
	if err := result.Decode(&application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (r *applicationMongoRepository) List(
	ctx context.Context,
	params FilterApplicationsParams,
) ([]*model.Application, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})

	limit := params.Limit
	if limit == 0 {
		limit = 10
	}
	findOptions.SetLimit(limit)

	if params.Skip > 0 {
		findOptions.SetSkip(params.Skip)
	}

	cursor, err := r.db.Collection(applicationCollection).Find(ctx, applicationFilter(params), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var applications []*model.Application
	for cursor.Next(ctx) {
		var application model.Application
		if err := cursor.Decode(&application); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *applicationMongoRepository) Count(ctx context.Context, params FilterApplicationsParams) (int64, error) {
	return r.db.Collection(applicationCollection).CountDocuments(ctx, applicationFilter(params))
}

func (r *applicationMongoRepository) UpdateStatus(
	ctx context.Context,
	id bson.ObjectID,
	status model.ApplicationStatus,
) (*model.Application, error) {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}

	result := r.db.Collection(applicationCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var application model.Application
	if err := result.Decode(&application); err != nil {
		return nil, err
	}

	return &application, nil
}

func (r *applicationMongoRepository) HasActive(
	ctx context.Context,
	studentID, opportunityID bson.ObjectID,
) (bool, error) {
	filter := bson.M{
		"studentId":     studentID,
		"opportunityId": opportunityID,
		"status":        bson.M{"$ne": model.ApplicationWithdrawn},
	}

	count, err := r.db.Collection(applicationCollection).CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func applicationFilter(params FilterApplicationsParams) bson.M {
	filter := bson.M{}
	if params.OpportunityIDs != nil {
		filter["opportunityId"] = bson.M{"$in": params.OpportunityIDs}
	}
	if params.StudentID != nil {
		filter["studentId"] = *params.StudentID
	}
	if params.Status != nil {
		filter["status"] = *params.Status
	}

	return filter
}
