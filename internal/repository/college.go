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

// CollegeRepository defines the interface for college-related database operations.
type CollegeRepository interface {
	FindByID(ctx context.Context, id string) (*model.College, error)
	FindByUserID(ctx context.Context, userID string) (*model.College, error)
	List(ctx context.Context, params FilterCollegesParams) ([]*model.College, error)
	Count(ctx context.Context, params FilterCollegesParams) (int64, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, params UpdateCollegeParams) (*model.College, error)
}

// FilterCollegesParams defines the parameters for filtering and paginating colleges.
// When Search is set, results are ranked by text relevance instead of name.
type FilterCollegesParams struct {
	Verified *bool
	Search   string
	Limit    int64
	Skip     int64
}

// UpdateCollegeParams defines the optional parameters for a college profile
// update. Only non-nil fields are written. The platform-level verified flag and
// the college code are deliberately absent; they can never be self-assigned.
type UpdateCollegeParams struct {
	Name         *string
	ContactEmail *string
	Phone        *string
	Website      *string
	Address      *model.CollegeAddress
}

const collegeCollection = "colleges"

type collegeMongoRepository struct {
	db *mongo.Database
}

// NewCollegeMongoRepository creates a new MongoDB repository for colleges.
func NewCollegeMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) CollegeRepository {
	collection := db.Collection(collegeCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "name", Value: "text"}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create college indexes")
	}

	return &collegeMongoRepository{db: db}
}

func (r *collegeMongoRepository) FindByID(ctx context.Context, id string) (*model.College, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(collegeCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var college model.College
	if err := result.Decode(&college); err != nil {
		return nil, err
	}

	return &college, nil
}

func (r *collegeMongoRepository) FindByUserID(ctx context.Context, userID string) (*model.College, error) {
	objectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(collegeCollection).FindOne(ctx, bson.M{"userId": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var college model.College
	if err := result.Decode(&college); err != nil {
		return nil, err
	}

	return &college, nil
}

func (r *collegeMongoRepository) List(ctx context.Context, params FilterCollegesParams) ([]*model.College, error) {
	findOptions := options.Find()

	limit := params.Limit
	if limit == 0 {
		limit = 10
	}
	findOptions.SetLimit(limit)

	if params.Skip > 0 {
		findOptions.SetSkip(params.Skip)
	}

	if params.Search != "" {
		findOptions.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
		findOptions.SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	} else {
		findOptions.SetSort(bson.D{{Key: "name", Value: 1}})
	}

	cursor, err := r.db.Collection(collegeCollection).Find(ctx, collegeFilter(params), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var colleges []*model.College
	for cursor.Next(ctx) {
		var college model.College
		if err := cursor.Decode(&college); err != nil {
			return nil, err
		}
		colleges = append(colleges, &college)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

func (r *collegeMongoRepository) Count(ctx context.Context, params FilterCollegesParams) (int64, error) {
	return r.db.Collection(collegeCollection).CountDocuments(ctx, collegeFilter(params))
}

func (r *collegeMongoRepository) UpdateProfile(
	ctx context.Context,
	id bson.ObjectID,
	params UpdateCollegeParams,
) (*model.College, error) {
	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.ContactEmail != nil {
		updateMap["contactEmail"] = *params.ContactEmail
	}
	if params.Phone != nil {
		updateMap["phone"] = *params.Phone
	}
	if params.Website != nil {
		updateMap["website"] = *params.Website
	}
	if params.Address != nil {
		updateMap["address"] = *params.Address
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no college fields to update")
	}

	updateMap["updatedAt"] = time.Now()

	result := r.db.Collection(collegeCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var college model.College
	if err := result.Decode(&college); err != nil {
		return nil, err
	}

	return &college, nil
}

func collegeFilter(params FilterCollegesParams) bson.M {
	filter := bson.M{}
	if params.Verified != nil {
		filter["verified"] = *params.Verified
	}
	if params.Search != "" {
		filter["$text"] = bson.M{"$search": params.Search}
	}

	return filter
}
