package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
)

// AchievementRepository defines the interface for achievement-related database operations.
type AchievementRepository interface {
	FindByID(ctx context.Context, id string) (*model.Achievement, error)
	ListByStudent(ctx context.Context, studentID bson.ObjectID) ([]*model.Achievement, error)
	ListPending(ctx context.Context, studentIDs []bson.ObjectID, limit, skip int64) ([]*model.Achievement, error)
	CountPending(ctx context.Context, studentIDs []bson.ObjectID) (int64, error)
	CountVerifiedBy(ctx context.Context, collegeID bson.ObjectID) (int64, error)
	SetStatus(
		ctx context.Context,
		id bson.ObjectID,
		status model.VerificationStatus,
		verifiedBy *bson.ObjectID,
	) (*model.Achievement, error)
}

const achievementCollection = "achievements"

type achievementMongoRepository struct {
	db *mongo.Database
}

// NewAchievementMongoRepository creates a new MongoDB repository for achievements.
func NewAchievementMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) AchievementRepository {
	collection := db.Collection(achievementCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "verificationStatus", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "verifiedBy", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create achievement indexes")
	}

	return &achievementMongoRepository{db: db}
}

func (r *achievementMongoRepository) FindByID(ctx context.Context, id string) (*model.Achievement, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(achievementCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var achievement model.Achievement
	if err := result.Decode(&achievement); err != nil {
		return nil, err
	}

	return &achievement, nil
}

func (r *achievementMongoRepository) ListByStudent(
	ctx context.Context,
	studentID bson.ObjectID,
) ([]*model.Achievement, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection(achievementCollection).Find(ctx, bson.M{"studentId": studentID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var achievements []*model.Achievement
	for cursor.Next(ctx) {
		var achievement model.Achievement
		if err := cursor.Decode(&achievement); err != nil {
			return nil, err
		}
		achievements = append(achievements, &achievement)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return achievements, nil
}

func (r *achievementMongoRepository) ListPending(
	ctx context.Context,
	studentIDs []bson.ObjectID,
	limit, skip int64,
) ([]*model.Achievement, error) {
	// _id breaks createdAt ties so pagination stays stable across queries.
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	if skip > 0 {
		findOptions.SetSkip(skip)
	}

	cursor, err := r.db.Collection(achievementCollection).Find(ctx, pendingAchievementFilter(studentIDs), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var achievements []*model.Achievement
	for cursor.Next(ctx) {
		var achievement model.Achievement
		if err := cursor.Decode(&achievement); err != nil {
			return nil, err
		}
		achievements = append(achievements, &achievement)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return achievements, nil
}

func (r *achievementMongoRepository) CountPending(ctx context.Context, studentIDs []bson.ObjectID) (int64, error) {
	return r.db.Collection(achievementCollection).CountDocuments(ctx, pendingAchievementFilter(studentIDs))
}

func (r *achievementMongoRepository) CountVerifiedBy(ctx context.Context, collegeID bson.ObjectID) (int64, error) {
	filter := bson.M{
		"verifiedBy":         collegeID,
		"verificationStatus": model.VerificationVerified,
	}

	return r.db.Collection(achievementCollection).CountDocuments(ctx, filter)
}

func (r *achievementMongoRepository) SetStatus(
	ctx context.Context,
	id bson.ObjectID,
	status model.VerificationStatus,
	verifiedBy *bson.ObjectID,
) (*model.Achievement, error) {
	update := bson.M{
		"$set": bson.M{
			"verificationStatus": status,
			"updatedAt":          time.Now(),
		},
	}
	if verifiedBy != nil {
		update["$set"].(bson.M)["verifiedBy"] = *verifiedBy
	} else {
		update["$unset"] = bson.M{"verifiedBy": ""}
	}

	result := r.db.Collection(achievementCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var achievement model.Achievement
	if err := result.Decode(&achievement); err != nil {
		return nil, err
	}

	return &achievement, nil
}

// Achievements have no legacy status ambiguity; only the canonical value counts
// as pending.
func pendingAchievementFilter(studentIDs []bson.ObjectID) bson.M {
	return bson.M{
		"studentId":          bson.M{"$in": studentIDs},
		"verificationStatus": model.VerificationPending,
	}
}
