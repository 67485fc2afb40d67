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

// StudentRepository defines the interface for student-related database operations.
type StudentRepository interface {
	FindByID(ctx context.Context, id string) (*model.Student, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Student, error)
	FindByUserID(ctx context.Context, userID string) (*model.Student, error)
	ListByCollege(ctx context.Context, collegeID bson.ObjectID, limit, skip int64) ([]*model.Student, error)
	CountByCollege(ctx context.Context, collegeID bson.ObjectID, verifiedOnly bool) (int64, error)
	IDsByCollege(ctx context.Context, collegeID bson.ObjectID) ([]bson.ObjectID, error)
	SetVerified(ctx context.Context, id, collegeID bson.ObjectID) (*model.Student, error)
}

const studentCollection = "students"

type studentMongoRepository struct {
	db *mongo.Database
}

// NewStudentMongoRepository creates a new MongoDB repository for students.
func NewStudentMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) StudentRepository {
	collection := db.Collection(studentCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "collegeId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "enrollmentNumber", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create student indexes")
	}

	return &studentMongoRepository{db: db}
}

func (r *studentMongoRepository) FindByID(ctx context.Context, id string) (*model.Student, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(studentCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var student model.Student
	if err := result.Decode(&student); err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentMongoRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.db.Collection(studentCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []*model.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentMongoRepository) FindByUserID(ctx context.Context, userID string) (*model.Student, error) {
	objectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(studentCollection).FindOne(ctx, bson.M{"userId": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var student model.Student
	if err := result.Decode(&student); err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentMongoRepository) ListByCollege(
	ctx context.Context,
	collegeID bson.ObjectID,
	limit, skip int64,
) ([]*model.Student, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "enrollmentNumber", Value: 1}}).
		SetLimit(limit)

	if skip > 0 {
		findOptions.SetSkip(skip)
	}

	cursor, err := r.db.Collection(studentCollection).Find(ctx, bson.M{"collegeId": collegeID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []*model.Student
	for cursor.Next(ctx) {
		var student model.Student
		if err := cursor.Decode(&student); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentMongoRepository) CountByCollege(
	ctx context.Context,
	collegeID bson.ObjectID,
	verifiedOnly bool,
) (int64, error) {
	filter := bson.M{"collegeId": collegeID}
	if verifiedOnly {
		filter["isVerifiedByCollege"] = true
	}

	return r.db.Collection(studentCollection).CountDocuments(ctx, filter)
}

func (r *studentMongoRepository) IDsByCollege(ctx context.Context, collegeID bson.ObjectID) ([]bson.ObjectID, error) {
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := r.db.Collection(studentCollection).Find(ctx, bson.M{"collegeId": collegeID}, findOptions)
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

func (r *studentMongoRepository) SetVerified(ctx context.Context, id, collegeID bson.ObjectID) (*model.Student, error) {
	update := bson.M{
		"$set": bson.M{
			"isVerifiedByCollege": true,
			"collegeId":           collegeID,
			"updatedAt":           time.Now(),
		},
	}

	result := r.db.Collection(studentCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var student model.Student
	if err := result.Decode(&student); err != nil {
		return nil, err
	}

	return &student, nil
}
