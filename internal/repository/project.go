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

// ProjectRepository defines the interface for project-related database operations.
//
// Projects predate the verificationStatus field, so the collection holds three
// on-disk encodings of "pending": the literal value, a missing field, and an
// explicit null. Every read path here treats the three as equivalent and
// normalizes decoded documents to the canonical value; every write sets the
// canonical value, so the ambiguity shrinks over time and never crosses the
// repository boundary.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*model.Project, error)
	ListByStudent(ctx context.Context, studentID bson.ObjectID) ([]*model.Project, error)
	ListPending(ctx context.Context, studentIDs []bson.ObjectID, limit, skip int64) ([]*model.Project, error)
	CountPending(ctx context.Context, studentIDs []bson.ObjectID) (int64, error)
	SetStatus(
		ctx context.Context,
		id bson.ObjectID,
		status model.VerificationStatus,
		verifiedBy *bson.ObjectID,
	) (*model.Project, error)
}

const projectCollection = "projects"

type projectMongoRepository struct {
	db *mongo.Database
}

// NewProjectMongoRepository creates a new MongoDB repository for projects.
func NewProjectMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) ProjectRepository {
	collection := db.Collection(projectCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "studentId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "verificationStatus", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create project indexes")
	}

	return &projectMongoRepository{db: db}
}

func (r *projectMongoRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(projectCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var project model.Project
	if err := result.Decode(&project); err != nil {
		return nil, err
	}

	return normalizeProject(&project), nil
}

func (r *projectMongoRepository) ListByStudent(ctx context.Context, studentID bson.ObjectID) ([]*model.Project, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection(projectCollection).Find(ctx, bson.M{"studentId": studentID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeProjects(ctx, cursor)
}

func (r *projectMongoRepository) ListPending(
	ctx context.Context,
	studentIDs []bson.ObjectID,
	limit, skip int64,
) ([]*model.Project, error) {
	// _id breaks createdAt ties so pagination stays stable across queries.
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	if skip > 0 {
		findOptions.SetSkip(skip)
	}

	cursor, err := r.db.Collection(projectCollection).Find(ctx, pendingProjectFilter(studentIDs), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeProjects(ctx, cursor)
}

func (r *projectMongoRepository) CountPending(ctx context.Context, studentIDs []bson.ObjectID) (int64, error) {
	return r.db.Collection(projectCollection).CountDocuments(ctx, pendingProjectFilter(studentIDs))
}

func (r *projectMongoRepository) SetStatus(
	ctx context.Context,
	id bson.ObjectID,
	status model.VerificationStatus,
	verifiedBy *bson.ObjectID,
) (*model.Project, error) {
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

	result := r.db.Collection(projectCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var project model.Project
	if err := result.Decode(&project); err != nil {
		return nil, err
	}

	return normalizeProject(&project), nil
}

// pendingProjectFilter matches all three legacy encodings of "pending".
func pendingProjectFilter(studentIDs []bson.ObjectID) bson.M {
	return bson.M{
		"studentId": bson.M{"$in": studentIDs},
		"$or": []bson.M{
			{"verificationStatus": model.VerificationPending},
			{"verificationStatus": bson.M{"$exists": false}},
			{"verificationStatus": nil},
		},
	}
}

func normalizeProject(project *model.Project) *model.Project {
	if project.VerificationStatus == "" {
		project.VerificationStatus = model.VerificationPending
	}

	return project
}

func decodeProjects(ctx context.Context, cursor *mongo.Cursor) ([]*model.Project, error) {
	var projects []*model.Project
	for cursor.Next(ctx) {
		var project model.Project
		if err := cursor.Decode(&project); err != nil {
			return nil, err
		}
		projects = append(projects, normalizeProject(&project))
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}
