package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
)

// SkillRepository defines the interface for skill reference lookups.
type SkillRepository interface {
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Skill, error)
}

const skillCollection = "skills"

type skillMongoRepository struct {
	db *mongo.Database
}

// NewSkillMongoRepository creates a new MongoDB repository for skills.
func NewSkillMongoRepository(db *mongo.Database) SkillRepository {
	return &skillMongoRepository{db: db}
}

func (r *skillMongoRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.db.Collection(skillCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var skills []*model.Skill
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, err
	}

	return skills, nil
}
