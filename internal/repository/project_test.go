package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
)

func TestNormalizeProject(t *testing.T) {
	t.Run("empty status becomes pending", func(t *testing.T) {
		project := normalizeProject(&model.Project{Title: "Legacy"})
		assert.Equal(t, model.VerificationPending, project.VerificationStatus)
	})

	t.Run("canonical statuses are untouched", func(t *testing.T) {
		for _, status := range []model.VerificationStatus{
			model.VerificationPending,
			model.VerificationVerified,
			model.VerificationRejected,
		} {
			project := normalizeProject(&model.Project{VerificationStatus: status})
			assert.Equal(t, status, project.VerificationStatus)
		}
	})
}

func TestPendingProjectFilter(t *testing.T) {
	studentIDs := []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()}
	filter := pendingProjectFilter(studentIDs)

	assert.Equal(t, bson.M{"$in": studentIDs}, filter["studentId"])

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 3)

	// All three on-disk encodings of pending must be covered: the literal
	// value, a missing field and an explicit null.
	assert.Equal(t, bson.M{"verificationStatus": model.VerificationPending}, or[0])
	assert.Equal(t, bson.M{"verificationStatus": bson.M{"$exists": false}}, or[1])
	assert.Equal(t, bson.M{"verificationStatus": nil}, or[2])
}
