package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Application links one student to one opportunity. A student may hold at most
// one non-withdrawn application per opportunity; withdrawing frees the slot.
// MatchScore is computed once at creation and never recomputed afterwards.
type Application struct {
	ID            bson.ObjectID     `bson:"_id,omitempty"        json:"_id"`
	StudentID     bson.ObjectID     `bson:"studentId"            json:"studentId"`
	OpportunityID bson.ObjectID     `bson:"opportunityId"        json:"opportunityId"`
	Status        ApplicationStatus `bson:"status"               json:"status"`
	MatchScore    *int              `bson:"matchScore,omitempty" json:"matchScore,omitempty"`
	ResumeURL     string            `bson:"resumeUrl"            json:"resumeUrl,omitempty"`
	CoverLetter   string            `bson:"coverLetter"          json:"coverLetter,omitempty"`
	AppliedAt     time.Time         `bson:"appliedAt"            json:"appliedAt"`
	CreatedAt     time.Time         `bson:"createdAt"            json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt"            json:"updatedAt"`
}
