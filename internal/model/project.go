package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Project is a student-submitted project awaiting college review.
//
// Historic documents encode "pending" three ways: the literal value, a missing
// verificationStatus field, or an explicit null. The repository normalizes all
// three to VerificationPending on read and only ever writes the canonical
// value, so the ambiguity never leaves the storage layer.
type Project struct {
	ID                 bson.ObjectID      `bson:"_id,omitempty"                json:"_id"`
	StudentID          bson.ObjectID      `bson:"studentId"                    json:"studentId"`
	Title              string             `bson:"title"                        json:"title"`
	Description        string             `bson:"description"                  json:"description,omitempty"`
	RepoURL            string             `bson:"repoUrl"                      json:"repoUrl,omitempty"`
	LiveURL            string             `bson:"liveUrl"                      json:"liveUrl,omitempty"`
	Skills             []bson.ObjectID    `bson:"skills"                       json:"skills"`
	VerificationStatus VerificationStatus `bson:"verificationStatus,omitempty" json:"verificationStatus"`
	VerifiedBy         *bson.ObjectID     `bson:"verifiedBy,omitempty"         json:"verifiedBy,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"                    json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt"                    json:"updatedAt"`
}
