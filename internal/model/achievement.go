package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Achievement is a student-submitted credential awaiting college review.
// VerifiedBy is set if and only if VerificationStatus is "verified".
type Achievement struct {
	ID                 bson.ObjectID      `bson:"_id,omitempty"        json:"_id"`
	StudentID          bson.ObjectID      `bson:"studentId"            json:"studentId"`
	Title              string             `bson:"title"                json:"title"`
	Description        string             `bson:"description"          json:"description,omitempty"`
	Date               time.Time          `bson:"date"                 json:"date"`
	ProofURL           string             `bson:"proofUrl"             json:"proofUrl,omitempty"`
	Skills             []bson.ObjectID    `bson:"skills"               json:"skills"`
	VerificationStatus VerificationStatus `bson:"verificationStatus"   json:"verificationStatus"`
	VerifiedBy         *bson.ObjectID     `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"            json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt"            json:"updatedAt"`
}
