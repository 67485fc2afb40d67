package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// College represents an institution that verifies its students' credentials.
// Verified is the platform-level flag and is distinct from a student's
// isVerifiedByCollege; it can never be set through the profile endpoints.
type College struct {
	ID           bson.ObjectID  `bson:"_id,omitempty"  json:"_id"`
	UserID       bson.ObjectID  `bson:"userId"         json:"userId"`
	Name         string         `bson:"name"           json:"name"`
	Code         string         `bson:"code"           json:"code"`
	ContactEmail string         `bson:"contactEmail"   json:"contactEmail"`
	Phone        string         `bson:"phone"          json:"phone"`
	Website      string         `bson:"website"        json:"website,omitempty"`
	Address      CollegeAddress `bson:"address"        json:"address"`
	Verified     bool           `bson:"verified"       json:"verified"`
	CreatedAt    time.Time      `bson:"createdAt"      json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt"      json:"updatedAt"`
}

// CollegeAddress is the postal address of a college.
type CollegeAddress struct {
	Street  string `bson:"street"  json:"street"`
	City    string `bson:"city"    json:"city"`
	State   string `bson:"state"   json:"state"`
	Pincode string `bson:"pincode" json:"pincode"`
}
