package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Student represents a student profile. CollegeID is nil while the student is
// unaffiliated; the first enrollment verification by a college also assigns it.
type Student struct {
	ID                  bson.ObjectID   `bson:"_id,omitempty"       json:"_id"`
	UserID              bson.ObjectID   `bson:"userId"              json:"userId"`
	FirstName           string          `bson:"firstName"           json:"firstName"`
	LastName            string          `bson:"lastName"            json:"lastName"`
	Email               string          `bson:"email"               json:"email"`
	EnrollmentNumber    string          `bson:"enrollmentNumber"    json:"enrollmentNumber"`
	ProfilePicture      string          `bson:"profilePicture"      json:"profilePicture,omitempty"`
	CollegeID           *bson.ObjectID  `bson:"collegeId,omitempty" json:"collegeId,omitempty"`
	IsVerifiedByCollege bool            `bson:"isVerifiedByCollege" json:"isVerifiedByCollege"`
	Skills              []bson.ObjectID `bson:"skills"              json:"skills"`
	CreatedAt           time.Time       `bson:"createdAt"           json:"createdAt"`
	UpdatedAt           time.Time       `bson:"updatedAt"           json:"updatedAt"`
}

// Skill is a tag referenced by students, achievements, projects and opportunities.
type Skill struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string        `bson:"name"          json:"name"`
	Category string        `bson:"category"      json:"category,omitempty"`
}
