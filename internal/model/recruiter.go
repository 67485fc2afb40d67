package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Recruiter represents a company account that posts opportunities.
type Recruiter struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      bson.ObjectID `bson:"userId"        json:"userId"`
	CompanyName string        `bson:"companyName"   json:"companyName"`
	Logo        string        `bson:"logo"          json:"logo,omitempty"`
	Website     string        `bson:"website"       json:"website,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt"     json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"     json:"updatedAt"`
}

// Opportunity is a job or internship posted by a recruiter.
type Opportunity struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	RecruiterID bson.ObjectID   `bson:"recruiterId"   json:"recruiterId"`
	Title       string          `bson:"title"         json:"title"`
	Type        string          `bson:"type"          json:"type"`
	Location    string          `bson:"location"      json:"location"`
	Description string          `bson:"description"   json:"description,omitempty"`
	SalaryMin   int             `bson:"salaryMin"     json:"salaryMin,omitempty"`
	SalaryMax   int             `bson:"salaryMax"     json:"salaryMax,omitempty"`
	Skills      []bson.ObjectID `bson:"skills"        json:"skills"`
	CreatedAt   time.Time       `bson:"createdAt"     json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt"     json:"updatedAt"`
}
