package usecase

import (
	"context"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
	"github.com/simranbali-ace04/CampusHubX/shared/auth"
)

// OwnerResolver maps an authenticated principal to the domain record it owns.
// Callers must resolve once per request and never cache across requests, since
// profile data can change between requests.
type OwnerResolver interface {
	ResolveCollege(ctx context.Context, principal *auth.Principal) (*model.College, error)
	ResolveStudent(ctx context.Context, principal *auth.Principal) (*model.Student, error)
	ResolveRecruiter(ctx context.Context, principal *auth.Principal) (*model.Recruiter, error)
}

type ownerResolver struct {
	collegeRepo   repository.CollegeRepository
	studentRepo   repository.StudentRepository
	recruiterRepo repository.RecruiterRepository
}

// NewOwnerResolver creates a new OwnerResolver instance.
func NewOwnerResolver(
	collegeRepo repository.CollegeRepository,
	studentRepo repository.StudentRepository,
	recruiterRepo repository.RecruiterRepository,
) OwnerResolver {
	return &ownerResolver{
		collegeRepo:   collegeRepo,
		studentRepo:   studentRepo,
		recruiterRepo: recruiterRepo,
	}
}

func (r *ownerResolver) ResolveCollege(ctx context.Context, principal *auth.Principal) (*model.College, error) {
	college, err := r.collegeRepo.FindByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}

	return college, nil
}

func (r *ownerResolver) ResolveStudent(ctx context.Context, principal *auth.Principal) (*model.Student, error) {
	student, err := r.studentRepo.FindByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}

	return student, nil
}

func (r *ownerResolver) ResolveRecruiter(ctx context.Context, principal *auth.Principal) (*model.Recruiter, error) {
	recruiter, err := r.recruiterRepo.FindByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, asNotFound(err, ErrProfileNotFound)
	}

	return recruiter, nil
}
