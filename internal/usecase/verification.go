package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
)

// VerificationUsecase governs the verification state machines for students,
// achievements and projects.
//
// All three operations are idempotent: re-issuing the current status succeeds
// (refreshing the timestamp) rather than erroring. Racing writers resolve
// last-write-wins; a conflicting terminal overwrite is logged, not serialized.
type VerificationUsecase interface {
	// VerifyStudent marks the student as verified by the college. If the
	// student is unaffiliated, the first verification also assigns the
	// college. Returns only the fields relevant to the verifier.
	VerifyStudent(ctx context.Context, college *model.College, studentID string) (*StudentVerification, error)

	// SetAchievementStatus transitions an achievement to verified or rejected.
	SetAchievementStatus(
		ctx context.Context,
		college *model.College,
		achievementID string,
		status model.VerificationStatus,
	) (*model.Achievement, error)

	// SetProjectStatus transitions a project to verified or rejected. The write
	// always stores the canonical status value regardless of how the document
	// encoded "pending" on disk.
	SetProjectStatus(
		ctx context.Context,
		college *model.College,
		projectID string,
		status model.VerificationStatus,
	) (*model.Project, error)
}

// StudentVerification is the deliberately narrow result of VerifyStudent; the
// full student document is never returned to the verifying college.
type StudentVerification struct {
	ID                  string `json:"_id"`
	IsVerifiedByCollege bool   `json:"isVerifiedByCollege"`
}

type verificationUsecase struct {
	studentRepo     repository.StudentRepository
	achievementRepo repository.AchievementRepository
	projectRepo     repository.ProjectRepository
	logger          *zerolog.Logger
}

// NewVerificationUsecase creates a new VerificationUsecase instance.
func NewVerificationUsecase(
	studentRepo repository.StudentRepository,
	achievementRepo repository.AchievementRepository,
	projectRepo repository.ProjectRepository,
	logger *zerolog.Logger,
) VerificationUsecase {
	return &verificationUsecase{
		studentRepo:     studentRepo,
		achievementRepo: achievementRepo,
		projectRepo:     projectRepo,
		logger:          logger,
	}
}

func (u *verificationUsecase) VerifyStudent(
	ctx context.Context,
	college *model.College,
	studentID string,
) (*StudentVerification, error) {
	student, err := u.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	if err := checkCollegeOwnership(college, student); err != nil {
		return nil, err
	}

	updated, err := u.studentRepo.SetVerified(ctx, student.ID, college.ID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	return &StudentVerification{
		ID:                  updated.ID.Hex(),
		IsVerifiedByCollege: updated.IsVerifiedByCollege,
	}, nil
}

func (u *verificationUsecase) SetAchievementStatus(
	ctx context.Context,
	college *model.College,
	achievementID string,
	status model.VerificationStatus,
) (*model.Achievement, error) {
	if status != model.VerificationVerified && status != model.VerificationRejected {
		return nil, ErrInvalidStatus
	}

	achievement, err := u.achievementRepo.FindByID(ctx, achievementID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	student, err := u.studentRepo.FindByID(ctx, achievement.StudentID.Hex())
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	if err := checkCollegeOwnership(college, student); err != nil {
		return nil, err
	}

	u.warnOnConflict(achievement.VerificationStatus, status, "achievement", achievementID)

	return u.achievementRepo.SetStatus(ctx, achievement.ID, status, verifierRef(college, status))
}

func (u *verificationUsecase) SetProjectStatus(
	ctx context.Context,
	college *model.College,
	projectID string,
	status model.VerificationStatus,
) (*model.Project, error) {
	if status != model.VerificationVerified && status != model.VerificationRejected {
		return nil, ErrInvalidStatus
	}

	project, err := u.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	student, err := u.studentRepo.FindByID(ctx, project.StudentID.Hex())
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	if err := checkCollegeOwnership(college, student); err != nil {
		return nil, err
	}

	u.warnOnConflict(project.VerificationStatus, status, "project", projectID)

	return u.projectRepo.SetStatus(ctx, project.ID, status, verifierRef(college, status))
}

// warnOnConflict logs when a reviewed item is re-reviewed to a different
// outcome. The overwrite itself is allowed (last-write-wins).
func (u *verificationUsecase) warnOnConflict(current, requested model.VerificationStatus, entity, id string) {
	if current != model.VerificationPending && current != requested {
		u.logger.Warn().
			Str("entity", entity).
			Str("id", id).
			Str("from", string(current)).
			Str("to", string(requested)).
			Msg("overwriting a previously reviewed verification status")
	}
}

// checkCollegeOwnership enforces the structural ownership rule: a college may
// only act on a student whose collegeId is unset or equals its own id.
func checkCollegeOwnership(college *model.College, student *model.Student) error {
	if student.CollegeID != nil && *student.CollegeID != college.ID {
		return ErrForbidden
	}

	return nil
}

// verifiedBy is set if and only if the transition verifies; a rejection always
// clears it.
func verifierRef(college *model.College, status model.VerificationStatus) *bson.ObjectID {
	if status == model.VerificationVerified {
		return &college.ID
	}

	return nil
}
