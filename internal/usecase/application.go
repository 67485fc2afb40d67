package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
)

// applicationTransitions is the single source of truth for reachable
// application states. Terminal states have no entry. The pending→withdrawn
// edge is a student action and is only reachable through Withdraw.
var applicationTransitions = map[model.ApplicationStatus][]model.ApplicationStatus{
	model.ApplicationPending: {
		model.ApplicationShortlisted,
		model.ApplicationRejected,
		model.ApplicationWithdrawn,
	},
	model.ApplicationShortlisted: {
		model.ApplicationAccepted,
		model.ApplicationRejected,
	},
}

// CanTransition reports whether to is reachable from from. Self-loops are not
// in the table: re-issuing the current status is an invalid transition.
func CanTransition(from, to model.ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// MatchScorer computes a 0-100 applicant-to-opportunity fit score from skill
// sets. It runs exactly once, at application creation.
type MatchScorer func(studentSkills, opportunitySkills []bson.ObjectID) int

// SkillOverlapScorer scores by the share of required skills the student has.
func SkillOverlapScorer(studentSkills, opportunitySkills []bson.ObjectID) int {
	if len(opportunitySkills) == 0 {
		return 0
	}

	owned := make(map[bson.ObjectID]struct{}, len(studentSkills))
	for _, id := range studentSkills {
		owned[id] = struct{}{}
	}

	matched := 0
	for _, id := range opportunitySkills {
		if _, ok := owned[id]; ok {
			matched++
		}
	}

	return matched * 100 / len(opportunitySkills)
}

// ApplicationNotifier is the external delivery collaborator told about status
// changes. Implementations must not block the transition.
type ApplicationNotifier interface {
	ApplicationStatusChanged(ctx context.Context, application *model.Application)
}

// ApplicationUsecase governs the application lifecycle: creation by students,
// status transitions by the recruiter owning the target opportunity, and
// withdrawal by the applicant.
type ApplicationUsecase interface {
	// UpdateStatus transitions an application on behalf of a recruiter. The
	// transition table is enforced here regardless of what the caller's UI
	// permits. No field other than status is mutated.
	UpdateStatus(
		ctx context.Context,
		recruiter *model.Recruiter,
		applicationID string,
		newStatus model.ApplicationStatus,
	) (*model.Application, error)

	// List returns the recruiter's applications, optionally filtered by exact
	// status, sorted by appliedAt descending.
	List(
		ctx context.Context,
		recruiter *model.Recruiter,
		status *model.ApplicationStatus,
		limit, skip int64,
	) ([]*ApplicationDetail, int64, error)

	// Get returns a single application owned by the recruiter.
	Get(ctx context.Context, recruiter *model.Recruiter, applicationID string) (*ApplicationDetail, error)

	// Apply creates a pending application for the student, computing the match
	// score once. A non-withdrawn application for the same opportunity blocks.
	Apply(ctx context.Context, student *model.Student, params ApplyParams) (*model.Application, error)

	// Withdraw moves the student's own pending application to withdrawn,
	// freeing the opportunity slot.
	Withdraw(ctx context.Context, student *model.Student, applicationID string) (*model.Application, error)

	// ListMine returns the student's own applications, newest first.
	ListMine(ctx context.Context, student *model.Student, limit, skip int64) ([]*model.Application, int64, error)
}

// ApplyParams defines the parameters for creating an application.
type ApplyParams struct {
	OpportunityID string
	ResumeURL     string
	CoverLetter   string
}

// ApplicationDetail is an application enriched with the applicant's display
// fields and the opportunity headline, joined at read time.
type ApplicationDetail struct {
	*model.Application
	Student     *StudentRef     `json:"student"`
	Opportunity *OpportunityRef `json:"opportunity"`
}

// OpportunityRef holds the opportunity display fields exposed on enriched rows.
type OpportunityRef struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

type applicationUsecase struct {
	applicationRepo repository.ApplicationRepository
	opportunityRepo repository.OpportunityRepository
	studentRepo     repository.StudentRepository
	scorer          MatchScorer
	notifier        ApplicationNotifier
}

// NewApplicationUsecase creates a new ApplicationUsecase instance.
func NewApplicationUsecase(
	applicationRepo repository.ApplicationRepository,
	opportunityRepo repository.OpportunityRepository,
	studentRepo repository.StudentRepository,
	scorer MatchScorer,
	notifier ApplicationNotifier,
) ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		opportunityRepo: opportunityRepo,
		studentRepo:     studentRepo,
		scorer:          scorer,
		notifier:        notifier,
	}
}

func (u *applicationUsecase) UpdateStatus(
	ctx context.Context,
	recruiter *model.Recruiter,
	applicationID string,
	newStatus model.ApplicationStatus,
) (*model.Application, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	application, err := u.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	opportunity, err := u.opportunityRepo.FindByID(ctx, application.OpportunityID.Hex())
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	if opportunity.RecruiterID != recruiter.ID {
		return nil, ErrForbidden
	}

	if !CanTransition(application.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	updated, err := u.applicationRepo.UpdateStatus(ctx, application.ID, newStatus)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	if u.notifier != nil {
		u.notifier.ApplicationStatusChanged(ctx, updated)
	}

	return updated, nil
}

func (u *applicationUsecase) List(
	ctx context.Context,
	recruiter *model.Recruiter,
	status *model.ApplicationStatus,
	limit, skip int64,
) ([]*ApplicationDetail, int64, error) {
	opportunityIDs, err := u.opportunityRepo.IDsByRecruiter(ctx, recruiter.ID)
	if err != nil {
		return nil, 0, err
	}

	// An empty $in matches nothing, which is exactly right for a recruiter
	// with no opportunities.
	params := repository.FilterApplicationsParams{
		OpportunityIDs: opportunityIDs,
		Status:         status,
		Limit:          limit,
		Skip:           skip,
	}
	if params.OpportunityIDs == nil {
		params.OpportunityIDs = []bson.ObjectID{}
	}

	applications, err := u.applicationRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.applicationRepo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	details, err := u.enrich(ctx, applications)
	if err != nil {
		return nil, 0, err
	}

	return details, total, nil
}

func (u *applicationUsecase) Get(
	ctx context.Context,
	recruiter *model.Recruiter,
	applicationID string,
) (*ApplicationDetail, error) {
	application, err := u.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	opportunity, err := u.opportunityRepo.FindByID(ctx, application.OpportunityID.Hex())
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	if opportunity.RecruiterID != recruiter.ID {
		return nil, ErrForbidden
	}

	details, err := u.enrich(ctx, []*model.Application{application})
	if err != nil {
		return nil, err
	}

	return details[0], nil
}

func (u *applicationUsecase) Apply(
	ctx context.Context,
	student *model.Student,
	params ApplyParams,
) (*model.Application, error) {
	opportunity, err := u.opportunityRepo.FindByID(ctx, params.OpportunityID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	exists, err := u.applicationRepo.HasActive(ctx, student.ID, opportunity.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateApplication
	}

	score := u.scorer(student.Skills, opportunity.Skills)

	return u.applicationRepo.Create(ctx, &model.Application{
		StudentID:     student.ID,
		OpportunityID: opportunity.ID,
		Status:        model.ApplicationPending,
		MatchScore:    &score,
		ResumeURL:     params.ResumeURL,
		CoverLetter:   params.CoverLetter,
	})
}

func (u *applicationUsecase) Withdraw(
	ctx context.Context,
	student *model.Student,
	applicationID string,
) (*model.Application, error) {
	application, err := u.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	if application.StudentID != student.ID {
		return nil, ErrForbidden
	}

	if !CanTransition(application.Status, model.ApplicationWithdrawn) {
		return nil, ErrInvalidTransition
	}

	return u.applicationRepo.UpdateStatus(ctx, application.ID, model.ApplicationWithdrawn)
}

func (u *applicationUsecase) ListMine(
	ctx context.Context,
	student *model.Student,
	limit, skip int64,
) ([]*model.Application, int64, error) {
	params := repository.FilterApplicationsParams{
		StudentID: &student.ID,
		Limit:     limit,
		Skip:      skip,
	}

	applications, err := u.applicationRepo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.applicationRepo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// enrich joins applicant and opportunity display fields onto a page of
// applications with two batched lookups.
func (u *applicationUsecase) enrich(
	ctx context.Context,
	applications []*model.Application,
) ([]*ApplicationDetail, error) {
	studentIDSet := make(map[bson.ObjectID]struct{})
	opportunityIDSet := make(map[bson.ObjectID]struct{})
	for _, application := range applications {
		studentIDSet[application.StudentID] = struct{}{}
		opportunityIDSet[application.OpportunityID] = struct{}{}
	}

	students, err := u.studentRepo.FindByIDs(ctx, setToSlice(studentIDSet))
	if err != nil {
		return nil, err
	}

	opportunities, err := u.opportunityRepo.FindByIDs(ctx, setToSlice(opportunityIDSet))
	if err != nil {
		return nil, err
	}

	studentRefs := make(map[bson.ObjectID]*StudentRef, len(students))
	for _, student := range students {
		studentRefs[student.ID] = &StudentRef{
			ID:               student.ID.Hex(),
			FirstName:        student.FirstName,
			LastName:         student.LastName,
			EnrollmentNumber: student.EnrollmentNumber,
		}
	}

	opportunityRefs := make(map[bson.ObjectID]*OpportunityRef, len(opportunities))
	for _, opportunity := range opportunities {
		opportunityRefs[opportunity.ID] = &OpportunityRef{
			ID:       opportunity.ID.Hex(),
			Title:    opportunity.Title,
			Type:     opportunity.Type,
			Location: opportunity.Location,
		}
	}

	details := make([]*ApplicationDetail, 0, len(applications))
	for _, application := range applications {
		details = append(details, &ApplicationDetail{
			Application: application,
			Student:     studentRefs[application.StudentID],
			Opportunity: opportunityRefs[application.OpportunityID],
		})
	}

	return details, nil
}
