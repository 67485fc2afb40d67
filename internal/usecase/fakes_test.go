package usecase

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
)

// In-memory repository fakes honoring the same contracts as the Mongo
// implementations: lookups fail with mongo.ErrNoDocuments, malformed hex ids
// fail with bson.ErrInvalidHex, and the project fake normalizes the legacy
// empty status to the canonical pending value on every read.

type fakeStudentRepo struct {
	students []*model.Student
}

func (f *fakeStudentRepo) add(student *model.Student) *model.Student {
	if student.ID.IsZero() {
		student.ID = bson.NewObjectID()
	}
	f.students = append(f.students, student)
	return student
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id string) (*model.Student, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	for _, student := range f.students {
		if student.ID == objectID {
			return student, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStudentRepo) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]*model.Student, error) {
	wanted := make(map[bson.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var found []*model.Student
	for _, student := range f.students {
		if _, ok := wanted[student.ID]; ok {
			found = append(found, student)
		}
	}
	return found, nil
}

func (f *fakeStudentRepo) FindByUserID(_ context.Context, userID string) (*model.Student, error) {
	for _, student := range f.students {
		if student.UserID.Hex() == userID {
			return student, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStudentRepo) ListByCollege(
	_ context.Context,
	collegeID bson.ObjectID,
	limit, skip int64,
) ([]*model.Student, error) {
	var matched []*model.Student
	for _, student := range f.students {
		if student.CollegeID != nil && *student.CollegeID == collegeID {
			matched = append(matched, student)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].EnrollmentNumber < matched[j].EnrollmentNumber
	})
	return page(matched, limit, skip), nil
}

func (f *fakeStudentRepo) CountByCollege(
	_ context.Context,
	collegeID bson.ObjectID,
	verifiedOnly bool,
) (int64, error) {
	var count int64
	for _, student := range f.students {
		if student.CollegeID == nil || *student.CollegeID != collegeID {
			continue
		}
		if verifiedOnly && !student.IsVerifiedByCollege {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeStudentRepo) IDsByCollege(_ context.Context, collegeID bson.ObjectID) ([]bson.ObjectID, error) {
	var ids []bson.ObjectID
	for _, student := range f.students {
		if student.CollegeID != nil && *student.CollegeID == collegeID {
			ids = append(ids, student.ID)
		}
	}
	return ids, nil
}

func (f *fakeStudentRepo) SetVerified(_ context.Context, id, collegeID bson.ObjectID) (*model.Student, error) {
	for _, student := range f.students {
		if student.ID == id {
			student.IsVerifiedByCollege = true
			student.CollegeID = &collegeID
			student.UpdatedAt = time.Now()
			return student, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeAchievementRepo struct {
	achievements []*model.Achievement
	err          error
}

func (f *fakeAchievementRepo) add(achievement *model.Achievement) *model.Achievement {
	if achievement.ID.IsZero() {
		achievement.ID = bson.NewObjectID()
	}
	f.achievements = append(f.achievements, achievement)
	return achievement
}

func (f *fakeAchievementRepo) FindByID(_ context.Context, id string) (*model.Achievement, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	for _, achievement := range f.achievements {
		if achievement.ID == objectID {
			return achievement, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAchievementRepo) ListByStudent(_ context.Context, studentID bson.ObjectID) ([]*model.Achievement, error) {
	var matched []*model.Achievement
	for _, achievement := range f.achievements {
		if achievement.StudentID == studentID {
			matched = append(matched, achievement)
		}
	}
	return matched, nil
}

func (f *fakeAchievementRepo) ListPending(
	_ context.Context,
	studentIDs []bson.ObjectID,
	limit, skip int64,
) ([]*model.Achievement, error) {
	if f.err != nil {
		return nil, f.err
	}

	var matched []*model.Achievement
	for _, achievement := range f.achievements {
		if achievement.VerificationStatus == model.VerificationPending && containsID(studentIDs, achievement.StudentID) {
			matched = append(matched, achievement)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.Hex() > matched[j].ID.Hex()
	})
	return page(matched, limit, skip), nil
}

func (f *fakeAchievementRepo) CountPending(ctx context.Context, studentIDs []bson.ObjectID) (int64, error) {
	matched, err := f.ListPending(ctx, studentIDs, int64(len(f.achievements)+1), 0)
	return int64(len(matched)), err
}

func (f *fakeAchievementRepo) CountVerifiedBy(_ context.Context, collegeID bson.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}

	var count int64
	for _, achievement := range f.achievements {
		if achievement.VerificationStatus == model.VerificationVerified &&
			achievement.VerifiedBy != nil && *achievement.VerifiedBy == collegeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAchievementRepo) SetStatus(
	_ context.Context,
	id bson.ObjectID,
	status model.VerificationStatus,
	verifiedBy *bson.ObjectID,
) (*model.Achievement, error) {
	for _, achievement := range f.achievements {
		if achievement.ID == id {
			achievement.VerificationStatus = status
			achievement.VerifiedBy = verifiedBy
			achievement.UpdatedAt = time.Now()
			return achievement, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type fakeProjectRepo struct {
	projects []*model.Project
	err      error
}

func (f *fakeProjectRepo) add(project *model.Project) *model.Project {
	if project.ID.IsZero() {
		project.ID = bson.NewObjectID()
	}
	f.projects = append(f.projects, project)
	return project
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id string) (*model.Project, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	for _, project := range f.projects {
		if project.ID == objectID {
			return normalizedProject(project), nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProjectRepo) ListByStudent(_ context.Context, studentID bson.ObjectID) ([]*model.Project, error) {
	var matched []*model.Project
	for _, project := range f.projects {
		if project.StudentID == studentID {
			matched = append(matched, normalizedProject(project))
		}
	}
	return matched, nil
}

func (f *fakeProjectRepo) ListPending(
	_ context.Context,
	studentIDs []bson.ObjectID,
	limit, skip int64,
) ([]*model.Project, error) {
	if f.err != nil {
		return nil, f.err
	}

	var matched []*model.Project
	for _, project := range f.projects {
		pending := project.VerificationStatus == model.VerificationPending || project.VerificationStatus == ""
		if pending && containsID(studentIDs, project.StudentID) {
			matched = append(matched, normalizedProject(project))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.Hex() > matched[j].ID.Hex()
	})
	return page(matched, limit, skip), nil
}

func (f *fakeProjectRepo) CountPending(ctx context.Context, studentIDs []bson.ObjectID) (int64, error) {
	matched, err := f.ListPending(ctx, studentIDs, int64(len(f.projects)+1), 0)
	return int64(len(matched)), err
}

func (f *fakeProjectRepo) SetStatus(
	_ context.Context,
	id bson.ObjectID,
	status model.VerificationStatus,
	verifiedBy *bson.ObjectID,
) (*model.Project, error) {
	for _, project := range f.projects {
		if project.ID == id {
			project.VerificationStatus = status
			project.VerifiedBy = verifiedBy
			project.UpdatedAt = time.Now()
			return project, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func normalizedProject(project *model.Project) *model.Project {
	if project.VerificationStatus == "" {
		normalized := *project
		normalized.VerificationStatus = model.VerificationPending
		return &normalized
	}
	return project
}

type fakeSkillRepo struct {
	skills []*model.Skill
}

func (f *fakeSkillRepo) add(name string) *model.Skill {
	skill := &model.Skill{ID: bson.NewObjectID(), Name: name}
	f.skills = append(f.skills, skill)
	return skill
}

func (f *fakeSkillRepo) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]*model.Skill, error) {
	var found []*model.Skill
	for _, skill := range f.skills {
		if containsID(ids, skill.ID) {
			found = append(found, skill)
		}
	}
	return found, nil
}

type fakeOpportunityRepo struct {
	opportunities []*model.Opportunity
}

func (f *fakeOpportunityRepo) add(opportunity *model.Opportunity) *model.Opportunity {
	if opportunity.ID.IsZero() {
		opportunity.ID = bson.NewObjectID()
	}
	f.opportunities = append(f.opportunities, opportunity)
	return opportunity
}

func (f *fakeOpportunityRepo) FindByID(_ context.Context, id string) (*model.Opportunity, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	for _, opportunity := range f.opportunities {
		if opportunity.ID == objectID {
			return opportunity, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeOpportunityRepo) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]*model.Opportunity, error) {
	var found []*model.Opportunity
	for _, opportunity := range f.opportunities {
		if containsID(ids, opportunity.ID) {
			found = append(found, opportunity)
		}
	}
	return found, nil
}

func (f *fakeOpportunityRepo) IDsByRecruiter(_ context.Context, recruiterID bson.ObjectID) ([]bson.ObjectID, error) {
	var ids []bson.ObjectID
	for _, opportunity := range f.opportunities {
		if opportunity.RecruiterID == recruiterID {
			ids = append(ids, opportunity.ID)
		}
	}
	return ids, nil
}

type fakeApplicationRepo struct {
	applications []*model.Application
}

func (f *fakeApplicationRepo) add(application *model.Application) *model.Application {
	if application.ID.IsZero() {
		application.ID = bson.NewObjectID()
	}
	f.applications = append(f.applications, application)
	return application
}

func (f *fakeApplicationRepo) Create(_ context.Context, application *model.Application) (*model.Application, error) {
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	if application.AppliedAt.IsZero() {
		application.AppliedAt = now
	}
	return f.add(application), nil
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id string) (*model.Application, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	for _, application := range f.applications {
		if application.ID == objectID {
			return application, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeApplicationRepo) List(
	_ context.Context,
	params repository.FilterApplicationsParams,
) ([]*model.Application, error) {
	matched := f.filter(params)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].AppliedAt.After(matched[j].AppliedAt)
	})

	limit := params.Limit
	if limit == 0 {
		limit = 10
	}
	return page(matched, limit, params.Skip), nil
}

func (f *fakeApplicationRepo) Count(_ context.Context, params repository.FilterApplicationsParams) (int64, error) {
	return int64(len(f.filter(params))), nil
}

func (f *fakeApplicationRepo) UpdateStatus(
	_ context.Context,
	id bson.ObjectID,
	status model.ApplicationStatus,
) (*model.Application, error) {
	for _, application := range f.applications {
		if application.ID == id {
			application.Status = status
			application.UpdatedAt = time.Now()
			return application, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeApplicationRepo) HasActive(_ context.Context, studentID, opportunityID bson.ObjectID) (bool, error) {
	for _, application := range f.applications {
		if application.StudentID == studentID &&
			application.OpportunityID == opportunityID &&
			application.Status != model.ApplicationWithdrawn {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) filter(params repository.FilterApplicationsParams) []*model.Application {
	var matched []*model.Application
	for _, application := range f.applications {
		if params.OpportunityIDs != nil && !containsID(params.OpportunityIDs, application.OpportunityID) {
			continue
		}
		if params.StudentID != nil && application.StudentID != *params.StudentID {
			continue
		}
		if params.Status != nil && application.Status != *params.Status {
			continue
		}
		matched = append(matched, application)
	}
	return matched
}

type fakeCollegeRepo struct {
	colleges []*model.College
}

func (f *fakeCollegeRepo) add(college *model.College) *model.College {
	if college.ID.IsZero() {
		college.ID = bson.NewObjectID()
	}
	f.colleges = append(f.colleges, college)
	return college
}

func (f *fakeCollegeRepo) FindByID(_ context.Context, id string) (*model.College, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	for _, college := range f.colleges {
		if college.ID == objectID {
			return college, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCollegeRepo) FindByUserID(_ context.Context, userID string) (*model.College, error) {
	objectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	for _, college := range f.colleges {
		if college.UserID == objectID {
			return college, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCollegeRepo) List(
	_ context.Context,
	params repository.FilterCollegesParams,
) ([]*model.College, error) {
	matched := f.filter(params)
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	limit := params.Limit
	if limit == 0 {
		limit = 10
	}
	return page(matched, limit, params.Skip), nil
}

func (f *fakeCollegeRepo) Count(_ context.Context, params repository.FilterCollegesParams) (int64, error) {
	return int64(len(f.filter(params))), nil
}

func (f *fakeCollegeRepo) UpdateProfile(
	_ context.Context,
	id bson.ObjectID,
	params repository.UpdateCollegeParams,
) (*model.College, error) {
	for _, college := range f.colleges {
		if college.ID != id {
			continue
		}
		if params.Name != nil {
			college.Name = *params.Name
		}
		if params.ContactEmail != nil {
			college.ContactEmail = *params.ContactEmail
		}
		if params.Phone != nil {
			college.Phone = *params.Phone
		}
		if params.Website != nil {
			college.Website = *params.Website
		}
		if params.Address != nil {
			college.Address = *params.Address
		}
		college.UpdatedAt = time.Now()
		return college, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCollegeRepo) filter(params repository.FilterCollegesParams) []*model.College {
	var matched []*model.College
	for _, college := range f.colleges {
		if params.Verified != nil && college.Verified != *params.Verified {
			continue
		}
		matched = append(matched, college)
	}
	return matched
}

type fakeRecruiterRepo struct {
	recruiters []*model.Recruiter
}

func (f *fakeRecruiterRepo) add(recruiter *model.Recruiter) *model.Recruiter {
	if recruiter.ID.IsZero() {
		recruiter.ID = bson.NewObjectID()
	}
	f.recruiters = append(f.recruiters, recruiter)
	return recruiter
}

func (f *fakeRecruiterRepo) FindByID(_ context.Context, id string) (*model.Recruiter, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	for _, recruiter := range f.recruiters {
		if recruiter.ID == objectID {
			return recruiter, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRecruiterRepo) FindByUserID(_ context.Context, userID string) (*model.Recruiter, error) {
	for _, recruiter := range f.recruiters {
		if recruiter.UserID.Hex() == userID {
			return recruiter, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func containsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func page[T any](items []T, limit, skip int64) []T {
	if skip >= int64(len(items)) {
		return nil
	}
	items = items[skip:]
	if limit > 0 && int64(len(items)) > limit {
		items = items[:limit]
	}
	return items
}
