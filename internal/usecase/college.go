package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
)

// CollegeUsecase covers the public college directory and the college-scoped
// student views.
type CollegeUsecase interface {
	// ListColleges lists the directory, optionally filtered to verified
	// colleges and ranked by text relevance when a search term is present.
	ListColleges(ctx context.Context, params repository.FilterCollegesParams) ([]*model.College, int64, error)

	// GetCollege returns a single college by id.
	GetCollege(ctx context.Context, id string) (*model.College, error)

	// UpdateProfile applies a self-service profile update for the college.
	// The verified flag and the code are not updatable here by construction.
	UpdateProfile(
		ctx context.Context,
		college *model.College,
		params repository.UpdateCollegeParams,
	) (*model.College, error)

	// ListStudents returns the college's paginated roster, skills populated,
	// sorted by enrollment number.
	ListStudents(
		ctx context.Context,
		college *model.College,
		collegeID string,
		limit, skip int64,
	) ([]*StudentWithSkills, int64, error)

	// GetStudentProfile returns a student's full profile with achievements and
	// projects joined, for the college that owns the enrollment.
	GetStudentProfile(ctx context.Context, college *model.College, studentID string) (*StudentProfile, error)
}

// StudentWithSkills is a roster row with skill records populated.
type StudentWithSkills struct {
	*model.Student
	SkillDetails []*model.Skill `json:"skillDetails"`
}

// StudentProfile is the college-scoped full view of a student.
type StudentProfile struct {
	*model.Student
	SkillDetails []*model.Skill       `json:"skillDetails"`
	Achievements []*model.Achievement `json:"achievements"`
	Projects     []*model.Project     `json:"projects"`
}

type collegeUsecase struct {
	collegeRepo     repository.CollegeRepository
	studentRepo     repository.StudentRepository
	achievementRepo repository.AchievementRepository
	projectRepo     repository.ProjectRepository
	skillRepo       repository.SkillRepository
}

// NewCollegeUsecase creates a new CollegeUsecase instance.
func NewCollegeUsecase(
	collegeRepo repository.CollegeRepository,
	studentRepo repository.StudentRepository,
	achievementRepo repository.AchievementRepository,
	projectRepo repository.ProjectRepository,
	skillRepo repository.SkillRepository,
) CollegeUsecase {
	return &collegeUsecase{
		collegeRepo:     collegeRepo,
		studentRepo:     studentRepo,
		achievementRepo: achievementRepo,
		projectRepo:     projectRepo,
		skillRepo:       skillRepo,
	}
}

func (u *collegeUsecase) ListColleges(
	ctx context.Context,
	params repository.FilterCollegesParams,
) ([]*model.College, int64, error) {
	var (
		colleges []*model.College
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		colleges, err = u.collegeRepo.List(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.collegeRepo.Count(gctx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return colleges, total, nil
}

func (u *collegeUsecase) GetCollege(ctx context.Context, id string) (*model.College, error) {
	college, err := u.collegeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	return college, nil
}

func (u *collegeUsecase) UpdateProfile(
	ctx context.Context,
	college *model.College,
	params repository.UpdateCollegeParams,
) (*model.College, error) {
	updated, err := u.collegeRepo.UpdateProfile(ctx, college.ID, params)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	return updated, nil
}

func (u *collegeUsecase) ListStudents(
	ctx context.Context,
	college *model.College,
	collegeID string,
	limit, skip int64,
) ([]*StudentWithSkills, int64, error) {
	// The roster is only visible to the college that owns it.
	if collegeID != college.ID.Hex() {
		return nil, 0, ErrForbidden
	}

	var (
		students []*model.Student
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		students, err = u.studentRepo.ListByCollege(gctx, college.ID, limit, skip)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.studentRepo.CountByCollege(gctx, college.ID, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	skillsByID, err := u.loadSkills(ctx, students)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]*StudentWithSkills, 0, len(students))
	for _, student := range students {
		rows = append(rows, &StudentWithSkills{
			Student:      student,
			SkillDetails: pickSkills(skillsByID, student.Skills),
		})
	}

	return rows, total, nil
}

func (u *collegeUsecase) GetStudentProfile(
	ctx context.Context,
	college *model.College,
	studentID string,
) (*StudentProfile, error) {
	student, err := u.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, asNotFound(err, ErrNotFound)
	}

	if err := checkCollegeOwnership(college, student); err != nil {
		return nil, err
	}

	var (
		achievements []*model.Achievement
		projects     []*model.Project
		skills       []*model.Skill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		achievements, err = u.achievementRepo.ListByStudent(gctx, student.ID)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = u.projectRepo.ListByStudent(gctx, student.ID)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = u.skillRepo.FindByIDs(gctx, student.Skills)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &StudentProfile{
		Student:      student,
		SkillDetails: skills,
		Achievements: achievements,
		Projects:     projects,
	}, nil
}

func (u *collegeUsecase) loadSkills(
	ctx context.Context,
	students []*model.Student,
) (map[bson.ObjectID]*model.Skill, error) {
	skillIDSet := make(map[bson.ObjectID]struct{})
	for _, student := range students {
		for _, skillID := range student.Skills {
			skillIDSet[skillID] = struct{}{}
		}
	}

	skills, err := u.skillRepo.FindByIDs(ctx, setToSlice(skillIDSet))
	if err != nil {
		return nil, err
	}

	skillsByID := make(map[bson.ObjectID]*model.Skill, len(skills))
	for _, skill := range skills {
		skillsByID[skill.ID] = skill
	}

	return skillsByID, nil
}
