package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
)

// PendingQueueUsecase builds the college's "needs review" view spanning the
// achievement and project collections.
type PendingQueueUsecase interface {
	// ListPending returns two independently paginated {items, total} pairs, one
	// per entity type. Counts and fetches run concurrently; a count that drifts
	// from its item page under interleaved writes is accepted.
	ListPending(ctx context.Context, college *model.College, limit, skip int64) (*PendingVerifications, error)
}

// PendingVerifications carries the two panes of the review queue. The lists
// are never merged: their pagination cursors are unrelated.
type PendingVerifications struct {
	Achievements PendingAchievementList `json:"achievements"`
	Projects     PendingProjectList     `json:"projects"`
}

// PendingAchievementList is one page of pending achievements with its total.
type PendingAchievementList struct {
	Data  []*PendingAchievement `json:"data"`
	Total int64                 `json:"total"`
}

// PendingProjectList is one page of pending projects with its total.
type PendingProjectList struct {
	Data  []*PendingProject `json:"data"`
	Total int64             `json:"total"`
}

// PendingAchievement is a queue row enriched with the referenced student's
// display fields and skill records (a read-time join, not a denormalization).
type PendingAchievement struct {
	*model.Achievement
	Student      *StudentRef    `json:"student"`
	SkillDetails []*model.Skill `json:"skillDetails"`
}

// PendingProject is the project counterpart of PendingAchievement.
type PendingProject struct {
	*model.Project
	Student      *StudentRef    `json:"student"`
	SkillDetails []*model.Skill `json:"skillDetails"`
}

// StudentRef holds the student display fields exposed on enriched rows.
type StudentRef struct {
	ID               string `json:"_id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	EnrollmentNumber string `json:"enrollmentNumber"`
}

type pendingQueueUsecase struct {
	studentRepo     repository.StudentRepository
	achievementRepo repository.AchievementRepository
	projectRepo     repository.ProjectRepository
	skillRepo       repository.SkillRepository
}

// NewPendingQueueUsecase creates a new PendingQueueUsecase instance.
func NewPendingQueueUsecase(
	studentRepo repository.StudentRepository,
	achievementRepo repository.AchievementRepository,
	projectRepo repository.ProjectRepository,
	skillRepo repository.SkillRepository,
) PendingQueueUsecase {
	return &pendingQueueUsecase{
		studentRepo:     studentRepo,
		achievementRepo: achievementRepo,
		projectRepo:     projectRepo,
		skillRepo:       skillRepo,
	}
}

func (u *pendingQueueUsecase) ListPending(
	ctx context.Context,
	college *model.College,
	limit, skip int64,
) (*PendingVerifications, error) {
	studentIDs, err := u.studentRepo.IDsByCollege(ctx, college.ID)
	if err != nil {
		return nil, err
	}

	var (
		achievements      []*model.Achievement
		projects          []*model.Project
		achievementsTotal int64
		projectsTotal     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		achievements, err = u.achievementRepo.ListPending(gctx, studentIDs, limit, skip)
		return err
	})
	g.Go(func() error {
		var err error
		achievementsTotal, err = u.achievementRepo.CountPending(gctx, studentIDs)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = u.projectRepo.ListPending(gctx, studentIDs, limit, skip)
		return err
	})
	g.Go(func() error {
		var err error
		projectsTotal, err = u.projectRepo.CountPending(gctx, studentIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	studentRefs, skills, err := u.loadReferences(ctx, achievements, projects)
	if err != nil {
		return nil, err
	}

	result := &PendingVerifications{
		Achievements: PendingAchievementList{
			Data:  make([]*PendingAchievement, 0, len(achievements)),
			Total: achievementsTotal,
		},
		Projects: PendingProjectList{
			Data:  make([]*PendingProject, 0, len(projects)),
			Total: projectsTotal,
		},
	}

	for _, achievement := range achievements {
		result.Achievements.Data = append(result.Achievements.Data, &PendingAchievement{
			Achievement:  achievement,
			Student:      studentRefs[achievement.StudentID],
			SkillDetails: pickSkills(skills, achievement.Skills),
		})
	}
	for _, project := range projects {
		result.Projects.Data = append(result.Projects.Data, &PendingProject{
			Project:      project,
			Student:      studentRefs[project.StudentID],
			SkillDetails: pickSkills(skills, project.Skills),
		})
	}

	return result, nil
}

// loadReferences resolves the students and skills referenced by a fetched page
// in two batched lookups.
func (u *pendingQueueUsecase) loadReferences(
	ctx context.Context,
	achievements []*model.Achievement,
	projects []*model.Project,
) (map[bson.ObjectID]*StudentRef, map[bson.ObjectID]*model.Skill, error) {
	studentIDSet := make(map[bson.ObjectID]struct{})
	skillIDSet := make(map[bson.ObjectID]struct{})

	for _, achievement := range achievements {
		studentIDSet[achievement.StudentID] = struct{}{}
		for _, skillID := range achievement.Skills {
			skillIDSet[skillID] = struct{}{}
		}
	}
	for _, project := range projects {
		studentIDSet[project.StudentID] = struct{}{}
		for _, skillID := range project.Skills {
			skillIDSet[skillID] = struct{}{}
		}
	}

	students, err := u.studentRepo.FindByIDs(ctx, setToSlice(studentIDSet))
	if err != nil {
		return nil, nil, err
	}

	skills, err := u.skillRepo.FindByIDs(ctx, setToSlice(skillIDSet))
	if err != nil {
		return nil, nil, err
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

	skillsByID := make(map[bson.ObjectID]*model.Skill, len(skills))
	for _, skill := range skills {
		skillsByID[skill.ID] = skill
	}

	return studentRefs, skillsByID, nil
}

func pickSkills(skillsByID map[bson.ObjectID]*model.Skill, ids []bson.ObjectID) []*model.Skill {
	picked := make([]*model.Skill, 0, len(ids))
	for _, id := range ids {
		if skill, ok := skillsByID[id]; ok {
			picked = append(picked, skill)
		}
	}

	return picked
}

func setToSlice(set map[bson.ObjectID]struct{}) []bson.ObjectID {
	ids := make([]bson.ObjectID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	return ids
}
