package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
)

type PendingQueueSuite struct {
	suite.Suite
	ctx          context.Context
	studentRepo  *fakeStudentRepo
	achievements *fakeAchievementRepo
	projects     *fakeProjectRepo
	skills       *fakeSkillRepo
	usecase      PendingQueueUsecase
	college      *model.College
	student      *model.Student
}

func TestPendingQueueSuite(t *testing.T) {
	suite.Run(t, new(PendingQueueSuite))
}

func (s *PendingQueueSuite) SetupTest() {
	s.ctx = context.Background()
	s.studentRepo = &fakeStudentRepo{}
	s.achievements = &fakeAchievementRepo{}
	s.projects = &fakeProjectRepo{}
	s.skills = &fakeSkillRepo{}
	s.usecase = NewPendingQueueUsecase(s.studentRepo, s.achievements, s.projects, s.skills)

	s.college = &model.College{ID: bson.NewObjectID(), Name: "Test Institute"}
	s.student = s.studentRepo.add(&model.Student{
		UserID:           bson.NewObjectID(),
		FirstName:        "Meera",
		LastName:         "Iyer",
		EnrollmentNumber: "EN-3001",
		CollegeID:        &s.college.ID,
	})
}

func (s *PendingQueueSuite) TestListPending() {
	s.Run("returns independent panes with their totals", func() {
		s.achievements.add(&model.Achievement{
			StudentID:          s.student.ID,
			Title:              "Dean's List",
			VerificationStatus: model.VerificationPending,
		})
		s.achievements.add(&model.Achievement{
			StudentID:          s.student.ID,
			Title:              "Already Reviewed",
			VerificationStatus: model.VerificationVerified,
		})
		s.projects.add(&model.Project{
			StudentID:          s.student.ID,
			Title:              "Chat Server",
			VerificationStatus: model.VerificationPending,
		})

		pending, err := s.usecase.ListPending(s.ctx, s.college, 10, 0)
		s.Require().NoError(err)
		s.Equal(int64(1), pending.Achievements.Total)
		s.Require().Len(pending.Achievements.Data, 1)
		s.Equal("Dean's List", pending.Achievements.Data[0].Title)
		s.Equal(int64(1), pending.Projects.Total)
		s.Require().Len(pending.Projects.Data, 1)
		s.Equal("Chat Server", pending.Projects.Data[0].Title)
	})

	s.Run("legacy projects without a status appear once as pending", func() {
		s.projects.add(&model.Project{
			StudentID: s.student.ID,
			Title:     "Legacy Import",
		})

		pending, err := s.usecase.ListPending(s.ctx, s.college, 10, 0)
		s.Require().NoError(err)

		seen := 0
		for _, project := range pending.Projects.Data {
			if project.Title == "Legacy Import" {
				seen++
				s.Equal(model.VerificationPending, project.VerificationStatus)
			}
		}
		s.Equal(1, seen)
	})

	s.Run("joins student display fields and skill records", func() {
		skill := s.skills.add("Go")
		s.achievements.add(&model.Achievement{
			StudentID:          s.student.ID,
			Title:              "Open Source Contribution",
			Skills:             []bson.ObjectID{skill.ID, bson.NewObjectID()},
			VerificationStatus: model.VerificationPending,
		})

		pending, err := s.usecase.ListPending(s.ctx, s.college, 10, 0)
		s.Require().NoError(err)

		var row *PendingAchievement
		for _, achievement := range pending.Achievements.Data {
			if achievement.Title == "Open Source Contribution" {
				row = achievement
			}
		}
		s.Require().NotNil(row)
		s.Require().NotNil(row.Student)
		s.Equal("Meera", row.Student.FirstName)
		s.Equal("EN-3001", row.Student.EnrollmentNumber)
		s.Require().Len(row.SkillDetails, 1)
		s.Equal("Go", row.SkillDetails[0].Name)
	})

	s.Run("excludes other colleges' students", func() {
		otherCollege := bson.NewObjectID()
		outsider := s.studentRepo.add(&model.Student{
			UserID:    bson.NewObjectID(),
			CollegeID: &otherCollege,
		})
		s.achievements.add(&model.Achievement{
			StudentID:          outsider.ID,
			Title:              "Foreign Entry",
			VerificationStatus: model.VerificationPending,
		})

		pending, err := s.usecase.ListPending(s.ctx, s.college, 10, 0)
		s.Require().NoError(err)
		for _, achievement := range pending.Achievements.Data {
			s.NotEqual("Foreign Entry", achievement.Title)
		}
	})

	s.Run("tied creation times never duplicate or drop rows across pages", func() {
		createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			s.projects.add(&model.Project{
				StudentID: s.student.ID,
				Title:     "Batch Import",
				CreatedAt: createdAt,
			})
		}

		seen := make(map[bson.ObjectID]int)
		for skip := int64(0); skip < 6; skip += 2 {
			pending, err := s.usecase.ListPending(s.ctx, s.college, 2, skip)
			s.Require().NoError(err)
			for _, project := range pending.Projects.Data {
				if project.Title == "Batch Import" {
					seen[project.ID]++
				}
			}
		}

		s.Len(seen, 5)
		for _, count := range seen {
			s.Equal(1, count)
		}
	})

	s.Run("a failing count fails the whole call", func() {
		s.projects.err = errors.New("connection reset")
		defer func() { s.projects.err = nil }()

		_, err := s.usecase.ListPending(s.ctx, s.college, 10, 0)
		s.Require().ErrorContains(err, "connection reset")
	})

	s.Run("empty queue returns empty pages, not nils", func() {
		empty := &model.College{ID: bson.NewObjectID()}

		pending, err := s.usecase.ListPending(s.ctx, empty, 10, 0)
		s.Require().NoError(err)
		s.NotNil(pending.Achievements.Data)
		s.Empty(pending.Achievements.Data)
		s.Zero(pending.Achievements.Total)
		s.NotNil(pending.Projects.Data)
		s.Empty(pending.Projects.Data)
		s.Zero(pending.Projects.Total)
	})
}
