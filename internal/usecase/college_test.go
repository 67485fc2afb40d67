package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
	"github.com/simranbali-ace04/CampusHubX/shared/auth"
)

type CollegeSuite struct {
	suite.Suite
	ctx          context.Context
	collegeRepo  *fakeCollegeRepo
	studentRepo  *fakeStudentRepo
	achievements *fakeAchievementRepo
	projects     *fakeProjectRepo
	skills       *fakeSkillRepo
	usecase      CollegeUsecase
	college      *model.College
}

func TestCollegeSuite(t *testing.T) {
	suite.Run(t, new(CollegeSuite))
}

func (s *CollegeSuite) SetupTest() {
	s.ctx = context.Background()
	s.collegeRepo = &fakeCollegeRepo{}
	s.studentRepo = &fakeStudentRepo{}
	s.achievements = &fakeAchievementRepo{}
	s.projects = &fakeProjectRepo{}
	s.skills = &fakeSkillRepo{}
	s.usecase = NewCollegeUsecase(s.collegeRepo, s.studentRepo, s.achievements, s.projects, s.skills)

	s.college = s.collegeRepo.add(&model.College{
		UserID:   bson.NewObjectID(),
		Name:     "Test Institute",
		Code:     "TI-01",
		Verified: true,
	})
}

func (s *CollegeSuite) TestListColleges() {
	s.Run("lists the directory with a total", func() {
		s.collegeRepo.add(&model.College{UserID: bson.NewObjectID(), Name: "Second College", Code: "SC-02"})

		colleges, total, err := s.usecase.ListColleges(s.ctx, repository.FilterCollegesParams{Limit: 10})
		s.Require().NoError(err)
		s.Equal(int64(2), total)
		s.Len(colleges, 2)
	})

	s.Run("filters to verified colleges", func() {
		verified := true
		colleges, total, err := s.usecase.ListColleges(s.ctx, repository.FilterCollegesParams{
			Verified: &verified,
			Limit:    10,
		})
		s.Require().NoError(err)
		s.Equal(int64(1), total)
		s.Require().Len(colleges, 1)
		s.Equal("Test Institute", colleges[0].Name)
	})
}

func (s *CollegeSuite) TestGetCollege() {
	s.Run("returns the college by id", func() {
		college, err := s.usecase.GetCollege(s.ctx, s.college.ID.Hex())
		s.Require().NoError(err)
		s.Equal("TI-01", college.Code)
	})

	s.Run("returns not found for an unknown id", func() {
		_, err := s.usecase.GetCollege(s.ctx, bson.NewObjectID().Hex())
		s.Require().ErrorIs(err, ErrNotFound)
	})

	s.Run("returns not found for a malformed id", func() {
		_, err := s.usecase.GetCollege(s.ctx, "nope")
		s.Require().ErrorIs(err, ErrNotFound)
	})
}

func (s *CollegeSuite) TestUpdateProfile() {
	s.Run("applies only the provided fields", func() {
		name := "Renamed Institute"
		updated, err := s.usecase.UpdateProfile(s.ctx, s.college, repository.UpdateCollegeParams{Name: &name})
		s.Require().NoError(err)
		s.Equal("Renamed Institute", updated.Name)
		s.Equal("TI-01", updated.Code)
		s.True(updated.Verified)
	})
}

func (s *CollegeSuite) TestListStudents() {
	s.Run("returns the roster with skills populated", func() {
		skill := s.skills.add("Rust")
		s.studentRepo.add(&model.Student{
			UserID:           bson.NewObjectID(),
			FirstName:        "Nisha",
			EnrollmentNumber: "EN-4001",
			CollegeID:        &s.college.ID,
			Skills:           []bson.ObjectID{skill.ID},
		})

		rows, total, err := s.usecase.ListStudents(s.ctx, s.college, s.college.ID.Hex(), 10, 0)
		s.Require().NoError(err)
		s.Equal(int64(1), total)
		s.Require().Len(rows, 1)
		s.Equal("Nisha", rows[0].FirstName)
		s.Require().Len(rows[0].SkillDetails, 1)
		s.Equal("Rust", rows[0].SkillDetails[0].Name)
	})

	s.Run("forbids reading another college's roster", func() {
		_, _, err := s.usecase.ListStudents(s.ctx, s.college, bson.NewObjectID().Hex(), 10, 0)
		s.Require().ErrorIs(err, ErrForbidden)
	})
}

func (s *CollegeSuite) TestGetStudentProfile() {
	s.Run("joins achievements, projects and skills", func() {
		skill := s.skills.add("Python")
		student := s.studentRepo.add(&model.Student{
			UserID:    bson.NewObjectID(),
			FirstName: "Karan",
			CollegeID: &s.college.ID,
			Skills:    []bson.ObjectID{skill.ID},
		})
		s.achievements.add(&model.Achievement{
			StudentID:          student.ID,
			Title:              "Award",
			VerificationStatus: model.VerificationPending,
		})
		s.projects.add(&model.Project{StudentID: student.ID, Title: "Legacy Project"})

		profile, err := s.usecase.GetStudentProfile(s.ctx, s.college, student.ID.Hex())
		s.Require().NoError(err)
		s.Equal("Karan", profile.FirstName)
		s.Require().Len(profile.Achievements, 1)
		s.Require().Len(profile.Projects, 1)
		s.Equal(model.VerificationPending, profile.Projects[0].VerificationStatus)
		s.Require().Len(profile.SkillDetails, 1)
		s.Equal("Python", profile.SkillDetails[0].Name)
	})

	s.Run("forbids reading another college's student", func() {
		otherCollege := bson.NewObjectID()
		student := s.studentRepo.add(&model.Student{
			UserID:    bson.NewObjectID(),
			CollegeID: &otherCollege,
		})

		_, err := s.usecase.GetStudentProfile(s.ctx, s.college, student.ID.Hex())
		s.Require().ErrorIs(err, ErrForbidden)
	})

	s.Run("returns not found for an unknown student", func() {
		_, err := s.usecase.GetStudentProfile(s.ctx, s.college, bson.NewObjectID().Hex())
		s.Require().ErrorIs(err, ErrNotFound)
	})
}

func TestOwnerResolver(t *testing.T) {
	suite.Run(t, new(OwnerResolverSuite))
}

type OwnerResolverSuite struct {
	suite.Suite
	ctx         context.Context
	collegeRepo *fakeCollegeRepo
	studentRepo *fakeStudentRepo
	recruiters  *fakeRecruiterRepo
	resolver    OwnerResolver
}

func (s *OwnerResolverSuite) SetupTest() {
	s.ctx = context.Background()
	s.collegeRepo = &fakeCollegeRepo{}
	s.studentRepo = &fakeStudentRepo{}
	s.recruiters = &fakeRecruiterRepo{}
	s.resolver = NewOwnerResolver(s.collegeRepo, s.studentRepo, s.recruiters)
}

func (s *OwnerResolverSuite) TestResolve() {
	s.Run("resolves a college principal to its record", func() {
		college := s.collegeRepo.add(&model.College{UserID: bson.NewObjectID(), Name: "Resolved"})

		resolved, err := s.resolver.ResolveCollege(s.ctx, &auth.Principal{
			UserID: college.UserID.Hex(),
			Role:   auth.RoleCollege,
		})
		s.Require().NoError(err)
		s.Equal(college.ID, resolved.ID)
	})

	s.Run("missing profile yields ErrProfileNotFound", func() {
		_, err := s.resolver.ResolveStudent(s.ctx, &auth.Principal{
			UserID: bson.NewObjectID().Hex(),
			Role:   auth.RoleStudent,
		})
		s.Require().ErrorIs(err, ErrProfileNotFound)

		_, err = s.resolver.ResolveRecruiter(s.ctx, &auth.Principal{
			UserID: bson.NewObjectID().Hex(),
			Role:   auth.RoleRecruiter,
		})
		s.Require().ErrorIs(err, ErrProfileNotFound)
	})
}
