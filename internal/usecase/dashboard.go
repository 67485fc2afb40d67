package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/simranbali-ace04/CampusHubX/internal/model"
	"github.com/simranbali-ace04/CampusHubX/internal/repository"
)

// DashboardUsecase computes the college dashboard counters.
type DashboardUsecase interface {
	// GetStats runs five independent count queries concurrently and joins
	// them. Any single failure fails the whole call; a partially zeroed
	// dashboard would be misleading.
	GetStats(ctx context.Context, college *model.College) (*DashboardStats, error)
}

// DashboardStats are the college dashboard counters. PendingVerifications sums
// achievements and projects; callers needing the breakdown use the pending
// queue instead.
type DashboardStats struct {
	TotalStudents        int64 `json:"totalStudents"`
	VerifiedStudents     int64 `json:"verifiedStudents"`
	PendingVerifications int64 `json:"pendingVerifications"`
	VerifiedAchievements int64 `json:"verifiedAchievements"`
}

type dashboardUsecase struct {
	studentRepo     repository.StudentRepository
	achievementRepo repository.AchievementRepository
	projectRepo     repository.ProjectRepository
}

// NewDashboardUsecase creates a new DashboardUsecase instance.
func NewDashboardUsecase(
	studentRepo repository.StudentRepository,
	achievementRepo repository.AchievementRepository,
	projectRepo repository.ProjectRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		studentRepo:     studentRepo,
		achievementRepo: achievementRepo,
		projectRepo:     projectRepo,
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context, college *model.College) (*DashboardStats, error) {
	studentIDs, err := u.studentRepo.IDsByCollege(ctx, college.ID)
	if err != nil {
		return nil, err
	}

	var (
		totalStudents        int64
		verifiedStudents     int64
		pendingAchievements  int64
		pendingProjects      int64
		verifiedAchievements int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalStudents, err = u.studentRepo.CountByCollege(gctx, college.ID, false)
		return err
	})
	g.Go(func() error {
		var err error
		verifiedStudents, err = u.studentRepo.CountByCollege(gctx, college.ID, true)
		return err
	})
	g.Go(func() error {
		var err error
		pendingAchievements, err = u.achievementRepo.CountPending(gctx, studentIDs)
		return err
	})
	g.Go(func() error {
		var err error
		pendingProjects, err = u.projectRepo.CountPending(gctx, studentIDs)
		return err
	})
	g.Go(func() error {
		var err error
		verifiedAchievements, err = u.achievementRepo.CountVerifiedBy(gctx, college.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalStudents:        totalStudents,
		VerifiedStudents:     verifiedStudents,
		PendingVerifications: pendingAchievements + pendingProjects,
		VerifiedAchievements: verifiedAchievements,
	}, nil
}
