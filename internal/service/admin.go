package service

import (
	"context"
	"fmt"

	"github.com/Rahul04022004/wellbeing/backend/internal/models"
	"github.com/Rahul04022004/wellbeing/backend/internal/repository"
)

type adminService struct {
	userRepo repository.UserRepository
	logRepo  repository.HealthLogRepository
}

// NewAdminService creates a new admin reporting service.
func NewAdminService(userRepo repository.UserRepository, logRepo repository.HealthLogRepository) AdminService {
	return &adminService{
		userRepo: userRepo,
		logRepo:  logRepo,
	}
}

// AllUserData returns every user with their full log history, newest
// logs first.
func (s *adminService) AllUserData(ctx context.Context) ([]models.UserData, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	data := make([]models.UserData, 0, len(users))
	for _, user := range users {
		logs, err := s.logRepo.GetAllByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get logs for %s: %w", user.Username, err)
		}
		data = append(data, models.UserData{User: user, HealthLogs: logs})
	}

	return data, nil
}

// UserStats returns lifetime aggregates per user: total steps plus
// average sleep and water across every log the user has recorded.
func (s *adminService) UserStats(ctx context.Context) ([]models.UserStats, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	stats := make([]models.UserStats, 0, len(users))
	for _, user := range users {
		logs, err := s.logRepo.GetAllByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get logs for %s: %w", user.Username, err)
		}

		var totalSteps int
		var sumSleep, sumWater float64
		for _, log := range logs {
			totalSteps += log.Steps
			sumSleep += log.SleepHours
			sumWater += log.WaterIntake
		}

		st := models.UserStats{Username: user.Username, Steps: totalSteps}
		if len(logs) > 0 {
			st.SleepHours = round2(sumSleep / float64(len(logs)))
			st.WaterIntake = round2(sumWater / float64(len(logs)))
		}
		stats = append(stats, st)
	}

	return stats, nil
}
