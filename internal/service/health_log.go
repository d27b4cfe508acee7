package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rahul04022004/wellbeing/backend/internal/models"
	"github.com/Rahul04022004/wellbeing/backend/internal/repository"
	"github.com/google/uuid"
)

type healthLogService struct {
	userRepo repository.UserRepository
	logRepo  repository.HealthLogRepository
	now      func() time.Time
}

// NewHealthLogService creates a new health-log intake service.
func NewHealthLogService(userRepo repository.UserRepository, logRepo repository.HealthLogRepository) HealthLogService {
	return &healthLogService{
		userRepo: userRepo,
		logRepo:  logRepo,
		now:      time.Now,
	}
}

// LogDaily records one observation for today. The date is truncated to
// midnight; a second log on the same day is allowed and becomes an
// independent sample for every analysis.
func (s *healthLogService) LogDaily(ctx context.Context, req *models.LogHealthRequest) (*models.AnalysisResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return &models.AnalysisResult{
			Kind:    models.ResultUserNotFound,
			Message: models.MsgUserNotFound,
		}, nil
	}

	log := &models.HealthLog{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Date:        truncateToDay(s.now()),
		Steps:       req.Steps,
		SleepHours:  req.SleepHours,
		WaterIntake: req.WaterIntake,
		Mood:        req.Mood,
	}

	if _, err := s.logRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create health log: %w", err)
	}

	return &models.AnalysisResult{
		Kind:    models.ResultData,
		Message: models.MsgHealthLogAdded,
	}, nil
}
