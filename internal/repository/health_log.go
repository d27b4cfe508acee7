package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rahul04022004/wellbeing/backend/internal/models"
	"github.com/Rahul04022004/wellbeing/backend/pkg/postgrest"
)

type healthLogRepository struct {
	client *postgrest.Client
}

// NewHealthLogRepository creates a new health-log repository backed by
// PostgREST.
func NewHealthLogRepository(client *postgrest.Client) HealthLogRepository {
	return &healthLogRepository{client: client}
}

func (r *healthLogRepository) Create(ctx context.Context, log *models.HealthLog) (*models.HealthLog, error) {
	data := map[string]interface{}{
		"user_id":      log.UserID,
		"date":         log.Date.Format(time.RFC3339),
		"steps":        log.Steps,
		"sleep_hours":  log.SleepHours,
		"water_intake": log.WaterIntake,
		"mood":         log.Mood,
	}
	if log.ID != "" {
		data["id"] = log.ID
	}

	body, err := r.client.Insert("health_logs", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create health log: %w", err)
	}

	var logs []models.HealthLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(logs) == 0 {
		return nil, fmt.Errorf("no health log returned")
	}

	return &logs[0], nil
}

func (r *healthLogRepository) GetByUserSince(ctx context.Context, userID string, since time.Time, order SortOrder) ([]models.HealthLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"date":    fmt.Sprintf("gte.%s", since.Format(time.RFC3339)),
		"order":   fmt.Sprintf("date.%s", order),
	}

	body, err := r.client.Query("health_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get health logs: %w", err)
	}

	var logs []models.HealthLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *healthLogRepository) GetRecentByUser(ctx context.Context, userID string, limit int) ([]models.HealthLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "date.desc",
		"limit":   limit,
	}

	body, err := r.client.Query("health_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent health logs: %w", err)
	}

	var logs []models.HealthLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}

func (r *healthLogRepository) GetAllByUser(ctx context.Context, userID string) ([]models.HealthLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "date.desc",
	}

	body, err := r.client.Query("health_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get health logs: %w", err)
	}

	var logs []models.HealthLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}
