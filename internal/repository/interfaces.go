package repository

import (
	"context"
	"time"

	"github.com/Rahul04022004/wellbeing/backend/internal/models"
)

// SortOrder selects the date ordering of a health-log query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// UserRepository defines the interface for user data access.
// GetByUsername returns (nil, nil) when the username does not resolve;
// absence is ordinary data, not an error. Account creation and login
// bookkeeping live in the external auth layer, so there are no write
// operations here.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// HealthLogRepository defines the interface for health-log data access.
// Logs are append-only: there is no update or delete.
type HealthLogRepository interface {
	Create(ctx context.Context, log *models.HealthLog) (*models.HealthLog, error)
	// GetByUserSince returns all logs dated at or after since, in the
	// requested date order.
	GetByUserSince(ctx context.Context, userID string, since time.Time, order SortOrder) ([]models.HealthLog, error)
	// GetRecentByUser returns the most recent logs, date descending,
	// capped at limit.
	GetRecentByUser(ctx context.Context, userID string, limit int) ([]models.HealthLog, error)
	// GetAllByUser returns every log for the user, date descending.
	GetAllByUser(ctx context.Context, userID string) ([]models.HealthLog, error)
}
