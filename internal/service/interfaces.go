package service

import (
	"context"

	"github.com/Rahul04022004/wellbeing/backend/internal/models"
)

// AnalysisService defines the read-side analytics over a user's health
// logs. Every method is a pure function of (username, current time, store
// contents): no state is carried between invocations, so concurrent calls
// are safe. A non-nil error always means the store itself failed; every
// analytical outcome, including "user not found" and "not enough data",
// travels inside the AnalysisResult.
type AnalysisService interface {
	GetProgress(ctx context.Context, username string) (*models.AnalysisResult, error)
	MoodSleepCorrelation(ctx context.Context, username string) (*models.AnalysisResult, error)
	WeeklyTrendReport(ctx context.Context, username string) (*models.AnalysisResult, error)
	DetectAnomalies(ctx context.Context, username string) (*models.AnalysisResult, error)
	PersonalizedSuggestions(ctx context.Context, username string) (*models.AnalysisResult, error)
	// RunAnalysis dispatches by analysis name; unknown names are an error.
	RunAnalysis(ctx context.Context, name, username string) (*models.AnalysisResult, error)
}

// HealthLogService defines the write-side log intake.
type HealthLogService interface {
	LogDaily(ctx context.Context, req *models.LogHealthRequest) (*models.AnalysisResult, error)
}

// AdminService defines cross-user reporting.
type AdminService interface {
	AllUserData(ctx context.Context) ([]models.UserData, error)
	UserStats(ctx context.Context) ([]models.UserStats, error)
}
