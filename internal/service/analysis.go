package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Rahul04022004/wellbeing/backend/internal/models"
	"github.com/Rahul04022004/wellbeing/backend/internal/repository"
)

// Suggestion messages. Exactly two per metric; the weekly average picks one.
const (
	suggestStepsLow = "Try to walk at least 5,000 steps daily for better health."
	suggestStepsOK  = "Great job on your step count! Keep it up."
	suggestSleepLow = "Aim for at least 7 hours of sleep each night."
	suggestSleepOK  = "Your sleep duration is on track."
	suggestWaterLow = "Increase your water intake to at least 2 liters per day."
	suggestWaterOK  = "Hydration level is good."
)

// ErrUnknownAnalysis indicates RunAnalysis was given a name it does not
// dispatch.
var ErrUnknownAnalysis = errors.New("unknown analysis")

type analysisService struct {
	userRepo repository.UserRepository
	logRepo  repository.HealthLogRepository
	now      func() time.Time
}

// NewAnalysisService creates a new analysis service. The clock is
// injectable so tests can pin "now".
func NewAnalysisService(userRepo repository.UserRepository, logRepo repository.HealthLogRepository) AnalysisService {
	return &analysisService{
		userRepo: userRepo,
		logRepo:  logRepo,
		now:      time.Now,
	}
}

// RunAnalysis dispatches to one analysis by its public name.
func (s *analysisService) RunAnalysis(ctx context.Context, name, username string) (*models.AnalysisResult, error) {
	switch name {
	case "getProgress":
		return s.GetProgress(ctx, username)
	case "moodSleepCorrelation":
		return s.MoodSleepCorrelation(ctx, username)
	case "weeklyTrendReport":
		return s.WeeklyTrendReport(ctx, username)
	case "detectAnomalies":
		return s.DetectAnomalies(ctx, username)
	case "personalizedSuggestions":
		return s.PersonalizedSuggestions(ctx, username)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnalysis, name)
	}
}

// resolveUser looks up the user. A missing user is an analytical outcome,
// not an error: the caller gets a user-not-found result to return as-is.
func (s *analysisService) resolveUser(ctx context.Context, username string) (*models.User, *models.AnalysisResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return nil, &models.AnalysisResult{
			Kind:    models.ResultUserNotFound,
			Message: models.MsgUserNotFound,
		}, nil
	}
	return user, nil, nil
}

// GetProgress lists the past week's logs oldest first, one formatted line
// per log. This is the only analysis that reads ascending; everything
// else consumes descending order.
func (s *analysisService) GetProgress(ctx context.Context, username string) (*models.AnalysisResult, error) {
	user, result, err := s.resolveUser(ctx, username)
	if err != nil || result != nil {
		return result, err
	}

	logs, err := s.logRepo.GetByUserSince(ctx, user.ID, weekWindowStart(s.now()), repository.SortAsc)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}

	if len(logs) == 0 {
		return &models.AnalysisResult{
			Kind:    models.ResultEmpty,
			Message: models.MsgNoProgressLogs,
		}, nil
	}

	lines := make([]string, 0, len(logs))
	for _, log := range logs {
		lines = append(lines, fmt.Sprintf("%s: steps %d, sleep %.1fh, water %.1fL, mood %s",
			log.Date.Format("2006-01-02"), log.Steps, log.SleepHours, log.WaterIntake, log.Mood))
	}

	return &models.AnalysisResult{Kind: models.ResultData, Data: lines}, nil
}

// MoodSleepCorrelation computes the Pearson correlation between sleep
// hours and the ordinal mood scale over the most recent logs and
// classifies it into a verdict.
func (s *analysisService) MoodSleepCorrelation(ctx context.Context, username string) (*models.AnalysisResult, error) {
	user, result, err := s.resolveUser(ctx, username)
	if err != nil || result != nil {
		return result, err
	}

	logs, err := s.logRepo.GetRecentByUser(ctx, user.ID, RecentSampleLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}

	if len(logs) < 2 {
		return &models.AnalysisResult{
			Kind:    models.ResultInsufficientData,
			Message: models.MsgNotEnoughData,
		}, nil
	}

	// A log with an unrecognized mood or a non-numeric sleep value drops
	// out of the sample entirely; that is not an error.
	sleep := make([]float64, 0, len(logs))
	mood := make([]float64, 0, len(logs))
	for _, log := range logs {
		if math.IsNaN(log.SleepHours) {
			continue
		}
		ord, ok := log.Mood.Ordinal()
		if !ok {
			continue
		}
		sleep = append(sleep, log.SleepHours)
		mood = append(mood, float64(ord))
	}

	r := pearsonCorrelation(sleep, mood)

	verdict := models.MsgNoCorrelation
	if r > CorrelationThreshold {
		verdict = models.MsgMoodImproves
	} else if r < -CorrelationThreshold {
		verdict = models.MsgMoodWorsens
	}

	return &models.AnalysisResult{
		Kind:    models.ResultData,
		Message: verdict,
		Data:    models.CorrelationOutcome{Coefficient: r, SampleSize: len(sleep)},
	}, nil
}

// WeeklyTrendReport computes per-metric weekly averages plus an
// increasing/decreasing/stable classification from an early-week vs
// late-week comparison.
func (s *analysisService) WeeklyTrendReport(ctx context.Context, username string) (*models.AnalysisResult, error) {
	user, result, err := s.resolveUser(ctx, username)
	if err != nil || result != nil {
		return result, err
	}

	logs, err := s.logRepo.GetByUserSince(ctx, user.ID, weekWindowStart(s.now()), repository.SortDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}

	if len(logs) == 0 {
		return &models.AnalysisResult{
			Kind:    models.ResultEmpty,
			Message: models.MsgNoLogsPastWeek,
		}, nil
	}

	n := len(logs)
	var sumSteps, sumSleep, sumWater float64
	for _, log := range logs {
		sumSteps += float64(log.Steps)
		sumSleep += log.SleepHours
		sumWater += log.WaterIntake
	}

	averages := models.MetricAverages{
		Steps:       int(math.Round(sumSteps / float64(n))),
		SleepHours:  round2(sumSleep / float64(n)),
		WaterIntake: round2(sumWater / float64(n)),
	}

	// The split is chronological regardless of query order.
	sorted := make([]models.HealthLog, n)
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	// First floor(n/2) logs vs logs from index ceil(n/2) on. For odd n
	// the median record sits in neither half; it still counts toward the
	// averages above, just not toward the direction comparison.
	firstHalf := sorted[:n/2]
	lastHalf := sorted[(n+1)/2:]

	trends := models.MetricTrends{
		Steps:       models.TrendStable,
		SleepHours:  models.TrendStable,
		WaterIntake: models.TrendStable,
	}
	if len(firstHalf) > 0 && len(lastHalf) > 0 {
		trends.Steps = classifyTrend(avgField(lastHalf, stepsOf) - avgField(firstHalf, stepsOf))
		trends.SleepHours = classifyTrend(avgField(lastHalf, sleepOf) - avgField(firstHalf, sleepOf))
		trends.WaterIntake = classifyTrend(avgField(lastHalf, waterOf) - avgField(firstHalf, waterOf))
	}

	return &models.AnalysisResult{
		Kind: models.ResultData,
		Data: models.TrendReport{Averages: averages, Trends: trends},
	}, nil
}

// DetectAnomalies flags the week's logs whose steps or sleep fall below
// half of the weekly mean.
func (s *analysisService) DetectAnomalies(ctx context.Context, username string) (*models.AnalysisResult, error) {
	user, result, err := s.resolveUser(ctx, username)
	if err != nil || result != nil {
		return result, err
	}

	logs, err := s.logRepo.GetByUserSince(ctx, user.ID, weekWindowStart(s.now()), repository.SortDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}

	if len(logs) < 2 {
		return &models.AnalysisResult{
			Kind:    models.ResultInsufficientData,
			Message: models.MsgNotEnoughAnomaly,
		}, nil
	}

	meanSteps := avgField(logs, stepsOf)
	meanSleep := avgField(logs, sleepOf)

	anomalies := make([]models.Anomaly, 0)
	for _, log := range logs {
		if float64(log.Steps) < meanSteps*AnomalyRatio || log.SleepHours < meanSleep*AnomalyRatio {
			anomalies = append(anomalies, models.Anomaly{
				Date:       log.Date,
				Steps:      log.Steps,
				SleepHours: log.SleepHours,
			})
		}
	}

	// "Ran and found nothing" is distinct from "not enough data";
	// callers rely on that distinction.
	if len(anomalies) == 0 {
		return &models.AnalysisResult{
			Kind:    models.ResultEmpty,
			Message: models.MsgNoAnomalies,
		}, nil
	}

	return &models.AnalysisResult{Kind: models.ResultData, Data: anomalies}, nil
}

// PersonalizedSuggestions picks one of two canned messages per metric
// from the weekly averages, always in steps, sleep, water order.
func (s *analysisService) PersonalizedSuggestions(ctx context.Context, username string) (*models.AnalysisResult, error) {
	user, result, err := s.resolveUser(ctx, username)
	if err != nil || result != nil {
		return result, err
	}

	logs, err := s.logRepo.GetByUserSince(ctx, user.ID, weekWindowStart(s.now()), repository.SortDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}

	if len(logs) == 0 {
		return &models.AnalysisResult{
			Kind:    models.ResultEmpty,
			Message: models.MsgNoLogsSuggestions,
		}, nil
	}

	avgSteps := avgField(logs, stepsOf)
	avgSleep := avgField(logs, sleepOf)
	avgWater := avgField(logs, waterOf)

	suggestions := make([]string, 0, 3)
	if avgSteps < StepsGoal {
		suggestions = append(suggestions, suggestStepsLow)
	} else {
		suggestions = append(suggestions, suggestStepsOK)
	}
	if avgSleep < SleepGoalHours {
		suggestions = append(suggestions, suggestSleepLow)
	} else {
		suggestions = append(suggestions, suggestSleepOK)
	}
	if avgWater < WaterGoalLiters {
		suggestions = append(suggestions, suggestWaterLow)
	} else {
		suggestions = append(suggestions, suggestWaterOK)
	}

	return &models.AnalysisResult{Kind: models.ResultData, Data: suggestions}, nil
}

// =============================================================================
// Statistical helpers
// =============================================================================

// pearsonCorrelation computes the Pearson correlation coefficient between
// two equal-length samples. With fewer than two points, or when either
// series has zero variance, it returns 0 rather than NaN.
func pearsonCorrelation(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var numerator, denomX, denomY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX == 0 || denomY == 0 {
		return 0
	}

	return numerator / math.Sqrt(denomX*denomY)
}

func classifyTrend(delta float64) models.TrendDirection {
	switch {
	case delta > 0:
		return models.TrendIncreasing
	case delta < 0:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

func avgField(logs []models.HealthLog, field func(models.HealthLog) float64) float64 {
	if len(logs) == 0 {
		return 0
	}
	var sum float64
	for _, log := range logs {
		sum += field(log)
	}
	return sum / float64(len(logs))
}

func stepsOf(l models.HealthLog) float64 { return float64(l.Steps) }
func sleepOf(l models.HealthLog) float64 { return l.SleepHours }
func waterOf(l models.HealthLog) float64 { return l.WaterIntake }

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
