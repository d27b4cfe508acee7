package service

import "time"

const (
	// WindowDays is the length of the trailing window every weekly
	// analysis operates on.
	WindowDays = 7

	// RecentSampleLimit caps the correlation sample at the most recent
	// entries, regardless of age.
	RecentSampleLimit = 30

	// CorrelationThreshold is the |r| cutoff for a strong verdict.
	CorrelationThreshold = 0.5

	// AnomalyRatio flags a log when a metric falls below this fraction
	// of the weekly mean.
	AnomalyRatio = 0.5

	// Suggestion thresholds: weekly averages below these select the
	// encouragement message, at or above them the praise message.
	StepsGoal       = 5000
	SleepGoalHours  = 7.0
	WaterGoalLiters = 2.0
)

// weekWindowStart returns the lower bound of the half-open weekly window:
// (now - WindowDays) truncated to midnight in now's location. Logs dated
// strictly before this instant never enter a weekly analysis.
func weekWindowStart(now time.Time) time.Time {
	d := now.AddDate(0, 0, -WindowDays)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// truncateToDay drops the time-of-day component; health logs carry day
// granularity only.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
