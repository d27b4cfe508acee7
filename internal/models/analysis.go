package models

import "time"

// ResultKind discriminates the outcome of an analysis. Every analysis
// either produces data or exactly one of the empty-outcome kinds; store
// failures travel as ordinary errors, never as a ResultKind.
type ResultKind string

const (
	// ResultData means the analysis ran and produced structured data.
	ResultData ResultKind = "data"
	// ResultEmpty means the analysis ran but the window held no
	// applicable records (or, for anomalies, found nothing to flag).
	ResultEmpty ResultKind = "empty"
	// ResultUserNotFound means the username did not resolve.
	ResultUserNotFound ResultKind = "user_not_found"
	// ResultInsufficientData means the analysis needs more records than
	// the query returned.
	ResultInsufficientData ResultKind = "insufficient_data"
)

// Sentinel messages preserved verbatim from the legacy API. Existing
// callers match on these strings, so they ride along in the Message field
// of the tagged result instead of replacing it.
const (
	MsgUserNotFound      = "User not found"
	MsgNotEnoughData     = "Not enough data"
	MsgNotEnoughAnomaly  = "Not enough data for anomaly detection."
	MsgNoLogsPastWeek    = "No logs for the past week."
	MsgNoProgressLogs    = "No health logs found for the past 7 days."
	MsgNoLogsSuggestions = "No logs for suggestions."
	MsgNoAnomalies       = "No anomalies detected in the last week."
	MsgHealthLogAdded    = "Health log added"
)

// Correlation verdicts, also preserved verbatim.
const (
	MsgMoodImproves  = "Your mood improves with more sleep!"
	MsgMoodWorsens   = "Your mood worsens with more sleep."
	MsgNoCorrelation = "No strong correlation between mood and sleep detected."
)

// AnalysisResult is the tagged result every analysis returns. Data is nil
// unless Kind is ResultData; Message carries the legacy sentinel (or
// verdict) string when one applies.
type AnalysisResult struct {
	Kind    ResultKind  `json:"kind"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// CorrelationOutcome carries the computed coefficient alongside the
// verdict message for callers that want the number, not just the verdict.
type CorrelationOutcome struct {
	Coefficient float64 `json:"coefficient"`
	SampleSize  int     `json:"sample_size"`
}

// MetricAverages holds the weekly per-metric averages. Steps is rounded
// to the nearest integer; the other two are rounded to 2 decimal places.
type MetricAverages struct {
	Steps       int     `json:"steps"`
	SleepHours  float64 `json:"sleep_hours"`
	WaterIntake float64 `json:"water_intake"`
}

// TrendDirection classifies a metric's week-internal movement.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// MetricTrends holds the per-metric trend classifications.
type MetricTrends struct {
	Steps       TrendDirection `json:"steps"`
	SleepHours  TrendDirection `json:"sleep_hours"`
	WaterIntake TrendDirection `json:"water_intake"`
}

// TrendReport is the weekly trend analysis output.
type TrendReport struct {
	Averages MetricAverages `json:"averages"`
	Trends   MetricTrends   `json:"trends"`
}

// Anomaly is one flagged log: a day whose steps or sleep fell below half
// of the week's mean. Only the fields callers render are exposed.
type Anomaly struct {
	Date       time.Time `json:"date"`
	Steps      int       `json:"steps"`
	SleepHours float64   `json:"sleep_hours"`
}
