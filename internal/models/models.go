package models

import "time"

// User represents an account that owns health logs
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// HealthLog represents one observation for one user on one calendar day.
// Date carries day granularity only; logs are immutable once created.
// There is no uniqueness constraint on (user, date): a user may record
// several logs for the same day and every analysis treats each record as
// an independent sample.
type HealthLog struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Date        time.Time `json:"date"`
	Steps       int       `json:"steps"`
	SleepHours  float64   `json:"sleep_hours"`
	WaterIntake float64   `json:"water_intake"`
	Mood        Mood      `json:"mood"`
	CreatedAt   time.Time `json:"created_at"`
}

// LogHealthRequest represents the request to record a daily health log
type LogHealthRequest struct {
	Username    string  `json:"username" binding:"required"`
	Steps       int     `json:"steps" binding:"gte=0"`
	SleepHours  float64 `json:"sleep_hours" binding:"gte=0"`
	WaterIntake float64 `json:"water_intake" binding:"gte=0"`
	Mood        Mood    `json:"mood" binding:"required,oneof=sad neutral happy stressed excited"`
}

// UserStats is the admin per-user aggregate: lifetime step total and
// lifetime sleep/water averages across every log the user has recorded.
type UserStats struct {
	Username    string  `json:"username"`
	Steps       int     `json:"steps"`
	SleepHours  float64 `json:"sleep_hours"`
	WaterIntake float64 `json:"water_intake"`
}

// UserData is the admin export view: a user together with all their logs,
// newest first.
type UserData struct {
	User       User        `json:"user"`
	HealthLogs []HealthLog `json:"health_logs"`
}
