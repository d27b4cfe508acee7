package service

import (
	"context"
	"sort"
	"time"

	"github.com/Rahul04022004/wellbeing/backend/internal/models"
	"github.com/Rahul04022004/wellbeing/backend/internal/repository"
)

// mockUserRepository is an in-memory UserRepository for testing
type mockUserRepository struct {
	users map[string]*models.User
	err   error
}

func newMockUserRepository(users ...*models.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Username] = u
	}
	return m
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if user, ok := m.users[username]; ok {
		return user, nil
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result, nil
}

// mockHealthLogRepository is an in-memory HealthLogRepository for testing
type mockHealthLogRepository struct {
	logs        []models.HealthLog
	err         error
	createCalls int
}

func newMockHealthLogRepository(logs ...models.HealthLog) *mockHealthLogRepository {
	return &mockHealthLogRepository{logs: logs}
}

func (m *mockHealthLogRepository) Create(ctx context.Context, log *models.HealthLog) (*models.HealthLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.createCalls++
	log.CreatedAt = time.Now()
	m.logs = append(m.logs, *log)
	return log, nil
}

func (m *mockHealthLogRepository) GetByUserSince(ctx context.Context, userID string, since time.Time, order repository.SortOrder) ([]models.HealthLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.HealthLog
	for _, log := range m.logs {
		if log.UserID == userID && !log.Date.Before(since) {
			result = append(result, log)
		}
	}
	sortByDate(result, order)
	return result, nil
}

func (m *mockHealthLogRepository) GetRecentByUser(ctx context.Context, userID string, limit int) ([]models.HealthLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.HealthLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	sortByDate(result, repository.SortDesc)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockHealthLogRepository) GetAllByUser(ctx context.Context, userID string) ([]models.HealthLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.HealthLog
	for _, log := range m.logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	sortByDate(result, repository.SortDesc)
	return result, nil
}

func sortByDate(logs []models.HealthLog, order repository.SortOrder) {
	sort.SliceStable(logs, func(i, j int) bool {
		if order == repository.SortAsc {
			return logs[i].Date.Before(logs[j].Date)
		}
		return logs[j].Date.Before(logs[i].Date)
	})
}

// Fixed clock for every test. The weekly window derived from it starts
// at 2026-03-08T00:00:00Z.
var testNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func testLog(userID string, date time.Time, steps int, sleep, water float64, mood models.Mood) models.HealthLog {
	return models.HealthLog{
		ID:          "log-" + date.Format("2006-01-02"),
		UserID:      userID,
		Date:        date,
		Steps:       steps,
		SleepHours:  sleep,
		WaterIntake: water,
		Mood:        mood,
	}
}

func newTestAnalysisService(userRepo repository.UserRepository, logRepo repository.HealthLogRepository) *analysisService {
	svc := NewAnalysisService(userRepo, logRepo).(*analysisService)
	svc.now = func() time.Time { return testNow }
	return svc
}
