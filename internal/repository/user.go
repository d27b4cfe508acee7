package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Rahul04022004/wellbeing/backend/internal/models"
	"github.com/Rahul04022004/wellbeing/backend/pkg/postgrest"
)

type userRepository struct {
	client *postgrest.Client
}

// NewUserRepository creates a new user repository backed by PostgREST.
func NewUserRepository(client *postgrest.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	// Usernames are case-sensitive; eq matches exactly.
	query := map[string]interface{}{
		"username": fmt.Sprintf("eq.%s", username),
	}

	body, err := r.client.Query("users", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(users) == 0 {
		return nil, nil
	}

	return &users[0], nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query := map[string]interface{}{
		"order": "created_at.asc",
	}

	body, err := r.client.Query("users", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return users, nil
}
