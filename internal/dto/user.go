package dto

import "github.com/noah-isme/admissions-crm-api/internal/models"

// CreateUserRequest registers the caller's profile. Both fields are optional.
type CreateUserRequest struct {
	Name string `json:"name" validate:"max=200"`
	Role string `json:"role" validate:"omitempty,oneof=admin user"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// UserSummary is the directory entry shape used for assignee pickers.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func UserToWire(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: FormatTimestamp(u.CreatedAt),
	}
}

func UsersToSummaries(users []models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, UserSummary{
			ID:    users[i].ID,
			Name:  users[i].DisplayName(),
			Email: users[i].Email,
			Role:  string(users[i].Role),
		})
	}
	return out
}
