// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	usersDomain "github.com/allisson/filebucket/internal/users/domain"
)

// UserResponse represents a user in API responses. The password hash is
// never included.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *usersDomain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
