package dto

import (
	"github.com/deniz/courseboard/internal/app/models"
)

// RegisterRequest is the request body for POST /register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// LoginRequest is the request body for POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the safe user projection returned by the API.
// The password hash is never part of it.
type UserResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.RoleType `json:"role"`
}

// NewUserResponse builds the safe projection of a user
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.RoleType,
	}
}

// RegisterResponse is the response body for POST /register
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse is the response body for POST /login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// TeacherResponse is one entry of GET /teachers
type TeacherResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
