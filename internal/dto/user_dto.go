package dto

import (
	"github.com/google/uuid"
)

type UserDTO struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	Phone    string    `json:"phone,omitempty"`
}

type PublicProfileDTO struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=2"`
	Phone    string `json:"phone"`
}

type OnlineUsersDTO struct {
	UserIds []uuid.UUID `json:"user_ids"`
}
