package dto

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

type RegisterResponse struct {
	UserId    uuid.UUID `json:"user_id"`
	CompanyId uuid.UUID `json:"company_id"`
	Token     string    `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  MeResponse `json:"user"`
}

type InviteEmployeeRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
}

type InviteEmployeeResponse struct {
	UserId     uuid.UUID `json:"user_id"`
	EmployeeId uuid.UUID `json:"employee_id"`
}

type MeResponse struct {
	Id        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	CompanyId *uuid.UUID `json:"company_id,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
}
