// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/shopkit/shopkit/internal/model"
	"github.com/shopkit/shopkit/internal/service"
)

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest represents the request body for signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse is returned on successful signup.
type SignupResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// SigninResponse is returned on successful signin.
// The password hash is never included.
type SigninResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// ErrorResponse represents an API error. Errors carries itemized field
// errors for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []service.FieldError `json:"errors,omitempty"`
}
