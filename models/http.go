// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/auth/register.
// All fields except ProfilePictureURL are required.
type RegisterRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	Role              Role   `json:"role"`
	Sport             string `json:"sport"`
	Location          string `json:"location"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the 201 body of POST /api/auth/register.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse is the 200 body of POST /api/auth/login.
// User carries every stored field except the password hash.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the body of every non-2xx response.
// The client displays Message verbatim.
type ErrorResponse struct {
	Message string `json:"message"`
}

// SendMessageRequest is the body of POST /api/messages.
type SendMessageRequest struct {
	RecipientID int64  `json:"recipientId"`
	Body        string `json:"body"`
}

// UpdateProfileRequest is the body of PUT /api/users/me.
// Nil fields are left unchanged; ranking stats and role are not
// client-writable and have no counterpart here.
type UpdateProfileRequest struct {
	Name              *string `json:"name,omitempty"`
	Sport             *string `json:"sport,omitempty"`
	Location          *string `json:"location,omitempty"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
}
