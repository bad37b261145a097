// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the account type chosen at registration.
// Only the three enumerated values are accepted by the registration flow;
// the database enforces the same set with a CHECK constraint.
type Role string

const (
	RoleAthlete Role = "Athlete"
	RoleCoach   Role = "Coach"
	RoleSponsor Role = "Sponsor"
)

// IsValid reports whether r is one of the enumerated account roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAthlete, RoleCoach, RoleSponsor:
		return true
	}
	return false
}

// User represents an account entity used for authentication and presentation.
// It contains identity attributes, profile data, and ranking stats.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database at registration.
	UserID int64 `json:"userId"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	// Uniqueness is guaranteed by a UNIQUE constraint on the users table.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST never be serialized into API responses.
	PasswordHash string `json:"-"`

	// Role is one of Athlete, Coach, or Sponsor.
	Role Role `json:"role"`

	// Sport is the free-text sport the user is associated with.
	Sport string `json:"sport"`

	// Location is the free-text location of the user.
	Location string `json:"location"`

	// ProfilePictureURL holds the profile picture, typically as a
	// base64-encoded data URL uploaded from the client.
	ProfilePictureURL string `json:"profilePictureUrl"`

	// DistrictRank is the user's rank within their district.
	// Defaults to zero at registration and is never negative.
	DistrictRank int `json:"districtRank"`

	// StateRank is the user's rank within their state.
	// Defaults to zero at registration and is never negative.
	StateRank int `json:"stateRank"`

	// TotalScore is the accumulated performance score used to order the
	// leaderboard. Defaults to zero at registration and is never negative.
	TotalScore int `json:"totalScore"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the most recent profile update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
