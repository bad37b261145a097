// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LeaderboardEntry is a single row of the leaderboard: a user projection
// ordered by total score with a dense rank computed by the database.
type LeaderboardEntry struct {
	// Rank is the 1-based position within the requested leaderboard slice.
	Rank int `json:"rank"`

	// UserID identifies the ranked user.
	UserID int64 `json:"userId"`

	// Name is the display name of the ranked user.
	Name string `json:"name"`

	// Role is the account role of the ranked user.
	Role Role `json:"role"`

	// Sport is the sport the ranked user is associated with.
	Sport string `json:"sport"`

	// Location is the location of the ranked user.
	Location string `json:"location"`

	// TotalScore is the score the ordering is based on.
	TotalScore int `json:"totalScore"`
}

// LeaderboardFilter narrows the leaderboard query. Zero values mean
// "no filter"; Limit is capped by the repository.
type LeaderboardFilter struct {
	// Role restricts entries to a single account role when non-empty.
	Role Role

	// Sport restricts entries to a single sport when non-empty.
	Sport string

	// Limit is the maximum number of entries to return.
	Limit uint64
}
