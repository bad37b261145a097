// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// User-visible response messages. The register/login texts reproduce the
// wording the mobile client already displays; changing them breaks deployed
// clients that match on message content.
const (
	msgRegistered          = "User registered successfully!"
	msgMissingFields       = "Please enter all required fields."
	msgInvalidRole         = "Please select a valid role."
	msgEmailTaken          = "An account with this email already exists."
	msgMissingCredentials  = "Please enter email and password."
	msgUserNotFound        = "Invalid credentials. User not found."
	msgPasswordIncorrect   = "Invalid credentials. Password incorrect."
	msgInvalidJSON         = "Invalid JSON was passed."
	msgUnauthorized        = "Authorization token is missing or invalid."
	msgRecipientNotFound   = "Recipient not found."
	msgInvalidMessage      = "Please enter a recipient and a message."
	msgInvalidUpdate       = "Profile fields cannot be empty."
	msgInvalidLeaderboard  = "Invalid leaderboard filters."
	msgInternalServerError = "Server error."
)
