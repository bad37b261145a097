// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by config validation when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source. Token issuance cannot work
	// without it, so startup is aborted.
	ErrMissingTokenSignKey = errors.New("missing token signing key")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server base URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
