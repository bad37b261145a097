// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and validates the spark-khoj configuration.
//
// Values are collected from three sources and merged with mergo, earlier
// sources winning: environment variables, command-line flags, and an
// optional JSON file whose path comes from the first two sources.
//
// Server processes require a database DSN and a token signing key; the
// client only needs the server base URL. Defaults exist for the listen
// address, token issuer, token lifetime, and timeouts.
package config
