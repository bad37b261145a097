// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()

	// first source wins for non-zero fields
	b.configs = append(b.configs, &StructuredConfig{
		Auth:   Auth{TokenSignKey: "from-env"},
		Server: Server{HTTPAddress: "localhost:6000"},
	})
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{TokenSignKey: "from-flags", TokenIssuer: "flags-issuer"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/khoj"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey)
	assert.Equal(t, "flags-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, "localhost:6000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/khoj", cfg.Storage.DB.DSN)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/khoj"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultTimeout, cfg.Server.RequestTimeout)
}

func TestBuild_MissingSignKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/khoj"}},
	})

	_, err := b.build()
	require.ErrorIs(t, err, ErrMissingTokenSignKey)
}

func TestBuild_MissingDSN(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth: Auth{TokenSignKey: "secret"},
	})

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:9001",
		"-d", "postgres://localhost/khoj",
		"-token-sign-key", "flag-secret",
		"-token-issuer", "flag-issuer",
		"-token-duration", "12h",
		"-request-timeout", "45s",
		"-server-url", "http://example.com:9001",
		"-c", "/tmp/khoj.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9001", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/khoj", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://example.com:9001", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/khoj.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Auth.TokenSignKey)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost", input: "localhost:5001", want: "localhost:5001"},
		{name: "ip address", input: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}
