// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {
			"token_sign_key": "json-secret",
			"token_issuer": "json-issuer",
			"token_duration": "6h"
		},
		"storage": {"db": {"dsn": "postgres://localhost/khoj"}},
		"server": {"http_address": "localhost:7001", "request_timeout": "20s"},
		"adapter": {"http_address": "http://localhost:7001", "request_timeout": "10s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 6*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/khoj", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7001", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:7001", cfg.Adapter.HTTPAddress)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanosecond number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestEnv_Parse(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/khoj")
	t.Setenv("SERVER_ADDRESS", "localhost:8001")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "postgres://env/khoj", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8001", cfg.Server.HTTPAddress)
}
