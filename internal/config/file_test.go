package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	want := StructuredConfig{
		App: App{
			TokenSignKey:  "panel-secret",
			TokenIssuer:   "go-panel",
			TokenDuration: time.Hour,
			Version:       "1.11.3",
			LogLevel:      "info",
		},
		Storage: Storage{DB: DB{Driver: DriverSQLite, DSN: "file:panel.db", MaxOpenConns: 1}},
		Server:  Server{HTTPAddress: "0.0.0.0:8080", RequestTimeout: 30 * time.Second},
	}

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "json",
			content: `{
  "app": {"token_sign_key": "panel-secret", "token_issuer": "go-panel", "token_duration": "1h", "version": "1.11.3", "log_level": "info"},
  "storage": {"db": {"driver": "sqlite3", "dsn": "file:panel.db", "max_open_conns": 1}},
  "server": {"http_address": "0.0.0.0:8080", "request_timeout": "30s"}
}`,
		},
		{
			name: "yaml",
			content: `
app:
  token_sign_key: panel-secret
  token_issuer: go-panel
  token_duration: 1h
  version: "1.11.3"
  log_level: info
storage:
  db:
    driver: sqlite3
    dsn: "file:panel.db"
    max_open_conns: 1
server:
  http_address: "0.0.0.0:8080"
  request_timeout: 30s
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(writeConfigFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, *cfg)
		})
	}
}

func TestParseFile_EmptyFile(t *testing.T) {
	cfg, err := parseFile(writeConfigFile(t, ""))

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "truncated json", content: `{"app": `, wantErr: "error decoding config file"},
		{name: "bad duration", content: `{"server": {"request_timeout": "soon"}}`, wantErr: "error decoding config file"},
		{name: "unknown key", content: `{"storage": {"db": {"database_uri": "file:panel.db"}}}`, wantErr: "database_uri"},
		{name: "file path is not configurable", content: `{"file_path": "other.json"}`, wantErr: "file_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(writeConfigFile(t, tt.content))
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, err := parseFile("does-not-exist.yaml")
	assert.ErrorContains(t, err, "error reading config file")
}
