package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LASTFM_API_KEY",
		"PLAYLIE_LASTFM_API_KEY",
		"PLAYLIE_USER",
		"PLAYLIE_OUTPUT_WIDTH",
		"PLAYLIE_HTTP_TIMEOUT",
		"PLAYLIE_DATA_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.User != "sebnow" {
		t.Errorf("User = %q, want sebnow", cfg.User)
	}
	if cfg.OutputWidth != 0 {
		t.Errorf("OutputWidth = %d, want 0", cfg.OutputWidth)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir should have a default")
	}
	if cfg.LastFM.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.LastFM.APIKey)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LASTFM_API_KEY", "env_key")
	t.Setenv("PLAYLIE_USER", "rj")
	t.Setenv("PLAYLIE_OUTPUT_WIDTH", "40")
	t.Setenv("PLAYLIE_HTTP_TIMEOUT", "3")
	t.Setenv("PLAYLIE_DATA_DIR", "/tmp/playlie-data")

	cfg, err := load(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.LastFM.APIKey != "env_key" {
		t.Errorf("APIKey = %q, want env_key", cfg.LastFM.APIKey)
	}
	if cfg.User != "rj" {
		t.Errorf("User = %q, want rj", cfg.User)
	}
	if cfg.OutputWidth != 40 {
		t.Errorf("OutputWidth = %d, want 40", cfg.OutputWidth)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v, want 3s", cfg.HTTPTimeout)
	}
	if cfg.HistoryDB() != filepath.Join("/tmp/playlie-data", "history.db") {
		t.Errorf("HistoryDB() = %q", cfg.HistoryDB())
	}
}

func TestLoad_PrefixedAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLAYLIE_LASTFM_API_KEY", "prefixed_key")

	cfg, err := load(t.TempDir())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.LastFM.APIKey != "prefixed_key" {
		t.Errorf("APIKey = %q, want prefixed_key", cfg.LastFM.APIKey)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	content := `user: alice
output_width: 60
lastfm:
  api_key: file_key
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.User != "alice" {
		t.Errorf("User = %q, want alice", cfg.User)
	}
	if cfg.OutputWidth != 60 {
		t.Errorf("OutputWidth = %d, want 60", cfg.OutputWidth)
	}
	if cfg.LastFM.APIKey != "file_key" {
		t.Errorf("APIKey = %q, want file_key", cfg.LastFM.APIKey)
	}

	// Environment overrides the file
	t.Setenv("LASTFM_API_KEY", "env_key")
	cfg, err = load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.LastFM.APIKey != "env_key" {
		t.Errorf("APIKey = %q, want env_key", cfg.LastFM.APIKey)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Validate() = %v, want ErrMissingAPIKey", err)
	}
	wantPath := filepath.Join(GetConfigDir(), "config.yaml")
	if err != nil && !strings.Contains(err.Error(), wantPath) {
		t.Errorf("Validate() = %q, want mention of %s", err, wantPath)
	}

	cfg.LastFM.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
