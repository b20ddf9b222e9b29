package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(key, envPrefix) {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Provider != "chalk247" {
		t.Fatalf("expected chalk247 provider, got %s", cfg.Provider)
	}
	if cfg.APIBaseURL != "https://delivery.chalk247.com" {
		t.Fatalf("unexpected base URL %s", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.MissingRanking != "fail" {
		t.Fatalf("expected fail policy default, got %s", cfg.MissingRanking)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("NFLEVENTS_API_KEY", "secret")
	t.Setenv("NFLEVENTS_OUTPUT_DIR", "/tmp/out")
	t.Setenv("NFLEVENTS_HTTP_TIMEOUT", "3s")
	t.Setenv("NFLEVENTS_MISSING_RANKING", "drop")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.APIKey != "secret" || cfg.OutputDir != "/tmp/out" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.MissingRanking != "drop" {
		t.Fatalf("expected drop policy, got %s", cfg.MissingRanking)
	}
}

func TestLoadYAMLFileThenEnvWins(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "api_key: from-file\nsport: NFL\noutput_dir: file-out\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed writing config file: %v", err)
	}
	t.Setenv(envConfigPath, path)
	t.Setenv("NFLEVENTS_OUTPUT_DIR", "env-out")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.APIKey != "from-file" {
		t.Fatalf("expected file value, got %s", cfg.APIKey)
	}
	if cfg.OutputDir != "env-out" {
		t.Fatalf("expected env to win over file, got %s", cfg.OutputDir)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadValidatesPolicy(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("NFLEVENTS_MISSING_RANKING", "ignore")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestLoadValidatesProvider(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("NFLEVENTS_PROVIDER", "espn")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadValidatesTimeout(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("NFLEVENTS_HTTP_TIMEOUT", "-1s")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}
