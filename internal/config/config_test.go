package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Inference.MaxNewTokens != 2048 {
		t.Errorf("expected 2048, got %d", cfg.Inference.MaxNewTokens)
	}
	if cfg.Inference.Temperature != 0.3 {
		t.Errorf("expected 0.3, got %v", cfg.Inference.Temperature)
	}
	if cfg.Inference.TimeoutSecs != 60 {
		t.Errorf("expected 60, got %d", cfg.Inference.TimeoutSecs)
	}
	if cfg.Batch.OutputDir != "records" {
		t.Errorf("expected records, got %s", cfg.Batch.OutputDir)
	}
}

func TestLoadFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	os.WriteFile(path, []byte(`
[inference]
endpoint = "https://models.example/invoke"
max_new_tokens = 1024

[observer]
enabled = true
`), 0644)

	cfg := Load(path)
	if cfg.Inference.Endpoint != "https://models.example/invoke" {
		t.Errorf("endpoint = %s", cfg.Inference.Endpoint)
	}
	if cfg.Inference.MaxNewTokens != 1024 {
		t.Errorf("max_new_tokens = %d", cfg.Inference.MaxNewTokens)
	}
	if !cfg.Observer.Enabled {
		t.Error("observer should be enabled")
	}
	// Defaults preserved
	if cfg.Inference.Temperature != 0.3 {
		t.Errorf("default temperature should be preserved, got %v", cfg.Inference.Temperature)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LAWLENS_INFERENCE_ENDPOINT", "https://env.example/invoke")
	t.Setenv("LAWLENS_INFERENCE_TOKEN", "env-token")
	t.Setenv("LAWLENS_INFERENCE_TIMEOUT_SECS", "30")

	cfg := Load("/nonexistent/path.toml")
	if cfg.Inference.Endpoint != "https://env.example/invoke" {
		t.Errorf("endpoint = %s", cfg.Inference.Endpoint)
	}
	if cfg.Inference.Token != "env-token" {
		t.Errorf("token = %s", cfg.Inference.Token)
	}
	if cfg.Inference.TimeoutSecs != 30 {
		t.Errorf("timeout = %d", cfg.Inference.TimeoutSecs)
	}
}

func TestEnvOverrideIgnoresBadTimeout(t *testing.T) {
	t.Setenv("LAWLENS_INFERENCE_TIMEOUT_SECS", "not-a-number")
	cfg := Load("/nonexistent/path.toml")
	if cfg.Inference.TimeoutSecs != 60 {
		t.Errorf("timeout = %d, want default 60", cfg.Inference.TimeoutSecs)
	}
}
