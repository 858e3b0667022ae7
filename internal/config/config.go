package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Inference InferenceConfig `toml:"inference"`
	Batch     BatchConfig     `toml:"batch"`
	Observer  ObserverConfig  `toml:"observer"`
}

type InferenceConfig struct {
	Endpoint     string  `toml:"endpoint"`
	Token        string  `toml:"token"`
	MaxNewTokens int     `toml:"max_new_tokens"`
	Temperature  float64 `toml:"temperature"`
	TopP         float64 `toml:"top_p"`
	TimeoutSecs  int     `toml:"timeout_secs"`
}

type BatchConfig struct {
	InputDir  string `toml:"input_dir"`
	OutputDir string `toml:"output_dir"`
}

type ObserverConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Inference: InferenceConfig{
			MaxNewTokens: 2048,
			Temperature:  0.3,
			TopP:         0.9,
			TimeoutSecs:  60,
		},
		Batch: BatchConfig{
			InputDir:  "documents",
			OutputDir: "records",
		},
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
func Load(path string) Config {
	cfg := Default()

	if path == "" {
		path = "lawlens.toml"
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	// Env overrides
	if v := os.Getenv("LAWLENS_INFERENCE_ENDPOINT"); v != "" {
		cfg.Inference.Endpoint = v
	}
	if v := os.Getenv("LAWLENS_INFERENCE_TOKEN"); v != "" {
		cfg.Inference.Token = v
	}
	if v := os.Getenv("LAWLENS_INFERENCE_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Inference.TimeoutSecs = n
		}
	}
	if v := os.Getenv("LAWLENS_OBSERVER_ENABLED"); v != "" {
		cfg.Observer.Enabled = v == "true" || v == "1"
	}

	return cfg
}
