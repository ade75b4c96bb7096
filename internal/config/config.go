// Package config handles reading and writing ~/.hiremind/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int          `yaml:"version"`
	API     APIConfig    `yaml:"api"`
	Speech  SpeechConfig `yaml:"speech"`
	Log     LogConfig    `yaml:"log"`
}

// APIConfig controls how the backend is reached.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// SpeechConfig wires the optional speech commands. SpeakCommand is resolved
// automatically (say, espeak-ng) when empty; TranscribeCommand has no
// default because there is no portable speech-to-text binary.
type SpeechConfig struct {
	SpeakCommand      string  `yaml:"speak_command"`
	TranscribeCommand string  `yaml:"transcribe_command"`
	Rate              float64 `yaml:"rate"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

const (
	stateDirName = ".hiremind"
	configFile   = "config.yaml"
)

// StateDir returns the client state directory, ~/.hiremind by default.
// HIREMIND_STATE_DIR overrides it (used by tests and scripted runs).
func StateDir() string {
	if dir := os.Getenv("HIREMIND_STATE_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return stateDirName
	}
	return filepath.Join(home, stateDirName)
}

// Load reads config.yaml from dir, applies defaults for a missing file, and
// then applies HIREMIND_* environment overrides. A .env file in the working
// directory is loaded first, matching how the backend configures itself.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Missing config is fine; defaults apply.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// Write writes cfg to config.yaml in dir, creating dir if needed.
func Write(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL: "http://localhost:8000",
		},
		Speech: SpeechConfig{
			Rate: 0.95,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HIREMIND_API_BASE"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("HIREMIND_SPEAK_COMMAND"); v != "" {
		cfg.Speech.SpeakCommand = v
	}
	if v := os.Getenv("HIREMIND_TRANSCRIBE_COMMAND"); v != "" {
		cfg.Speech.TranscribeCommand = v
	}
	if v := os.Getenv("HIREMIND_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
