package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.API.BaseURL = "https://hiremind.example.com"
	cfg.Speech.TranscribeCommand = "whisper-stream --stdout"

	if err := Write(tmpDir, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.API.BaseURL != "https://hiremind.example.com" {
		t.Errorf("BaseURL: got %q", loaded.API.BaseURL)
	}
	if loaded.Speech.TranscribeCommand != "whisper-stream --stdout" {
		t.Errorf("TranscribeCommand: got %q", loaded.Speech.TranscribeCommand)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("default BaseURL: got %q", cfg.API.BaseURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level: got %q", cfg.Log.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := Write(tmpDir, Default()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	t.Setenv("HIREMIND_API_BASE", "https://staging.example.com")
	t.Setenv("HIREMIND_LOG_LEVEL", "debug")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("BaseURL override: got %q", cfg.API.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level override: got %q", cfg.Log.Level)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("api: [not a mapping"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestStateDirEnvOverride(t *testing.T) {
	t.Setenv("HIREMIND_STATE_DIR", "/tmp/hm-test-state")
	if got := StateDir(); got != "/tmp/hm-test-state" {
		t.Errorf("StateDir: got %q", got)
	}
}
