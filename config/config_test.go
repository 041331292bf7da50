package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	wd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	if err := LoadConfig(""); err != nil {
		t.Fatalf("expected defaults without a config file, got: %v", err)
	}
	if AppConfig.Server.Port != 8080 {
		t.Errorf("unexpected default port: %d", AppConfig.Server.Port)
	}
	if AppConfig.Logging.Level != "info" {
		t.Errorf("unexpected default log level: %s", AppConfig.Logging.Level)
	}
	if AppConfig.Analysis.MaxFileReadSize <= 0 {
		t.Errorf("default file size cap must be positive, got %d", AppConfig.Analysis.MaxFileReadSize)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: 9999\nollama:\n  model: test-model\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := LoadConfig(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if AppConfig.Server.Port != 9999 {
		t.Errorf("expected port 9999, got %d", AppConfig.Server.Port)
	}
	if AppConfig.Ollama.Model != "test-model" {
		t.Errorf("expected overridden model, got %s", AppConfig.Ollama.Model)
	}
	// Unset keys keep their defaults.
	if AppConfig.Ollama.Host == "" {
		t.Error("expected default host to survive partial config")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for an explicit missing path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
