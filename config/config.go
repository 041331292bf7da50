package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig defines the HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// OllamaConfig defines the Ollama configuration.
type OllamaConfig struct {
	Host  string `yaml:"host"`
	Model string `yaml:"model"`
}

// AnalysisConfig defines the analysis parameters.
type AnalysisConfig struct {
	MaxFileReadSize int64 `yaml:"max_file_read_size"`
	MaxPromptLength int   `yaml:"max_prompt_length"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Config is the top-level configuration struct.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Ollama   OllamaConfig   `yaml:"ollama"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AppConfig holds the loaded configuration.
var AppConfig *Config

// Default returns the configuration used when no config file is present,
// so the CLI works without any setup.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Ollama: OllamaConfig{
			Host:  "http://localhost:11434",
			Model: "qwen2.5-coder:7b",
		},
		Analysis: AnalysisConfig{
			MaxFileReadSize: 10 << 20,
			MaxPromptLength: 24000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// LoadConfig loads the configuration from the given YAML file into AppConfig.
// An empty path means "config.yaml if it exists, defaults otherwise".
func LoadConfig(path string) error {
	cfg := Default()

	if path == "" {
		path = "config.yaml"
		if _, err := os.Stat(path); err != nil {
			AppConfig = cfg
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	AppConfig = cfg
	return nil
}
