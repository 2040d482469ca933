// Package config loads the sample CLI configuration from an optional YAML
// file, with environment overrides for the settings the samples read from
// the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Session backend names accepted by the samples.
const (
	SessionInMemory = "inmemory"
	SessionRedis    = "redis"
)

// DefaultModelName is used when neither the config file, the --model flag,
// nor the MODEL_NAME environment variable selects a model.
const DefaultModelName = "deepseek-chat"

// ModelNameEnv selects the model identifier, taking precedence over the
// config file.
const ModelNameEnv = "MODEL_NAME"

// Config is the full sample configuration.
type Config struct {
	Model      ModelConfig      `yaml:"model"`
	Generation GenerationConfig `yaml:"generation"`
	Session    SessionConfig    `yaml:"session"`
	LogLevel   string           `yaml:"log_level"`
}

// ModelConfig selects the chat model and its endpoint. APIKey and BaseURL
// are optional; when empty the model provider falls back to its own
// environment defaults.
type ModelConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// GenerationConfig carries the generation parameters handed to the agents.
type GenerationConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Streaming   bool    `yaml:"streaming"`
}

// SessionConfig selects the conversation session backend.
type SessionConfig struct {
	Backend  string   `yaml:"backend"`
	RedisURL string   `yaml:"redis_url"`
	TTL      Duration `yaml:"ttl"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "30m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Name: DefaultModelName,
		},
		Generation: GenerationConfig{
			MaxTokens:   2000,
			Temperature: 0.7,
			Streaming:   true,
		},
		Session: SessionConfig{
			Backend:  SessionInMemory,
			RedisURL: "redis://127.0.0.1:6379",
			TTL:      Duration(30 * time.Minute),
		},
		LogLevel: "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults with environment overrides applied. The result is not
// validated; callers run Validate once any overrides of their own are in.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if name := os.Getenv(ModelNameEnv); name != "" {
		c.Model.Name = name
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	switch c.Session.Backend {
	case SessionInMemory, SessionRedis:
	default:
		return fmt.Errorf("unknown session backend %q (want %s or %s)",
			c.Session.Backend, SessionInMemory, SessionRedis)
	}
	if c.Model.Name == "" {
		return fmt.Errorf("model name is empty")
	}
	return nil
}
