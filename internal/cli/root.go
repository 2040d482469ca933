// Package cli wires the sample agents into a cobra command per sample.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-agent-go/model/openai"
	"trpc.group/trpc-go/trpc-agent-go/session"
	sessioninmemory "trpc.group/trpc-go/trpc-agent-go/session/inmemory"
	sessionredis "trpc.group/trpc-go/trpc-agent-go/session/redis"

	"github.com/selvam85/google-adk-samples/internal/config"
)

var (
	configPath     string
	modelName      string
	streaming      bool
	sessionBackend string
	redisURL       string
)

// NewRootCmd creates the adk-samples CLI with one subcommand per sample
// agent.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adk-samples",
		Short: "Sample agents built on trpc-agent-go",
		Long: `Sample agents built on trpc-agent-go.

Two interactive demos: a model-agnostic assistant with weather and stock
tools, and a travel assistant with flight status, hotel search, and a
research sub-agent wrapped as a tool.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&modelName, "model", "", "Model name (overrides config and MODEL_NAME)")
	cmd.PersistentFlags().BoolVar(&streaming, "streaming", true, "Enable streaming responses")
	cmd.PersistentFlags().StringVar(&sessionBackend, "session", "", "Session backend: inmemory or redis")
	cmd.PersistentFlags().StringVar(&redisURL, "redis-url", "", "Redis URL for the redis session backend")

	cmd.AddCommand(
		newAssistantCmd(),
		newTravelCmd(),
	)

	return cmd
}

// loadConfig builds the effective configuration: .env file, YAML config,
// environment overrides, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	// Optional .env, same as the original samples.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if modelName != "" {
		cfg.Model.Name = modelName
	}
	if cmd.Root().PersistentFlags().Changed("streaming") {
		cfg.Generation.Streaming = streaming
	}
	if sessionBackend != "" {
		cfg.Session.Backend = sessionBackend
	}
	if redisURL != "" {
		cfg.Session.RedisURL = redisURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.SetLevel(cfg.LogLevel)
	log.Debugf("effective config: model=%s session=%s streaming=%t",
		cfg.Model.Name, cfg.Session.Backend, cfg.Generation.Streaming)
	return cfg, nil
}

// newModel builds the chat model from config. Endpoint settings fall back
// to the provider's own environment defaults when unset.
func newModel(cfg *config.Config) *openai.Model {
	var opts []openai.Option
	if cfg.Model.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.Model.BaseURL))
	}
	if cfg.Model.APIKey != "" {
		opts = append(opts, openai.WithAPIKey(cfg.Model.APIKey))
	}
	return openai.New(cfg.Model.Name, opts...)
}

// newSessionService builds the configured session backend.
func newSessionService(cfg *config.Config) (session.Service, error) {
	switch cfg.Session.Backend {
	case config.SessionRedis:
		service, err := sessionredis.NewService(
			sessionredis.WithRedisClientURL(cfg.Session.RedisURL),
			sessionredis.WithSessionTTL(cfg.Session.TTL.Std()),
		)
		if err != nil {
			return nil, fmt.Errorf("redis session service: %w", err)
		}
		return service, nil
	default:
		return sessioninmemory.NewSessionService(), nil
	}
}
