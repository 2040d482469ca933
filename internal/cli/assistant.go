package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-agent-go/runner"

	"github.com/selvam85/google-adk-samples/internal/agents"
	"github.com/selvam85/google-adk-samples/internal/chat"
)

func newAssistantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assistant",
		Short: "Model-agnostic assistant with weather and stock tools",
		Long: "Interactive assistant with get_weather and get_stock_price tools. " +
			"Switch providers by changing the MODEL_NAME environment variable.",
		RunE: runAssistant,
	}
}

func runAssistant(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("Using model: %s\n", cfg.Model.Name)

	service, err := newSessionService(cfg)
	if err != nil {
		return err
	}

	assistant := agents.NewAssistant(newModel(cfg), cfg.Generation)
	r := runner.NewRunner("model-agnostic-agent", assistant, runner.WithSessionService(service))
	defer r.Close()

	c := chat.New(r,
		chat.WithStreaming(cfg.Generation.Streaming),
		chat.WithExamples([]string{
			"What's the weather in New York?",
			"What's the current price of AAPL?",
			"Compare the weather in Chicago and Miami",
		}),
	)
	fmt.Printf("✅ Assistant ready! Session: %s\n\n", c.SessionID())
	return c.Run(cmd.Context())
}
