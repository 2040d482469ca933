package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-agent-go/runner"

	"github.com/selvam85/google-adk-samples/internal/agents"
	"github.com/selvam85/google-adk-samples/internal/chat"
)

func newTravelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "travel",
		Short: "Travel assistant with flight, hotel, and research tools",
		Long: "Interactive travel assistant with get_flight_status and search_hotels tools, " +
			"plus a research sub-agent wrapped as a tool.",
		RunE: runTravel,
	}
}

func runTravel(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("Using model: %s\n", cfg.Model.Name)

	service, err := newSessionService(cfg)
	if err != nil {
		return err
	}

	travel := agents.NewTravelAssistant(newModel(cfg), cfg.Generation)
	r := runner.NewRunner("travel-assistant", travel, runner.WithSessionService(service))
	defer r.Close()

	c := chat.New(r,
		chat.WithStreaming(cfg.Generation.Streaming),
		chat.WithExamples([]string{
			"What's the status of flight AA123?",
			"Find hotels in Paris for March 15-20, 2026",
			"Tell me about popular attractions in Tokyo",
		}),
	)
	fmt.Println("Travel Assistant Ready!")
	fmt.Printf("Session: %s\n\n", c.SessionID())
	return c.Run(cmd.Context())
}
