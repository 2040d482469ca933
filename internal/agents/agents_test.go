package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-go/model"

	"github.com/selvam85/google-adk-samples/internal/config"
)

// stubModel is a minimal model.Model for construction tests.
type stubModel struct{}

func (stubModel) Info() model.Info { return model.Info{Name: "stub-model"} }

func (stubModel) GenerateContent(_ context.Context, _ *model.Request) (<-chan *model.Response, error) {
	ch := make(chan *model.Response)
	close(ch)
	return ch, nil
}

func TestNewAssistant(t *testing.T) {
	ag := NewAssistant(stubModel{}, config.Default().Generation)
	require.Equal(t, AssistantName, ag.Info().Name)
	require.NotEmpty(t, ag.Info().Description)

	names := map[string]bool{}
	for _, tl := range ag.Tools() {
		names[tl.Declaration().Name] = true
	}
	require.True(t, names["get_weather"])
	require.True(t, names["get_stock_price"])
}

func TestNewTravelAssistant(t *testing.T) {
	ag := NewTravelAssistant(stubModel{}, config.Default().Generation)
	require.Equal(t, TravelAssistantName, ag.Info().Name)

	names := map[string]bool{}
	for _, tl := range ag.Tools() {
		names[tl.Declaration().Name] = true
	}
	require.True(t, names["get_flight_status"])
	require.True(t, names["search_hotels"])
	require.True(t, names[ResearchAgentName], "research agent should be exposed as a tool")
}

func TestResearchAgentHasSearchTool(t *testing.T) {
	ag := newResearchAgent(stubModel{}, config.Default().Generation)
	require.Equal(t, ResearchAgentName, ag.Info().Name)

	names := map[string]bool{}
	for _, tl := range ag.Tools() {
		names[tl.Declaration().Name] = true
	}
	require.True(t, names["duckduckgo_search"], "research agent should carry the web search tool")
}
