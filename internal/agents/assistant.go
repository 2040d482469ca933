// Package agents builds the sample agents: a model-agnostic assistant with
// weather and stock tools, and a travel assistant that adds flight status,
// hotel search, and a research sub-agent wrapped as a tool.
package agents

import (
	"trpc.group/trpc-go/trpc-agent-go/agent/llmagent"
	"trpc.group/trpc-go/trpc-agent-go/model"
	"trpc.group/trpc-go/trpc-agent-go/tool"

	"github.com/selvam85/google-adk-samples/internal/config"
	"github.com/selvam85/google-adk-samples/internal/tools"
)

// AssistantName is the agent name of the model-agnostic assistant sample.
const AssistantName = "assistant"

const assistantInstruction = `You are a helpful assistant that can:
- Answer questions using your knowledge
- Get weather information for any city using the get_weather tool
- Get stock prices for any ticker symbol using the get_stock_price tool

Be concise and helpful in your responses.`

// NewAssistant builds the model-agnostic assistant agent.
func NewAssistant(m model.Model, gen config.GenerationConfig) *llmagent.LLMAgent {
	return llmagent.New(
		AssistantName,
		llmagent.WithModel(m),
		llmagent.WithDescription("A helpful assistant with weather and stock price tools."),
		llmagent.WithInstruction(assistantInstruction),
		llmagent.WithGenerationConfig(generationConfig(gen)),
		llmagent.WithTools([]tool.Tool{
			tools.NewWeatherTool(),
			tools.NewStockTool(),
		}),
	)
}

// generationConfig converts the sample config into the framework's
// generation parameters.
func generationConfig(gen config.GenerationConfig) model.GenerationConfig {
	return model.GenerationConfig{
		MaxTokens:   intPtr(gen.MaxTokens),
		Temperature: floatPtr(gen.Temperature),
		Stream:      gen.Streaming,
	}
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
