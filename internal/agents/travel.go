package agents

import (
	"trpc.group/trpc-go/trpc-agent-go/agent/llmagent"
	"trpc.group/trpc-go/trpc-agent-go/model"
	"trpc.group/trpc-go/trpc-agent-go/tool"
	agenttool "trpc.group/trpc-go/trpc-agent-go/tool/agent"
	"trpc.group/trpc-go/trpc-agent-go/tool/duckduckgo"

	"github.com/selvam85/google-adk-samples/internal/config"
	"github.com/selvam85/google-adk-samples/internal/tools"
)

// Agent names of the travel sample.
const (
	TravelAssistantName = "travel_assistant"
	ResearchAgentName   = "travel_research"
)

const travelInstruction = `You are a helpful travel assistant that helps users plan trips.

You can help with:
1. **Flight Status** - Check if flights are on time, delayed, or boarding
2. **Hotel Search** - Find available hotels in Paris, Tokyo, or London
3. **Travel Research** - Search the web for destinations, attractions, and travel tips

Guidelines:
- Always use tools to look up information - don't make up data
- For flight status, ask for the flight number if not provided
- When showing hotels, highlight price, rating, and key amenities
- Use the travel_research tool for background on destinations and attractions

Sample flight numbers for testing: AA123, UA456, DL789
Sample cities with hotels: Paris, Tokyo, London`

const researchInstruction = `You are a travel research specialist. Search for:
- Destinations, landmarks, and popular attractions
- Local events, festivals, and cuisine
- General travel facts such as languages, currencies, and climate

Provide concise, helpful information.`

// NewTravelAssistant builds the travel assistant agent. The research
// sub-agent is wrapped as a callable tool so the assistant can delegate
// destination questions to it.
func NewTravelAssistant(m model.Model, gen config.GenerationConfig) *llmagent.LLMAgent {
	research := newResearchAgent(m, gen)
	return llmagent.New(
		TravelAssistantName,
		llmagent.WithModel(m),
		llmagent.WithDescription("A travel assistant with flight status, hotel search, and research tools."),
		llmagent.WithInstruction(travelInstruction),
		llmagent.WithGenerationConfig(generationConfig(gen)),
		llmagent.WithTools([]tool.Tool{
			tools.NewFlightStatusTool(),
			tools.NewHotelSearchTool(),
			agenttool.NewTool(research, agenttool.WithStreamInner(true)),
		}),
	)
}

// newResearchAgent builds the research sub-agent backed by web search.
func newResearchAgent(m model.Model, gen config.GenerationConfig) *llmagent.LLMAgent {
	return llmagent.New(
		ResearchAgentName,
		llmagent.WithModel(m),
		llmagent.WithDescription("Searches for real-time travel information about destinations."),
		llmagent.WithInstruction(researchInstruction),
		llmagent.WithGenerationConfig(generationConfig(gen)),
		llmagent.WithTools([]tool.Tool{duckduckgo.NewTool()}),
	)
}
