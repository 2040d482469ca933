// Package chat implements the interactive terminal driver shared by the
// sample agents: a read-eval-print loop over the runner's streaming event
// channel for a fixed user and session created at startup.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-agent-go/agent"
	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/model"
	"trpc.group/trpc-go/trpc-agent-go/runner"
)

var (
	userLabel      = color.New(color.FgCyan, color.Bold).Sprint("👤 You: ")
	assistantLabel = color.New(color.FgGreen, color.Bold).Sprint("🤖 Assistant: ")
	errorLabel     = color.New(color.FgRed).Sprint("❌ Error:")
)

// Chat drives one interactive conversation with an agent through a runner.
type Chat struct {
	runner    runner.Runner
	userID    string
	sessionID string
	streaming bool
	in        io.Reader
	out       io.Writer
	examples  []string
}

// Option configures a Chat.
type Option func(*Chat)

// WithStreaming toggles streaming rendering. When disabled the renderer
// prints full messages instead of deltas.
func WithStreaming(streaming bool) Option {
	return func(c *Chat) { c.streaming = streaming }
}

// WithInput sets the reader user turns are read from. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(c *Chat) { c.in = r }
}

// WithOutput sets the writer responses are printed to. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Chat) { c.out = w }
}

// WithExamples sets the example prompts printed in the startup banner.
func WithExamples(examples []string) Option {
	return func(c *Chat) { c.examples = examples }
}

// New creates a chat bound to a runner. The user and session identifiers
// are fixed for the life of the process, as the samples are single-user.
func New(r runner.Runner, opts ...Option) *Chat {
	c := &Chat{
		runner:    r,
		userID:    "demo-user",
		sessionID: fmt.Sprintf("demo-session-%d", time.Now().Unix()),
		streaming: true,
		in:        os.Stdin,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID returns the session identifier used for this conversation.
func (c *Chat) SessionID() string { return c.sessionID }

// Run starts the interactive loop. It returns nil when the user exits with
// a sentinel or the input ends, and an error when a runner invocation
// fails; such faults are printed and then propagated so the process
// terminates.
func (c *Chat) Run(ctx context.Context) error {
	c.printBanner()
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, userLabel)
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if isExitCommand(input) {
			fmt.Fprintln(c.out, "👋 Goodbye!")
			return nil
		}
		if err := c.processMessage(ctx, input); err != nil {
			fmt.Fprintf(c.out, "%s %v\n", errorLabel, err)
			return err
		}
		fmt.Fprintln(c.out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("input scanner error: %w", err)
	}
	return nil
}

func isExitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

func (c *Chat) printBanner() {
	if len(c.examples) == 0 {
		return
	}
	fmt.Fprintln(c.out, "💡 Try these prompts:")
	for _, example := range c.examples {
		fmt.Fprintf(c.out, "   - %s\n", example)
	}
	fmt.Fprintln(c.out)
}

// processMessage runs one conversation turn through the runner and renders
// the resulting event stream.
func (c *Chat) processMessage(ctx context.Context, userMessage string) error {
	message := model.NewUserMessage(userMessage)
	requestID := uuid.New().String()
	eventChan, err := c.runner.Run(ctx, c.userID, c.sessionID, message, agent.WithRequestID(requestID))
	if err != nil {
		return fmt.Errorf("failed to run agent: %w", err)
	}
	c.render(eventChan)
	return nil
}

// render prints the event stream for one turn: streamed content, tool call
// and tool result activity, and in-band errors. It returns when the final
// response arrives or the channel closes.
func (c *Chat) render(eventChan <-chan *event.Event) {
	fmt.Fprint(c.out, assistantLabel)

	var (
		toolCallsDetected bool
		assistantStarted  bool
	)
	for evt := range eventChan {
		c.renderEvent(evt, &toolCallsDetected, &assistantStarted)
		if evt.IsFinalResponse() {
			fmt.Fprintln(c.out)
			break
		}
	}
}

func (c *Chat) renderEvent(evt *event.Event, toolCallsDetected, assistantStarted *bool) {
	if evt.Error != nil {
		fmt.Fprintf(c.out, "\n%s %s\n", errorLabel, evt.Error.Message)
		return
	}
	if c.renderToolCalls(evt, toolCallsDetected, assistantStarted) {
		return
	}
	if c.renderToolResponses(evt) {
		return
	}
	c.renderContent(evt, toolCallsDetected, assistantStarted)
}

func (c *Chat) renderToolCalls(evt *event.Event, toolCallsDetected, assistantStarted *bool) bool {
	if evt.Response == nil || len(evt.Response.Choices) == 0 ||
		len(evt.Response.Choices[0].Message.ToolCalls) == 0 {
		return false
	}
	*toolCallsDetected = true
	if *assistantStarted {
		fmt.Fprintln(c.out)
	}
	fmt.Fprintln(c.out, "🔧 Tool calls:")
	for _, toolCall := range evt.Response.Choices[0].Message.ToolCalls {
		fmt.Fprintf(c.out, "   • %s (ID: %s)\n", toolCall.Function.Name, toolCall.ID)
		if len(toolCall.Function.Arguments) > 0 {
			fmt.Fprintf(c.out, "     Args: %s\n", string(toolCall.Function.Arguments))
		}
	}
	fmt.Fprintln(c.out, "\n🔄 Executing tools...")
	return true
}

func (c *Chat) renderToolResponses(evt *event.Event) bool {
	if evt.Response == nil || len(evt.Response.Choices) == 0 {
		return false
	}
	hasToolResponse := false
	for _, choice := range evt.Response.Choices {
		if choice.Message.Role == model.RoleTool && choice.Message.ToolID != "" {
			fmt.Fprintf(c.out, "✅ Tool result (ID: %s): %s\n",
				choice.Message.ToolID, truncate(strings.TrimSpace(choice.Message.Content), 200))
			hasToolResponse = true
		}
	}
	return hasToolResponse
}

func (c *Chat) renderContent(evt *event.Event, toolCallsDetected, assistantStarted *bool) {
	if evt.Response == nil || len(evt.Response.Choices) == 0 {
		return
	}
	choice := evt.Response.Choices[0]
	content := choice.Message.Content
	if c.streaming {
		content = choice.Delta.Content
	}
	if content == "" {
		return
	}
	if !*assistantStarted {
		if *toolCallsDetected {
			fmt.Fprintf(c.out, "\n%s", assistantLabel)
		}
		*assistantStarted = true
	}
	fmt.Fprint(c.out, content)
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
