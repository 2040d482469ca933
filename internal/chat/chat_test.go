package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-go/agent"
	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/model"
)

// fakeRunner replays a fixed set of events for every turn.
type fakeRunner struct {
	events []*event.Event
	err    error
	turns  int
}

func (f *fakeRunner) Run(
	_ context.Context,
	_, _ string,
	_ model.Message,
	_ ...agent.RunOption,
) (<-chan *event.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.turns++
	ch := make(chan *event.Event, len(f.events))
	for _, evt := range f.events {
		ch <- evt
	}
	close(ch)
	return ch, nil
}

func (f *fakeRunner) Close() error { return nil }

func deltaEvent(content string) *event.Event {
	return &event.Event{Response: &model.Response{
		Choices: []model.Choice{{Delta: model.Message{Content: content}}},
	}}
}

func TestRun_StreamsContentAndExits(t *testing.T) {
	r := &fakeRunner{events: []*event.Event{
		deltaEvent("Hello"),
		deltaEvent(", world"),
	}}
	in := strings.NewReader("hi\nquit\n")
	out := &bytes.Buffer{}

	c := New(r, WithInput(in), WithOutput(out), WithExamples([]string{"What's the weather?"}))
	require.NoError(t, c.Run(context.Background()))

	got := out.String()
	require.Contains(t, got, "Try these prompts")
	require.Contains(t, got, "What's the weather?")
	require.Contains(t, got, "Hello, world")
	require.Contains(t, got, "Goodbye")
	require.Equal(t, 1, r.turns)
}

func TestRun_BlankLinesAndExitVariants(t *testing.T) {
	for _, sentinel := range []string{"quit", "EXIT", "q"} {
		r := &fakeRunner{}
		in := strings.NewReader("\n   \n" + sentinel + "\n")
		out := &bytes.Buffer{}
		c := New(r, WithInput(in), WithOutput(out))
		require.NoError(t, c.Run(context.Background()))
		require.Zero(t, r.turns, "blank lines must not start a turn")
	}
}

func TestRun_EOFExitsCleanly(t *testing.T) {
	c := New(&fakeRunner{}, WithInput(strings.NewReader("")), WithOutput(&bytes.Buffer{}))
	require.NoError(t, c.Run(context.Background()))
}

func TestRun_InvocationFaultIsFatal(t *testing.T) {
	r := &fakeRunner{err: errors.New("backend unavailable")}
	in := strings.NewReader("hi\nquit\n")
	out := &bytes.Buffer{}

	c := New(r, WithInput(in), WithOutput(out))
	err := c.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "backend unavailable")
	require.Contains(t, out.String(), "backend unavailable")
}

func TestRender_ToolActivity(t *testing.T) {
	toolCall := &event.Event{Response: &model.Response{
		Choices: []model.Choice{{Message: model.Message{
			Role: model.RoleAssistant,
			ToolCalls: []model.ToolCall{{
				ID: "call-1",
				Function: model.FunctionDefinitionParam{
					Name:      "get_weather",
					Arguments: []byte(`{"city":"Miami"}`),
				},
			}},
		}}},
	}}
	toolResult := &event.Event{Response: &model.Response{
		Choices: []model.Choice{{Message: model.Message{
			Role:    model.RoleTool,
			ToolID:  "call-1",
			Content: `{"city":"Miami","temperature":"82°F"}`,
		}}},
	}}

	out := &bytes.Buffer{}
	c := New(&fakeRunner{}, WithOutput(out))

	ch := make(chan *event.Event, 3)
	ch <- toolCall
	ch <- toolResult
	ch <- deltaEvent("It is 82°F in Miami.")
	close(ch)
	c.render(ch)

	got := out.String()
	require.Contains(t, got, "get_weather")
	require.Contains(t, got, `{"city":"Miami"}`)
	require.Contains(t, got, "Tool result (ID: call-1)")
	require.Contains(t, got, "It is 82°F in Miami.")
}

func TestRender_InBandError(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(&fakeRunner{}, WithOutput(out))

	ch := make(chan *event.Event, 1)
	ch <- &event.Event{Response: &model.Response{
		Error: &model.ResponseError{Message: "rate limited"},
	}}
	close(ch)
	c.render(ch)

	require.Contains(t, out.String(), "rate limited")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short untouched", in: "82°F and sunny", max: 200, want: "82°F and sunny"},
		{name: "ascii cut", in: "abcdef", max: 4, want: "abcd..."},
		{name: "multi-byte boundary", in: "⭐⭐⭐⭐", max: 7, want: "⭐⭐..."},
		{name: "arrow boundary", in: "JFK → LAX", max: 5, want: "JFK ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			require.Equal(t, tt.want, got)
			require.True(t, utf8.ValidString(got))
		})
	}
}

func TestRender_NonStreaming(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(&fakeRunner{}, WithOutput(out), WithStreaming(false))

	ch := make(chan *event.Event, 1)
	ch <- &event.Event{Response: &model.Response{
		Choices: []model.Choice{{Message: model.NewAssistantMessage("Full answer.")}},
	}}
	close(ch)
	c.render(ch)

	require.Contains(t, out.String(), "Full answer.")
}
