// Package assistant implements a tool-using agent driven by a
// modeladapter.Completer. Each cycle appends the user input to the
// conversation, asks the completer for a decision over a prompt built from
// the tool descriptions and recent history, and either dispatches the
// requested tool calls or passes the conversational reply through. A failing
// tool never aborts the cycle; failures degrade to text in the reply.
package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthlab/hearth/pkg/actions"
	"github.com/hearthlab/hearth/pkg/agents"
	"github.com/hearthlab/hearth/pkg/chats/chat"
	"github.com/hearthlab/hearth/pkg/chats/content"
	"github.com/hearthlab/hearth/pkg/chats/message"
	"github.com/hearthlab/hearth/pkg/chats/role"
	"github.com/hearthlab/hearth/pkg/modeladapter"
	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

// Compile-time check that *Agent implements agents.Named.
var _ agents.Named = (*Agent)(nil)

// DefaultHistoryWindow is how many recent messages are included in the
// decision prompt when no window is configured.
const DefaultHistoryWindow = 5

// Agent is a tool-using assistant. It owns its conversation and toolboxes
// exclusively.
type Agent struct {
	agents.Base
	Completer modeladapter.Completer
	ToolBoxes []*toolbox.ToolBox
	Chat      *chat.Chat

	// HistoryWindow bounds how many recent messages the decision prompt
	// includes. Zero means DefaultHistoryWindow.
	HistoryWindow int
}

// New creates an assistant with the given name, completer, conversation, and
// toolboxes. A nil chat gets a fresh unbounded one; a nil logger falls back
// to slog.Default.
func New(name string, completer modeladapter.Completer, c *chat.Chat, log *slog.Logger, tbs ...*toolbox.ToolBox) *Agent {
	if c == nil {
		c = chat.New()
	}

	return &Agent{
		Base:      agents.NewBase(name, log),
		Completer: completer,
		ToolBoxes: tbs,
		Chat:      c,
	}
}

// Tools returns all tools from all registered toolboxes.
func (a *Agent) Tools() []toolbox.Tool {
	var tools []toolbox.Tool
	for _, tb := range a.ToolBoxes {
		tools = append(tools, tb.Tools()...)
	}
	return tools
}

// Step runs one cycle for a user input. The returned action is the name of
// the dispatched tool, or actions.Respond for a conversational reply. The
// only failure Step propagates is the completer's own error (typically
// context cancellation during the simulated latency).
func (a *Agent) Step(ctx context.Context, input string) (agents.Result, error) {
	a.Chat.Append(message.NewText("user", role.User, input))
	a.Perceived(ctx, input)

	reply, err := a.Completer.Complete(ctx, a.promptChat(), a.Tools())
	if err != nil {
		return agents.Result{}, fmt.Errorf("assistant: complete: %w", err)
	}

	reply.Sender = a.Name
	a.Chat.Append(reply)

	calls := reply.ToolCalls()
	if len(calls) == 0 {
		action := actions.Respond
		a.Decided(ctx, action)
		a.Acted(ctx, action)

		return agents.Result{Action: action, Output: reply.TextContent()}, nil
	}

	action := actions.Action(calls[0].Name)
	a.Decided(ctx, action)

	output := a.dispatch(ctx, calls)
	a.Chat.Append(message.NewText(a.Name, role.Assistant, output))
	a.Acted(ctx, action)

	return agents.Result{Action: action, Output: output}, nil
}

// promptChat builds the transient conversation sent to the completer: the
// tool descriptions as a system message followed by the recent history.
func (a *Agent) promptChat() *chat.Chat {
	window := a.HistoryWindow
	if window <= 0 {
		window = DefaultHistoryWindow
	}

	var descriptions string
	for _, tb := range a.ToolBoxes {
		descriptions += tb.Describe()
	}

	prompt := chat.New(message.NewText(a.Name, role.System,
		"You have access to the following tools:\n"+descriptions))
	prompt.Append(a.Chat.LastN(window)...)

	return prompt
}

// dispatch executes every tool call, records the results in the
// conversation, and composes the human-readable outcome.
func (a *Agent) dispatch(ctx context.Context, calls []content.ToolCall) string {
	output := "I used " + calls[0].Name + " to help answer your question."

	for _, tc := range calls {
		result := a.callTool(ctx, tc)
		a.Chat.Append(message.New(a.Name, role.Tool, result))

		if result.IsError {
			output += fmt.Sprintf(" Error using tool %q: %s", tc.Name, result.Content)
		} else {
			output += fmt.Sprintf(" Tool %q returned: %s", tc.Name, result.Content)
		}
	}

	return output
}

// callTool searches all toolboxes for the named tool and executes it. An
// unknown name degrades to a not-found result, matching toolbox behavior.
func (a *Agent) callTool(ctx context.Context, tc content.ToolCall) content.ToolResult {
	for _, tb := range a.ToolBoxes {
		if _, ok := tb.Get(tc.Name); ok {
			return tb.Call(ctx, tc)
		}
	}

	return content.ToolResult{
		ToolCallID: tc.ID,
		Content:    fmt.Sprintf("tool not found: %s", tc.Name),
		IsError:    true,
	}
}
