package toolbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthlab/hearth/pkg/chats/content"
)

// ToolBox orchestrates a collection of tools. It allows registering,
// retrieving, listing, and calling tools. Agents use ToolBox to execute tool
// calls. Tools are kept in registration order; re-registering a name replaces
// the entry in place without changing its position.
type ToolBox struct {
	tools map[string]Tool
	order []string

	// OnReplace, if set, is called whenever Register overwrites an existing
	// tool. The replaced entry is passed to the hook.
	OnReplace func(old Tool)
}

// New creates a new ToolBox ready for use.
func New() *ToolBox {
	return &ToolBox{
		tools: make(map[string]Tool),
	}
}

// Register adds one or more tools to the ToolBox. If a tool with the same
// name already exists, it is replaced (last writer wins) and OnReplace is
// notified.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		if old, exists := tb.tools[t.Name]; exists {
			tb.tools[t.Name] = t
			if tb.OnReplace != nil {
				tb.OnReplace(old)
			}
			continue
		}
		tb.tools[t.Name] = t
		tb.order = append(tb.order, t.Name)
	}
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Merge registers all tools from another ToolBox into this one, preserving
// the other box's registration order. Name collisions are replaced.
func (tb *ToolBox) Merge(other *ToolBox) {
	tb.Register(other.Tools()...)
}

// Tools returns all registered tools in registration order.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.order))
	for _, name := range tb.order {
		result = append(result, tb.tools[name])
	}
	return result
}

// Describe serializes the (name, description) pairs of all tools in
// registration order, one per line, for inclusion in a decision prompt.
// Each registered name appears exactly once, even after re-registration.
func (tb *ToolBox) Describe() string {
	var b strings.Builder
	for _, name := range tb.order {
		t := tb.tools[name]
		fmt.Fprintf(&b, "- %s: %s\n", t.Name, t.Description)
	}
	return b.String()
}

// Call executes a tool call and returns a ToolResult. A missing tool, a
// handler error, or a handler panic all degrade to a descriptive result with
// IsError set; Call never fails the caller's cycle.
func (tb *ToolBox) Call(ctx context.Context, tc content.ToolCall) content.ToolResult {
	t, ok := tb.tools[tc.Name]
	if !ok {
		return content.ToolResult{
			ToolCallID: tc.ID,
			Content:    fmt.Sprintf("tool not found: %s", tc.Name),
			IsError:    true,
		}
	}

	result, err := tb.invoke(ctx, t, tc.Input)
	if err != nil {
		return content.ToolResult{
			ToolCallID: tc.ID,
			Content:    err.Error(),
			IsError:    true,
		}
	}

	return content.ToolResult{
		ToolCallID: tc.ID,
		Content:    result,
	}
}

// invoke runs the handler, converting panics into errors so a misbehaving
// tool cannot abort the agent loop.
func (tb *ToolBox) invoke(ctx context.Context, t Tool, input string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %q panicked: %v", t.Name, r)
		}
	}()

	return t.Handler(ctx, input)
}
