// Package keyword implements a deterministic stand-in for a language model.
// It classifies the latest user message into one of a fixed set of intents
// via ordered keyword checks and replies with either a tool call or a canned
// conversational answer. The check order (weather, calculation, search,
// conversational) is a contract: a message matching several intents resolves
// to the earliest check.
package keyword

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hearthlab/hearth/pkg/chats/chat"
	"github.com/hearthlab/hearth/pkg/chats/content"
	"github.com/hearthlab/hearth/pkg/chats/message"
	"github.com/hearthlab/hearth/pkg/chats/role"
	"github.com/hearthlab/hearth/pkg/modeladapter"
	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

// Compile-time check that *Provider implements modeladapter.Completer.
var _ modeladapter.Completer = (*Provider)(nil)

// Tool names the provider knows how to request.
const (
	WeatherTool   = "get_weather"
	CalculateTool = "calculate"
	SearchTool    = "search"
)

// DefaultLocation is used when a weather question names no known location.
const DefaultLocation = "New York"

// DefaultExpression is used when a calculation request contains no
// extractable expression.
const DefaultExpression = "2+2"

// FallbackReply is the canned conversational answer for unclassified input.
const FallbackReply = "I'm not sure how to help with that specific request. " +
	"Could you try asking something about the weather, a calculation, or a search query?"

// knownLocations is checked in order; the first location found in the message
// wins.
var knownLocations = []string{"New York", "London", "Tokyo", "Sydney"}

// exprPattern matches the first "number operator number" substring.
var exprPattern = regexp.MustCompile(`\d+\s*[+\-*/]\s*\d+`)

// searchTriggers are stripped from the message to form a search query.
var searchTriggers = regexp.MustCompile(`(?i)\b(search|find|look up)\b`)

// Provider classifies user messages with ordered keyword checks. It simulates
// the latency of a remote model call before every reply; the wait is
// cancellable through the context.
type Provider struct {
	// Latency is how long Complete blocks before returning. Zero means no wait.
	Latency time.Duration
}

// New creates a Provider with the given simulated latency.
func New(latency time.Duration) *Provider {
	return &Provider{Latency: latency}
}

// Complete classifies the latest user message and returns the assistant's
// reply: a message carrying a single tool call for weather, calculation, and
// search intents, or a canned text reply otherwise. The reply's "thoughts"
// metadata explains the classification.
func (p *Provider) Complete(ctx context.Context, c *chat.Chat, _ []toolbox.Tool) (message.Message, error) {
	if err := p.wait(ctx); err != nil {
		return message.Message{}, err
	}

	input := lastUserText(c)
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "weather"):
		loc := extractLocation(lower)
		return toolCallReply(
			WeatherTool, loc,
			fmt.Sprintf("The user is asking about weather. I should check the weather in %s.", loc),
		), nil

	case strings.Contains(lower, "calculate") || strings.ContainsAny(input, "+-*/"):
		expr, found := extractExpression(input)
		thoughts := fmt.Sprintf("This looks like a calculation request. I'll compute %s.", expr)
		if !found {
			thoughts = "I'm not sure what to calculate, but I'll do a simple calculation."
		}
		return toolCallReply(CalculateTool, expr, thoughts), nil

	case strings.Contains(lower, "search") || strings.Contains(lower, "find") || strings.Contains(lower, "look up"):
		query := extractQuery(input)
		return toolCallReply(
			SearchTool, query,
			fmt.Sprintf("The user wants information. I'll search for %q.", query),
		), nil

	default:
		reply := message.NewText("", role.Assistant, FallbackReply)
		reply.SetMeta("thoughts", "I don't have a specific tool for this request. I'll just respond conversationally.")
		return reply, nil
	}
}

// wait blocks for the configured latency or until the context is cancelled.
func (p *Provider) wait(ctx context.Context) error {
	if p.Latency <= 0 {
		return nil
	}

	t := time.NewTimer(p.Latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// lastUserText returns the text of the most recent user message, or an empty
// string if there is none.
func lastUserText(c *chat.Chat) string {
	msgs := c.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == role.User {
			return msgs[i].TextContent()
		}
	}
	return ""
}

// extractLocation returns the first known location mentioned in the lowercased
// message, or DefaultLocation.
func extractLocation(lower string) string {
	for _, loc := range knownLocations {
		if strings.Contains(lower, strings.ToLower(loc)) {
			return loc
		}
	}
	return DefaultLocation
}

// extractExpression returns the first "number operator number" substring with
// spaces removed, or DefaultExpression if none is found.
func extractExpression(input string) (string, bool) {
	m := exprPattern.FindString(input)
	if m == "" {
		return DefaultExpression, false
	}
	return strings.ReplaceAll(m, " ", ""), true
}

// extractQuery strips the search trigger words from the message and collapses
// the remaining whitespace.
func extractQuery(input string) string {
	stripped := searchTriggers.ReplaceAllString(input, "")
	return strings.Join(strings.Fields(stripped), " ")
}

// toolCallReply builds an assistant message carrying a single tool call.
func toolCallReply(tool, input, thoughts string) message.Message {
	reply := message.New("", role.Assistant, content.ToolCall{
		ID:    uuid.NewString(),
		Name:  tool,
		Input: input,
	})
	reply.SetMeta("thoughts", thoughts)
	return reply
}
