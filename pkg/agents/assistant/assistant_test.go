package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthlab/hearth/pkg/actions"
	"github.com/hearthlab/hearth/pkg/chats/chat"
	"github.com/hearthlab/hearth/pkg/chats/content"
	"github.com/hearthlab/hearth/pkg/chats/message"
	"github.com/hearthlab/hearth/pkg/chats/role"
	"github.com/hearthlab/hearth/pkg/modeladapter"
	"github.com/hearthlab/hearth/pkg/providers/keyword"
	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// textCompleter always replies with the same conversational text.
func textCompleter(text string) modeladapter.CompleterFunc {
	return func(ctx context.Context, c *chat.Chat, tools []toolbox.Tool) (message.Message, error) {
		return message.NewText("", role.Assistant, text), nil
	}
}

// callCompleter always requests the same tool call.
func callCompleter(tool, input string) modeladapter.CompleterFunc {
	return func(ctx context.Context, c *chat.Chat, tools []toolbox.Tool) (message.Message, error) {
		return message.New("", role.Assistant, content.ToolCall{
			ID:    "call-1",
			Name:  tool,
			Input: input,
		}), nil
	}
}

func echoBox() *toolbox.ToolBox {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{
		Name:        "echo",
		Description: "Echo the input back",
		Handler: func(ctx context.Context, input string) (string, error) {
			return input, nil
		},
	})
	return tb
}

func TestStep_ConversationalReply(t *testing.T) {
	a := New("jarvis", textCompleter("Hello there."), nil, discard())

	res, err := a.Step(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, actions.Respond, res.Action)
	assert.Equal(t, "Hello there.", res.Output)
}

func TestStep_ToolDispatch(t *testing.T) {
	a := New("jarvis", callCompleter("echo", "ping"), nil, discard(), echoBox())

	res, err := a.Step(context.Background(), "say ping")
	require.NoError(t, err)
	assert.Equal(t, actions.Action("echo"), res.Action)
	assert.Contains(t, res.Output, `Tool "echo" returned: ping`)
}

func TestStep_UnknownToolDegrades(t *testing.T) {
	a := New("jarvis", callCompleter("missing", ""), nil, discard(), echoBox())

	res, err := a.Step(context.Background(), "do something")
	require.NoError(t, err)
	assert.Contains(t, res.Output, `Error using tool "missing"`)
	assert.Contains(t, res.Output, "tool not found: missing")
}

func TestStep_FailingToolDoesNotAbort(t *testing.T) {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{
		Name:        "broken",
		Description: "Always fails",
		Handler: func(ctx context.Context, input string) (string, error) {
			return "", errors.New("wires crossed")
		},
	})
	a := New("jarvis", callCompleter("broken", ""), nil, discard(), tb)

	res, err := a.Step(context.Background(), "try it")
	require.NoError(t, err)
	assert.Equal(t, actions.Action("broken"), res.Action)
	assert.Contains(t, res.Output, `Error using tool "broken": wires crossed`)
}

func TestStep_CompleterErrorPropagates(t *testing.T) {
	boom := errors.New("model unavailable")
	failing := modeladapter.CompleterFunc(func(ctx context.Context, c *chat.Chat, tools []toolbox.Tool) (message.Message, error) {
		return message.Message{}, boom
	})
	a := New("jarvis", failing, nil, discard())

	_, err := a.Step(context.Background(), "hi")
	assert.ErrorIs(t, err, boom)
}

func TestStep_RecordsConversation(t *testing.T) {
	a := New("jarvis", callCompleter("echo", "ping"), nil, discard(), echoBox())

	_, err := a.Step(context.Background(), "say ping")
	require.NoError(t, err)

	// user input, tool-call reply, tool result, final assistant text.
	require.Equal(t, 4, a.Chat.Len())

	msgs := a.Chat.Messages()
	assert.Equal(t, role.User, msgs[0].Role)
	assert.Equal(t, role.Assistant, msgs[1].Role)
	assert.Equal(t, "jarvis", msgs[1].Sender)
	assert.Equal(t, role.Tool, msgs[2].Role)
	assert.Equal(t, role.Assistant, msgs[3].Role)
}

func TestStep_PromptCarriesToolDescriptions(t *testing.T) {
	var seen string
	spy := modeladapter.CompleterFunc(func(ctx context.Context, c *chat.Chat, tools []toolbox.Tool) (message.Message, error) {
		if c.Len() > 0 && c.At(0).Role == role.System {
			seen = c.At(0).TextContent()
		}
		return message.NewText("", role.Assistant, "ok"), nil
	})
	a := New("jarvis", spy, nil, discard(), echoBox())

	_, err := a.Step(context.Background(), "hi")
	require.NoError(t, err)
	assert.Contains(t, seen, "- echo: Echo the input back")
}

func TestStep_HistoryWindowBoundsPrompt(t *testing.T) {
	var promptLen int
	spy := modeladapter.CompleterFunc(func(ctx context.Context, c *chat.Chat, tools []toolbox.Tool) (message.Message, error) {
		promptLen = c.Len()
		return message.NewText("", role.Assistant, "ok"), nil
	})
	a := New("jarvis", spy, nil, discard())
	a.HistoryWindow = 2

	for range 5 {
		_, err := a.Step(context.Background(), "again")
		require.NoError(t, err)
	}

	// System message plus the last two history entries.
	assert.Equal(t, 3, promptLen)
}

func TestStep_WithKeywordProvider(t *testing.T) {
	a := New("jarvis", keyword.New(0), nil, discard(), echoBox())

	res, err := a.Step(context.Background(), "what is the weather in London?")
	require.NoError(t, err)

	// The provider asks for get_weather, which this agent doesn't carry.
	assert.Equal(t, actions.Action(keyword.WeatherTool), res.Action)
	assert.Contains(t, res.Output, "tool not found: get_weather")
}

func TestTools_AggregatesBoxes(t *testing.T) {
	other := toolbox.New()
	other.Register(toolbox.Tool{Name: "b", Description: "B", Handler: nil})

	a := New("jarvis", nil, nil, discard(), echoBox(), other)

	tools := a.Tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "echo", tools[0].Name)
	assert.Equal(t, "b", tools[1].Name)
}
