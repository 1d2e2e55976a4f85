package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthlab/hearth/pkg/chats/content"
	"github.com/hearthlab/hearth/pkg/chats/role"
)

func TestNewText(t *testing.T) {
	m := NewText("alice", role.User, "hello")

	assert.Equal(t, "alice", m.Sender)
	assert.Equal(t, role.User, m.Role)
	assert.Equal(t, "hello", m.TextContent())
}

func TestTextContent_ConcatenatesTextParts(t *testing.T) {
	m := New("bot", role.Assistant,
		content.Text{Text: "one "},
		content.ToolCall{ID: "1", Name: "search", Input: "x"},
		content.Text{Text: "two"},
	)

	assert.Equal(t, "one two", m.TextContent())
}

func TestToolCalls(t *testing.T) {
	m := New("bot", role.Assistant,
		content.Text{Text: "thinking"},
		content.ToolCall{ID: "1", Name: "get_weather", Input: "London"},
	)

	calls := m.ToolCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "get_weather", calls[0].Name)
	assert.Equal(t, "London", calls[0].Input)
}

func TestToolCalls_None(t *testing.T) {
	m := NewText("alice", role.User, "hi")
	assert.Empty(t, m.ToolCalls())
}

func TestMeta(t *testing.T) {
	m := NewText("bot", role.Assistant, "hi")

	_, ok := m.GetMeta("thoughts")
	assert.False(t, ok)

	m.SetMeta("thoughts", "pondering")

	v, ok := m.GetMeta("thoughts")
	require.True(t, ok)
	assert.Equal(t, "pondering", v)
}
