// Package modeladapter defines the contract between agents and their decision
// source. A Completer receives the conversation and the tools available for
// the call and returns the next message, which may carry tool calls. Concrete
// implementations live under pkg/providers.
package modeladapter

import (
	"context"

	"github.com/hearthlab/hearth/pkg/chats/chat"
	"github.com/hearthlab/hearth/pkg/chats/message"
	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

// Completer sends a conversation to a decision source and returns the reply.
// The tools parameter declares which tools are available for this call.
type Completer interface {
	Complete(ctx context.Context, c *chat.Chat, tools []toolbox.Tool) (message.Message, error)
}

// CompleterFunc is an adapter that lets ordinary functions implement Completer.
type CompleterFunc func(ctx context.Context, c *chat.Chat, tools []toolbox.Tool) (message.Message, error)

// Complete calls f(ctx, c, tools).
func (f CompleterFunc) Complete(ctx context.Context, c *chat.Chat, tools []toolbox.Tool) (message.Message, error) {
	return f(ctx, c, tools)
}
