// Package chat provides an append-only conversation log owned by a single
// agent. A Chat can be bounded: once the limit is reached, the oldest
// non-system messages are evicted so memory does not grow without bound.
package chat

import (
	"github.com/hearthlab/hearth/pkg/chats/message"
	"github.com/hearthlab/hearth/pkg/chats/role"
)

// Chat is a mutable conversation container. The zero value is ready to use
// and unbounded. Chat is not safe for concurrent use; callers must
// synchronize externally.
type Chat struct {
	messages []message.Message
	limit    int
}

// New creates a Chat pre-populated with the given messages.
func New(msgs ...message.Message) *Chat {
	return &Chat{messages: msgs}
}

// NewBounded creates an empty Chat that retains at most limit messages.
// A limit of zero or less means unbounded.
func NewBounded(limit int) *Chat {
	return &Chat{limit: limit}
}

// SetLimit changes the retention limit and evicts immediately if the
// conversation already exceeds it. A limit of zero or less means unbounded.
func (c *Chat) SetLimit(limit int) {
	c.limit = limit
	c.evict()
}

// Append adds one or more messages to the conversation, evicting the oldest
// non-system messages if a limit is set.
func (c *Chat) Append(msgs ...message.Message) {
	c.messages = append(c.messages, msgs...)
	c.evict()
}

// evict drops the oldest non-system messages until the conversation fits the
// limit. System messages are kept because they carry the agent's standing
// instructions.
func (c *Chat) evict() {
	if c.limit <= 0 {
		return
	}
	for len(c.messages) > c.limit {
		dropped := false
		for i, m := range c.messages {
			if m.Role != role.System {
				c.messages = append(c.messages[:i], c.messages[i+1:]...)
				dropped = true
				break
			}
		}
		if !dropped {
			return
		}
	}
}

// Len returns the number of messages in the conversation.
func (c *Chat) Len() int {
	return len(c.messages)
}

// At returns the message at the given index.
// It panics if the index is out of range.
func (c *Chat) At(index int) message.Message {
	return c.messages[index]
}

// Last returns the most recent message and true, or a zero Message and false
// if the conversation is empty.
func (c *Chat) Last() (message.Message, bool) {
	if len(c.messages) == 0 {
		return message.Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// LastN returns a copy of the most recent n messages, oldest first. If the
// conversation holds fewer than n messages, all of them are returned.
func (c *Chat) LastN(n int) []message.Message {
	if n <= 0 {
		return nil
	}
	start := len(c.messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]message.Message, len(c.messages)-start)
	copy(out, c.messages[start:])
	return out
}

// Messages returns a copy of all messages in the conversation.
func (c *Chat) Messages() []message.Message {
	cp := make([]message.Message, len(c.messages))
	copy(cp, c.messages)
	return cp
}

// Each iterates over messages, calling fn for each one. If fn returns false,
// iteration stops early.
func (c *Chat) Each(fn func(int, message.Message) bool) {
	for i, m := range c.messages {
		if !fn(i, m) {
			return
		}
	}
}

// BySender returns all messages from the given sender.
func (c *Chat) BySender(sender string) []message.Message {
	var out []message.Message
	for _, m := range c.messages {
		if m.Sender == sender {
			out = append(out, m)
		}
	}
	return out
}
