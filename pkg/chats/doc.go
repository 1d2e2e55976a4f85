// Package chats groups the conversation model: roles, content parts,
// messages, and the Chat container. These are the building blocks agents use
// to record their interaction history.
package chats
