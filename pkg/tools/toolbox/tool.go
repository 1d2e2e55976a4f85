package toolbox

import "context"

// Handler executes a tool with a single positional text input and returns a
// text result.
type Handler func(ctx context.Context, input string) (string, error)

// Tool represents an executable capability with a name, human-readable
// description, and handler.
type Tool struct {
	Name        string
	Description string
	Handler     Handler
}
