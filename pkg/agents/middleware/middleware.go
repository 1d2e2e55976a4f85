// Package middleware provides composable middleware for agents.Agent.
// Each middleware wraps an Agent's Step method, and the wrapped value is
// itself an Agent, so middleware composes naturally via Chain or Apply.
//
// If the inner agent implements agents.Named, every wrapper preserves
// AgentName by delegating to the inner agent.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hearthlab/hearth/pkg/agents"
)

// Middleware wraps an Agent, returning a new Agent with added behaviour.
type Middleware func(next agents.Agent) agents.Agent

// Chain composes multiple middleware into a single Middleware.
// The first middleware in the list is the outermost (runs first).
func Chain(mws ...Middleware) Middleware {
	return func(next agents.Agent) agents.Agent {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

// Apply wraps an agent with the given middleware. The first middleware
// in the list is the outermost (runs first).
func Apply(agent agents.Agent, mws ...Middleware) agents.Agent {
	return Chain(mws...)(agent)
}

// namedBase provides Named delegation for middleware wrappers.
type namedBase struct {
	next agents.Agent
}

func (n *namedBase) AgentName() string {
	if na, ok := n.next.(agents.Named); ok {
		return na.AgentName()
	}
	return ""
}

// --- Timeout middleware ---

type timeoutAgent struct {
	namedBase
	timeout time.Duration
}

func (a *timeoutAgent) Step(ctx context.Context, input string) (agents.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	return a.next.Step(ctx, input)
}

// Timeout returns a Middleware that bounds each cycle with a deadline.
func Timeout(d time.Duration) Middleware {
	return func(next agents.Agent) agents.Agent {
		return &timeoutAgent{
			namedBase: namedBase{next: next},
			timeout:   d,
		}
	}
}

// --- Recovery middleware ---

type recoveryAgent struct {
	namedBase
}

func (a *recoveryAgent) Step(ctx context.Context, input string) (res agents.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent panicked: %v", r)
		}
	}()

	return a.next.Step(ctx, input)
}

// Recovery returns a Middleware that catches panics and converts them to errors.
func Recovery() Middleware {
	return func(next agents.Agent) agents.Agent {
		return &recoveryAgent{
			namedBase: namedBase{next: next},
		}
	}
}

// --- Logger middleware ---

type loggerAgent struct {
	namedBase
	log *slog.Logger
}

func (a *loggerAgent) Step(ctx context.Context, input string) (agents.Result, error) {
	name := a.AgentName()
	start := time.Now()

	res, err := a.next.Step(ctx, input)

	duration := time.Since(start)

	if err != nil {
		a.log.ErrorContext(ctx, "cycle finished with error",
			"agent", name,
			"duration", duration,
			"error", err,
		)
	} else {
		a.log.InfoContext(ctx, "cycle finished",
			"agent", name,
			"duration", duration,
			"action", res.Action.String(),
		)
	}

	return res, err
}

// Logger returns a Middleware that logs each cycle's duration and outcome.
// If the inner agent implements agents.Named, the agent's name is included
// in the log attributes.
func Logger(log *slog.Logger) Middleware {
	return func(next agents.Agent) agents.Agent {
		return &loggerAgent{
			namedBase: namedBase{next: next},
			log:       log,
		}
	}
}
