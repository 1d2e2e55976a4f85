// Package agents defines the Agent interface shared by the example agent
// architectures and the Base type they embed. Every agent runs the same
// three-phase cycle per call: perceive (fold the input into its internal
// record), decide (select one action), act (apply effects or dispatch tools).
// Cycles are synchronous and total; the caller decides how many to run.
package agents

import (
	"context"
	"log/slog"

	"github.com/hearthlab/hearth/pkg/actions"
)

// Result is the outcome of one perceive-decide-act cycle.
type Result struct {
	// Action is the identifier the agent selected this cycle.
	Action actions.Action
	// Output is the human-readable outcome, when the cycle produced one
	// (assistant replies, tool results).
	Output string
}

// Agent is the interface implemented by all agent types. Step runs one full
// cycle for the given percept or user input and returns the selected action.
// Agents are not safe for concurrent use; callers must synchronize externally.
type Agent interface {
	Step(ctx context.Context, input string) (Result, error)
}

// Named extends Agent with a name accessor, letting wrappers and drivers
// identify the agent they hold.
type Named interface {
	Agent
	AgentName() string
}

// Base provides the identity, logging, and action counting shared by the
// concrete agent types. Embed it and call the phase helpers from Step.
type Base struct {
	Name string
	Log  *slog.Logger

	actionsTaken int
}

// NewBase creates a Base with the given name and logger. A nil logger falls
// back to slog.Default.
func NewBase(name string, log *slog.Logger) Base {
	return Base{Name: name, Log: log}
}

// AgentName returns the agent's name.
func (b *Base) AgentName() string { return b.Name }

// ActionsTaken returns how many cycles this agent has completed.
func (b *Base) ActionsTaken() int { return b.actionsTaken }

// logger returns the configured logger or slog.Default.
func (b *Base) logger() *slog.Logger {
	if b.Log != nil {
		return b.Log
	}
	return slog.Default()
}

// Perceived logs the perceive phase.
func (b *Base) Perceived(ctx context.Context, input string) {
	b.logger().InfoContext(ctx, "perceive", "agent", b.Name, "input", input)
}

// Decided logs the decide phase.
func (b *Base) Decided(ctx context.Context, a actions.Action) {
	b.logger().InfoContext(ctx, "decide", "agent", b.Name, "action", a.String())
}

// Acted records a completed cycle: it increments the action counter and logs
// the act phase with the running total.
func (b *Base) Acted(ctx context.Context, a actions.Action) {
	b.actionsTaken++
	b.logger().InfoContext(ctx, "act",
		"agent", b.Name,
		"action", a.String(),
		"total_actions", b.actionsTaken,
	)
}
