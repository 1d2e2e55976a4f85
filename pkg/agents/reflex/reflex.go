// Package reflex implements a pure reflex agent: no internal world model,
// just an ordered condition-action table scanned against the latest percept.
package reflex

import (
	"context"
	"log/slog"

	"github.com/hearthlab/hearth/pkg/agents"
	"github.com/hearthlab/hearth/pkg/rules"
)

// Compile-time check that *Agent implements agents.Named.
var _ agents.Named = (*Agent)(nil)

// Agent is a pure reflex agent. It keeps the percepts it has seen but no
// interpretation of them; decisions depend only on the latest percept.
type Agent struct {
	agents.Base
	Rules rules.Ruleset

	percepts []string
}

// New creates a reflex agent with the given name, rule table, and logger.
// A nil logger falls back to slog.Default.
func New(name string, rs rules.Ruleset, log *slog.Logger) *Agent {
	return &Agent{
		Base:  agents.NewBase(name, log),
		Rules: rs,
	}
}

// Percepts returns a copy of every percept the agent has received, oldest
// first.
func (a *Agent) Percepts() []string {
	cp := make([]string, len(a.percepts))
	copy(cp, a.percepts)
	return cp
}

// Step runs one cycle: record the percept, scan the rule table for the first
// match, and count the action. Step never fails; an unmatched percept yields
// the do-nothing sentinel.
func (a *Agent) Step(ctx context.Context, percept string) (agents.Result, error) {
	a.percepts = append(a.percepts, percept)
	a.Perceived(ctx, percept)

	action := a.Rules.Decide(percept)
	a.Decided(ctx, action)

	a.Acted(ctx, action)

	return agents.Result{Action: action}, nil
}
