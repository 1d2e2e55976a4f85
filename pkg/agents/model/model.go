// Package model implements a model-based reflex agent. It maintains a world
// state updated from percepts, decides through a priority-ordered policy, and
// applies the chosen action's declared effects back onto the state.
package model

import (
	"context"
	"log/slog"

	"github.com/hearthlab/hearth/pkg/agents"
	"github.com/hearthlab/hearth/pkg/effects"
	"github.com/hearthlab/hearth/pkg/policy"
	"github.com/hearthlab/hearth/pkg/world"
)

// Compile-time check that *Agent implements agents.Named.
var _ agents.Named = (*Agent)(nil)

// Agent is a model-based reflex agent. The world state is owned exclusively
// by the agent and lives as long as it does.
type Agent struct {
	agents.Base
	Policy  policy.Policy
	Effects effects.Table

	world *world.State
}

// New creates a model-based agent with the given name, policy, effect table,
// and logger. The world state starts at its defaults. A nil logger falls back
// to slog.Default.
func New(name string, p policy.Policy, t effects.Table, log *slog.Logger) *Agent {
	return &Agent{
		Base:    agents.NewBase(name, log),
		Policy:  p,
		Effects: t,
		world:   world.New(),
	}
}

// World returns the agent's world state. Exposed for inspection; mutating it
// outside the agent's cycle changes what the next decision sees.
func (a *Agent) World() *world.State {
	return a.world
}

// Step runs one cycle: fold the percept into the world state, pick the
// highest-priority applicable action, and apply its effects. Step never
// fails; when no guard fires the do-nothing sentinel is returned and the
// state is left to its passive decay.
func (a *Agent) Step(ctx context.Context, percept string) (agents.Result, error) {
	a.world.Observe(percept)
	a.Perceived(ctx, percept)

	action := a.Policy.Decide(a.world)
	a.Decided(ctx, action)

	a.Effects.Apply(action, a.world)
	a.Acted(ctx, action)

	return agents.Result{Action: action, Output: a.world.String()}, nil
}
