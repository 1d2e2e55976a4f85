package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hearthlab/hearth/pkg/agents"
	"github.com/hearthlab/hearth/pkg/agents/assistant"
	"github.com/hearthlab/hearth/pkg/agents/middleware"
	"github.com/hearthlab/hearth/pkg/agents/model"
	"github.com/hearthlab/hearth/pkg/agents/reflex"
	"github.com/hearthlab/hearth/pkg/assistanttoolbox/defaults"
	"github.com/hearthlab/hearth/pkg/chats/chat"
	"github.com/hearthlab/hearth/pkg/effects"
	"github.com/hearthlab/hearth/pkg/policy"
	"github.com/hearthlab/hearth/pkg/providers/keyword"
	"github.com/hearthlab/hearth/pkg/rules"
	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

// Engine assembles agents from configuration and runs scripted scenarios
// against them.
type Engine struct {
	cfg    Config
	events *EventBus
	log    *slog.Logger
	agents map[string]agents.Agent
}

// New creates an Engine from the given configuration. It validates the
// config and builds every declared agent, wrapped in recovery and logging
// middleware. A nil logger falls back to slog.Default.
func New(cfg Config, log *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.Default()
	}

	e := &Engine{
		cfg:    cfg,
		events: NewEventBus(),
		log:    log,
		agents: make(map[string]agents.Agent, len(cfg.Agents)),
	}

	latency, err := cfg.Provider.LatencyDuration()
	if err != nil {
		return nil, err
	}

	for _, ac := range cfg.Agents {
		a, err := e.buildAgent(ac, latency)
		if err != nil {
			return nil, err
		}
		e.agents[ac.Name] = middleware.Apply(a, middleware.Recovery(), middleware.Logger(log))
	}

	return e, nil
}

// buildAgent constructs one agent from its configuration.
func (e *Engine) buildAgent(ac AgentConfig, latency time.Duration) (agents.Agent, error) {
	switch ac.Kind {
	case KindReflex:
		return reflex.New(ac.Name, rules.Default(), e.log), nil

	case KindModel:
		return model.New(ac.Name, policy.Default(), effects.Default(), e.log), nil

	case KindAssistant:
		tb := e.observedToolbox(ac.Name, defaults.New())

		var c *chat.Chat
		if ac.ChatLimit > 0 {
			c = chat.NewBounded(ac.ChatLimit)
		} else {
			c = chat.New()
		}

		a := assistant.New(ac.Name, keyword.New(latency), c, e.log, tb)
		a.HistoryWindow = ac.HistoryWindow

		return a, nil

	default:
		return nil, fmt.Errorf("engine: agent %q: unknown kind %q", ac.Name, ac.Kind)
	}
}

// observedToolbox hooks a toolbox's replacement notifications into the event
// bus so overwrites are visible to frontends.
func (e *Engine) observedToolbox(agent string, tb *toolbox.ToolBox) *toolbox.ToolBox {
	tb.OnReplace = func(old toolbox.Tool) {
		e.events.Publish(Event{
			Kind:      EventToolReplaced,
			Agent:     agent,
			Timestamp: time.Now(),
			Data:      old.Name,
		})
	}

	return tb
}

// Events returns the engine's event bus.
func (e *Engine) Events() *EventBus {
	return e.events
}

// Agent returns the named agent and whether it exists.
func (e *Engine) Agent(name string) (agents.Agent, bool) {
	a, ok := e.agents[name]
	return a, ok
}

// Scenarios returns the configured scenarios in declaration order.
func (e *Engine) Scenarios() []ScenarioConfig {
	return e.cfg.Scenarios
}

// RunScenario feeds a scenario's percepts to its agent one cycle at a time,
// publishing percept and action events as it goes. It returns one Result per
// percept. A cycle error ends the run early and is published as an error
// event.
func (e *Engine) RunScenario(ctx context.Context, name string) ([]agents.Result, error) {
	var sc *ScenarioConfig
	for i := range e.cfg.Scenarios {
		if e.cfg.Scenarios[i].Name == name {
			sc = &e.cfg.Scenarios[i]
			break
		}
	}
	if sc == nil {
		return nil, fmt.Errorf("engine: unknown scenario %q", name)
	}

	agent := e.agents[sc.Agent]

	e.events.Publish(Event{
		Kind: EventScenarioStart, Scenario: sc.Name, Agent: sc.Agent, Timestamp: time.Now(),
	})

	results := make([]agents.Result, 0, len(sc.Percepts))
	for _, percept := range sc.Percepts {
		e.events.Publish(Event{
			Kind: EventPercept, Scenario: sc.Name, Agent: sc.Agent,
			Timestamp: time.Now(), Data: percept,
		})

		res, err := agent.Step(ctx, percept)
		if err != nil {
			e.events.Publish(Event{
				Kind: EventError, Scenario: sc.Name, Agent: sc.Agent,
				Timestamp: time.Now(), Data: err,
			})
			return results, fmt.Errorf("engine: scenario %q: %w", sc.Name, err)
		}

		results = append(results, res)
		e.events.Publish(Event{
			Kind: EventAction, Scenario: sc.Name, Agent: sc.Agent,
			Timestamp: time.Now(), Data: res,
		})
	}

	e.events.Publish(Event{
		Kind: EventScenarioEnd, Scenario: sc.Name, Agent: sc.Agent, Timestamp: time.Now(),
	})

	return results, nil
}

// RunAll runs every configured scenario in declaration order.
func (e *Engine) RunAll(ctx context.Context) error {
	for _, sc := range e.cfg.Scenarios {
		if _, err := e.RunScenario(ctx, sc.Name); err != nil {
			return err
		}
	}
	return nil
}
