package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Agent kinds accepted in configuration.
const (
	KindReflex    = "reflex"
	KindModel     = "model"
	KindAssistant = "assistant"
)

// Config is the top-level engine configuration.
type Config struct {
	Provider  ProviderConfig   `yaml:"provider"`
	Agents    []AgentConfig    `yaml:"agents"`
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

// ProviderConfig holds settings for the simulated decision provider used by
// assistant agents.
type ProviderConfig struct {
	// Latency is the simulated model-call delay as a duration string
	// (e.g. "500ms"). Empty means no delay.
	Latency string `yaml:"latency"`
}

// LatencyDuration parses the configured latency. An empty value is zero.
func (p ProviderConfig) LatencyDuration() (time.Duration, error) {
	if p.Latency == "" {
		return 0, nil
	}
	return time.ParseDuration(p.Latency)
}

// AgentConfig describes an agent to build.
type AgentConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// ChatLimit bounds an assistant's conversation length. Zero means
	// unbounded. Ignored for other kinds.
	ChatLimit int `yaml:"chat_limit"`
	// HistoryWindow bounds how much history an assistant's decision prompt
	// includes. Zero means the assistant default. Ignored for other kinds.
	HistoryWindow int `yaml:"history_window"`
}

// ScenarioConfig is a named, scripted sequence of percepts fed to one agent.
type ScenarioConfig struct {
	Name     string   `yaml:"name"`
	Agent    string   `yaml:"agent"`
	Percepts []string `yaml:"percepts"`
}

// LoadConfig reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if _, err := c.Provider.LatencyDuration(); err != nil {
		return fmt.Errorf("engine: config: provider latency: %w", err)
	}

	if len(c.Agents) == 0 {
		return fmt.Errorf("engine: config: at least one agent is required")
	}

	agentNames := make(map[string]struct{}, len(c.Agents))
	for _, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("engine: config: agent name is required")
		}
		if _, dup := agentNames[a.Name]; dup {
			return fmt.Errorf("engine: config: duplicate agent name %q", a.Name)
		}
		agentNames[a.Name] = struct{}{}

		switch a.Kind {
		case KindReflex, KindModel, KindAssistant:
		default:
			return fmt.Errorf("engine: config: agent %q: unknown kind %q", a.Name, a.Kind)
		}
	}

	scenarioNames := make(map[string]struct{}, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("engine: config: scenario name is required")
		}
		if _, dup := scenarioNames[s.Name]; dup {
			return fmt.Errorf("engine: config: duplicate scenario name %q", s.Name)
		}
		scenarioNames[s.Name] = struct{}{}

		if _, ok := agentNames[s.Agent]; !ok {
			return fmt.Errorf("engine: config: scenario %q: unknown agent %q", s.Name, s.Agent)
		}
		if len(s.Percepts) == 0 {
			return fmt.Errorf("engine: config: scenario %q: at least one percept is required", s.Name)
		}
	}

	return nil
}

// Default returns a ready-to-run configuration with one agent of each kind
// and the classic demo scenarios.
func Default() Config {
	return Config{
		Provider: ProviderConfig{Latency: "500ms"},
		Agents: []AgentConfig{
			{Name: "homecare", Kind: KindReflex},
			{Name: "homeassistant", Kind: KindModel},
			{Name: "jarvis", Kind: KindAssistant, ChatLimit: 50},
		},
		Scenarios: []ScenarioConfig{
			{
				Name:  "reflex",
				Agent: "homecare",
				Percepts: []string{
					"The room is dark and cold",
					"There is a strange noise coming from outside",
					"The room is now bright but getting hot",
					"Everything seems normal",
					"There's smoke in the room - danger!",
				},
			},
			{
				Name:  "model",
				Agent: "homeassistant",
				Percepts: []string{
					"The room is getting cold as night approaches",
					"It's completely dark now",
					"There is a strange noise coming from outside",
					"The noise stopped but you feel hungry",
					"Morning arrives and the room is bright",
					"There's smoke in the room - danger!",
				},
			},
			{
				Name:  "assistant",
				Agent: "jarvis",
				Percepts: []string{
					"What's the weather like in London?",
					"Calculate 125 * 37",
					"Search for information about AI agents",
					"Tell me a joke",
					"What's the weather in Tokyo?",
				},
			},
		},
	}
}
