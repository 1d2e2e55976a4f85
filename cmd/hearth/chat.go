package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthlab/hearth/pkg/agents"
	"github.com/hearthlab/hearth/pkg/engine"
)

// runChat starts an interactive bubbletea session with one assistant agent.
func runChat(configPath, agentName string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg, newLogger(false))
	if err != nil {
		return err
	}

	if agentName == "" {
		for _, ac := range cfg.Agents {
			if ac.Kind == engine.KindAssistant {
				agentName = ac.Name
				break
			}
		}
	}
	if agentName == "" {
		return fmt.Errorf("no assistant agent in config")
	}

	agent, ok := eng.Agent(agentName)
	if !ok {
		return fmt.Errorf("unknown agent %q", agentName)
	}

	_, err = tea.NewProgram(newChatModel(agentName, agent)).Run()

	return err
}

// stepResultMsg delivers the outcome of one agent cycle to the UI.
type stepResultMsg struct {
	res agents.Result
	err error
}

// chatModel is a minimal line-based chat UI: scrollback above, input below.
type chatModel struct {
	agentName string
	agent     agents.Agent
	input     textinput.Model
	lines     []string
	waiting   bool
}

func newChatModel(agentName string, agent agents.Agent) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about the weather, a calculation, or a search..."
	ti.Focus()

	return chatModel{
		agentName: agentName,
		agent:     agent,
		input:     ti,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if m.waiting || text == "" {
				return m, nil
			}

			m.lines = append(m.lines, userPrefixStyle.Render("you > ")+text)
			m.input.Reset()
			m.waiting = true

			return m, stepCmd(m.agent, text)
		}

	case stepResultMsg:
		m.waiting = false
		if msg.err != nil {
			m.lines = append(m.lines, errorStyle.Render("error: "+msg.err.Error()))
		} else {
			m.lines = append(m.lines,
				agentPrefixStyle.Render(m.agentName+" > ")+msg.res.Output,
				hintStyle.Render("  action: "+msg.res.Action.String()),
			)
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m chatModel) View() string {
	var b strings.Builder

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(hintStyle.Render("thinking..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter to send · esc to quit"))

	return b.String()
}

// stepCmd runs one agent cycle off the UI loop.
func stepCmd(agent agents.Agent, text string) tea.Cmd {
	return func() tea.Msg {
		res, err := agent.Step(context.Background(), text)
		return stepResultMsg{res: res, err: err}
	}
}
