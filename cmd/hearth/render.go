package main

import (
	"fmt"
	"io"

	"github.com/hearthlab/hearth/pkg/agents"
	"github.com/hearthlab/hearth/pkg/engine"
)

// renderEvents renders the engine's event stream as styled status lines until
// the subscription is closed.
func renderEvents(w io.Writer, sub *engine.Subscription) {
	for e := range sub.C {
		switch e.Kind {
		case engine.EventScenarioStart:
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("=== scenario %s (agent %s) ===", e.Scenario, e.Agent)))

		case engine.EventScenarioEnd:
			fmt.Fprintln(w)

		case engine.EventPercept:
			fmt.Fprintln(w, perceptStyle.Render(fmt.Sprintf("  percept › %v", e.Data)))

		case engine.EventAction:
			res, ok := e.Data.(agents.Result)
			if !ok {
				continue
			}
			fmt.Fprintln(w, actionStyle.Render(fmt.Sprintf("  action  › %s", res.Action)))
			if res.Output != "" {
				fmt.Fprintln(w, outputStyle.Render("            "+res.Output))
			}

		case engine.EventToolReplaced:
			fmt.Fprintln(w, hintStyle.Render(fmt.Sprintf("  tool %v was re-registered", e.Data)))

		case engine.EventError:
			fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("  error   › %v", e.Data)))
		}
	}
}
