// Package rules implements the condition-action table of a pure reflex agent.
// Rules are an explicit ordered sequence: the scan order is part of the
// contract, so the table is a slice, never a map.
package rules

import (
	"strings"

	"github.com/hearthlab/hearth/pkg/actions"
)

// Rule pairs a percept token with the action to take when the token appears
// in the percept.
type Rule struct {
	Token  string
	Action actions.Action
}

// Ruleset is an ordered list of rules, scanned top to bottom.
type Ruleset []Rule

// Decide scans the rules in declaration order and returns the action of the
// first rule whose token appears in the percept (case-insensitive substring
// match). If no rule matches, it returns actions.DoNothing.
func (rs Ruleset) Decide(percept string) actions.Action {
	lower := strings.ToLower(percept)
	for _, r := range rs {
		if strings.Contains(lower, strings.ToLower(r.Token)) {
			return r.Action
		}
	}
	return actions.DoNothing
}

// Default returns the standard home-care reflex table.
func Default() Ruleset {
	return Ruleset{
		{"hot", actions.TurnOnAC},
		{"cold", actions.TurnOnHeater},
		{"dark", actions.TurnOnLight},
		{"bright", actions.CloseBlinds},
		{"hungry", actions.FindFood},
		{"tired", actions.Rest},
		{"noise", actions.Investigate},
		{"danger", actions.Escape},
	}
}
