// Package policy implements the priority-ordered guard list of a model-based
// agent. Guards are evaluated from highest to lowest priority and the first
// true guard wins, so danger handling always outranks comfort and resource
// needs, which in turn outrank anomaly investigation. The list is an explicit
// sequence to keep that order deterministic.
package policy

import (
	"github.com/hearthlab/hearth/pkg/actions"
	"github.com/hearthlab/hearth/pkg/world"
)

// Guard pairs a named condition over the world state with the action to take
// when the condition holds.
type Guard struct {
	Name string
	When func(*world.State) bool
	Then actions.Action
}

// Policy is an ordered list of guards, highest priority first.
type Policy []Guard

// Decide evaluates the guards in order and returns the action bound to the
// first guard whose condition is true. If no guard fires, it returns
// actions.DoNothing.
func (p Policy) Decide(s *world.State) actions.Action {
	for _, g := range p {
		if g.When(s) {
			return g.Then
		}
	}
	return actions.DoNothing
}

// Thresholds for the default policy's resource guards. Energy triggers rest
// strictly below RestThreshold; hunger triggers eating at or above
// HungerThreshold, so a single hungry percept is enough.
const (
	RestThreshold   = 20
	HungerThreshold = 4
)

// Default returns the standard home-assistant policy. Priority order, top to
// bottom: danger, critical needs, comfort, anomalies.
func Default() Policy {
	return Policy{
		{
			Name: "danger present",
			When: func(s *world.State) bool { return s.Danger },
			Then: actions.Escape,
		},
		{
			Name: "energy critically low",
			When: func(s *world.State) bool { return s.Energy() < RestThreshold },
			Then: actions.Rest,
		},
		{
			Name: "long since last meal",
			When: func(s *world.State) bool { return s.HoursSinceMeal() >= HungerThreshold },
			Then: actions.EatFood,
		},
		{
			Name: "room too cold",
			When: func(s *world.State) bool { return s.Temperature == world.TempCold },
			Then: actions.TurnOnHeater,
		},
		{
			Name: "room too hot",
			When: func(s *world.State) bool { return s.Temperature == world.TempHot },
			Then: actions.TurnOnAC,
		},
		{
			Name: "dark outside of night",
			When: func(s *world.State) bool {
				return s.Lighting == world.LightDark && s.TimeOfDay != world.TimeNight
			},
			Then: actions.TurnOnLight,
		},
		{
			Name: "bright at night",
			When: func(s *world.State) bool {
				return s.Lighting == world.LightBright && s.TimeOfDay == world.TimeNight
			},
			Then: actions.CloseBlinds,
		},
		{
			Name: "unexplained noise",
			When: func(s *world.State) bool { return s.Noise == world.NoiseNoisy },
			Then: actions.InvestigateNoise,
		},
	}
}
