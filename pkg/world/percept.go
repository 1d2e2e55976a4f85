package world

import "strings"

// perceptRule maps a percept token to a state assignment. Rules are applied
// in declaration order; every matching rule fires.
type perceptRule struct {
	token string
	apply func(*State)
}

// perceptRules is the fixed token table used by Observe. Token matching is
// case-insensitive substring containment.
var perceptRules = []perceptRule{
	{"cold", func(s *State) { s.Temperature = TempCold }},
	{"hot", func(s *State) { s.Temperature = TempHot }},
	{"dark", func(s *State) { s.Lighting = LightDark }},
	{"bright", func(s *State) { s.Lighting = LightBright }},
	{"noise", func(s *State) { s.Noise = NoiseNoisy }},
	{"danger", func(s *State) { s.Danger = true }},
	{"smoke", func(s *State) { s.Danger = true }},
	{"morning", func(s *State) { s.TimeOfDay = TimeMorning }},
	{"night", func(s *State) { s.TimeOfDay = TimeNight }},
	{"hungry", func(s *State) { s.AddHoursSinceMeal(4) }},
}

// energyDecay is the passive energy cost of one perception cycle.
const energyDecay = 2

// Observe parses a free-text percept and applies every matching assignment to
// the state, then applies the passive energy decay. Unmatched tokens are
// silently ignored; Observe has no error conditions.
func (s *State) Observe(percept string) {
	lower := strings.ToLower(percept)
	for _, r := range perceptRules {
		if strings.Contains(lower, r.token) {
			r.apply(s)
		}
	}
	s.AddEnergy(-energyDecay)
}
