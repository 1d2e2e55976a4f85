// Package actions defines the action identifiers shared by every agent type.
// An Action is an opaque name: reflex and model-based agents draw from the
// fixed home-care set below, while assistants also use tool names as actions.
package actions

// Action identifies what an agent decided to do in one cycle.
type Action string

// The home-care action set.
const (
	DoNothing        Action = "do_nothing"
	TurnOnAC         Action = "turn_on_ac"
	TurnOnHeater     Action = "turn_on_heater"
	TurnOnLight      Action = "turn_on_light"
	CloseBlinds      Action = "close_blinds"
	FindFood         Action = "find_food"
	EatFood          Action = "eat_food"
	Rest             Action = "rest"
	Investigate      Action = "investigate"
	InvestigateNoise Action = "investigate_noise"
	Escape           Action = "escape"

	// Respond is the assistant's action for a plain conversational reply.
	Respond Action = "respond"
)

// String returns the action identifier.
func (a Action) String() string { return string(a) }
