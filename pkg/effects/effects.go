// Package effects declares what each action does to the world state. An
// Effect is a descriptor of field assignments and deltas, not executable
// behavior; Apply interprets descriptors against a State, respecting the
// state's clamping.
package effects

import (
	"github.com/hearthlab/hearth/pkg/actions"
	"github.com/hearthlab/hearth/pkg/world"
)

// Effect describes the state changes an action causes. Zero-valued fields
// mean "no change".
type Effect struct {
	SetTemperature world.Temperature
	SetLighting    world.Lighting
	SetNoise       world.Noise
	ClearDanger    bool
	ResetMeal      bool
	EnergyDelta    int
}

// Table maps actions to their effect descriptors.
type Table map[actions.Action]Effect

// Apply looks up the action's effect and applies it to the state. Actions
// without a registered effect are a no-op. Bounded fields are clamped by the
// state's setters; Apply has no error conditions.
func (t Table) Apply(a actions.Action, s *world.State) {
	e, ok := t[a]
	if !ok {
		return
	}

	if e.SetTemperature != "" {
		s.Temperature = e.SetTemperature
	}
	if e.SetLighting != "" {
		s.Lighting = e.SetLighting
	}
	if e.SetNoise != "" {
		s.Noise = e.SetNoise
	}
	if e.ClearDanger {
		s.Danger = false
	}
	if e.ResetMeal {
		s.SetHoursSinceMeal(0)
	}
	if e.EnergyDelta != 0 {
		s.AddEnergy(e.EnergyDelta)
	}
}

// Default returns the standard effect table for the home-assistant actions.
func Default() Table {
	return Table{
		actions.TurnOnAC:         {SetTemperature: world.TempNormal, EnergyDelta: -5},
		actions.TurnOnHeater:     {SetTemperature: world.TempNormal, EnergyDelta: -5},
		actions.TurnOnLight:      {SetLighting: world.LightNormal, EnergyDelta: -1},
		actions.CloseBlinds:      {SetLighting: world.LightNormal, EnergyDelta: -1},
		actions.InvestigateNoise: {SetNoise: world.NoiseQuiet, EnergyDelta: -10},
		actions.EatFood:          {ResetMeal: true, EnergyDelta: 30},
		actions.Rest:             {EnergyDelta: 50},
		actions.Escape:           {ClearDanger: true, EnergyDelta: -20},
	}
}
