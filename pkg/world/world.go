// Package world provides an agent's internal model of its environment: a
// small set of enumerated, boolean, and bounded numeric attributes. Bounded
// fields are clamped on every write, never rejected. A State is created once
// at agent construction and mutated in place by percept parsing and action
// effects.
package world

import "fmt"

// Temperature is the perceived room temperature.
type Temperature string

const (
	TempCold   Temperature = "cold"
	TempNormal Temperature = "normal"
	TempHot    Temperature = "hot"
)

// Lighting is the perceived room lighting.
type Lighting string

const (
	LightDark   Lighting = "dark"
	LightNormal Lighting = "normal"
	LightBright Lighting = "bright"
)

// Noise is the perceived noise level.
type Noise string

const (
	NoiseQuiet Noise = "quiet"
	NoiseNoisy Noise = "noisy"
)

// TimeOfDay is the model's notion of what part of the day it is.
type TimeOfDay string

const (
	TimeMorning TimeOfDay = "morning"
	TimeDay     TimeOfDay = "day"
	TimeEvening TimeOfDay = "evening"
	TimeNight   TimeOfDay = "night"
)

// Energy bounds.
const (
	EnergyMin = 0
	EnergyMax = 100
)

// State is a mutable record of environment attributes. Enumerated and boolean
// fields are exported; the bounded numeric fields are kept behind accessors
// so every write goes through clamping.
type State struct {
	Temperature Temperature
	Lighting    Lighting
	Noise       Noise
	TimeOfDay   TimeOfDay
	Danger      bool

	hoursSinceMeal int
	energy         int
}

// New creates a State with default values: a normal, quiet room during the
// day, no danger, a fresh meal, and full energy.
func New() *State {
	return &State{
		Temperature: TempNormal,
		Lighting:    LightNormal,
		Noise:       NoiseQuiet,
		TimeOfDay:   TimeDay,
		energy:      EnergyMax,
	}
}

// Energy returns the current energy level, always within [EnergyMin, EnergyMax].
func (s *State) Energy() int {
	return s.energy
}

// SetEnergy sets the energy level, clamped to [EnergyMin, EnergyMax].
func (s *State) SetEnergy(v int) {
	s.energy = clamp(v, EnergyMin, EnergyMax)
}

// AddEnergy adjusts the energy level by delta, clamped to [EnergyMin, EnergyMax].
func (s *State) AddEnergy(delta int) {
	s.SetEnergy(s.energy + delta)
}

// HoursSinceMeal returns the hours since the last meal, never negative.
func (s *State) HoursSinceMeal() int {
	return s.hoursSinceMeal
}

// SetHoursSinceMeal sets the hours since the last meal, floored at zero.
func (s *State) SetHoursSinceMeal(v int) {
	if v < 0 {
		v = 0
	}
	s.hoursSinceMeal = v
}

// AddHoursSinceMeal adjusts the hours since the last meal, floored at zero.
func (s *State) AddHoursSinceMeal(delta int) {
	s.SetHoursSinceMeal(s.hoursSinceMeal + delta)
}

// String renders the state as a single human-readable line.
func (s *State) String() string {
	return fmt.Sprintf(
		"temperature=%s lighting=%s noise=%s time=%s danger=%t meal=%dh energy=%d",
		s.Temperature, s.Lighting, s.Noise, s.TimeOfDay, s.Danger,
		s.hoursSinceMeal, s.energy,
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
