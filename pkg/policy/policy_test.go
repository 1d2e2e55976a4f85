package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthlab/hearth/pkg/actions"
	"github.com/hearthlab/hearth/pkg/world"
)

func TestDecide_DangerOutranksEverything(t *testing.T) {
	p := Default()
	s := world.New()
	s.Danger = true
	s.Temperature = world.TempCold
	s.SetEnergy(5)
	s.SetHoursSinceMeal(10)

	assert.Equal(t, actions.Escape, p.Decide(s))
}

func TestDecide_LowEnergyOutranksComfort(t *testing.T) {
	p := Default()
	s := world.New()
	s.SetEnergy(RestThreshold - 1)
	s.Temperature = world.TempHot

	assert.Equal(t, actions.Rest, p.Decide(s))
}

func TestDecide_HungerOutranksComfort(t *testing.T) {
	p := Default()
	s := world.New()
	s.SetHoursSinceMeal(HungerThreshold + 1)
	s.Temperature = world.TempCold

	assert.Equal(t, actions.EatFood, p.Decide(s))
}

func TestDecide_Temperature(t *testing.T) {
	p := Default()

	s := world.New()
	s.Temperature = world.TempCold
	assert.Equal(t, actions.TurnOnHeater, p.Decide(s))

	s = world.New()
	s.Temperature = world.TempHot
	assert.Equal(t, actions.TurnOnAC, p.Decide(s))
}

func TestDecide_DarkOnlyOutsideNight(t *testing.T) {
	p := Default()

	s := world.New()
	s.Lighting = world.LightDark
	assert.Equal(t, actions.TurnOnLight, p.Decide(s))

	// Dark at night is expected, not a problem.
	s.TimeOfDay = world.TimeNight
	assert.Equal(t, actions.DoNothing, p.Decide(s))
}

func TestDecide_BrightOnlyAtNight(t *testing.T) {
	p := Default()

	s := world.New()
	s.Lighting = world.LightBright
	assert.Equal(t, actions.DoNothing, p.Decide(s))

	s.TimeOfDay = world.TimeNight
	assert.Equal(t, actions.CloseBlinds, p.Decide(s))
}

func TestDecide_Noise(t *testing.T) {
	p := Default()
	s := world.New()
	s.Noise = world.NoiseNoisy

	assert.Equal(t, actions.InvestigateNoise, p.Decide(s))
}

func TestDecide_Thresholds(t *testing.T) {
	p := Default()

	s := world.New()
	s.SetEnergy(RestThreshold)
	assert.Equal(t, actions.DoNothing, p.Decide(s), "energy at the threshold should not trigger rest")

	s = world.New()
	s.SetHoursSinceMeal(HungerThreshold - 1)
	assert.Equal(t, actions.DoNothing, p.Decide(s), "hours just under the threshold should not trigger eating")

	s.SetHoursSinceMeal(HungerThreshold)
	assert.Equal(t, actions.EatFood, p.Decide(s), "hours at the threshold should trigger eating")
}

func TestDecide_NothingWrong(t *testing.T) {
	p := Default()
	assert.Equal(t, actions.DoNothing, p.Decide(world.New()))
}

func TestDecide_EmptyPolicy(t *testing.T) {
	var p Policy
	s := world.New()
	s.Danger = true

	assert.Equal(t, actions.DoNothing, p.Decide(s))
}
