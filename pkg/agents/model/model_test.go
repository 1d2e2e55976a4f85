package model

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthlab/hearth/pkg/actions"
	"github.com/hearthlab/hearth/pkg/effects"
	"github.com/hearthlab/hearth/pkg/policy"
	"github.com/hearthlab/hearth/pkg/world"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAgent() *Agent {
	return New("homeassistant", policy.Default(), effects.Default(), discard())
}

func TestStep_EffectsFeedBackIntoState(t *testing.T) {
	a := newAgent()

	res, err := a.Step(context.Background(), "The room is getting cold")
	require.NoError(t, err)
	assert.Equal(t, actions.TurnOnHeater, res.Action)

	// The heater's effect already normalized the temperature.
	assert.Equal(t, world.TempNormal, a.World().Temperature)
	assert.Contains(t, res.Output, "temperature=normal")
}

func TestStep_StatePersistsAcrossCycles(t *testing.T) {
	a := newAgent()

	// The first cycle only records that it got dark; the second decides on
	// state accumulated before it, not on its own percept.
	res, err := a.Step(context.Background(), "the sun has set, it's night")
	require.NoError(t, err)
	assert.Equal(t, actions.DoNothing, res.Action)

	res, err = a.Step(context.Background(), "someone turned on a bright floodlight")
	require.NoError(t, err)
	assert.Equal(t, actions.CloseBlinds, res.Action)
	assert.Equal(t, world.LightNormal, a.World().Lighting)
}

func TestStep_HungryPercept(t *testing.T) {
	a := newAgent()

	res, err := a.Step(context.Background(), "you feel hungry")
	require.NoError(t, err)
	assert.Equal(t, actions.EatFood, res.Action)
	assert.Equal(t, 0, a.World().HoursSinceMeal())
}

func TestStep_Scenario(t *testing.T) {
	a := newAgent()

	percepts := []string{
		"The room is getting cold",
		"It's getting dark",
		"You hear a strange noise",
		"You feel hungry",
		"Smoke detected in the kitchen",
	}
	want := []actions.Action{
		actions.TurnOnHeater,
		actions.TurnOnLight,
		actions.InvestigateNoise,
		actions.EatFood,
		actions.Escape,
	}

	for i, p := range percepts {
		res, err := a.Step(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, want[i], res.Action, "percept %d: %s", i, p)
	}

	assert.False(t, a.World().Danger)
	assert.Equal(t, len(percepts), a.ActionsTaken())
}

func TestStep_DangerPreempts(t *testing.T) {
	a := newAgent()
	a.World().Temperature = world.TempCold
	a.World().SetEnergy(5)

	res, err := a.Step(context.Background(), "danger!")
	require.NoError(t, err)
	assert.Equal(t, actions.Escape, res.Action)
	assert.False(t, a.World().Danger)
}

func TestStep_LowEnergyRest(t *testing.T) {
	a := newAgent()
	a.World().SetEnergy(15)

	res, err := a.Step(context.Background(), "nothing in particular")
	require.NoError(t, err)
	assert.Equal(t, actions.Rest, res.Action)

	// 15 - 2 decay + 50 rest = 63.
	assert.Equal(t, 63, a.World().Energy())
}

func TestStep_OutputReportsState(t *testing.T) {
	a := newAgent()

	res, err := a.Step(context.Background(), "it's a quiet morning")
	require.NoError(t, err)
	assert.Contains(t, res.Output, "time=morning")
	assert.Contains(t, res.Output, "energy=98")
}
