package io

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/potflow/flow"
)

func TestSlider(t *testing.T) {
	s := NewSlider("U", 0.5, 5.0, 0.1, 1.0)
	assert.Equal(t, 1.0, s.Value)

	assert.True(t, s.Inc())
	assert.Equal(t, 1.1, s.Value)
	assert.True(t, s.Dec())
	assert.True(t, s.Dec())
	assert.Equal(t, 0.9, s.Value)

	for i := 0; i < 100; i++ { s.Inc() }
	assert.Equal(t, 5.0, s.Value, "clamped to max")
	assert.False(t, s.Inc())

	assert.True(t, s.Set(-3))
	assert.Equal(t, 0.5, s.Value, "clamped to min")

	s.Set(2.345)
	assert.Equal(t, 2.3, s.Value, "snapped to step")

	assert.True(t, s.Reset())
	assert.Equal(t, 1.0, s.Value)
}

func TestSliderDrift(t *testing.T) {
	s := NewSlider("Gamma", -10, 10, 0.5, 1)
	for i := 0; i < 40; i++ { s.Dec() }
	assert.Equal(t, -10.0, s.Value)
	for i := 0; i < 21; i++ { s.Inc() }
	assert.Equal(t, 0.5, s.Value)

	a := NewSlider("a", 0.1, 2.0, 0.1, 0.1)
	for i := 0; i < 19; i++ { a.Inc() }
	assert.Equal(t, 2.0, a.Value)
}

func TestControls(t *testing.T) {
	con := DefaultFlowConfig()
	c := NewControls(&con)
	assert.Equal(t, flow.DefaultParams, c.Params())

	c.U.Inc()
	c.Gamma.Dec()
	assert.Equal(t, flow.Params{ U: 1.1, A: 1, Gamma: 0.5 }, c.Params())

	assert.True(t, c.Reset())
	assert.False(t, c.Reset())
	assert.Equal(t, flow.DefaultParams, c.Params())

	far := FlowConfig{ U: 100, A: 0.01, Gamma: -40 }
	c = NewControls(&far)
	assert.Equal(t, flow.Params{ U: 5, A: 0.1, Gamma: -10 }, c.Params())
	assert.Equal(t, 3, len(c.Sliders()))
}
