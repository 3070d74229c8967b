package io

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/potflow/flow"
)

// Slider is a numeric control bound to a closed range and moved in fixed
// steps. Value is always a whole number of steps above Min.
type Slider struct {
	Name                 string
	Min, Max, Step, Init float64
	Value                float64
}

// NewSlider creates a slider over [min, max] which starts at init, snapped
// onto the range.
func NewSlider(name string, min, max, step, init float64) *Slider {
	if step <= 0 { panic("Slider step must be positive.") }
	s := &Slider{ Name: name, Min: min, Max: max, Step: step }
	s.Set(init)
	s.Init = s.Value
	return s
}

// Set moves the slider to the step nearest x, clamped to [Min, Max]. It
// returns true if the value changed.
func (s *Slider) Set(x float64) bool {
	if math.IsNaN(x) { return false }
	n := math.Round((x - s.Min) / s.Step)
	steps := math.Floor((s.Max - s.Min)/s.Step + 1e-9)
	if n < 0 { n = 0 }
	if n > steps { n = steps }

	// Rounding to a multiple of 1e-9 keeps repeated steps from drifting.
	v := math.Round((s.Min + n*s.Step)*1e9) / 1e9
	changed := v != s.Value
	s.Value = v
	return changed
}

func (s *Slider) Inc() bool { return s.Set(s.Value + s.Step) }
func (s *Slider) Dec() bool { return s.Set(s.Value - s.Step) }
func (s *Slider) Reset() bool { return s.Set(s.Init) }

func (s *Slider) String() string {
	return fmt.Sprintf("%s = %.2f [%g, %g]", s.Name, s.Value, s.Min, s.Max)
}

// Controls are the three sliders which drive the flow.
type Controls struct {
	U, A, Gamma *Slider
}

// NewControls returns sliders over U in [0.5, 5], a in [0.1, 2] (both in
// steps of 0.1) and Gamma in [-10, 10] in steps of 0.5, starting from con.
func NewControls(con *FlowConfig) *Controls {
	return &Controls{
		U:     NewSlider("U", 0.5, 5.0, 0.1, con.U),
		A:     NewSlider("a", 0.1, 2.0, 0.1, con.A),
		Gamma: NewSlider("Gamma", -10.0, 10.0, 0.5, con.Gamma),
	}
}

// Params returns the flow selected by the sliders.
func (c *Controls) Params() flow.Params {
	return flow.Params{ U: c.U.Value, A: c.A.Value, Gamma: c.Gamma.Value }
}

// Sliders returns the sliders in display order.
func (c *Controls) Sliders() []*Slider {
	return []*Slider{ c.U, c.A, c.Gamma }
}

// Reset returns every slider to its initial value.
func (c *Controls) Reset() bool {
	changed := false
	for _, s := range c.Sliders() {
		if s.Reset() { changed = true }
	}
	return changed
}
