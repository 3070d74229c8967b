package io

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/potflow/flow"
)

const (
	ExampleRenderFile = `[Render]

#######################
# Required Parameters #
#######################

# Directory where output files will be written to.
Output = path/to/output/dir

# Each of the following switches turns on one kind of output. At least one
# must be set.

# Map writes a PNG showing the speed |v| as a colour map, streamlines (contours
# of the stream function psi) and the outline of the cylinder.
Map = true
# Profile writes a plot of the pressure coefficient and tangential velocity
# along the cylinder wall. This requires a working python/matplotlib install.
# Profile = true
# Table writes a text file with the columns x y phi psi vx vy speed, one row
# per grid point. The cylinder centre is left out.
# Table = true
# Binary writes every quantity to a little-endian binary file, with NaN at the
# cylinder centre.
# Binary = true

#######################
# Optional Parameters #
#######################

# Added to the front of every output file name.
# Prefix = run0_

# Width (and height) of the Map image in inches. Default is 6.
# Width = 6

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out

[Flow]
# Freestream speed, cylinder radius and circulation. Positive circulation
# is clockwise and gives positive lift.
U = 1.0
A = 1.0
Gamma = 1.0

# [Grid]
# The sampling grid covers [Min, Max] on both axes. The default is 18 samples
# over [-3, 3]. An odd number of samples on a symmetric range puts a sample at
# the cylinder centre, where the flow is undefined.
# Min = -3
# Max = 3
# Samples = 18`
	ExampleSweepFile = `[Sweep]
# Input is a whitespace-separated text table with one flow per row. The
# column indices of U, A and Gamma are given below.
Input = path/to/sweep.txt
UColumn = 0
AColumn = 1
GammaColumn = 2

[Render]
# Every Render option is accepted here. Each row of the table produces its own
# set of output files, named with the row number after the Prefix.
Output = path/to/output/dir
Map = true
# Prefix = sweep_

# [Grid]
# Min = -3
# Max = 3
# Samples = 18`
	ExampleViewFile = `[View]
# Window size in pixels.
Width = 1280
Height = 640
# Number of samples along each axis of the high resolution map in the right
# hand panel. The left hand panel always uses the coarse grid below.
Cells = 160

# LogFile = log.out

[Flow]
# Starting values for the controls.
U = 1.0
A = 1.0
Gamma = 1.0

# [Grid]
# Min = -3
# Max = 3
# Samples = 18`
)

type SharedConfig struct {
	// Required
	Output string
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type FlowConfig struct {
	U, A, Gamma float64
}

func DefaultFlowConfig() FlowConfig {
	p := flow.DefaultParams
	return FlowConfig{ U: p.U, A: p.A, Gamma: p.Gamma }
}

func (con *FlowConfig) ValidU() bool { return con.U > 0 && finite(con.U) }
func (con *FlowConfig) ValidA() bool { return con.A > 0 && finite(con.A) }
func (con *FlowConfig) ValidGamma() bool { return finite(con.Gamma) }

// Params returns the flow described by the config.
func (con *FlowConfig) Params() flow.Params {
	return flow.Params{ U: con.U, A: con.A, Gamma: con.Gamma }
}

// CheckInit returns an error describing the first invalid value, if any.
func (con *FlowConfig) CheckInit() error {
	if !con.ValidU() {
		return fmt.Errorf("Flow 'U' must be positive, but is %g.", con.U)
	} else if !con.ValidA() {
		return fmt.Errorf("Flow 'A' must be positive, but is %g.", con.A)
	} else if !con.ValidGamma() {
		return fmt.Errorf("Flow 'Gamma' must be finite, but is %g.", con.Gamma)
	}
	return nil
}

type GridConfig struct {
	Min, Max float64
	Samples int
}

func DefaultGridConfig() GridConfig {
	return GridConfig{
		Min: flow.DefaultMin, Max: flow.DefaultMax,
		Samples: flow.DefaultSamples,
	}
}

func (con *GridConfig) ValidRange() bool {
	return finite(con.Min) && finite(con.Max) && con.Max > con.Min
}
func (con *GridConfig) ValidSamples() bool {
	return con.Samples >= 2
}

func (con *GridConfig) CheckInit() error {
	if !con.ValidRange() {
		return fmt.Errorf(
			"Grid range [%g, %g] is empty or not finite.", con.Min, con.Max,
		)
	} else if !con.ValidSamples() {
		return fmt.Errorf(
			"Grid 'Samples' must be at least 2, but is %d.", con.Samples,
		)
	}
	return nil
}

// Grid returns the sampling grid described by the config. The default grid
// is shared rather than rebuilt.
func (con *GridConfig) Grid() *flow.Grid {
	if *con == DefaultGridConfig() { return flow.DefaultGrid() }
	return flow.NewGrid(con.Min, con.Max, con.Samples)
}

type RenderConfig struct {
	SharedConfig

	// Optional
	Prefix string
	Map, Profile, Table, Binary bool
	Width float64
}

func (con *RenderConfig) ValidWidth() bool {
	return con.Width > 0 && finite(con.Width)
}

// ValidOutputs returns true if at least one kind of output was requested.
func (con *RenderConfig) ValidOutputs() bool {
	return con.Map || con.Profile || con.Table || con.Binary
}

func (con *RenderConfig) CheckInit() error {
	if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidWidth() {
		return fmt.Errorf("Render 'Width' must be positive, but is %g.", con.Width)
	} else if !con.ValidOutputs() {
		return fmt.Errorf(
			"At least one of 'Map', 'Profile', 'Table' and 'Binary' must " +
				"be set to true.",
		)
	}
	return nil
}

type SweepConfig struct {
	// Required
	Input string

	// Optional
	UColumn, AColumn, GammaColumn int
}

func (con *SweepConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SweepConfig) ValidColumns() bool {
	return con.UColumn >= 0 && con.AColumn >= 0 && con.GammaColumn >= 0 &&
		con.UColumn != con.AColumn && con.UColumn != con.GammaColumn &&
		con.AColumn != con.GammaColumn
}

func (con *SweepConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"Sweep columns (%d, %d, %d) must be distinct and non-negative.",
			con.UColumn, con.AColumn, con.GammaColumn,
		)
	}
	return nil
}

type ViewConfig struct {
	Width, Height, Cells int

	// Optional
	LogFile string
}

func (con *ViewConfig) ValidSize() bool {
	return con.Width > 0 && con.Height > 0
}
func (con *ViewConfig) ValidCells() bool {
	return con.Cells >= 2
}
func (con *ViewConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

func (con *ViewConfig) CheckInit() error {
	if !con.ValidSize() {
		return fmt.Errorf(
			"View size %d x %d must be positive.", con.Width, con.Height,
		)
	} else if !con.ValidCells() {
		return fmt.Errorf("View 'Cells' must be at least 2, but is %d.", con.Cells)
	}
	return nil
}

type RenderWrapper struct {
	Render RenderConfig
	Flow   FlowConfig
	Grid   GridConfig
}

func DefaultRenderWrapper() *RenderWrapper {
	rc := RenderConfig{ }
	rc.Width = 6
	return &RenderWrapper{ rc, DefaultFlowConfig(), DefaultGridConfig() }
}

func (wrap *RenderWrapper) CheckInit() error {
	if err := wrap.Render.CheckInit(); err != nil { return err }
	if err := wrap.Flow.CheckInit(); err != nil { return err }
	return wrap.Grid.CheckInit()
}

type SweepWrapper struct {
	Sweep  SweepConfig
	Render RenderConfig
	Grid   GridConfig
}

func DefaultSweepWrapper() *SweepWrapper {
	sc := SweepConfig{ UColumn: 0, AColumn: 1, GammaColumn: 2 }
	rc := RenderConfig{ }
	rc.Width = 6
	return &SweepWrapper{ sc, rc, DefaultGridConfig() }
}

func (wrap *SweepWrapper) CheckInit() error {
	if err := wrap.Sweep.CheckInit(); err != nil { return err }
	if err := wrap.Render.CheckInit(); err != nil { return err }
	return wrap.Grid.CheckInit()
}

type ViewWrapper struct {
	View ViewConfig
	Flow FlowConfig
	Grid GridConfig
}

func DefaultViewWrapper() *ViewWrapper {
	vc := ViewConfig{ Width: 1280, Height: 640, Cells: 160 }
	return &ViewWrapper{ vc, DefaultFlowConfig(), DefaultGridConfig() }
}

func (wrap *ViewWrapper) CheckInit() error {
	if err := wrap.View.CheckInit(); err != nil { return err }
	if err := wrap.Flow.CheckInit(); err != nil { return err }
	return wrap.Grid.CheckInit()
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
