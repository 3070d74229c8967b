package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/potflow/flow"
)

// TableColumns are the columns written by WriteTable, in order.
var TableColumns = []string{ "x", "y", "phi", "psi", "vx", "vy", "speed" }

// ReadSweep reads one flow per row from the columns of a text table named in
// con.
func ReadSweep(con *SweepConfig) ([]flow.Params, error) {
	colIdxs := []int{ con.UColumn, con.AColumn, con.GammaColumn }
	cols, err := table.ReadTable(con.Input, colIdxs, nil)
	if err != nil { return nil, err }

	us, as, gammas := cols[0], cols[1], cols[2]
	ps := make([]flow.Params, len(us))
	for i := range ps {
		ps[i] = flow.Params{ U: us[i], A: as[i], Gamma: gammas[i] }
		fc := FlowConfig{ ps[i].U, ps[i].A, ps[i].Gamma }
		if err := fc.CheckInit(); err != nil {
			return nil, fmt.Errorf("Row %d of '%s': %s", i, con.Input, err)
		}
	}

	return ps, nil
}

// WriteTable writes every defined sample of f to a whitespace-separated text
// file with the columns given by TableColumns. The cylinder centre, if it is
// on the grid, is left out.
func WriteTable(fname string, f *flow.Field) error {
	file, err := os.Create(fname)
	if err != nil { return err }
	defer file.Close()

	wr := bufio.NewWriter(file)
	p := f.Params
	fmt.Fprintf(wr, "# U = %.6g, a = %.6g, Gamma = %.6g\n", p.U, p.A, p.Gamma)
	fmt.Fprint(wr, "#")
	for _, col := range TableColumns { fmt.Fprintf(wr, " %s", col) }
	fmt.Fprintln(wr)

	for i := range f.Samples {
		s := &f.Samples[i]
		if !s.Defined { continue }
		fmt.Fprintf(wr, "%.10g %.10g %.10g %.10g %.10g %.10g %.10g\n",
			s.X, s.Y, s.Phi, s.Psi, s.Vx, s.Vy, s.Speed)
	}

	if err = wr.Flush(); err != nil { return err }
	return file.Close()
}
