package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/cmplx"
	"os"
	"path"
	"runtime/pprof"
	"strings"

	"gopkg.in/gcfg.v1"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/potflow/flow"
	"github.com/phil-mansfield/potflow/io"
	"github.com/phil-mansfield/potflow/render"
	"github.com/phil-mansfield/potflow/viewer"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		renderStr, sweepStr, viewStr string
		exampleConfig string
	)
	vars := map[string]*string {
		"Render": &renderStr,
		"Sweep": &sweepStr,
		"View": &viewStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&renderStr, "Render", "",
		"Configuration file for [Render] mode, which renders a single flow.",
	)
	flag.StringVar(
		&sweepStr, "Sweep", "",
		"Configuration file for [Sweep] mode, which renders one flow per " +
			"row of a parameter table.",
	)
	flag.StringVar(
		&viewStr, "View", "",
		"Configuration file for [View] mode, which opens an interactive " +
			"window.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Render', " +
			"'Sweep', and 'View'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Render":
		wrap := io.DefaultRenderWrapper()
		err := gcfg.ReadFileInto(wrap, renderStr)
		if err != nil { log.Fatal(err.Error()) }
		if err = wrap.CheckInit(); err != nil { log.Fatal(err.Error()) }

		fg := setupFiles(&wrap.Render.SharedConfig)
		defer fg.Close()

		renderMain(&wrap.Render, wrap.Flow.Params(), wrap.Grid.Grid())
		if wrap.Render.Profile { plt.Execute() }

	case "Sweep":
		wrap := io.DefaultSweepWrapper()
		err := gcfg.ReadFileInto(wrap, sweepStr)
		if err != nil { log.Fatal(err.Error()) }
		if err = wrap.CheckInit(); err != nil { log.Fatal(err.Error()) }

		fg := setupFiles(&wrap.Render.SharedConfig)
		defer fg.Close()

		sweepMain(wrap)
		if wrap.Render.Profile { plt.Execute() }

	case "View":
		wrap := io.DefaultViewWrapper()
		err := gcfg.ReadFileInto(wrap, viewStr)
		if err != nil { log.Fatal(err.Error()) }
		if err = wrap.CheckInit(); err != nil { log.Fatal(err.Error()) }

		fg := setupFiles(&io.SharedConfig{ LogFile: wrap.View.LogFile })
		defer fg.Close()

		if err = viewer.Run(wrap); err != nil { log.Fatal(err.Error()) }

	case "ExampleConfig":
		switch exampleConfig {
		case "Render":
			fmt.Println(io.ExampleRenderFile)
		case "Sweep":
			fmt.Println(io.ExampleSweepFile)
		case "View":
			fmt.Println(io.ExampleViewFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Render', 'Sweep', and 'View'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but potflow " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupFiles redirects logging and starts profiling if the config asks for
// either.
func setupFiles(con *io.SharedConfig) *FileGroup {
	fg := &FileGroup{}

	if con.ValidLogFile() {
		var err error
		fg.log, err = os.Create(con.LogFile)
		if err != nil { log.Fatal(err.Error()) }
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		var err error
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { log.Fatal(err.Error()) }
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

// renderMain evaluates a single flow and writes every requested output.
func renderMain(con *io.RenderConfig, p flow.Params, g *flow.Grid) {
	if err := os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}

	f := flow.Evaluate(p, g)
	logSummary(f)

	outName := func(name string) string {
		return path.Join(con.Output, con.Prefix + name)
	}

	if con.Map {
		fname := outName("map.png")
		if err := render.SaveMap(f, con.Width, fname); err != nil {
			log.Fatal(err.Error())
		}
		log.Println("Wrote", fname)
	}

	if con.Profile {
		fname := outName("profile.png")
		render.Profile(p, fname)
		log.Println("Queued", fname)
	}

	if con.Table {
		fname := outName("field.txt")
		if err := io.WriteTable(fname, f); err != nil { log.Fatal(err.Error()) }
		log.Println("Wrote", fname)
	}

	if con.Binary {
		fname := outName("field.pflow")
		if err := io.WriteFieldFile(fname, f); err != nil {
			log.Fatal(err.Error())
		}
		log.Println("Wrote", fname)
	}
}

// sweepMain runs renderMain once for every row of the sweep table.
func sweepMain(wrap *io.SweepWrapper) {
	ps, err := io.ReadSweep(&wrap.Sweep)
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Read %d flows from %s", len(ps), wrap.Sweep.Input)

	g := wrap.Grid.Grid()
	prefix := wrap.Render.Prefix
	for i, p := range ps {
		con := wrap.Render
		con.Prefix = fmt.Sprintf("%s%03d_", prefix, i)
		renderMain(&con, p, g)
	}
}

func logSummary(f *flow.Field) {
	p := f.Params
	log.Printf("U = %g, a = %g, Gamma = %g", p.U, p.A, p.Gamma)

	if undef := f.Undefined(); len(undef) > 0 {
		log.Printf("%d of %d samples undefined (cylinder centre)",
			len(undef), len(f.Samples))
	}

	lo, hi := f.Range(flow.Speed)
	log.Printf("|v| in [%.4g, %.4g], lift per unit span / rho = %.4g",
		lo, hi, flow.Lift(p, 1))

	for _, z := range flow.Stagnation(p) {
		log.Printf("Stagnation point at r = %.4g, theta = %.4g deg",
			cmplx.Abs(z), cmplx.Phase(z)*180/math.Pi)
	}
}
