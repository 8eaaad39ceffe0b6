package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ja7ad/jetcycle/pkg/config"
	"github.com/ja7ad/jetcycle/pkg/engine"
	"github.com/ja7ad/jetcycle/pkg/report"
	"github.com/ja7ad/jetcycle/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type opts struct {
	// design point
	configPath string
	workBasis  string
	dry        bool
	static     bool
	verbose    bool

	// run
	pretty bool

	// sweep
	param string
	from  float64
	to    float64
	steps int

	// outputs
	csvPath  string
	jsonPath string
	htmlPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o opts

	root := &cobra.Command{
		Use:   "jetcycle",
		Short: "Jet engine thermodynamic cycle model",
		Long: `The jetcycle tool evaluates a turbojet design point station by station:
inlet, compressor, combustor, turbine, afterburner and nozzle. Each stage
consumes the stagnation state of the one before it and the nozzle reports
the resulting thrust and fuel consumption.

Design points come from the built-in reference engine or from a .toml, .ini
or .yaml file that overrides any subset of it.

Examples:
  jetcycle run --pretty
  jetcycle run --config point.toml --dry --json out/run.json --html out/run.html
  jetcycle run --static=false
  jetcycle sweep --param combustor.fuel_air_ratio --from 0.01 --to 0.03 --steps 11 --csv out/sweep.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(o.verbose)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "design point file (.toml, .ini, .yaml, .yml)")
	pf.StringVar(&o.workBasis, "work-basis", "shaft", "turbine work basis: shaft or exit-energy")
	pf.BoolVar(&o.dry, "dry", false, "skip the afterburner")
	pf.BoolVar(&o.static, "static", true, "take thrust on a test stand; --static=false charges ram drag at the inlet velocity")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log every stage evaluation")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate one design point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}
	runCmd.Flags().BoolVar(&o.pretty, "pretty", true, "format output as tables instead of label: value lines")
	runCmd.Flags().StringVar(&o.csvPath, "csv", "", "write every quantity to CSV file")
	runCmd.Flags().StringVar(&o.jsonPath, "json", "", "write the report to JSON file")
	runCmd.Flags().StringVar(&o.htmlPath, "html", "", "write the report to HTML file")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the design point across a range of one parameter",
		Long:  "Sweepable parameters:\n  " + strings.Join(paramNames(), "\n  "),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sweep(cmd, o)
		},
	}
	sweepCmd.Flags().StringVarP(&o.param, "param", "p", string(engine.ParamFuelAirRatio), "parameter to vary")
	sweepCmd.Flags().Float64Var(&o.from, "from", 0.01, "first value")
	sweepCmd.Flags().Float64Var(&o.to, "to", 0.03, "last value")
	sweepCmd.Flags().IntVarP(&o.steps, "steps", "n", 5, "number of points, both ends included")
	sweepCmd.Flags().StringVar(&o.csvPath, "csv", "", "write sweep rows to CSV file")

	root.AddCommand(runCmd, sweepCmd)
	return root
}

func setupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: time.DateTime})
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func paramNames() []string {
	ps := engine.Params()
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

// newEngine loads the design point and applies the flags the user set explicitly.
func newEngine(cmd *cobra.Command, o opts) (*engine.Engine, error) {
	var (
		cfg *engine.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
		if err == nil {
			log.WithField("path", o.configPath).Info("design point loaded")
		}
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("work-basis") {
		if cfg.WorkBasis, err = engine.ParseWorkBasis(o.workBasis); err != nil {
			return nil, err
		}
	}
	if flags.Changed("dry") {
		cfg.Dry = o.dry
	}
	if flags.Changed("static") {
		cfg.Static = o.static
	}
	return engine.New(cfg, engine.WithLogger(log.StandardLogger())), nil
}

func run(cmd *cobra.Command, o opts) error {
	e, err := newEngine(cmd, o)
	if err != nil {
		return err
	}

	res, err := e.Run()
	if err != nil {
		return err
	}
	rep := report.New(res, e.Config())

	fmt.Printf(_console, time.Now().Format(time.DateTime))
	if o.pretty {
		err = report.WriteTable(os.Stdout, rep)
	} else {
		err = report.WriteText(os.Stdout, rep)
	}
	if err != nil {
		return err
	}

	outputs := []struct {
		path  string
		write func(io.Writer, *report.Report) error
	}{
		{o.csvPath, report.WriteCSV},
		{o.jsonPath, report.WriteJSON},
		{o.htmlPath, report.WriteHTML},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := writeFile(out.path, func(w io.Writer) error { return out.write(w, rep) }); err != nil {
			return err
		}
		log.WithField("path", out.path).Info("report written")
	}
	return nil
}

func sweep(cmd *cobra.Command, o opts) error {
	p, err := engine.ParseParam(o.param)
	if err != nil {
		return err
	}
	if o.steps < 1 {
		return fmt.Errorf("steps must be >= 1")
	}

	e, err := newEngine(cmd, o)
	if err != nil {
		return err
	}

	// Ctrl-C handling
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	points, err := e.Sweep(ctx, p, util.Linspace(o.from, o.to, o.steps))
	if err != nil {
		if ctx.Err() != nil {
			log.Info("interrupted")
		}
		return err
	}
	log.WithFields(log.Fields{
		"param":   p,
		"points":  len(points),
		"elapsed": time.Since(start).Round(time.Microsecond),
	}).Debug("sweep evaluated")

	s := report.NewSweep(p, points)
	if err := report.WriteSweepTable(os.Stdout, s); err != nil {
		return err
	}
	if o.csvPath != "" {
		if err := writeFile(o.csvPath, func(w io.Writer) error { return report.WriteSweepCSV(w, s) }); err != nil {
			return err
		}
		log.WithField("path", o.csvPath).Info("sweep written")
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

const _console = `Jetcycle - Jet Engine Thermodynamic Cycle Model

* GitHub: https://github.com/ja7ad/jetcycle

Cycle report as of %s:

`
