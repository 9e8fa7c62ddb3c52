package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/shotsim/internal/api"
	"github.com/san-kum/shotsim/internal/automation"
	"github.com/san-kum/shotsim/internal/config"
	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/export"
	"github.com/san-kum/shotsim/internal/ground"
	"github.com/san-kum/shotsim/internal/integrators"
	"github.com/san-kum/shotsim/internal/metrics"
	"github.com/san-kum/shotsim/internal/optim"
	"github.com/san-kum/shotsim/internal/shot"
	"github.com/san-kum/shotsim/internal/viz"
)

var (
	configFile string
	preset     string
	surface    string
	integrator string
	dt         float64

	ballSpeed float64
	vla       float64
	hla       float64
	backSpin  float64
	sideSpin  float64

	tempF     float64
	elevation float64
	humidity  float64
	windSpeed float64
	windDir   float64

	jsonOut   bool
	csvOut    bool
	plot      bool
	overlay   bool
	themeName string
	plotWidth int
	svgFile   string
	svg3DFile string

	port string

	sweepMin   float64
	sweepMax   float64
	sweepSteps int

	trials      int
	mcSeed      int64
	speedSpread float64
	vlaSpread   float64
	hlaSpread   float64
	spinSpread  float64
	sideSpread  float64

	target    float64
	objective string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shotsim",
		Short: "golf ball flight, bounce and roll simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand: open the tuner on the default shot
			return runTune(cmd, args)
		},
	}
	addShotFlags(rootCmd)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "simulate one shot",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
	addShotFlags(simulateCmd)
	simulateCmd.Flags().BoolVar(&jsonOut, "json", false, "print the full result as JSON")
	simulateCmd.Flags().BoolVar(&csvOut, "csv", false, "print the trajectory as CSV")
	simulateCmd.Flags().BoolVar(&plot, "plot", false, "plot side and top profiles")
	simulateCmd.Flags().StringVar(&themeName, "theme", "range",
		fmt.Sprintf("summary theme (%s)", strings.Join(viz.ThemeNames(), ", ")))
	simulateCmd.Flags().IntVar(&plotWidth, "width", 72, "plot width")
	simulateCmd.Flags().StringVar(&svgFile, "svg", "", "write the side profile to an SVG file")
	simulateCmd.Flags().StringVar(&svg3DFile, "svg-3d", "", "write a 3d dot render to an SVG file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list shot presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:       "compare [surfaces|wind|integrators]",
		Short:     "run one shot under varying conditions",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"surfaces", "wind", "integrators"},
		RunE:      runCompare,
	}
	addShotFlags(compareCmd)
	compareCmd.Flags().BoolVar(&overlay, "plot", true, "overlay side profiles")
	compareCmd.Flags().IntVar(&plotWidth, "width", 72, "plot width")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "interactive what-if tuner",
		Args:  cobra.NoArgs,
		RunE:  runTune,
	}
	addShotFlags(tuneCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the HTTP and websocket API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&port, "port", "", "listen port (overrides SHOTSIM_PORT)")
	serveCmd.Flags().StringVar(&surface, "surface", "", "default surface (overrides SHOTSIM_SURFACE)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with the current settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	addShotFlags(configInitCmd)
	configCmd.AddCommand(configInitCmd)

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted list of shots from YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	addShotFlags(scenarioCmd)

	sweepCmd := &cobra.Command{
		Use:       "sweep [param]",
		Short:     "sweep one launch or weather parameter",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: automation.SweepParams,
		RunE:      runSweep,
	}
	addShotFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of values")

	dispersionCmd := &cobra.Command{
		Use:   "dispersion",
		Short: "Monte Carlo spread of a shot",
		Args:  cobra.NoArgs,
		RunE:  runDispersion,
	}
	addShotFlags(dispersionCmd)
	dispersionCmd.Flags().IntVar(&trials, "trials", 200, "number of shots")
	dispersionCmd.Flags().Int64Var(&mcSeed, "seed", time.Now().UnixNano(), "random seed")
	dispersionCmd.Flags().Float64Var(&speedSpread, "speed-sd", 2, "ball speed std dev (mph)")
	dispersionCmd.Flags().Float64Var(&vlaSpread, "vla-sd", 1, "launch angle std dev (deg)")
	dispersionCmd.Flags().Float64Var(&hlaSpread, "hla-sd", 2, "direction std dev (deg)")
	dispersionCmd.Flags().Float64Var(&spinSpread, "backspin-sd", 300, "backspin std dev (rpm)")
	dispersionCmd.Flags().Float64Var(&sideSpread, "sidespin-sd", 400, "sidespin std dev (rpm)")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "grid search launch angle and backspin for the ball speed",
		Args:  cobra.NoArgs,
		RunE:  runOptimize,
	}
	addShotFlags(optimizeCmd)
	optimizeCmd.Flags().Float64Var(&target, "target", 0, "carry target in yards (0 = maximize the objective)")
	optimizeCmd.Flags().StringVar(&objective, "objective", "carry", "distance to maximize: carry or total")

	rootCmd.AddCommand(simulateCmd, presetsCmd, compareCmd, tuneCmd, serveCmd, configCmd,
		scenarioCmd, sweepCmd, dispersionCmd, optimizeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addShotFlags(cmd *cobra.Command) {
	d := config.DefaultConfig()
	f := cmd.Flags()

	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use a named shot preset")
	f.StringVar(&surface, "surface", d.Surface, "landing surface")
	f.StringVar(&integrator, "integrator", d.Integrator,
		fmt.Sprintf("integrator (%s)", strings.Join(integrators.Names(), ", ")))
	f.Float64Var(&dt, "dt", d.Dt, "timestep (s)")

	f.Float64Var(&ballSpeed, "speed", d.Shot.BallSpeed, "ball speed (mph)")
	f.Float64Var(&vla, "vla", d.Shot.VLA, "vertical launch angle (deg)")
	f.Float64Var(&hla, "hla", d.Shot.HLA, "horizontal launch angle (deg, + = right)")
	f.Float64Var(&backSpin, "backspin", d.Shot.BackSpin, "backspin (rpm)")
	f.Float64Var(&sideSpin, "sidespin", d.Shot.SideSpin, "sidespin (rpm, + = slice)")

	f.Float64Var(&tempF, "temp", d.Conditions.TempF, "temperature (F)")
	f.Float64Var(&elevation, "elevation", d.Conditions.ElevationFt, "elevation (ft)")
	f.Float64Var(&humidity, "humidity", d.Conditions.HumidityPct, "relative humidity (%)")
	f.Float64Var(&windSpeed, "wind", d.Conditions.WindSpeedMph, "wind speed (mph)")
	f.Float64Var(&windDir, "wind-dir", d.Conditions.WindDirDeg, "wind direction it blows from (deg, 0 = headwind)")
}

// resolveConfig layers defaults, then a preset, then a config file, then any
// flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	if flags.Changed("surface") {
		cfg.Surface = surface
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	set("dt", &cfg.Dt, dt)
	set("speed", &cfg.Shot.BallSpeed, ballSpeed)
	set("vla", &cfg.Shot.VLA, vla)
	set("hla", &cfg.Shot.HLA, hla)
	set("backspin", &cfg.Shot.BackSpin, backSpin)
	set("sidespin", &cfg.Shot.SideSpin, sideSpin)
	set("temp", &cfg.Conditions.TempF, tempF)
	set("elevation", &cfg.Conditions.ElevationFt, elevation)
	set("humidity", &cfg.Conditions.HumidityPct, humidity)
	set("wind", &cfg.Conditions.WindSpeedMph, windSpeed)
	set("wind-dir", &cfg.Conditions.WindDirDeg, windDir)

	return cfg, nil
}

func setup(cmd *cobra.Command) (*config.Config, *engine.Engine, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	e, err := cfg.NewEngine()
	if err != nil {
		return nil, nil, err
	}
	return cfg, e, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, e, err := setup(cmd)
	if err != nil {
		return err
	}

	result := e.Simulate(cfg.Shot)

	switch {
	case jsonOut:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case csvOut:
		return writeTrajectoryCSV(os.Stdout, result.Trajectory)
	}

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.TrajectorySVG(result, 900, 320)), 0644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
	}
	if svg3DFile != "" {
		if err := os.WriteFile(svg3DFile, []byte(render3DSVG(result, plotWidth)), 0644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
	}

	fmt.Println(viz.RenderSummary(result, viz.GetTheme(themeName)))
	fmt.Println(viz.PhaseCounts(result, viz.GetTheme(themeName)))

	if plot {
		fmt.Println()
		fmt.Println(viz.SideProfile(result.Trajectory, plotWidth, 12))
		fmt.Println()
		fmt.Println(viz.TopProfile(result.Trajectory, plotWidth, 8))
	}
	return nil
}

// render3DSVG draws the trajectory with the default camera onto a braille
// canvas and exports the lit dots.
func render3DSVG(r shot.ShotResult, width int) string {
	c := viz.NewCanvas(width, width/3)
	viz.Render3D(c, r.Trajectory, viz.NewCamera())
	return export.CanvasToSVG(c, 4)
}

func writeTrajectoryCSV(out io.Writer, points []shot.TrajectoryPoint) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"t", "x_yd", "y_ft", "z_yd", "phase"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.T, 'f', 3, 64),
			strconv.FormatFloat(p.X, 'f', 3, 64),
			strconv.FormatFloat(p.Y, 'f', 3, 64),
			strconv.FormatFloat(p.Z, 'f', 3, 64),
			p.Phase.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSPEED\tVLA\tHLA\tBACKSPIN\tSIDESPIN\tSURFACE\tELEVATION")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f mph\t%.1f°\t%.1f°\t%.0f\t%.0f\t%s\t%.0f ft\n",
			name,
			p.Shot.BallSpeed,
			p.Shot.VLA,
			p.Shot.HLA,
			p.Shot.BackSpin,
			p.Shot.SideSpin,
			p.Surface,
			p.Conditions.ElevationFt,
		)
	}

	return w.Flush()
}

type comparison struct {
	label  string
	result shot.ShotResult
	took   time.Duration
}

func runCompare(cmd *cobra.Command, args []string) error {
	mode := "surfaces"
	if len(args) > 0 {
		mode = args[0]
	}

	cfg, e, err := setup(cmd)
	if err != nil {
		return err
	}

	var rows []comparison
	switch mode {
	case "surfaces":
		for _, name := range ground.Names() {
			se, err := e.WithSurface(name)
			if err != nil {
				return err
			}
			start := time.Now()
			rows = append(rows, comparison{name, se.Simulate(cfg.Shot), time.Since(start)})
		}
	case "wind":
		c := e.Conditions()
		if c.WindSpeedMph == 0 {
			c.WindSpeedMph = 10
		}
		for deg := 0.0; deg < 360; deg += 45 {
			c.WindDirDeg = deg
			start := time.Now()
			r := e.WithConditions(c).Simulate(cfg.Shot)
			rows = append(rows, comparison{fmt.Sprintf("%.0f mph @ %3.0f°", c.WindSpeedMph, deg), r, time.Since(start)})
		}
	case "integrators":
		for _, name := range integrators.Names() {
			ec := cfg.EngineConfig()
			ec.Integrator = name
			ie, err := engine.New(cfg.Conditions, cfg.Surface, ec)
			if err != nil {
				return err
			}
			start := time.Now()
			rows = append(rows, comparison{name, ie.Simulate(cfg.Shot), time.Since(start)})
		}
	}

	ld := cfg.Shot
	fmt.Printf("comparing %s: %.0f mph, %.1f° launch, %.0f/%.0f rpm\n\n", mode, ld.BallSpeed, ld.VLA, ld.BackSpin, ld.SideSpin)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCARRY\tTOTAL\tROLL\tOFFLINE\tAPEX\tBOUNCES\tTIME_MS")
	results := make([]shot.ShotResult, len(rows))
	for i, row := range rows {
		s := row.result.Summary
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%+.1f\t%.0f ft\t%d\t%.2f\n",
			row.label,
			s.CarryDistance,
			s.TotalDistance,
			s.RollDistance,
			s.OfflineDistance,
			s.MaxHeight,
			s.BounceCount,
			float64(row.took.Microseconds())/1000,
		)
		results[i] = row.result
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	stats := metrics.Collect(metrics.Standard(), results)
	fmt.Printf("mean carry %.1f yd, dispersion %.1f yd, fairway hit %.0f%%\n",
		stats["mean_carry"], stats["dispersion"], stats["fairway_hit"]*100)

	if overlay {
		fmt.Println()
		fmt.Println(viz.CompareProfiles(results, plotWidth, 12))
	}
	return nil
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, e, err := setup(cmd)
	if err != nil {
		return err
	}

	final, err := viz.RunTuner(e, cfg.Shot)
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderSummary(final, viz.ThemeRange))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	sc := config.LoadServer()
	if port != "" {
		sc.Port = port
	}
	if cmd.Flags().Changed("surface") {
		sc.Surface = surface
	}

	e, err := engine.New(shot.StandardConditions(), sc.Surface, engine.DefaultConfig())
	if err != nil {
		return err
	}
	log.Printf("[ENGINE] surface=%s integrator=%s dt=%.3f", e.Surface().Name, e.Config().Integrator, e.Config().Dt)

	return api.NewServer(sc, e).Run()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "shotsim.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := cfg.NewEngine(); err != nil {
		return fmt.Errorf("refusing to write invalid config: %w", err)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func printResults(labels []string, results []shot.ShotResult) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSURFACE\tCARRY\tTOTAL\tOFFLINE\tAPEX\tDESCENT")
	for i, r := range results {
		s := r.Summary
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%+.1f\t%.0f ft\t%.1f°\n",
			labels[i], r.Surface, s.CarryDistance, s.TotalDistance, s.OfflineDistance, s.MaxHeight, s.DescentAngle)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	_, e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	steps, err := automation.RunScenario(ctx, sc, e)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n\n", sc.Name, sc.Description)
	labels := make([]string, len(steps))
	results := make([]shot.ShotResult, len(steps))
	for i, st := range steps {
		labels[i], results[i] = st.Name, st.Result
	}
	return printResults(labels, results)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	sw := &automation.ParameterSweep{Param: args[0], Min: sweepMin, Max: sweepMax, NumSteps: sweepSteps, Shot: cfg.Shot}
	points, err := automation.RunSweep(ctx, sw, e)
	if err != nil {
		return err
	}

	labels := make([]string, len(points))
	results := make([]shot.ShotResult, len(points))
	carries := make([]float64, len(points))
	for i, p := range points {
		labels[i] = fmt.Sprintf("%s=%g", sw.Param, p.ParamValue)
		results[i] = p.Result
		carries[i] = p.Result.Summary.CarryDistance
	}
	if err := printResults(labels, results); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(carries,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("carry (yd) vs %s %g..%g", sw.Param, sw.Min, sw.Max)),
	))
	return nil
}

func runDispersion(cmd *cobra.Command, args []string) error {
	cfg, e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	mc := &automation.MonteCarloConfig{
		Shot: cfg.Shot,
		Spread: shot.LaunchData{
			BallSpeed: speedSpread,
			VLA:       vlaSpread,
			HLA:       hlaSpread,
			BackSpin:  spinSpread,
			SideSpin:  sideSpread,
		},
		NumTrials: trials,
		Seed:      mcSeed,
	}
	results, err := automation.RunMonteCarlo(ctx, mc, e)
	if err != nil {
		return err
	}

	stats := metrics.Collect(metrics.Standard(), results)
	fmt.Printf("%d shots on %s (seed %d)\n", len(results), e.Surface().Name, mcSeed)
	fmt.Printf("  mean carry   %.1f yd\n", stats["mean_carry"])
	fmt.Printf("  dispersion   %.1f yd\n", stats["dispersion"])
	fmt.Printf("  fairway hit  %.0f%%\n\n", stats["fairway_hit"]*100)

	// where each ball came to rest, downrange up the screen
	lateral := make([]float64, len(results))
	downrange := make([]float64, len(results))
	for i, r := range results {
		f := r.Final()
		lateral[i], downrange[i] = f.Z, f.X
	}
	c := viz.NewCanvas(plotWidth/2, 16)
	c.DrawPoints(lateral, downrange, true)
	fmt.Print(c.String())
	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	obj, goal, err := pickObjective(objective, target)
	if err != nil {
		return err
	}

	g := optim.NewGridSearch(
		[]string{"vla", "backspin"},
		[][]float64{optim.Linspace(4, 30, 27), optim.Linspace(1500, 10000, 35)},
	)
	best, err := g.Search(ctx, e, cfg.Shot, obj)
	if err != nil {
		return err
	}

	fmt.Printf("best launch for %s at %.0f mph: %.1f° with %.0f rpm\n\n",
		goal, cfg.Shot.BallSpeed, best.Params["vla"], best.Params["backspin"])
	fmt.Println(viz.RenderSummary(best.Result, viz.ThemeRange))
	return nil
}

func pickObjective(name string, target float64) (optim.Objective, string, error) {
	if target > 0 {
		return optim.TargetCarry(target), fmt.Sprintf("%.0f yd carry", target), nil
	}
	switch name {
	case "carry":
		return optim.LongestCarry, "longest carry", nil
	case "total":
		return optim.LongestTotal, "longest total", nil
	}
	return nil, "", fmt.Errorf("unknown objective %q (carry, total)", name)
}
