package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/catalog"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/config"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/control"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/export"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/gemini"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/logger"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/server"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tui"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/viz"
)

var (
	configFile string
	logFile    string
	preset     string
	// Shape parameters
	radius    float64
	semiMajor float64
	semiMinor float64
	focal     float64
	// Output
	output    string
	format    string
	colored   bool
	svgOut    string
	fontPath  string
	fontSize  float64
	asJSON    bool
	topicFlag string
	addr      string
	// Canvas
	canvasW int
	canvasH int
	scale   float64
	// Sweep
	bMin  float64
	bMax  float64
	steps int
)

// main registers the commands and launches the terminal shell when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "conics",
		Short:        "conic sections lab and tutor",
		SilenceUsage: true,
		RunE:         runShell,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&topicFlag, "topic", "", "starting topic")

	plotCmd := &cobra.Command{
		Use:   "plot [topic]",
		Short: "draw a conic as braille in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotCurve,
	}
	addShapeFlags(plotCmd)
	plotCmd.Flags().IntVar(&canvasW, "width", 0, "canvas width in cells (default from config)")
	plotCmd.Flags().IntVar(&canvasH, "height", 0, "canvas height in cells (default from config)")
	plotCmd.Flags().Float64Var(&scale, "scale", 0, "dots per unit (default from config)")
	plotCmd.Flags().BoolVar(&colored, "color", false, "colorize with the configured theme")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the braille raster as SVG")

	svgCmd := &cobra.Command{
		Use:   "svg [topic]",
		Short: "render a conic to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderSVG,
	}
	addShapeFlags(svgCmd)
	svgCmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")

	pngCmd := &cobra.Command{
		Use:   "png [topic]",
		Short: "render a conic to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderPNG,
	}
	addShapeFlags(pngCmd)
	pngCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <topic>.png)")
	pngCmd.Flags().StringVar(&fontPath, "font", "", "TrueType font for labels")
	pngCmd.Flags().Float64Var(&fontSize, "font-size", 14, "label font size")

	pointsCmd := &cobra.Command{
		Use:   "points [topic]",
		Short: "export sampled points",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportPoints,
	}
	addShapeFlags(pointsCmd)
	pointsCmd.Flags().StringVarP(&output, "output", "o", "-", "output file (- for stdout)")
	pointsCmd.Flags().StringVar(&format, "format", "csv", "csv or json")

	sweepCmd := &cobra.Command{
		Use:   "sweep [ellipse|hyperbola]",
		Short: "plot eccentricity against the semi-minor axis",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepEccentricity,
	}
	sweepCmd.Flags().Float64VarP(&semiMajor, "semi-major", "a", conic.DefaultSemiMajor, "fixed semi-major axis")
	sweepCmd.Flags().Float64Var(&bMin, "bmin", conic.Ranges[conic.ParamSemiMinor].Min, "first b")
	sweepCmd.Flags().Float64Var(&bMax, "bmax", conic.Ranges[conic.ParamSemiMinor].Max, "last b")
	sweepCmd.Flags().IntVar(&steps, "steps", 60, "samples")

	catalogCmd := &cobra.Command{
		Use:   "catalog [topic]",
		Short: "show lesson modules",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showCatalog,
	}
	catalogCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets [topic]",
		Short: "list available presets for a topic",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	askCmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "ask the tutor one question",
		Args:  cobra.MinimumNArgs(1),
		RunE:  askTutor,
	}
	askCmd.Flags().StringVar(&topicFlag, "topic", "", "topic the question is about")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the catalog, curves and tutor over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "write the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVarP(&output, "output", "o", "conics.yaml", "output file")

	rootCmd.AddCommand(plotCmd, svgCmd, pngCmd, pointsCmd, sweepCmd, catalogCmd, presetsCmd, askCmd, serveCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use preset values")
	cmd.Flags().Float64VarP(&radius, "radius", "r", conic.DefaultRadius, "circle radius")
	cmd.Flags().Float64VarP(&semiMajor, "semi-major", "a", conic.DefaultSemiMajor, "semi-major axis")
	cmd.Flags().Float64VarP(&semiMinor, "semi-minor", "b", conic.DefaultSemiMinor, "semi-minor axis")
	cmd.Flags().Float64VarP(&focal, "focal", "p", conic.DefaultFocalParameter, "parabola focal parameter")
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if logFile != "" {
		cfg.Log.File = logFile
	}
	return cfg, nil
}

// newLogger keeps a full-screen shell quiet unless a log file is set.
func newLogger(cfg *config.Config, fullScreen bool) (*logger.Logger, error) {
	if fullScreen && cfg.Log.File == "" {
		return logger.Nop(), nil
	}
	return logger.New(cfg.Log.Mode, cfg.Log.File)
}

func resolveTopic(cfg *config.Config, args []string) (conic.Topic, error) {
	if len(args) > 0 {
		return conic.ParseTopic(args[0])
	}
	if topicFlag != "" {
		return conic.ParseTopic(topicFlag)
	}
	return cfg.Topic, nil
}

// shapeParams applies --preset and then any explicitly set shape flags.
func shapeParams(cmd *cobra.Command, cfg *config.Config, topic conic.Topic) (conic.Params, error) {
	params := cfg.Params
	if preset != "" {
		p := cfg.GetPreset(topic.String(), preset)
		if p == nil {
			return params, fmt.Errorf("unknown preset: %s (available: %v)", preset, cfg.ListPresets(topic.String()))
		}
		var err error
		if params, err = p.Apply(topic, params); err != nil {
			return params, err
		}
	}
	flags := map[string]conic.ParamName{
		"radius":     conic.ParamRadius,
		"semi-major": conic.ParamSemiMajor,
		"semi-minor": conic.ParamSemiMinor,
		"focal":      conic.ParamFocalParameter,
	}
	values := map[conic.ParamName]float64{
		conic.ParamRadius:         radius,
		conic.ParamSemiMajor:      semiMajor,
		conic.ParamSemiMinor:      semiMinor,
		conic.ParamFocalParameter: focal,
	}
	for flag, name := range flags {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		r := conic.Ranges[name]
		if !r.Contains(values[name]) {
			return params, fmt.Errorf("%w: %s=%g not in [%g, %g]", conic.ErrParameterBounds, name, values[name], r.Min, r.Max)
		}
		params, _ = params.With(name, values[name])
	}
	return params, nil
}

// labFromFlags builds a controller on the 400×400 lab board.
func labFromFlags(cmd *cobra.Command, args []string) (*control.Controller, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	topic, err := resolveTopic(cfg, args)
	if err != nil {
		return nil, err
	}
	params, err := shapeParams(cmd, cfg, topic)
	if err != nil {
		return nil, err
	}
	return control.NewLab(topic, params)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if topicFlag != "" {
		if cfg.Topic, err = conic.ParseTopic(topicFlag); err != nil {
			return err
		}
	}
	log, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := newSession(cfg, log, cfg.Topic)
	return tui.Run(ctx, cfg, session, log)
}

func newSession(cfg *config.Config, log *logger.Logger, topic conic.Topic) *tutor.Session {
	return tutor.NewSession(newGenerator(cfg, log),
		tutor.WithTimeout(cfg.Tutor.Timeout),
		tutor.WithLogger(log),
		tutor.WithTopic(topic),
	)
}

func newGenerator(cfg *config.Config, log *logger.Logger) *gemini.Client {
	client := gemini.NewClient(log, gemini.Options{
		BaseURL: cfg.Tutor.BaseURL,
		Model:   cfg.Tutor.Model,
		Timeout: cfg.Tutor.Timeout,
	})
	log.Debug("tutor client ready", "model", client.Model(), "timeout", cfg.Tutor.Timeout.String())
	return client
}

func plotCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	topic, err := resolveTopic(cfg, args)
	if err != nil {
		return err
	}
	params, err := shapeParams(cmd, cfg, topic)
	if err != nil {
		return err
	}

	w, h, s := cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Scale
	if canvasW > 0 {
		w = canvasW
	}
	if canvasH > 0 {
		h = canvasH
	}
	if scale > 0 {
		s = scale
	}
	canvas := viz.NewCanvas(w, h)
	ctl, err := control.New(topic, params, canvas.Mapper(s), float64(w*2), float64(h*4))
	if err != nil {
		return err
	}
	canvas.DrawScene(ctl.Scene())

	entry := catalog.MustGet(topic)
	fmt.Println(entry.Title)
	if entry.Formula != "" {
		fmt.Println(entry.Formula)
	}
	if colored {
		fmt.Println(canvas.Render(viz.GetTheme(cfg.Theme)))
	} else {
		fmt.Print(canvas.String())
	}
	if label := ctl.EccentricityLabel(); label != "" {
		fmt.Println(label)
	}

	if svgOut != "" {
		return export.WriteFile(svgOut, func(w io.Writer) error {
			_, err := io.WriteString(w, export.CanvasToSVG(canvas, 4))
			return err
		})
	}
	return nil
}

func renderSVG(cmd *cobra.Command, args []string) error {
	ctl, err := labFromFlags(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteFile(output, func(w io.Writer) error {
		_, err := io.WriteString(w, export.SceneToSVG(ctl.Scene()))
		return err
	})
}

func renderPNG(cmd *cobra.Command, args []string) error {
	ctl, err := labFromFlags(cmd, args)
	if err != nil {
		return err
	}
	var opts export.PNGOptions
	if fontPath != "" {
		face, err := export.LoadFontFace(fontPath, fontSize)
		if err != nil {
			return err
		}
		opts.Face = face
	}
	path := output
	if path == "" {
		path = ctl.Topic().String() + ".png"
	}
	if err := export.WriteFile(path, func(w io.Writer) error {
		return export.WritePNG(w, ctl.Scene(), opts)
	}); err != nil {
		return err
	}
	if path != "-" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}
	return nil
}

func exportPoints(cmd *cobra.Command, args []string) error {
	ctl, err := labFromFlags(cmd, args)
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "csv":
		return export.WriteFile(output, func(w io.Writer) error {
			return export.WriteCSV(w, ctl.Curve())
		})
	case "json":
		return export.WriteFile(output, func(w io.Writer) error {
			return export.WriteJSON(w, ctl.Curve(), ctl.Params())
		})
	}
	return fmt.Errorf("unknown format: %s (csv or json)", format)
}

func sweepEccentricity(cmd *cobra.Command, args []string) error {
	topic, err := conic.ParseTopic(args[0])
	if err != nil {
		return err
	}
	if topic != conic.TopicEllipse && topic != conic.TopicHyperbola {
		return fmt.Errorf("sweep needs ellipse or hyperbola, got %s", topic)
	}
	if bMin <= 0 || bMax <= bMin {
		return fmt.Errorf("invalid sweep range [%g, %g]", bMin, bMax)
	}

	pts := conic.Sweep(topic, semiMajor, bMin, bMax, steps)
	graph := asciigraph.Plot(conic.Eccentricities(pts),
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s: e vs b in [%.1f, %.1f], a = %.1f", topic, bMin, bMax, semiMajor)),
	)
	fmt.Println(graph)

	first, last := pts[0], pts[len(pts)-1]
	fmt.Printf("\nb = %.2f  e = %.3f\nb = %.2f  e = %.3f\n", first.Param, first.Eccentricity, last.Param, last.Eccentricity)
	return nil
}

func showCatalog(cmd *cobra.Command, args []string) error {
	entries := catalog.All()
	if len(args) > 0 {
		topic, err := conic.ParseTopic(args[0])
		if err != nil {
			return err
		}
		entries = []catalog.Entry{catalog.MustGet(topic)}
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\t%s\n", e.Icon.Glyph(), e.Title, e.Formula)
		for _, m := range e.Modules {
			duration := m.Duration
			if duration == "" {
				duration = "-"
			}
			fmt.Fprintf(w, "  %d\t[%s]\t%s\t%s\n", m.ID, m.Level, m.Title, duration)
			fmt.Fprintf(w, "  \t\t%s\t\n", strings.Join(m.KeyPoints, ", "))
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	presets := cfg.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for topic: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range presets {
		fmt.Fprintf(w, "  %s\t%s\n", name, cfg.GetPreset(args[0], name).Description)
	}
	return w.Flush()
}

func askTutor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	topic, err := resolveTopic(cfg, nil)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := newSession(cfg, log, topic)
	msg, ok := session.Submit(ctx, strings.Join(args, " "))
	if !ok {
		return errors.New("question is empty")
	}
	fmt.Println(msg.Text)
	if msg.IsError {
		return errors.New("tutor request failed")
	}
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	log, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := server.NewSessionStore(newGenerator(cfg, log), 0,
		tutor.WithTimeout(cfg.Tutor.Timeout),
		tutor.WithLogger(log),
	)
	router := server.NewRouter(server.RouterConfig{
		Handler:      server.NewHandler(store, cfg.Params, log),
		AllowOrigins: cfg.Server.AllowOrigins,
		Logger:       log,
	})
	return server.Serve(ctx, cfg.Server.Addr, router, log)
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Save(output, cfg); err != nil {
		return err
	}
	fmt.Printf("config written to %s\n", output)
	return nil
}
