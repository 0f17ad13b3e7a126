package main

import (
	"fmt"
	"math/rand"

	"github.com/kwv/aoeguard/contour"
	"github.com/kwv/aoeguard/dutyreset"
	"github.com/kwv/aoeguard/overlay"
	"github.com/kwv/aoeguard/safezone"
)

// App wires a configured SafeZoneCalculator to the query engine, contour
// builder, and overlay renderer for the demo CLI.
type App struct {
	Config     *EngineConfig
	Calculator *safezone.SafeZoneCalculator
	Registry   *safezone.Registry
	Listener   *dutyreset.Listener

	// CLI flags (effectively dependencies)
	ConfigFile  string
	QueryTarget string
	QueryCount  int
	OutputFile  string
	Seed        int64
	WithMQTT    bool
}

// NewApp creates an App with an empty calculator and registry.
func NewApp() *App {
	return &App{
		Calculator: safezone.NewSafeZoneCalculator(),
		Registry:   safezone.NewRegistry(),
	}
}

// ApplyOptions applies CLI options to the App instance.
func (a *App) ApplyOptions(opts AppOptions) {
	a.ConfigFile = opts.ConfigFile
	a.QueryTarget = opts.QueryTarget
	a.QueryCount = opts.QueryCount
	a.OutputFile = opts.OutputFile
	a.Seed = opts.Seed
	a.WithMQTT = opts.WithMQTT
}

// LoadArena builds the configured ArenaBounds and registers it on the
// calculator.
func (a *App) LoadArena() error {
	cfg := a.Config
	center := safezone.Vec2{X: cfg.Arena.CenterX, Z: cfg.Arena.CenterZ}

	switch cfg.Arena.Kind {
	case "", "circle":
		arena := safezone.NewCircleArena(center, cfg.Arena.Radius)
		a.Calculator.SetArena(&arena)
	case "rect":
		dir := safezone.Vec2{X: cfg.Arena.DirX, Z: cfg.Arena.DirZ}
		arena := safezone.NewRectArena(center, dir, cfg.Arena.HalfWidth, cfg.Arena.HalfLen)
		a.Calculator.SetArena(&arena)
	default:
		return fmt.Errorf("unsupported arena kind %q", cfg.Arena.Kind)
	}
	return nil
}

// RunFindSafePositions runs a demo SafePositionQuery against the
// configured calculator and prints the result.
func (a *App) RunFindSafePositions() error {
	rng := rand.New(rand.NewSource(a.Seed))

	builder := a.Calculator.FindSafePositions(a.QueryCount, nil, 0, safezone.Timestamp(0)).
		MinDistanceBetween(a.Config.Query.DefaultMinDistance).
		WithRNG(rng)

	if a.QueryTarget != "" {
		var tx, tz float64
		if _, err := fmt.Sscanf(a.QueryTarget, "%f,%f", &tx, &tz); err != nil {
			return fmt.Errorf("parsing --near flag %q: %w", a.QueryTarget, err)
		}
		builder = builder.NearTarget(safezone.Vec2{X: tx, Z: tz}, 0)
	}

	results := builder.Execute()
	fmt.Printf("found %d safe position(s):\n", len(results))
	for i, p := range results {
		fmt.Printf("  %d: (%.2f, %.2f)\n", i, p.X, p.Z)
	}
	return nil
}

// RunContour builds the iso-contour of every active zone's shape at t=0
// and writes an SVG overlay to a.OutputFile.
func (a *App) RunContour() error {
	active := a.Calculator.ActiveZones(safezone.Timestamp(0))
	if len(active) == 0 {
		return fmt.Errorf("no active zones to contour")
	}

	danger := contour.Color{R: 0.85, G: 0.1, B: 0.1, A: 1}
	builder := contour.NewBuilder(0, danger, 2)

	renderCenter := safezone.Vec2{}
	if arena := a.Calculator.Arena(); arena != nil {
		renderCenter = arena.CenterPoint()
	}

	var segments []contour.Segment
	for _, zone := range active {
		segments = append(segments, builder.Build(zone.Shape, renderCenter, a.Config.Contour.DefaultRadius, a.Config.Contour.DefaultStep)...)
	}

	diameter := a.Config.Contour.DefaultRadius * 2
	r := overlay.NewRenderer(diameter, diameter, contour.Color{R: 1, G: 1, B: 1, A: 1})
	r.AddSegments(translateSegments(segments, renderCenter, diameter/2))

	f, err := createOutputFile(a.OutputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return r.RenderToSVG(f)
}

// translateSegments shifts every segment so renderCenter maps to the
// overlay canvas center (half), since contour.Build works in arena-space
// coordinates but the canvas origin is its top-left corner.
func translateSegments(segments []contour.Segment, renderCenter safezone.Vec2, half float64) []contour.Segment {
	out := make([]contour.Segment, len(segments))
	for i, s := range segments {
		out[i] = s
		out[i].A = safezone.Vec2{X: s.A.X - renderCenter.X + half, Z: s.A.Z - renderCenter.Z + half}
		out[i].B = safezone.Vec2{X: s.B.X - renderCenter.X + half, Z: s.B.Z - renderCenter.Z + half}
	}
	return out
}

// StartDutyReset connects an MQTT duty-reset listener. It returns an error
// if the duty-reset broker or topic is not configured.
func (a *App) StartDutyReset() error {
	if a.Config.DutyReset.Broker == "" || a.Config.DutyReset.Topic == "" {
		return fmt.Errorf("duty_reset.broker and duty_reset.topic must both be set")
	}
	listener, err := dutyreset.NewListener(dutyreset.Options{
		Broker: a.Config.DutyReset.Broker,
		Topic:  a.Config.DutyReset.Topic,
	}, a.Calculator)
	if err != nil {
		return err
	}
	if err := listener.Connect(); err != nil {
		return err
	}
	a.Listener = listener
	return nil
}

// seedDemoZones populates the calculator with a small fixed, illustrative
// set of forbidden zones; main calls it on every run.
func (a *App) seedDemoZones() {
	now := safezone.Timestamp(0)
	a.Calculator.AddZones([]safezone.ForbiddenZone{
		{Shape: safezone.NewCircle(safezone.Vec2{X: 10, Z: 0}, 8), Activation: now},
		{Shape: safezone.NewDonut(safezone.Vec2{X: -15, Z: 5}, 4, 10), Activation: now},
		{Shape: safezone.NewCone(safezone.Vec2{X: 0, Z: -20}, 18, safezone.Vec2{X: 0, Z: 1}, 0.4), Activation: now + safezone.Timestamp(2)},
	})
}
