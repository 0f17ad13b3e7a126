package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// AppOptions mirrors the CLI flags as plain fields, so App.ApplyOptions
// doesn't need to know about the flag package.
type AppOptions struct {
	ConfigFile  string
	QueryTarget string
	QueryCount  int
	OutputFile  string
	Seed        int64
	WithMQTT    bool
}

var (
	configFile  = flag.String("config", "", "Path to engine config YAML (defaults built in if omitted)")
	findSafe    = flag.Bool("find-safe", false, "Run a demo find-safe-positions query and exit")
	queryCount  = flag.Int("count", 5, "Number of safe positions to request")
	near        = flag.String("near", "", "Target point \"X,Z\" to search near")
	contourMode = flag.Bool("contour", false, "Build and render the contour of every active zone")
	outputFile  = flag.String("output", "aoeguard-contour.svg", "Output file for --contour mode")
	seed        = flag.Int64("seed", 1, "Deterministic RNG seed for Poisson-disk sampling")
	mqttReset   = flag.Bool("duty-reset", false, "Start the MQTT duty-reset listener and block")
)

func main() {
	flag.Parse()
	fmt.Printf("aoeguard version: %s\n", Version)

	app := NewApp()
	app.ApplyOptions(AppOptions{
		ConfigFile:  *configFile,
		QueryTarget: *near,
		QueryCount:  *queryCount,
		OutputFile:  *outputFile,
		Seed:        *seed,
		WithMQTT:    *mqttReset,
	})

	cfg := DefaultEngineConfig()
	if app.ConfigFile != "" {
		loaded, err := LoadEngineConfig(app.ConfigFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	app.Config = cfg

	if err := app.LoadArena(); err != nil {
		log.Fatalf("loading arena: %v", err)
	}
	app.seedDemoZones()

	switch {
	case *findSafe:
		if err := app.RunFindSafePositions(); err != nil {
			log.Fatalf("find-safe: %v", err)
		}
	case *contourMode:
		if err := app.RunContour(); err != nil {
			log.Fatalf("contour: %v", err)
		}
		fmt.Printf("wrote contour overlay to %s\n", app.OutputFile)
	case *mqttReset:
		if err := app.StartDutyReset(); err != nil {
			log.Fatalf("duty-reset: %v", err)
		}
		fmt.Println("duty-reset listener connected, blocking forever")
		select {}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func createOutputFile(path string) (*os.File, error) {
	return os.Create(path)
}
