package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppLoadArenaCircleDefault(t *testing.T) {
	app := NewApp()
	app.Config = DefaultEngineConfig()

	require.NoError(t, app.LoadArena())
	require.NotNil(t, app.Calculator.Arena())
}

func TestAppLoadArenaRejectsUnknownKind(t *testing.T) {
	app := NewApp()
	app.Config = DefaultEngineConfig()
	app.Config.Arena.Kind = "triangle"

	require.Error(t, app.LoadArena())
}

func TestAppRunFindSafePositionsEndToEnd(t *testing.T) {
	app := NewApp()
	app.Config = DefaultEngineConfig()
	app.QueryCount = 3
	app.Seed = 42

	require.NoError(t, app.LoadArena())
	app.seedDemoZones()

	require.NoError(t, app.RunFindSafePositions())
}

func TestAppRunContourWritesFile(t *testing.T) {
	app := NewApp()
	app.Config = DefaultEngineConfig()
	app.OutputFile = filepath.Join(t.TempDir(), "contour.svg")

	require.NoError(t, app.LoadArena())
	app.seedDemoZones()

	require.NoError(t, app.RunContour())

	info, err := os.Stat(app.OutputFile)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestAppRunContourFailsWithNoActiveZones(t *testing.T) {
	app := NewApp()
	app.Config = DefaultEngineConfig()
	app.OutputFile = filepath.Join(t.TempDir(), "contour.svg")

	require.NoError(t, app.LoadArena())

	require.Error(t, app.RunContour())
}
