package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadAppConfigDefaults(t *testing.T) {
	writeConfig(t, `
network:
  roadsPath: roads.geojson
`)
	require.NoError(t, LoadAppConfig())

	assert.Equal(t, 8000, Config.Server.Port)
	assert.Equal(t, "roads.geojson", Config.Network.RoadsPath)
	assert.Equal(t, DefaultPricePerKM, Config.Costs.PricePerKM)
	assert.Equal(t, DefaultFixedConnectionCost, Config.Costs.FixedConnectionCost)
	assert.Equal(t, 1.0, Config.Costs.SurfaceMultipliers["paved"])
	assert.Equal(t, 1.3, Config.Costs.SurfaceMultipliers["gravel"])
	assert.Equal(t, 1.6, Config.Costs.SurfaceMultipliers["dirt"])
	assert.Equal(t, DefaultSurfaceMultiplier, Config.Costs.DefaultMultiplier)
	assert.Equal(t, 1000, Config.Search.Generations)
	assert.Equal(t, 100, Config.Search.PopulationSize)
	assert.Equal(t, 0.01, Config.Search.MutationRate)
	assert.Equal(t, 0, Config.Search.Workers)
}

func TestLoadAppConfigOverrides(t *testing.T) {
	writeConfig(t, `
server:
  port: 9090
network:
  roadsPath: data/tocantins.geojson
costs:
  pricePerKM: 2.5
  surfaceMultipliers:
    paved: 1.1
search:
  generations: 50
  workers: 4
  seed: 42
`)
	require.NoError(t, LoadAppConfig())

	assert.Equal(t, 9090, Config.Server.Port)
	assert.Equal(t, 2.5, Config.Costs.PricePerKM)
	assert.Equal(t, 1.1, Config.Costs.SurfaceMultipliers["paved"])
	// a user-supplied map replaces the default set wholesale
	_, ok := Config.Costs.SurfaceMultipliers["gravel"]
	assert.False(t, ok)
	assert.Equal(t, 50, Config.Search.Generations)
	assert.Equal(t, 4, Config.Search.Workers)
	assert.Equal(t, int64(42), Config.Search.Seed)
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.Error(t, LoadAppConfig())
}

func TestLoadAppConfigRejectsInvalid(t *testing.T) {
	// roadsPath is mandatory
	writeConfig(t, `
server:
  port: 8000
`)
	assert.Error(t, LoadAppConfig())
}
