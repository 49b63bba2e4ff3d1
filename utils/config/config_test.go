package config_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/config"
)

const sample = `
server:
  listen: ":9000"
  allowed_origins: ["https://calc.example.in"]
batch:
  input:
    file: incomes.txt
    files: [more.yaml, incomes.txt]
  output: out.csv
  format: csv
simulation:
  seed: 42
  count: 10
control:
  workers: 3
`

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := config.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Server.Listen)
	assert.Equal(t, []string{"https://calc.example.in"}, c.Server.AllowedOrigins)
	assert.Equal(t, []string{"incomes.txt", "more.yaml"}, c.Batch.Input.Paths())
	assert.Equal(t, "csv", c.Batch.Format)
	assert.Equal(t, uint64(42), c.Simulation.Seed)
	assert.Equal(t, 3, c.Control.Workers)
}

func TestLoadFromBase64(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte(sample))
	c, err := config.Load("", data)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Simulation.Count)
}

func TestLoadEmpty(t *testing.T) {
	c, err := config.Load("", "")
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, c)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)

	_, err = config.Load("", "%%%not-base64")
	assert.Error(t, err)

	// 严格模式：未知字段报错
	data := base64.StdEncoding.EncodeToString([]byte("control:\n  threads: 4\n"))
	_, err = config.Load("", data)
	assert.Error(t, err)
}

func TestNewRuntimeConfigDefaults(t *testing.T) {
	rc, err := config.NewRuntimeConfig(config.Config{})
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), rc.C.Workers)
	assert.Equal(t, config.DefaultListen, rc.All.Server.Listen)
	assert.Equal(t, config.FormatYAML, rc.All.Batch.Format)
	assert.Equal(t, 1000, rc.All.Simulation.Count)
	assert.InDelta(t, 900000, rc.All.Simulation.Median, 0)
	assert.InDelta(t, 0.8, rc.All.Simulation.Sigma, 0)
}

func TestNewRuntimeConfigInvalid(t *testing.T) {
	_, err := config.NewRuntimeConfig(config.Config{Batch: config.Batch{Format: "xml"}})
	assert.Error(t, err)

	_, err = config.NewRuntimeConfig(config.Config{Simulation: config.Simulation{Count: -1}})
	assert.Error(t, err)

	_, err = config.NewRuntimeConfig(config.Config{Simulation: config.Simulation{Sigma: -0.1}})
	assert.Error(t, err)
}
