package main

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestRun_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out", "run.json")
	htmlPath := filepath.Join(dir, "out", "run.html")
	csvPath := filepath.Join(dir, "run.csv")

	require.NoError(t, execute(t, "run", "--pretty=false", "--dry",
		"--json", jsonPath, "--html", htmlPath, "--csv", csvPath))

	b, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var got struct {
		Dry      bool              `json:"dry"`
		Sections []json.RawMessage `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, got.Dry)
	assert.Len(t, got.Sections, 5)

	assert.FileExists(t, htmlPath)
	assert.FileExists(t, csvPath)
}

func TestRun_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "point.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dry: true\nwork_basis: exit-energy\n"), 0o644))
	jsonPath := filepath.Join(dir, "run.json")

	// --dry=false set explicitly wins over the file
	require.NoError(t, execute(t, "run", "-c", cfgPath, "--dry=false", "--pretty=false", "--json", jsonPath))

	b, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var got struct {
		Dry       bool   `json:"dry"`
		WorkBasis string `json:"work_basis"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.False(t, got.Dry)
	assert.Equal(t, "exit-energy", got.WorkBasis)
}

func TestRun_StaticFlag(t *testing.T) {
	thrust := func(args ...string) float64 {
		t.Helper()
		jsonPath := filepath.Join(t.TempDir(), "run.json")
		require.NoError(t, execute(t, append([]string{"run", "--pretty=false", "--json", jsonPath}, args...)...))

		b, err := os.ReadFile(jsonPath)
		require.NoError(t, err)
		var got struct {
			Performance []struct {
				Label string  `json:"label"`
				Value float64 `json:"value"`
			} `json:"performance"`
		}
		require.NoError(t, json.Unmarshal(b, &got))
		require.NotEmpty(t, got.Performance)
		require.Equal(t, "Net thrust", got.Performance[0].Label)
		return got.Performance[0].Value
	}

	static := thrust()
	flight := thrust("--static=false")
	assert.InDelta(t, 115*237, static-flight, 1e-6)
}

func TestSweep_CSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "sweep.csv")
	require.NoError(t, execute(t, "sweep", "--param", "compressor.pressure_ratio",
		"--from", "10", "--to", "30", "--steps", "3", "--csv", csvPath))

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "compressor.pressure_ratio", recs[0][1])
	assert.Equal(t, "20", recs[2][1])
}

func TestErrors(t *testing.T) {
	assert.Error(t, execute(t, "sweep", "--param", "nozzle.color"))
	assert.Error(t, execute(t, "sweep", "--steps", "0"))
	assert.Error(t, execute(t, "run", "--work-basis", "polytropic"))
	assert.Error(t, execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.json")))
}
