package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-closest/geo"
	"github.com/ttpr0/go-closest/output"
	. "github.com/ttpr0/go-closest/util"
	"golang.org/x/exp/slog"
)

const TMG_FILE = "./parser/testdata/siena.tmg"

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs([]string{"-mode", "serial", "-format", "geojson", "in.tmg", "-", "4"})
	require.NoError(t, err)
	assert.Equal(t, "in.tmg", args.Input)
	assert.Equal(t, NO_OUTPUT, args.Output)
	assert.Equal(t, 4, args.Workers)
	require.True(t, args.Mode.HasValue())
	assert.Equal(t, SERIAL, args.Mode.Value)
	require.True(t, args.Format.HasValue())
	assert.Equal(t, output.GEOJSON, args.Format.Value)
}

func TestParseArgsUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"in.tmg", "-"},
		{"in.tmg", "-", "4", "extra"},
		{"in.tmg", "-", "four"},
		{"in.tmg", "-", "2.5"},
		{"in.tmg", "-", "0"},
		{"-mode", "distributed", "in.tmg", "-", "4"},
		{"-unknown", "in.tmg", "-", "4"},
	}
	for _, c := range cases {
		_, err := ParseArgs(c)
		var usage *UsageError
		assert.True(t, errors.As(err, &usage), strings.Join(c, " "))
	}
}

func TestRunUsage(t *testing.T) {
	stdout := bytes.Buffer{}
	stderr := bytes.Buffer{}
	code := Run([]string{TMG_FILE, "-", "many"}, &stdout, &stderr)
	assert.Equal(t, EXIT_USAGE, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Usage")
}

func TestRunMissingInput(t *testing.T) {
	code := Run([]string{"./parser/testdata/missing.tmg", "-", "2"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, EXIT_LOAD, code)
}

func TestRunWritesResults(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "siena.nmp")
	summary_file := filepath.Join(dir, "summary.json")

	for _, mode := range []string{"serial", "parallel"} {
		stdout := bytes.Buffer{}
		code := Run([]string{"-mode", mode, "-summary", summary_file, TMG_FILE, out, "3"}, &stdout, &bytes.Buffer{})
		require.Equal(t, EXIT_OK, code)
		assert.True(t, strings.HasPrefix(stdout.String(), "Found results for 4 points in "))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 8)
		assert.Equal(t, "NY5@I-87 42.751 -73.801", lines[0])
		assert.Equal(t, "I-87@1 42.753 -73.806", lines[1])

		summary, err := ReadJSONFromFile[RunSummary](summary_file)
		require.NoError(t, err)
		assert.Equal(t, 4, summary.Points)
		assert.Equal(t, mode, summary.Mode.String())
		assert.Equal(t, "mi", summary.Unit)
		require.NotNil(t, summary.GlobalMinimum)
		assert.Equal(t, [2]string{"NY5@I-87", "I-87@1"}, summary.ClosestPair)
		assert.Len(t, summary.Fingerprint, 16)
	}
}

func TestRunOutputError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "siena.nmp")
	stdout := bytes.Buffer{}
	code := Run([]string{TMG_FILE, out, "2"}, &stdout, &bytes.Buffer{})
	assert.Equal(t, EXIT_OUTPUT, code)
	// the computation itself finished
	assert.Contains(t, stdout.String(), "Found results for 4 points")
}

func TestReadConfig(t *testing.T) {
	config, err := ReadConfig("./config.example.yaml")
	require.NoError(t, err)
	assert.Equal(t, geo.COSINES, config.Distance.Metric)
	assert.Equal(t, PARALLEL, config.Compute.Mode)
	assert.Equal(t, output.NMP, config.Output.Format)
	assert.Equal(t, "name", config.Input.OSMLabelTag)

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("distance:\n  metric: haversine\ncompute:\n  mode: serial\n"), 0644))
	config, err = ReadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, geo.HAVERSINE, config.Distance.Metric)
	assert.Equal(t, SERIAL, config.Compute.Mode)
	assert.Equal(t, "info", config.Logging.Level)

	require.NoError(t, os.WriteFile(file, []byte("compute:\n  mode: sometimes\n"), 0644))
	_, err = ReadConfig(file)
	assert.Error(t, err)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLogHandler(t *testing.T) {
	buf := bytes.Buffer{}
	logger := slog.New(NewLogHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})).With("run", "abc")
	logger.Debug("hidden")
	logger.WithGroup("engine").Info("finished", "workers", 4)

	line := buf.String()
	assert.NotContains(t, line, "hidden")
	assert.Contains(t, line, "INFO finished run=abc engine.workers=4\n")
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
}
