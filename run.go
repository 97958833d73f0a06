package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/ttpr0/go-closest/batched/nearest"
	"github.com/ttpr0/go-closest/output"
	"github.com/ttpr0/go-closest/parser"
	"github.com/ttpr0/go-closest/structs"
	. "github.com/ttpr0/go-closest/util"
	"golang.org/x/exp/slog"
)

const (
	EXIT_OK      = 0
	EXIT_USAGE   = 1
	EXIT_LOAD    = 2
	EXIT_OUTPUT  = 3
	EXIT_COMPUTE = 4
)

// Marks the output argument for runs that should not write a file.
const NO_OUTPUT = "-"

const USAGE = "Usage: closest [-config file] [-mode serial|parallel] [-format nmp|geojson|msgpack] [-summary file] input output|- workers"

//**********************************************************
// arguments
//**********************************************************

type UsageError struct {
	Msg string
	Err error
}

func (self *UsageError) Error() string {
	if self.Err != nil {
		return self.Msg + ": " + self.Err.Error()
	}
	return self.Msg
}

func (self *UsageError) Unwrap() error {
	return self.Err
}

type Args struct {
	Input      string
	Output     string
	Workers    int
	ConfigFile string
	Mode       Optional[ComputeMode]
	Format     Optional[output.Format]
	Summary    string
}

func ParseArgs(args []string) (Args, error) {
	flags := flag.NewFlagSet("closest", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	config_file := flags.String("config", "", "yaml config file")
	mode := flags.String("mode", "", "serial or parallel")
	format := flags.String("format", "", "output format")
	summary := flags.String("summary", "", "write a json run summary to this file")
	if err := flags.Parse(args); err != nil {
		return Args{}, &UsageError{Msg: "invalid flags", Err: err}
	}
	if flags.NArg() != 3 {
		return Args{}, &UsageError{Msg: fmt.Sprintf("expected 3 arguments, got %d", flags.NArg())}
	}
	workers, err := strconv.Atoi(flags.Arg(2))
	if err != nil {
		return Args{}, &UsageError{Msg: "worker count must be an integer", Err: err}
	}
	if workers <= 0 {
		return Args{}, &UsageError{Msg: fmt.Sprintf("worker count must be positive, got %d", workers)}
	}

	parsed := Args{
		Input:      flags.Arg(0),
		Output:     flags.Arg(1),
		Workers:    workers,
		ConfigFile: *config_file,
		Mode:       None[ComputeMode](),
		Format:     None[output.Format](),
		Summary:    *summary,
	}
	if *mode != "" {
		m, err := ComputeModeFromString(*mode)
		if err != nil {
			return Args{}, &UsageError{Msg: "invalid mode", Err: err}
		}
		parsed.Mode = Some(m)
	}
	if *format != "" {
		f, err := output.FormatFromString(*format)
		if err != nil {
			return Args{}, &UsageError{Msg: "invalid format", Err: err}
		}
		parsed.Format = Some(f)
	}
	return parsed, nil
}

//**********************************************************
// run
//**********************************************************

type RunSummary struct {
	RunID       string      `json:"run_id"`
	Input       string      `json:"input"`
	Fingerprint string      `json:"fingerprint"`
	Points      int         `json:"points"`
	Mode        ComputeMode `json:"mode"`
	Workers     int         `json:"workers"`
	Metric      string      `json:"metric"`
	Unit        string      `json:"unit"`
	ElapsedMS   int64       `json:"elapsed_ms"`
	Processed   []int       `json:"processed"`

	// nil if there is no pair of points
	GlobalMinimum *float64  `json:"global_minimum"`
	ClosestPair   [2]string `json:"closest_pair"`
}

// Runs one computation and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(stderr, "failed to load .env file:", err)
	}

	parsed, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, USAGE)
		return EXIT_USAGE
	}
	config, err := ReadConfig(parsed.ConfigFile)
	if err != nil {
		fmt.Fprintln(stderr, &UsageError{Msg: "invalid config", Err: err})
		return EXIT_USAGE
	}
	if parsed.Mode.HasValue() {
		config.Compute.Mode = parsed.Mode.Value
	}
	if parsed.Format.HasValue() {
		config.Output.Format = parsed.Format.Value
	}
	if parsed.Summary != "" {
		config.Output.Summary = parsed.Summary
	}

	run_id := uuid.New().String()
	logger := NewLogger(stderr, config.Logging.Level, config.Logging.Format).With("run", run_id)
	slog.SetDefault(logger)

	points, err := parser.LoadPoints(parsed.Input, config.Input)
	if err != nil {
		slog.Error("failed to load points: " + err.Error())
		return EXIT_LOAD
	}

	metric := config.Distance.Metric
	engine := nearest.NewEngine(points, metric.Func())
	start := time.Now()
	switch config.Compute.Mode {
	case SERIAL:
		err = engine.ComputeSerial()
	default:
		err = engine.ComputeParallel(parsed.Workers)
	}
	elapsed := time.Since(start)
	if err != nil {
		slog.Error("computation failed: " + err.Error())
		return EXIT_COMPUTE
	}
	fmt.Fprintf(stdout, "Found results for %d points in %d ms\n", engine.NumPoints(), elapsed.Milliseconds())

	result := engine.Result()
	summary := _BuildSummary(run_id, parsed, config, points, engine, result, elapsed)
	if result.HasPair() {
		slog.Info("Global minimum "+FormatDistance(result.GlobalMinimum, metric.Unit()), "pair", summary.ClosestPair[0]+"/"+summary.ClosestPair[1])
	} else {
		slog.Info("No pair of points, global minimum undefined")
	}

	code := EXIT_OK
	if parsed.Output != NO_OUTPUT {
		if err := output.WriteFile(parsed.Output, config.Output.Format, points, result); err != nil {
			slog.Error(err.Error())
			code = EXIT_OUTPUT
		}
	}
	if config.Output.Summary != "" {
		if err := WriteJSONToFile(summary, config.Output.Summary); err != nil {
			slog.Error("failed to write summary: " + err.Error())
			code = EXIT_OUTPUT
		}
	}
	return code
}

func _BuildSummary(run_id string, args Args, config Config, points structs.PointSet, engine *nearest.Engine, result nearest.Result, elapsed time.Duration) RunSummary {
	stats := engine.Stats()
	summary := RunSummary{
		RunID:       run_id,
		Input:       args.Input,
		Fingerprint: fmt.Sprintf("%016x", points.Fingerprint()),
		Points:      points.Length(),
		Mode:        config.Compute.Mode,
		Workers:     stats.Workers,
		Metric:      config.Distance.Metric.String(),
		Unit:        config.Distance.Metric.Unit(),
		ElapsedMS:   elapsed.Milliseconds(),
		Processed:   stats.Processed,
	}
	if result.HasPair() {
		minimum := result.GlobalMinimum
		summary.GlobalMinimum = &minimum
		summary.ClosestPair = [2]string{points.Get(result.Pair[0]).Label, points.Get(result.Pair[1]).Label}
	}
	return summary
}
