package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ttpr0/go-closest/geo"
	"github.com/ttpr0/go-closest/output"
	"github.com/ttpr0/go-closest/parser"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

const DEFAULT_CONFIG = "./config.yaml"

// Reads the yaml config file. A missing default config file yields the default config.
func ReadConfig(file string) (Config, error) {
	config := DefaultConfig()
	if file == "" {
		if !FileExists(DEFAULT_CONFIG) {
			return config, nil
		}
		file = DEFAULT_CONFIG
	}
	slog.Debug("Reading config file " + file)
	data, err := os.ReadFile(file)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", file, err)
	}
	return config, nil
}

func DefaultConfig() Config {
	config := Config{}
	config.Logging.Level = "info"
	config.Logging.Format = "text"
	config.Distance.Metric = geo.COSINES
	config.Compute.Mode = PARALLEL
	config.Output.Format = output.NMP
	return config
}

type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Distance struct {
		Metric geo.Metric `yaml:"metric"`
	} `yaml:"distance"`
	Compute struct {
		Mode ComputeMode `yaml:"mode"`
	} `yaml:"compute"`
	Input  parser.LoadOptions `yaml:"input"`
	Output struct {
		Format output.Format `yaml:"format"`
		// Path of the run summary, no summary is written if empty.
		Summary string `yaml:"summary"`
	} `yaml:"output"`
}

//**********************************************************
// enums
//**********************************************************

type ComputeMode byte

const (
	PARALLEL ComputeMode = 0
	SERIAL   ComputeMode = 1
)

func (self ComputeMode) String() string {
	switch self {
	case PARALLEL:
		return "parallel"
	case SERIAL:
		return "serial"
	default:
		panic("unknown compute mode")
	}
}
func (self ComputeMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *ComputeMode) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	mode, err := ComputeModeFromString(typ)
	*self = mode
	return err
}
func (self ComputeMode) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *ComputeMode) UnmarshalYAML(value *yaml.Node) error {
	typ, err := ComputeModeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func ComputeModeFromString(s string) (ComputeMode, error) {
	switch s {
	case "parallel":
		return PARALLEL, nil
	case "serial":
		return SERIAL, nil
	default:
		return PARALLEL, errors.New("unknown compute mode " + s)
	}
}
