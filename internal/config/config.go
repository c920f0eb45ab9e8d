package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Config holds the simulator configuration
type Config struct {
	// Simulation
	FrameSize    int `json:"frame_size"`    // Frames available to every algorithm
	IntervalSize int `json:"interval_size"` // References between fault-rate samples

	// Files
	InputFile  string `json:"input_file"`  // Trace, plain or .sz/.lz4 compressed
	OutputFile string `json:"output_file"` // Text report, appended to
	ProduceCSV bool   `json:"produce_csv"` // Also append a CSV report
	CSVFile    string `json:"csv_file"`    // CSV report path

	// Logging
	LogLevel string `json:"log_level"` // DEBUG, INFO, WARN or ERROR
	LogFile  string `json:"log_file"`  // Optional log file next to stdout
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		FrameSize:    0, // must be supplied
		IntervalSize: util.DefaultIntervalSize,
		ProduceCSV:   false,
		CSVFile:      "result.csv",
		LogLevel:     "INFO",
	}
}

// LoadConfigFromFile loads configuration from a JSON file on top of the defaults
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadConfigFromEnv loads configuration from environment variables
// Falls back to default values if environment variables are not set
func LoadConfigFromEnv() *Config {
	config := DefaultConfig()
	config.ApplyEnv()
	return config
}

// ApplyEnv overrides fields with PAGESIM_* environment variables that are set.
// Unparsable numbers are ignored.
func (c *Config) ApplyEnv() {
	if val := os.Getenv("PAGESIM_FRAME_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			c.FrameSize = size
		}
	}

	if val := os.Getenv("PAGESIM_INTERVAL_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			c.IntervalSize = size
		}
	}

	if val := os.Getenv("PAGESIM_INPUT_FILE"); val != "" {
		c.InputFile = val
	}

	if val := os.Getenv("PAGESIM_OUTPUT_FILE"); val != "" {
		c.OutputFile = val
	}

	if val := os.Getenv("PAGESIM_PRODUCE_CSV"); val != "" {
		c.ProduceCSV = val == "true" || val == "1"
	}

	if val := os.Getenv("PAGESIM_CSV_FILE"); val != "" {
		c.CSVFile = val
	}

	if val := os.Getenv("PAGESIM_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv("PAGESIM_LOG_FILE"); val != "" {
		c.LogFile = val
	}
}

// SaveToFile saves the configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}

	if c.InputFile == "" {
		return util.NewSimulationError(util.ErrTypeConfiguration, "input file cannot be empty", nil)
	}

	if c.OutputFile == "" {
		return util.NewSimulationError(util.ErrTypeConfiguration, "output file cannot be empty", nil)
	}

	if c.ProduceCSV && c.CSVFile == "" {
		return util.NewSimulationError(util.ErrTypeConfiguration, "csv file cannot be empty when csv output is enabled", nil)
	}

	validLogLevels := map[string]bool{
		"DEBUG": true,
		"INFO":  true,
		"WARN":  true,
		"ERROR": true,
	}

	if !validLogLevels[strings.ToUpper(c.LogLevel)] {
		return util.NewSimulationError(util.ErrTypeConfiguration,
			fmt.Sprintf("invalid log level: %s (must be DEBUG, INFO, WARN or ERROR)", c.LogLevel), nil)
	}

	return nil
}

// Options extracts the engine options
func (c *Config) Options() util.Options {
	return util.Options{
		FrameCapacity: c.FrameSize,
		IntervalSize:  c.IntervalSize,
	}
}
