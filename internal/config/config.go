package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Fetch   FetchConfig   `yaml:"fetch" envconfig:"FETCH"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/flightcli.log"`
}

// FetchConfig contains dataset acquisition configuration
type FetchConfig struct {
	BaseURL    string        `yaml:"base_url" envconfig:"BASE_URL" default:"https://www.kaggle.com/api/v1" validate:"url"`
	Dataset    string        `yaml:"dataset" envconfig:"DATASET" default:"dilwong/flightprices" validate:"required"`
	File       string        `yaml:"file" envconfig:"FILE" default:"itineraries.csv" validate:"required"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"15m" validate:"gt=0"`
	RatePerSec float64       `yaml:"rate_per_sec" envconfig:"RATE_PER_SEC" default:"2" validate:"gt=0"`
	Burst      int           `yaml:"burst" envconfig:"BURST" default:"1" validate:"gte=1"`
	SampleRows int           `yaml:"sample_rows" envconfig:"SAMPLE_ROWS" default:"120000" validate:"gte=1"`
	SampleSeed int64         `yaml:"sample_seed" envconfig:"SAMPLE_SEED" default:"42"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment variables win over file values.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("FLIGHT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file. The file config
// starts from the defaults so fields the file leaves unset stay at
// their default value, which lets mergeConfigs treat "still default"
// as "yield to the other source" even for fields where zero is legal
// (like the sample seed).
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence,
// env values still at their envconfig defaults yield to the file). The
// file config is default-prefilled by loadFromFile, so taking its value
// is always safe.
func mergeConfigs(fileCfg, envCfg Config) Config {
	defaults := defaultConfig()

	if envCfg.Logging.Level == defaults.Logging.Level {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if envCfg.Logging.Format == defaults.Logging.Format {
		envCfg.Logging.Format = fileCfg.Logging.Format
	}
	if envCfg.Logging.Output == defaults.Logging.Output {
		envCfg.Logging.Output = fileCfg.Logging.Output
	}
	if envCfg.Logging.FilePath == defaults.Logging.FilePath {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}

	if envCfg.Fetch.BaseURL == defaults.Fetch.BaseURL {
		envCfg.Fetch.BaseURL = fileCfg.Fetch.BaseURL
	}
	if envCfg.Fetch.Dataset == defaults.Fetch.Dataset {
		envCfg.Fetch.Dataset = fileCfg.Fetch.Dataset
	}
	if envCfg.Fetch.File == defaults.Fetch.File {
		envCfg.Fetch.File = fileCfg.Fetch.File
	}
	if envCfg.Fetch.Timeout == defaults.Fetch.Timeout {
		envCfg.Fetch.Timeout = fileCfg.Fetch.Timeout
	}
	if envCfg.Fetch.RatePerSec == defaults.Fetch.RatePerSec {
		envCfg.Fetch.RatePerSec = fileCfg.Fetch.RatePerSec
	}
	if envCfg.Fetch.Burst == defaults.Fetch.Burst {
		envCfg.Fetch.Burst = fileCfg.Fetch.Burst
	}
	if envCfg.Fetch.SampleRows == defaults.Fetch.SampleRows {
		envCfg.Fetch.SampleRows = fileCfg.Fetch.SampleRows
	}
	if envCfg.Fetch.SampleSeed == defaults.Fetch.SampleSeed {
		envCfg.Fetch.SampleSeed = fileCfg.Fetch.SampleSeed
	}

	return envCfg
}

// defaultConfig materializes the envconfig defaults without touching the
// process environment
func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/flightcli.log",
		},
		Fetch: FetchConfig{
			BaseURL:    DefaultDatasetBaseURL,
			Dataset:    DefaultDataset,
			File:       DefaultDatasetFile,
			Timeout:    DefaultFetchTimeout,
			RatePerSec: 2,
			Burst:      1,
			SampleRows: SampleRows,
			SampleSeed: SampleSeed,
		},
	}
}

// validate checks the configuration using struct-level validation tags
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// getConfigFilePath returns the location probed for a YAML config file
func getConfigFilePath() string {
	if p := os.Getenv("FLIGHT_CONFIG_FILE"); p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(wd, "config.yaml")
}
