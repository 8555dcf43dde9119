package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/processor.log" validate:"required"`
}

// PathsConfig contains file system path configuration. All entries are
// relative to the resolved base directory unless absolute.
type PathsConfig struct {
	BaseDir   string `yaml:"base_dir" envconfig:"BASE_DIR"`
	DataDir   string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
	InputCSV  string `yaml:"input_csv" envconfig:"INPUT_CSV" default:"sample_input.csv" validate:"required"`
	OutputCSV string `yaml:"output_csv" envconfig:"OUTPUT_CSV" default:"processed_output.csv" validate:"required"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("PROC", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if it exists; file values fill fields the
	// environment left at their defaults
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when Load fails.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: filepath.Join("logs", "processor.log"),
		},
		Paths: PathsConfig{
			DataDir:   "data",
			LogsDir:   "logs",
			InputCSV:  "sample_input.csv",
			OutputCSV: "processed_output.csv",
		},
	}
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays the environment-derived config on the file config.
// A field from the environment wins whenever it differs from the built-in
// default, otherwise the file value is kept.
func mergeConfigs(fileCfg, envCfg Config) Config {
	def := Default()
	merged := fileCfg

	if envCfg.Logging.Level != def.Logging.Level {
		merged.Logging.Level = envCfg.Logging.Level
	}
	if envCfg.Logging.Format != def.Logging.Format {
		merged.Logging.Format = envCfg.Logging.Format
	}
	if envCfg.Logging.Output != def.Logging.Output {
		merged.Logging.Output = envCfg.Logging.Output
	}
	if envCfg.Logging.FilePath != def.Logging.FilePath {
		merged.Logging.FilePath = envCfg.Logging.FilePath
	}
	if envCfg.Paths.BaseDir != "" {
		merged.Paths.BaseDir = envCfg.Paths.BaseDir
	}
	if envCfg.Paths.DataDir != def.Paths.DataDir {
		merged.Paths.DataDir = envCfg.Paths.DataDir
	}
	if envCfg.Paths.LogsDir != def.Paths.LogsDir {
		merged.Paths.LogsDir = envCfg.Paths.LogsDir
	}
	if envCfg.Paths.InputCSV != def.Paths.InputCSV {
		merged.Paths.InputCSV = envCfg.Paths.InputCSV
	}
	if envCfg.Paths.OutputCSV != def.Paths.OutputCSV {
		merged.Paths.OutputCSV = envCfg.Paths.OutputCSV
	}

	// Empty file values fall back to defaults so a sparse YAML file stays valid
	if merged.Logging.Level == "" {
		merged.Logging.Level = def.Logging.Level
	}
	if merged.Logging.Format == "" {
		merged.Logging.Format = def.Logging.Format
	}
	if merged.Logging.Output == "" {
		merged.Logging.Output = def.Logging.Output
	}
	if merged.Logging.FilePath == "" {
		merged.Logging.FilePath = def.Logging.FilePath
	}
	if merged.Paths.DataDir == "" {
		merged.Paths.DataDir = def.Paths.DataDir
	}
	if merged.Paths.LogsDir == "" {
		merged.Paths.LogsDir = def.Paths.LogsDir
	}
	if merged.Paths.InputCSV == "" {
		merged.Paths.InputCSV = def.Paths.InputCSV
	}
	if merged.Paths.OutputCSV == "" {
		merged.Paths.OutputCSV = def.Paths.OutputCSV
	}

	return merged
}

// validate checks the configuration against the struct tags
func (c *Config) validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// getConfigFilePath returns the expected config file location: config.yaml
// next to the executable, falling back to the working directory.
func getConfigFilePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "config.yaml")
}
