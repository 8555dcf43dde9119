package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "logs", cfg.Paths.LogsDir)
	assert.Equal(t, "sample_input.csv", cfg.Paths.InputCSV)
	assert.Equal(t, "processed_output.csv", cfg.Paths.OutputCSV)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PROC_LOGGING_LEVEL", "debug")
	t.Setenv("PROC_LOGGING_OUTPUT", "console")
	t.Setenv("PROC_PATHS_OUTPUT_CSV", "result.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "result.csv", cfg.Paths.OutputCSV)
}

func TestLoadedPathsReachResolution(t *testing.T) {
	t.Setenv("PROC_PATHS_DATA_DIR", "datasets")
	t.Setenv("PROC_PATHS_OUTPUT_CSV", "result.csv")

	cfg, err := Load()
	require.NoError(t, err)

	base := t.TempDir()
	paths := cfg.Paths.Resolve(base)

	assert.Equal(t, filepath.Join(base, "datasets"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "datasets", "result.csv"), paths.ProcessedOutputCSV)
	assert.Equal(t, filepath.Join(base, "datasets", "sample_input.csv"), paths.SampleInputCSV)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("PROC_LOGGING_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
logging:
  level: warn
  output: file
  file_path: custom/processor.log
paths:
  data_dir: datasets
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := loadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "file", cfg.Logging.Output)
	assert.Equal(t, "custom/processor.log", cfg.Logging.FilePath)
	assert.Equal(t, "datasets", cfg.Paths.DataDir)
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging: [not a map"), 0644))

	_, err := loadFromFile(configPath)
	assert.Error(t, err)
}

func TestMergeConfigs(t *testing.T) {
	tests := []struct {
		name     string
		fileCfg  Config
		envCfg   Config
		expected func(t *testing.T, merged Config)
	}{
		{
			name: "env wins over file when explicitly set",
			fileCfg: Config{
				Logging: LoggingConfig{Level: "warn"},
			},
			envCfg: func() Config {
				c := *Default()
				c.Logging.Level = "debug"
				return c
			}(),
			expected: func(t *testing.T, merged Config) {
				assert.Equal(t, "debug", merged.Logging.Level)
			},
		},
		{
			name: "file value kept when env is at default",
			fileCfg: Config{
				Logging: LoggingConfig{Level: "error"},
			},
			envCfg: *Default(),
			expected: func(t *testing.T, merged Config) {
				assert.Equal(t, "error", merged.Logging.Level)
			},
		},
		{
			name:    "sparse file falls back to defaults",
			fileCfg: Config{},
			envCfg:  *Default(),
			expected: func(t *testing.T, merged Config) {
				assert.Equal(t, Default().Logging.Format, merged.Logging.Format)
				assert.Equal(t, Default().Paths.InputCSV, merged.Paths.InputCSV)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := mergeConfigs(tt.fileCfg, tt.envCfg)
			tt.expected(t, merged)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.validate())
}
