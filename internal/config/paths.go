package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the application.
type Paths struct {
	BaseDir string
	DataDir string
	LogsDir string

	// Well-known files
	SampleInputCSV     string
	ProcessedOutputCSV string
	LogFile            string
}

// GetPaths returns the default application paths relative to the executable
// location. Paths are always relative to the executable directory, never the
// current working directory, so the binary behaves the same wherever it is
// invoked.
func GetPaths() (*Paths, error) {
	exeDir, err := ExecutableDir()
	if err != nil {
		return nil, err
	}
	return PathsFrom(exeDir), nil
}

// ExecutableDir returns the directory containing the running executable,
// with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return filepath.Dir(exe), nil
}

// PathsFrom resolves the default path set under an explicit base directory.
// Tests and the -base flag use this instead of the executable location.
func PathsFrom(baseDir string) *Paths {
	return Default().Paths.Resolve(baseDir)
}

// Resolve builds the full path set from the configured entries. Relative
// directories are joined to baseDir, relative file names to the data
// directory; absolute entries are kept as-is. A BaseDir set in the config
// overrides the baseDir argument.
//
// Directory structure with the default configuration:
//
//	base/
//	  ├── data/
//	  │   ├── sample_input.csv      (input, generated on first run if absent)
//	  │   └── processed_output.csv  (transformed output)
//	  └── logs/
//	      └── processor.log
func (pc PathsConfig) Resolve(baseDir string) *Paths {
	if pc.BaseDir != "" {
		baseDir = pc.BaseDir
	}

	def := Default().Paths
	dataDir := resolveUnder(baseDir, pc.DataDir, def.DataDir)
	logsDir := resolveUnder(baseDir, pc.LogsDir, def.LogsDir)

	return &Paths{
		BaseDir: baseDir,
		DataDir: dataDir,
		LogsDir: logsDir,

		SampleInputCSV:     resolveUnder(dataDir, pc.InputCSV, def.InputCSV),
		ProcessedOutputCSV: resolveUnder(dataDir, pc.OutputCSV, def.OutputCSV),
		LogFile:            filepath.Join(logsDir, "processor.log"),
	}
}

// resolveUnder joins a configured entry to its parent directory, keeping
// absolute entries and falling back to the default when unset
func resolveUnder(parent, entry, fallback string) string {
	if entry == "" {
		entry = fallback
	}
	if filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(parent, entry)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// GetDataPath returns a path inside the data directory
func (p *Paths) GetDataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// GetLogPath returns a path inside the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
