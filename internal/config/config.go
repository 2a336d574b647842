package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"launchset/internal/launch"
)

//go:embed sample_config.toml
var sampleConfig string

// API contains configuration for the launch catalog endpoint.
// RequestTimeoutSeconds of zero leaves the transport default in place and
// RequestsPerSecond of zero disables rate limiting.
type API struct {
	BaseURL               string  `toml:"base_url"`
	SnapshotURL           string  `toml:"snapshot_url"`
	UserAgent             string  `toml:"user_agent"`
	RequestTimeoutSeconds int     `toml:"request_timeout_seconds"`
	RequestsPerSecond     float64 `toml:"requests_per_second"`
}

// Pipeline contains the enrichment filters. DateCutoff is the inclusive upper
// bound on launch dates (YYYY-MM-DD); Family is the booster version the final
// dataset is restricted to.
type Pipeline struct {
	DateCutoff string `toml:"date_cutoff"`
	Family     string `toml:"family"`
}

// Paths contains directory configuration.
type Paths struct {
	DataDir   string `toml:"data_dir"`
	LogDir    string `toml:"log_dir"`
	ExportDir string `toml:"export_dir"`
}

// Export selects which file exports a run produces.
type Export struct {
	CSV  bool `toml:"csv"`
	JSON bool `toml:"json"`
	YAML bool `toml:"yaml"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format          string            `toml:"format"`
	Level           string            `toml:"level"`
	ComponentLevels map[string]string `toml:"component_levels"`
}

// Config encapsulates all configuration values for launchset.
//
// Configuration sections:
//   - API: catalog base URL, static snapshot URL, request settings
//   - Pipeline: date cutoff and target vehicle family
//   - Paths: data (run store), log, and export directories
//   - Export: CSV/JSON/YAML export toggles
//   - Logging: log format, level, and per-component levels
type Config struct {
	API      API      `toml:"api"`
	Pipeline Pipeline `toml:"pipeline"`
	Paths    Paths    `toml:"paths"`
	Export   Export   `toml:"export"`
	Logging  Logging  `toml:"logging"`

	cutoff time.Time
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigLocation)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigLocation)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data, log, and export directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir, c.Paths.ExportDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// Cutoff returns the parsed inclusive date cutoff. Valid after Load or Validate.
func (c *Config) Cutoff() time.Time {
	if c.cutoff.IsZero() {
		if parsed, err := launch.ParseDate(c.Pipeline.DateCutoff); err == nil {
			c.cutoff = parsed
		}
	}
	return c.cutoff
}

// RequestTimeout returns the catalog request timeout; zero means no client timeout.
func (c *Config) RequestTimeout() time.Duration {
	if c.API.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.API.RequestTimeoutSeconds) * time.Second
}

// StorePath returns the SQLite run store location.
func (c *Config) StorePath() string {
	return filepath.Join(c.Paths.DataDir, "launchset.db")
}

// LockPath returns the lock file guarding concurrent runs.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "launchset.lock")
}

// LogPath returns the log file location, or "" when file logging is off.
func (c *Config) LogPath() string {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return ""
	}
	return filepath.Join(c.Paths.LogDir, "launchset.log")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
