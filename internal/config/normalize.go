package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeAPI()
	c.normalizePipeline()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeAPI() {
	if value, ok := os.LookupEnv("LAUNCHSET_API_BASE_URL"); ok && strings.TrimSpace(value) != "" {
		c.API.BaseURL = value
	}
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultAPIBaseURL
	}
	if value, ok := os.LookupEnv("LAUNCHSET_SNAPSHOT_URL"); ok && strings.TrimSpace(value) != "" {
		c.API.SnapshotURL = value
	}
	c.API.SnapshotURL = strings.TrimSpace(c.API.SnapshotURL)
	c.API.UserAgent = strings.TrimSpace(c.API.UserAgent)
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaultUserAgent
	}
	if c.API.RequestTimeoutSeconds < 0 {
		c.API.RequestTimeoutSeconds = 0
	}
	if c.API.RequestsPerSecond < 0 {
		c.API.RequestsPerSecond = 0
	}
}

func (c *Config) normalizePipeline() {
	c.Pipeline.DateCutoff = strings.TrimSpace(c.Pipeline.DateCutoff)
	if c.Pipeline.DateCutoff == "" {
		c.Pipeline.DateCutoff = defaultDateCutoff
	}
	// Family matching is exact, so only surrounding whitespace is trimmed.
	c.Pipeline.Family = strings.TrimSpace(c.Pipeline.Family)
	if c.Pipeline.Family == "" {
		c.Pipeline.Family = defaultFamily
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ExportDir) == "" {
		c.Paths.ExportDir = defaultExportDir
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if len(c.Logging.ComponentLevels) > 0 {
		levels := make(map[string]string, len(c.Logging.ComponentLevels))
		for component, level := range c.Logging.ComponentLevels {
			name := strings.ToLower(strings.TrimSpace(component))
			if name == "" {
				continue
			}
			levels[name] = strings.ToLower(strings.TrimSpace(level))
		}
		c.Logging.ComponentLevels = levels
	}
}
