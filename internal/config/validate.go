package config

import (
	"errors"
	"fmt"
	"net/url"

	"launchset/internal/launch"
)

var validLogLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api.base_url must be an http(s) url, got %q", c.API.BaseURL)
	}
	if c.API.SnapshotURL != "" {
		if _, err := url.Parse(c.API.SnapshotURL); err != nil {
			return fmt.Errorf("api.snapshot_url: %w", err)
		}
	}
	return nil
}

func (c *Config) validatePipeline() error {
	cutoff, err := launch.ParseDate(c.Pipeline.DateCutoff)
	if err != nil {
		return fmt.Errorf("pipeline.date_cutoff must be YYYY-MM-DD, got %q: %w", c.Pipeline.DateCutoff, err)
	}
	c.cutoff = cutoff
	if c.Pipeline.Family == "" {
		return errors.New("pipeline.family must be set")
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if (c.Export.CSV || c.Export.JSON || c.Export.YAML) && c.Paths.ExportDir == "" {
		return errors.New("paths.export_dir must be set when exports are enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	for component, level := range c.Logging.ComponentLevels {
		if _, ok := validLogLevels[level]; !ok {
			return fmt.Errorf("logging.component_levels.%s: unsupported level %q", component, level)
		}
	}
	return nil
}
