package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"launchset/internal/config"
	"launchset/internal/logging"
	"launchset/internal/spacexapi"
	"launchset/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// withStore opens the run store for the duration of fn.
func (c *commandContext) withStore(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer st.Close()
	return fn(st)
}

func newCatalogClient(cfg *config.Config) (*spacexapi.Client, error) {
	return spacexapi.New(
		cfg.API.BaseURL,
		spacexapi.WithUserAgent(cfg.API.UserAgent),
		spacexapi.WithTimeout(cfg.RequestTimeout()),
		spacexapi.WithRateLimit(cfg.API.RequestsPerSecond),
	)
}

// resolveRun returns the run named by args[0], or the latest run.
func resolveRun(cmd *cobra.Command, st *store.Store, args []string) (*store.Run, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return st.GetRun(cmd.Context(), args[0])
	}
	run, err := st.LatestRun(cmd.Context())
	if errors.Is(err, store.ErrRunNotFound) {
		return nil, errors.New("no runs stored yet; run `launchset run` first")
	}
	return run, err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
