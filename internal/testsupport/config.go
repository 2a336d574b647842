package testsupport

import (
	"path/filepath"
	"testing"

	"launchset/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ExportDir = filepath.Join(base, "exports")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithAPIBaseURL points the catalog client at a test server.
func WithAPIBaseURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.API.BaseURL = url
	}
}

// WithSnapshotURL sets the static snapshot location.
func WithSnapshotURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.API.SnapshotURL = url
	}
}

// WithPipeline overrides the date cutoff and family.
func WithPipeline(cutoff, family string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipeline.DateCutoff = cutoff
		b.cfg.Pipeline.Family = family
	}
}

// WithExports toggles the CSV and JSON exports.
func WithExports(csv, json bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Export.CSV = csv
		b.cfg.Export.JSON = json
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
