package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"launchset/internal/config"
	"launchset/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	logger.Info("hello from test")

	if _, err := os.Stat(filepath.Join(cfg.Paths.LogDir, "launchset.log")); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestConsoleLoggerFormatsComponentAndAttrs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "resolver").Warn("lookup failed",
		logging.String(logging.FieldEntity, "site"),
		logging.String(logging.FieldEntityID, "pad-1"),
	)

	content := readFile(t, logPath)
	for _, want := range []string{"WARN resolver: lookup failed", "entity=site", "entity_id=pad-1"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "debug",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")

	if content := readFile(t, logPath); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestJSONLoggerWritesStructuredLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json message", logging.Args(logging.Int(logging.FieldFlightNumber, 42))...)

	var line map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readFile(t, logPath))), &line); err != nil {
		t.Fatalf("decode json log line: %v", err)
	}
	if line["msg"] != "json message" || line["level"] != "info" {
		t.Fatalf("unexpected json line: %v", line)
	}
	if line[logging.FieldFlightNumber] != float64(42) {
		t.Fatalf("expected flight_number attr, got %v", line)
	}
	ts, _ := line["ts"].(string)
	if _, err := time.Parse(time.RFC3339Nano, ts); err != nil {
		t.Fatalf("ts %q does not parse: %v", ts, err)
	}
	if len(ts) != len("2006-01-02T15:04:05.000Z") || !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC millisecond timestamp, got %q", ts)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestComponentLevelOverride(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "override.log")
	logger, err := logging.New(logging.Options{
		Format:          "console",
		Level:           "warn",
		OutputPaths:     []string{logPath},
		ComponentLevels: map[string]string{"resolver": "debug", "store": "error"},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "resolver").Debug("resolver detail")
	logging.NewComponentLogger(logger, "store").Warn("store warning")
	logging.NewComponentLogger(logger, "pipeline").Info("pipeline info")
	logging.NewComponentLogger(logger, "pipeline").Warn("pipeline warning")

	content := readFile(t, logPath)
	if !strings.Contains(content, "resolver detail") {
		t.Fatalf("expected resolver debug line, got %q", content)
	}
	if strings.Contains(content, "store warning") {
		t.Fatalf("expected store warning to be suppressed, got %q", content)
	}
	if strings.Contains(content, "pipeline info") {
		t.Fatalf("expected pipeline info to be suppressed, got %q", content)
	}
	if !strings.Contains(content, "pipeline warning") {
		t.Fatalf("expected pipeline warning, got %q", content)
	}
}

func TestWarnWithContextFillsDefaults(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "lookup failed", "entity_lookup_failed")

	content := readFile(t, logPath)
	if !strings.Contains(content, "event_type=entity_lookup_failed") || !strings.Contains(content, "impact=") {
		t.Fatalf("expected default context fields, got %q", content)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(data)
}
