package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"launchset/internal/config"
	"launchset/internal/testsupport"
)

const catalogLaunches = `[
	{"flight_number": 1, "date_utc": "2006-03-24T22:30:00.000Z", "rocket": "f1", "launchpad": "kwaj",
	 "payloads": ["p-missing"], "cores": [{"core": null, "flight": 1, "gridfins": false, "legs": false, "reused": false,
	 "landing_success": null, "landing_type": null, "landpad": null}]},
	{"flight_number": 94, "date_utc": "2020-06-13T09:21:00.000Z", "rocket": "f9", "launchpad": "slc40",
	 "payloads": ["p94"], "cores": [{"core": "b1049", "flight": 3, "gridfins": true, "legs": true, "reused": true,
	 "landing_success": true, "landing_type": "ASDS", "landpad": "ocisly"}]},
	{"flight_number": 95, "date_utc": "2020-07-20T21:30:00.000Z", "rocket": "f9", "launchpad": "gone",
	 "payloads": ["p95a", "p95b"], "cores": [{"core": "b1058"}]},
	{"flight_number": 110, "date_utc": "2021-01-24T15:00:00.000Z", "rocket": "f9", "launchpad": "slc40",
	 "payloads": ["p110"], "cores": [{"core": "b1058"}]}
]`

var catalogEntities = map[string]string{
	"/rockets":          `[]`,
	"/rockets/f1":       `{"id": "f1", "name": "Falcon 1"}`,
	"/rockets/f9":       `{"id": "f9", "name": "Falcon 9"}`,
	"/launchpads/kwaj":  `{"id": "kwaj", "name": "Kwajalein Atoll", "longitude": 167.7431292, "latitude": 9.0477206}`,
	"/launchpads/slc40": `{"id": "slc40", "name": "CCSFS SLC 40", "longitude": -80.577366, "latitude": 28.5618571}`,
	"/payloads/p94":     `{"id": "p94", "mass_kg": 15600, "orbit": "VLEO"}`,
	"/cores/b1049":      `{"id": "b1049", "block": 5, "reuse_count": 2, "serial": "B1049"}`,
}

type fakeCatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

func (s *fakeCatalogServer) requestCount(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, path := range s.requests {
		if strings.HasPrefix(path, prefix) {
			count++
		}
	}
	return count
}

func newFakeCatalogServer(t *testing.T) *fakeCatalogServer {
	t.Helper()
	srv := &fakeCatalogServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.mu.Lock()
		srv.requests = append(srv.requests, r.URL.Path)
		srv.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/launches/past", "/snapshot.json":
			_, _ = w.Write([]byte(catalogLaunches))
			return
		}
		body, ok := catalogEntities[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

type cliTestEnv struct {
	cfg        *config.Config
	catalog    *fakeCatalogServer
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	catalog := newFakeCatalogServer(t)
	base := []testsupport.ConfigOption{
		testsupport.WithAPIBaseURL(catalog.URL),
		testsupport.WithSnapshotURL(catalog.URL + "/snapshot.json"),
	}
	cfg := testsupport.NewConfig(t, append(base, opts...)...)
	cfg.Logging.Level = "warn"

	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, catalog: catalog, configPath: configPath}
}

func (e *cliTestEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, args, e.configPath)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
