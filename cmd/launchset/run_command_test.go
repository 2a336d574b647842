package main

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"launchset/internal/fileutil"
	"launchset/internal/launch"
	"launchset/internal/store"
	"launchset/internal/testsupport"
)

func decodeRunReport(t *testing.T, stdout string) runReport {
	t.Helper()
	var report runReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("decode run report: %v\n%s", err, stdout)
	}
	return report
}

func TestRunStoresAndExportsFamily(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithExports(true, true))

	stdout, _, err := env.run(t, "run", "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	report := decodeRunReport(t, stdout)

	run := report.Run
	if !report.Stored || run.ID == "" {
		t.Fatalf("expected stored run, got %+v", report)
	}
	if run.RawCount != 4 || run.FlatCount != 3 || run.WindowCount != 2 || run.EnrichedCount != 2 || run.FamilyCount != 1 {
		t.Fatalf("unexpected counts: %+v", run)
	}
	if run.LookupFailures != 1 {
		t.Fatalf("expected one lookup failure (missing payload), got %d", run.LookupFailures)
	}
	if run.Source != "live" || run.Family != "Falcon 9" || run.DateCutoff != "2020-11-13" {
		t.Fatalf("unexpected run metadata: %+v", run)
	}
	if env.catalog.requestCount("/launches/past") != 1 {
		t.Fatalf("expected one launches request")
	}
	if got := env.catalog.requestCount("/payloads/"); got != 2 {
		t.Fatalf("expected 2 payload lookups, got %d", got)
	}

	if len(report.Artifacts) != 2 {
		t.Fatalf("expected csv and json artifacts, got %+v", report.Artifacts)
	}
	for _, artifact := range report.Artifacts {
		if artifact.Rows != 1 {
			t.Fatalf("expected export of the single family row, got %+v", artifact)
		}
		if !strings.HasPrefix(artifact.Path, env.cfg.Paths.ExportDir) {
			t.Fatalf("artifact outside export dir: %s", artifact.Path)
		}
		if !strings.Contains(artifact.Path, "falcon-9-"+run.ShortID()) {
			t.Fatalf("unexpected artifact name: %s", artifact.Path)
		}
		sum, _, err := fileutil.FileSHA256(artifact.Path)
		if err != nil {
			t.Fatalf("hash artifact: %v", err)
		}
		if sum != artifact.SHA256 {
			t.Fatalf("artifact hash mismatch for %s", artifact.Path)
		}
	}

	file, err := os.Open(report.Artifacts[0].Path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}
	if records[0][0] != launch.ColumnFlightNumber || records[1][0] != "94" {
		t.Fatalf("unexpected csv content: %v", records)
	}
}

func TestRunOverridesFamilyAndCutoff(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := env.run(t, "run", "--json", "--family", "Falcon 1", "--cutoff", "2021-12-31")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	report := decodeRunReport(t, stdout)
	if report.Run.WindowCount != 3 || report.Run.FamilyCount != 1 {
		t.Fatalf("unexpected counts with overrides: %+v", report.Run)
	}
	if report.Run.Family != "Falcon 1" || report.Run.DateCutoff != "2021-12-31" {
		t.Fatalf("overrides not recorded: %+v", report.Run)
	}
}

func TestRunRejectsInvalidCutoff(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := env.run(t, "run", "--cutoff", "13/11/2020")
	if err == nil {
		t.Fatal("expected invalid cutoff to fail")
	}
	requireContains(t, err.Error(), "date_cutoff")
}

func TestRunSnapshotSource(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := env.run(t, "run", "--source", "snapshot", "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	report := decodeRunReport(t, stdout)
	if report.Run.Source != "snapshot" || report.Run.RawCount != 4 {
		t.Fatalf("unexpected snapshot run: %+v", report.Run)
	}
	if env.catalog.requestCount("/snapshot.json") != 1 || env.catalog.requestCount("/launches/past") != 0 {
		t.Fatal("expected the snapshot endpoint to be used")
	}
}

func TestRunRejectsUnknownSource(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := env.run(t, "run", "--source", "archive")
	if err == nil {
		t.Fatal("expected unknown source to fail")
	}
	requireContains(t, err.Error(), "unsupported value")
	if env.catalog.requestCount("/") != 0 {
		t.Fatal("no catalog requests expected for a rejected source")
	}
}

func TestRunNoStoreSkipsPersistence(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := env.run(t, "run", "--no-store")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, stdout, "skipped (--no-store)")
	requireContains(t, stdout, "Lookup failures")

	stdout, _, err = env.run(t, "runs")
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, stdout, "No runs stored")
}

func TestRunFailsWhenCatalogUnavailable(t *testing.T) {
	env := setupCLITestEnv(t)
	env.catalog.Close()

	_, _, err := env.run(t, "run")
	if err == nil {
		t.Fatal("expected run to fail with the catalog down")
	}
	requireContains(t, err.Error(), "fetch launches")
}

func TestExportNameSlug(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"Falcon 9", "falcon-9-1a2b3c4d"},
		{"Falcon Heavy", "falcon-heavy-1a2b3c4d"},
		{"  ", "launches-1a2b3c4d"},
	}
	for _, tt := range tests {
		run := store.Run{ID: "1a2b3c4d-0000-0000-0000-000000000000", Family: tt.family}
		if got := exportName(run); got != tt.want {
			t.Fatalf("exportName(%q) = %q, want %q", tt.family, got, tt.want)
		}
	}
}
