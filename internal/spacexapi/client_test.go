package spacexapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"launchset/internal/launch"
	"launchset/internal/spacexapi"
)

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := spacexapi.New("  "); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestRocketLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/rockets/5e9d0d95eda69973a809d1ec" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("User-Agent"); got != "launchset-test" {
			t.Errorf("unexpected user agent %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"5e9d0d95eda69973a809d1ec","name":"Falcon 9"}`))
	}))
	t.Cleanup(server.Close)

	client, err := spacexapi.New(server.URL+"/v4/", spacexapi.WithUserAgent("launchset-test"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	rocket, err := client.Rocket(context.Background(), "5e9d0d95eda69973a809d1ec")
	if err != nil {
		t.Fatalf("Rocket returned error: %v", err)
	}
	if rocket.Name == nil || *rocket.Name != "Falcon 9" {
		t.Fatalf("unexpected rocket: %#v", rocket)
	}
}

func TestLaunchpadMissingFieldsStayNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"pad","name":"CCSFS SLC 40"}`))
	}))
	t.Cleanup(server.Close)

	client, err := spacexapi.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	pad, err := client.Launchpad(context.Background(), "pad")
	if err != nil {
		t.Fatalf("Launchpad returned error: %v", err)
	}
	if pad.Longitude != nil || pad.Latitude != nil {
		t.Fatalf("expected nil coordinates, got %#v", pad)
	}
	if pad.Name == nil || *pad.Name != "CCSFS SLC 40" {
		t.Fatalf("unexpected pad name: %#v", pad.Name)
	}
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client, err := spacexapi.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	_, err = client.Core(context.Background(), "missing")
	if !errors.Is(err, spacexapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := spacexapi.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Payload(context.Background(), "p1"); err == nil {
		t.Fatal("expected error when catalog returns non-200")
	}
}

func TestLookupRejectsEmptyID(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(server.Close)

	client, err := spacexapi.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Rocket(context.Background(), launch.ID(" ")); err == nil {
		t.Fatal("expected error for empty id")
	}
	if calls != 0 {
		t.Fatalf("expected no request for empty id, got %d", calls)
	}
}

func TestPastLaunchesDecodesRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/launches/past" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{
			"flight_number": 1,
			"date_utc": "2006-03-24T22:30:00.000Z",
			"rocket": "r1",
			"launchpad": "l1",
			"payloads": ["p1"],
			"cores": [{"core": null, "flight": 1, "gridfins": false, "legs": false, "reused": false,
				"landing_success": null, "landing_type": null, "landpad": null}]
		}]`))
	}))
	t.Cleanup(server.Close)

	client, err := spacexapi.New(server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	launches, err := client.PastLaunches(context.Background())
	if err != nil {
		t.Fatalf("PastLaunches returned error: %v", err)
	}
	if len(launches) != 1 {
		t.Fatalf("expected 1 launch, got %d", len(launches))
	}
	got := launches[0]
	if got.FlightNumber != 1 || got.Rocket != "r1" || len(got.Payloads) != 1 || len(got.Cores) != 1 {
		t.Fatalf("unexpected launch: %#v", got)
	}
	if got.Cores[0].Core.Present() {
		t.Fatalf("expected null core id to be absent, got %q", got.Cores[0].Core)
	}
	if got.Cores[0].Flight == nil || *got.Cores[0].Flight != 1 {
		t.Fatalf("unexpected core flight: %#v", got.Cores[0].Flight)
	}
}

func TestSnapshotRequiresURL(t *testing.T) {
	client, err := spacexapi.New("https://example.com")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Snapshot(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty snapshot url")
	}
}

func TestRateLimitHonorsContext(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{"id":"c1"}`))
	}))
	t.Cleanup(server.Close)

	client, err := spacexapi.New(server.URL, spacexapi.WithRateLimit(0.001))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Core(context.Background(), "c1"); err != nil {
		t.Fatalf("first lookup should use the burst token: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Core(ctx, "c1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled while waiting for a token, got %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected one request, got %d", hits)
	}
}
