package launch_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"launchset/internal/launch"
)

func TestOutcomeComposite(t *testing.T) {
	yes := true
	no := false
	asds := "ASDS"

	cases := []struct {
		name        string
		success     *bool
		landingType *string
		want        string
	}{
		{name: "landed", success: &yes, landingType: &asds, want: "True ASDS"},
		{name: "failed", success: &no, landingType: &asds, want: "False ASDS"},
		{name: "both missing", want: "None None"},
		{name: "type missing", success: &no, want: "False None"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := launch.Outcome(tc.success, tc.landingType); got != tc.want {
				t.Fatalf("Outcome() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValuesFollowColumnOrder(t *testing.T) {
	mass := 525.0
	flights := 1
	serial := "B0003"
	yes := true
	row := launch.EnrichedLaunch{
		FlightNumber:   6,
		Date:           time.Date(2010, 6, 4, 0, 0, 0, 0, time.UTC),
		BoosterVersion: "Falcon 9",
		PayloadMass:    &mass,
		Orbit:          "LEO",
		LaunchSite:     "CCSFS SLC 40",
		Outcome:        "None None",
		Flights:        &flights,
		Legs:           &yes,
		Serial:         &serial,
		LandingSuccess: "None",
		LandingType:    "None",
	}

	values := row.Values()
	if len(values) != len(launch.Columns) {
		t.Fatalf("got %d values for %d columns", len(values), len(launch.Columns))
	}
	want := []string{
		"6", "2010-06-04", "Falcon 9", "525", "LEO", "CCSFS SLC 40", "None None",
		"1", "", "", "True", "", "", "", "B0003", "", "", "None", "None",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}

	nulls := row.Nulls()
	if len(nulls) != len(launch.Columns) {
		t.Fatalf("got %d null flags for %d columns", len(nulls), len(launch.Columns))
	}
	if !nulls[8] {
		t.Fatal("expected GridFins to be null")
	}
	if nulls[3] {
		t.Fatal("expected PayloadMass to be present")
	}
}

func TestIDPresent(t *testing.T) {
	if launch.ID("").Present() || launch.ID("   ").Present() {
		t.Fatal("blank ids must be absent")
	}
	if !launch.ID("5e9d0d95eda69955f709d1eb").Present() {
		t.Fatal("expected id to be present")
	}
}
