package report_test

import (
	"math"
	"testing"

	"launchset/internal/launch"
	"launchset/internal/report"
	"launchset/internal/testsupport"
)

func column(t *testing.T, summary report.Summary, name string) report.Column {
	t.Helper()
	for _, c := range summary.Columns {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("column %s missing", name)
	return report.Column{}
}

func TestDescribeCountsMissingValues(t *testing.T) {
	summary := report.Describe(testsupport.SampleLaunches())

	if summary.Rows != 3 || len(summary.Columns) != len(launch.Columns) {
		t.Fatalf("unexpected shape: rows=%d columns=%d", summary.Rows, len(summary.Columns))
	}
	serial := column(t, summary, launch.ColumnSerial)
	if serial.Missing != 2 || serial.Count != 1 {
		t.Fatalf("unexpected serial counts: %+v", serial)
	}
	if got := serial.MissingRatio(); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Fatalf("unexpected missing ratio: %v", got)
	}
	if booster := column(t, summary, launch.ColumnBoosterVersion); booster.Missing != 0 {
		t.Fatalf("booster version is never null: %+v", booster)
	}
}

func TestDescribeNumeric(t *testing.T) {
	summary := report.Describe(testsupport.SampleLaunches())

	flight := column(t, summary, launch.ColumnFlightNumber)
	if flight.Kind != report.KindNumeric || flight.Numeric == nil {
		t.Fatalf("expected numeric summary: %+v", flight)
	}
	n := flight.Numeric
	if n.Min != 1 || n.Max != 95 || n.Median != 94 {
		t.Fatalf("unexpected min/median/max: %+v", n)
	}
	if math.Abs(n.Mean-190.0/3.0) > 1e-9 {
		t.Fatalf("unexpected mean: %v", n.Mean)
	}
	if n.Q25 != 47.5 || n.Q75 != 94.5 {
		t.Fatalf("unexpected quartiles: %+v", n)
	}
	if n.Std == nil || math.Abs(*n.Std-53.9846) > 1e-3 {
		t.Fatalf("unexpected std: %v", n.Std)
	}

	mass := column(t, summary, launch.ColumnPayloadMass)
	if mass.Count != 1 || mass.Numeric == nil || mass.Numeric.Std != nil {
		t.Fatalf("single value should have undefined std: %+v", mass.Numeric)
	}
}

func TestDescribeCategorical(t *testing.T) {
	summary := report.Describe(testsupport.SampleLaunches())

	booster := column(t, summary, launch.ColumnBoosterVersion)
	if booster.Categorical == nil {
		t.Fatalf("expected categorical summary: %+v", booster)
	}
	if booster.Categorical.Unique != 2 || booster.Categorical.Top != "Falcon 9" || booster.Categorical.Freq != 2 {
		t.Fatalf("unexpected booster summary: %+v", booster.Categorical)
	}

	landing := column(t, summary, launch.ColumnLandingSuccess)
	if landing.Categorical.Unique != 3 || landing.Categorical.Top != "None" {
		t.Fatalf("ties should keep the first value: %+v", landing.Categorical)
	}
}

func TestDescribeEmpty(t *testing.T) {
	summary := report.Describe(nil)
	if summary.Rows != 0 {
		t.Fatalf("expected no rows, got %d", summary.Rows)
	}
	for _, c := range summary.Columns {
		if c.Numeric != nil || c.Categorical != nil {
			t.Fatalf("empty dataset must have no stats: %+v", c)
		}
	}
}
