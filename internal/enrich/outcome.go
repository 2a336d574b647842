package enrich

import (
	"strings"

	"launchset/internal/launch"
)

// SplitOutcome splits an outcome composite on its first space. Without a
// space the whole value is the success token and the type is empty.
func SplitOutcome(outcome string) (success, landingType string) {
	success, landingType, _ = strings.Cut(outcome, " ")
	return success, landingType
}

// SplitOutcomes returns a copy of rows with LandingSuccess and LandingType
// derived from each row's Outcome.
func SplitOutcomes(rows []launch.EnrichedLaunch) []launch.EnrichedLaunch {
	out := make([]launch.EnrichedLaunch, len(rows))
	for i, row := range rows {
		row.LandingSuccess, row.LandingType = SplitOutcome(row.Outcome)
		out[i] = row
	}
	return out
}
