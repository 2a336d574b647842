package testsupport

import (
	"time"

	"launchset/internal/launch"
)

// SampleLaunches returns three enriched rows covering resolved, sentinel, and
// off-family values.
func SampleLaunches() []launch.EnrichedLaunch {
	mass := 15600.0
	lon, lat := -80.577366, 28.5618571
	flights, block, reuse := 3, 5, 2
	yes, no := true, false
	pad, serial := "5e9e3032383ecb6bb234e7ca", "B1049"
	return []launch.EnrichedLaunch{
		{
			FlightNumber:   1,
			Date:           time.Date(2006, time.March, 24, 0, 0, 0, 0, time.UTC),
			BoosterVersion: "Falcon 1",
			Orbit:          "LEO",
			LaunchSite:     "Kwajalein Atoll",
			Outcome:        "None None",
			LandingSuccess: "None",
			LandingType:    "None",
		},
		{
			FlightNumber:   94,
			Date:           time.Date(2020, time.June, 13, 0, 0, 0, 0, time.UTC),
			BoosterVersion: "Falcon 9",
			PayloadMass:    &mass,
			Orbit:          "VLEO",
			LaunchSite:     "CCSFS SLC 40",
			Outcome:        "True ASDS",
			Flights:        &flights,
			GridFins:       &yes,
			Reused:         &yes,
			Legs:           &yes,
			LandingPad:     &pad,
			Block:          &block,
			ReusedCount:    &reuse,
			Serial:         &serial,
			Longitude:      &lon,
			Latitude:       &lat,
			LandingSuccess: "True",
			LandingType:    "ASDS",
		},
		{
			FlightNumber:   95,
			Date:           time.Date(2020, time.July, 20, 0, 0, 0, 0, time.UTC),
			BoosterVersion: "Falcon 9",
			Orbit:          "Unknown",
			LaunchSite:     "Unknown",
			Outcome:        "False Ocean",
			GridFins:       &no,
			LandingSuccess: "False",
			LandingType:    "Ocean",
		},
	}
}
