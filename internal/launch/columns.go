package launch

import (
	"strconv"
)

// Column names in output order. The outcome-derived columns are always last.
const (
	ColumnFlightNumber   = "FlightNumber"
	ColumnDate           = "Date"
	ColumnBoosterVersion = "BoosterVersion"
	ColumnPayloadMass    = "PayloadMass"
	ColumnOrbit          = "Orbit"
	ColumnLaunchSite     = "LaunchSite"
	ColumnOutcome        = "Outcome"
	ColumnFlights        = "Flights"
	ColumnGridFins       = "GridFins"
	ColumnReused         = "Reused"
	ColumnLegs           = "Legs"
	ColumnLandingPad     = "LandingPad"
	ColumnBlock          = "Block"
	ColumnReusedCount    = "ReusedCount"
	ColumnSerial         = "Serial"
	ColumnLongitude      = "Longitude"
	ColumnLatitude       = "Latitude"
	ColumnLandingSuccess = "LandingSuccess"
	ColumnLandingType    = "LandingType"
)

// Columns is the stable column set of the enriched dataset.
var Columns = []string{
	ColumnFlightNumber,
	ColumnDate,
	ColumnBoosterVersion,
	ColumnPayloadMass,
	ColumnOrbit,
	ColumnLaunchSite,
	ColumnOutcome,
	ColumnFlights,
	ColumnGridFins,
	ColumnReused,
	ColumnLegs,
	ColumnLandingPad,
	ColumnBlock,
	ColumnReusedCount,
	ColumnSerial,
	ColumnLongitude,
	ColumnLatitude,
	ColumnLandingSuccess,
	ColumnLandingType,
}

// Values renders the row in Columns order. Null fields render as "".
func (e EnrichedLaunch) Values() []string {
	return []string{
		strconv.Itoa(e.FlightNumber),
		formatDate(e),
		e.BoosterVersion,
		formatFloat(e.PayloadMass),
		e.Orbit,
		e.LaunchSite,
		e.Outcome,
		formatInt(e.Flights),
		formatBool(e.GridFins),
		formatBool(e.Reused),
		formatBool(e.Legs),
		formatString(e.LandingPad),
		formatInt(e.Block),
		formatInt(e.ReusedCount),
		formatString(e.Serial),
		formatFloat(e.Longitude),
		formatFloat(e.Latitude),
		e.LandingSuccess,
		e.LandingType,
	}
}

// Nulls reports, in Columns order, which fields of the row are null.
func (e EnrichedLaunch) Nulls() []bool {
	return []bool{
		false,
		e.Date.IsZero(),
		false,
		e.PayloadMass == nil,
		false,
		false,
		false,
		e.Flights == nil,
		e.GridFins == nil,
		e.Reused == nil,
		e.Legs == nil,
		e.LandingPad == nil,
		e.Block == nil,
		e.ReusedCount == nil,
		e.Serial == nil,
		e.Longitude == nil,
		e.Latitude == nil,
		false,
		false,
	}
}

// FlagToken renders an optional flag the way the outcome composite spells it:
// True, False, or None when missing.
func FlagToken(v *bool) string {
	if v == nil {
		return noneToken
	}
	if *v {
		return "True"
	}
	return "False"
}

// LabelToken renders an optional label for the outcome composite, None when missing.
func LabelToken(v *string) string {
	if v == nil {
		return noneToken
	}
	return *v
}

// Outcome builds the composite "<success> <type>" string. Two missing parts
// yield the literal "None None".
func Outcome(success *bool, landingType *string) string {
	return FlagToken(success) + " " + LabelToken(landingType)
}

const noneToken = "None"

func formatDate(e EnrichedLaunch) string {
	if e.Date.IsZero() {
		return ""
	}
	return e.Date.Format(DateLayout)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatBool(v *bool) string {
	if v == nil {
		return ""
	}
	return FlagToken(v)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
