package launch

import (
	"strings"
	"time"
)

// ID is an opaque catalog identifier. The empty ID means no reference.
type ID string

// Present reports whether the ID references an entity.
func (id ID) Present() bool {
	return strings.TrimSpace(string(id)) != ""
}

func (id ID) String() string {
	return string(id)
}

// CoreUsage describes how a single booster core was used on one launch.
type CoreUsage struct {
	Core           ID      `json:"core"`
	Flight         *int    `json:"flight"`
	Gridfins       *bool   `json:"gridfins"`
	Legs           *bool   `json:"legs"`
	Reused         *bool   `json:"reused"`
	LandingSuccess *bool   `json:"landing_success"`
	LandingType    *string `json:"landing_type"`
	Landpad        *string `json:"landpad"`
}

// RawLaunch is one historical launch as served by the catalog.
type RawLaunch struct {
	FlightNumber int         `json:"flight_number"`
	Name         string      `json:"name"`
	DateUTC      string      `json:"date_utc"`
	Rocket       ID          `json:"rocket"`
	Launchpad    ID          `json:"launchpad"`
	Payloads     []ID        `json:"payloads"`
	Cores        []CoreUsage `json:"cores"`
}

// FlatLaunch is a RawLaunch whose single payload and single core usage have
// been unwrapped. Date is zero until the date window filter has parsed DateUTC.
type FlatLaunch struct {
	FlightNumber int
	DateUTC      string
	Date         time.Time
	Rocket       ID
	Launchpad    ID
	Payload      ID
	Core         CoreUsage
}

// EnrichedLaunch is the denormalized row produced for each surviving launch.
type EnrichedLaunch struct {
	FlightNumber   int       `json:"flight_number"`
	Date           time.Time `json:"date"`
	BoosterVersion string    `json:"booster_version"`
	PayloadMass    *float64  `json:"payload_mass"`
	Orbit          string    `json:"orbit"`
	LaunchSite     string    `json:"launch_site"`
	Outcome        string    `json:"outcome"`
	Flights        *int      `json:"flights"`
	GridFins       *bool     `json:"grid_fins"`
	Reused         *bool     `json:"reused"`
	Legs           *bool     `json:"legs"`
	LandingPad     *string   `json:"landing_pad"`
	Block          *int      `json:"block"`
	ReusedCount    *int      `json:"reused_count"`
	Serial         *string   `json:"serial"`
	Longitude      *float64  `json:"longitude"`
	Latitude       *float64  `json:"latitude"`
	LandingSuccess string    `json:"landing_success"`
	LandingType    string    `json:"landing_type"`
}

// DateLayout is the calendar date format used for cutoffs and output.
const DateLayout = "2006-01-02"

// CalendarDate truncates t to its UTC calendar date.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
}
