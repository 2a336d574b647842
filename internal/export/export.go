// Package export writes enriched launch rows to CSV, JSON, and YAML files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"launchset/internal/fileutil"
	"launchset/internal/launch"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Artifact describes one written export file.
type Artifact struct {
	Format Format `json:"format"`
	Path   string `json:"path"`
	Rows   int    `json:"rows"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// Formats returns the enabled formats in a stable order.
func Formats(csvEnabled, jsonEnabled, yamlEnabled bool) []Format {
	var formats []Format
	if csvEnabled {
		formats = append(formats, FormatCSV)
	}
	if jsonEnabled {
		formats = append(formats, FormatJSON)
	}
	if yamlEnabled {
		formats = append(formats, FormatYAML)
	}
	return formats
}

// Files writes rows to dir/name.<format> for every requested format. Existing
// files are replaced atomically.
func Files(dir, name string, rows []launch.EnrichedLaunch, formats []Format) ([]Artifact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("export name required")
	}
	artifacts := make([]Artifact, 0, len(formats))
	for _, format := range formats {
		var fill func(io.Writer) error
		switch format {
		case FormatCSV:
			fill = func(w io.Writer) error { return WriteCSV(w, rows) }
		case FormatJSON:
			fill = func(w io.Writer) error { return WriteJSON(w, rows) }
		case FormatYAML:
			fill = func(w io.Writer) error { return WriteYAML(w, rows) }
		default:
			return artifacts, fmt.Errorf("unsupported export format %q", format)
		}
		path := filepath.Join(dir, name+"."+string(format))
		written, err := fileutil.WriteAtomic(path, 0o644, fill)
		if err != nil {
			return artifacts, fmt.Errorf("export %s: %w", format, err)
		}
		artifacts = append(artifacts, Artifact{
			Format: format,
			Path:   written.Path,
			Rows:   len(rows),
			Bytes:  written.Bytes,
			SHA256: written.SHA256,
		})
	}
	return artifacts, nil
}

// WriteCSV writes a header of launch.Columns followed by one record per row.
// Null fields are empty cells.
func WriteCSV(w io.Writer, rows []launch.EnrichedLaunch) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(launch.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row.Values()); err != nil {
			return fmt.Errorf("write csv row %d: %w", row.FlightNumber, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// record keeps the column names and order of launch.Columns.
type record struct {
	FlightNumber   int      `json:"FlightNumber" yaml:"FlightNumber"`
	Date           *string  `json:"Date" yaml:"Date"`
	BoosterVersion string   `json:"BoosterVersion" yaml:"BoosterVersion"`
	PayloadMass    *float64 `json:"PayloadMass" yaml:"PayloadMass"`
	Orbit          string   `json:"Orbit" yaml:"Orbit"`
	LaunchSite     string   `json:"LaunchSite" yaml:"LaunchSite"`
	Outcome        string   `json:"Outcome" yaml:"Outcome"`
	Flights        *int     `json:"Flights" yaml:"Flights"`
	GridFins       *bool    `json:"GridFins" yaml:"GridFins"`
	Reused         *bool    `json:"Reused" yaml:"Reused"`
	Legs           *bool    `json:"Legs" yaml:"Legs"`
	LandingPad     *string  `json:"LandingPad" yaml:"LandingPad"`
	Block          *int     `json:"Block" yaml:"Block"`
	ReusedCount    *int     `json:"ReusedCount" yaml:"ReusedCount"`
	Serial         *string  `json:"Serial" yaml:"Serial"`
	Longitude      *float64 `json:"Longitude" yaml:"Longitude"`
	Latitude       *float64 `json:"Latitude" yaml:"Latitude"`
	LandingSuccess string   `json:"LandingSuccess" yaml:"LandingSuccess"`
	LandingType    string   `json:"LandingType" yaml:"LandingType"`
}

func records(rows []launch.EnrichedLaunch) []record {
	out := make([]record, 0, len(rows))
	for _, row := range rows {
		var date *string
		if !row.Date.IsZero() {
			formatted := row.Date.Format(launch.DateLayout)
			date = &formatted
		}
		out = append(out, record{
			FlightNumber:   row.FlightNumber,
			Date:           date,
			BoosterVersion: row.BoosterVersion,
			PayloadMass:    row.PayloadMass,
			Orbit:          row.Orbit,
			LaunchSite:     row.LaunchSite,
			Outcome:        row.Outcome,
			Flights:        row.Flights,
			GridFins:       row.GridFins,
			Reused:         row.Reused,
			Legs:           row.Legs,
			LandingPad:     row.LandingPad,
			Block:          row.Block,
			ReusedCount:    row.ReusedCount,
			Serial:         row.Serial,
			Longitude:      row.Longitude,
			Latitude:       row.Latitude,
			LandingSuccess: row.LandingSuccess,
			LandingType:    row.LandingType,
		})
	}
	return out
}

// WriteJSON writes rows as an indented JSON array keyed by column name.
// Null fields are JSON null.
func WriteJSON(w io.Writer, rows []launch.EnrichedLaunch) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records(rows)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes rows as a YAML sequence keyed by column name.
func WriteYAML(w io.Writer, rows []launch.EnrichedLaunch) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records(rows)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}
