package logs

import (
	"encoding/json"
	"strings"
)

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// ValidLevel reports whether value names a known level.
func ValidLevel(value string) bool {
	_, ok := levelRank[normalizeLevel(value)]
	return ok
}

// Filter selects log lines. Zero values match everything.
type Filter struct {
	// MinLevel is one of debug, info, warn, error.
	MinLevel  string
	Component string
}

// Match reports whether line passes the filter. Lines that cannot be parsed
// only match an empty filter.
func (f Filter) Match(line string) bool {
	minLevel := strings.ToLower(strings.TrimSpace(f.MinLevel))
	component := strings.ToLower(strings.TrimSpace(f.Component))
	if minLevel == "" && component == "" {
		return true
	}

	level, comp, ok := parseLine(line)
	if !ok {
		return false
	}
	if minLevel != "" && levelRank[level] < levelRank[minLevel] {
		return false
	}
	if component != "" && comp != component {
		return false
	}
	return true
}

// parseLine extracts the level and component of a console or JSON line.
func parseLine(line string) (level, component string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "{") {
		var record struct {
			Level     string `json:"level"`
			Component string `json:"component"`
		}
		if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
			return "", "", false
		}
		return normalizeLevel(record.Level), strings.ToLower(record.Component), record.Level != ""
	}

	// date time LEVEL [component:] message
	fields := strings.Fields(trimmed)
	if len(fields) < 3 {
		return "", "", false
	}
	level = normalizeLevel(fields[2])
	if _, known := levelRank[level]; !known {
		return "", "", false
	}
	if len(fields) > 3 && strings.HasSuffix(fields[3], ":") {
		component = strings.ToLower(strings.TrimSuffix(fields[3], ":"))
	}
	return level, component, true
}

func normalizeLevel(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "warning" {
		return "warn"
	}
	return value
}
