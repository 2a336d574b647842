package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

var numberPrinter = message.NewPrinter(language.English)

func renderStatusLine(label string, kind statusKind, detail string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if detail != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, detail)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

// runStatusLines renders the outcome of one pipeline run: stage counts, the
// per-column lookup tally, storage, and exported files.
func runStatusLines(report runReport, colorize bool) []string {
	run := report.Run
	lines := renderSectionHeader("Run "+run.ShortID(), colorize)
	lines = append(lines,
		renderStatusLine("Source", statusInfo, run.Source, colorize),
		renderStatusLine("Cutoff", statusInfo, run.DateCutoff, colorize),
		renderStatusLine("Fetched", statusInfo, formatCount(run.RawCount), colorize),
		renderStatusLine("Single core/payload", statusInfo, formatCount(run.FlatCount), colorize),
		renderStatusLine("In window", statusInfo, formatCount(run.WindowCount), colorize),
		renderStatusLine("Enriched", statusOK, formatCount(run.EnrichedCount), colorize),
		renderStatusLine(run.Family, familyStatus(run.FamilyCount), formatCount(run.FamilyCount), colorize),
	)

	for _, column := range report.Columns {
		lines = append(lines, renderStatusLine("Lookups "+column.Column, lookupStatus(column.Failures), lookupDetail(column.Lookups, column.Failures), colorize))
	}
	lines = append(lines, renderStatusLine("Lookup failures", lookupStatus(run.LookupFailures), formatCount(run.LookupFailures), colorize))

	if report.Stored {
		lines = append(lines, renderStatusLine("Stored", statusOK, run.ID, colorize))
	} else {
		lines = append(lines, renderStatusLine("Stored", statusInfo, "skipped (--no-store)", colorize))
	}
	for _, artifact := range report.Artifacts {
		lines = append(lines, renderStatusLine("Export "+string(artifact.Format), statusOK, artifact.Path, colorize))
	}
	return lines
}

// An empty family usually means a misspelled --family.
func familyStatus(count int) statusKind {
	if count == 0 {
		return statusWarn
	}
	return statusOK
}

func lookupStatus(failures int) statusKind {
	if failures > 0 {
		return statusWarn
	}
	return statusOK
}

func lookupDetail(lookups, failures int) string {
	if failures == 0 {
		return formatCount(lookups)
	}
	return fmt.Sprintf("%s (%s failed)", formatCount(lookups), formatCount(failures))
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// formatStat renders a statistic with grouping and two decimals.
func formatStat(v float64) string {
	return numberPrinter.Sprintf("%.2f", v)
}

func writeLines(w io.Writer, lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
