// Package upgrades extracts pending-upgrade package identifiers from the
// backend's upgrade report.
//
// The report is a column-aligned table meant for people, so the result is
// advisory: a structural mismatch yields an empty list, never an error.
// Column offsets come from the row above the first dashed separator and are
// measured in display columns.
package upgrades

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	separatorMarker   = "---"
	separatorMinWidth = 20
	idHeader          = "Id"
	versionHeader     = "Version"
)

// columns measures display width independently of the user's locale.
var columns = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Parse returns the package identifiers listed in report, in row order.
func Parse(report string) []string {
	lines := splitLines(report)
	sep := -1
	for i, line := range lines {
		if isSeparator(line) {
			sep = i
			break
		}
	}
	if sep < 1 {
		return []string{}
	}

	header := lines[sep-1]
	idStart := columnOf(header, idHeader)
	versionStart := columnOf(header, versionHeader)
	if idStart < 0 || versionStart <= idStart {
		return []string{}
	}
	headerWidth := columns.StringWidth(header)

	ids := []string{}
	for _, line := range lines[sep+1:] {
		if strings.TrimSpace(line) == "" || isSeparator(line) || line == header {
			continue
		}
		// Short rows are footers or wrapped text.
		if columns.StringWidth(line) < headerWidth {
			continue
		}
		if id := strings.TrimSpace(sliceColumns(line, idStart, versionStart)); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// splitLines splits report into lines, keeping only what remains visible after
// carriage-return redraws and dropping terminal control sequences (CSI, OSC).
func splitLines(report string) []string {
	raw := strings.Split(report, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if i := strings.LastIndex(line, "\r"); i >= 0 {
			line = line[i+1:]
		}
		lines = append(lines, ansi.Strip(line))
	}
	return lines
}

func isSeparator(line string) bool {
	return strings.Contains(line, separatorMarker) && columns.StringWidth(line) > separatorMinWidth
}

// columnOf returns the display column where title starts in header, or -1.
func columnOf(header string, title string) int {
	idx := strings.Index(header, title)
	if idx < 0 {
		return -1
	}
	return columns.StringWidth(header[:idx])
}

// sliceColumns returns the runes of line occupying display columns [start, end).
func sliceColumns(line string, start int, end int) string {
	var b strings.Builder
	col := 0
	for _, r := range line {
		if col >= end {
			break
		}
		if col >= start {
			b.WriteRune(r)
		}
		col += columns.RuneWidth(r)
	}
	return b.String()
}
