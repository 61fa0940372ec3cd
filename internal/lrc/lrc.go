// Package lrc parses LRC-tagged synced lyrics text as served by lyrics
// databases. Only consumed, never produced.
package lrc

import (
	"strconv"
	"strings"
)

// Line is one synced lyric line. Time is seconds from the start of the
// track. A track's lines are expected to arrive already time-ordered;
// this package preserves input order and does not sort.
type Line struct {
	Time float64
	Text string
}

// ParseSynced parses raw LRC text into timed lines. Lines without a
// valid timestamp tag and tagged lines with empty text are dropped
// silently; a fully unparseable input yields an empty result, which
// callers treat the same as "no synced lyrics".
func ParseSynced(raw string) []Line {
	if raw == "" {
		return nil
	}

	physical := strings.Split(raw, "\n")
	lines := make([]Line, 0, len(physical))

	for _, l := range physical {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}

		seconds, rest, ok := matchTimeTag(l)
		if !ok {
			continue
		}

		text := strings.TrimSpace(rest)
		if text == "" {
			continue
		}

		lines = append(lines, Line{Time: seconds, Text: text})
	}

	return lines
}

// matchTimeTag recognizes the strict [MM:SS.ss] prefix. extended forms
// (hour fields, millisecond precision, metadata tags like [ar:...]) do
// not match and the line is skipped.
func matchTimeTag(line string) (seconds float64, rest string, ok bool) {
	// shortest valid tagged line starts "[00:00.00]" = 10 bytes
	if len(line) < 10 || line[0] != '[' || line[3] != ':' || line[6] != '.' || line[9] != ']' {
		return 0, "", false
	}

	for _, i := range [...]int{1, 2, 4, 5, 7, 8} {
		if line[i] < '0' || line[i] > '9' {
			return 0, "", false
		}
	}

	minutes, err := strconv.Atoi(line[1:3])
	if err != nil {
		return 0, "", false
	}
	secs, err := strconv.ParseFloat(line[4:9], 64)
	if err != nil {
		return 0, "", false
	}

	return float64(minutes)*60 + secs, line[10:], true
}
