// Package timeline maps a playback clock onto a synced lyrics track.
package timeline

import "github.com/lyricast/lyricast/internal/lrc"

const (
	// minimum display window, guards against two lines sharing (nearly)
	// the same timestamp
	minLineWindow = 0.5
	// display window granted to the final line, which has no successor
	tailWindow = 4.0
)

// State is the recomputed per-tick tracker output. Index is -1 while
// playback has not reached the first line (or the track is empty).
type State struct {
	Index    int
	Duration float64
}

// ActiveLine returns the last line whose timestamp has been reached at
// currentTime, with the seconds that line stays active. Pure function
// of its inputs; callers recompute it on every clock tick.
func ActiveLine(lines []lrc.Line, currentTime float64) State {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].Time > currentTime {
			continue
		}

		duration := tailWindow
		if i+1 < len(lines) {
			duration = lines[i+1].Time - lines[i].Time
		}
		if duration < minLineWindow {
			duration = minLineWindow
		}

		return State{Index: i, Duration: duration}
	}

	return State{Index: -1}
}
