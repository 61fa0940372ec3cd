package ui

import "github.com/lyricast/lyricast/internal/config"

// AnimState drives the line transition. Progress runs 0..1 over the
// active line's display window, so short lines sweep fast and long
// lines linger; Glow flares on a line change and decays.
type AnimState struct {
	Progress     float64
	Glow         float64
	lineDuration float64
}

func (a *AnimState) Reset() {
	a.Progress = 0
	a.Glow = 0
	a.lineDuration = 0
}

// StartLine arms the animation for a newly active line. duration is
// the tracker's display window for that line, in seconds.
func (a *AnimState) StartLine(duration float64) {
	a.Progress = 0
	a.Glow = 1.0
	a.lineDuration = duration
}

// Advance moves the animation by one ui tick.
func (a *AnimState) Advance() {
	if a.lineDuration > 0 && a.Progress < 1.0 {
		a.Progress += config.PollInterval.Seconds() / a.lineDuration
		if a.Progress > 1.0 {
			a.Progress = 1.0
		}
	}

	if a.Glow > 0 {
		a.Glow *= 0.8
		if a.Glow < 0.01 {
			a.Glow = 0
		}
	}
}

// easeOutCubic shapes the sweep so it starts fast and settles.
func easeOutCubic(t float64) float64 {
	if t >= 1 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	inv := 1 - t
	return 1 - inv*inv*inv
}

func clamp(v float64, lo float64, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
