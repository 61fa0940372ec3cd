package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"

	"github.com/lyricast/lyricast/internal/colors"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	height := m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	if m.video == nil || !m.video.IsValid() {
		return m.renderWaitingScreen(width, height)
	}

	return m.renderMainScreen(width, height)
}

func (m Model) renderWaitingScreen(width int, height int) string {
	banner := figure.NewFigure("lyricast", "", true).String()
	bannerLines := strings.Split(strings.TrimRight(banner, "\n"), "\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Dim))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Secondary))

	var lines []string
	startY := height/2 - len(bannerLines)/2 - 2
	if startY < 0 {
		startY = 0
	}

	for y := 0; y < height; y++ {
		switch {
		case y >= startY && y < startY+len(bannerLines):
			text := bannerLines[y-startY]
			lines = append(lines, centerText(accentStyle.Render(text), len(text), width))
		case y == startY+len(bannerLines)+1:
			text := "waiting for a playing video"
			lines = append(lines, centerText(dimStyle.Italic(true).Render(text), len(text), width))
		case y == startY+len(bannerLines)+2:
			pulse := []string{"·", "•", "●", "•"}
			p := pulse[(m.tickCount/2)%len(pulse)]
			lines = append(lines, centerText(dimStyle.Render(p), 1, width))
		default:
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderMainScreen(width int, height int) string {
	var lines []string

	if !m.hideHeader {
		lines = append(lines, m.renderHeader(width)...)
	}

	bodyHeight := height - len(lines)

	switch m.status {
	case StatusLoading:
		lines = append(lines, m.renderCenteredNotice(bodyHeight, width, "searching lyrics…", m.palette.Dim)...)
	case StatusNoLyrics:
		lines = append(lines, m.renderCenteredNotice(bodyHeight, width, "no lyrics found", m.palette.Dim)...)
	case StatusError:
		notice := "failed to fetch lyrics"
		if m.statusErr != nil {
			notice = "failed to fetch lyrics: " + m.statusErr.Error()
		}
		lines = append(lines, m.renderCenteredNotice(bodyHeight, width, notice, m.palette.Dim)...)
	case StatusReady:
		if m.resolution != nil && len(m.resolution.Synced) > 0 {
			lines = append(lines, m.renderSyncedLyrics(bodyHeight, width)...)
		} else if m.resolution != nil && m.resolution.Plain != "" {
			lines = append(lines, m.renderPlainLyrics(bodyHeight, width)...)
		} else {
			lines = append(lines, m.renderCenteredNotice(bodyHeight, width, "no lyrics found", m.palette.Dim)...)
		}
	default:
		lines = append(lines, m.renderCenteredNotice(bodyHeight, width, "", m.palette.Dim)...)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHeader(width int) []string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Primary)).Bold(true)
	matchStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Secondary))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Dim))

	maxWidth := width - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	lines := []string{""}

	lines = append(lines, "  "+titleStyle.Render(truncate(m.video.RawTitle, maxWidth)))

	// show what the resolver actually matched; the raw title and the
	// upstream record often differ
	if m.resolution != nil && m.resolution.Source.TrackName != "" {
		matched := m.resolution.Source.TrackName
		if m.resolution.Source.ArtistName != "" {
			matched = m.resolution.Source.ArtistName + " — " + matched
		}
		lines = append(lines, "  "+matchStyle.Render(truncate("matched: "+matched, maxWidth)))
	} else if m.video.Channel != "" {
		lines = append(lines, "  "+dimStyle.Render(truncate(m.video.Channel, maxWidth)))
	}

	if m.video.DurationSecs > 0 {
		lines = append(lines, "", "  "+m.renderProgressBar(width))
	}

	lines = append(lines, "")

	return lines
}

func (m Model) renderProgressBar(width int) string {
	barWidth := width - 20
	if barWidth < 20 {
		barWidth = 20
	}

	progress := clamp(float64(m.position)/float64(m.video.DurationSecs), 0, 1)
	filled := int(float64(barWidth) * progress)

	filledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Primary))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Dim)).Faint(true)

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case i < filled:
			bar.WriteString(filledStyle.Render("━"))
		case i == filled:
			bar.WriteString(filledStyle.Render("●"))
		default:
			bar.WriteString(emptyStyle.Render("─"))
		}
	}

	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Dim))

	return fmt.Sprintf("%s  %s  %s",
		timeStyle.Render(formatTime(m.position)),
		bar.String(),
		timeStyle.Render(formatTime(m.video.DurationSecs)))
}

// renderSyncedLyrics draws the active line with a progress sweep and a
// few dimmed context lines above and below it.
func (m Model) renderSyncedLyrics(height int, width int) []string {
	if height <= 0 {
		return nil
	}

	synced := m.resolution.Synced

	contextCount := 2
	if height >= 18 {
		contextCount = 3
	}

	out := make([]string, 0, height)
	blank := (height - (contextCount*2 + 1)) / 2
	for i := 0; i < blank; i++ {
		out = append(out, "")
	}

	for offset := -contextCount; offset <= contextCount; offset++ {
		idx := m.active.Index + offset
		if idx < 0 || idx >= len(synced) {
			out = append(out, "")
			continue
		}

		text := synced[idx].Text
		if offset == 0 && m.active.Index >= 0 {
			out = append(out, centerText(m.renderActiveLine(text), len(text), width))
			continue
		}

		dist := offset
		if dist < 0 {
			dist = -dist
		}
		shade := colors.Blend(m.palette.Dim, m.palette.Background, float64(dist-1)*0.35)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(shade))
		out = append(out, centerText(style.Render(text), len(text), width))
	}

	// before the first timestamp there is no active line yet
	if m.active.Index < 0 {
		notice := "♪"
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Secondary))
		out[len(out)/2] = centerText(style.Render(notice), len(notice), width)
	}

	return out
}

// renderActiveLine sweeps the highlight across the line in step with
// its display window, so the color front tracks the singing.
func (m Model) renderActiveLine(text string) string {
	sung := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Primary)).Bold(true)

	// without truecolor the blended sweep front degrades badly, so the
	// whole line just takes the focus style
	if m.termCaps != nil && !m.termCaps.SupportsRGB {
		return sung.Render(text)
	}

	reveal := easeOutCubic(m.anim.Progress)

	runes := []rune(text)
	front := int(reveal * float64(len(runes)))

	restColor := colors.Blend(m.palette.Secondary, m.palette.Primary, m.anim.Glow)
	restStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(restColor))

	if front >= len(runes) {
		return sung.Render(text)
	}

	return sung.Render(string(runes[:front])) + restStyle.Render(string(runes[front:]))
}

// renderPlainLyrics pages unsynced lyrics along the playback progress:
// no per-line timing exists, so the window slides proportionally.
func (m Model) renderPlainLyrics(height int, width int) []string {
	all := strings.Split(strings.TrimSpace(m.resolution.Plain), "\n")

	window := height - 2
	if window < 3 {
		window = 3
	}

	start := 0
	if m.video.DurationSecs > 0 && len(all) > window {
		progress := clamp(float64(m.position)/float64(m.video.DurationSecs), 0, 1)
		start = int(progress * float64(len(all)-window))
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Secondary))
	noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Dim)).Italic(true)

	note := "plain lyrics (no timing)"
	out := []string{centerText(noteStyle.Render(note), len(note), width), ""}

	for i := start; i < len(all) && len(out) < height; i++ {
		text := strings.TrimSpace(all[i])
		out = append(out, centerText(style.Render(text), len(text), width))
	}

	return out
}

func (m Model) renderCenteredNotice(height int, width int, text string, color string) []string {
	if height <= 0 {
		return nil
	}

	out := make([]string, height)
	if text == "" {
		return out
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Italic(true)
	out[height/2] = centerText(style.Render(text), len(text), width)

	return out
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

func centerText(rendered string, plainWidth int, width int) string {
	pad := (width - plainWidth) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + rendered
}

func formatTime(seconds int64) string {
	if seconds < 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
