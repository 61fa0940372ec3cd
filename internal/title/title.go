// Package title turns raw, user-generated video titles into search
// queries. Video titles are noisy: bracketed metadata ("(Official 4K
// Video)"), pipe-separated credits ("| Album | Composer"), featured
// artist markers. Three views of a title are produced: a structured
// artist/track guess, a light cleanup that stays searchable for
// non-English titles, and a lossy heavy cleanup used as a last resort.
package title

import (
	"regexp"
	"strings"
)

// Guess is an artist/track pair extracted from a raw title. Either
// field may be empty when the title gives no usable structure.
type Guess struct {
	Artist string
	Track  string
}

// separators conventionally placed between artist and track, tried in
// this order. the first one present anywhere in the string wins.
var separators = []string{" - ", " – ", " — ", " : "}

// bracketed segments containing any of these words are metadata, not
// part of the song name
var noiseBracketRe = regexp.MustCompile(`(?i)[(\[][^)\]]*\b(official|video|audio|lyrics?|hd|4k|full|song|mv|from)\b[^)\]]*[)\]]`)

var multiSpaceRe = regexp.MustCompile(`\s+`)

// second-half strings like "Lyric Video" or "Official Music Video" that
// sit where a track name would, but aren't one
var (
	junkLeadWords = map[string]bool{
		"lyric": true, "lyrics": true, "official": true, "full": true,
		"audio": true, "video": true, "music": true,
	}
	junkTailWords = map[string]bool{
		"video": true, "audio": true, "song": true, "mv": true,
	}
)

// Parse extracts an artist/track guess from a raw video title. It
// strips noise brackets and pipe-separated metadata, then splits on the
// first known separator. A second half that is only filler words
// ("Lyric Video") demotes the result to a track-only guess.
func Parse(raw string) Guess {
	cleaned := LightClean(raw)
	if cleaned == "" {
		return Guess{}
	}

	for _, sep := range separators {
		idx := strings.Index(cleaned, sep)
		if idx < 0 {
			continue
		}

		first := strings.TrimSpace(cleaned[:idx])
		second := strings.TrimSpace(cleaned[idx+len(sep):])
		if first == "" || second == "" {
			continue
		}

		if isJunkTrackName(second) {
			return Guess{Track: first}
		}
		return Guess{Artist: first, Track: second}
	}

	return Guess{}
}

// LightClean removes noise brackets and everything after the first
// pipe, then collapses whitespace. Deliberately conservative: titles in
// non-Latin scripts survive intact, so the result stays usable as a
// free-text query.
func LightClean(raw string) string {
	s := noiseBracketRe.ReplaceAllString(raw, " ")

	if idx := strings.Index(s, "|"); idx >= 0 {
		s = s[:idx]
	}

	return collapseSpaces(s)
}

var (
	allBracketsRe   = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	officialVideoRe = regexp.MustCompile(`(?i)\bofficial(\s+music)?\s+video\b`)
	lyricWordRe     = regexp.MustCompile(`(?i)\blyrics?\b`)
	qualityTokenRe  = regexp.MustCompile(`(?i)\b(hd|4k|full\s+video)\b`)
	featMarkerRe    = regexp.MustCompile(`(?i)\b(ft|feat)\.?\s+`)
)

// HeavyClean is the lossy fallback: every bracketed segment goes,
// along with the usual quality/lyric/feature markers. Only used when
// the structured and light-clean queries both came up empty.
func HeavyClean(raw string) string {
	s := allBracketsRe.ReplaceAllString(raw, " ")

	if idx := strings.Index(s, "|"); idx >= 0 {
		s = s[:idx]
	}

	s = officialVideoRe.ReplaceAllString(s, " ")
	s = lyricWordRe.ReplaceAllString(s, " ")
	s = qualityTokenRe.ReplaceAllString(s, " ")
	s = featMarkerRe.ReplaceAllString(s, " ")

	s = collapseSpaces(s)
	s = strings.TrimRight(s, "-–—:| ")

	return strings.TrimSpace(s)
}

func isJunkTrackName(s string) bool {
	tokens := strings.Fields(strings.ToLower(s))
	if len(tokens) == 0 {
		return false
	}

	for i, tok := range tokens {
		if junkLeadWords[tok] {
			continue
		}
		if i == len(tokens)-1 && junkTailWords[tok] {
			continue
		}
		return false
	}

	return true
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}
