package title

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantArtist string
		wantTrack  string
	}{
		{"plain artist track", "Artist - Track", "Artist", "Track"},
		{"official video bracket", "Artist - Track (Official Video)", "Artist", "Track"},
		{"square noise bracket", "Artist - Track [Official Audio]", "Artist", "Track"},
		{"en dash separator", "Artist – Track", "Artist", "Track"},
		{"em dash separator", "Artist — Track", "Artist", "Track"},
		{"colon separator", "Artist : Track", "Artist", "Track"},
		{"junk second half demotes to track", "Jab Tu Sajan - Lyric Video | Aap Jaisa Koi | Composer", "", "Jab Tu Sajan"},
		{"official music video is junk", "Some Song - Official Music Video", "", "Some Song"},
		{"no separator", "NoSeparatorTitle", "", ""},
		{"empty title", "", "", ""},
		{"only noise", "(Official Video)", "", ""},
		{"pipe metadata stripped before split", "Artist - Track | Some Album", "Artist", "Track"},
		{"keeps real parenthetical", "Artist - Track (Acoustic)", "Artist", "Track (Acoustic)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got.Artist != tt.wantArtist || got.Track != tt.wantTrack {
				t.Fatalf("Parse(%q) = {%q, %q}, want {%q, %q}",
					tt.raw, got.Artist, got.Track, tt.wantArtist, tt.wantTrack)
			}
		})
	}
}

func TestLightClean(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Artist - Track (Official Video)", "Artist - Track"},
		{"Song Name | Album | Composer", "Song Name"},
		{"Multi    Space   Title", "Multi Space Title"},
		{"दिल की बात - Full Song | Movie", "दिल की बात - Full Song"},
		{"गीत [Official Lyric Video] | Film", "गीत"},
		{"Artist - Track (Acoustic Session)", "Artist - Track (Acoustic Session)"},
		{"", ""},
	}

	for _, tt := range tests {
		got := LightClean(tt.raw)
		if got != tt.want {
			t.Errorf("LightClean(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestHeavyClean(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Artist - Track (Whatever Text)", "Artist - Track"},
		{"Artist - Track [Anything]", "Artist - Track"},
		{"Song Official Music Video", "Song"},
		{"Song Lyrics HD", "Song"},
		{"Song ft. Somebody", "Song Somebody"},
		{"Song feat. Somebody", "Song Somebody"},
		{"Song 4K Full Video", "Song"},
		{"Song | Album | Credits", "Song"},
	}

	for _, tt := range tests {
		got := HeavyClean(tt.raw)
		if got != tt.want {
			t.Errorf("HeavyClean(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// anything after the first pipe must never leak into a cleaned title
func TestPipeSuffixNeverSurvives(t *testing.T) {
	titles := []string{
		"Track | SECRETALBUM",
		"A - B | SECRETALBUM | More",
		"X (Official Video) | SECRETALBUM",
	}

	for _, raw := range titles {
		for name, clean := range map[string]func(string) string{
			"LightClean": LightClean,
			"HeavyClean": HeavyClean,
		} {
			if got := clean(raw); strings.Contains(got, "SECRETALBUM") {
				t.Errorf("%s(%q) = %q, pipe suffix leaked", name, raw, got)
			}
		}
	}
}
