package timeline

import (
	"testing"

	"github.com/lyricast/lyricast/internal/lrc"
)

func track() []lrc.Line {
	return []lrc.Line{
		{Time: 0, Text: "a"},
		{Time: 5, Text: "b"},
		{Time: 10, Text: "c"},
	}
}

func TestActiveLine(t *testing.T) {
	tests := []struct {
		name         string
		lines        []lrc.Line
		currentTime  float64
		wantIndex    int
		wantDuration float64
	}{
		{"mid track", track(), 7, 1, 5},
		{"exactly on a timestamp", track(), 5, 1, 5},
		{"before first line", track(), -1, -1, 0},
		{"past last line gets tail window", track(), 12, 2, 4},
		{"at zero", track(), 0, 0, 5},
		{"empty track", nil, 3, -1, 0},
		{"near-identical timestamps floor the window",
			[]lrc.Line{{Time: 1, Text: "x"}, {Time: 1.1, Text: "y"}}, 1, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveLine(tt.lines, tt.currentTime)
			if got.Index != tt.wantIndex {
				t.Fatalf("index = %d, want %d", got.Index, tt.wantIndex)
			}
			if got.Duration != tt.wantDuration {
				t.Fatalf("duration = %v, want %v", got.Duration, tt.wantDuration)
			}
		})
	}
}

func TestActiveLineIsIdempotent(t *testing.T) {
	lines := track()

	first := ActiveLine(lines, 7)
	second := ActiveLine(lines, 7)

	if first != second {
		t.Fatalf("two identical calls diverged: %v vs %v", first, second)
	}
	if lines[1].Text != "b" {
		t.Fatalf("input track mutated: %v", lines)
	}
}

// equal timestamps are ambiguous upstream data: the later line in input
// order wins, because the scan walks backwards
func TestActiveLineEqualTimestamps(t *testing.T) {
	lines := []lrc.Line{{Time: 2, Text: "first"}, {Time: 2, Text: "second"}, {Time: 6, Text: "third"}}

	got := ActiveLine(lines, 2)
	if got.Index != 1 {
		t.Fatalf("index = %d, want 1", got.Index)
	}
	if got.Duration != 4 {
		t.Fatalf("duration = %v, want 4", got.Duration)
	}
}
