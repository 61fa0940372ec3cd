package lrc

import (
	"reflect"
	"testing"
)

func TestParseSynced(t *testing.T) {
	raw := "[00:12.50] Hello\n[00:15.00] World\nnot a line\n[00:18.00]"

	got := ParseSynced(raw)
	want := []Line{
		{Time: 12.5, Text: "Hello"},
		{Time: 15.0, Text: "World"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSynced = %v, want %v", got, want)
	}
}

func TestParseSyncedSkipsNonMatchingLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty input", "", 0},
		{"metadata header", "[ar:Some Artist]\n[ti:Some Song]", 0},
		{"single digit minutes", "[0:12.50] nope", 0},
		{"millisecond precision", "[00:12.500] nope", 0},
		{"hour field", "[01:00:12.50] nope", 0},
		{"no fraction", "[00:12] nope", 0},
		{"blank lines between", "[00:01.00] a\n\n\n[00:02.00] b", 2},
		{"windows line endings", "[00:01.00] a\r\n[00:02.00] b\r\n", 2},
		{"tag with only whitespace text", "[00:01.00]   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSynced(tt.raw); len(got) != tt.want {
				t.Fatalf("got %d lines (%v), want %d", len(got), got, tt.want)
			}
		})
	}
}

func TestParseSyncedComputesMinutes(t *testing.T) {
	got := ParseSynced("[02:03.25] line")
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	if got[0].Time != 123.25 {
		t.Fatalf("time = %v, want 123.25", got[0].Time)
	}
}

// the parser trusts the input to be chronological and must not reorder
func TestParseSyncedPreservesInputOrder(t *testing.T) {
	raw := "[00:10.00] later tag first\n[00:05.00] earlier tag second"

	got := ParseSynced(raw)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0].Time != 10 || got[1].Time != 5 {
		t.Fatalf("order changed: %v", got)
	}
}
