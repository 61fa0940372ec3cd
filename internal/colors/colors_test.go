package colors

import "testing"

func TestHexRoundTrip(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#000000", 0, 0, 0},
		{"#ffffff", 255, 255, 255},
		{"#1e90ff", 30, 144, 255},
	}

	for _, tt := range tests {
		r, g, b := HexToRGB(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("HexToRGB(%q) = %d,%d,%d", tt.hex, r, g, b)
		}
		if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.hex {
			t.Errorf("RGBToHex = %q, want %q", got, tt.hex)
		}
	}
}

func TestHexToRGBMalformed(t *testing.T) {
	for _, hex := range []string{"", "#fff", "nothex", "#zzzzzz"} {
		r, g, b := HexToRGB(hex)
		if r != 0 || g != 0 || b != 0 {
			t.Errorf("HexToRGB(%q) = %d,%d,%d, want zeros", hex, r, g, b)
		}
	}
}

func TestBlendEndpoints(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("t=0 blend = %q", got)
	}
	if got := Blend("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("t=1 blend = %q", got)
	}
	if got := Blend("#000000", "#ffffff", 0.5); got != "#7f7f7f" {
		t.Errorf("midpoint blend = %q", got)
	}
}

func TestGradient(t *testing.T) {
	got := Gradient("#000000", "#ffffff", 3)
	want := []string{"#000000", "#7f7f7f", "#ffffff"}

	if len(got) != len(want) {
		t.Fatalf("got %d steps", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAdjustBrightnessClamps(t *testing.T) {
	if got := AdjustBrightness("#ffffff", 2.0); got != "#ffffff" {
		t.Errorf("over-brightened white = %q", got)
	}
	if got := AdjustBrightness("#808080", 0); got != "#000000" {
		t.Errorf("zero factor = %q", got)
	}
}

func TestLightnessOrdering(t *testing.T) {
	if Lightness("#000000") >= Lightness("#808080") {
		t.Error("black not darker than gray")
	}
	if Lightness("#808080") >= Lightness("#ffffff") {
		t.Error("gray not darker than white")
	}
}
