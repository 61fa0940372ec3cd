package artwork

import (
	"testing"

	"github.com/lyricast/lyricast/internal/colors"
)

func TestExtractPaletteNilImage(t *testing.T) {
	p := ExtractPalette(nil)
	if p == nil {
		t.Fatal("nil palette")
	}
	if p.Primary == "" || p.Background == "" || len(p.Gradient) == 0 {
		t.Fatalf("default palette incomplete: %+v", p)
	}
}

func TestDefaultPaletteBackgroundIsDark(t *testing.T) {
	p := DefaultPalette()
	if colors.Lightness(p.Background) > 0.3 {
		t.Fatalf("background %q too bright for an ambient backdrop", p.Background)
	}
	if colors.Lightness(p.Primary) < 0.5 {
		t.Fatalf("primary %q too dark to read", p.Primary)
	}
}

func TestEnsureReadable(t *testing.T) {
	bright := ensureReadable("#eeeeee")
	if bright != "#eeeeee" {
		t.Errorf("bright color changed: %q", bright)
	}

	dark := ensureReadable("#202020")
	if colors.Lightness(dark) <= colors.Lightness("#202020") {
		t.Errorf("dark color not brightened: %q", dark)
	}
}

func TestFetchRejectsEmptyURL(t *testing.T) {
	if _, err := Fetch(""); err == nil {
		t.Fatal("expected error for empty url")
	}
}
