// Package artwork builds the ambient color theme from the playing
// video's thumbnail, standing in for the muted background video mirror
// of the original widget.
package artwork

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/nfnt/resize"

	"github.com/lyricast/lyricast/internal/colors"
)

// Palette is the ambient theme derived from a thumbnail. Background is
// heavily darkened and desaturated so lyric text stays readable on top
// of it.
type Palette struct {
	Background string
	Primary    string
	Secondary  string
	Dim        string
	Gradient   []string
}

func DefaultPalette() *Palette {
	return &Palette{
		Background: "#101018",
		Primary:    "#e8e8f0",
		Secondary:  "#8fa3c7",
		Dim:        "#4a4a58",
		Gradient:   colors.Gradient("#8fa3c7", "#e8e8f0", 8),
	}
}

// Fetch loads a thumbnail image from an http(s) or file:// url.
func Fetch(artworkURL string) (image.Image, error) {
	if artworkURL == "" {
		return nil, errors.New("empty artwork url")
	}

	if strings.HasPrefix(artworkURL, "file://") {
		f, err := os.Open(strings.TrimPrefix(artworkURL, "file://"))
		if err != nil {
			return nil, fmt.Errorf("failed to open artwork file: %w", err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode artwork image: %w", err)
		}
		return img, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artworkURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create artwork request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artwork: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("artwork fetch returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}

	return img, nil
}

// ExtractPalette clusters the thumbnail's dominant colors and derives
// the theme. Falls back to the default theme on any failure; a missing
// palette is never an error the caller has to handle.
func ExtractPalette(img image.Image) *Palette {
	if img == nil {
		return DefaultPalette()
	}

	// k-means cost grows with pixel count and thumbnails can be large
	small := resize.Thumbnail(256, 256, img, resize.Bilinear)

	dominant, err := prominentcolor.KmeansWithAll(
		4, small, prominentcolor.ArgumentDefault, prominentcolor.DefaultSize, nil)
	if err != nil || len(dominant) < 2 {
		return DefaultPalette()
	}

	hexes := make([]string, len(dominant))
	for i, c := range dominant {
		hexes[i] = colors.RGBToHex(int(c.Color.R), int(c.Color.G), int(c.Color.B))
	}

	// brightest cluster carries the text, darkest the background
	sort.Slice(hexes, func(i, j int) bool {
		return colors.Lightness(hexes[i]) > colors.Lightness(hexes[j])
	})

	primary := ensureReadable(hexes[0])
	secondary := hexes[1]
	darkest := hexes[len(hexes)-1]

	return &Palette{
		Background: colors.Desaturate(colors.AdjustBrightness(darkest, 0.25), 0.5),
		Primary:    primary,
		Secondary:  secondary,
		Dim:        colors.AdjustBrightness(secondary, 0.45),
		Gradient:   colors.Gradient(secondary, primary, 8),
	}
}

// ensureReadable brightens colors too dark to serve as the focused
// lyric line on a near-black background.
func ensureReadable(hex string) string {
	if colors.Lightness(hex) >= 0.55 {
		return hex
	}
	return colors.AdjustBrightness(hex, 1.8)
}
