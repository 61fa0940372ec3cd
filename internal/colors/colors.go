// Package colors has the small amount of color math the ambient theme
// needs: hex parsing, blending and brightness adjustment in plain RGB.
package colors

import (
	"fmt"
	"strconv"
	"strings"
)

func HexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}

	r, err1 := strconv.ParseInt(hex[0:2], 16, 0)
	g, err2 := strconv.ParseInt(hex[2:4], 16, 0)
	b, err3 := strconv.ParseInt(hex[4:6], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}

	return int(r), int(g), int(b)
}

func RGBToHex(r int, g int, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// Blend mixes two hex colors; t=0 is all first, t=1 all second.
func Blend(hex1 string, hex2 string, t float64) string {
	if t <= 0 {
		return hex1
	}
	if t >= 1 {
		return hex2
	}

	r1, g1, b1 := HexToRGB(hex1)
	r2, g2, b2 := HexToRGB(hex2)

	r := int(float64(r1) + (float64(r2)-float64(r1))*t)
	g := int(float64(g1) + (float64(g2)-float64(g1))*t)
	b := int(float64(b1) + (float64(b2)-float64(b1))*t)

	return RGBToHex(r, g, b)
}

// Gradient returns steps evenly blended colors from start to end,
// inclusive on both ends.
func Gradient(startHex string, endHex string, steps int) []string {
	if steps <= 1 {
		return []string{startHex}
	}

	out := make([]string, steps)
	for i := 0; i < steps; i++ {
		out[i] = Blend(startHex, endHex, float64(i)/float64(steps-1))
	}
	return out
}

// AdjustBrightness scales all channels; factor < 1 darkens, > 1
// brightens.
func AdjustBrightness(hex string, factor float64) string {
	r, g, b := HexToRGB(hex)
	return RGBToHex(
		int(float64(r)*factor),
		int(float64(g)*factor),
		int(float64(b)*factor),
	)
}

// Desaturate pulls a color toward its own gray; amount=1 is full gray.
func Desaturate(hex string, amount float64) string {
	r, g, b := HexToRGB(hex)

	// rec601 luma
	gray := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)

	return RGBToHex(
		int(float64(r)+(gray-float64(r))*amount),
		int(float64(g)+(gray-float64(g))*amount),
		int(float64(b)+(gray-float64(b))*amount),
	)
}

// Lightness returns perceived lightness in [0,1].
func Lightness(hex string) float64 {
	r, g, b := HexToRGB(hex)
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
