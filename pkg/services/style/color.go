package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an sRGB triple decoded from a #rrggbb literal.
type Color struct {
	R uint8
	G uint8
	B uint8
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func ParseHex(s string) (Color, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	value, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// Interpolate returns the color at position t on the straight RGB line
// between min (t=0) and max (t=1). t is clamped to [0, 1], so the
// mapping is continuous and monotonic per channel.
func Interpolate(min, max Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
	}
	return Color{
		R: lerp(min.R, max.R),
		G: lerp(min.G, max.G),
		B: lerp(min.B, max.B),
	}
}
