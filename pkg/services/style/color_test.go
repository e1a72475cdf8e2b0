package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#678fae")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x67, G: 0x8f, B: 0xae}, c)
	assert.Equal(t, "#678fae", c.Hex())

	_, err = ParseHex("678fae")
	assert.Error(t, err)
	_, err = ParseHex("#678")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
}

func TestInterpolate_Endpoints(t *testing.T) {
	min, err := ParseHex("#eeeeee")
	require.NoError(t, err)
	max, err := ParseHex("#678fae")
	require.NoError(t, err)

	assert.Equal(t, min, Interpolate(min, max, 0))
	assert.Equal(t, max, Interpolate(min, max, 1))
	// Out-of-range positions clamp to the endpoints.
	assert.Equal(t, min, Interpolate(min, max, -0.5))
	assert.Equal(t, max, Interpolate(min, max, 1.5))
}

func TestInterpolate_Monotonic(t *testing.T) {
	min, err := ParseHex("#eeeeee")
	require.NoError(t, err)
	max, err := ParseHex("#116329")
	require.NoError(t, err)

	prev := Interpolate(min, max, 0)
	for i := 1; i <= 100; i++ {
		next := Interpolate(min, max, float64(i)/100)
		// Every channel moves toward the max color, never away.
		assert.LessOrEqual(t, next.R, prev.R)
		assert.LessOrEqual(t, next.G, prev.G)
		assert.LessOrEqual(t, next.B, prev.B)
		prev = next
	}
}
