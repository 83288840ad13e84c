package huecolor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}

func TestHuesFirstTen(t *testing.T) {
	assert.Equal(t,
		[]float64{0, 72, 144, 216, 288, 36, 108, 180, 252, 324},
		Hues(10),
	)

	hues := Hues(10)
	for i := range hues {
		for j := i + 1; j < len(hues); j++ {
			assert.GreaterOrEqual(t, circularDistance(hues[i], hues[j]), 36.0,
				"hues %v and %v are too close", hues[i], hues[j])
		}
	}
}

func TestHuesPrefixes(t *testing.T) {
	assert.Empty(t, Hues(0))
	assert.Empty(t, Hues(-3))
	assert.Equal(t, []float64{0}, Hues(1))
	assert.Equal(t, []float64{0, 72, 144}, Hues(3))
	assert.Equal(t, []float64{0, 72, 144, 216, 288, 36}, Hues(6))
}

func TestHuesBisection(t *testing.T) {
	// one bisection round: 18 degree steps, closing the circle at 342
	hues := Hues(20)
	require.Len(t, hues, 20)
	for i, hue := range hues {
		assert.Equal(t, float64(i*18), hue)
	}

	// a second round halves the step again
	hues = Hues(40)
	require.Len(t, hues, 40)
	for i, hue := range hues {
		assert.Equal(t, float64(i)*9, hue)
	}

	assert.Equal(t, Hues(13), Hues(20)[:13])
}

func TestWrapMidpoint(t *testing.T) {
	assert.Equal(t, 342.0, wrapMidpoint(324, 0))
	assert.Equal(t, 351.0, wrapMidpoint(342, 0))
	assert.Equal(t, 5.0, wrapMidpoint(350, 20))
	assert.Equal(t, 0.0, wrapMidpoint(340, 20))
}

func TestBisectSortsInput(t *testing.T) {
	assert.Equal(t,
		[]float64{0, 90, 180, 270},
		bisect([]float64{180, 0}),
	)
}

func TestHueToHex(t *testing.T) {
	cases := []struct {
		hue    float64
		expect string
	}{
		{0, "#e54444"},
		{72, "#c5e544"},
		{144, "#44e585"},
		{216, "#4485e5"},
		{288, "#c544e5"},
		{36, "#e5a544"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, HueToHex(c.hue, Saturation, Value), "hue %v", c.hue)
	}

	assert.Equal(t, "#808080", HueToHex(120, 0, 128.0/255.0+0.001))
}

func TestNext(t *testing.T) {
	assert.Equal(t, "#e54444", Next(0))
	assert.Equal(t, "#c5e544", Next(1))
	assert.Equal(t, "#e5a544", Next(5))
	assert.Equal(t, Next(0), Next(-1))

	for n := 0; n < 50; n++ {
		assert.Equal(t, Next(n), Next(n), "allocation must be deterministic")
		assert.Regexp(t, `^#[0-9a-f]{6}$`, Next(n))
	}
}
