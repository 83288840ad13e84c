// Package huecolor hands out task colors by subdividing the hue circle so that the
// first few tasks get hues that are as far apart from each other as possible.
package huecolor

import (
	"fmt"
	"sort"
)

const (
	// Saturation and Value are fixed for every task color.
	Saturation = 0.7
	Value      = 0.9
)

var (
	// red, yellow, green, blue, purple
	primaryHues = []float64{0, 72, 144, 216, 288}
	// midpoints of primaryHues
	secondaryHues = []float64{36, 108, 180, 252, 324}
)

// Hues returns the first n hues of the allocation sequence, in degrees.
//
// Slots 1-5 are primaryHues and 6-10 are secondaryHues. Past that, the slot list is
// sorted and bisected (including the wrap-around gap from the last hue back to the
// first) until it holds at least n slots; the first n slots are returned.
func Hues(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	slots := make([]float64, 0, len(primaryHues)+len(secondaryHues))
	slots = append(slots, primaryHues...)
	slots = append(slots, secondaryHues...)
	if n <= len(slots) {
		return slots[:n]
	}

	for len(slots) < n {
		slots = bisect(slots)
	}
	return slots[:n]
}

// bisect sorts slots and inserts the midpoint after every element. The midpoint after
// the last element closes the circle back to the first one, modulo 360.
func bisect(slots []float64) []float64 {
	sorted := make([]float64, len(slots))
	copy(sorted, slots)
	sort.Float64s(sorted)

	out := make([]float64, 0, len(sorted)*2)
	for i, hue := range sorted {
		out = append(out, hue)
		if i < len(sorted)-1 {
			out = append(out, (hue+sorted[i+1])/2)
			continue
		}
		out = append(out, wrapMidpoint(hue, sorted[0]))
	}
	return out
}

func wrapMidpoint(last, first float64) float64 {
	mid := (last + first + 360) / 2
	if mid >= 360 {
		mid -= 360
	}
	return mid
}

// HueToHex converts an HSV color to a "#rrggbb" string. hue is in degrees, saturation
// and value in [0, 1]. Channels are truncated to 8 bits, not rounded.
func HueToHex(hue, saturation, value float64) string {
	r, g, b := hsvToRGB(hue/360.0, saturation, value)
	return fmt.Sprintf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255))
}

func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	if s == 0 {
		return v, v, v
	}
	i := int(h * 6.0)
	f := h*6.0 - float64(i)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// Next returns the color for a new task given how many tasks exist before it is
// inserted. The new task takes slot existingTaskCount+1.
func Next(existingTaskCount int) string {
	if existingTaskCount < 0 {
		existingTaskCount = 0
	}
	hues := Hues(existingTaskCount + 1)
	return HueToHex(hues[len(hues)-1], Saturation, Value)
}
