package render

import (
	"image/color"
	"math"
)

// Ramp is a colour map built by linear interpolation between evenly spaced
// anchor colours.
type Ramp []color.RGBA

var (
	// Turbo is an approximation of the Turbo rainbow map, ordered from dark
	// blue through green and yellow to dark red.
	Turbo = Ramp{
		{48, 18, 59, 0xff}, {70, 107, 227, 0xff}, {40, 187, 236, 0xff},
		{50, 241, 152, 0xff}, {164, 252, 60, 0xff}, {237, 208, 58, 0xff},
		{251, 128, 34, 0xff}, {209, 49, 5, 0xff}, {122, 4, 3, 0xff},
	}
	// BlueRed runs straight from blue to red.
	BlueRed = Ramp{ {0, 0, 255, 0xff}, {255, 0, 0, 0xff} }
	// Undefined is used for values which are NaN.
	Undefined = color.RGBA{ 0x80, 0x80, 0x80, 0xff }
)

// At maps val within [minVal, maxVal] onto the ramp. Values outside the range
// are clamped and NaN maps to Undefined.
func (r Ramp) At(val, minVal, maxVal float64) color.RGBA {
	if math.IsNaN(val) { return Undefined }

	var t float64
	if d := maxVal - minVal; d <= 0 {
		t = 0.5
	} else {
		t = (val - minVal) / d
	}
	t = math.Min(math.Max(t, 0), 1)

	seg := t * float64(len(r) - 1)
	i := int(math.Floor(seg))
	if i >= len(r) - 1 { return r[len(r) - 1] }
	s := seg - float64(i)

	c0, c1 := r[i], r[i + 1]
	return color.RGBA{
		R: lerp8(c0.R, c1.R, s),
		G: lerp8(c0.G, c1.G, s),
		B: lerp8(c0.B, c1.B, s),
		A: 0xff,
	}
}

func lerp8(a, b uint8, s float64) uint8 {
	return uint8(math.Round(float64(a) + s*(float64(b) - float64(a))))
}
