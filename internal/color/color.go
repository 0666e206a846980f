// Package color maps entry sizes onto a heat scale.
//
// Small entries render near white, large ones move through blue towards a
// dark red. Hue and saturation follow a logarithmic curve because sizes span
// many orders of magnitude.
package color

import (
	"fmt"
	"math"
)

type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

const (
	BlueHue = 210.0

	hueMin        = 1024.0 * 1024.0
	hueMax        = 1024.0 * 1024.0 * 1024.0 * 100.0
	saturationMax = 1024.0 * 1024.0 * 500.0
	valueMax      = 1024.0 * 1024.0 * 1024.0 * 200.0
	lowestValue   = 0.55

	logFactor = 1000.0
)

// ForSize returns the display colour for an entry of the given size.
func ForSize(size uint64) RGB {
	hue, saturation, value := sizeToHSV(size)
	return HSVToRGB(hue, saturation, value)
}

func sizeToHSV(size uint64) (float64, float64, float64) {
	s := float64(size)
	return calcHue(s, hueMin, hueMax, BlueHue),
		calcSaturation(s, saturationMax),
		calcValue(s, hueMax, valueMax, lowestValue)
}

func calcValue(size, valueMin, valueMax, lowest float64) float64 {
	over := math.Min(math.Max(size-valueMin, 0), valueMax)
	return math.Max(1.0-over/valueMax, lowest)
}

func calcSaturation(size, saturationMax float64) float64 {
	sat := (size / saturationMax) * logFactor
	sat = math.Log10(sat) / math.Log10(logFactor)
	return clamp(round2(sat), 0, 1)
}

func calcHue(size, hueMin, hueMax, baseHue float64) float64 {
	var scale float64
	switch {
	case size <= hueMin:
		scale = 1.0
	case size >= hueMax:
		scale = 0.0
	default:
		span := math.Abs(hueMax - hueMin)
		inRange := math.Max(math.Min(math.Max(size, hueMin), hueMax)-hueMin, 0)
		mid := (inRange / span) * logFactor
		scale = clamp(1.0-math.Log10(mid)/math.Log10(logFactor), 0, 1)
	}
	return round2(scale * baseHue)
}

// HSVToRGB converts hue in [0,360] and saturation, value in [0,1]. Values
// outside those ranges are a programming error and panic.
func HSVToRGB(hue, saturation, value float64) RGB {
	checkBounds(hue, saturation, value)

	c := value * saturation
	h := hue / 60.0
	x := c * (1.0 - math.Abs(math.Mod(h, 2.0)-1.0))
	m := value - c

	var r, g, b float64
	switch {
	case between(h, 0, 1):
		r, g, b = c, x, 0
	case between(h, 1, 2):
		r, g, b = x, c, 0
	case between(h, 2, 3):
		r, g, b = 0, c, x
	case between(h, 3, 4):
		r, g, b = 0, x, c
	case between(h, 4, 5):
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: uint8((r + m) * 255.0),
		G: uint8((g + m) * 255.0),
		B: uint8((b + m) * 255.0),
	}
}

func checkBounds(hue, saturation, value float64) {
	switch {
	case hue < 0 || hue > 360:
		badParam("hue", "0.0", "360.0", hue)
	case saturation < 0 || saturation > 1:
		badParam("saturation", "0.0", "1.0", saturation)
	case value < 0 || value > 1:
		badParam("value", "0.0", "1.0", value)
	}
}

func badParam(name, from, to string, supplied float64) {
	panic(fmt.Sprintf("param %s must be between %s and %s inclusive; was: %v", name, from, to, supplied))
}

func between(v, min, max float64) bool {
	return min <= v && v < max
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
