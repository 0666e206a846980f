// Package units renders byte counts for display.
package units

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var scales = []struct {
	bytes uint64
	unit  string
}{
	{1 << 40, "TB"},
	{1 << 30, "GB"},
	{1 << 20, "MB"},
	{1 << 10, "KB"},
}

// FormatSize picks the largest 1024-based unit the value reaches and prints it
// with no decimals when whole, otherwise with two truncated decimals, so a value
// just under a unit boundary never displays as the boundary itself.
func FormatSize(size uint64) string {
	scaled, unit := scale(size)
	if scaled == math.Round(scaled) {
		return fmt.Sprintf("%.0f %s", scaled, unit)
	}
	truncated := math.Trunc(scaled*100) / 100
	return fmt.Sprintf("%.2f %s", truncated, unit)
}

func scale(size uint64) (float64, string) {
	for _, s := range scales {
		value := float64(size) / float64(s.bytes)
		if value >= 1.0 {
			return value, s.unit
		}
	}
	return float64(size), "B"
}

var printer = message.NewPrinter(language.English)

// ExactBytes prints the raw count with thousands separators, e.g. "1,048,576 bytes".
func ExactBytes(size uint64) string {
	return printer.Sprintf("%d bytes", size)
}
