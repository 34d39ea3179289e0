// Package services provides the quoting engine: area management, component
// merging, estimation request assembly, cost reconciliation, and export data.
package services

import (
	"math"
	"strconv"
	"strings"
)

// parseDimension converts a raw millimetre string into a float64.
// Missing, non-numeric, or non-positive values all yield 0.
func parseDimension(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FloorArea computes the floor area in square metres from millimetre inputs,
// rounded to 2 decimals. Invalid input yields 0.
func FloorArea(length, width string) float64 {
	l := parseDimension(length)
	w := parseDimension(width)
	if l == 0 || w == 0 {
		return 0
	}
	return round2((l / 1000) * (w / 1000))
}

// WallArea computes the wall area in square metres for a rectangular room
// from millimetre inputs, rounded to 2 decimals. All three dimensions must
// be valid, otherwise 0.
func WallArea(length, width, height string) float64 {
	l := parseDimension(length)
	w := parseDimension(width)
	h := parseDimension(height)
	if l == 0 || w == 0 || h == 0 {
		return 0
	}
	return round2(2 * (l/1000 + w/1000) * (h / 1000))
}

// TotalFloorArea sums the floor area of every area, rounding only the final
// sum so small rooms are not lost to per-term rounding.
func TotalFloorArea(areas []*Area) float64 {
	var sum float64
	for _, a := range areas {
		l := parseDimension(a.Measurements.Length)
		w := parseDimension(a.Measurements.Width)
		if l == 0 || w == 0 {
			continue
		}
		sum += (l / 1000) * (w / 1000)
	}
	return round2(sum)
}

// TotalWallArea sums the wall area of every area, rounding only the final sum.
func TotalWallArea(areas []*Area) float64 {
	var sum float64
	for _, a := range areas {
		l := parseDimension(a.Measurements.Length)
		w := parseDimension(a.Measurements.Width)
		h := parseDimension(a.Measurements.Height)
		if l == 0 || w == 0 || h == 0 {
			continue
		}
		sum += 2 * (l/1000 + w/1000) * (h / 1000)
	}
	return round2(sum)
}
