package main

import (
	"math"
	"os"
	"strconv"
)

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func FormatDistance(d float64, unit string) string {
	if math.IsInf(d, 1) {
		return "none"
	}
	return strconv.FormatFloat(d, 'f', 3, 64) + " " + unit
}
