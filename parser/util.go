package parser

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

//*******************************************
// utility methods
//*******************************************

// Labels end up in whitespace separated output, so blanks are replaced.
func _SanitizeLabel(label string, id int64) string {
	label = strings.Join(strings.Fields(label), "_")
	if label == "" {
		return "n" + strconv.FormatInt(id, 10)
	}
	return label
}

func _IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func _GetFormat(filename string) InputFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV
	case ".pbf":
		return OSM
	default:
		return TMG
	}
}
