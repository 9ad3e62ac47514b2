package speed

import (
	"math"

	"github.com/mviana/trainflow/internal/models"
)

// ReferenceTimes are the per-distance world-class times, in seconds.
// Personal bests are scored as a percentage of these.
var ReferenceTimes = map[string]float64{
	"10m":  1.50,
	"20m":  2.60,
	"40yd": 4.25,
	"100m": 9.80,
}

// Tier bands over the average percent-of-reference. The highest band
// whose lower bound the average meets wins.
const (
	worldClassFloor  = 95.0
	eliteFloor       = 80.0
	competitiveFloor = 60.0
)

// PercentOfReference maps a personal best to 0-100 against a reference
// time. A faster-than-reference best caps at 100.
func PercentOfReference(reference, best float64) float64 {
	if best <= 0 || reference <= 0 {
		return 0
	}
	return math.Min(reference/best, 1) * 100
}

// ClassifyTier averages percent-of-reference over every distance with
// both a personal best and a reference, then maps the average to a
// tier. Distances without data are excluded, not treated as zero; no
// data at all means the lowest tier.
func ClassifyTier(bests map[string]float64, references map[string]float64) (models.SpeedTier, float64) {
	var sum float64
	var n int
	for dist, best := range bests {
		ref, ok := references[dist]
		if !ok || best <= 0 {
			continue
		}
		sum += PercentOfReference(ref, best)
		n++
	}
	if n == 0 {
		return models.SpeedDeveloping, 0
	}

	avg := sum / float64(n)
	switch {
	case avg >= worldClassFloor:
		return models.SpeedWorldClass, avg
	case avg >= eliteFloor:
		return models.SpeedElite, avg
	case avg >= competitiveFloor:
		return models.SpeedCompetitive, avg
	default:
		return models.SpeedDeveloping, avg
	}
}
