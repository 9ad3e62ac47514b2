package drills

import (
	"github.com/mviana/trainflow/internal/models"
)

// BuildHistory reduces the raw attempt log to one summary per drill in
// a single grouping pass. Missing history is the dominant signal for
// selection, so drills with no attempts simply have no entry.
func BuildHistory(attempts []models.DrillAttempt) map[string]models.DrillHistory {
	byDrill := make(map[string]models.DrillHistory)
	sums := make(map[string]float64)

	for _, a := range attempts {
		h := byDrill[a.DrillID]
		h.CompletionCount++
		sums[a.DrillID] += a.Accuracy
		if h.LastCompletedAt == nil || a.CompletedAt.After(*h.LastCompletedAt) {
			t := a.CompletedAt
			h.LastCompletedAt = &t
		}
		byDrill[a.DrillID] = h
	}

	for id, h := range byDrill {
		avg := sums[id] / float64(h.CompletionCount)
		h.AverageAccuracy = &avg
		byDrill[id] = h
	}
	return byDrill
}
