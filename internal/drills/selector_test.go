package drills_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mviana/trainflow/internal/catalog"
	"github.com/mviana/trainflow/internal/drills"
	"github.com/mviana/trainflow/internal/models"
)

func TestSelectDaily_FreshAthleteGetsBeginnerDrills(t *testing.T) {
	now := time.Now()
	unlocked := catalog.UnlockedFor(models.TierBeginner)

	selected := drills.SelectDaily(unlocked, nil, models.TierBeginner, 4, now)

	require.Len(t, selected, 4)
	for _, sd := range selected {
		assert.Equal(t, models.TierBeginner, sd.Tier)
		if sd.Reason != models.ReasonTierChallenge && sd.Reason != models.ReasonVariety {
			assert.Equal(t, models.ReasonNeverAttempted, sd.Reason)
		}
		assert.Equal(t, 100.0, sd.NoveltyBoost)
	}
}

func TestSelectDaily_AlwaysContainsCurrentTierDrill(t *testing.T) {
	now := time.Now()
	unlocked := catalog.UnlockedFor(models.TierChaos)

	// Give every chaos drill heavy recent history so raw scores bury them.
	hist := make(map[string]models.DrillHistory)
	for _, d := range unlocked {
		if d.Tier == models.TierChaos {
			last := now.Add(-1 * time.Hour)
			avg := 99.0
			hist[d.ID] = models.DrillHistory{LastCompletedAt: &last, AverageAccuracy: &avg, CompletionCount: 10}
		}
	}

	selected := drills.SelectDaily(unlocked, hist, models.TierChaos, 4, now)

	require.Len(t, selected, 4)
	found := false
	for _, sd := range selected {
		if sd.Tier == models.TierChaos {
			found = true
		}
	}
	assert.True(t, found, "selection must include a current-tier drill when one is unlocked")
}

func TestSelectDaily_CategoryVariety(t *testing.T) {
	now := time.Now()
	unlocked := catalog.UnlockedFor(models.TierAdvanced)

	selected := drills.SelectDaily(unlocked, nil, models.TierAdvanced, 4, now)

	require.Len(t, selected, 4)
	cats := make(map[models.Category]bool)
	for _, sd := range selected {
		cats[sd.Category] = true
	}
	assert.GreaterOrEqual(t, len(cats), 2, "at least two categories when the catalog has them")
}

func TestSelectDaily_VarietySwapWhenOneCategoryDominates(t *testing.T) {
	now := time.Now()
	unlocked := []models.Drill{
		{ID: "r1", Tier: models.TierBeginner, Category: models.CategoryReaction},
		{ID: "r2", Tier: models.TierBeginner, Category: models.CategoryReaction},
		{ID: "f1", Tier: models.TierBeginner, Category: models.CategoryFootwork},
	}

	// Make the footwork drill score far below both reaction drills.
	last := now.Add(-1 * time.Hour)
	avg := 99.0
	hist := map[string]models.DrillHistory{
		"f1": {LastCompletedAt: &last, AverageAccuracy: &avg, CompletionCount: 20},
	}

	selected := drills.SelectDaily(unlocked, hist, models.TierBeginner, 2, now)

	require.Len(t, selected, 2)
	cats := make(map[models.Category]bool)
	for _, sd := range selected {
		cats[sd.Category] = true
	}
	assert.Len(t, cats, 2, "swap pass must restore category variety")
}

func TestSelectDaily_FewerUnlockedThanTarget(t *testing.T) {
	now := time.Now()
	unlocked := []models.Drill{
		{ID: "only-one", Tier: models.TierBeginner, Category: models.CategoryReaction},
	}

	selected := drills.SelectDaily(unlocked, nil, models.TierBeginner, 4, now)

	assert.Len(t, selected, 1, "no padding when the catalog is short")
}

func TestSelectDaily_Deterministic(t *testing.T) {
	now := time.Now()
	unlocked := catalog.UnlockedFor(models.TierAdvanced)

	first := drills.SelectDaily(unlocked, nil, models.TierAdvanced, 4, now)
	second := drills.SelectDaily(unlocked, nil, models.TierAdvanced, 4, now)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].TotalScore, second[i].TotalScore)
		assert.Equal(t, first[i].Reason, second[i].Reason)
	}
}

func TestSelectDaily_VarietyBonusApplied(t *testing.T) {
	now := time.Now()
	unlocked := catalog.UnlockedFor(models.TierBeginner)

	selected := drills.SelectDaily(unlocked, nil, models.TierBeginner, 4, now)

	bonusSeen := false
	for _, sd := range selected[1:] {
		if sd.VarietyBonus == drills.VarietyBonusScore {
			bonusSeen = true
			assert.InDelta(t, sd.Recency+sd.PerformanceGap+sd.NoveltyBoost+sd.TierBonus+sd.VarietyBonus, sd.TotalScore, 0.001)
		}
	}
	assert.True(t, bonusSeen, "new categories after the first pick earn the variety bonus")
}

func TestSelectDaily_EmptyCatalog(t *testing.T) {
	selected := drills.SelectDaily(nil, nil, models.TierBeginner, 4, time.Now())
	assert.Empty(t, selected)
}

func TestReasonsByDrill(t *testing.T) {
	now := time.Now()
	selected := drills.SelectDaily(catalog.UnlockedFor(models.TierBeginner), nil, models.TierBeginner, 4, now)

	reasons := drills.ReasonsByDrill(selected)

	require.Len(t, reasons, len(selected))
	for _, sd := range selected {
		assert.Equal(t, sd.Reason, reasons[sd.ID])
	}
}
