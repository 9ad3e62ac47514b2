package drills

import (
	"fmt"
	"math"
	"time"

	"github.com/mviana/trainflow/internal/models"
)

// Scoring constants. Recency saturates at two weeks; the performance
// gap measures shortfall from an 85% accuracy target.
const (
	RecencySaturationDays = 14.0
	AccuracyTarget        = 85.0
	NeutralGapScore       = 25.0
	NoveltyScore          = 100.0
	TierBonusScore        = 25.0
	VarietyBonusScore     = 30.0

	NeedsPracticeBelow = 70.0
	DueForReviewDays   = 7.0
)

// Score computes the per-drill sub-scores, independent of any other
// drill. The variety bonus is applied during selection, not here.
func Score(d models.Drill, history models.DrillHistory, attempted bool, athleteTier models.Tier, now time.Time) models.ScoredDrill {
	sd := models.ScoredDrill{Drill: d}

	if !attempted {
		sd.Recency = 100
		sd.NoveltyBoost = NoveltyScore
	} else {
		days := now.Sub(*history.LastCompletedAt).Hours() / 24
		sd.Recency = math.Min(days/RecencySaturationDays, 1) * 100
	}

	if history.AverageAccuracy == nil {
		sd.PerformanceGap = NeutralGapScore
	} else {
		sd.PerformanceGap = math.Max(0, AccuracyTarget-*history.AverageAccuracy) / AccuracyTarget * 50
	}

	if d.Tier == athleteTier {
		sd.TierBonus = TierBonusScore
	}

	sd.TotalScore = sd.Recency + sd.PerformanceGap + sd.NoveltyBoost + sd.TierBonus
	sd.Reason, sd.ReasonText = reasonFor(d, history, attempted, athleteTier, now)
	return sd
}

// reasonFor picks the selection reason by fixed priority:
// never-attempted, needs-practice, due-for-review, tier-challenge, variety.
func reasonFor(d models.Drill, history models.DrillHistory, attempted bool, athleteTier models.Tier, now time.Time) (models.SelectionReason, string) {
	if !attempted {
		return models.ReasonNeverAttempted, "You haven't tried this drill yet"
	}
	if history.AverageAccuracy != nil && *history.AverageAccuracy < NeedsPracticeBelow {
		return models.ReasonNeedsPractice,
			fmt.Sprintf("Average accuracy %.0f%% is below the %.0f%% target", *history.AverageAccuracy, NeedsPracticeBelow)
	}
	if days := now.Sub(*history.LastCompletedAt).Hours() / 24; days >= DueForReviewDays {
		return models.ReasonDueForReview, fmt.Sprintf("Last attempted %.0f days ago", days)
	}
	if d.Tier == athleteTier {
		return models.ReasonTierChallenge, "Matches your current tier"
	}
	return models.ReasonVariety, "Keeps the session varied"
}
