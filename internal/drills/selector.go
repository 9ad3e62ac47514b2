package drills

import (
	"sort"
	"time"

	"github.com/mviana/trainflow/internal/models"
)

// SelectDaily ranks the unlocked drills and assembles the diversified
// daily set. Deterministic: ties break on drill ID, and the only inputs
// are the catalog slice, the aggregated history and the clock value
// passed in.
func SelectDaily(unlocked []models.Drill, history map[string]models.DrillHistory, athleteTier models.Tier, target int, now time.Time) []models.ScoredDrill {
	if target <= 0 || len(unlocked) == 0 {
		return nil
	}

	ranked := make([]models.ScoredDrill, 0, len(unlocked))
	for _, d := range unlocked {
		h, attempted := history[d.ID]
		ranked = append(ranked, Score(d, h, attempted, athleteTier, now))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	taken := make(map[string]bool)
	var result []models.ScoredDrill

	// Seed with one current-tier drill so the day always carries a
	// tier-appropriate challenge, even when its raw score is not on top.
	for _, sd := range ranked {
		if sd.Tier == athleteTier {
			sd.Reason = models.ReasonTierChallenge
			sd.ReasonText = "Matches your current tier"
			result = append(result, sd)
			taken[sd.ID] = true
			break
		}
	}

	// Fill remaining slots in rank order, crediting a variety bonus to
	// any candidate that introduces a new category.
	for _, sd := range ranked {
		if len(result) >= target {
			break
		}
		if taken[sd.ID] {
			continue
		}
		if len(result) > 0 && !hasCategory(result, sd.Category) {
			sd.VarietyBonus = VarietyBonusScore
			sd.TotalScore += VarietyBonusScore
		}
		result = append(result, sd)
		taken[sd.ID] = true
	}

	// If the set collapsed to a single category, swap the lowest-ranked
	// pick for the best unselected drill from an unrepresented category.
	if len(result) >= 2 && countCategories(result) < 2 {
		for _, sd := range ranked {
			if taken[sd.ID] || hasCategory(result, sd.Category) {
				continue
			}
			sd.Reason = models.ReasonVariety
			sd.ReasonText = "Swapped in for category variety"
			low := lowestRanked(result, ranked)
			delete(taken, result[low].ID)
			result[low] = sd
			taken[sd.ID] = true
			break
		}
	}

	return result
}

// ReasonsByDrill flattens a selection into the persisted reason map.
func ReasonsByDrill(selected []models.ScoredDrill) map[string]models.SelectionReason {
	reasons := make(map[string]models.SelectionReason, len(selected))
	for _, sd := range selected {
		reasons[sd.ID] = sd.Reason
	}
	return reasons
}

func hasCategory(set []models.ScoredDrill, c models.Category) bool {
	for _, sd := range set {
		if sd.Category == c {
			return true
		}
	}
	return false
}

func countCategories(set []models.ScoredDrill) int {
	seen := make(map[models.Category]bool)
	for _, sd := range set {
		seen[sd.Category] = true
	}
	return len(seen)
}

// lowestRanked finds the index into result of the drill with the worst
// rank position.
func lowestRanked(result []models.ScoredDrill, ranked []models.ScoredDrill) int {
	pos := make(map[string]int, len(ranked))
	for i, sd := range ranked {
		pos[sd.ID] = i
	}
	low := 0
	for i := 1; i < len(result); i++ {
		if pos[result[i].ID] > pos[result[low].ID] {
			low = i
		}
	}
	return low
}
