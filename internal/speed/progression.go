package speed

import (
	"fmt"
	"sort"
	"time"

	"github.com/mviana/trainflow/internal/models"
)

// Fixed heuristics behind break-day and plateau detection. These came
// from coaching practice, not a derivation; treat them as tunables.
const (
	RPEFatigueThreshold = 8
	SleepFloorRating    = 2
	PainAreaLimit       = 3
	SlowdownFraction    = 0.05
	DefaultPlateauAfter = 4
	DefaultCooldown     = 12 * time.Hour
)

// ProgressResult reports what a session save changed.
type ProgressResult struct {
	Improved  []string `json:"improved"`
	Plateaued bool     `json:"plateaued"`
}

// BestAttempt returns the minimum time across repeat attempts.
func BestAttempt(times []float64) (float64, bool) {
	best := 0.0
	found := false
	for _, t := range times {
		if t <= 0 {
			continue
		}
		if !found || t < best {
			best = t
			found = true
		}
	}
	return best, found
}

// EvaluateBreakDay applies the recovery heuristics against the session
// being saved and the previous one. Any single condition suffices; the
// returned reasons name every condition that fired.
func EvaluateBreakDay(current models.SpeedSession, previous *models.SpeedSession, bests map[string]float64) (bool, []string) {
	var reasons []string

	if previous != nil && current.RPE >= RPEFatigueThreshold && previous.RPE >= RPEFatigueThreshold {
		reasons = append(reasons, fmt.Sprintf("last two sessions at RPE %d or higher", RPEFatigueThreshold))
	}
	if current.SleepRating > 0 && current.SleepRating <= SleepFloorRating {
		reasons = append(reasons, fmt.Sprintf("sleep rating %d", current.SleepRating))
	}
	if len(current.PainAreas) >= PainAreaLimit {
		reasons = append(reasons, fmt.Sprintf("%d pain areas reported", len(current.PainAreas)))
	}
	if slow := slowDistances(current.Times, bests); len(slow) >= 2 {
		reasons = append(reasons, fmt.Sprintf("%d distances more than %.0f%% off personal best", len(slow), SlowdownFraction*100))
	}

	return len(reasons) > 0, reasons
}

// slowDistances lists distances whose best attempt in the session is
// more than SlowdownFraction slower than the stored personal best.
func slowDistances(times models.SessionTimes, bests map[string]float64) []string {
	var slow []string
	for dist, attempts := range times {
		pb, ok := bests[dist]
		if !ok || pb <= 0 {
			continue
		}
		best, ok := BestAttempt(attempts)
		if !ok {
			continue
		}
		if best > pb*(1+SlowdownFraction) {
			slow = append(slow, dist)
		}
	}
	sort.Strings(slow)
	return slow
}

// UpdateBests merges a session's times into the stored personal bests,
// returning the new map plus the distances that improved. The input map
// is not mutated.
func UpdateBests(bests map[string]float64, times models.SessionTimes) (map[string]float64, []string) {
	updated := make(map[string]float64, len(bests))
	for k, v := range bests {
		updated[k] = v
	}

	var improved []string
	for dist, attempts := range times {
		best, ok := BestAttempt(attempts)
		if !ok {
			continue
		}
		if prev, has := updated[dist]; !has || best < prev {
			updated[dist] = best
			improved = append(improved, dist)
		}
	}
	sort.Strings(improved)
	return updated, improved
}

// ApplyProgress folds a newly saved session into the goals record:
// personal bests, plateau counter, adjustment log and tier. Break days
// are recovery, they touch neither bests nor the plateau counter.
func ApplyProgress(goals models.SpeedGoals, session models.SpeedSession, plateauAfter int, now time.Time) (models.SpeedGoals, ProgressResult) {
	var result ProgressResult

	if goals.Status == "" || goals.Status == models.ProgramNotStarted {
		goals.Status = models.ProgramActive
	}

	if !session.IsBreakDay {
		updated, improved := UpdateBests(goals.PersonalBests, session.Times)
		goals.PersonalBests = updated
		result.Improved = improved

		if len(improved) > 0 {
			goals.WeeksWithoutImprovement = 0
		} else {
			goals.WeeksWithoutImprovement++
			if goals.WeeksWithoutImprovement == plateauAfter {
				goals.Adjustments = append(goals.Adjustments, models.Adjustment{
					Date:   now,
					Reason: fmt.Sprintf("plateau: %d sessions without improvement", plateauAfter),
				})
			}
		}
		result.Plateaued = goals.WeeksWithoutImprovement >= plateauAfter
	}

	goals.Tier, _ = ClassifyTier(goals.PersonalBests, ReferenceTimes)
	goals.UpdatedAt = now
	return goals, result
}

// Readiness is a quick informational score stored on the session,
// derived from sleep and reported pain. Not part of regulation scoring.
func Readiness(sleepRating, painCount int) int {
	if sleepRating <= 0 {
		sleepRating = 3
	}
	score := 70 + (sleepRating-3)*10 - painCount*10
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// NextUnlock reports whether a new session may start and the exact time
// the cooldown expires. A nil last session means no cooldown applies.
func NextUnlock(last *models.SpeedSession, cooldown time.Duration, now time.Time) (bool, time.Time) {
	if last == nil {
		return true, now
	}
	unlockAt := last.PerformedAt.Add(cooldown)
	return !now.Before(unlockAt), unlockAt
}
