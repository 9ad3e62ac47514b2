package speed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/speed"
)

func TestEvaluateBreakDay_ConsecutiveHighRPE(t *testing.T) {
	prev := &models.SpeedSession{RPE: 9, SleepRating: 4}
	current := models.SpeedSession{RPE: 9, SleepRating: 4}

	isBreak, reasons := speed.EvaluateBreakDay(current, prev, nil)

	assert.True(t, isBreak)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "RPE")
}

func TestEvaluateBreakDay_SingleHighRPEIsFine(t *testing.T) {
	prev := &models.SpeedSession{RPE: 5, SleepRating: 4}
	current := models.SpeedSession{RPE: 9, SleepRating: 4}

	isBreak, _ := speed.EvaluateBreakDay(current, prev, nil)

	assert.False(t, isBreak)
}

func TestEvaluateBreakDay_PoorSleep(t *testing.T) {
	// Sleep rating 1 forces a break day even when everything else is fine.
	current := models.SpeedSession{RPE: 3, SleepRating: 1}

	isBreak, reasons := speed.EvaluateBreakDay(current, nil, nil)

	assert.True(t, isBreak)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "sleep")
}

func TestEvaluateBreakDay_UnsetSleepIsNotPoorSleep(t *testing.T) {
	current := models.SpeedSession{RPE: 3, SleepRating: 0}

	isBreak, _ := speed.EvaluateBreakDay(current, nil, nil)

	assert.False(t, isBreak)
}

func TestEvaluateBreakDay_PainAreas(t *testing.T) {
	current := models.SpeedSession{
		RPE:         3,
		SleepRating: 4,
		PainAreas:   []string{"hamstring", "calf", "lower back"},
	}

	isBreak, reasons := speed.EvaluateBreakDay(current, nil, nil)

	assert.True(t, isBreak)
	assert.Contains(t, reasons[0], "pain areas")
}

func TestEvaluateBreakDay_TwoSlowDistances(t *testing.T) {
	bests := map[string]float64{"10m": 1.60, "40yd": 4.50}
	current := models.SpeedSession{
		RPE:         4,
		SleepRating: 4,
		Times: models.SessionTimes{
			"10m":  {1.75}, // >5% slower
			"40yd": {4.90}, // >5% slower
		},
	}

	isBreak, _ := speed.EvaluateBreakDay(current, nil, bests)

	assert.True(t, isBreak)
}

func TestEvaluateBreakDay_OneSlowDistanceIsFine(t *testing.T) {
	bests := map[string]float64{"10m": 1.60, "40yd": 4.50}
	current := models.SpeedSession{
		RPE:         4,
		SleepRating: 4,
		Times: models.SessionTimes{
			"10m":  {1.75},
			"40yd": {4.55},
		},
	}

	isBreak, _ := speed.EvaluateBreakDay(current, nil, bests)

	assert.False(t, isBreak)
}

func TestBestAttempt(t *testing.T) {
	best, ok := speed.BestAttempt([]float64{4.50, 4.38, 4.61})
	require.True(t, ok)
	assert.Equal(t, 4.38, best)

	_, ok = speed.BestAttempt(nil)
	assert.False(t, ok)

	_, ok = speed.BestAttempt([]float64{0, -1})
	assert.False(t, ok, "non-positive times are not attempts")
}

func TestUpdateBests(t *testing.T) {
	bests := map[string]float64{"40yd": 4.50}
	times := models.SessionTimes{
		"40yd": {4.60, 4.42}, // best attempt improves
		"10m":  {1.70},       // new distance
	}

	updated, improved := speed.UpdateBests(bests, times)

	assert.Equal(t, []string{"10m", "40yd"}, improved)
	assert.Equal(t, 4.42, updated["40yd"])
	assert.Equal(t, 1.70, updated["10m"])
	assert.Equal(t, 4.50, bests["40yd"], "input map must not be mutated")
}

func TestUpdateBests_NoImprovement(t *testing.T) {
	bests := map[string]float64{"40yd": 4.50}

	updated, improved := speed.UpdateBests(bests, models.SessionTimes{"40yd": {4.70}})

	assert.Empty(t, improved)
	assert.Equal(t, 4.50, updated["40yd"])
}

func TestApplyProgress_ImprovementResetsPlateauCounter(t *testing.T) {
	now := time.Now()
	goals := models.SpeedGoals{
		PersonalBests:           map[string]float64{"40yd": 4.60},
		WeeksWithoutImprovement: 3,
		Status:                  models.ProgramActive,
	}
	session := models.SpeedSession{Times: models.SessionTimes{"40yd": {4.40}}}

	updated, result := speed.ApplyProgress(goals, session, speed.DefaultPlateauAfter, now)

	assert.Equal(t, []string{"40yd"}, result.Improved)
	assert.False(t, result.Plateaued)
	assert.Zero(t, updated.WeeksWithoutImprovement)
	assert.Equal(t, 4.40, updated.PersonalBests["40yd"])
}

func TestApplyProgress_FourStaleSessionsPlateau(t *testing.T) {
	now := time.Now()
	goals := models.SpeedGoals{
		PersonalBests: map[string]float64{"40yd": 4.40},
		Status:        models.ProgramActive,
	}
	session := models.SpeedSession{Times: models.SessionTimes{"40yd": {4.70}}}

	var result speed.ProgressResult
	for i := 0; i < speed.DefaultPlateauAfter; i++ {
		goals, result = speed.ApplyProgress(goals, session, speed.DefaultPlateauAfter, now)
	}

	assert.True(t, result.Plateaued)
	assert.Equal(t, speed.DefaultPlateauAfter, goals.WeeksWithoutImprovement)
	require.Len(t, goals.Adjustments, 1, "adjustment logged exactly once at the threshold")
	assert.Contains(t, goals.Adjustments[0].Reason, "plateau")
}

func TestApplyProgress_BreakDaySkipsBestsAndCounter(t *testing.T) {
	now := time.Now()
	goals := models.SpeedGoals{
		PersonalBests:           map[string]float64{"40yd": 4.60},
		WeeksWithoutImprovement: 2,
		Status:                  models.ProgramActive,
	}
	session := models.SpeedSession{
		IsBreakDay: true,
		Times:      models.SessionTimes{"40yd": {4.30}}, // would improve, must be ignored
	}

	updated, result := speed.ApplyProgress(goals, session, speed.DefaultPlateauAfter, now)

	assert.Empty(t, result.Improved)
	assert.Equal(t, 4.60, updated.PersonalBests["40yd"])
	assert.Equal(t, 2, updated.WeeksWithoutImprovement)
}

func TestApplyProgress_ActivatesProgram(t *testing.T) {
	now := time.Now()
	goals := models.SpeedGoals{Status: models.ProgramNotStarted}

	updated, _ := speed.ApplyProgress(goals, models.SpeedSession{}, speed.DefaultPlateauAfter, now)

	assert.Equal(t, models.ProgramActive, updated.Status)
}

func TestApplyProgress_RecomputesTier(t *testing.T) {
	now := time.Now()
	goals := models.SpeedGoals{Status: models.ProgramActive}
	session := models.SpeedSession{
		Times: models.SessionTimes{"40yd": {speed.ReferenceTimes["40yd"]}},
	}

	updated, _ := speed.ApplyProgress(goals, session, speed.DefaultPlateauAfter, now)

	assert.Equal(t, models.SpeedWorldClass, updated.Tier)
}

func TestNextUnlock(t *testing.T) {
	now := time.Now()

	canStart, unlockAt := speed.NextUnlock(nil, speed.DefaultCooldown, now)
	assert.True(t, canStart)
	assert.Equal(t, now, unlockAt)

	last := &models.SpeedSession{PerformedAt: now.Add(-6 * time.Hour)}
	canStart, unlockAt = speed.NextUnlock(last, speed.DefaultCooldown, now)
	assert.False(t, canStart)
	assert.Equal(t, last.PerformedAt.Add(speed.DefaultCooldown), unlockAt)

	last = &models.SpeedSession{PerformedAt: now.Add(-13 * time.Hour)}
	canStart, _ = speed.NextUnlock(last, speed.DefaultCooldown, now)
	assert.True(t, canStart)
}

func TestReadiness(t *testing.T) {
	assert.Equal(t, 70, speed.Readiness(3, 0))
	assert.Equal(t, 90, speed.Readiness(5, 0))
	assert.Equal(t, 30, speed.Readiness(1, 2))
	assert.Equal(t, 0, speed.Readiness(1, 10))
	assert.Equal(t, 70, speed.Readiness(0, 0), "unset sleep defaults to neutral")
}
