package regulation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mviana/trainflow/internal/models"
	"github.com/mviana/trainflow/internal/regulation"
)

func intp(v int) *int { return &v }

func today() string { return models.DateOf(time.Now()) }

func dayOffset(days int) string {
	return models.DateOf(time.Now().Add(time.Duration(days) * 24 * time.Hour))
}

func TestCompute_AllDefaultsNeverErrors(t *testing.T) {
	scores, composite, band := regulation.Compute(models.RegulationInputs{Date: today()})

	assert.Equal(t, 100, scores.Calendar, "no events means full calendar buffer")
	assert.Greater(t, composite, 0)
	assert.LessOrEqual(t, composite, 100)
	assert.NotEmpty(t, band)
}

func TestCompute_AllComponentsAt80YieldComposite80(t *testing.T) {
	// Weights sum to 1.0, so uniform components pass straight through.
	// sleep 4.2 isn't expressible via ratings, so verify with the weight
	// identity instead: weighted sum of identical values equals the value.
	sum := regulation.WeightSleep + regulation.WeightStress + regulation.WeightPhysical +
		regulation.WeightMovement + regulation.WeightTrainingLoad + regulation.WeightFuel +
		regulation.WeightCalendar
	assert.InDelta(t, 1.0, sum, 1e-9)

	v := 80.0
	composite := int(v*regulation.WeightSleep + v*regulation.WeightStress +
		v*regulation.WeightPhysical + v*regulation.WeightMovement +
		v*regulation.WeightTrainingLoad + v*regulation.WeightFuel +
		v*regulation.WeightCalendar + 0.5)
	assert.Equal(t, 80, composite)
	assert.Equal(t, models.BandGreen, regulation.BandFor(composite))
}

func TestBandFor_Boundaries(t *testing.T) {
	tests := []struct {
		composite int
		expected  models.Band
	}{
		{composite: 72, expected: models.BandGreen},
		{composite: 71, expected: models.BandYellow},
		{composite: 50, expected: models.BandYellow},
		{composite: 49, expected: models.BandRed},
		{composite: 100, expected: models.BandGreen},
		{composite: 0, expected: models.BandRed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, regulation.BandFor(tt.composite), "composite %d", tt.composite)
	}
}

func TestCompute_SleepRatingLinearMap(t *testing.T) {
	tests := []struct {
		rating   int
		expected int
	}{
		{rating: 1, expected: 0},
		{rating: 3, expected: 50},
		{rating: 5, expected: 100},
	}

	for _, tt := range tests {
		inputs := models.RegulationInputs{
			Date: today(),
			Wellness: []models.WellnessAnswers{
				{Checkpoint: models.CheckpointMorning, SleepRating: intp(tt.rating)},
			},
		}
		scores, _, _ := regulation.Compute(inputs)
		assert.Equal(t, tt.expected, scores.Sleep, "rating %d", tt.rating)
	}
}

func TestCompute_StressIsInverted(t *testing.T) {
	inputs := models.RegulationInputs{
		Date: today(),
		Wellness: []models.WellnessAnswers{
			{Checkpoint: models.CheckpointMorning, StressRating: intp(5)},
		},
	}
	scores, _, _ := regulation.Compute(inputs)
	assert.Equal(t, 0, scores.Stress, "max stress is the worst score")

	inputs.Wellness[0].StressRating = intp(1)
	scores, _, _ = regulation.Compute(inputs)
	assert.Equal(t, 100, scores.Stress)
}

func TestCompute_LaterCheckpointWins(t *testing.T) {
	inputs := models.RegulationInputs{
		Date: today(),
		Wellness: []models.WellnessAnswers{
			{Checkpoint: models.CheckpointPreSession, SleepRating: intp(5)},
			{Checkpoint: models.CheckpointMorning, SleepRating: intp(1)},
		},
	}

	scores, _, _ := regulation.Compute(inputs)

	assert.Equal(t, 100, scores.Sleep, "pre-session answer overrides morning")
}

func TestCompute_MovementAverage(t *testing.T) {
	inputs := models.RegulationInputs{
		Date: today(),
		Wellness: []models.WellnessAnswers{
			{
				Checkpoint: models.CheckpointMorning,
				Movement: map[string]models.MovementStatus{
					"hamstring": models.MovementFull,    // 100
					"shoulder":  models.MovementLimited, // 60
					"ankle":     models.MovementPain,    // 20
				},
			},
		},
	}

	scores, _, _ := regulation.Compute(inputs)

	assert.Equal(t, 60, scores.Movement)
}

func TestCompute_TrainingLoadBands(t *testing.T) {
	// 7-day average of 100/day.
	week := make([]models.TrainingLoad, 7)
	for i := range week {
		week[i] = models.TrainingLoad{Load: 100}
	}

	tests := []struct {
		name     string
		daily3   float64
		expected int
	}{
		{name: "much heavier recent load", daily3: 150, expected: 25},
		{name: "somewhat heavier", daily3: 125, expected: 50},
		{name: "normal", daily3: 100, expected: 70},
		{name: "lighter", daily3: 70, expected: 85},
		{name: "much lighter", daily3: 30, expected: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			three := []models.TrainingLoad{{Load: tt.daily3}, {Load: tt.daily3}, {Load: tt.daily3}}
			inputs := models.RegulationInputs{Date: today(), Load3Day: three, Load7Day: week}

			scores, _, _ := regulation.Compute(inputs)

			assert.Equal(t, tt.expected, scores.TrainingLoad)
		})
	}
}

func TestCompute_TrainingLoadDefaultsWithoutBaseline(t *testing.T) {
	inputs := models.RegulationInputs{
		Date:     today(),
		Load3Day: []models.TrainingLoad{{Load: 500}},
	}

	scores, _, _ := regulation.Compute(inputs)

	assert.Equal(t, 70, scores.TrainingLoad, "no 7-day baseline means neutral")
}

func TestCompute_FuelAdequacy(t *testing.T) {
	inputs := models.RegulationInputs{
		Date:         today(),
		Nutrition:    &models.NutritionTotals{Calories: 1600},
		EnergyTarget: 3200,
	}
	scores, _, _ := regulation.Compute(inputs)
	assert.Equal(t, 50, scores.Fuel)

	inputs.Nutrition.Calories = 5000
	scores, _, _ = regulation.Compute(inputs)
	assert.Equal(t, 100, scores.Fuel, "overeating caps at 100")
}

func TestCompute_CalendarBuffer(t *testing.T) {
	tests := []struct {
		name     string
		daysOut  int
		expected int
	}{
		{name: "event in 3 days", daysOut: 3, expected: 80},
		{name: "event in 2 days", daysOut: 2, expected: 60},
		{name: "event tomorrow", daysOut: 1, expected: 40},
		{name: "event today", daysOut: 0, expected: 40},
		{name: "event beyond window", daysOut: 5, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := models.RegulationInputs{
				Date: today(),
				Events: []models.CalendarEvent{
					{Date: dayOffset(tt.daysOut), Title: "match", Competitive: true},
				},
			}

			scores, _, _ := regulation.Compute(inputs)

			assert.Equal(t, tt.expected, scores.Calendar)
		})
	}
}

func TestCompute_NearestCompetitiveEventWins(t *testing.T) {
	inputs := models.RegulationInputs{
		Date: today(),
		Events: []models.CalendarEvent{
			{Date: dayOffset(3), Title: "regional", Competitive: true},
			{Date: dayOffset(1), Title: "scrimmage", Competitive: true},
			{Date: dayOffset(2), Title: "team dinner", Competitive: false},
		},
	}

	scores, _, _ := regulation.Compute(inputs)

	assert.Equal(t, 40, scores.Calendar)
}

func TestEstimateEnergyTarget(t *testing.T) {
	assert.Equal(t, 2880.0, regulation.EstimateEnergyTarget(180))
	assert.Zero(t, regulation.EstimateEnergyTarget(0))
}
