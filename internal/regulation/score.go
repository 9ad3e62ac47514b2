package regulation

import (
	"math"
	"time"

	"github.com/mviana/trainflow/internal/models"
)

// Component weights. They sum to 1.0; schedule pressure carries the
// largest share.
const (
	WeightSleep        = 0.15
	WeightStress       = 0.10
	WeightPhysical     = 0.10
	WeightMovement     = 0.15
	WeightTrainingLoad = 0.15
	WeightFuel         = 0.10
	WeightCalendar     = 0.25
)

// Neutral defaults used when a component's inputs are absent. Missing
// data is the expected case, never an error.
const (
	defaultSleep    = 60
	defaultStress   = 60
	defaultPhysical = 60
	defaultMovement = 80
	defaultLoad     = 70
	defaultFuel     = 60
	defaultCalendar = 100
)

// Band boundaries, inclusive on the high side.
const (
	greenFloor  = 72
	yellowFloor = 50
)

// CaloriesPerPound is the flat estimate standing in for a true energy
// expenditure model. A placeholder policy, not a validated formula.
const CaloriesPerPound = 16.0

// EstimateEnergyTarget computes the daily kcal target from bodyweight.
func EstimateEnergyTarget(weightLbs float64) float64 {
	if weightLbs <= 0 {
		return 0
	}
	return weightLbs * CaloriesPerPound
}

// BandFor maps a composite score to its color band.
func BandFor(composite int) models.Band {
	switch {
	case composite >= greenFloor:
		return models.BandGreen
	case composite >= yellowFloor:
		return models.BandYellow
	default:
		return models.BandRed
	}
}

// Compute reduces the gathered inputs into the seven component scores,
// the weighted composite and the color band.
func Compute(inputs models.RegulationInputs) (models.ComponentScores, int, models.Band) {
	scores := models.ComponentScores{
		Sleep:             ratingScore(latestRating(inputs.Wellness, sleepOf), defaultSleep, false),
		Stress:            ratingScore(latestRating(inputs.Wellness, stressOf), defaultStress, true),
		PhysicalReadiness: ratingScore(latestRating(inputs.Wellness, physicalOf), defaultPhysical, false),
		Movement:          movementScore(inputs.Wellness),
		TrainingLoad:      loadScore(inputs.Load3Day, inputs.Load7Day),
		Fuel:              fuelScore(inputs.Nutrition, inputs.EnergyTarget),
		Calendar:          calendarScore(inputs.Events, inputs.Date),
	}

	composite := int(math.Round(
		float64(scores.Sleep)*WeightSleep +
			float64(scores.Stress)*WeightStress +
			float64(scores.PhysicalReadiness)*WeightPhysical +
			float64(scores.Movement)*WeightMovement +
			float64(scores.TrainingLoad)*WeightTrainingLoad +
			float64(scores.Fuel)*WeightFuel +
			float64(scores.Calendar)*WeightCalendar))

	return scores, composite, BandFor(composite)
}

func sleepOf(w models.WellnessAnswers) *int    { return w.SleepRating }
func stressOf(w models.WellnessAnswers) *int   { return w.StressRating }
func physicalOf(w models.WellnessAnswers) *int { return w.PhysicalReadiness }

func checkpointOrder(cp models.Checkpoint) int {
	switch cp {
	case models.CheckpointMorning:
		return 0
	case models.CheckpointPreSession:
		return 1
	case models.CheckpointPostSession:
		return 2
	default:
		return -1
	}
}

// latestRating picks the answer from the latest checkpoint that
// answered the question (post beats pre beats morning).
func latestRating(wellness []models.WellnessAnswers, pick func(models.WellnessAnswers) *int) *int {
	var best *int
	bestOrder := -1
	for _, w := range wellness {
		v := pick(w)
		if v == nil {
			continue
		}
		if order := checkpointOrder(w.Checkpoint); order > bestOrder {
			best = v
			bestOrder = order
		}
	}
	return best
}

// ratingScore linearly maps a 1-5 rating to 0-100, inverting when
// higher ratings mean worse (stress).
func ratingScore(rating *int, neutral int, inverted bool) int {
	if rating == nil {
		return neutral
	}
	r := *rating
	if r < 1 {
		r = 1
	}
	if r > 5 {
		r = 5
	}
	if inverted {
		r = 6 - r
	}
	return int(math.Round(float64(r-1) / 4 * 100))
}

var movementValues = map[models.MovementStatus]float64{
	models.MovementFull:    100,
	models.MovementLimited: 60,
	models.MovementPain:    20,
}

// movementScore averages the per-body-area answers; later checkpoints
// override earlier ones per area.
func movementScore(wellness []models.WellnessAnswers) int {
	merged := make(map[string]models.MovementStatus)
	order := make(map[string]int)
	for _, w := range wellness {
		cpOrder := checkpointOrder(w.Checkpoint)
		for area, status := range w.Movement {
			if prev, ok := order[area]; !ok || cpOrder > prev {
				merged[area] = status
				order[area] = cpOrder
			}
		}
	}
	if len(merged) == 0 {
		return defaultMovement
	}

	var sum float64
	for _, status := range merged {
		sum += movementValues[status]
	}
	return int(math.Round(sum / float64(len(merged))))
}

// loadScore compares the 3-day rolling average against the 7-day one.
// A heavier-than-usual recent load drops the score; a lighter one
// raises it. Five bands.
func loadScore(load3, load7 []models.TrainingLoad) int {
	avg3 := sumLoads(load3) / 3
	avg7 := sumLoads(load7) / 7
	if avg7 <= 0 {
		return defaultLoad
	}

	deviation := (avg3 - avg7) / avg7
	switch {
	case deviation > 0.40:
		return 25
	case deviation > 0.15:
		return 50
	case deviation >= -0.15:
		return 70
	case deviation >= -0.40:
		return 85
	default:
		return 95
	}
}

func sumLoads(rows []models.TrainingLoad) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.Load
	}
	return sum
}

// fuelScore is logged calories over the estimated target, capped at 100.
func fuelScore(nutrition *models.NutritionTotals, target float64) int {
	if nutrition == nil || nutrition.Calories <= 0 || target <= 0 {
		return defaultFuel
	}
	return int(math.Round(math.Min(nutrition.Calories/target, 1) * 100))
}

// calendarScore reduces the default 100 when a competitive event falls
// inside the 3-day lookahead; the nearest qualifying event wins.
func calendarScore(events []models.CalendarEvent, date string) int {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return defaultCalendar
	}

	nearest := -1
	for _, e := range events {
		if !e.Competitive {
			continue
		}
		eventDay, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			continue
		}
		days := int(eventDay.Sub(day).Hours() / 24)
		if days < 0 || days > 3 {
			continue
		}
		if nearest == -1 || days < nearest {
			nearest = days
		}
	}

	switch {
	case nearest == -1:
		return defaultCalendar
	case nearest <= 1:
		return 40
	case nearest == 2:
		return 60
	default:
		return 80
	}
}
