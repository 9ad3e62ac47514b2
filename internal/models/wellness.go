package models

import "time"

// Checkpoint identifies which of the three daily wellness quizzes an
// answer set belongs to.
type Checkpoint string

const (
	CheckpointMorning     Checkpoint = "morning"
	CheckpointPreSession  Checkpoint = "pre_session"
	CheckpointPostSession Checkpoint = "post_session"
)

// MovementStatus is the per-body-area categorical answer.
type MovementStatus string

const (
	MovementFull    MovementStatus = "full"
	MovementLimited MovementStatus = "limited"
	MovementPain    MovementStatus = "pain"
)

// WellnessAnswers holds one checkpoint's quiz answers. Ratings are 1-5;
// nil means the question was not answered.
type WellnessAnswers struct {
	ID                int64                     `json:"id"`
	AthleteID         string                    `json:"athlete_id"`
	Date              string                    `json:"date"`
	Checkpoint        Checkpoint                `json:"checkpoint"`
	SleepRating       *int                      `json:"sleep_rating"`
	StressRating      *int                      `json:"stress_rating"`
	PhysicalReadiness *int                      `json:"physical_readiness"`
	Movement          map[string]MovementStatus `json:"movement"`
	CreatedAt         time.Time                 `json:"created_at"`
}

// TrainingLoad is one day's accumulated training load in arbitrary
// load units (typically duration x RPE, computed upstream).
type TrainingLoad struct {
	ID        int64   `json:"id"`
	AthleteID string  `json:"athlete_id"`
	Date      string  `json:"date"`
	Load      float64 `json:"load"`
}

// NutritionTotals is the same-day logged nutrition summary.
type NutritionTotals struct {
	AthleteID string  `json:"athlete_id"`
	Date      string  `json:"date"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
}

// CalendarEvent is an upcoming schedule entry. Only competitive events
// reduce the regulation calendar buffer.
type CalendarEvent struct {
	ID          int64  `json:"id"`
	AthleteID   string `json:"athlete_id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Competitive bool   `json:"competitive"`
}
