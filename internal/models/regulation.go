package models

import "time"

// Band is the discrete regulation color band.
type Band string

const (
	BandGreen  Band = "green"
	BandYellow Band = "yellow"
	BandRed    Band = "red"
)

// ComponentScores are the seven bounded regulation components, each 0-100.
type ComponentScores struct {
	Sleep             int `json:"sleep"`
	Stress            int `json:"stress"`
	PhysicalReadiness int `json:"physical_readiness"`
	Movement          int `json:"movement"`
	TrainingLoad      int `json:"training_load"`
	Fuel              int `json:"fuel"`
	Calendar          int `json:"calendar"`
}

// RegulationInputs is the read-only daily snapshot the calculator
// reduces. Assembled fresh on every invocation; missing pieces are
// nil/empty, never an error.
type RegulationInputs struct {
	Date         string
	Wellness     []WellnessAnswers // answered checkpoints for the day
	Load3Day     []TrainingLoad    // rows in the trailing 3-day window
	Load7Day     []TrainingLoad    // rows in the trailing 7-day window
	Nutrition    *NutritionTotals
	EnergyTarget float64         // estimated kcal target, 0 if unknown
	Events       []CalendarEvent // 3-day lookahead window
}

// RegulationReport is the persisted daily readiness report. Upserted at
// most once per athlete/day; recomputation overwrites the prior row.
type RegulationReport struct {
	AthleteID   string          `json:"athlete_id"`
	Date        string          `json:"date"`
	Scores      ComponentScores `json:"scores"`
	Composite   int             `json:"composite"`
	Band        Band            `json:"band"`
	Headline    string          `json:"headline"`
	Summary     string          `json:"summary"`
	GeneratedAt time.Time       `json:"generated_at"`
}
