package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SpeedTier is the ordered sprint ability classification.
type SpeedTier int

const (
	SpeedDeveloping SpeedTier = iota
	SpeedCompetitive
	SpeedElite
	SpeedWorldClass
)

func (t SpeedTier) String() string {
	switch t {
	case SpeedDeveloping:
		return "developing"
	case SpeedCompetitive:
		return "competitive"
	case SpeedElite:
		return "elite"
	case SpeedWorldClass:
		return "world_class"
	default:
		return "unknown"
	}
}

// ParseSpeedTier parses a speed tier name.
func ParseSpeedTier(s string) (SpeedTier, error) {
	switch s {
	case "developing":
		return SpeedDeveloping, nil
	case "competitive":
		return SpeedCompetitive, nil
	case "elite":
		return SpeedElite, nil
	case "world_class":
		return SpeedWorldClass, nil
	default:
		return SpeedDeveloping, fmt.Errorf("unknown speed tier %q", s)
	}
}

func (t SpeedTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *SpeedTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSpeedTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ProgramStatus tracks where an athlete is in the speed program.
type ProgramStatus string

const (
	ProgramNotStarted ProgramStatus = "not_started"
	ProgramActive     ProgramStatus = "active"
	ProgramPaused     ProgramStatus = "paused"
)

// SessionTimes maps a distance label (e.g. "10m", "40yd") to the times
// of each repeat attempt at that distance, in seconds.
type SessionTimes map[string][]float64

// SpeedSession is one logged timed-sprint session. Append-only: never
// updated after creation. SessionNumber increases strictly per
// athlete/sport; the caller enforces single-writer semantics.
type SpeedSession struct {
	ID              int64        `json:"id"`
	AthleteID       string       `json:"athlete_id"`
	Sport           string       `json:"sport"`
	SessionNumber   int          `json:"session_number"`
	PerformedAt     time.Time    `json:"performed_at"`
	Times           SessionTimes `json:"times"`
	RPE             int          `json:"rpe"`
	PreFeel         string       `json:"pre_feel"`
	PostFeel        string       `json:"post_feel"`
	SleepRating     int          `json:"sleep_rating"`
	PainAreas       []string     `json:"pain_areas"`
	DrillsPerformed []string     `json:"drills_performed"`
	IsBreakDay      bool         `json:"is_break_day"`
	ReadinessScore  int          `json:"readiness_score"`
}

// Adjustment is one entry in the goals adjustment-history log.
type Adjustment struct {
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}

// SpeedGoals is the per-athlete/sport progression record. Tier is
// recomputed from personal bests, never hand-set.
type SpeedGoals struct {
	AthleteID               string             `json:"athlete_id"`
	Sport                   string             `json:"sport"`
	Tier                    SpeedTier          `json:"tier"`
	PersonalBests           map[string]float64 `json:"personal_bests"`
	WeeksWithoutImprovement int                `json:"weeks_without_improvement"`
	Adjustments             []Adjustment       `json:"adjustments"`
	Status                  ProgramStatus      `json:"status"`
	UpdatedAt               time.Time          `json:"updated_at"`
}
