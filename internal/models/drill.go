package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Tier is the ordered skill level gating drill content:
// beginner < advanced < chaos.
type Tier int

const (
	TierBeginner Tier = iota
	TierAdvanced
	TierChaos
)

func (t Tier) String() string {
	switch t {
	case TierBeginner:
		return "beginner"
	case TierAdvanced:
		return "advanced"
	case TierChaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// ParseTier parses a tier name. Unknown names are an error so bad data
// in storage or requests surfaces instead of silently defaulting.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "beginner":
		return TierBeginner, nil
	case "advanced":
		return TierAdvanced, nil
	case "chaos":
		return TierChaos, nil
	default:
		return TierBeginner, fmt.Errorf("unknown tier %q", s)
	}
}

func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Category classifies what a drill trains. The set is fixed at build time.
type Category string

const (
	CategoryReaction     Category = "reaction"
	CategoryFootwork     Category = "footwork"
	CategoryTracking     Category = "tracking"
	CategoryCatching     Category = "catching"
	CategoryCoordination Category = "coordination"
)

// SelectionReason tags why a drill made the daily set.
type SelectionReason string

const (
	ReasonNeverAttempted SelectionReason = "never_attempted"
	ReasonNeedsPractice  SelectionReason = "needs_practice"
	ReasonDueForReview   SelectionReason = "due_for_review"
	ReasonTierChallenge  SelectionReason = "tier_challenge"
	ReasonVariety        SelectionReason = "variety"
)

// Drill is an immutable catalog entry.
type Drill struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Tier     Tier     `json:"tier"`
	Category Category `json:"category"`
	// CNSDemand is informational display metadata (low/medium/high);
	// it plays no part in scoring.
	CNSDemand string `json:"cns_demand"`
}

type DrillAttempt struct {
	ID          int64     `json:"id"`
	AthleteID   string    `json:"athlete_id"`
	Sport       string    `json:"sport"`
	DrillID     string    `json:"drill_id"`
	Accuracy    float64   `json:"accuracy"`
	CompletedAt time.Time `json:"completed_at"`
}

// DrillHistory summarizes an athlete's past attempts at one drill.
// Derived from the attempt log on demand, never persisted.
type DrillHistory struct {
	LastCompletedAt *time.Time `json:"last_completed_at"`
	AverageAccuracy *float64   `json:"average_accuracy"`
	CompletionCount int        `json:"completion_count"`
}

// ScoredDrill is a drill enriched with its selection sub-scores.
// Exists only for the duration of one selection computation, and as
// part of the persisted DailySelection.
type ScoredDrill struct {
	Drill
	Recency        float64         `json:"recency"`
	PerformanceGap float64         `json:"performance_gap"`
	NoveltyBoost   float64         `json:"novelty_boost"`
	TierBonus      float64         `json:"tier_bonus"`
	VarietyBonus   float64         `json:"variety_bonus"`
	TotalScore     float64         `json:"total_score"`
	Reason         SelectionReason `json:"reason"`
	ReasonText     string          `json:"reason_text"`
}

// DailySelection is the chosen drill set for one athlete/sport/day.
// At most one row exists per key; a refresh deletes and recreates it.
type DailySelection struct {
	ID        int64                      `json:"id"`
	AthleteID string                     `json:"athlete_id"`
	Sport     string                     `json:"sport"`
	Date      string                     `json:"date"`
	Tier      Tier                       `json:"tier"`
	Drills    []ScoredDrill              `json:"drills"`
	Reasons   map[string]SelectionReason `json:"reasons"`
	CreatedAt time.Time                  `json:"created_at"`
}

// ContainsTier reports whether any selected drill is of the given tier.
func (s *DailySelection) ContainsTier(tier Tier) bool {
	for _, d := range s.Drills {
		if d.Tier == tier {
			return true
		}
	}
	return false
}
