package catalog

import "github.com/mviana/trainflow/internal/models"

// The drill catalog is fixed at build time. Order matters only for
// deterministic tie-breaking during selection, so drills are listed
// tier by tier.
var drills = []models.Drill{
	{ID: "beg-reaction-ball", Name: "Reaction Ball Drops", Tier: models.TierBeginner, Category: models.CategoryReaction, CNSDemand: "low"},
	{ID: "beg-wall-taps", Name: "Wall Ball Taps", Tier: models.TierBeginner, Category: models.CategoryCatching, CNSDemand: "low"},
	{ID: "beg-ladder-basic", Name: "Ladder Two-In", Tier: models.TierBeginner, Category: models.CategoryFootwork, CNSDemand: "low"},
	{ID: "beg-tennis-track", Name: "Tennis Ball Tracking", Tier: models.TierBeginner, Category: models.CategoryTracking, CNSDemand: "low"},
	{ID: "beg-cross-crawl", Name: "Cross Crawl March", Tier: models.TierBeginner, Category: models.CategoryCoordination, CNSDemand: "low"},
	{ID: "beg-juggle-scarves", Name: "Scarf Juggling", Tier: models.TierBeginner, Category: models.CategoryCoordination, CNSDemand: "low"},

	{ID: "adv-reaction-lights", Name: "Light Cue Sprints", Tier: models.TierAdvanced, Category: models.CategoryReaction, CNSDemand: "medium"},
	{ID: "adv-ladder-complex", Name: "Ladder Ickey Shuffle", Tier: models.TierAdvanced, Category: models.CategoryFootwork, CNSDemand: "medium"},
	{ID: "adv-ball-drop-sprint", Name: "Ball Drop Sprint Catch", Tier: models.TierAdvanced, Category: models.CategoryCatching, CNSDemand: "medium"},
	{ID: "adv-peripheral-track", Name: "Peripheral Number Calls", Tier: models.TierAdvanced, Category: models.CategoryTracking, CNSDemand: "medium"},
	{ID: "adv-juggle-balls", Name: "Three Ball Cascade", Tier: models.TierAdvanced, Category: models.CategoryCoordination, CNSDemand: "medium"},

	{ID: "chaos-dual-task", Name: "Dual Task Reaction", Tier: models.TierChaos, Category: models.CategoryReaction, CNSDemand: "high"},
	{ID: "chaos-mirror-chase", Name: "Mirror Chase", Tier: models.TierChaos, Category: models.CategoryFootwork, CNSDemand: "high"},
	{ID: "chaos-overload-track", Name: "Strobe Tracking Catch", Tier: models.TierChaos, Category: models.CategoryTracking, CNSDemand: "high"},
	{ID: "chaos-juggle-move", Name: "Juggle While Shuffling", Tier: models.TierChaos, Category: models.CategoryCoordination, CNSDemand: "high"},
}

// All returns the full catalog in canonical order.
func All() []models.Drill {
	out := make([]models.Drill, len(drills))
	copy(out, drills)
	return out
}

// ByID looks up one drill.
func ByID(id string) (models.Drill, bool) {
	for _, d := range drills {
		if d.ID == id {
			return d, true
		}
	}
	return models.Drill{}, false
}

// UnlockedFor returns every drill available at or below the given tier,
// in canonical order.
func UnlockedFor(tier models.Tier) []models.Drill {
	var out []models.Drill
	for _, d := range drills {
		if d.Tier <= tier {
			out = append(out, d)
		}
	}
	return out
}
