package recommend

import "seoulmate/domain"

// PriorityWeights splits 100 points across the four scored factors.
type PriorityWeights struct {
	Industry  int `json:"industry"`
	Age       int `json:"age"`
	Stability int `json:"stability"`
	Diversity int `json:"diversity"`
}

func (w PriorityWeights) Sum() int {
	return w.Industry + w.Age + w.Stability + w.Diversity
}

// ScoringConfig parameterizes the single scoring engine. The source
// material carried several diverging formula variants (floor 20 vs 30,
// different bonus caps); this struct is the one knob set that expresses
// them, and DefaultScoringConfig is the canonical choice.
type ScoringConfig struct {
	// BaseFloor guarantees every region is rankable; scores are clamped
	// to [BaseFloor, 100].
	BaseFloor float64

	// SpecializationBonusCap caps the additive specialization bonus:
	// min(ratio/100, 1) * cap.
	SpecializationBonusCap float64

	// TimeBonus is the flat bonus added once when a weekend request hits
	// a diverse region or a weekday request hits a stable one.
	TimeBonus float64

	// Budget multiplier extremes.
	BudgetBoost   float64
	BudgetPenalty float64

	// Thresholds that gate the flat time bonus.
	WeekendDiversityThreshold float64
	WeekdayStabilityThreshold float64
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		BaseFloor:                 20,
		SpecializationBonusCap:    5,
		TimeBonus:                 5,
		BudgetBoost:               1.2,
		BudgetPenalty:             0.9,
		WeekendDiversityThreshold: 0.7,
		WeekdayStabilityThreshold: 0.8,
	}
}

var defaultWeights = PriorityWeights{Industry: 35, Age: 30, Stability: 20, Diversity: 15}

var priorityWeights = map[string]PriorityWeights{
	domain.PriorityAccessibility: {Industry: 20, Age: 15, Stability: 35, Diversity: 30},
	domain.PriorityTrend:         {Industry: 20, Age: 35, Stability: 10, Diversity: 35},
	domain.PriorityPrice:         {Industry: 25, Age: 15, Stability: 45, Diversity: 15},
	domain.PriorityDiversity:     {Industry: 20, Age: 15, Stability: 15, Diversity: 50},
}

// weightsFor resolves the weight tuple for a priority value; unknown or
// empty priorities get the balanced default.
func weightsFor(priority string) PriorityWeights {
	if w, ok := priorityWeights[priority]; ok {
		return w
	}
	return defaultWeights
}
