package domain

// RecommendationStats carries diagnostic counts for one recommendation
// pass; error responses may expose them in an optional debug block.
type RecommendationStats struct {
	RowsParsed    int  `json:"records_parsed"`
	RecordsScored int  `json:"records_scored"`
	ResultsValid  int  `json:"records_valid"`
	Degraded      bool `json:"degraded"`
}

type DebugRecommendation struct {
	Region              string   `json:"region"`
	IndustryScore       float64  `json:"industry_score"`       // 0-1 before weighting
	AgeScore            float64  `json:"age_score"`            // 0-1
	StabilityScore      float64  `json:"stability_score"`      // 0-1
	DiversityScore      float64  `json:"diversity_score"`      // 0-1
	SpecializationBonus float64  `json:"specialization_bonus"` // additive points
	BudgetMultiplier    float64  `json:"budget_multiplier"`
	TimeBonus           float64  `json:"time_bonus"`
	FinalScore          float64  `json:"final_score"`
	Reasons             []string `json:"reasons"`
}
