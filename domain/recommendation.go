package domain

// Age buckets used by both the request validator and the age-preference tables.
const (
	AgeTeens     = "10대"
	AgeTwenties  = "20대"
	AgeThirties  = "30대"
	AgeForties   = "40대"
	AgeFifties   = "50대"
	AgeSixtyPlus = "60대이상"
)

// Visit purposes.
const (
	PurposeMeal     = "meal"
	PurposeCafe     = "cafe"
	PurposeShopping = "shopping"
	PurposeCulture  = "culture"
	PurposeSport    = "sport"
	PurposeOther    = "other"
)

// Budget tiers.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// Priority axes that reweight the composite score.
const (
	PriorityAccessibility = "accessibility"
	PriorityTrend         = "trend"
	PriorityPrice         = "price"
	PriorityDiversity     = "diversity"
)

// Stability labels derived from the variation coefficient (or the
// activity score for the hotspot dataset shape).
const (
	StabilityVeryStable = "very-stable"
	StabilityStable     = "stable"
	StabilityNormal     = "normal"
	StabilityUnstable   = "unstable"
)

type RecommendationRequest struct {
	AgeGroup          string `json:"age_group"`
	Gender            string `json:"gender"`
	PreferredIndustry string `json:"preferred_industry"` // comma-separated free text
	TimePeriod        string `json:"time_period"`
	IsWeekend         bool   `json:"is_weekend"`
	Purpose           string `json:"purpose"`
	Budget            string `json:"budget"`
	Priority          string `json:"priority"`
}

type ScoredRecommendation struct {
	Region              string   `json:"region"`
	Score               float64  `json:"score"`
	Specialization      string   `json:"specialization"`
	SpecializationRatio *float64 `json:"specialization_ratio"`
	Stability           string   `json:"stability"`
	GrowthRate          *float64 `json:"growth_rate"`
	Reason              string   `json:"reason"`
	Fallback            bool     `json:"fallback"`
}

type UserProfile struct {
	AgeGroup           string   `json:"age_group"`
	Gender             string   `json:"gender"`
	PreferredIndustry  string   `json:"preferred_industry"`
	TimePeriod         string   `json:"time_period"`
	IsWeekend          bool     `json:"is_weekend"`
	MatchedPreferences []string `json:"matched_preferences"`
}

type RecommendationResponse struct {
	Recommendations []ScoredRecommendation `json:"recommendations"`
	UserProfile     UserProfile            `json:"user_profile"`
}
