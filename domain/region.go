package domain

// RegionRecord is one normalized row of the commercial-district dataset.
// Name resolution and numeric defaults happen in the field normalizer;
// by the time a record reaches the scorer Name is guaranteed non-empty.
type RegionRecord struct {
	Name                 string  `json:"name"`
	SpecializedIndustry  string  `json:"specialized_industry"`
	SpecializationRatio  float64 `json:"specialization_ratio"`
	VariationCoefficient float64 `json:"variation_coefficient"` // 0 means unavailable
	ActivityScore        float64 `json:"activity_score"`
	DiversityText        string  `json:"diversity_text"`
	IndustryCount        int     `json:"industry_count"`
}
