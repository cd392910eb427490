package recommend

import (
	"regexp"
	"strconv"
	"strings"

	"seoulmate/domain"
)

// Breakdown records every sub-score and fired predicate of one scoring
// pass. The reason generator and the debug endpoint read it, so reasons
// can never drift from what the arithmetic actually did.
type Breakdown struct {
	Industry  float64 `json:"industry"`
	Age       float64 `json:"age"`
	Stability float64 `json:"stability"`
	Diversity float64 `json:"diversity"`

	Weights             PriorityWeights `json:"weights"`
	SpecializationBonus float64         `json:"specialization_bonus"`
	BudgetMultiplier    float64         `json:"budget_multiplier"`
	TimeBonus           float64         `json:"time_bonus"`
	Total               float64         `json:"total"`

	PurposeMatched  bool   `json:"purpose_matched"`
	MatchedIndustry string `json:"matched_industry,omitempty"` // preferred-industry term that matched
	BridgedKeyword  string `json:"bridged_keyword,omitempty"`  // bridge-table key that fired
	AgeMatched      bool   `json:"age_matched"`
	AgeRank         int    `json:"age_rank"` // 0-based list position, meaningful only when AgeMatched
	AgePartial      bool   `json:"age_partial"`
	StabilityLabel  string `json:"stability_label"`
}

type Scorer struct {
	cfg ScoringConfig
}

func NewScorer(cfg ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes the composite score for one region against a request.
//
// Composition: the four weighted sub-scores share the headroom left
// above the floor after reserving room for the two bonuses, so a
// perfect region lands exactly on 100 without relying on the clamp:
//
//	total = floor + weighted*headroom + specBonus
//	total = total*budgetMultiplier + timeBonus, clamped to [floor, 100]
//
// where headroom = 100 - floor - specBonusCap - timeBonus.
func (s *Scorer) Score(rec domain.RegionRecord, req domain.RecommendationRequest) (float64, Breakdown) {
	b := Breakdown{
		Weights:          weightsFor(req.Priority),
		BudgetMultiplier: 1.0,
	}

	b.Industry = s.industryScore(rec, req, &b)
	b.Age = s.ageScore(rec, req, &b)
	b.Stability = s.stabilityScore(rec, &b)
	b.Diversity = s.diversityScore(rec)

	weighted := b.Industry*float64(b.Weights.Industry)/100 +
		b.Age*float64(b.Weights.Age)/100 +
		b.Stability*float64(b.Weights.Stability)/100 +
		b.Diversity*float64(b.Weights.Diversity)/100

	headroom := 100 - s.cfg.BaseFloor - s.cfg.SpecializationBonusCap - s.cfg.TimeBonus

	b.SpecializationBonus = clamp01(rec.SpecializationRatio/100) * s.cfg.SpecializationBonusCap
	b.BudgetMultiplier = s.budgetMultiplier(rec.Name, req.Budget)

	total := s.cfg.BaseFloor + weighted*headroom + b.SpecializationBonus
	total *= b.BudgetMultiplier

	if req.IsWeekend && b.Diversity > s.cfg.WeekendDiversityThreshold {
		b.TimeBonus = s.cfg.TimeBonus
	} else if !req.IsWeekend && b.Stability > s.cfg.WeekdayStabilityThreshold {
		b.TimeBonus = s.cfg.TimeBonus
	}
	total += b.TimeBonus

	if total < s.cfg.BaseFloor {
		total = s.cfg.BaseFloor
	}
	if total > 100 {
		total = 100
	}

	b.Total = total
	return total, b
}

// industryScore implements the priority cascade: purpose keywords beat
// an exact preferred-industry substring, which beats a bridged keyword
// match. An empty specialization text short-circuits everything.
func (s *Scorer) industryScore(rec domain.RegionRecord, req domain.RecommendationRequest, b *Breakdown) float64 {
	text := rec.SpecializedIndustry
	if text == "" {
		return 0.3
	}

	ratio := clamp01(rec.SpecializationRatio / 100)

	if keywords, ok := purposeIndustryKeywords[req.Purpose]; ok {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				b.PurposeMatched = true
				return 0.7 + 0.3*ratio
			}
		}
	}

	for _, term := range splitPreferred(req.PreferredIndustry) {
		if strings.Contains(text, term) {
			b.MatchedIndustry = term
			return 0.5 + 0.5*ratio
		}
	}

	for _, term := range splitPreferred(req.PreferredIndustry) {
		for _, kw := range industryKeywordBridges[term] {
			if strings.Contains(text, kw) {
				b.BridgedKeyword = term
				return 0.4 + 0.3*ratio
			}
		}
	}

	return 0.2
}

// ageScore walks the age bucket's preference list: exact name at
// position i scores 1.0-0.1*i, a substring overlap 0.7, a match after
// stripping zone suffixes 0.6, otherwise the neutral 0.5.
func (s *Scorer) ageScore(rec domain.RegionRecord, req domain.RecommendationRequest, b *Breakdown) float64 {
	preferred, ok := agePreferredRegions[req.AgeGroup]
	if !ok {
		return 0.5
	}

	for i, name := range preferred {
		if rec.Name == name {
			b.AgeMatched = true
			b.AgeRank = i
			score := 1.0 - 0.1*float64(i)
			if score < 0.5 {
				score = 0.5
			}
			return score
		}
	}

	for _, name := range preferred {
		if strings.Contains(rec.Name, name) || strings.Contains(name, rec.Name) {
			b.AgePartial = true
			return 0.7
		}
	}

	stripped := stripRegionSuffixes(rec.Name)
	if stripped != rec.Name {
		for _, name := range preferred {
			if strings.HasPrefix(name, stripped) || strings.HasPrefix(stripped, stripRegionSuffixes(name)) {
				b.AgePartial = true
				return 0.6
			}
		}
	}

	return 0.5
}

// stabilityScore prefers the variation coefficient (inverse stability
// proxy, plausible range (0,100)); the hotspot dataset shape has no CV
// and remaps its 0-100 activity score onto the same concept.
func (s *Scorer) stabilityScore(rec domain.RegionRecord, b *Breakdown) float64 {
	cv := rec.VariationCoefficient
	if cv > 0 && cv < 100 {
		switch {
		case cv < 16:
			b.StabilityLabel = domain.StabilityVeryStable
			return 1.0
		case cv < 18:
			b.StabilityLabel = domain.StabilityStable
			return 0.9
		case cv < 20:
			b.StabilityLabel = domain.StabilityNormal
			return 0.7
		case cv < 22:
			b.StabilityLabel = domain.StabilityNormal
			return 0.5
		default:
			b.StabilityLabel = domain.StabilityUnstable
			return 0.3
		}
	}

	if rec.ActivityScore > 0 {
		switch {
		case rec.ActivityScore >= 70:
			b.StabilityLabel = domain.StabilityStable
			return 0.9
		case rec.ActivityScore >= 50:
			b.StabilityLabel = domain.StabilityNormal
			return 0.7
		case rec.ActivityScore >= 30:
			b.StabilityLabel = domain.StabilityNormal
			return 0.5
		default:
			b.StabilityLabel = domain.StabilityUnstable
			return 0.3
		}
	}

	b.StabilityLabel = domain.StabilityNormal
	return 0.5
}

var categoryCountRe = regexp.MustCompile(`(\d+)\s*개`)

// diversityScore reads the qualitative diversity text first, then the
// "N개 업종" count it may embed, then the hotspot industry count.
func (s *Scorer) diversityScore(rec domain.RegionRecord) float64 {
	text := rec.DiversityText
	if text != "" {
		switch {
		case strings.Contains(text, "높"):
			return 0.9
		case strings.Contains(text, "중간"), strings.Contains(text, "보통"):
			return 0.7
		case strings.Contains(text, "낮"):
			return 0.4
		}
		if m := categoryCountRe.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return clamp01(float64(n) / 15)
			}
		}
	}

	if rec.IndustryCount > 0 {
		return clamp01(float64(rec.IndustryCount) / 5)
	}

	return 0.5
}

// budgetMultiplier rewards a match between an extreme budget tier and
// the curated district lists; mid-tier or unstated budgets stay at 1.0.
func (s *Scorer) budgetMultiplier(regionName, budget string) float64 {
	if budget != domain.BudgetLow && budget != domain.BudgetHigh {
		return 1.0
	}

	premium := containsAny(regionName, premiumDistricts)
	affordable := containsAny(regionName, affordableDistricts)

	switch {
	case budget == domain.BudgetHigh && premium:
		return s.cfg.BudgetBoost
	case budget == domain.BudgetLow && affordable:
		return s.cfg.BudgetBoost
	case budget == domain.BudgetHigh && affordable:
		return s.cfg.BudgetPenalty
	case budget == domain.BudgetLow && premium:
		return s.cfg.BudgetPenalty
	}
	return 1.0
}

func splitPreferred(preferred string) []string {
	if preferred == "" {
		return nil
	}
	parts := strings.Split(preferred, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func stripRegionSuffixes(name string) string {
	for _, suffix := range regionNameSuffixes {
		name = strings.TrimSuffix(name, suffix)
	}
	return strings.TrimSpace(name)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
