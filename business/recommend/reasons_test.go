package recommend

import (
	"strings"
	"testing"

	"seoulmate/domain"
)

func TestBuildReasonsFollowBreakdown(t *testing.T) {
	rec := domain.RegionRecord{Name: "강남역", SpecializedIndustry: "한식,카페", SpecializationRatio: 60}
	req := domain.RecommendationRequest{AgeGroup: domain.AgeTwenties, PreferredIndustry: "한식"}

	reasons := buildReasons(rec, req, Breakdown{
		MatchedIndustry: "한식",
		AgeMatched:      true,
		AgeRank:         1,
		Stability:       1.0,
		TimeBonus:       5,
	})

	joined := joinReasons(reasons)
	if !strings.Contains(joined, "한식") {
		t.Errorf("reasons missing matched industry: %q", joined)
	}
	if !strings.Contains(joined, "20대") {
		t.Errorf("reasons missing age group: %q", joined)
	}
	if !strings.Contains(joined, "안정적") {
		t.Errorf("reasons missing stability: %q", joined)
	}
	if !strings.Contains(joined, "평일") {
		t.Errorf("reasons missing weekday phrase: %q", joined)
	}
}

// Phrasing strengthens at a specialization ratio of 50 or above.
func TestBuildReasonsRatioPhrasing(t *testing.T) {
	req := domain.RecommendationRequest{PreferredIndustry: "카페"}
	b := Breakdown{MatchedIndustry: "카페"}

	strong := joinReasons(buildReasons(domain.RegionRecord{Name: "x", SpecializationRatio: 55}, req, b))
	if !strings.Contains(strong, "강하게 특화") {
		t.Errorf("high-ratio reason not strengthened: %q", strong)
	}

	weak := joinReasons(buildReasons(domain.RegionRecord{Name: "x", SpecializationRatio: 40}, req, b))
	if strings.Contains(weak, "강하게 특화") {
		t.Errorf("low-ratio reason over-claims: %q", weak)
	}
}

func TestBuildReasonsFallback(t *testing.T) {
	reasons := buildReasons(domain.RegionRecord{Name: "x"}, domain.RecommendationRequest{}, Breakdown{})
	if len(reasons) != 1 || reasons[0] != fallbackReason {
		t.Errorf("no-predicate reasons = %v, want the generic fallback", reasons)
	}
}

// A rank-0 age match still earns the age phrase, and a zero-value
// breakdown never claims one.
func TestBuildReasonsAgeGate(t *testing.T) {
	req := domain.RecommendationRequest{AgeGroup: domain.AgeTwenties}
	rec := domain.RegionRecord{Name: "홍대"}

	with := joinReasons(buildReasons(rec, req, Breakdown{AgeMatched: true}))
	if !strings.Contains(with, "20대") {
		t.Errorf("rank-0 age match missing from reasons: %q", with)
	}

	without := joinReasons(buildReasons(rec, req, Breakdown{}))
	if strings.Contains(without, "20대") {
		t.Errorf("age phrase without an age match: %q", without)
	}
}

// A reason mentions the weekend only when the bonus actually fired.
func TestBuildReasonsTimeBonusGated(t *testing.T) {
	rec := domain.RegionRecord{Name: "x"}
	req := domain.RecommendationRequest{IsWeekend: true}

	without := joinReasons(buildReasons(rec, req, Breakdown{}))
	if strings.Contains(without, "주말") {
		t.Errorf("weekend phrase without bonus: %q", without)
	}

	with := joinReasons(buildReasons(rec, req, Breakdown{TimeBonus: 5}))
	if !strings.Contains(with, "주말") {
		t.Errorf("weekend phrase missing with bonus: %q", with)
	}
}
