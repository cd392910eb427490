package recommend

import (
	"fmt"
	"strings"

	"seoulmate/domain"
)

var purposeLabels = map[string]string{
	domain.PurposeMeal:     "식사",
	domain.PurposeCafe:     "카페",
	domain.PurposeShopping: "쇼핑",
	domain.PurposeCulture:  "문화생활",
	domain.PurposeSport:    "운동",
}

var priorityPhrases = map[string]string{
	domain.PriorityAccessibility: "접근성이 좋은 지역",
	domain.PriorityTrend:         "트렌디한 상권",
	domain.PriorityPrice:         "합리적인 가격대의 상권",
	domain.PriorityDiversity:     "다양한 업종이 밀집된 지역",
}

const fallbackReason = "상권 데이터 기반 추천 지역"

// buildReasons projects the breakdown's fired predicates into ordered
// human-readable justifications. It inspects only the Breakdown, never
// re-derives a predicate, so an emitted reason always reflects what the
// scorer computed.
func buildReasons(rec domain.RegionRecord, req domain.RecommendationRequest, b Breakdown) []string {
	var reasons []string

	if b.PurposeMatched {
		reasons = append(reasons, fmt.Sprintf("%s 목적에 잘 맞는 %s 특화 지역",
			purposeLabels[req.Purpose], rec.SpecializedIndustry))
	}

	if b.MatchedIndustry != "" {
		if rec.SpecializationRatio >= 50 {
			reasons = append(reasons, fmt.Sprintf("선호하시는 %s 업종이 강하게 특화된 지역 (특화율 %.0f%%)",
				b.MatchedIndustry, rec.SpecializationRatio))
		} else {
			reasons = append(reasons, fmt.Sprintf("선호하시는 %s 업종 상권이 형성된 지역", b.MatchedIndustry))
		}
	} else if b.BridgedKeyword != "" {
		reasons = append(reasons, fmt.Sprintf("%s 관련 업종이 자리잡은 지역", b.BridgedKeyword))
	}

	if b.AgeMatched || b.AgePartial {
		reasons = append(reasons, fmt.Sprintf("%s에게 인기 있는 지역", req.AgeGroup))
	}

	if phrase, ok := priorityPhrases[req.Priority]; ok {
		reasons = append(reasons, phrase)
	}

	if b.Stability >= 0.9 {
		reasons = append(reasons, "소비 패턴이 매우 안정적인 상권")
	}

	if b.TimeBonus > 0 {
		if req.IsWeekend {
			reasons = append(reasons, "주말 방문에 적합")
		} else {
			reasons = append(reasons, "평일 방문에 적합")
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, fallbackReason)
	}

	return reasons
}

func joinReasons(reasons []string) string {
	return strings.Join(reasons, ", ")
}
