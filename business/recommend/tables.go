package recommend

import "seoulmate/domain"

// Static lookup tables for the scorer. All of these are read-only after
// process start; never mutate them.

// agePreferredRegions maps an age bucket to an ordered list of regions,
// most preferred first. List position feeds the age sub-score.
var agePreferredRegions = map[string][]string{
	domain.AgeTeens:     {"강남역", "홍대", "신촌", "명동", "코엑스"},
	domain.AgeTwenties:  {"홍대", "강남역", "이태원", "건대", "신촌", "성수"},
	domain.AgeThirties:  {"강남역", "서초", "잠실", "여의도", "성수"},
	domain.AgeForties:   {"서초", "강남", "잠실", "여의도", "청담", "압구정"},
	domain.AgeFifties:   {"종로", "인사동", "서초", "강남", "청담", "압구정", "잠실"},
	domain.AgeSixtyPlus: {"종로", "인사동", "남대문", "동대문", "강동", "송파"},
}

// purposeIndustryKeywords maps a visit purpose to industry keywords that
// count as a purpose match against a region's specialization text.
var purposeIndustryKeywords = map[string][]string{
	domain.PurposeMeal:     {"한식", "중식", "일식", "양식", "요식", "맛집", "음식"},
	domain.PurposeCafe:     {"카페", "커피", "디저트", "베이커리"},
	domain.PurposeShopping: {"쇼핑", "패션", "의류", "백화점", "화장품"},
	domain.PurposeCulture:  {"영화", "공연", "문화", "전시", "여가"},
	domain.PurposeSport:    {"스포츠", "헬스", "운동", "골프"},
}

// industryKeywordBridges loosens free-text preferred-industry matching:
// if the user's term appears as a key, any of its category keywords
// found in the specialization text counts as a bridged match.
var industryKeywordBridges = map[string][]string{
	"화장품": {"화장품", "뷰티"},
	"맛집":  {"한식", "중식", "일식", "양식", "요식"},
	"옷":   {"패션", "의류"},
	"커피":  {"카페", "커피전문점"},
	"술":   {"주점", "술집", "호프"},
	"운동":  {"스포츠", "헬스", "피트니스"},
}

// Curated district lists driving the budget multiplier.
var premiumDistricts = []string{"청담", "압구정", "한남", "서초", "여의도", "강남"}

var affordableDistricts = []string{"신촌", "건대", "노량진", "동대문", "남대문", "망원", "신림"}

// regionNameSuffixes are markers stripped before the reduced
// keyword-prefix pass of the age matcher ("홍대 관광특구" → "홍대").
var regionNameSuffixes = []string{" 관광특구", "관광특구", " 일대", " 상권", "역"}
