package recommend

import (
	"sort"
	"strconv"
	"strings"

	"seoulmate/domain"
)

// The per-district and per-hotspot dataset shapes name the same logical
// fields differently; each logical field resolves through a prioritized
// alias list so the scorer only ever sees one shape.
var (
	nameAliases      = []string{"핫스팟명", "지역명", "상권명", "구"}
	industryAliases  = []string{"특화업종", "주요특화업종"}
	ratioAliases     = []string{"특화비율", "특화율"}
	cvAliases        = []string{"변동계수(%)", "변동계수"}
	activityAliases  = []string{"활성도점수", "실시간지역프로필점수", "상권활성도"}
	diversityAliases = []string{"업종다양성"}
	industryCntAlias = []string{"업종수"}
)

// NormalizeRecord resolves a raw CSV row into a RegionRecord. The second
// return is false when no name column resolves; such rows must never be
// scored.
func NormalizeRecord(raw map[string]string) (domain.RegionRecord, bool) {
	name := firstNonEmpty(raw, nameAliases)
	if name == "" {
		return domain.RegionRecord{}, false
	}

	return domain.RegionRecord{
		Name:                 name,
		SpecializedIndustry:  firstNonEmpty(raw, industryAliases),
		SpecializationRatio:  parseFloatOr(raw, ratioAliases, 0),
		VariationCoefficient: parseFloatOr(raw, cvAliases, 0), // 0 = unavailable
		ActivityScore:        parseFloatOr(raw, activityAliases, 0),
		DiversityText:        firstNonEmpty(raw, diversityAliases),
		IndustryCount:        parseIntOr(raw, industryCntAlias, 0),
	}, true
}

// looseName is the widened name resolution used only by the selector's
// fallback passes: after the aliases, the first textual cell in sorted
// column order qualifies. Columns are visited in a fixed order so the
// same row always resolves to the same name, and numeric cells never
// become names.
func looseName(raw map[string]string) string {
	if name := firstNonEmpty(raw, nameAliases); name != "" {
		return name
	}

	cols := make([]string, 0, len(raw))
	for c := range raw {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	for _, c := range cols {
		v := strings.TrimSpace(raw[c])
		if v == "" || v == "-" || looksNumeric(v) {
			continue
		}
		return v
	}
	return ""
}

// looksNumeric reports whether a cell is a bare number, allowing the
// % and 개 suffixes the numeric columns carry.
func looksNumeric(s string) bool {
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSuffix(s, "개")
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func firstNonEmpty(raw map[string]string, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(raw[k]); v != "" && v != "-" {
			return v
		}
	}
	return ""
}

func parseFloatOr(raw map[string]string, keys []string, def float64) float64 {
	s := firstNonEmpty(raw, keys)
	if s == "" {
		return def
	}
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

func parseIntOr(raw map[string]string, keys []string, def int) int {
	s := firstNonEmpty(raw, keys)
	if s == "" {
		return def
	}
	s = strings.TrimSuffix(s, "개")
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
