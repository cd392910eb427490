package recommend

import (
	"sort"

	"seoulmate/domain"
	"seoulmate/pkg/logger"
)

// defaultMinValid is the point below which the selector widens its
// passes and, as a last resort, serves placeholder results.
const defaultMinValid = 3

// Placeholder scores for the degraded fallback, decreasing per rank.
const (
	fallbackBaseScore = 50.0
	fallbackScoreStep = 5.0
)

// rankedResult pairs a recommendation with the breakdown that produced
// it, so duplicate region names keep their own breakdowns through
// ranking and profile construction.
type rankedResult struct {
	rec domain.ScoredRecommendation
	b   Breakdown
}

// selectTop ranks scored results descending and truncates to topK.
// The sort is stable: equal scores keep input (file) order. Results
// with an empty region name never survive this function.
func selectTop(results []rankedResult, topK int) []rankedResult {
	valid := results[:0:0]
	for _, r := range results {
		if r.rec.Region != "" {
			valid = append(valid, r)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].rec.Score > valid[j].rec.Score
	})

	if len(valid) > topK {
		valid = valid[:topK]
	}
	return valid
}

// fallbackResults builds placeholder recommendations from the first
// topK raw rows in file order, with synthetically decreasing scores and
// a generic reason. Every emitted entry is flagged so callers can tell
// degraded output from genuine scoring.
func fallbackResults(rows []map[string]string, topK int) []domain.ScoredRecommendation {
	out := make([]domain.ScoredRecommendation, 0, topK)
	for _, row := range rows {
		if len(out) == topK {
			break
		}
		name := looseName(row)
		if name == "" {
			continue
		}
		out = append(out, domain.ScoredRecommendation{
			Region:    name,
			Score:     fallbackBaseScore - fallbackScoreStep*float64(len(out)),
			Stability: domain.StabilityNormal,
			Reason:    fallbackReason,
			Fallback:  true,
		})
	}

	if len(out) > 0 {
		logger.Warn("serving degraded fallback recommendations",
			"raw_rows", len(rows), "served", len(out))
	}
	return out
}
