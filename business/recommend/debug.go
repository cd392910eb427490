package recommend

import (
	"context"
	"fmt"
	"sort"

	"seoulmate/domain"
	"seoulmate/pkg/logger"
)

// DebugRecommend returns detailed score components for inspection. It
// runs the same pipeline as Recommend but keeps every sub-score and
// skips the degraded fallback (placeholders have nothing to inspect).
func (s *Service) DebugRecommend(ctx context.Context, req domain.RecommendationRequest, topK int) ([]domain.DebugRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if topK <= 0 {
		topK = 10
	}

	rows, err := s.repo.LoadRows(ctx)
	if err != nil {
		return nil, err
	}

	records := normalizeStrict(rows)
	if len(records) == 0 {
		return nil, domain.ErrNoValidRegions
	}

	logger.Debug("debug_recommend",
		"rows", len(rows),
		"records", len(records),
		"priority", req.Priority,
	)

	out := make([]domain.DebugRecommendation, 0, len(records))
	for _, rec := range records {
		score, b := s.scorer.Score(rec, req)
		out = append(out, domain.DebugRecommendation{
			Region:              rec.Name,
			IndustryScore:       b.Industry,
			AgeScore:            b.Age,
			StabilityScore:      b.Stability,
			DiversityScore:      b.Diversity,
			SpecializationBonus: b.SpecializationBonus,
			BudgetMultiplier:    b.BudgetMultiplier,
			TimeBonus:           b.TimeBonus,
			FinalScore:          round2(score),
			Reasons:             buildReasons(rec, req, b),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})
	if len(out) > topK {
		out = out[:topK]
	}
	return out, nil
}
