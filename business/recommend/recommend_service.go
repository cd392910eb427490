package recommend

import (
	"context"
	"fmt"
	"sort"

	"seoulmate/domain"
)

// DatasetRepository loads the raw dataset rows for one request. Header
// names map to raw cell values; normalization happens here in the
// business layer so both dataset shapes share one scoring path.
type DatasetRepository interface {
	LoadRows(ctx context.Context) ([]map[string]string, error)
}

type Service struct {
	repo     DatasetRepository
	scorer   *Scorer
	minValid int
}

// NewService builds the recommendation service. minValid is the result
// count below which the selector widens and finally degrades; values
// below 1 fall back to the default of 3.
func NewService(repo DatasetRepository, cfg ScoringConfig, minValid int) *Service {
	if minValid <= 0 {
		minValid = defaultMinValid
	}
	return &Service{
		repo:     repo,
		scorer:   NewScorer(cfg),
		minValid: minValid,
	}
}

// Recommend runs the full pipeline: load rows, normalize, score every
// region, rank, truncate to topK. When fewer than minValid results
// survive it widens name resolution and finally serves flagged
// placeholder results rather than failing the request.
func (s *Service) Recommend(ctx context.Context, req domain.RecommendationRequest, topK int) (domain.RecommendationResponse, domain.RecommendationStats, error) {
	var stats domain.RecommendationStats

	if err := ctx.Err(); err != nil {
		return domain.RecommendationResponse{}, stats, fmt.Errorf("context error: %w", err)
	}
	if topK <= 0 {
		topK = 10
	}

	rows, err := s.repo.LoadRows(ctx)
	if err != nil {
		return domain.RecommendationResponse{}, stats, err
	}
	stats.RowsParsed = len(rows)

	records := normalizeStrict(rows)
	ranked := s.scoreAll(records, req)
	stats.RecordsScored = len(ranked)

	results := selectTop(ranked, topK)

	if len(results) < s.minValid {
		// widened pass: take rows whose name only resolves loosely
		widened := normalizeLoose(rows)
		if len(widened) > len(records) {
			ranked = s.scoreAll(widened, req)
			stats.RecordsScored = len(ranked)
			results = selectTop(ranked, topK)
		}
	}

	profile := domain.UserProfile{
		AgeGroup:           req.AgeGroup,
		Gender:             req.Gender,
		PreferredIndustry:  req.PreferredIndustry,
		TimePeriod:         req.TimePeriod,
		IsWeekend:          req.IsWeekend,
		MatchedPreferences: []string{},
	}

	if len(results) < s.minValid {
		fallback := fallbackResults(rows, topK)
		if len(fallback) == 0 {
			return domain.RecommendationResponse{}, stats, domain.ErrNoValidRegions
		}
		stats.Degraded = true
		stats.ResultsValid = len(fallback)
		return domain.RecommendationResponse{
			Recommendations: fallback,
			UserProfile:     profile,
		}, stats, nil
	}
	stats.ResultsValid = len(results)

	recommendations := make([]domain.ScoredRecommendation, len(results))
	for i, r := range results {
		recommendations[i] = r.rec
	}
	profile.MatchedPreferences = matchedPreferences(results)

	return domain.RecommendationResponse{
		Recommendations: recommendations,
		UserProfile:     profile,
	}, stats, nil
}

// Regions returns every normalized record, for the dataset-browsing
// endpoint and the trend map.
func (s *Service) Regions(ctx context.Context) ([]domain.RegionRecord, error) {
	rows, err := s.repo.LoadRows(ctx)
	if err != nil {
		return nil, err
	}
	records := normalizeStrict(rows)
	if len(records) == 0 {
		return nil, domain.ErrNoValidRegions
	}
	return records, nil
}

// Industries returns the sorted distinct specialized industries present
// in the dataset.
func (s *Service) Industries(ctx context.Context) ([]string, error) {
	records, err := s.Regions(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	industries := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.SpecializedIndustry == "" {
			continue
		}
		if _, ok := seen[rec.SpecializedIndustry]; ok {
			continue
		}
		seen[rec.SpecializedIndustry] = struct{}{}
		industries = append(industries, rec.SpecializedIndustry)
	}
	sort.Strings(industries)
	return industries, nil
}

func (s *Service) scoreAll(records []domain.RegionRecord, req domain.RecommendationRequest) []rankedResult {
	ranked := make([]rankedResult, 0, len(records))
	for _, rec := range records {
		score, b := s.scorer.Score(rec, req)

		var ratio *float64
		if rec.SpecializedIndustry != "" {
			r := rec.SpecializationRatio
			ratio = &r
		}

		ranked = append(ranked, rankedResult{
			rec: domain.ScoredRecommendation{
				Region:              rec.Name,
				Score:               round2(score),
				Specialization:      rec.SpecializedIndustry,
				SpecializationRatio: ratio,
				Stability:           b.StabilityLabel,
				Reason:              joinReasons(buildReasons(rec, req, b)),
			},
			b: b,
		})
	}
	return ranked
}

func normalizeStrict(rows []map[string]string) []domain.RegionRecord {
	records := make([]domain.RegionRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := NormalizeRecord(row); ok {
			records = append(records, rec)
		}
	}
	return records
}

// normalizeLoose also admits rows whose name only resolves through the
// widened lookup; numeric fields normalize identically.
func normalizeLoose(rows []map[string]string) []domain.RegionRecord {
	records := make([]domain.RegionRecord, 0, len(rows))
	for _, row := range rows {
		rec, ok := NormalizeRecord(row)
		if !ok {
			name := looseName(row)
			if name == "" {
				continue
			}
			rec = domain.RegionRecord{Name: name}
			if r, ok2 := NormalizeRecord(withName(row, name)); ok2 {
				rec = r
			}
		}
		records = append(records, rec)
	}
	return records
}

func withName(row map[string]string, name string) map[string]string {
	out := make(map[string]string, len(row)+1)
	for k, v := range row {
		out[k] = v
	}
	out[nameAliases[0]] = name
	return out
}

// matchedPreferences lists the user's preferred-industry terms that the
// returned recommendations actually matched on.
func matchedPreferences(results []rankedResult) []string {
	seen := make(map[string]struct{})
	matched := []string{}
	for _, res := range results {
		term := res.b.MatchedIndustry
		if term == "" {
			term = res.b.BridgedKeyword
		}
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		matched = append(matched, term)
	}
	return matched
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
