package health

import (
	"sort"

	"github.com/jonathan/seo-content-engine/internal/types"
	"golang.org/x/sync/errgroup"
)

// AnalyzeBatch analyzes products in parallel. Results keep input order.
func (a *Analyzer) AnalyzeBatch(products []types.StoredProduct) []types.HealthCheckResult {
	results := make([]types.HealthCheckResult, len(products))

	var g errgroup.Group
	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}
	for i := range products {
		i := i
		g.Go(func() error {
			results[i] = a.Analyze(&products[i])
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Summarize aggregates results and ranks the topN most frequently missing fields.
// Ties keep TrackedFields order.
func Summarize(results []types.HealthCheckResult, topN int) types.BatchSummary {
	summary := types.BatchSummary{
		Total:               len(results),
		CommonMissingFields: make([]types.FieldFrequency, 0),
	}

	missing := make(map[string]int)
	scoreSum := 0
	for _, r := range results {
		switch r.OverallStatus {
		case types.StatusComplete:
			summary.Complete++
		case types.StatusNeedsAttention:
			summary.NeedsAttention++
		case types.StatusCritical:
			summary.Critical++
		}
		scoreSum += r.SEOScore
		for _, c := range r.Checks {
			if c.Status == types.CheckMissing {
				missing[c.Field]++
			}
		}
	}

	if len(results) > 0 {
		summary.AverageScore = float64(scoreSum) / float64(len(results))
	}

	for _, field := range TrackedFields {
		if n := missing[field]; n > 0 {
			summary.CommonMissingFields = append(summary.CommonMissingFields, types.FieldFrequency{Field: field, Count: n})
		}
	}
	sort.SliceStable(summary.CommonMissingFields, func(i, j int) bool {
		return summary.CommonMissingFields[i].Count > summary.CommonMissingFields[j].Count
	})
	if topN > 0 && len(summary.CommonMissingFields) > topN {
		summary.CommonMissingFields = summary.CommonMissingFields[:topN]
	}

	return summary
}
