// Package types provides type definitions for structured data used throughout the seo-content-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// OverallStatus is the product-level health classification
type OverallStatus string

const (
	StatusComplete       OverallStatus = "complete"
	StatusNeedsAttention OverallStatus = "needs_attention"
	StatusCritical       OverallStatus = "critical"
)

// CheckStatus is the per-field health classification
type CheckStatus string

const (
	CheckPresent CheckStatus = "present"
	CheckPoor    CheckStatus = "poor"
	CheckMissing CheckStatus = "missing"
)

// Health-tracked logical fields. FieldFocusKeyword is singular: stores keep one focus keyword.
const (
	FieldFocusKeyword = "focus_keyword"
)

// FieldCheck is one evaluated field of a stored product
type FieldCheck struct {
	Field   string      `json:"field"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message,omitempty"`
}

// HealthCheckResult is the health verdict for one stored product
type HealthCheckResult struct {
	ProductID     int64         `json:"product_id"`
	ProductName   string        `json:"product_name"`
	OverallStatus OverallStatus `json:"overall_status"`
	SEOScore      int           `json:"seo_score"`
	Checks        []FieldCheck  `json:"checks"`
}

// CountByStatus returns how many checks carry the given status
func (r *HealthCheckResult) CountByStatus(status CheckStatus) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == status {
			n++
		}
	}
	return n
}

// FieldFrequency is a field name with the number of products it was missing from
type FieldFrequency struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

// BatchSummary aggregates health results across a product set
type BatchSummary struct {
	Total               int              `json:"total"`
	Complete            int              `json:"complete"`
	NeedsAttention      int              `json:"needs_attention"`
	Critical            int              `json:"critical"`
	AverageScore        float64          `json:"average_score"`
	CommonMissingFields []FieldFrequency `json:"common_missing_fields"`
}

// HealthReport bundles a batch run for output
type HealthReport struct {
	ID          uuid.UUID           `json:"id"`
	Profile     string              `json:"profile"`
	GeneratedAt time.Time           `json:"generated_at"`
	Results     []HealthCheckResult `json:"results"`
	Summary     BatchSummary        `json:"summary"`
}
