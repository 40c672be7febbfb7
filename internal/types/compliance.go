// Package types provides type definitions for structured data used throughout the seo-content-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// ConstraintKind names the structural check a ComplianceRule applies
type ConstraintKind string

const (
	KindMaxLength              ConstraintKind = "max_length"
	KindMinLength              ConstraintKind = "min_length"
	KindMinWordCount           ConstraintKind = "min_word_count"
	KindMustStartWithKeyword   ConstraintKind = "must_start_with_keyword"
	KindDensityBand            ConstraintKind = "density_band"
	KindMinInternalLinks       ConstraintKind = "min_internal_links"
	KindMinExternalFollowLinks ConstraintKind = "min_external_follow_links"
	KindExactCount             ConstraintKind = "exact_count"
	KindCharset                ConstraintKind = "charset"
	KindMustContainKeyword     ConstraintKind = "must_contain_keyword"
)

// ComplianceRule is a (field, constraint-kind, bounds) tuple.
// Density bands use Min and Max as percentages; every other kind uses Min or Max alone.
type ComplianceRule struct {
	Field    string         `json:"field"`
	Kind     ConstraintKind `json:"kind"`
	Min      float64        `json:"min,omitempty"`
	Max      float64        `json:"max,omitempty"`
	Severity Severity       `json:"severity"`
}

// OutcomeStatus classifies what the repairer did to a field
type OutcomeStatus string

const (
	// StatusPass means the field needed no change
	StatusPass OutcomeStatus = "pass"
	// StatusRepaired means a fallback or a prepend/append was applied
	StatusRepaired OutcomeStatus = "repaired"
	// StatusWarning means the field is structurally fine but misses a soft target
	StatusWarning OutcomeStatus = "warning"
)

// FieldOutcome is the per-field entry of a ComplianceReport
type FieldOutcome struct {
	Status OutcomeStatus `json:"status"`
	Detail string        `json:"detail"`
}

// ComplianceReport describes one generation run. It is never persisted by the engine.
type ComplianceReport struct {
	RunID          uuid.UUID               `json:"run_id"`
	PrimaryKeyword string                  `json:"primary_keyword"`
	Fields         map[string]FieldOutcome `json:"fields"`
	Violations     []Violation             `json:"violations"`
}

// RepairedFields returns the names of fields whose status is repaired, in canonical field order
func (r *ComplianceReport) RepairedFields() []string {
	out := make([]string, 0)
	for _, field := range ContentFields {
		if outcome, ok := r.Fields[field]; ok && outcome.Status == StatusRepaired {
			out = append(out, field)
		}
	}
	return out
}
