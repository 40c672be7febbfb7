// Package types provides type definitions for structured data used throughout the seo-content-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity separates invariants the repairer must satisfy from advisory targets.
type Severity string

const (
	// SeverityError marks a hard invariant (length bounds, keyword cardinality, presence floors)
	SeverityError Severity = "error"
	// SeverityWarning marks a soft target (density band, word count) that never blocks repair
	SeverityWarning Severity = "warning"
)

// Violation represents a single rule failure on a content field
type Violation struct {
	Type     ConstraintKind `json:"type"`
	Severity Severity       `json:"severity"`
	Field    string         `json:"field"`
	Details  string         `json:"details"`
	Actual   *float64       `json:"actual,omitempty"`
	Expected *float64       `json:"expected,omitempty"`
}

// Violations represents a collection of rule failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Errors returns only hard-invariant violations
func (v *Violations) Errors() []Violation {
	return v.filter(SeverityError)
}

// Warnings returns only soft-target violations
func (v *Violations) Warnings() []Violation {
	return v.filter(SeverityWarning)
}

// ForField returns all violations recorded against one field
func (v *Violations) ForField(field string) []Violation {
	out := make([]Violation, 0)
	for _, violation := range v.Violations {
		if violation.Field == field {
			out = append(out, violation)
		}
	}
	return out
}

func (v *Violations) filter(severity Severity) []Violation {
	out := make([]Violation, 0)
	for _, violation := range v.Violations {
		if violation.Severity == severity {
			out = append(out, violation)
		}
	}
	return out
}
