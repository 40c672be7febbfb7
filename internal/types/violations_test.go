// Package types provides type definitions for structured data used throughout the seo-content-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONMarshaling(t *testing.T) {
	actual := 0.4
	expected := 1.0
	violation := Violation{
		Type:     KindDensityBand,
		Severity: SeverityWarning,
		Field:    FieldLongDescription,
		Details:  "keyword density 0.40% is outside 1.00%-2.00%",
		Actual:   &actual,
		Expected: &expected,
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"type": "density_band"`)
	assert.Contains(t, string(jsonBytes), `"severity": "warning"`)
	assert.Contains(t, string(jsonBytes), `"field": "long_description"`)
	assert.Contains(t, string(jsonBytes), `"actual": 0.4`)
}

func TestViolation_OptionalFields(t *testing.T) {
	violation := Violation{
		Type:     KindMaxLength,
		Severity: SeverityError,
		Field:    FieldPermalink,
		Details:  "permalink exceeds 45 characters",
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "actual")
	assert.NotContains(t, string(jsonBytes), "expected")
}

func TestViolations_SeveritySplit(t *testing.T) {
	v := &Violations{Violations: []Violation{
		{Type: KindMaxLength, Severity: SeverityError, Field: FieldMetaTitle},
		{Type: KindMinWordCount, Severity: SeverityWarning, Field: FieldLongDescription},
		{Type: KindDensityBand, Severity: SeverityWarning, Field: FieldLongDescription},
	}}

	assert.Len(t, v.Errors(), 1)
	assert.Len(t, v.Warnings(), 2)
	assert.Len(t, v.ForField(FieldLongDescription), 2)
	assert.Empty(t, v.ForField(FieldAltText))
}

func TestViolations_EmptyCollections(t *testing.T) {
	v := &Violations{}
	assert.NotNil(t, v.Errors())
	assert.Empty(t, v.Errors())
	assert.NotNil(t, v.Warnings())
}
