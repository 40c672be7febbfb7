// Package types provides type definitions for structured data used throughout the seo-content-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentRecord_GetSet(t *testing.T) {
	var rec ContentRecord
	for _, field := range ContentFields {
		assert.True(t, rec.Set(field, "value-"+field))
	}
	for _, field := range ContentFields {
		assert.Equal(t, "value-"+field, rec.Get(field))
	}

	assert.False(t, rec.Set("unknown", "x"))
	assert.Equal(t, "", rec.Get("unknown"))
}

func TestContentRecord_EmptyFields(t *testing.T) {
	rec := ContentRecord{MetaTitle: "Title", Permalink: "   "}
	empty := rec.EmptyFields()
	assert.NotContains(t, empty, FieldMetaTitle)
	assert.Contains(t, empty, FieldPermalink)
	assert.Len(t, empty, len(ContentFields)-1)
}

func TestContentRecord_FocusKeywordList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"five entries", "a, b, c, d, e", []string{"a", "b", "c", "d", "e"}},
		{"blank entries dropped", "a,, b ,", []string{"a", "b"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ContentRecord{FocusKeywords: tt.input}
			assert.Equal(t, tt.want, rec.FocusKeywordList())
		})
	}
}

func TestComplianceReport_RepairedFields(t *testing.T) {
	report := ComplianceReport{Fields: map[string]FieldOutcome{
		FieldPermalink: {Status: StatusRepaired},
		FieldMetaTitle: {Status: StatusRepaired},
		FieldAltText:   {Status: StatusPass},
	}}
	assert.Equal(t, []string{FieldMetaTitle, FieldPermalink}, report.RepairedFields())
}

func TestStoredProduct_MetaValue(t *testing.T) {
	p := StoredProduct{Meta: map[string]string{"_yoast_wpseo_title": "  Title  "}}
	assert.Equal(t, "Title", p.MetaValue("_yoast_wpseo_title"))
	assert.Equal(t, "", p.MetaValue(""))
	assert.Equal(t, "", p.MetaValue("missing"))

	var bare StoredProduct
	assert.Equal(t, "", bare.MetaValue("_yoast_wpseo_title"))
}

func TestHealthCheckResult_CountByStatus(t *testing.T) {
	r := HealthCheckResult{Checks: []FieldCheck{
		{Field: FieldMetaTitle, Status: CheckPresent},
		{Field: FieldMetaDescription, Status: CheckPoor},
		{Field: FieldFocusKeyword, Status: CheckMissing},
		{Field: FieldShortDescription, Status: CheckMissing},
	}}
	assert.Equal(t, 1, r.CountByStatus(CheckPresent))
	assert.Equal(t, 1, r.CountByStatus(CheckPoor))
	assert.Equal(t, 2, r.CountByStatus(CheckMissing))
}
