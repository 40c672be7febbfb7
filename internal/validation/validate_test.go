package validation

import (
	"strings"
	"testing"

	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compliantLongDescription(keyword string) string {
	var sb strings.Builder
	sb.WriteString("<h1>" + keyword + "</h1>\n<p>")
	// 8 keyword mentions across ~600 filler words plus links keeps density inside the band
	for i := 0; i < 8; i++ {
		sb.WriteString(keyword + " ")
		sb.WriteString(strings.Repeat("reliable ", 75))
	}
	sb.WriteString("</p>\n<p>")
	sb.WriteString(`<a href="https://shop.example.com/product-category/a">a</a> `)
	sb.WriteString(`<a href="https://shop.example.com/product-category/b">b</a> `)
	sb.WriteString(`<a href="https://shop.example.com/product-category/c">c</a> `)
	sb.WriteString(`<a href="https://en.wikipedia.org/wiki/Lamp" target="_blank">w</a> `)
	sb.WriteString(`<a href="https://www.nist.gov/" target="_blank">n</a></p>`)
	return sb.String()
}

func compliantRecord() types.ContentRecord {
	return types.ContentRecord{
		MetaTitle:        "Desk Lamp - Premium",
		MetaDescription:  "Desk Lamp with warm light for late nights. Shop now!",
		ShortDescription: "Desk Lamp that keeps your workspace bright.",
		LongDescription:  compliantLongDescription("Desk Lamp"),
		AltText:          "Desk Lamp product image",
		Permalink:        "desk-lamp",
		FocusKeywords:    "Desk Lamp, desk brand, premium quality, best value, top rated",
	}
}

func TestEvaluate_CompliantRecordHasNoErrors(t *testing.T) {
	rec := compliantRecord()
	ctx := NewContext("Desk Lamp", "https://shop.example.com")

	violations := Evaluate(&rec, DefaultRules(), ctx)
	assert.Empty(t, violations.Errors(), "%+v", violations.Errors())
}

func TestEvaluate_SoftTargetsAreWarnings(t *testing.T) {
	rec := compliantRecord()
	ctx := NewContext("Desk Lamp", "https://shop.example.com")

	violations := Evaluate(&rec, DefaultRules(), ctx)
	warnings := violations.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, types.KindMinWordCount, warnings[0].Type)
	assert.Equal(t, types.FieldLongDescription, warnings[0].Field)

	relaxed := Rules(SoftTargets{TargetWordCount: 100, DensityMin: 1.0, DensityMax: 2.0})
	assert.Empty(t, Evaluate(&rec, relaxed, ctx).Violations)
}

func TestEvaluate_DensityBand(t *testing.T) {
	rec := compliantRecord()
	rec.LongDescription = "<p>" + strings.Repeat("lamp ", 20) + "</p>"
	ctx := NewContext("Desk Lamp", "")

	violations := Evaluate(&rec, DefaultRules(), ctx)
	var found bool
	for _, v := range violations.Warnings() {
		if v.Type == types.KindDensityBand {
			found = true
			require.NotNil(t, v.Actual)
			assert.Equal(t, 0.0, *v.Actual)
		}
	}
	assert.True(t, found)
}

func TestEvaluate_HardViolations(t *testing.T) {
	rec := types.ContentRecord{
		MetaTitle:        "Short",
		MetaDescription:  "Not starting with the keyword at all, and long enough",
		ShortDescription: strings.Repeat("x", 170),
		LongDescription:  "<p>tiny</p>",
		AltText:          "photo",
		Permalink:        "-Bad_Slug-",
		FocusKeywords:    "one, two",
	}
	ctx := NewContext("Desk Lamp", "")

	kinds := map[string][]types.ConstraintKind{}
	for _, v := range Evaluate(&rec, DefaultRules(), ctx).Errors() {
		kinds[v.Field] = append(kinds[v.Field], v.Type)
	}

	assert.Contains(t, kinds[types.FieldMetaTitle], types.KindMinLength)
	assert.Contains(t, kinds[types.FieldMetaTitle], types.KindMustStartWithKeyword)
	assert.Contains(t, kinds[types.FieldMetaDescription], types.KindMustStartWithKeyword)
	assert.Contains(t, kinds[types.FieldShortDescription], types.KindMaxLength)
	assert.Contains(t, kinds[types.FieldLongDescription], types.KindMinLength)
	assert.Contains(t, kinds[types.FieldLongDescription], types.KindMinInternalLinks)
	assert.Contains(t, kinds[types.FieldLongDescription], types.KindMinExternalFollowLinks)
	assert.Contains(t, kinds[types.FieldAltText], types.KindMustContainKeyword)
	assert.Contains(t, kinds[types.FieldPermalink], types.KindCharset)
	assert.Contains(t, kinds[types.FieldFocusKeywords], types.KindExactCount)
}

func TestEvaluate_LongDescriptionPrefixByH1OrText(t *testing.T) {
	ctx := NewContext("Desk Lamp", "")
	rules := []types.ComplianceRule{{
		Field: types.FieldLongDescription, Kind: types.KindMustStartWithKeyword, Severity: types.SeverityError,
	}}

	withH1 := types.ContentRecord{LongDescription: "<p>intro</p><h1>Anything</h1>"}
	assert.Empty(t, Evaluate(&withH1, rules, ctx).Violations)

	withText := types.ContentRecord{LongDescription: "<p><strong>Desk Lamp</strong> lights up</p>"}
	assert.Empty(t, Evaluate(&withText, rules, ctx).Violations)

	neither := types.ContentRecord{LongDescription: "<p>A lamp for desks</p>"}
	assert.Len(t, Evaluate(&neither, rules, ctx).Violations, 1)
}

func TestRules_Severities(t *testing.T) {
	for _, rule := range DefaultRules() {
		switch rule.Kind {
		case types.KindMinWordCount, types.KindDensityBand:
			assert.Equal(t, types.SeverityWarning, rule.Severity, "%s/%s", rule.Field, rule.Kind)
		default:
			assert.Equal(t, types.SeverityError, rule.Severity, "%s/%s", rule.Field, rule.Kind)
		}
	}
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 5, CharCount("héllo"))
	assert.Equal(t, 0, CharCount(""))
}
