package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/seo-content-engine/internal/keywords"
	"github.com/jonathan/seo-content-engine/internal/types"
)

var permalinkCharsetPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Context carries the per-product values rules are evaluated against
type Context struct {
	PrimaryKeyword string
	ShortKeyword   string
	StoreURL       string
}

// NewContext resolves keywords for a product name
func NewContext(productName, storeURL string) Context {
	primary, short := keywords.Resolve(productName)
	return Context{PrimaryKeyword: primary, ShortKeyword: short, StoreURL: storeURL}
}

// CharCount counts characters, not bytes
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// Evaluate checks a record against every rule and returns the failures, hard and soft
func Evaluate(rec *types.ContentRecord, rules []types.ComplianceRule, ctx Context) *types.Violations {
	violations := &types.Violations{Violations: make([]types.Violation, 0)}

	var stats *HTMLStats
	htmlStats := func() HTMLStats {
		if stats == nil {
			s := InspectHTML(rec.LongDescription, ctx.StoreURL)
			stats = &s
		}
		return *stats
	}

	for _, rule := range rules {
		value := rec.Get(rule.Field)
		if v, failed := check(rule, value, ctx, htmlStats); failed {
			violations.Violations = append(violations.Violations, v)
		}
	}
	return violations
}

func check(rule types.ComplianceRule, value string, ctx Context, htmlStats func() HTMLStats) (types.Violation, bool) {
	v := types.Violation{Type: rule.Kind, Severity: rule.Severity, Field: rule.Field}

	switch rule.Kind {
	case types.KindMinLength:
		n := CharCount(strings.TrimSpace(value))
		if float64(n) >= rule.Min {
			return v, false
		}
		v.Details = fmt.Sprintf("%s has %d characters, minimum is %d", rule.Field, n, int(rule.Min))
		v.Actual, v.Expected = floatPtr(float64(n)), floatPtr(rule.Min)

	case types.KindMaxLength:
		n := CharCount(value)
		if float64(n) <= rule.Max {
			return v, false
		}
		v.Details = fmt.Sprintf("%s has %d characters, maximum is %d", rule.Field, n, int(rule.Max))
		v.Actual, v.Expected = floatPtr(float64(n)), floatPtr(rule.Max)

	case types.KindMustStartWithKeyword:
		if startsWithKeyword(rule.Field, value, ctx, htmlStats) {
			return v, false
		}
		v.Details = fmt.Sprintf("%s does not start with keyword %q", rule.Field, ctx.ShortKeyword)

	case types.KindMustContainKeyword:
		if keywords.ContainsKeyword(value, ctx.ShortKeyword) {
			return v, false
		}
		v.Details = fmt.Sprintf("%s does not mention keyword %q", rule.Field, ctx.ShortKeyword)

	case types.KindMinWordCount:
		n := WordCount(value)
		if float64(n) >= rule.Min {
			return v, false
		}
		v.Details = fmt.Sprintf("%s has %d words, target is %d", rule.Field, n, int(rule.Min))
		v.Actual, v.Expected = floatPtr(float64(n)), floatPtr(rule.Min)

	case types.KindDensityBand:
		d := ComputeDensity(value, ctx.PrimaryKeyword)
		if d.DensityPercent >= rule.Min && d.DensityPercent <= rule.Max {
			return v, false
		}
		v.Details = fmt.Sprintf("keyword density %.2f%% (%d/%d) is outside %.2f%%-%.2f%%",
			d.DensityPercent, d.Count, d.WordCount, rule.Min, rule.Max)
		v.Actual, v.Expected = floatPtr(d.DensityPercent), floatPtr((rule.Min+rule.Max)/2)

	case types.KindMinInternalLinks:
		n := htmlStats().InternalLinks
		if float64(n) >= rule.Min {
			return v, false
		}
		v.Details = fmt.Sprintf("%d internal category links, minimum is %d", n, int(rule.Min))
		v.Actual, v.Expected = floatPtr(float64(n)), floatPtr(rule.Min)

	case types.KindMinExternalFollowLinks:
		n := htmlStats().ExternalFollowLinks
		if float64(n) >= rule.Min {
			return v, false
		}
		v.Details = fmt.Sprintf("%d external follow links, minimum is %d", n, int(rule.Min))
		v.Actual, v.Expected = floatPtr(float64(n)), floatPtr(rule.Min)

	case types.KindExactCount:
		n := len((&types.ContentRecord{FocusKeywords: value}).FocusKeywordList())
		if float64(n) == rule.Min {
			return v, false
		}
		v.Details = fmt.Sprintf("%s has %d entries, expected %d", rule.Field, n, int(rule.Min))
		v.Actual, v.Expected = floatPtr(float64(n)), floatPtr(rule.Min)

	case types.KindCharset:
		if value == "" || permalinkCharsetPattern.MatchString(value) {
			return v, false
		}
		v.Details = fmt.Sprintf("%s %q must be lowercase alphanumerics joined by single hyphens", rule.Field, value)

	default:
		return v, false
	}

	return v, true
}

// startsWithKeyword treats an <h1> as satisfying the prefix rule for the long description,
// which is compared on its visible text.
func startsWithKeyword(field, value string, ctx Context, htmlStats func() HTMLStats) bool {
	if field != types.FieldLongDescription {
		return keywords.HasKeywordPrefix(value, ctx.ShortKeyword)
	}
	if htmlStats().H1Count > 0 {
		return true
	}
	return keywords.HasKeywordPrefix(PlainText(value), ctx.ShortKeyword)
}

func floatPtr(f float64) *float64 {
	return &f
}
