// Package health scores stored product records for SEO completeness.
package health

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/profiles"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/jonathan/seo-content-engine/internal/validation"
)

// Thresholds configure when a present field counts as poor and how poor fields are weighted
type Thresholds struct {
	MetaTitleMinChars        int     `json:"meta_title_min_chars"`
	MetaDescriptionMinChars  int     `json:"meta_description_min_chars"`
	ShortDescriptionMinWords int     `json:"short_description_min_words"`
	LongDescriptionMinWords  int     `json:"long_description_min_words"`
	PoorWeight               float64 `json:"poor_weight"`
	TopMissing               int     `json:"top_missing"`
}

// DefaultThresholds returns the thresholds used when no configuration overrides them
func DefaultThresholds() Thresholds {
	return Thresholds{
		MetaTitleMinChars:        validation.MetaTitleMinChars,
		MetaDescriptionMinChars:  50,
		ShortDescriptionMinWords: 10,
		LongDescriptionMinWords:  100,
		PoorWeight:               0.5,
		TopMissing:               5,
	}
}

// TrackedFields lists the health-checked fields in report order
var TrackedFields = []string{
	types.FieldMetaTitle,
	types.FieldMetaDescription,
	types.FieldFocusKeyword,
	types.FieldShortDescription,
	types.FieldLongDescription,
}

// Analyzer evaluates stored products against one plugin profile
type Analyzer struct {
	profile     profiles.Profile
	thresholds  Thresholds
	concurrency int
}

// NewAnalyzer creates an Analyzer. concurrency <= 0 leaves AnalyzeBatch unbounded.
func NewAnalyzer(profile profiles.Profile, thresholds Thresholds, concurrency int) *Analyzer {
	return &Analyzer{profile: profile, thresholds: thresholds, concurrency: concurrency}
}

// Profile returns the plugin profile this analyzer reads meta keys through
func (a *Analyzer) Profile() profiles.Profile {
	return a.profile
}

// Analyze checks one product. Fields the profile does not map are skipped.
func (a *Analyzer) Analyze(p *types.StoredProduct) types.HealthCheckResult {
	result := types.HealthCheckResult{
		ProductID:   p.ID,
		ProductName: p.Name,
		Checks:      make([]types.FieldCheck, 0, len(TrackedFields)),
	}

	for _, field := range TrackedFields {
		if check, ok := a.checkField(p, field); ok {
			result.Checks = append(result.Checks, check)
		}
	}

	result.OverallStatus = overallStatus(result.Checks)
	result.SEOScore = a.score(result.Checks)
	return result
}

func (a *Analyzer) checkField(p *types.StoredProduct, field string) (types.FieldCheck, bool) {
	check := types.FieldCheck{Field: field}

	switch field {
	case types.FieldMetaTitle, types.FieldMetaDescription, types.FieldFocusKeyword:
		key := a.profile.MetaKey(field)
		if key == "" {
			return check, false
		}
		value := p.MetaValue(key)
		switch {
		case value == "":
			check.Status, check.Message = types.CheckMissing, fmt.Sprintf("%s is empty", key)
		case field == types.FieldMetaTitle && validation.CharCount(value) < a.thresholds.MetaTitleMinChars:
			check.Status, check.Message = types.CheckPoor, fmt.Sprintf("title has %d characters, minimum is %d", validation.CharCount(value), a.thresholds.MetaTitleMinChars)
		case field == types.FieldMetaDescription && validation.CharCount(value) < a.thresholds.MetaDescriptionMinChars:
			check.Status, check.Message = types.CheckPoor, fmt.Sprintf("description has %d characters, minimum is %d", validation.CharCount(value), a.thresholds.MetaDescriptionMinChars)
		default:
			check.Status = types.CheckPresent
		}

	case types.FieldShortDescription:
		check.Status, check.Message = wordCheck(p.ShortDescription, a.thresholds.ShortDescriptionMinWords)

	case types.FieldLongDescription:
		check.Status, check.Message = wordCheck(p.Description, a.thresholds.LongDescriptionMinWords)

	default:
		return check, false
	}
	return check, true
}

func wordCheck(htmlText string, minWords int) (types.CheckStatus, string) {
	if strings.TrimSpace(validation.StripTags(htmlText)) == "" {
		return types.CheckMissing, "empty"
	}
	if n := validation.WordCount(htmlText); n < minWords {
		return types.CheckPoor, fmt.Sprintf("%d words, minimum is %d", n, minWords)
	}
	return types.CheckPresent, ""
}

// overallStatus is critical when more than half of the checked fields are missing,
// needs_attention when anything is missing or poor, complete otherwise.
func overallStatus(checks []types.FieldCheck) types.OverallStatus {
	missing, poor := 0, 0
	for _, c := range checks {
		switch c.Status {
		case types.CheckMissing:
			missing++
		case types.CheckPoor:
			poor++
		}
	}
	switch {
	case missing*2 > len(checks):
		return types.StatusCritical
	case missing > 0 || poor > 0:
		return types.StatusNeedsAttention
	default:
		return types.StatusComplete
	}
}

// score weights present fields 1, poor fields PoorWeight and missing fields 0
func (a *Analyzer) score(checks []types.FieldCheck) int {
	if len(checks) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range checks {
		switch c.Status {
		case types.CheckPresent:
			total += 1
		case types.CheckPoor:
			total += a.thresholds.PoorWeight
		}
	}
	return int(math.Round(total / float64(len(checks)) * 100))
}
