package validation

import "github.com/jonathan/seo-content-engine/internal/types"

// Structural bounds shared by the repairer and the rule table.
const (
	MetaTitleMinChars        = 10
	MetaTitleMaxChars        = 60
	MetaDescriptionMinChars  = 20
	MetaDescriptionMaxChars  = 155
	ShortDescriptionMinChars = 20
	ShortDescriptionMaxChars = 160
	LongDescriptionMinChars  = 100
	PermalinkMaxChars        = 45
	MinInternalLinks         = 3
	MinExternalFollowLinks   = 2
	FocusKeywordCount        = 5
)

// SoftTargets are advisory goals for the long description. Missing them yields warnings only.
type SoftTargets struct {
	TargetWordCount int     `json:"target_word_count"`
	DensityMin      float64 `json:"density_min"`
	DensityMax      float64 `json:"density_max"`
}

// DefaultSoftTargets returns 750 words and a 1.0%-2.0% keyword density band
func DefaultSoftTargets() SoftTargets {
	return SoftTargets{
		TargetWordCount: 750,
		DensityMin:      1.0,
		DensityMax:      2.0,
	}
}

// Rules returns the full rule table with the given soft targets
func Rules(soft SoftTargets) []types.ComplianceRule {
	hard := func(field string, kind types.ConstraintKind, minV, maxV float64) types.ComplianceRule {
		return types.ComplianceRule{Field: field, Kind: kind, Min: minV, Max: maxV, Severity: types.SeverityError}
	}

	return []types.ComplianceRule{
		hard(types.FieldMetaTitle, types.KindMinLength, MetaTitleMinChars, 0),
		hard(types.FieldMetaTitle, types.KindMaxLength, 0, MetaTitleMaxChars),
		hard(types.FieldMetaTitle, types.KindMustStartWithKeyword, 0, 0),

		hard(types.FieldMetaDescription, types.KindMinLength, MetaDescriptionMinChars, 0),
		hard(types.FieldMetaDescription, types.KindMaxLength, 0, MetaDescriptionMaxChars),
		hard(types.FieldMetaDescription, types.KindMustStartWithKeyword, 0, 0),

		hard(types.FieldLongDescription, types.KindMinLength, LongDescriptionMinChars, 0),
		hard(types.FieldLongDescription, types.KindMustStartWithKeyword, 0, 0),
		hard(types.FieldLongDescription, types.KindMinInternalLinks, MinInternalLinks, 0),
		hard(types.FieldLongDescription, types.KindMinExternalFollowLinks, MinExternalFollowLinks, 0),
		{
			Field:    types.FieldLongDescription,
			Kind:     types.KindMinWordCount,
			Min:      float64(soft.TargetWordCount),
			Severity: types.SeverityWarning,
		},
		{
			Field:    types.FieldLongDescription,
			Kind:     types.KindDensityBand,
			Min:      soft.DensityMin,
			Max:      soft.DensityMax,
			Severity: types.SeverityWarning,
		},

		hard(types.FieldShortDescription, types.KindMinLength, ShortDescriptionMinChars, 0),
		hard(types.FieldShortDescription, types.KindMaxLength, 0, ShortDescriptionMaxChars),
		hard(types.FieldShortDescription, types.KindMustStartWithKeyword, 0, 0),

		hard(types.FieldPermalink, types.KindMinLength, 1, 0),
		hard(types.FieldPermalink, types.KindMaxLength, 0, PermalinkMaxChars),
		hard(types.FieldPermalink, types.KindCharset, 0, 0),

		hard(types.FieldAltText, types.KindMinLength, 1, 0),
		hard(types.FieldAltText, types.KindMustContainKeyword, 0, 0),

		hard(types.FieldFocusKeywords, types.KindExactCount, FocusKeywordCount, 0),
	}
}

// DefaultRules returns the rule table with DefaultSoftTargets
func DefaultRules() []types.ComplianceRule {
	return Rules(DefaultSoftTargets())
}
