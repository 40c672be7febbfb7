// Package repair turns parsed generator output into a fully populated, rule-compliant content record.
package repair

import (
	"math/rand"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/keywords"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/jonathan/seo-content-engine/internal/validation"
)

// Options tunes a repair run. The zero value is valid.
type Options struct {
	// Categories feed secondary keywords and internal category links
	Categories []string
	// PermalinkOverride replaces the recomputed permalink after slugification and truncation
	PermalinkOverride string
	// PowerWord picks the word appended to synthesized titles; defaults to a random PowerWords entry
	PowerWord func() string
}

// Result is a repaired record plus what happened to each field
type Result struct {
	Record         types.ContentRecord
	Outcomes       map[string]types.FieldOutcome
	PrimaryKeyword string
	ShortKeyword   string
}

// ValidateAndRepair applies the per-field policy in fixed order: title, meta description,
// long description, short description, permalink, alt text, focus keywords.
// Free-text fields are preserved and patched; permalink and focus keywords are always recomputed.
// It never fails and every field of the returned record is non-empty.
func ValidateAndRepair(content types.ContentRecord, productName, storeURL string, opts *Options) *Result {
	if opts == nil {
		opts = &Options{}
	}
	pick := opts.PowerWord
	if pick == nil {
		pick = randomPowerWord
	}

	primary, short := keywords.Resolve(productName)
	res := &Result{
		Outcomes:       make(map[string]types.FieldOutcome, len(types.ContentFields)),
		PrimaryKeyword: primary,
		ShortKeyword:   short,
	}
	rec := &res.Record

	rec.MetaTitle, res.Outcomes[types.FieldMetaTitle] = repairText(content.MetaTitle, short, textRule{
		minChars:   validation.MetaTitleMinChars,
		maxChars:   validation.MetaTitleMaxChars,
		synthesize: func() string { return synthesizeTitle(short, pick()) },
	})

	rec.MetaDescription, res.Outcomes[types.FieldMetaDescription] = repairText(content.MetaDescription, short, textRule{
		minChars:   validation.MetaDescriptionMinChars,
		maxChars:   validation.MetaDescriptionMaxChars,
		synthesize: func() string { return synthesizeMetaDescription(primary, short) },
	})

	rec.LongDescription, res.Outcomes[types.FieldLongDescription] =
		repairLongDescription(content.LongDescription, primary, short, storeURL, opts.Categories)

	rec.ShortDescription, res.Outcomes[types.FieldShortDescription] = repairText(content.ShortDescription, short, textRule{
		minChars:   validation.ShortDescriptionMinChars,
		maxChars:   validation.ShortDescriptionMaxChars,
		synthesize: func() string { return synthesizeShortDescription(primary, short) },
	})

	rec.Permalink, res.Outcomes[types.FieldPermalink] = repairPermalink(content.Permalink, primary, opts.PermalinkOverride)

	rec.AltText, res.Outcomes[types.FieldAltText] = repairAltText(content.AltText, short)

	rec.FocusKeywords, res.Outcomes[types.FieldFocusKeywords] =
		repairFocusKeywords(content.FocusKeywords, productName, strings.Join(opts.Categories, " "))

	return res
}

// repairPermalink has no preserve branch: the slug is rebuilt from the keyword every time.
// The outcome is pass only when the supplied value already equals the rebuilt slug.
func repairPermalink(supplied, primary, override string) (string, types.FieldOutcome) {
	slug := keywords.CreateOptimalPermalink(primary)
	if override != "" {
		if s := keywords.Slugify(override); s != "" {
			slug = s
		}
	}
	if slug == "" {
		slug = keywords.Slugify(keywords.DefaultKeyword)
	}
	if supplied == slug {
		return slug, pass()
	}
	return slug, repaired("recomputed from keyword %q", primary)
}

func repairAltText(value, short string) (string, types.FieldOutcome) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return synthesizeAltText(short), repaired("synthesized: alt text was empty")
	}
	if !keywords.ContainsKeyword(trimmed, short) {
		return synthesizeAltText(short), repaired("replaced: alt text did not mention %q", short)
	}
	return value, pass()
}

func repairFocusKeywords(supplied, productName, categoryText string) (string, types.FieldOutcome) {
	focus := keywords.FocusKeywords(productName, categoryText)
	if supplied == focus {
		return focus, pass()
	}
	return focus, repaired("regenerated as primary plus %d secondary keywords", keywords.SecondaryCount)
}

func randomPowerWord() string {
	return PowerWords[rand.Intn(len(PowerWords))]
}
