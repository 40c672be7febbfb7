// Package parsing splits labeled generator output into structured content fields.
package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/types"
)

// Section labels, case-sensitive, exactly as the generator is instructed to emit them.
const (
	LabelLongDescription  = "LONG DESCRIPTION:"
	LabelShortDescription = "SHORT DESCRIPTION:"
	LabelMetaTitle        = "META TITLE:"
	LabelMetaDescription  = "META DESCRIPTION:"
	LabelFocusKeywords    = "FOCUS KEYWORDS:"
	LabelAltText          = "ALT TEXT:"
	LabelPermalink        = "PERMALINK:"

	// LabelSecondaryKeywords is emitted inline after the focus keywords by some generator runs
	LabelSecondaryKeywords = "SECONDARY KEYWORDS:"
)

// Section binds a label to the record field it fills
type Section struct {
	Label string
	Field string
}

// Sections lists labels in canonical order. A section's capture ends at the first other
// label, in whatever order the generator emitted them.
var Sections = []Section{
	{LabelLongDescription, types.FieldLongDescription},
	{LabelShortDescription, types.FieldShortDescription},
	{LabelMetaTitle, types.FieldMetaTitle},
	{LabelMetaDescription, types.FieldMetaDescription},
	{LabelFocusKeywords, types.FieldFocusKeywords},
	{LabelAltText, types.FieldAltText},
	{LabelPermalink, types.FieldPermalink},
}

// Markdown the generator sometimes wraps labels in ("**META TITLE:**", "## ALT TEXT:").
// It is consumed as part of the label, never trimmed from the captured content.
const (
	labelCloseMarkup = `\**`
	labelOpenMarkup  = `(?:\s[*#]*[ \t]*)?`
)

var sectionPatterns = buildSectionPatterns()

func buildSectionPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(Sections))
	for _, s := range Sections {
		others := make([]string, 0, len(Sections))
		for _, other := range Sections {
			if other.Label != s.Label {
				others = append(others, regexp.QuoteMeta(other.Label))
			}
		}
		if s.Label == LabelFocusKeywords {
			others = append(others, regexp.QuoteMeta(LabelSecondaryKeywords))
		}
		stop := `(?:` + labelOpenMarkup + `(?:` + strings.Join(others, "|") + `)|\z)`
		expr := `(?s)` + regexp.QuoteMeta(s.Label) + labelCloseMarkup + `(.*?)` + stop
		patterns[s.Label] = regexp.MustCompile(expr)
	}
	return patterns
}

// ParseSections extracts every known section from raw generator text.
// Missing sections leave their field empty; the function never fails.
func ParseSections(rawText string) types.ContentRecord {
	var rec types.ContentRecord
	for _, s := range Sections {
		rec.Set(s.Field, extractSection(rawText, s.Label))
	}
	return rec
}

// FoundLabels returns the labels present in rawText, in canonical order
func FoundLabels(rawText string) []string {
	found := make([]string, 0, len(Sections))
	for _, s := range Sections {
		if strings.Contains(rawText, s.Label) {
			found = append(found, s.Label)
		}
	}
	return found
}

func extractSection(rawText, label string) string {
	m := sectionPatterns[label].FindStringSubmatch(rawText)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
