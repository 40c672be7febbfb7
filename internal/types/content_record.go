// Package types provides type definitions for structured data used throughout the seo-content-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Logical content field names, shared by the parser, repairer, report and health scorer.
const (
	FieldMetaTitle        = "meta_title"
	FieldMetaDescription  = "meta_description"
	FieldShortDescription = "short_description"
	FieldLongDescription  = "long_description"
	FieldAltText          = "alt_text"
	FieldPermalink        = "permalink"
	FieldFocusKeywords    = "focus_keywords"
)

// ContentFields lists the record fields in repair order
var ContentFields = []string{
	FieldMetaTitle,
	FieldMetaDescription,
	FieldLongDescription,
	FieldShortDescription,
	FieldPermalink,
	FieldAltText,
	FieldFocusKeywords,
}

// ContentRecord is the structured SEO content produced for one product.
// FocusKeywords holds the primary keyword followed by four secondary keywords, joined with ", ".
type ContentRecord struct {
	MetaTitle        string `json:"meta_title"`
	MetaDescription  string `json:"meta_description"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	AltText          string `json:"alt_text"`
	Permalink        string `json:"permalink"`
	FocusKeywords    string `json:"focus_keywords"`
}

// Get returns the value of a logical field, or "" for unknown names
func (c *ContentRecord) Get(field string) string {
	switch field {
	case FieldMetaTitle:
		return c.MetaTitle
	case FieldMetaDescription:
		return c.MetaDescription
	case FieldShortDescription:
		return c.ShortDescription
	case FieldLongDescription:
		return c.LongDescription
	case FieldAltText:
		return c.AltText
	case FieldPermalink:
		return c.Permalink
	case FieldFocusKeywords:
		return c.FocusKeywords
	default:
		return ""
	}
}

// Set assigns a logical field. Unknown names are ignored and reported as false.
func (c *ContentRecord) Set(field, value string) bool {
	switch field {
	case FieldMetaTitle:
		c.MetaTitle = value
	case FieldMetaDescription:
		c.MetaDescription = value
	case FieldShortDescription:
		c.ShortDescription = value
	case FieldLongDescription:
		c.LongDescription = value
	case FieldAltText:
		c.AltText = value
	case FieldPermalink:
		c.Permalink = value
	case FieldFocusKeywords:
		c.FocusKeywords = value
	default:
		return false
	}
	return true
}

// EmptyFields returns the fields that are blank after trimming
func (c *ContentRecord) EmptyFields() []string {
	out := make([]string, 0)
	for _, field := range ContentFields {
		if strings.TrimSpace(c.Get(field)) == "" {
			out = append(out, field)
		}
	}
	return out
}

// FocusKeywordList splits FocusKeywords on commas, dropping blank entries
func (c *ContentRecord) FocusKeywordList() []string {
	out := make([]string, 0, 5)
	for _, kw := range strings.Split(c.FocusKeywords, ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
