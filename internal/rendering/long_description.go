package rendering

import (
	_ "embed"
	"html/template"
	"strings"
)

//go:embed templates/long_description.html.tmpl
var longDescriptionTemplate string

var longDescriptionTmpl = template.Must(template.New("long_description").Parse(longDescriptionTemplate))

// Link is an anchor rendered into product copy
type Link struct {
	URL   string
	Label string
}

// ComparisonRow is one row of the feature comparison table
type ComparisonRow struct {
	Feature string
	Ours    string
	Theirs  string
}

// LongDescriptionData feeds the long-description skeleton
type LongDescriptionData struct {
	Keyword       string
	ShortKeyword  string
	Features      []string
	Comparison    []ComparisonRow
	InternalLinks []Link
	ExternalLinks []Link
}

// DefaultFeatures returns the feature bullets used when the caller supplies none
func DefaultFeatures(keyword string) []string {
	return []string{
		"Premium build quality that holds up to daily use",
		"Designed around real customer feedback on the " + keyword,
		"Simple setup with no extra tools required",
		"Backed by our satisfaction guarantee",
	}
}

// DefaultComparison returns the comparison rows used when the caller supplies none
func DefaultComparison() []ComparisonRow {
	return []ComparisonRow{
		{Feature: "Build quality", Ours: "Premium materials", Theirs: "Basic materials"},
		{Feature: "Warranty", Ours: "Included", Theirs: "Often extra"},
		{Feature: "Customer support", Ours: "Dedicated team", Theirs: "Limited"},
	}
}

// RenderLongDescription executes the embedded skeleton. Values are HTML-escaped by the template engine.
func RenderLongDescription(data LongDescriptionData) (string, error) {
	if len(data.Features) == 0 {
		data.Features = DefaultFeatures(data.ShortKeyword)
	}
	if len(data.Comparison) == 0 {
		data.Comparison = DefaultComparison()
	}

	var sb strings.Builder
	if err := longDescriptionTmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute long description template",
			Cause:   err,
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
