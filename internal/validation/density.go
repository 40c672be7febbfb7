// Package validation checks generated SEO content against the compliance rule table.
package validation

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// DensityResult reports keyword occurrences in a text body
type DensityResult struct {
	Count          int     `json:"count"`
	WordCount      int     `json:"word_count"`
	DensityPercent float64 `json:"density_percent"`
}

// StripTags replaces every tag-like substring with a space
func StripTags(htmlText string) string {
	return tagPattern.ReplaceAllString(htmlText, " ")
}

// WordCount counts whitespace-delimited words after tags are stripped
func WordCount(htmlText string) int {
	return len(strings.Fields(StripTags(htmlText)))
}

// ComputeDensity counts case-insensitive occurrences of keyword in the tag-stripped text.
// Regex metacharacters in keyword are matched literally; an empty body reports 0%.
func ComputeDensity(htmlText, keyword string) DensityResult {
	plain := strings.ToLower(StripTags(htmlText))
	result := DensityResult{WordCount: len(strings.Fields(plain))}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword != "" {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
		result.Count = len(re.FindAllStringIndex(plain, -1))
	}

	if result.WordCount == 0 {
		return result
	}
	result.DensityPercent = float64(result.Count) / float64(result.WordCount) * 100
	return result
}
