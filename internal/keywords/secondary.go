package keywords

import (
	"hash/fnv"
	"strings"
)

// SecondaryCount is the exact number of secondary keywords produced
const SecondaryCount = 4

// minBrandTokenLen is the length a first token must exceed to count as a brand
const minBrandTokenLen = 2

type categoryTheme struct {
	triggers []string
	keywords []string
}

// Themes are checked in order; the first theme with a matching trigger wins.
var categoryThemes = []categoryTheme{
	{
		triggers: []string{"audio", "sound", "earbuds", "headphone", "speaker"},
		keywords: []string{"wireless audio", "premium sound quality", "noise cancelling"},
	},
	{
		triggers: []string{"electronic"},
		keywords: []string{"latest electronics", "smart gadgets", "tech accessories"},
	},
}

var defaultThemeKeywords = []string{"premium quality", "best value"}

var genericPool = []string{
	"top rated",
	"best price",
	"buy online",
	"free shipping",
	"high quality",
	"customer favorite",
	"new arrival",
	"great gift idea",
	"trusted brand",
	"limited offer",
}

// GenerateSecondaryKeywords returns exactly four distinct keyword phrases drawn from the
// product's brand token, its category vocabulary and a generic pool. The pool offset is
// derived from the product name, so the same input always yields the same keywords.
func GenerateSecondaryKeywords(productName, categoryText string) []string {
	set := newKeywordSet(ExtractPrimaryKeyword(productName))

	tokens := strings.Fields(productName)
	if len(tokens) > 0 && len(tokens[0]) > minBrandTokenLen {
		set.add(strings.ToLower(tokens[0]) + " brand")
	}

	for _, kw := range themeKeywords(productName + " " + categoryText) {
		set.add(kw)
	}

	start := poolOffset(productName)
	for i := 0; i < len(genericPool) && set.len() < SecondaryCount; i++ {
		set.add(genericPool[(start+i)%len(genericPool)])
	}

	return set.items
}

func themeKeywords(text string) []string {
	text = strings.ToLower(text)
	for _, theme := range categoryThemes {
		for _, trigger := range theme.triggers {
			if strings.Contains(text, trigger) {
				return theme.keywords
			}
		}
	}
	return defaultThemeKeywords
}

func poolOffset(productName string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(productName)))
	return int(h.Sum32() % uint32(len(genericPool)))
}

// keywordSet keeps insertion order, rejects case-insensitive duplicates
// (including the primary keyword) and stops growing at SecondaryCount.
type keywordSet struct {
	seen  map[string]bool
	items []string
}

func newKeywordSet(primary string) *keywordSet {
	s := &keywordSet{seen: make(map[string]bool), items: make([]string, 0, SecondaryCount)}
	if p := strings.ToLower(strings.TrimSpace(primary)); p != "" {
		s.seen[p] = true
	}
	return s
}

func (s *keywordSet) add(kw string) {
	key := strings.ToLower(strings.TrimSpace(kw))
	if key == "" || s.seen[key] || len(s.items) >= SecondaryCount {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, kw)
}

func (s *keywordSet) len() int {
	return len(s.items)
}

// FocusKeywords joins the primary keyword with its four secondary keywords
func FocusKeywords(productName, categoryText string) string {
	primary, _ := Resolve(productName)
	all := append([]string{primary}, GenerateSecondaryKeywords(productName, categoryText)...)
	return strings.Join(all, ", ")
}
