// Package keywords derives primary/secondary keyword phrases and permalinks from product metadata.
package keywords

import (
	"strings"
	"unicode/utf8"
)

const (
	// maxPrimaryTokens caps the primary keyword phrase length in whitespace tokens
	maxPrimaryTokens = 4
	// minTokensBeforeStop is the number of tokens accumulated before a stop word may end the phrase
	minTokensBeforeStop = 2
	// fallbackTokens is how many raw tokens are used when nothing was accumulated
	fallbackTokens = 3
	// shortKeywordTokens caps the short keyword used for prepends and alt text
	shortKeywordTokens = 3
	// MaxShortKeywordChars keeps the short keyword short enough to open the tightest field ceiling
	// with room to spare
	MaxShortKeywordChars = 40
)

// DefaultKeyword stands in when a product name yields no tokens at all
const DefaultKeyword = "Product"

var stopWords = map[string]bool{
	"with": true, "and": true, "for": true, "in": true,
	"the": true, "a": true, "an": true,
	"-": true, "|": true, ",": true,
}

// ExtractPrimaryKeyword returns the leading phrase of a product name: up to four tokens,
// ending early at a stop word once at least two tokens were taken.
// The result is non-empty whenever name contains a non-whitespace character.
func ExtractPrimaryKeyword(productName string) string {
	tokens := strings.Fields(productName)

	acc := make([]string, 0, maxPrimaryTokens)
	for _, tok := range tokens {
		if len(acc) >= maxPrimaryTokens {
			break
		}
		if len(acc) >= minTokensBeforeStop && stopWords[strings.ToLower(tok)] {
			break
		}
		acc = append(acc, tok)
	}

	if len(acc) == 0 {
		return strings.Join(tokens[:min(len(tokens), fallbackTokens)], " ")
	}
	return strings.Join(acc, " ")
}

// ShortKeyword trims a primary keyword to its first three tokens, dropping trailing tokens
// while the phrase exceeds MaxShortKeywordChars. A lone token that is still too long is cut
// to MaxShortKeywordChars characters.
// Every primary keyword starts with its short keyword.
func ShortKeyword(primaryKeyword string) string {
	tokens := strings.Fields(primaryKeyword)
	tokens = tokens[:min(len(tokens), shortKeywordTokens)]
	for len(tokens) > 1 && utf8.RuneCountInString(strings.Join(tokens, " ")) > MaxShortKeywordChars {
		tokens = tokens[:len(tokens)-1]
	}
	short := strings.Join(tokens, " ")
	if utf8.RuneCountInString(short) > MaxShortKeywordChars {
		short = string([]rune(short)[:MaxShortKeywordChars])
	}
	return short
}

// Resolve returns the primary and short keyword for a product name,
// substituting DefaultKeyword when the name is blank.
func Resolve(productName string) (primary, short string) {
	primary = ExtractPrimaryKeyword(productName)
	if primary == "" {
		primary = DefaultKeyword
	}
	return primary, ShortKeyword(primary)
}

// HasKeywordPrefix reports whether text starts with keyword, ignoring case and leading whitespace
func HasKeywordPrefix(text, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), keyword)
}

// ContainsKeyword reports whether text contains keyword, ignoring case
func ContainsKeyword(text, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), keyword)
}
