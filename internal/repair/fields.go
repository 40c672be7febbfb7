package repair

import (
	"fmt"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/keywords"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/jonathan/seo-content-engine/internal/validation"
)

// keywordSeparator joins a prepended keyword to preserved text
const keywordSeparator = " - "

// PowerWords are appended to synthesized titles
var PowerWords = []string{"Ultimate", "Best", "Top", "Premium", "Professional", "Advanced"}

// textRule bounds a free-text field that is preserved and patched rather than regenerated
type textRule struct {
	minChars   int
	maxChars   int
	synthesize func() string
}

// repairText applies the presence floor, the keyword-prefix rule and the ceiling, in that order.
// Text that already satisfies all three is returned unchanged.
// The prefix rule tests the short keyword rather than the full primary keyword: every text
// this function emits opens with the short keyword, so a second pass finds nothing to change.
func repairText(value, shortKeyword string, rule textRule) (string, types.FieldOutcome) {
	trimmed := strings.TrimSpace(value)

	if n := validation.CharCount(trimmed); n < rule.minChars {
		return rule.synthesize(), repaired("synthesized: %d characters is below the %d character floor", n, rule.minChars)
	}

	if !keywords.HasKeywordPrefix(trimmed, shortKeyword) {
		return prependKeyword(trimmed, shortKeyword, rule.maxChars),
			repaired("prepended keyword %q to existing text", shortKeyword)
	}

	if n := validation.CharCount(value); n > rule.maxChars {
		return truncateWithEllipsis(trimmed, rule.maxChars),
			repaired("truncated from %d to %d characters", n, rule.maxChars)
	}

	return value, pass()
}

// prependKeyword produces "{keyword} - {existing}" within max characters,
// shortening only the existing portion.
func prependKeyword(existing, keyword string, max int) string {
	prefix := keyword + keywordSeparator
	room := max - validation.CharCount(prefix)
	if room <= 0 {
		return truncateWithEllipsis(keyword, max)
	}
	kept := truncateAtWord(existing, room)
	if kept == "" {
		return truncateWithEllipsis(keyword, max)
	}
	return prefix + kept
}

// synthesizeTitle builds "{keyword} - {power word}", dropping the power word when the
// title would overrun. The short keyword never exceeds the title ceiling.
func synthesizeTitle(shortKeyword, powerWord string) string {
	title := shortKeyword + keywordSeparator + powerWord
	if validation.CharCount(title) < validation.MetaTitleMinChars {
		title += " Choice"
	}
	if validation.CharCount(title) <= validation.MetaTitleMaxChars {
		return title
	}
	return truncateChars(shortKeyword, validation.MetaTitleMaxChars)
}

// keywordSentence opens a synthesized sentence with the longest keyword that still lets the
// sentence start with short: primary when it fits, else primary cut at a word boundary, else
// short itself. The tail is dropped before short is ever cut.
func keywordSentence(primary, short, tail string, max int) string {
	room := max - validation.CharCount(tail)
	if room >= validation.CharCount(short) {
		if lead := truncateAtWord(primary, room); keywords.HasKeywordPrefix(lead, short) {
			return lead + tail
		}
		return short + tail
	}
	return truncateChars(short, max)
}

func synthesizeMetaDescription(primary, short string) string {
	const tail = ": premium quality, great value and fast shipping. Order yours today!"
	return keywordSentence(primary, short, tail, validation.MetaDescriptionMaxChars)
}

func synthesizeShortDescription(primary, short string) string {
	const tail = " delivers premium quality and reliable performance for everyday use."
	return keywordSentence(primary, short, tail, validation.ShortDescriptionMaxChars)
}

func synthesizeAltText(shortKeyword string) string {
	return shortKeyword + " product image showing premium quality features"
}

func pass() types.FieldOutcome {
	return types.FieldOutcome{Status: types.StatusPass, Detail: "compliant"}
}

func repaired(format string, args ...any) types.FieldOutcome {
	return types.FieldOutcome{Status: types.StatusRepaired, Detail: fmt.Sprintf(format, args...)}
}
