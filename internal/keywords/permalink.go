package keywords

import (
	"regexp"
	"strings"
)

// MaxPermalinkLength is the hard bound on permalink length, for reconstruction and overrides
const MaxPermalinkLength = 45

var (
	nonSlugTokenRe = regexp.MustCompile(`[^a-z0-9]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	nonSlugRe      = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRunRe    = regexp.MustCompile(`-{2,}`)
)

// CreateOptimalPermalink builds a slug from whole keyword tokens, appending tokens while the
// slug stays within MaxPermalinkLength and stopping at the first token that would overflow.
// Falls back to Slugify when no token survives.
func CreateOptimalPermalink(primaryKeyword string) string {
	var sb strings.Builder
	for _, tok := range strings.Fields(strings.ToLower(primaryKeyword)) {
		tok = nonSlugTokenRe.ReplaceAllString(tok, "")
		if tok == "" {
			continue
		}
		next := len(tok)
		if sb.Len() > 0 {
			next += sb.Len() + 1
		}
		if next > MaxPermalinkLength {
			break
		}
		if sb.Len() > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(tok)
	}

	if sb.Len() == 0 {
		return Slugify(primaryKeyword)
	}
	return sb.String()
}

// Slugify lower-cases text, turns whitespace runs into hyphens, drops anything outside
// [a-z0-9-] and bounds the result to MaxPermalinkLength without edge hyphens.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = whitespaceRe.ReplaceAllString(slug, "-")
	slug = nonSlugRe.ReplaceAllString(slug, "")
	slug = hyphenRunRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return TruncatePermalink(slug)
}

// TruncatePermalink cuts a slug to MaxPermalinkLength and strips any dangling hyphen
func TruncatePermalink(slug string) string {
	if len(slug) > MaxPermalinkLength {
		slug = slug[:MaxPermalinkLength]
	}
	return strings.Trim(slug, "-")
}
