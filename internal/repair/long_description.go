package repair

import (
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/keywords"
	"github.com/jonathan/seo-content-engine/internal/rendering"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/jonathan/seo-content-engine/internal/validation"
)

// fallbackCategories pad internal links when the product has fewer than three usable categories
var fallbackCategories = []string{"New Arrivals", "Best Sellers", "Accessories"}

// authorityLinks are the external follow links appended or rendered into product copy
var authorityLinks = []rendering.Link{
	{URL: "https://www.consumerreports.org/", Label: "Consumer Reports"},
	{URL: "https://www.which.co.uk/reviews", Label: "Which? product reviews"},
}

// repairLongDescription synthesizes a full skeleton below the presence floor. Otherwise it
// only adds: an <h1> when the text neither has one nor opens with the keyword, then the
// internal and external link sentences when their counts fall short.
// As in repairText, the opening is tested against the short keyword, not the primary.
func repairLongDescription(value, primary, short, storeURL string, categories []string) (string, types.FieldOutcome) {
	trimmed := strings.TrimSpace(value)
	internal := categoryLinks(storeURL, categories)

	if n := validation.CharCount(trimmed); n < validation.LongDescriptionMinChars {
		return synthesizeLongDescription(primary, short, internal),
			repaired("synthesized: %d characters is below the %d character floor", n, validation.LongDescriptionMinChars)
	}

	stats := validation.InspectHTML(value, storeURL)
	out := value
	notes := make([]string, 0, 3)

	if stats.H1Count == 0 && !keywords.HasKeywordPrefix(validation.PlainText(value), short) {
		out = "<h1>" + html.EscapeString(primary) + "</h1>\n" + out
		notes = append(notes, "prepended <h1> keyword heading")
	}
	if stats.InternalLinks < validation.MinInternalLinks {
		out += "\n" + internalLinkSentence(internal)
		notes = append(notes, fmt.Sprintf("appended internal links (had %d)", stats.InternalLinks))
	}
	if stats.ExternalFollowLinks < validation.MinExternalFollowLinks {
		out += "\n" + externalLinkSentence()
		notes = append(notes, fmt.Sprintf("appended external follow links (had %d)", stats.ExternalFollowLinks))
	}

	if len(notes) == 0 {
		return value, pass()
	}
	return out, repaired("%s", strings.Join(notes, "; "))
}

func synthesizeLongDescription(primary, short string, internal []rendering.Link) string {
	out, err := rendering.RenderLongDescription(rendering.LongDescriptionData{
		Keyword:       primary,
		ShortKeyword:  short,
		InternalLinks: internal,
		ExternalLinks: authorityLinks,
	})
	if err != nil {
		// the embedded template only fails on programmer error; keep the record total regardless
		return "<h1>" + html.EscapeString(primary) + "</h1>\n" + internalLinkSentence(internal) + "\n" + externalLinkSentence()
	}
	return out
}

// categoryLinks builds exactly MinInternalLinks category URLs from the product's categories,
// padded with fallbackCategories and de-duplicated by slug.
func categoryLinks(storeURL string, categories []string) []rendering.Link {
	base := strings.TrimRight(strings.TrimSpace(storeURL), "/")
	seen := make(map[string]bool)
	links := make([]rendering.Link, 0, validation.MinInternalLinks)

	for _, name := range append(append([]string{}, categories...), fallbackCategories...) {
		if len(links) == validation.MinInternalLinks {
			break
		}
		slug := keywords.Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		links = append(links, rendering.Link{
			URL:   base + validation.CategoryPathMarker + slug,
			Label: strings.TrimSpace(name),
		})
	}
	return links
}

func internalLinkSentence(links []rendering.Link) string {
	anchors := make([]string, 0, len(links))
	for _, l := range links {
		anchors = append(anchors, fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(l.URL), html.EscapeString(l.Label)))
	}
	return "<p>Explore more in our " + joinWithAnd(anchors) + " collections.</p>"
}

func externalLinkSentence() string {
	anchors := make([]string, 0, len(authorityLinks))
	for _, l := range authorityLinks {
		anchors = append(anchors, fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, html.EscapeString(l.URL), html.EscapeString(l.Label)))
	}
	return "<p>For independent buying advice, see " + joinWithAnd(anchors) + ".</p>"
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
