package validation

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// CategoryPathMarker identifies internal category links in product copy
const CategoryPathMarker = "/product-category/"

// HTMLStats summarizes the structure of a long-description fragment
type HTMLStats struct {
	H1Count             int `json:"h1_count"`
	InternalLinks       int `json:"internal_links"`
	ExternalFollowLinks int `json:"external_follow_links"`
	NoFollowLinks       int `json:"nofollow_links"`
}

// InspectHTML counts headings and links in an HTML fragment. An external follow link
// is an absolute http(s) link off the store host that opens in a new tab and is not
// marked nofollow.
func InspectHTML(fragment, storeURL string) HTMLStats {
	var stats HTMLStats

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return stats
	}

	storeHost := ""
	if base, err := url.Parse(strings.TrimSpace(storeURL)); err == nil {
		storeHost = strings.ToLower(base.Host)
	}

	stats.H1Count = doc.Find("h1").Length()

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return
		}
		if strings.Contains(href, CategoryPathMarker) {
			stats.InternalLinks++
			return
		}

		link, err := url.Parse(href)
		if err != nil || (link.Scheme != "http" && link.Scheme != "https") {
			return
		}
		if storeHost != "" && strings.EqualFold(link.Host, storeHost) {
			return
		}
		if hasRelToken(s.AttrOr("rel", ""), "nofollow") {
			stats.NoFollowLinks++
			return
		}
		if strings.EqualFold(s.AttrOr("target", ""), "_blank") {
			stats.ExternalFollowLinks++
		}
	})

	return stats
}

func hasRelToken(rel, token string) bool {
	for _, t := range strings.Fields(strings.ToLower(rel)) {
		if t == token {
			return true
		}
	}
	return false
}

// PlainText returns the visible text of an HTML fragment with entities decoded and
// whitespace collapsed. Script and style bodies are dropped.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var sb strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or a reader error on an in-memory string; either way the text so far is all there is
			return strings.Join(strings.Fields(sb.String()), " ")

		case html.StartTagToken:
			if isSkippedTag(z) {
				skip++
			}

		case html.EndTagToken:
			if isSkippedTag(z) && skip > 0 {
				skip--
			}

		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

func isSkippedTag(z *html.Tokenizer) bool {
	tn, _ := z.TagName()
	switch string(tn) {
	case "script", "style":
		return true
	}
	return false
}
