package repair

import (
	"strings"
	"testing"

	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/jonathan/seo-content-engine/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const store = "https://shop.example.com"

func TestRepairLongDescription_Synthesized(t *testing.T) {
	out, outcome := repairLongDescription("<p>too short</p>", "Desk Lamp", "Desk Lamp", store, []string{"Lighting", "Home Office"})
	assert.Equal(t, types.StatusRepaired, outcome.Status)
	assert.Contains(t, outcome.Detail, "synthesized")

	stats := validation.InspectHTML(out, store)
	assert.Equal(t, 1, stats.H1Count)
	assert.Equal(t, 3, stats.InternalLinks)
	assert.Equal(t, 2, stats.ExternalFollowLinks)
	assert.Contains(t, out, store+"/product-category/lighting")
	assert.Contains(t, out, store+"/product-category/home-office")
	assert.Contains(t, out, store+"/product-category/new-arrivals")
}

func TestRepairLongDescription_AdditiveOnly(t *testing.T) {
	original := "<p>" + strings.Repeat("Warm light for reading and working late. ", 5) + "</p>"
	out, outcome := repairLongDescription(original, "Desk Lamp", "Desk Lamp", store, nil)

	require.Equal(t, types.StatusRepaired, outcome.Status)
	assert.Contains(t, out, original)
	assert.True(t, strings.HasPrefix(out, "<h1>Desk Lamp</h1>\n"))

	stats := validation.InspectHTML(out, store)
	assert.Equal(t, 3, stats.InternalLinks)
	assert.Equal(t, 2, stats.ExternalFollowLinks)
	assert.Contains(t, outcome.Detail, "prepended <h1>")
	assert.Contains(t, outcome.Detail, "internal links (had 0)")
	assert.Contains(t, outcome.Detail, "external follow links (had 0)")
}

func TestRepairLongDescription_NoH1WhenTextStartsWithKeyword(t *testing.T) {
	original := "<p><strong>Desk Lamp</strong> " + strings.Repeat("with warm light for late reading. ", 4) + "</p>"
	out, _ := repairLongDescription(original, "Desk Lamp", "Desk Lamp", store, nil)
	assert.True(t, strings.HasPrefix(out, original))
	assert.NotContains(t, out, "<h1>")
}

func TestRepairLongDescription_NofollowLinksDoNotCount(t *testing.T) {
	original := "<h1>Desk Lamp</h1><p>" + strings.Repeat("Warm light for late reading. ", 4) + "</p>" +
		`<p><a href="/product-category/a">a</a><a href="/product-category/b">b</a><a href="/product-category/c">c</a></p>` +
		`<p><a href="https://a.example.org" target="_blank" rel="nofollow">x</a><a href="https://b.example.org" target="_blank" rel="nofollow">y</a></p>`

	out, outcome := repairLongDescription(original, "Desk Lamp", "Desk Lamp", store, nil)
	assert.Equal(t, types.StatusRepaired, outcome.Status)
	assert.NotContains(t, outcome.Detail, "internal")
	assert.Contains(t, outcome.Detail, "external follow links (had 0)")
	assert.Equal(t, 2, validation.InspectHTML(out, store).ExternalFollowLinks)
}

func TestRepairLongDescription_CompliantUntouched(t *testing.T) {
	original := "<h1>Desk Lamp</h1><p>" + strings.Repeat("Warm light for late reading. ", 4) + "</p>" +
		internalLinkSentence(categoryLinks(store, nil)) + externalLinkSentence()

	out, outcome := repairLongDescription(original, "Desk Lamp", "Desk Lamp", store, nil)
	assert.Equal(t, original, out)
	assert.Equal(t, types.StatusPass, outcome.Status)
}

func TestCategoryLinks(t *testing.T) {
	links := categoryLinks(store+"/", []string{"Lighting", "lighting", "***", "Desk Accessories", "Extra"})
	require.Len(t, links, 3)
	assert.Equal(t, store+"/product-category/lighting", links[0].URL)
	assert.Equal(t, store+"/product-category/desk-accessories", links[1].URL)
	assert.Equal(t, store+"/product-category/extra", links[2].URL)

	relative := categoryLinks("", nil)
	require.Len(t, relative, 3)
	assert.Equal(t, "/product-category/new-arrivals", relative[0].URL)
}

func TestJoinWithAnd(t *testing.T) {
	assert.Equal(t, "", joinWithAnd(nil))
	assert.Equal(t, "a", joinWithAnd([]string{"a"}))
	assert.Equal(t, "a and b", joinWithAnd([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinWithAnd([]string{"a", "b", "c"}))
}
