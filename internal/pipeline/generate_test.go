package pipeline

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/seo-content-engine/internal/profiles"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeURL = "https://shop.example.com"

func earbuds() types.ProductDescriptor {
	return types.ProductDescriptor{
		Name:       "UltraSound Pro Wireless Earbuds X200",
		Categories: []string{"Audio", "Headphones"},
		StoreURL:   storeURL,
	}
}

func yoast(t *testing.T) *profiles.Profile {
	t.Helper()
	p, err := profiles.NewRegistry().Get("yoast")
	require.NoError(t, err)
	return &p
}

func fixedWord() string { return "Best" }

func TestGenerate_EmptyTextProducesCompleteRecord(t *testing.T) {
	result := Generate(earbuds(), "", GenerateOptions{Profile: yoast(t), PowerWord: fixedWord})

	assert.Empty(t, result.Record.EmptyFields())
	assert.NotEqual(t, uuid.Nil, result.Report.RunID)
	assert.Equal(t, "UltraSound Pro Wireless Earbuds", result.Report.PrimaryKeyword)
	assert.Len(t, result.Report.Fields, len(types.ContentFields))
	assert.Equal(t, "UltraSound Pro Wireless - Best", result.Record.MetaTitle)

	for _, v := range result.Report.Violations {
		assert.Equal(t, types.SeverityWarning, v.Severity, "%+v", v)
	}

	assert.Equal(t, result.Record.MetaTitle, result.MetaUpdates["_yoast_wpseo_title"])
	assert.Equal(t, "UltraSound Pro Wireless Earbuds", result.MetaUpdates["_yoast_wpseo_focuskw"])
}

func TestGenerate_ExistingMetaThroughProfile(t *testing.T) {
	product := earbuds()
	product.ExistingMeta = map[string]string{
		"_yoast_wpseo_title": "UltraSound Pro Wireless Earbuds - Great Deal",
	}

	result := Generate(product, "PERMALINK: old-slug", GenerateOptions{Profile: yoast(t), PowerWord: fixedWord})

	assert.Equal(t, "UltraSound Pro Wireless Earbuds - Great Deal", result.Record.MetaTitle)
	assert.Equal(t, types.StatusPass, result.Report.Fields[types.FieldMetaTitle].Status)
}

func TestGenerate_ExistingMetaByFieldName(t *testing.T) {
	product := earbuds()
	product.ExistingMeta = map[string]string{
		types.FieldAltText: "UltraSound Pro Wireless earbuds in their case",
	}

	result := Generate(product, "", GenerateOptions{PowerWord: fixedWord})

	assert.Equal(t, "UltraSound Pro Wireless earbuds in their case", result.Record.AltText)
	assert.Equal(t, types.StatusPass, result.Report.Fields[types.FieldAltText].Status)
	assert.Nil(t, result.MetaUpdates)
}

func TestGenerate_ParsedTextWinsOverExistingMeta(t *testing.T) {
	product := earbuds()
	product.ExistingMeta = map[string]string{types.FieldMetaTitle: "UltraSound Pro Wireless old title"}

	result := Generate(product, "META TITLE: UltraSound Pro Wireless Earbuds - New", GenerateOptions{PowerWord: fixedWord})

	assert.Equal(t, "UltraSound Pro Wireless Earbuds - New", result.Record.MetaTitle)
}

func TestGenerate_SoftViolationMarksPassingFieldAsWarning(t *testing.T) {
	long := `<h1>UltraSound Pro Wireless Earbuds</h1>
<p>UltraSound Pro Wireless Earbuds give you rich sound with a compact charging case and all day comfort.</p>
<p>Browse <a href="https://shop.example.com/product-category/audio">audio</a>,
<a href="https://shop.example.com/product-category/headphones">headphones</a> and
<a href="https://shop.example.com/product-category/accessories">accessories</a>.</p>
<p>Read <a href="https://www.consumerreports.org/" target="_blank">reviews</a> and
<a href="https://www.which.co.uk/reviews" target="_blank">tests</a>.</p>`
	raw := "LONG DESCRIPTION: " + long + "\nMETA TITLE: UltraSound Pro Wireless Earbuds - Best Sound"

	result := Generate(earbuds(), raw, GenerateOptions{PowerWord: fixedWord})

	outcome := result.Report.Fields[types.FieldLongDescription]
	assert.Equal(t, types.StatusWarning, outcome.Status)
	assert.Contains(t, outcome.Detail, "words")
	assert.Equal(t, strings.TrimSpace(long), result.Record.LongDescription)
	assert.Equal(t, types.StatusPass, result.Report.Fields[types.FieldMetaTitle].Status)
}

func TestGenerate_ProgressEvents(t *testing.T) {
	var steps []string
	opts := GenerateOptions{
		PowerWord:  fixedWord,
		OnProgress: func(e ProgressEvent) { steps = append(steps, e.Step) },
	}

	product := earbuds()
	product.ExistingMeta = map[string]string{types.FieldMetaTitle: "UltraSound Pro Wireless Earbuds"}
	Generate(product, "", opts)

	assert.Equal(t, []string{StepParse, StepFallback, StepRepair, StepEvaluate}, steps)
}

func TestGenerate_LogsSoftWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Generate(earbuds(), "", GenerateOptions{PowerWord: fixedWord, Logger: logger})

	out := buf.String()
	assert.Contains(t, out, `"msg":"soft target missed"`)
	assert.Contains(t, out, `"msg":"generation complete"`)
	assert.NotContains(t, out, "rule still violated")
}

func TestGenerate_IsIdempotentOnItsOwnOutput(t *testing.T) {
	first := Generate(earbuds(), "", GenerateOptions{PowerWord: fixedWord})

	rec := first.Record
	raw := strings.Join([]string{
		"LONG DESCRIPTION: " + rec.LongDescription,
		"SHORT DESCRIPTION: " + rec.ShortDescription,
		"META TITLE: " + rec.MetaTitle,
		"META DESCRIPTION: " + rec.MetaDescription,
		"FOCUS KEYWORDS: " + rec.FocusKeywords,
		"ALT TEXT: " + rec.AltText,
		"PERMALINK: " + rec.Permalink,
	}, "\n")

	second := Generate(earbuds(), raw, GenerateOptions{PowerWord: fixedWord})

	assert.Equal(t, first.Record, second.Record)
	assert.Empty(t, second.Report.RepairedFields())
}
