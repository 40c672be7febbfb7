package prompts

import (
	"fmt"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/keywords"
	"github.com/jonathan/seo-content-engine/internal/parsing"
	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/jonathan/seo-content-engine/internal/validation"
)

// Embedded prompt file and its keys
const (
	ProductFile       = "product.json"
	KeySystem         = "system"
	KeyProductContent = "generate-product-content"
)

// ProductPrompt is the instruction pair handed to the external text generator
type ProductPrompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// BuildProductPrompt fills the product content template. The section list is taken from the
// parser's label table so both sides share one vocabulary.
func BuildProductPrompt(product types.ProductDescriptor, soft validation.SoftTargets) (*ProductPrompt, error) {
	system, err := lookup(KeySystem)
	if err != nil {
		return nil, err
	}
	tmpl, err := lookup(KeyProductContent)
	if err != nil {
		return nil, err
	}

	primary, short := keywords.Resolve(product.Name)
	categories := "none"
	if len(product.Categories) > 0 {
		categories = strings.Join(product.Categories, ", ")
	}

	labels := make([]string, 0, len(parsing.Sections))
	for _, s := range parsing.Sections {
		labels = append(labels, s.Label)
	}

	user := fill(tmpl, map[string]string{
		"Name":         product.Name,
		"Categories":   categories,
		"Keyword":      primary,
		"ShortKeyword": short,
		"StoreURL":     strings.TrimRight(product.StoreURL, "/"),
		"TargetWords":  fmt.Sprintf("%d", soft.TargetWordCount),
		"DensityMin":   fmt.Sprintf("%.1f", soft.DensityMin),
		"DensityMax":   fmt.Sprintf("%.1f", soft.DensityMax),
		"Sections":     strings.Join(labels, "\n"),
	})

	return &ProductPrompt{System: system, User: user}, nil
}
