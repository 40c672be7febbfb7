// Package types provides type definitions for structured data used throughout the seo-content-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ProductDescriptor is the immutable generation input for one product
type ProductDescriptor struct {
	Name         string            `json:"name"`
	Categories   []string          `json:"categories,omitempty"`
	ExistingMeta map[string]string `json:"existing_meta,omitempty"`
	StoreURL     string            `json:"store_url,omitempty"`
}

// CategoryText joins category names for keyword matching
func (p *ProductDescriptor) CategoryText() string {
	return strings.Join(p.Categories, " ")
}

// StoredProduct is a product record as read back from the storefront, evaluated by the health scorer
type StoredProduct struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	ShortDescription string            `json:"short_description"`
	Description      string            `json:"description"`
	Categories       []string          `json:"categories,omitempty"`
	Meta             map[string]string `json:"meta,omitempty"`
}

// MetaValue returns the trimmed meta value for key, or "" when key is empty or absent
func (p *StoredProduct) MetaValue(key string) string {
	if key == "" || p.Meta == nil {
		return ""
	}
	return strings.TrimSpace(p.Meta[key])
}
