// Package profiles maps logical SEO fields to the physical metadata keys used by storefront SEO plugins.
package profiles

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/seo-content-engine/internal/types"
)

// Profile is one SEO-metadata convention. An empty key means the plugin does not store that field.
type Profile struct {
	Name            string `yaml:"name" json:"name" validate:"required,min=1"`
	Label           string `yaml:"label" json:"label,omitempty"`
	TitleKey        string `yaml:"title_key" json:"title_key,omitempty"`
	DescriptionKey  string `yaml:"description_key" json:"description_key,omitempty"`
	FocusKeywordKey string `yaml:"focus_keyword_key" json:"focus_keyword_key,omitempty"`
	PermalinkKey    string `yaml:"permalink_key" json:"permalink_key,omitempty"`
	AltTextKey      string `yaml:"alt_text_key" json:"alt_text_key,omitempty"`
}

// Validate checks required fields and that at least one meta key is mapped
func (p *Profile) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return err
	}
	if p.TitleKey == "" && p.DescriptionKey == "" && p.FocusKeywordKey == "" {
		return &InvalidProfileError{Name: p.Name, Message: "at least one of title_key, description_key, focus_keyword_key is required"}
	}
	return nil
}

// MetaKey returns the physical key for a logical field, or "" when unmapped
func (p *Profile) MetaKey(field string) string {
	switch field {
	case types.FieldMetaTitle:
		return p.TitleKey
	case types.FieldMetaDescription:
		return p.DescriptionKey
	case types.FieldFocusKeyword, types.FieldFocusKeywords:
		return p.FocusKeywordKey
	case types.FieldPermalink:
		return p.PermalinkKey
	case types.FieldAltText:
		return p.AltTextKey
	default:
		return ""
	}
}

// ExistingValue reads a logical field from a product's existing meta map
func (p *Profile) ExistingValue(meta map[string]string, field string) string {
	key := p.MetaKey(field)
	if key == "" || meta == nil {
		return ""
	}
	return strings.TrimSpace(meta[key])
}

// MetaUpdates maps a repaired record onto this profile's physical keys for the storefront writer.
// Most plugins store one focus keyword, so only the primary keyword is written there.
func (p *Profile) MetaUpdates(rec *types.ContentRecord) map[string]string {
	out := make(map[string]string)
	put := func(key, value string) {
		if key != "" && value != "" {
			out[key] = value
		}
	}
	put(p.TitleKey, rec.MetaTitle)
	put(p.DescriptionKey, rec.MetaDescription)
	if list := rec.FocusKeywordList(); len(list) > 0 {
		put(p.FocusKeywordKey, list[0])
	}
	put(p.PermalinkKey, rec.Permalink)
	put(p.AltTextKey, rec.AltText)
	return out
}

// Registry is a name-keyed profile lookup table
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry returns a registry holding the built-in profiles
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile)}
	for _, p := range Builtin() {
		r.profiles[p.Name] = p
	}
	return r
}

// Register adds or replaces a profile after validating it
func (r *Registry) Register(p Profile) error {
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	if err := p.Validate(); err != nil {
		return err
	}
	r.profiles[p.Name] = p
	return nil
}

// Get looks a profile up by case-insensitive name
func (r *Registry) Get(name string) (Profile, error) {
	p, ok := r.profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, &UnknownProfileError{Name: name, Known: r.Names()}
	}
	return p, nil
}

// Names lists registered profile names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the profiles for the common WordPress SEO plugins
func Builtin() []Profile {
	return []Profile{
		{
			Name:            "yoast",
			Label:           "Yoast SEO",
			TitleKey:        "_yoast_wpseo_title",
			DescriptionKey:  "_yoast_wpseo_metadesc",
			FocusKeywordKey: "_yoast_wpseo_focuskw",
		},
		{
			Name:            "rankmath",
			Label:           "Rank Math",
			TitleKey:        "rank_math_title",
			DescriptionKey:  "rank_math_description",
			FocusKeywordKey: "rank_math_focus_keyword",
		},
		{
			Name:            "aioseo",
			Label:           "All in One SEO",
			TitleKey:        "_aioseo_title",
			DescriptionKey:  "_aioseo_description",
			FocusKeywordKey: "_aioseo_keywords",
		},
		{
			Name:            "seopress",
			Label:           "SEOPress",
			TitleKey:        "_seopress_titles_title",
			DescriptionKey:  "_seopress_titles_desc",
			FocusKeywordKey: "_seopress_analysis_target_kw",
		},
	}
}
