package profiles

import (
	"errors"
	"testing"

	"github.com/jonathan/seo-content-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"aioseo", "rankmath", "seopress", "yoast"}, r.Names())

	yoast, err := r.Get("Yoast")
	require.NoError(t, err)
	assert.Equal(t, "_yoast_wpseo_metadesc", yoast.MetaKey(types.FieldMetaDescription))
	assert.Equal(t, "_yoast_wpseo_focuskw", yoast.MetaKey(types.FieldFocusKeyword))
	assert.Equal(t, "", yoast.MetaKey(types.FieldShortDescription))

	for _, p := range Builtin() {
		assert.NoError(t, p.Validate(), p.Name)
	}
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := NewRegistry().Get("nope")
	require.Error(t, err)

	var unknown *UnknownProfileError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nope", unknown.Name)
	assert.Contains(t, err.Error(), "rankmath")
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Profile{Name: " Custom ", TitleKey: "_c_title"}))

	p, err := r.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, "_c_title", p.TitleKey)

	assert.Error(t, r.Register(Profile{Name: ""}))

	var invalid *InvalidProfileError
	err = r.Register(Profile{Name: "empty-keys"})
	require.Error(t, err)
	assert.True(t, errors.As(err, &invalid))
}

func TestProfile_ExistingValue(t *testing.T) {
	p := Builtin()[1]
	meta := map[string]string{"rank_math_title": "  Stored title  "}
	assert.Equal(t, "Stored title", p.ExistingValue(meta, types.FieldMetaTitle))
	assert.Equal(t, "", p.ExistingValue(meta, types.FieldMetaDescription))
	assert.Equal(t, "", p.ExistingValue(nil, types.FieldMetaTitle))
	assert.Equal(t, "", p.ExistingValue(meta, types.FieldLongDescription))
}

func TestProfile_MetaUpdates(t *testing.T) {
	p := Profile{Name: "x", TitleKey: "t", DescriptionKey: "d", FocusKeywordKey: "k", PermalinkKey: ""}
	rec := types.ContentRecord{
		MetaTitle:       "Desk Lamp - Best",
		MetaDescription: "Desk Lamp: bright.",
		FocusKeywords:   "Desk Lamp, desk brand, premium quality, best value, top rated",
		Permalink:       "desk-lamp",
	}

	updates := p.MetaUpdates(&rec)
	assert.Equal(t, map[string]string{
		"t": "Desk Lamp - Best",
		"d": "Desk Lamp: bright.",
		"k": "Desk Lamp",
	}, updates)
}
