// Package prompts holds the text-generation instructions whose section labels the parser depends on.
// The instructions live in an embedded JSON file keyed by prompt name.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed product.json
var productJSON []byte

// productTemplates parses the embedded file once; a parse failure is returned on every call
var productTemplates = sync.OnceValues(func() (map[string]string, error) {
	var templates map[string]string
	if err := json.Unmarshal(productJSON, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", ProductFile, err)
	}
	return templates, nil
})

// lookup returns the named product template
func lookup(key string) (string, error) {
	templates, err := productTemplates()
	if err != nil {
		return "", err
	}
	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, ProductFile)
	}
	return tmpl, nil
}

// fill replaces {{.Key}} placeholders with values from data; unknown placeholders stay as they are
func fill(template string, data map[string]string) string {
	pairs := make([]string, 0, 2*len(data))
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
