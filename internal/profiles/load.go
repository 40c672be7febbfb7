package profiles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML document shape for custom profiles:
//
//	profiles:
//	  - name: custom
//	    title_key: _custom_title
//	    description_key: _custom_desc
type File struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadFile reads custom profiles from a YAML file and registers them, overriding built-ins
// with the same name.
func (r *Registry) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return r.LoadYAML(path, raw)
}

// LoadYAML registers the profiles in raw; source labels errors
func (r *Registry) LoadYAML(source string, raw []byte) error {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return &LoadError{Path: source, Message: "invalid YAML", Cause: err}
	}
	if len(f.Profiles) == 0 {
		return &LoadError{Path: source, Message: "no profiles defined"}
	}
	for i, p := range f.Profiles {
		if err := r.Register(p); err != nil {
			return &LoadError{Path: source, Message: fmt.Sprintf("profile at index %d", i), Cause: err}
		}
	}
	return nil
}
