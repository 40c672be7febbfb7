package profiles

import (
	"fmt"
	"strings"
)

// UnknownProfileError is returned when a profile name is not registered
type UnknownProfileError struct {
	Name  string
	Known []string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown plugin profile %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// InvalidProfileError describes a profile that fails structural checks
type InvalidProfileError struct {
	Name    string
	Message string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid plugin profile %q: %s", e.Name, e.Message)
}

// LoadError represents a failure reading or decoding a profiles file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load profiles %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load profiles %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
