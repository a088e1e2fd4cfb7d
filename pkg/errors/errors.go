package errors

import (
	"fmt"
)

// ConfigurationError reports an internally inconsistent schema or theme
// definition detected while building it. It is never raised during
// resolution; a schema that constructs successfully stays valid for its
// lifetime.
type ConfigurationError struct {
	Component string
	Message   string
	Err       error
}

// NewConfigurationError constructs a ConfigurationError for the named
// component (a schema, variable set, or theme file).
func NewConfigurationError(component, message string, err error) error {
	return &ConfigurationError{Component: component, Message: message, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LookupError reports a theme token dereferenced by a schema factory that is
// absent from the bound theme. It surfaces when the theme is bound, before
// any resolution happens.
type LookupError struct {
	Category string
	Token    string
}

// NewLookupError constructs a LookupError for a missing token.
func NewLookupError(category, token string) error {
	return &LookupError{Category: category, Token: token}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("lookup error: theme has no %s token %q", e.Category, e.Token)
}

// ParseError represents a YAML theme file that could not be read, with
// optional line metadata extracted from the decoder.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
