package ores

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// TransportError reports a failure to reach the scoring service or a
// non-success HTTP status.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ParseError reports a response body that could not be decoded as JSON.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SchemaError reports a well-formed response whose shape does not match
// the scores envelope the service is expected to return.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch: %s", e.Message)
}

func newSchemaError(results []gojsonschema.ResultError) *SchemaError {
	parts := make([]string, 0, len(results))
	for _, re := range results {
		parts = append(parts, fmt.Sprintf("%s: %s", re.Field(), re.Description()))
	}
	return &SchemaError{Message: strings.Join(parts, "; ")}
}
