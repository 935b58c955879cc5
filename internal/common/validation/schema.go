// Package validation checks inbound tool arguments against JSON schemas
// before any handler logic runs.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateInput validates a decoded argument object against a JSON schema
// document. A schema compilation failure is an error; a failed validation
// is a normal result.
func ValidateInput(input map[string]interface{}, schemaJSON string) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(input)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, e := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return out, nil
}

// FirstError returns a human-readable summary of the first validation
// failure, or "" when the result is valid.
func (r *ValidationResult) FirstError() string {
	if r.Valid || len(r.Errors) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", r.Errors[0].Field, r.Errors[0].Message)
}
