package apiclient

import (
	"slices"
	"strings"
)

// FieldError describes a single invalid or inconsistent field.
type FieldError struct {
	// Field is the name of the descriptor field or environment variable.
	Field  string
	Reason string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Reason
}

// ConfigurationError is returned when the descriptor can't be loaded because required fields are missing
// or inconsistent with the flags they depend on. The process should not continue with such a descriptor.
type ConfigurationError struct {
	Problems []FieldError
}

func (e *ConfigurationError) Error() string {
	problems := make([]string, len(e.Problems))
	for i, problem := range e.Problems {
		problems[i] = problem.String()
	}
	return "invalid API client configuration: " + strings.Join(problems, "; ")
}

// Fields returns the names of the offending fields, in the order they were found.
func (e *ConfigurationError) Fields() []string {
	var result []string
	for _, problem := range e.Problems {
		if !slices.Contains(result, problem.Field) {
			result = append(result, problem.Field)
		}
	}
	return result
}
