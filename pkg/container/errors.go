package container

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// SchemaError reports a value that does not satisfy the container model.
// It is the only error kind returned by this package.
//
// Value keeps the offending value for callers that need it, but Error never
// prints string contents: container text is clinical data and must not leak
// into logs.
type SchemaError struct {
	// Path locates the field, e.g. "unstructured[0].data.concepts[2].begin".
	Path string

	// Value is the rejected value.
	Value any

	// Reason is a human-readable explanation.
	Reason string

	// nonCritical marks violations that permissive mode downgrades to warnings.
	nonCritical bool
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema: %s (got %s)", e.Reason, describeValue(e.Value))
	}
	return fmt.Sprintf("schema: %s: %s (got %s)", e.Path, e.Reason, describeValue(e.Value))
}

// IsSchemaError reports whether err is, or wraps, a *SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

func newSchemaError(path string, value any, format string, args ...any) *SchemaError {
	return &SchemaError{
		Path:   path,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}

// describeValue summarizes a value without revealing string contents.
func describeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string of length %d", utf8.RuneCountInString(val))
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return "number " + val.String()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("number %v", val)
	case map[string]any:
		return fmt.Sprintf("object with %d fields", len(val))
	case []any:
		return fmt.Sprintf("array of length %d", len(val))
	default:
		return fmt.Sprintf("%T", v)
	}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func indexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
