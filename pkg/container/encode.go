package container

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ToRaw converts a model value back to its raw form. Every present field
// appears in the output: declared fields, dynamic fields and unknown fields
// kept from the input. Absent and nil values are omitted at every level.
// A nil m yields nil.
func ToRaw(m Model) map[string]any {
	rv, s, ok := modelValue(m)
	if !ok {
		return nil
	}
	return toRaw(rv, s)
}

// MarshalJSON encodes any model value through ToRaw.
func MarshalJSON(m Model) ([]byte, error) {
	raw := ToRaw(m)
	if raw == nil {
		raw = map[string]any{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode container json: %w", err)
	}
	return data, nil
}

func toRaw(rv reflect.Value, s *schema) map[string]any {
	out := make(map[string]any)
	if !s.closed {
		ext := recordOf(rv).extensible()
		for name, val := range ext.fields {
			if _, declared := s.byName[name]; declared {
				continue
			}
			if enc := encodeValue(val); enc != nil {
				out[name] = enc
			}
		}
	}
	for _, f := range s.fields() {
		val, ok := s.value(rv, f)
		if !ok {
			continue
		}
		if enc := encodeValue(val); enc != nil {
			out[f.name] = enc
		}
	}
	return out
}

// encodeValue converts a canonical or raw value to plain maps, slices and
// scalars. It returns nil for values that must be omitted.
func encodeValue(val any) any {
	switch x := val.(type) {
	case nil:
		return nil
	case string, bool, int, float64, json.Number:
		return x
	case map[string]any:
		if x == nil {
			return nil
		}
		out := make(map[string]any, len(x))
		for k, item := range x {
			if enc := encodeValue(item); enc != nil {
				out[k] = enc
			}
		}
		return out
	case []any:
		if x == nil {
			return nil
		}
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = encodeValue(item)
		}
		return out
	case Model:
		rv, s, ok := modelValue(x)
		if !ok {
			return nil
		}
		return toRaw(rv, s)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = encodeValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return encodeValue(rv.Elem().Interface())
	}
	return val
}
