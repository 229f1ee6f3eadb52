package container

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
)

// DecodeRaw decodes a JSON object into the raw form accepted by Parse.
// Numbers are kept as json.Number so integers survive exactly.
func DecodeRaw(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode container json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode container json: unexpected data after top-level object")
	}
	return raw, nil
}

// Parse builds a ContainerGroup from its raw form. A nil map yields an empty
// group.
func (v *Validator) Parse(raw map[string]any) (*ContainerGroup, error) {
	group := &ContainerGroup{}
	if err := v.Decode(raw, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Decode fills dst, a pointer to any model type, from its raw form. dst is
// reset first. Unknown keys are kept in the record's Extensible bag, or
// rejected when they look like a misspelling of a known field or when dst
// does not accept extra fields.
func (v *Validator) Decode(raw map[string]any, dst Model) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return newSchemaError("", nil, "decode target must be a non-nil pointer")
	}
	elem := rv.Elem()
	elem.Set(reflect.Zero(elem.Type()))
	return v.fill(elem, schemaOf(elem.Type()), raw, "")
}

// fill decodes raw into the addressable struct value rv.
func (v *Validator) fill(rv reflect.Value, s *schema, raw map[string]any, path string) error {
	for _, f := range s.fields() {
		val, ok := raw[f.name]
		fpath := joinPath(path, f.name)
		if !ok || val == nil {
			if f.required {
				return newSchemaError(fpath, nil, "field required")
			}
			continue
		}
		conv, err := v.convert(val, f.ft, fpath)
		if err != nil {
			return err
		}
		s.assign(rv, f, conv)
	}

	unknown := make([]string, 0)
	for key := range raw {
		if _, known := s.byName[key]; !known {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		kpath := joinPath(path, key)
		if other, ok := s.byNorm[normalize(key)]; ok {
			return newSchemaError(kpath, nil, "unknown field looks like a misspelling of %q", other.name)
		}
		if s.closed {
			return newSchemaError(kpath, nil, "extra fields not permitted in %s", s.name)
		}
		if raw[key] == nil {
			continue
		}
		recordOf(rv).extensible().put(key, raw[key])
	}

	if s.hasSpan {
		a := annotationAt(rv, s.annIndex)
		a.validator = v
		return v.checkSpan(path, a.begin, a.end, a.coveredText)
	}
	return nil
}

// convert turns an input value into the canonical Go value for ft.
func (v *Validator) convert(val any, ft FieldType, path string) (any, error) {
	switch ft.kind {
	case KindString:
		if s, ok := val.(string); ok {
			return s, nil
		}
		return nil, newSchemaError(path, val, "expected a string")
	case KindInt:
		if n, ok := toInt(val); ok {
			return n, nil
		}
		return nil, newSchemaError(path, val, "expected an integer")
	case KindFloat:
		f, ok := toFloat(val)
		if !ok {
			return nil, newSchemaError(path, val, "expected a number")
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newSchemaError(path, val, "expected a finite number")
		}
		return f, nil
	case KindBool:
		if b, ok := val.(bool); ok {
			return b, nil
		}
		return nil, newSchemaError(path, val, "expected a boolean")
	case KindObject:
		if m, ok := val.(map[string]any); ok {
			return m, nil
		}
		return nil, newSchemaError(path, val, "expected an object")
	case KindAny:
		if err := checkJSONValue(val, path); err != nil {
			return nil, err
		}
		return val, nil
	case KindRecord:
		return v.convertRecord(val, ft.record, path)
	case KindList:
		return v.convertList(val, ft, path)
	}
	return nil, newSchemaError(path, val, "invalid field type")
}

func (v *Validator) convertRecord(val any, t reflect.Type, path string) (any, error) {
	switch x := val.(type) {
	case map[string]any:
		ptr := reflect.New(t)
		if err := v.fill(ptr.Elem(), schemaOf(t), x, path); err != nil {
			return nil, err
		}
		return ptr.Interface(), nil
	case []any:
		// An empty list stands for an empty record.
		if len(x) == 0 {
			ptr := reflect.New(t)
			if err := v.fill(ptr.Elem(), schemaOf(t), nil, path); err != nil {
				return nil, err
			}
			return ptr.Interface(), nil
		}
	}
	rv := reflect.ValueOf(val)
	if rv.IsValid() && rv.Type() == reflect.PointerTo(t) && !rv.IsNil() {
		if err := v.check(rv.Elem(), schemaOf(t), path); err != nil {
			return nil, err
		}
		return val, nil
	}
	return nil, newSchemaError(path, val, "expected an object of type %s", t.Name())
}

func (v *Validator) convertList(val any, ft FieldType, path string) (any, error) {
	target := ft.goType()
	// An empty object stands for an empty list.
	if m, ok := val.(map[string]any); ok && len(m) == 0 {
		return reflect.MakeSlice(target, 0, 0).Interface(), nil
	}
	rv := reflect.ValueOf(val)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, newSchemaError(path, val, "expected a list")
	}
	out := reflect.MakeSlice(target, rv.Len(), rv.Len())
	for i := 0; i < rv.Len(); i++ {
		ipath := indexPath(path, i)
		item := rv.Index(i).Interface()
		if isNil(item) {
			return nil, newSchemaError(ipath, nil, "list items must not be null")
		}
		conv, err := v.convert(item, *ft.elem, ipath)
		if err != nil {
			return nil, err
		}
		out.Index(i).Set(reflect.ValueOf(conv))
	}
	return out.Interface(), nil
}

func toInt(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if int64(int(n)) != n {
			return 0, false
		}
		return int(n), true
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(n).Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case json.Number:
		i, err := n.Int64()
		if err != nil || int64(int(i)) != i {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

func toFloat(val any) (float64, bool) {
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := toInt(val); ok {
		return float64(i), true
	}
	return 0, false
}

func isNil(val any) bool {
	if val == nil {
		return true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// checkJSONValue reports values that cannot be written back as JSON.
func checkJSONValue(val any, path string) error {
	switch x := val.(type) {
	case nil, string, bool, json.Number:
		return nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return newSchemaError(path, val, "expected a finite number")
		}
		return nil
	case map[string]any:
		for k, item := range x {
			if err := checkJSONValue(item, joinPath(path, k)); err != nil {
				return err
			}
		}
		return nil
	case Model:
		return nil
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return nil
	case reflect.Float32:
		return checkJSONValue(rv.Float(), path)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := checkJSONValue(rv.Index(i).Interface(), indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return checkJSONValue(rv.Elem().Interface(), path)
	}
	return newSchemaError(path, val, "value of type %T cannot be represented in a container", val)
}
