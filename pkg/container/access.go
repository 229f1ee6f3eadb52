package container

import (
	"reflect"
)

func annotationAt(rv reflect.Value, index []int) *Annotation {
	return rv.FieldByIndex(index).Addr().Interface().(*Annotation)
}

func recordOf(rv reflect.Value) Record {
	return rv.Addr().Interface().(Record)
}

func modelValue(m Model) (reflect.Value, *schema, bool) {
	rv := reflect.ValueOf(m)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, nil, false
	}
	return rv.Elem(), schemaOf(rv.Elem().Type()), true
}

// value reads field f of rv in canonical form. Absent optional fields report false.
func (s *schema) value(rv reflect.Value, f *field) (any, bool) {
	if f.dynamic {
		val, ok := recordOf(rv).extensible().Extra(f.name)
		return val, ok && !isNil(val)
	}
	switch f.span {
	case spanBegin:
		return annotationAt(rv, f.index).begin, true
	case spanEnd:
		return annotationAt(rv, f.index).end, true
	case spanText:
		text, ok := annotationAt(rv, f.index).CoveredText()
		if !ok {
			return nil, false
		}
		return text, true
	}

	fv := rv.FieldByIndex(f.index)
	if f.ptr {
		if fv.IsNil() {
			return nil, false
		}
		return fv.Elem().Interface(), true
	}
	switch fv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		if fv.IsNil() {
			return nil, false
		}
	}
	return fv.Interface(), true
}

// assign stores a canonical value, or clears the field when val is nil.
// Span parts are written without checks; callers validate the span.
func (s *schema) assign(rv reflect.Value, f *field, val any) {
	if f.dynamic {
		ext := recordOf(rv).extensible()
		if val == nil {
			ext.remove(f.name)
		} else {
			ext.put(f.name, val)
		}
		return
	}
	switch f.span {
	case spanBegin:
		annotationAt(rv, f.index).begin = val.(int)
		return
	case spanEnd:
		annotationAt(rv, f.index).end = val.(int)
		return
	case spanText:
		a := annotationAt(rv, f.index)
		if val == nil {
			a.coveredText = nil
		} else {
			text := val.(string)
			a.coveredText = &text
		}
		return
	}

	fv := rv.FieldByIndex(f.index)
	if val == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return
	}
	if f.ptr {
		p := reflect.New(fv.Type().Elem())
		p.Elem().Set(reflect.ValueOf(val))
		fv.Set(p)
		return
	}
	fv.Set(reflect.ValueOf(val))
}

// Get returns the value of a declared, dynamic or unknown field of m in
// canonical form. Absent fields report false.
func Get(m Model, name string) (any, bool) {
	rv, s, ok := modelValue(m)
	if !ok {
		return nil, false
	}
	if f, ok := s.byName[name]; ok {
		return s.value(rv, f)
	}
	if s.closed {
		return nil, false
	}
	val, ok := recordOf(rv).extensible().Extra(name)
	return val, ok && val != nil
}

// Field returns the value of a field of m as a V. It reports false when the
// field is absent or holds a value of another type.
//
//	sentences, _ := container.Field[[]*Sentence](data, "sentences")
func Field[V any](m Model, name string) (V, bool) {
	var zero V
	val, ok := Get(m, name)
	if !ok {
		return zero, false
	}
	typed, ok := val.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set assigns a field of m by name with the same checks Parse applies.
// Declared and dynamic fields are converted strictly to their type; other
// names become unknown fields, unless they look like a misspelling of a known
// field. A nil value removes the field. The record is unchanged when Set
// fails.
func (v *Validator) Set(m Model, name string, value any) error {
	rv, s, ok := modelValue(m)
	if !ok {
		return newSchemaError(name, nil, "target must be a non-nil record pointer")
	}
	if isNil(value) {
		return v.Delete(m, name)
	}

	f, known := s.byName[name]
	if !known {
		if other, ok := s.byNorm[normalize(name)]; ok {
			return newSchemaError(name, nil, "unknown field looks like a misspelling of %q", other.name)
		}
		if s.closed {
			return newSchemaError(name, nil, "extra fields not permitted in %s", s.name)
		}
		if err := checkJSONValue(value, name); err != nil {
			return err
		}
		recordOf(rv).extensible().put(name, value)
		return nil
	}

	conv, err := v.convert(value, f.ft, name)
	if err != nil {
		return err
	}
	if f.span != spanNone {
		a := annotationAt(rv, f.index)
		begin, end, text := a.begin, a.end, a.coveredText
		switch f.span {
		case spanBegin:
			begin = conv.(int)
		case spanEnd:
			end = conv.(int)
		case spanText:
			covered := conv.(string)
			text = &covered
		}
		if err := v.checkSpan("", begin, end, text); err != nil {
			return err
		}
		a.begin, a.end, a.coveredText = begin, end, text
		return nil
	}
	s.assign(rv, f, conv)
	return nil
}

// Delete removes a field of m. Required fields cannot be removed. Deleting an
// absent field is a no-op.
func (v *Validator) Delete(m Model, name string) error {
	rv, s, ok := modelValue(m)
	if !ok {
		return newSchemaError(name, nil, "target must be a non-nil record pointer")
	}
	f, known := s.byName[name]
	if !known {
		if !s.closed {
			recordOf(rv).extensible().remove(name)
		}
		return nil
	}
	if f.required {
		return newSchemaError(name, nil, "required field cannot be removed")
	}
	s.assign(rv, f, nil)
	return nil
}

// Validate re-checks m and everything reachable from it: required fields,
// value types of dynamic fields and the span of every annotation. It catches
// records that were built as struct literals instead of being decoded.
func (v *Validator) Validate(m Model) error {
	rv, s, ok := modelValue(m)
	if !ok {
		return newSchemaError("", nil, "target must be a non-nil record pointer")
	}
	return v.check(rv, s, "")
}

func (v *Validator) check(rv reflect.Value, s *schema, path string) error {
	for _, f := range s.fields() {
		fpath := joinPath(path, f.name)
		val, ok := s.value(rv, f)
		if !ok {
			if f.required {
				return newSchemaError(fpath, nil, "field required")
			}
			continue
		}
		if f.dynamic && reflect.TypeOf(val) != f.ft.goType() && f.ft.kind != KindAny {
			return newSchemaError(fpath, val, "expected a value of type %s", f.ft)
		}
		if err := v.checkValue(val, f.ft, fpath); err != nil {
			return err
		}
	}
	if s.hasSpan {
		a := annotationAt(rv, s.annIndex)
		return v.checkSpan(path, a.begin, a.end, a.coveredText)
	}
	return nil
}

func (v *Validator) checkValue(val any, ft FieldType, path string) error {
	switch ft.kind {
	case KindRecord:
		rv := reflect.ValueOf(val)
		if rv.IsNil() {
			return newSchemaError(path, nil, "record must not be null")
		}
		return v.check(rv.Elem(), schemaOf(ft.record), path)
	case KindList:
		rv := reflect.ValueOf(val)
		for i := 0; i < rv.Len(); i++ {
			ipath := indexPath(path, i)
			item := rv.Index(i).Interface()
			if isNil(item) {
				return newSchemaError(ipath, nil, "list items must not be null")
			}
			if err := v.checkValue(item, *ft.elem, ipath); err != nil {
				return err
			}
		}
	}
	return nil
}
