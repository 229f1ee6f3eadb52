package container

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Kind identifies the shape of a field value.
type Kind int

// Field kinds understood by the model
const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindBool
	KindObject
	KindAny
	KindRecord
	KindList
)

// String returns the name used in schema listings and error messages
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindAny:
		return "any"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// FieldType describes the type of a declared or dynamically registered field.
//
// Values of a field are held in their canonical Go form: string, int,
// float64, bool, map[string]any, any, *R for a record type R, and []E for a
// list whose elements have canonical type E.
type FieldType struct {
	kind   Kind
	elem   *FieldType
	record reflect.Type
}

// Primitive field types
var (
	StringField = FieldType{kind: KindString}
	IntField    = FieldType{kind: KindInt}
	FloatField  = FieldType{kind: KindFloat}
	BoolField   = FieldType{kind: KindBool}
	ObjectField = FieldType{kind: KindObject}
	AnyField    = FieldType{kind: KindAny}
)

// ListOf returns the type of a list whose items have type elem.
func ListOf(elem FieldType) FieldType {
	e := elem
	return FieldType{kind: KindList, elem: &e}
}

// RecordOf returns the field type for record type T. T is a struct type that
// embeds Extensible, directly or through Entity, Annotation, Container or
// another record; values are held as *T.
func RecordOf[T any]() FieldType {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return FieldType{kind: KindRecord, record: t}
}

// Kind returns the shape of the field
func (ft FieldType) Kind() Kind { return ft.kind }

// Elem returns the item type of a list field. It panics for other kinds.
func (ft FieldType) Elem() FieldType {
	if ft.kind != KindList {
		panic("container: Elem of non-list field type")
	}
	return *ft.elem
}

// String renders the type as it appears in schema listings, e.g. "list<Concept>".
func (ft FieldType) String() string {
	switch ft.kind {
	case KindRecord:
		return ft.record.Name()
	case KindList:
		return "list<" + ft.elem.String() + ">"
	default:
		return ft.kind.String()
	}
}

func (ft FieldType) valid() bool {
	switch ft.kind {
	case KindString, KindInt, KindFloat, KindBool, KindObject, KindAny:
		return true
	case KindRecord:
		return ft.record != nil && ft.record.Kind() == reflect.Struct &&
			reflect.PointerTo(ft.record).Implements(modelType)
	case KindList:
		return ft.elem != nil && ft.elem.valid()
	default:
		return false
	}
}

// prepare builds the schemas of the record types ft refers to.
func (ft FieldType) prepare() {
	switch ft.kind {
	case KindRecord:
		schemaOf(ft.record)
	case KindList:
		ft.elem.prepare()
	}
}

// goType is the canonical Go type of values of this field type.
func (ft FieldType) goType() reflect.Type {
	switch ft.kind {
	case KindString:
		return stringType
	case KindInt:
		return intType
	case KindFloat:
		return floatType
	case KindBool:
		return boolType
	case KindObject:
		return objectType
	case KindRecord:
		return reflect.PointerTo(ft.record)
	case KindList:
		return reflect.SliceOf(ft.elem.goType())
	default:
		return anyType
	}
}

var (
	stringType     = reflect.TypeOf("")
	intType        = reflect.TypeOf(0)
	floatType      = reflect.TypeOf(float64(0))
	boolType       = reflect.TypeOf(false)
	objectType     = reflect.TypeOf(map[string]any(nil))
	anyType        = reflect.TypeOf((*any)(nil)).Elem()
	modelType      = reflect.TypeOf((*Model)(nil)).Elem()
	recordType     = reflect.TypeOf((*Record)(nil)).Elem()
	extensibleType = reflect.TypeOf(Extensible{})
	annotationType = reflect.TypeOf(Annotation{})
)

// spanPart marks the three Annotation fields that are kept unexported and
// validated together.
type spanPart int

const (
	spanNone spanPart = iota
	spanBegin
	spanEnd
	spanText
)

type field struct {
	name     string
	ft       FieldType
	required bool
	dynamic  bool
	// index locates the struct field, or the embedded Annotation for span parts.
	index []int
	span  spanPart
	// ptr is set for optional primitives stored behind a pointer (*string, *int, ...).
	ptr bool
}

type schema struct {
	name     string
	typ      reflect.Type
	closed   bool
	declared []*field
	dynamic  []*field
	byName   map[string]*field
	byNorm   map[string]*field
	// annIndex locates the embedded Annotation; nil when the record has no span.
	annIndex []int
	hasSpan  bool
}

var (
	schemas   sync.Map // reflect.Type -> *schema
	namesMu   sync.RWMutex
	typeNames = map[string]reflect.Type{}
)

// normalize folds a field name for misspelling detection.
func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// schemaOf returns the schema of struct type t, building it on first use.
func schemaOf(t reflect.Type) *schema {
	if s, ok := schemas.Load(t); ok {
		return s.(*schema)
	}
	built := buildSchema(t)
	actual, loaded := schemas.LoadOrStore(t, built)
	if !loaded {
		namesMu.Lock()
		typeNames[t.Name()] = t
		namesMu.Unlock()
	}
	return actual.(*schema)
}

func buildSchema(t reflect.Type) *schema {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("container: %s is not a struct type", t))
	}
	s := &schema{
		name:   t.Name(),
		typ:    t,
		closed: !reflect.PointerTo(t).Implements(recordType),
		byName: make(map[string]*field),
		byNorm: make(map[string]*field),
	}
	s.collect(t, nil)
	return s
}

func (s *schema) collect(t reflect.Type, index []int) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := make([]int, len(index)+1)
		copy(idx, index)
		idx[len(index)] = i

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if sf.Type == extensibleType {
				continue
			}
			s.collect(sf.Type, idx)
			continue
		}

		tag, ok := sf.Tag.Lookup("acd")
		if !ok || tag == "-" {
			continue
		}
		if !sf.IsExported() {
			panic(fmt.Sprintf("container: field %s.%s is tagged but not exported", t.Name(), sf.Name))
		}
		name, opts, _ := strings.Cut(tag, ",")
		ft, ptr, ok := fieldTypeOf(sf.Type)
		if !ok {
			panic(fmt.Sprintf("container: field %s.%s has unsupported type %s", t.Name(), sf.Name, sf.Type))
		}
		s.add(&field{
			name:     name,
			ft:       ft,
			required: opts == "required",
			index:    idx,
			ptr:      ptr,
		})
	}

	if t == annotationType {
		if s.hasSpan {
			panic(fmt.Sprintf("container: %s embeds Annotation more than once", s.name))
		}
		s.hasSpan = true
		s.annIndex = index
		s.add(&field{name: "begin", ft: IntField, required: true, index: index, span: spanBegin})
		s.add(&field{name: "end", ft: IntField, required: true, index: index, span: spanEnd})
		s.add(&field{name: "coveredText", ft: StringField, index: index, span: spanText})
	}
}

func (s *schema) add(f *field) {
	if _, dup := s.byName[f.name]; dup {
		panic(fmt.Sprintf("container: duplicate field %q in %s", f.name, s.name))
	}
	if other, dup := s.byNorm[normalize(f.name)]; dup {
		panic(fmt.Sprintf("container: field %q collides with %q in %s", f.name, other.name, s.name))
	}
	if f.dynamic {
		s.dynamic = append(s.dynamic, f)
	} else {
		s.declared = append(s.declared, f)
	}
	s.byName[f.name] = f
	s.byNorm[normalize(f.name)] = f
}

// fields returns declared fields followed by dynamic ones.
func (s *schema) fields() []*field {
	out := make([]*field, 0, len(s.declared)+len(s.dynamic))
	out = append(out, s.declared...)
	return append(out, s.dynamic...)
}

// fieldTypeOf maps the Go type of a declared struct field to its FieldType.
func fieldTypeOf(t reflect.Type) (ft FieldType, ptr bool, ok bool) {
	switch t.Kind() {
	case reflect.String:
		return StringField, false, true
	case reflect.Int:
		return IntField, false, true
	case reflect.Float64:
		return FloatField, false, true
	case reflect.Bool:
		return BoolField, false, true
	case reflect.Map:
		if t == objectType {
			return ObjectField, false, true
		}
	case reflect.Interface:
		if t == anyType {
			return AnyField, false, true
		}
	case reflect.Pointer:
		e := t.Elem()
		switch e.Kind() {
		case reflect.String, reflect.Int, reflect.Float64, reflect.Bool:
			ft, _, ok := fieldTypeOf(e)
			return ft, true, ok
		case reflect.Struct:
			if reflect.PointerTo(e).Implements(modelType) {
				return FieldType{kind: KindRecord, record: e}, false, true
			}
		}
	case reflect.Slice:
		elem, elemPtr, ok := fieldTypeOf(t.Elem())
		if ok && !elemPtr {
			return ListOf(elem), false, true
		}
	}
	return FieldType{}, false, false
}

// RegisterField declares a new optional field on record type T, process-wide.
// After registration the field is decoded, validated, serialized and mutated
// exactly like a declared one; its value lives in the record's Extensible bag
// and is read with Field or Get.
//
// RegisterField is meant for program startup. It must not run concurrently
// with Parse, Decode or any other use of T.
//
// It fails when T does not accept new fields (ContainerGroup), when the name
// already exists, or when the name looks like a misspelling of an existing
// field (same name once underscores are removed and case is folded).
func RegisterField[T any](name string, ft FieldType) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || !reflect.PointerTo(t).Implements(modelType) {
		return newSchemaError(name, nil, "%s is not a record type", t)
	}
	s := schemaOf(t)
	path := joinPath(s.name, name)
	if s.closed {
		return newSchemaError(path, nil, "%s does not accept new fields", s.name)
	}
	if name == "" {
		return newSchemaError(path, nil, "field name must not be empty")
	}
	if !ft.valid() {
		return newSchemaError(path, nil, "invalid field type")
	}
	if _, dup := s.byName[name]; dup {
		return newSchemaError(path, nil, "field already exists")
	}
	if other, dup := s.byNorm[normalize(name)]; dup {
		return newSchemaError(path, nil, "field name is too similar to existing field %q", other.name)
	}
	ft.prepare()
	s.add(&field{name: name, ft: ft, dynamic: true})
	return nil
}

// FieldInfo describes one field of a record type.
type FieldInfo struct {
	Name     string
	Type     FieldType
	Required bool
	Dynamic  bool
}

// Describe lists the fields of the named record type, declared fields first.
// Only types that have been used or registered are known.
func Describe(typeName string) ([]FieldInfo, bool) {
	namesMu.RLock()
	t, ok := typeNames[typeName]
	namesMu.RUnlock()
	if !ok {
		return nil, false
	}
	s := schemaOf(t)
	out := make([]FieldInfo, 0, len(s.declared)+len(s.dynamic))
	for _, f := range s.fields() {
		out = append(out, FieldInfo{Name: f.name, Type: f.ft, Required: f.required, Dynamic: f.dynamic})
	}
	return out, true
}

// RecordTypes returns the names of all known record types, sorted.
func RecordTypes() []string {
	namesMu.RLock()
	defer namesMu.RUnlock()
	out := make([]string, 0, len(typeNames))
	for name := range typeNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
