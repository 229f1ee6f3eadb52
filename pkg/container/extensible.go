package container

import "sort"

// Model is implemented by every type of the container model: ContainerGroup
// and all records.
type Model interface {
	model()
}

// Record is a Model that accepts fields beyond the ones it declares. A struct
// becomes a Record by embedding Extensible, directly or through one of the
// model's base types.
type Record interface {
	Model
	extensible() *Extensible
}

// Extensible holds the fields of a record that are not Go struct fields:
// values of dynamically registered fields and unknown fields found in the
// input. Unknown fields are kept as decoded and written back unchanged.
type Extensible struct {
	fields map[string]any
}

func (*Extensible) model() {}

func (e *Extensible) extensible() *Extensible { return e }

// Extra returns the raw value stored under name, whether it belongs to a
// dynamically registered field or to an unknown input field.
func (e *Extensible) Extra(name string) (any, bool) {
	v, ok := e.fields[name]
	return v, ok
}

// ExtraNames returns the names held in the bag, sorted.
func (e *Extensible) ExtraNames() []string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Extensible) put(name string, v any) {
	if e.fields == nil {
		e.fields = make(map[string]any)
	}
	e.fields[name] = v
}

func (e *Extensible) remove(name string) {
	delete(e.fields, name)
}
