package strict

import "fmt"

// FieldKind tags a declared field as either a scalar leaf or a nested
// sub-schema. The tree walkers dispatch on this tag rather than inspecting
// runtime types of declared metadata.
type FieldKind int

const (
	// KindScalar marks a leaf field holding a plain value.
	KindScalar FieldKind = iota
	// KindNode marks a field holding an instance of a nested sub-schema.
	KindNode
)

// Field is the declared metadata for one attribute of a Schema.
type Field struct {
	Name    string
	Kind    FieldKind
	Default any     // scalar default; may be Missing to mark the field required
	Sub     *Schema // sub-schema, set only when Kind == KindNode
}

// Schema is the closed set of declared fields for one configuration type.
// It is fixed once built; Nodes consult it on every read and write.
type Schema struct {
	name   string
	fields []*Field
	index  map[string]*Field
}

// Builder assembles a Schema. Field order is declaration order.
type Builder struct {
	schema *Schema
}

// NewSchema starts a Builder for a schema with the given name. The name only
// appears in error messages and rendering, not in lookups.
func NewSchema(name string) *Builder {
	return &Builder{schema: &Schema{
		name:  name,
		index: make(map[string]*Field),
	}}
}

// Scalar declares a leaf field with a default value. Pass Missing as the
// default to mark the field as required-but-unset.
func (b *Builder) Scalar(name string, def any) *Builder {
	b.add(&Field{Name: name, Kind: KindScalar, Default: def})
	return b
}

// Node declares a field holding a nested instance of sub.
func (b *Builder) Node(name string, sub *Schema) *Builder {
	if sub == nil {
		panic(fmt.Sprintf("strict: nested field %q of schema %q declared with a nil sub-schema", name, b.schema.name))
	}
	b.add(&Field{Name: name, Kind: KindNode, Sub: sub})
	return b
}

func (b *Builder) add(f *Field) {
	if _, dup := b.schema.index[f.Name]; dup {
		panic(fmt.Sprintf("strict: duplicate field %q in schema %q", f.Name, b.schema.name))
	}
	b.schema.fields = append(b.schema.fields, f)
	b.schema.index[f.Name] = f
}

// Build finalizes the schema. The field set never grows or shrinks after
// this point.
func (b *Builder) Build() *Schema {
	return b.schema
}

// Name returns the schema's display name.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared fields in declaration order. Callers must not
// modify the returned slice.
func (s *Schema) Fields() []*Field { return s.fields }

// Field looks up a declared field by name.
func (s *Schema) Field(name string) (*Field, bool) {
	f, ok := s.index[name]
	return f, ok
}
