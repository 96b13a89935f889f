package strict

import "fmt"

// Node is one instance of a Schema: a mapping from declared field name to
// its current value. Values are either scalars or nested *Node instances.
// The schema's declared shape is authoritative: a nested slot can never be
// made to hold a scalar, and a scalar slot can never be made to hold a Node.
//
// A Node tree has a single owner and is not safe for concurrent mutation.
// Once resolution is finished the tree is read-only by contract.
type Node struct {
	schema *Schema
	values map[string]any
}

// NewNode constructs a default-valued instance of s. Nested fields receive
// freshly constructed default instances of their sub-schemas, so no two
// Nodes ever share a child.
func NewNode(s *Schema) *Node {
	n := &Node{
		schema: s,
		values: make(map[string]any, len(s.fields)),
	}
	for _, f := range s.fields {
		if f.Kind == KindNode {
			n.values[f.Name] = NewNode(f.Sub)
		} else {
			n.values[f.Name] = f.Default
		}
	}
	return n
}

// Schema returns the schema this node instantiates.
func (n *Node) Schema() *Schema { return n.schema }

// Get returns the current value of the named field. Unknown names fail with
// *UnknownFieldError.
func (n *Node) Get(name string) (any, error) {
	if _, ok := n.schema.index[name]; !ok {
		return nil, &UnknownFieldError{Schema: n.schema.name, Name: name}
	}
	return n.values[name], nil
}

// MustGet is Get for field names the caller knows are declared, typically
// when iterating Schema().Fields(). It panics on an unknown name.
func (n *Node) MustGet(name string) any {
	v, err := n.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Set assigns a value to the named field. Unknown names fail with
// *UnknownFieldError. A nested-node slot only accepts a *Node of its
// declared sub-schema; a scalar slot never accepts a *Node. Scalar values
// are otherwise stored as given, without type checking against the default.
func (n *Node) Set(name string, v any) error {
	f, ok := n.schema.index[name]
	if !ok {
		return &UnknownFieldError{Schema: n.schema.name, Name: name}
	}
	if f.Kind == KindNode {
		sub, isNode := v.(*Node)
		if !isNode {
			return &TypeMismatchError{
				Schema: n.schema.name,
				Name:   name,
				Reason: fmt.Sprintf("declared as nested schema %q, cannot hold %T", f.Sub.name, v),
			}
		}
		if sub.schema != f.Sub {
			return &TypeMismatchError{
				Schema: n.schema.name,
				Name:   name,
				Reason: fmt.Sprintf("declared as nested schema %q, cannot hold an instance of %q", f.Sub.name, sub.schema.name),
			}
		}
	} else if _, isNode := v.(*Node); isNode {
		return &TypeMismatchError{
			Schema: n.schema.name,
			Name:   name,
			Reason: "declared as a scalar leaf, cannot hold a nested node",
		}
	}
	n.values[name] = v
	return nil
}

// Child returns the nested node currently stored at name. It fails with
// *TypeMismatchError if the slot does not hold a node.
func (n *Node) Child(name string) (*Node, error) {
	v, err := n.Get(name)
	if err != nil {
		return nil, err
	}
	sub, ok := v.(*Node)
	if !ok {
		return nil, &TypeMismatchError{
			Schema: n.schema.name,
			Name:   name,
			Reason: fmt.Sprintf("does not currently hold a nested node (found %T)", v),
		}
	}
	return sub, nil
}

// ToMap renders the tree as nested plain maps, in schema declaration order
// of discovery. Leaves still holding Missing are rendered as the sentinel
// itself, which serializes to JSON null.
func (n *Node) ToMap() map[string]any {
	out := make(map[string]any, len(n.schema.fields))
	for _, f := range n.schema.fields {
		if sub, ok := n.values[f.Name].(*Node); ok {
			out[f.Name] = sub.ToMap()
			continue
		}
		out[f.Name] = n.values[f.Name]
	}
	return out
}
