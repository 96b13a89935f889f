package strict

// InitEmpty rewrites n in place so that every scalar leaf at every depth
// holds Missing. Nested fields are replaced with freshly constructed default
// instances of their sub-schemas before being blanked, so the resulting tree
// shares no nested node with the tree the caller passed in. Nested slots
// themselves keep holding Nodes (only their descendants become Missing),
// which is what lets Override recurse into them afterwards.
//
// Returns n for chaining: cfg := strict.InitEmpty(schema.Default()).
func InitEmpty(n *Node) *Node {
	for _, f := range n.schema.fields {
		if f.Kind == KindNode {
			n.values[f.Name] = InitEmpty(NewNode(f.Sub))
		} else {
			n.values[f.Name] = Missing
		}
	}
	return n
}

// Override merges a sparse override tree into n in place and returns n.
// Keys name declared fields of n; a map value means overrides for a nested
// sub-schema, anything else is assigned to the leaf as-is (leaf values are
// not type-checked against the declared default).
//
// The recursion decision is driven by the value currently stored at each
// key, not by the shape of the incoming override: a slot holding a *Node
// demands a map and recurses, any other slot takes the value directly. A
// Missing leaf is therefore still overridable as a scalar.
//
// All keys of the current mapping level are checked against the schema
// before anything at that level is mutated, so a single unknown key rejects
// the whole level untouched. Deeper failures leave the tree partially
// mutated; callers must discard the tree after any error.
func Override(n *Node, overrides map[string]any) (*Node, error) {
	for key := range overrides {
		if _, ok := n.schema.index[key]; !ok {
			return n, &UnknownFieldError{Schema: n.schema.name, Name: key}
		}
	}
	for key, v := range overrides {
		cur := n.values[key]
		if sub, ok := cur.(*Node); ok {
			subOverrides, ok := v.(map[string]any)
			if !ok {
				return n, &TypeMismatchError{
					Schema: n.schema.name,
					Name:   key,
					Reason: "holds a nested node, override must be a mapping, not a scalar",
				}
			}
			if _, err := Override(sub, subOverrides); err != nil {
				return n, err
			}
			continue
		}
		if _, isMap := v.(map[string]any); isMap {
			return n, &TypeMismatchError{
				Schema: n.schema.name,
				Name:   key,
				Reason: "holds a scalar leaf, override must be a scalar, not a mapping",
			}
		}
		if err := n.Set(key, v); err != nil {
			return n, err
		}
	}
	return n, nil
}
