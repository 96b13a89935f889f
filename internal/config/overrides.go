package config

import "context"

// Overrides is a sparse, possibly nested override tree. Leaf keys name
// declared schema fields; a map[string]any value names overrides for a
// nested sub-schema. The structure carries no schema knowledge of its own,
// strictness is enforced when it is applied to a tree.
type Overrides = map[string]any

// Loader is the interface for a format-specific override-file loader. Each
// path may be a single file or a directory searched recursively; files are
// merged in the order encountered, later files winning.
type Loader interface {
	Load(ctx context.Context, paths ...string) (Overrides, error)
}

// Merge folds src into dst recursively and returns dst. Sub-maps present on
// both sides are merged key by key; any other collision takes src's value.
// A nil dst is promoted to an empty mapping first.
func Merge(dst, src Overrides) Overrides {
	if dst == nil {
		dst = Overrides{}
	}
	for key, v := range src {
		srcSub, srcIsMap := v.(map[string]any)
		dstSub, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = Merge(dstSub, srcSub)
			continue
		}
		dst[key] = v
	}
	return dst
}
