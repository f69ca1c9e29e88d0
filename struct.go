package ndoc

import "github.com/ndoc-lang/ndoc/internal/structmap"

// Marshal appends child nodes to parent for the exported fields of v (a
// struct, or a pointer to one), one per field or one per element for a
// slice field, using an `ndoc:"name,omitempty"` struct tag to override a
// field's node id or skip it when empty.
func Marshal(parent *Document, v any) error {
	return structmap.Marshal(parent, v)
}

// Unmarshal populates v (a pointer to a struct) from node's children,
// matched by `ndoc` tag or field name.
func Unmarshal(node *Document, v any) error {
	return structmap.Unmarshal(node, v)
}
