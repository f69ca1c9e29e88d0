package ndoc

import "github.com/ndoc-lang/ndoc/internal/docnode"

// Bytes is the storage-mode type parameter a Node is generic over: string
// for an owning tree whose data has its own storage, or []byte for a view
// tree whose data is a slice into a caller-supplied source buffer.
type Bytes = docnode.Bytes

// Node is one element of a document tree: a name, an ordered list of data
// strings, and an ordered list of child nodes. A Document is a Node whose
// ID is empty and whose Data is empty; its Children are the document's
// top-level nodes.
//
// Node is generic over its storage mode. Document is the owned flavour
// (each string has its own backing array); ViewDocument is the borrowed
// flavour produced by ParseIntoView, whose strings point into the caller's
// source buffer. Find, RFind, All, RAll, Merge, MergeMove, DataAt and Equal
// are defined on docnode.Node and are available directly on Node through
// this alias.
type Node[S Bytes] = docnode.Node[S]

// Document is an owning document tree, as returned by Parse.
type Document = docnode.Node[string]

// ViewDocument is a borrowing document tree, as returned by ParseIntoView.
// Every string in it is a slice of the buffer passed to ParseIntoView, and
// is invalidated by any later mutation of that buffer.
type ViewDocument = docnode.Node[[]byte]

// toBytes returns the raw bytes behind a Bytes value: a []byte view is
// returned as is, an owned string is copied into a new slice.
func toBytes[S Bytes](s S) []byte {
	return docnode.ToBytes(s)
}
