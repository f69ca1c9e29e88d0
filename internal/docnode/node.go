package docnode

import (
	"bytes"
	"iter"
)

// Bytes is the storage-mode type parameter a Node is generic over: string
// for an owning tree whose data has its own storage, or []byte for a view
// tree whose data is a slice into a caller-supplied source buffer.
type Bytes interface {
	string | []byte
}

// Node is one element of a document tree: a name, an ordered list of data
// strings, and an ordered list of child nodes. A Document is a Node whose
// ID is empty and whose Data is empty; its Children are the document's
// top-level nodes.
//
// Node is generic over its storage mode. Document is the owned flavour
// (each string has its own backing array); ViewDocument is the borrowed
// flavour produced by ParseIntoView, whose strings point into the caller's
// source buffer.
type Node[S Bytes] struct {
	ID       S
	Data     []S
	Children []*Node[S]
}

// Document is an owning document tree, as returned by Parse.
type Document = Node[string]

// ViewDocument is a borrowing document tree, as returned by ParseIntoView.
// Every string in it is a slice of the buffer passed to ParseIntoView, and
// is invalidated by any later mutation of that buffer.
type ViewDocument = Node[[]byte]

// Find returns the first child whose ID equals key, or nil.
func (n *Node[S]) Find(key S) *Node[S] {
	for _, c := range n.Children {
		if bytesEqual(c.ID, key) {
			return c
		}
	}
	return nil
}

// RFind returns the last child whose ID equals key, or nil.
func (n *Node[S]) RFind(key S) *Node[S] {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if bytesEqual(n.Children[i].ID, key) {
			return n.Children[i]
		}
	}
	return nil
}

// All returns an iterator over the children whose ID equals key, in
// document order. The sequence is lazily evaluated and must not be reused
// across a mutation of n.Children.
func (n *Node[S]) All(key S) iter.Seq[*Node[S]] {
	return func(yield func(*Node[S]) bool) {
		for _, c := range n.Children {
			if bytesEqual(c.ID, key) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// RAll is like All but walks the children in reverse document order.
func (n *Node[S]) RAll(key S) iter.Seq[*Node[S]] {
	return func(yield func(*Node[S]) bool) {
		for i := len(n.Children) - 1; i >= 0; i-- {
			if bytesEqual(n.Children[i].ID, key) {
				if !yield(n.Children[i]) {
					return
				}
			}
		}
	}
}

// DataAt returns the datum at index i and true, or the zero value and
// false if i is out of range.
func (n *Node[S]) DataAt(i int) (S, bool) {
	if i < 0 || i >= len(n.Data) {
		var zero S
		return zero, false
	}
	return n.Data[i], true
}

// Merge appends a copy of other's data and children onto n. other is left
// unmodified.
func (n *Node[S]) Merge(other *Node[S]) {
	n.Data = append(n.Data, other.Data...)
	n.Children = append(n.Children, other.Children...)
}

// MergeMove appends other's data and children onto n and empties other.
func (n *Node[S]) MergeMove(other *Node[S]) {
	n.Data = append(n.Data, other.Data...)
	n.Children = append(n.Children, other.Children...)
	other.Data = nil
	other.Children = nil
}

// Equal reports whether n and o have the same structure: equal ID, equal
// data in order, and equal children in order, recursively.
func (n *Node[S]) Equal(o *Node[S]) bool {
	if n == nil || o == nil {
		return n == o
	}
	if !bytesEqual(n.ID, o.ID) {
		return false
	}
	if len(n.Data) != len(o.Data) {
		return false
	}
	for i := range n.Data {
		if !bytesEqual(n.Data[i], o.Data[i]) {
			return false
		}
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// bytesEqual compares two values of a Bytes type parameter by content,
// regardless of whether S is instantiated as string or []byte (which,
// unlike string, is not comparable with ==).
func bytesEqual[S Bytes](a, b S) bool {
	switch av := any(a).(type) {
	case string:
		return av == any(b).(string)
	case []byte:
		return bytes.Equal(av, any(b).([]byte))
	default:
		panic("unreachable: Bytes is constrained to string | []byte")
	}
}

// ToBytes returns the raw bytes behind a Bytes value without copying a
// []byte view, or allocating a copy for an owned string.
func ToBytes[S Bytes](s S) []byte {
	switch v := any(s).(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	default:
		panic("unreachable: Bytes is constrained to string | []byte")
	}
}
