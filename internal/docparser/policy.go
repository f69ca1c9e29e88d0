package docparser

// Policy abstracts the handful of string-building primitives that differ
// between the owning and the view storage mode, so a single generic parser
// can drive either. See DESIGN.md for why this is a plain generic
// interface rather than two duplicated parsers.
type Policy[S any] interface {
	// Empty returns a fresh, zero-length string value, ready to be grown
	// with AppendRun/AppendByte.
	Empty() S
	// AppendRun appends a run of raw source bytes to s and returns the
	// grown value.
	AppendRun(s S, raw []byte) S
	// AppendByte appends a single (already decoded) byte to s and returns
	// the grown value.
	AppendByte(s S, b byte) S
}

// OwnedPolicy builds plain Go strings by copying bytes out of the source.
type OwnedPolicy struct{}

func (OwnedPolicy) Empty() string { return "" }

func (OwnedPolicy) AppendRun(s string, raw []byte) string {
	return s + string(raw)
}

func (OwnedPolicy) AppendByte(s string, b byte) string {
	return s + string([]byte{b})
}

// ViewPolicy builds []byte views into buf by writing decoded bytes back
// into buf itself, at a write position that never overtakes the read
// cursor driving the parse. Every string built by a single ViewPolicy call
// sequence is therefore a contiguous, left-shifted slice of buf.
//
// dstPos only ever moves forward, and only ever to a position at or behind
// the parser's current read position: escape resolution and base64
// decoding always consume at least as many source bytes as they produce,
// so the write frontier never catches up with, let alone passes, the read
// frontier. This is the in-place rewrite the format's view mode relies on.
type ViewPolicy struct {
	Buf    []byte
	dstPos int
}

func (v *ViewPolicy) Empty() []byte {
	return v.Buf[v.dstPos:v.dstPos]
}

func (v *ViewPolicy) AppendRun(s []byte, raw []byte) []byte {
	n := copy(v.Buf[v.dstPos:], raw)
	v.dstPos += n
	return s[:len(s)+n]
}

func (v *ViewPolicy) AppendByte(s []byte, b byte) []byte {
	v.Buf[v.dstPos] = b
	v.dstPos++
	return s[:len(s)+1]
}
