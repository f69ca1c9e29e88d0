// Package ndoc implements a hierarchical, human-editable document format:
// a tree of nodes, each with an identifier, an ordered list of string data,
// and an ordered list of child nodes, written in a terse line-oriented
// syntax with optional block (multi-line text or base64) data.
//
// Parse builds an owning Document, copying every id and datum out of the
// source. ParseIntoView builds a ViewDocument whose strings are slices of
// the caller's own buffer, rewritten in place as escapes and base64 blocks
// are resolved; it trades a copy for an allocation-light parse of a buffer
// the caller already owns.
//
// Write and WriteString serialize either tree shape back to the format,
// choosing per id and per datum among a bare identifier, a quoted string,
// a text block, and a base64 block.
package ndoc
