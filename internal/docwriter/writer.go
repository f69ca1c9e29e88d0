// Package docwriter implements the writer half of the format: a recursive
// walk over a document tree that chooses, per id and per datum, among bare
// identifier, quoted string, text block and base64 block encodings, and
// emits the chosen form through an io.Writer.
package docwriter

import (
	"io"

	"github.com/ndoc-lang/ndoc/internal/base64codec"
	"github.com/ndoc-lang/ndoc/internal/charclass"
	"github.com/ndoc-lang/ndoc/internal/docnode"
)

// IndentKind selects the byte used to indent nested nodes and block
// content. The zero value is IndentTab, matching the writer's default.
type IndentKind int

const (
	IndentTab IndentKind = iota
	IndentSpace
)

// Config configures a single write. The zero Config is valid; Write fills
// in the documented defaults for any field left at its zero value.
type Config struct {
	IndentKind          IndentKind
	IndentWidth         int
	BlockThreshold      int
	BinaryScanThreshold int
	Base64LineWidth     int
}

func (c Config) normalized() Config {
	if c.IndentWidth <= 0 {
		c.IndentWidth = 1
	}
	if c.BlockThreshold <= 0 {
		c.BlockThreshold = 128
	}
	if c.Base64LineWidth <= 0 {
		c.Base64LineWidth = 60
	}
	if c.Base64LineWidth < 4 {
		c.Base64LineWidth = 4
	}
	if rem := c.Base64LineWidth % 4; rem != 0 {
		c.Base64LineWidth += 4 - rem
	}
	return c
}

// Write walks root's children (a root never emits a line for itself) and
// writes them to w per cfg.
func Write[S docnode.Bytes](w io.Writer, root *docnode.Node[S], cfg Config) error {
	wr := &writer[S]{w: w, cfg: cfg.normalized()}
	wr.writeNodeList(root.Children, 1)
	return wr.err
}

type writer[S docnode.Bytes] struct {
	w   io.Writer
	cfg Config
	err error
}

func (wr *writer[S]) write(b []byte) {
	if wr.err != nil || len(b) == 0 {
		return
	}
	_, wr.err = wr.w.Write(b)
}

func (wr *writer[S]) writeByte(b byte) { wr.write([]byte{b}) }
func (wr *writer[S]) writeString(s string) { wr.write([]byte(s)) }

func (wr *writer[S]) indent(levels int) {
	if levels <= 0 {
		return
	}
	n := levels * wr.cfg.IndentWidth
	ch := byte('\t')
	if wr.cfg.IndentKind == IndentSpace {
		ch = ' '
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ch
	}
	wr.write(buf)
}

func (wr *writer[S]) writeNodeList(children []*docnode.Node[S], depth int) {
	for _, c := range children {
		wr.writeNode(c, depth)
		if wr.err != nil {
			return
		}
	}
}

func (wr *writer[S]) writeNode(n *docnode.Node[S], depth int) {
	lvl := depth - 1
	wr.indent(lvl)
	hasChildren := len(n.Children) > 0
	if hasChildren {
		wr.writeByte('#')
	}
	wr.writeID(n.ID)
	for _, d := range n.Data {
		wr.writeByte(' ')
		wr.writeDatum(d, lvl)
	}
	wr.writeByte('\n')
	if hasChildren {
		wr.writeNodeList(n.Children, depth+1)
		wr.indent(lvl)
		wr.writeByte('#')
		wr.writeByte('\n')
	}
}

// writeID encodes a node's id: a bare identifier if non-empty and every
// byte qualifies, a quoted string otherwise. An id is never written as a
// block.
func (wr *writer[S]) writeID(id S) {
	raw := docnode.ToBytes(id)
	if len(raw) > 0 && isAllIdentBytes(raw) {
		wr.write(raw)
		return
	}
	wr.writeQuotedString(raw)
}

// writeDatum applies the per-datum encoding choice: empty data is always a
// quoted string; a binary byte within the scan window forces a base64
// block; data at or past the block threshold become a text block; an
// all-identifier-byte run is written bare; anything else is a quoted
// string. lvl is the indentation level of the node's own line.
func (wr *writer[S]) writeDatum(d S, lvl int) {
	raw := docnode.ToBytes(d)
	switch {
	case len(raw) == 0:
		wr.writeQuotedString(raw)
	case wr.hasBinaryWithin(raw):
		wr.writeBase64Block(raw, lvl)
	case len(raw) >= wr.cfg.BlockThreshold:
		wr.writeTextBlock(raw, lvl)
	case isAllIdentBytes(raw):
		wr.write(raw)
	default:
		wr.writeQuotedString(raw)
	}
}

func (wr *writer[S]) hasBinaryWithin(raw []byte) bool {
	// BinaryScanThreshold's documented default is unbounded: the whole
	// datum. Only a caller-supplied positive value narrows the window, and
	// even then never below BlockThreshold.
	limit := len(raw)
	if wr.cfg.BinaryScanThreshold > 0 {
		limit = wr.cfg.BlockThreshold
		if wr.cfg.BinaryScanThreshold > limit {
			limit = wr.cfg.BinaryScanThreshold
		}
		if limit > len(raw) {
			limit = len(raw)
		}
	}
	for i := 0; i < limit; i++ {
		if charclass.IsBinary(raw[i]) {
			return true
		}
	}
	return false
}

func isAllIdentBytes(raw []byte) bool {
	for _, b := range raw {
		if !charclass.IsIdentByte(b) {
			return false
		}
	}
	return true
}

func (wr *writer[S]) writeQuotedString(raw []byte) {
	wr.writeByte('"')
	for _, b := range raw {
		switch b {
		case '\\':
			wr.write([]byte{'\\', '\\'})
		case '"':
			wr.write([]byte{'\\', '"'})
		case '\n':
			wr.write([]byte{'\\', 'n'})
		case '\r':
			wr.write([]byte{'\\', 'r'})
		default:
			wr.writeByte(b)
		}
	}
	wr.writeByte('"')
}

func (wr *writer[S]) writeTextBlock(raw []byte, lvl int) {
	wr.writeByte('{')
	wr.writeByte('\n')
	wr.indent(lvl + 1)
	for i, b := range raw {
		if i == 0 && charclass.IsWhitespace(b) {
			wr.writeByte('\\')
		}
		switch b {
		case '\\':
			wr.write([]byte{'\\', '\\'})
		case '\n':
			wr.writeByte('\n')
			wr.indent(lvl + 1)
		case '\r':
			wr.write([]byte{'\\', 'r'})
		default:
			wr.writeByte(b)
		}
	}
	wr.writeByte('\n')
	wr.indent(lvl)
	wr.writeByte('}')
}

func (wr *writer[S]) writeBase64Block(raw []byte, lvl int) {
	wr.writeString("{ base64")
	wr.writeByte('\n')
	wr.indent(lvl + 1)

	encoded := base64codec.Encode(nil, raw)
	width := wr.cfg.Base64LineWidth
	for i := 0; i < len(encoded); i += width {
		end := i + width
		if end > len(encoded) {
			end = len(encoded)
		}
		if i > 0 {
			wr.writeByte('\n')
			wr.indent(lvl + 1)
		}
		wr.write(encoded[i:end])
	}

	wr.writeByte('\n')
	wr.indent(lvl)
	wr.writeByte('}')
}
