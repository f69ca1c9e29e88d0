// Package docparser implements the recursive-descent parser described by
// the format's core contexts: node-body, node-header, node-data,
// single-data, identifier, string, block (with its codec, body and
// per-line contexts), and comments.
//
// The same Parser[S] drives both storage modes through the Policy[S]
// abstraction (policy.go): instantiated with OwnedPolicy it builds a tree
// of plain strings; instantiated with a *ViewPolicy it builds a tree of
// []byte slices borrowed from, and rewritten in place inside, the caller's
// source buffer.
package docparser

import (
	"github.com/ndoc-lang/ndoc/internal/base64codec"
	"github.com/ndoc-lang/ndoc/internal/charclass"
	"github.com/ndoc-lang/ndoc/internal/cursor"
	"github.com/ndoc-lang/ndoc/internal/docnode"
)

const (
	// DefaultMaxDepth is the recursion limit applied when a Config leaves
	// MaxDepth unset.
	DefaultMaxDepth = 2000
	// DefaultErrorLimit is the error budget applied when a Config leaves
	// ErrorLimit unset.
	DefaultErrorLimit = 10
)

// Config configures a single parse.
type Config struct {
	MaxDepth   int
	ErrorLimit int
	Sink       Sink
}

// Parser drives a recursive-descent parse of buf into a docnode.Node[S],
// using policy to build the id/data strings of the tree.
type Parser[S docnode.Bytes] struct {
	cur      *cursor.Cursor
	rawBuf   []byte
	policy   Policy[S]
	maxDepth int
	errLeft  int
	sink     Sink
}

// New returns a Parser ready to parse buf with the given policy and
// configuration.
func New[S docnode.Bytes](buf []byte, policy Policy[S], cfg Config) *Parser[S] {
	sink := cfg.Sink
	if sink == nil {
		sink = func(Kind, byte, int, int) {}
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	errLimit := cfg.ErrorLimit
	if errLimit <= 0 {
		errLimit = DefaultErrorLimit
	}
	return &Parser[S]{
		cur:      cursor.New(buf),
		rawBuf:   buf,
		policy:   policy,
		maxDepth: maxDepth,
		errLeft:  errLimit,
		sink:     sink,
	}
}

// Parse runs the parser to completion and returns the document root. It
// always returns a tree, possibly partial, and never panics on malformed
// input; errors and warnings are reported through the Sink.
func (p *Parser[S]) Parse() *docnode.Node[S] {
	root := &docnode.Node[S]{}
	p.nodeBody(root, 0, 0)
	return root
}

func (p *Parser[S]) raise(kind Kind, b byte, pos int) {
	if p.errLeft <= 0 {
		return
	}
	p.errLeft--
	line, col := p.cur.PositionToLineColumn(pos)
	p.sink(kind, b, line, col)
}

type dataKind int

const (
	dataKindNone dataKind = iota
	dataKindIdentifier
	dataKindString
	dataKindBlock
)

func detectDataKind(b byte) dataKind {
	switch {
	case charclass.IsIdentByte(b):
		return dataKindIdentifier
	case b == '"':
		return dataKindString
	case b == '{':
		return dataKindBlock
	default:
		return dataKindNone
	}
}

// nodeBody consumes the body of a node (or the document root at depth 0),
// appending a child to node for every header line it finds, until it hits
// a balancing closing '#', EOF, or (for depth 0) simply EOF.
func (p *Parser[S]) nodeBody(node *docnode.Node[S], depth int, startPos int) {
	for {
		p.skipWhitespaceAndNewlines()

		if p.cur.Eof() {
			if depth > 0 {
				p.raise(NodeNotClosed, 0, startPos)
			}
			return
		}

		if p.cur.Current() == '/' {
			if ok, _ := p.tryComment(); ok {
				continue
			}
			// Not a comment: '/' is an ordinary identifier byte, fall
			// through to header parsing below.
		}

		nestedStartPos := p.cur.Pos()
		isNested := false
		if p.cur.Current() == '#' {
			p.cur.Advance()
			if p.cur.Eof() || charclass.IsWhitespace(p.cur.Current()) || charclass.IsNewline(p.cur.Current()) {
				if depth == 0 {
					p.raise(TooManyNodeClosingMarkers, '#', nestedStartPos)
				}
				return
			}
			isNested = true
		}

		kind := detectDataKind(p.cur.Current())
		if kind != dataKindIdentifier && kind != dataKindString {
			p.raise(IllegalCharacter, p.cur.Current(), p.cur.Pos())
			p.cur.Advance()
			continue
		}

		child := p.nodeHeader(node, kind)
		switch {
		case depth+1 >= p.maxDepth:
			p.raise(RecursionLimitReached, 0, nestedStartPos)
			p.skipToEndOfLine()
		case isNested:
			p.nodeBody(child, depth+1, nestedStartPos)
		}
	}
}

func (p *Parser[S]) skipWhitespaceAndNewlines() {
	for !p.cur.Eof() {
		c := p.cur.Current()
		if charclass.IsWhitespace(c) || charclass.IsNewline(c) {
			p.cur.Advance()
			continue
		}
		break
	}
}

func (p *Parser[S]) skipWhitespace() {
	for !p.cur.Eof() && charclass.IsWhitespace(p.cur.Current()) {
		p.cur.Advance()
	}
}

func (p *Parser[S]) skipToEndOfLine() {
	for !p.cur.Eof() && !charclass.IsNewline(p.cur.Current()) {
		p.cur.Advance()
	}
}

// nodeHeader appends a fresh child to parent, reads its id, and then reads
// its data list for the remainder of the header line.
func (p *Parser[S]) nodeHeader(parent *docnode.Node[S], headerKind dataKind) *docnode.Node[S] {
	child := &docnode.Node[S]{}
	parent.Children = append(parent.Children, child)
	child.ID = p.singleData(headerKind)
	p.nodeData(child)
	return child
}

// nodeData consumes the data list for the remainder of the current header
// line: a whitespace-separated run of identifier/string/block data, a
// semicolon (hard terminator), a backslash line-continuation, or a
// newline (soft terminator, left unconsumed).
func (p *Parser[S]) nodeData(node *docnode.Node[S]) {
	for {
		p.skipWhitespace()
		if p.cur.Eof() {
			return
		}

		c := p.cur.Current()

		if c == '/' {
			ok, crossed := p.tryComment()
			if ok {
				if crossed {
					return
				}
				continue
			}
			// Not a comment: fall through, '/' starts an identifier datum.
		}

		c = p.cur.Current()
		switch {
		case c == ';':
			p.cur.Advance()
			return
		case c == '\\':
			p.cur.Advance()
			p.skipWhitespaceUntilNewline()
			continue
		case charclass.IsNewline(c):
			return
		}

		kind := detectDataKind(c)
		if kind == dataKindNone {
			p.raise(IllegalCharacter, c, p.cur.Pos())
			p.cur.Advance()
			continue
		}
		node.Data = append(node.Data, p.singleData(kind))
	}
}

// skipWhitespaceUntilNewline is used after a line-continuation backslash
// and after a block's codec word: only whitespace is permitted before the
// newline; anything else raises require_newline and discards the rest of
// the line. The terminating newline (or EOF) is always consumed.
func (p *Parser[S]) skipWhitespaceUntilNewline() {
	for {
		if p.cur.Eof() {
			return
		}
		c := p.cur.Current()
		if charclass.IsNewline(c) {
			p.cur.Advance()
			return
		}
		if charclass.IsWhitespace(c) {
			p.cur.Advance()
			continue
		}
		p.raise(RequireNewline, c, p.cur.Pos())
		p.skipToEndOfLine()
		if !p.cur.Eof() {
			p.cur.Advance()
		}
		return
	}
}

func (p *Parser[S]) singleData(kind dataKind) S {
	switch kind {
	case dataKindIdentifier:
		return p.parseIdentifier()
	case dataKindString:
		return p.parseString()
	case dataKindBlock:
		return p.parseBlock()
	default:
		return p.policy.Empty()
	}
}

func (p *Parser[S]) parseIdentifier() S {
	start := p.cur.Pos()
	for !p.cur.Eof() && charclass.IsIdentByte(p.cur.Current()) {
		p.cur.Advance()
	}
	return p.policy.AppendRun(p.policy.Empty(), p.rawBuf[start:p.cur.Pos()])
}

func (p *Parser[S]) parseString() S {
	openPos := p.cur.Pos()
	p.cur.Advance() // consume opening '"'
	result := p.policy.Empty()
	for {
		if p.cur.Eof() {
			p.raise(StringNotClosed, 0, openPos)
			return result
		}
		c := p.cur.Current()
		if c == '"' {
			p.cur.Advance()
			return result
		}
		if charclass.IsNewline(c) {
			p.raise(StringNotClosed, 0, openPos)
			return result
		}
		if c == '\\' {
			if b, ok := p.readEscapeCharacter(); ok {
				result = p.policy.AppendByte(result, b)
			}
			continue
		}
		start := p.cur.Pos()
		for !p.cur.Eof() {
			cc := p.cur.Current()
			if cc == '"' || cc == '\\' || charclass.IsNewline(cc) {
				break
			}
			p.cur.Advance()
		}
		if end := p.cur.Pos(); end > start {
			result = p.policy.AppendRun(result, p.rawBuf[start:end])
		}
	}
}

// readEscapeCharacter consumes the backslash and the byte after it,
// emitting the single byte the escape decodes to. The letter is always
// consumed, even when it does not name a valid escape, so the parser
// always makes progress.
func (p *Parser[S]) readEscapeCharacter() (b byte, ok bool) {
	p.cur.Advance() // consume '\\'
	if p.cur.Eof() {
		return 0, false
	}
	letter := p.cur.Current()
	pos := p.cur.Pos()
	p.cur.Advance()
	decoded, decodeOK := charclass.DecodeEscape(letter)
	if !decodeOK {
		p.raise(InvalidEscape, letter, pos)
		return 0, false
	}
	return decoded, true
}

func (p *Parser[S]) parseBlock() S {
	openPos := p.cur.Pos()
	p.cur.Advance() // consume '{'
	p.skipWhitespace()
	if p.cur.Eof() {
		p.raise(BlockNotClosed, 0, openPos)
		return p.policy.Empty()
	}

	isBase64 := false
	if charclass.IsIdentByte(p.cur.Current()) {
		codecStart := p.cur.Pos()
		for !p.cur.Eof() && charclass.IsIdentByte(p.cur.Current()) {
			p.cur.Advance()
		}
		switch string(p.rawBuf[codecStart:p.cur.Pos()]) {
		case "base64":
			isBase64 = true
		case "text":
		default:
			p.raise(BadCodec, 0, codecStart)
		}
	}
	p.skipWhitespaceUntilNewline()

	data := p.parseBlockBody(openPos, isBase64)
	if isBase64 {
		data = decodeBase64InPlace(data)
	}
	return data
}

// parseBlockBody reads block content up to and including the closing '}',
// fixing the block's indentation from its first content line per §4.5.1.
func (p *Parser[S]) parseBlockBody(openPos int, isBase64 bool) S {
	data := p.policy.Empty()

	lineStart := p.cur.Pos()
	indent := 0
	for !p.cur.Eof() && charclass.IsWhitespace(p.cur.Current()) {
		p.cur.Advance()
		indent++
	}

	isFirstLine := true
	for {
		if p.cur.Eof() {
			p.raise(BlockNotClosed, 0, openPos)
			return data
		}

		if p.cur.Current() == '}' {
			column := p.cur.Pos() - lineStart
			if isFirstLine || column < indent {
				p.cur.Advance()
				return data
			}
			p.raise(BadBlockClose, '}', p.cur.Pos())
			// Falls through: the '}' is kept as ordinary block content.
		}

		if !isFirstLine && !isBase64 {
			data = p.policy.AppendByte(data, '\n')
		}
		data = p.blockLine(data)
		isFirstLine = false

		if p.cur.Eof() {
			continue // top of loop raises block_not_closed
		}
		lineStart = p.cur.Pos()
		skipped := 0
		for skipped < indent && !p.cur.Eof() && charclass.IsWhitespace(p.cur.Current()) {
			p.cur.Advance()
			skipped++
		}
	}
}

// blockLine reads one physical line of block content: a maximal run of
// bytes that are neither newline nor backslash, resolving any escape
// sequences it encounters, stopping at (and consuming) the line's newline.
func (p *Parser[S]) blockLine(data S) S {
	for {
		if p.cur.Eof() {
			return data
		}
		c := p.cur.Current()
		if charclass.IsNewline(c) {
			p.cur.Advance()
			return data
		}
		if c == '\\' {
			if b, ok := p.readEscapeCharacter(); ok {
				data = p.policy.AppendByte(data, b)
			}
			continue
		}
		start := p.cur.Pos()
		for !p.cur.Eof() {
			cc := p.cur.Current()
			if charclass.IsNewline(cc) || cc == '\\' {
				break
			}
			p.cur.Advance()
		}
		if end := p.cur.Pos(); end > start {
			data = p.policy.AppendRun(data, p.rawBuf[start:end])
		}
	}
}

// tryComment attempts to consume a comment starting at the current '/'.
// isComment reports whether a comment was actually consumed (a lone '/'
// that isn't followed by '/' or '*' is not a comment at all, and is left
// untouched for the caller to treat as an identifier byte); crossed
// reports whether a newline was consumed as part of the comment.
func (p *Parser[S]) tryComment() (isComment, crossed bool) {
	next := p.cur.PeekNext()
	switch next {
	case '*':
		openPos := p.cur.Pos()
		p.cur.Advance()
		p.cur.Advance()
		for {
			if p.cur.Eof() {
				p.raise(CommentNotClosed, 0, openPos)
				return true, crossed
			}
			c := p.cur.Current()
			if charclass.IsNewline(c) {
				crossed = true
			}
			if c == '*' && p.cur.PeekNext() == '/' {
				p.cur.Advance()
				p.cur.Advance()
				return true, crossed
			}
			p.cur.Advance()
		}
	case '/':
		p.cur.Advance()
		p.cur.Advance()
		p.skipToEndOfLine()
		if !p.cur.Eof() {
			p.cur.Advance()
		}
		return true, true
	default:
		return false, false
	}
}

// decodeBase64InPlace resolves a block's gathered content as base64,
// shrinking it to the decoded bytes. For the view policy this mutates the
// same backing array the content slice already points into; for the owned
// policy it operates on a throwaway copy, since the string already has its
// own storage.
func decodeBase64InPlace[S docnode.Bytes](s S) S {
	switch v := any(s).(type) {
	case string:
		decoded := base64codec.DecodeInPlace([]byte(v))
		return any(string(decoded)).(S)
	case []byte:
		decoded := base64codec.DecodeInPlace(v)
		return any(decoded).(S)
	default:
		panic("unreachable: docnode.Bytes is constrained to string | []byte")
	}
}
