// Package charclass classifies the raw bytes of a document source.
//
// Every predicate operates on a single byte value. The whitespace, newline,
// binary, reserved-sigil and identifier predicates are backed by a
// 256-entry lookup table built once at package initialisation, rather than
// a chain of comparisons; IsDigit and IsSign are plain comparisons. This mirrors the byte-oriented treatment the
// format requires: non-ASCII bytes are opaque identifier bytes, never
// decoded as runes.
package charclass

// category bits, one per trait a byte can carry.
type category uint8

const (
	whitespace category = 1 << iota
	newline
	binary
	reserved
)

var table [256]category

// reservedBytes terminate or introduce a grammar construct and can never be
// part of a bare identifier.
var reservedBytes = []byte{'#', '"', '{', '}', '\\', ';'}

func init() {
	for b := 0; b < 0x20; b++ {
		table[b] |= binary
	}
	table[' '] = whitespace
	table['\t'] = whitespace
	table['\n'] = newline
	table['\r'] = newline
	for _, b := range reservedBytes {
		table[b] |= reserved
	}
}

// IsWhitespace reports whether b is a space or tab.
func IsWhitespace(b byte) bool { return table[b]&whitespace != 0 }

// IsNewline reports whether b is LF or CR.
func IsNewline(b byte) bool { return table[b]&newline != 0 }

// IsBinary reports whether b is a control byte below 0x20 that is neither
// whitespace nor a newline.
func IsBinary(b byte) bool { return table[b]&binary != 0 }

// IsReservedSigil reports whether b is one of the bytes with dedicated
// grammar meaning: '#', '"', '{', '}', '\\', ';'.
func IsReservedSigil(b byte) bool { return table[b]&reserved != 0 }

// IsIdentByte reports whether b may appear in a bare identifier: anything
// that is not binary, not whitespace, not a newline and not a reserved
// sigil. Digits, '+', '-', '\'', '/' and '*' and all high-bit bytes are
// identifier bytes.
func IsIdentByte(b byte) bool {
	return table[b]&(binary|whitespace|newline|reserved) == 0
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsSign reports whether b is '+' or '-'.
func IsSign(b byte) bool { return b == '+' || b == '-' }

// selfEscaping bytes escape to themselves after a backslash: the quote
// characters, the backslash itself, whitespace and the block braces.
func isSelfEscaping(b byte) bool {
	switch b {
	case '\'', '"', '\\', ' ', '\t', '{', '}':
		return true
	}
	return false
}

// escapeDecode maps an escape letter (the byte following '\') to the byte
// it produces. ok is false for any letter not in this table and not
// self-escaping, in which case the parser raises invalid_escape.
func escapeDecode(letter byte) (b byte, ok bool) {
	switch letter {
	case '0':
		return 0x00, true
	case 'a':
		return 0x07, true
	case 'b':
		return 0x08, true
	case 'f':
		return 0x0C, true
	case 'n':
		return 0x0A, true
	case 'r':
		return 0x0D, true
	case 't':
		return 0x09, true
	case 'v':
		return 0x0B, true
	}
	if isSelfEscaping(letter) {
		return letter, true
	}
	return 0, false
}

// DecodeEscape resolves the byte following a backslash in an escape
// sequence to the single byte it represents. ok is false for an
// unrecognised escape letter, in which case the caller should raise
// invalid_escape and emit nothing.
func DecodeEscape(letter byte) (b byte, ok bool) {
	return escapeDecode(letter)
}

// writerEscapeLetter is the inverse of escapeDecode for the handful of
// control bytes the writer is required to escape by letter (LF, CR); the
// rest of the table exists for completeness per the format's character
// traits but is not exercised by the current writer rules, which pass all
// other bytes through verbatim.
var writerEscapeLetter = map[byte]byte{
	0x00: '0',
	0x07: 'a',
	0x08: 'b',
	0x0C: 'f',
	0x0A: 'n',
	0x0D: 'r',
	0x09: 't',
	0x0B: 'v',
}

// WriterEscapeLetter returns the escape letter a printable-character table
// assigns to b, if any.
func WriterEscapeLetter(b byte) (letter byte, ok bool) {
	letter, ok = writerEscapeLetter[b]
	return letter, ok
}
