package ndoc

import "github.com/ndoc-lang/ndoc/internal/docparser"

// ErrorKind identifies one of the error or warning conditions a parse can
// raise. Values 0-7 are errors; 8-10 are warnings.
type ErrorKind = docparser.Kind

const (
	IllegalCharacter          = docparser.IllegalCharacter
	NodeNotClosed             = docparser.NodeNotClosed
	CommentNotClosed          = docparser.CommentNotClosed
	StringNotClosed           = docparser.StringNotClosed
	BlockNotClosed            = docparser.BlockNotClosed
	TooManyNodeClosingMarkers = docparser.TooManyNodeClosingMarkers
	BadCodec                  = docparser.BadCodec
	RecursionLimitReached     = docparser.RecursionLimitReached
	RequireNewline            = docparser.RequireNewline
	InvalidEscape             = docparser.InvalidEscape
	BadBlockClose             = docparser.BadBlockClose
)

// ErrorSink receives one call per error or warning raised during a parse,
// up to the parse's configured error limit. b is the offending byte where
// applicable (0 otherwise); line and column are 1-based.
type ErrorSink = docparser.Sink

// ParseError is one recorded error or warning, with its source location.
type ParseError = docparser.Error

// ParseErrors collects every ParseError raised by a single parse. It
// satisfies the error interface, so Parse can return it directly.
type ParseErrors = docparser.Errors
