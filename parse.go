package ndoc

import (
	"fmt"

	"github.com/ndoc-lang/ndoc/internal/docparser"
)

// ParseOption configures a Parse or ParseIntoView call.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxDepth   int
	errorLimit int
	sink       ErrorSink
}

// WithMaxDepth overrides the recursion limit (default 2000).
func WithMaxDepth(n int) ParseOption {
	return func(c *parseConfig) { c.maxDepth = n }
}

// WithErrorLimit overrides the maximum number of error/warning sink
// invocations for one parse (default 10).
func WithErrorLimit(n int) ParseOption {
	return func(c *parseConfig) { c.errorLimit = n }
}

// WithErrorSink installs a callback invoked for every error or warning
// raised during the parse, in place of the default behaviour of collecting
// them into the ParseErrors returned alongside the document.
func WithErrorSink(sink ErrorSink) ParseOption {
	return func(c *parseConfig) { c.sink = sink }
}

func buildParseConfig(opts []ParseOption) parseConfig {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func formatParseError(kind ErrorKind, b byte, line, column int) string {
	if b == 0 {
		return fmt.Sprintf("%s at line %d, column %d", kind, line, column)
	}
	return fmt.Sprintf("%s (byte %#02x) at line %d, column %d", kind, b, line, column)
}

// Parse parses src into an owning Document: every id and datum gets its
// own string, independent of src.
//
// Without a WithErrorSink option, every error and warning raised during the
// parse is collected and returned as a ParseErrors (nil if the parse was
// clean). With an explicit error sink, the caller has taken over error
// reporting and Parse always returns a nil error. Either way, Parse never
// fails outright: it always returns a usable, possibly partial, document.
func Parse(src []byte, opts ...ParseOption) (*Document, error) {
	cfg := buildParseConfig(opts)

	var collected ParseErrors
	sink := cfg.sink
	if sink == nil {
		sink = func(kind ErrorKind, b byte, line, column int) {
			collected = append(collected, &ParseError{
				Kind:    kind,
				Byte:    b,
				Line:    line,
				Column:  column,
				Message: formatParseError(kind, b, line, column),
			})
		}
	}

	p := docparser.New[string](src, docparser.OwnedPolicy{}, docparser.Config{
		MaxDepth:   cfg.maxDepth,
		ErrorLimit: cfg.errorLimit,
		Sink:       sink,
	})
	root := p.Parse()

	if cfg.sink != nil || len(collected) == 0 {
		return root, nil
	}
	return root, collected
}

// ParseIntoView parses buf into a ViewDocument: every id and datum is a
// slice of buf itself, rewritten in place as escapes and base64 blocks are
// resolved. buf must not be read or mutated by the caller until the
// returned tree is no longer needed, and must not be a string's backing
// array (it is written to).
//
// Error handling follows Parse.
func ParseIntoView(buf []byte, opts ...ParseOption) (*ViewDocument, error) {
	cfg := buildParseConfig(opts)

	var collected ParseErrors
	sink := cfg.sink
	if sink == nil {
		sink = func(kind ErrorKind, b byte, line, column int) {
			collected = append(collected, &ParseError{
				Kind:    kind,
				Byte:    b,
				Line:    line,
				Column:  column,
				Message: formatParseError(kind, b, line, column),
			})
		}
	}

	p := docparser.New[[]byte](buf, &docparser.ViewPolicy{Buf: buf}, docparser.Config{
		MaxDepth:   cfg.maxDepth,
		ErrorLimit: cfg.errorLimit,
		Sink:       sink,
	})
	root := p.Parse()

	if cfg.sink != nil || len(collected) == 0 {
		return root, nil
	}
	return root, collected
}
