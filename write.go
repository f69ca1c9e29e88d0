package ndoc

import (
	"io"
	"strings"

	"github.com/ndoc-lang/ndoc/internal/docwriter"
)

// WriteOption configures a Write or WriteString call.
type WriteOption func(*docwriter.Config)

// IndentWithTabs selects tab indentation (the default).
func IndentWithTabs() WriteOption {
	return func(c *docwriter.Config) { c.IndentKind = docwriter.IndentTab }
}

// IndentWithSpaces selects space indentation.
func IndentWithSpaces() WriteOption {
	return func(c *docwriter.Config) { c.IndentKind = docwriter.IndentSpace }
}

// WithIndentWidth sets the number of indent characters per depth level
// (default 1).
func WithIndentWidth(n int) WriteOption {
	return func(c *docwriter.Config) { c.IndentWidth = n }
}

// WithBlockThreshold sets the datum length at or above which the writer
// forces a text (or base64) block instead of a bare identifier or quoted
// string (default 128).
func WithBlockThreshold(n int) WriteOption {
	return func(c *docwriter.Config) { c.BlockThreshold = n }
}

// WithBinaryScanThreshold sets how far into a datum the writer scans for
// binary bytes when deciding whether to emit a base64 block (default
// unbounded: the whole datum).
func WithBinaryScanThreshold(n int) WriteOption {
	return func(c *docwriter.Config) { c.BinaryScanThreshold = n }
}

// WithBase64LineWidth sets the number of base64 characters emitted per
// line before wrapping (default 60, rounded up to a multiple of 4, minimum
// 4).
func WithBase64LineWidth(n int) WriteOption {
	return func(c *docwriter.Config) { c.Base64LineWidth = n }
}

// Write walks doc's children and writes them to w. doc itself never emits
// a line: a non-empty root id or root data list is silently ignored, since
// a root cannot be round-tripped with either.
func Write[S Bytes](w io.Writer, doc *Node[S], opts ...WriteOption) error {
	var cfg docwriter.Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return docwriter.Write[S](w, doc, cfg)
}

// WriteString is Write into a freshly allocated string.
func WriteString[S Bytes](doc *Node[S], opts ...WriteOption) (string, error) {
	var sb strings.Builder
	if err := Write[S](&sb, doc, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}
