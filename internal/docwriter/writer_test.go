package docwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndoc-lang/ndoc/internal/docnode"
)

func writeOwned(t *testing.T, root *docnode.Node[string], cfg Config) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Write[string](&sb, root, cfg))
	return sb.String()
}

func TestWriteBareIdentifier(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "Hello", Data: []string{"world!"}},
	}}
	require.Equal(t, "Hello world!\n", writeOwned(t, root, Config{}))
}

func TestWriteQuotesNonIdentifierBytes(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{"has space"}},
	}}
	require.Equal(t, "key \"has space\"\n", writeOwned(t, root, Config{}))
}

func TestWriteEmptyDatumIsQuotedString(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{""}},
	}}
	require.Equal(t, "key \"\"\n", writeOwned(t, root, Config{}))
}

func TestWriteNestedNodeGetsHashPrefixAndCloser(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "parent", Children: []*docnode.Document{
			{ID: "child", Data: []string{"v"}},
		}},
	}}
	require.Equal(t, "#parent\n\tchild v\n#\n", writeOwned(t, root, Config{}))
}

func TestWriteQuotedStringEscapes(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{"a\"b\\c\nd\re"}},
	}}
	require.Equal(t, "key \"a\\\"b\\\\c\\nd\\re\"\n", writeOwned(t, root, Config{}))
}

func TestWriteTextBlockAboveThreshold(t *testing.T) {
	long := strings.Repeat("x", 130)
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{long}},
	}}
	out := writeOwned(t, root, Config{})
	require.True(t, strings.HasPrefix(out, "key {\n\t"))
	require.True(t, strings.HasSuffix(out, "\n}\n"))
	require.Contains(t, out, long)
}

func TestWriteTextBlockEscapesLeadingWhitespace(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{" " + strings.Repeat("a", 128)}},
	}}
	out := writeOwned(t, root, Config{})
	require.Contains(t, out, "{\n\t\\ aaa")
}

func TestWriteBase64BlockForBinaryData(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{"a\x00b"}},
	}}
	out := writeOwned(t, root, Config{})
	require.True(t, strings.HasPrefix(out, "key { base64\n\t"))
}

func TestBinaryScanThresholdDefaultIsUnbounded(t *testing.T) {
	// A binary byte past the block threshold must still force base64 when
	// BinaryScanThreshold is left at its zero value.
	datum := strings.Repeat("a", 200) + "\x01"
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{datum}},
	}}
	out := writeOwned(t, root, Config{})
	require.Contains(t, out, "{ base64")
}

func TestBinaryScanThresholdLimitsExplicitScan(t *testing.T) {
	// With an explicit, narrow scan window the trailing binary byte is
	// never seen, so the writer falls back to a text block instead.
	datum := strings.Repeat("a", 200) + "\x01"
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{datum}},
	}}
	out := writeOwned(t, root, Config{BlockThreshold: 128, BinaryScanThreshold: 4})
	require.NotContains(t, out, "base64")
	require.Contains(t, out, "key {\n")
}

func TestWriteIDQuotedWhenNotAllIdentBytes(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "has space"},
	}}
	require.Equal(t, "\"has space\"\n", writeOwned(t, root, Config{}))
}

func TestWriteRootIDAndDataIgnored(t *testing.T) {
	root := &docnode.Document{ID: "ignored", Data: []string{"ignored"}, Children: []*docnode.Document{
		{ID: "a"},
	}}
	require.Equal(t, "a\n", writeOwned(t, root, Config{}))
}

func TestWriteIndentWithSpaces(t *testing.T) {
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "parent", Children: []*docnode.Document{
			{ID: "child"},
		}},
	}}
	out := writeOwned(t, root, Config{IndentKind: IndentSpace, IndentWidth: 2})
	require.Equal(t, "#parent\n  child\n#\n", out)
}

func TestBase64LineWidthNormalizedToMultipleOfFour(t *testing.T) {
	cfg := Config{Base64LineWidth: 1}
	require.Equal(t, 4, cfg.normalized().Base64LineWidth)

	cfg = Config{Base64LineWidth: 61}
	require.Equal(t, 64, cfg.normalized().Base64LineWidth)
}

func TestWriteBase64BlockWraps(t *testing.T) {
	raw := strings.Repeat("\x01\x02\x03", 40) // 120 bytes -> 160 base64 chars
	root := &docnode.Document{Children: []*docnode.Document{
		{ID: "key", Data: []string{raw}},
	}}
	out := writeOwned(t, root, Config{Base64LineWidth: 8})
	// Every wrapped content line (between the header and the closing '}')
	// holds at most 8 base64 characters.
	lines := strings.Split(out, "\n")
	for _, l := range lines[1 : len(lines)-2] {
		require.LessOrEqual(t, len(strings.TrimLeft(l, "\t")), 8)
	}
}
