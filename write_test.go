package ndoc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndoc-lang/ndoc"
)

func TestWriteStringBasic(t *testing.T) {
	doc, _ := ndoc.Parse([]byte("Hello world!"))
	out, err := ndoc.WriteString(doc)
	require.NoError(t, err)
	require.Equal(t, "Hello world!\n", out)
}

func TestWriteStringNestedNode(t *testing.T) {
	doc := &ndoc.Document{Children: []*ndoc.Document{
		{ID: "outer", Children: []*ndoc.Document{
			{ID: "inner", Data: []string{"v"}},
		}},
	}}
	out, err := ndoc.WriteString(doc)
	require.NoError(t, err)
	require.Equal(t, "#outer\n\tinner v\n#\n", out)
}

func TestWriteStringWithIndentOptions(t *testing.T) {
	doc := &ndoc.Document{Children: []*ndoc.Document{
		{ID: "outer", Children: []*ndoc.Document{
			{ID: "inner"},
		}},
	}}
	out, err := ndoc.WriteString(doc, ndoc.IndentWithSpaces(), ndoc.WithIndentWidth(4))
	require.NoError(t, err)
	require.Equal(t, "#outer\n    inner\n#\n", out)
}

func TestWriteStringViewDocument(t *testing.T) {
	buf := []byte("Key value\n")
	view, err := ndoc.ParseIntoView(buf)
	require.NoError(t, err)
	out, err := ndoc.WriteString(view)
	require.NoError(t, err)
	require.Equal(t, "Key value\n", out)
}

func TestWriteBlockThresholdOption(t *testing.T) {
	doc := &ndoc.Document{Children: []*ndoc.Document{
		{ID: "k", Data: []string{"0123456789"}},
	}}
	out, err := ndoc.WriteString(doc, ndoc.WithBlockThreshold(5))
	require.NoError(t, err)
	require.Contains(t, out, "k {\n")
}
