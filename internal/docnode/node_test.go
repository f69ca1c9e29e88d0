package docnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sample() *Document {
	return &Document{
		Children: []*Document{
			{ID: "a", Data: []string{"1"}},
			{ID: "b", Data: []string{"2"}},
			{ID: "a", Data: []string{"3"}},
		},
	}
}

func TestFindAndRFind(t *testing.T) {
	doc := sample()

	found := doc.Find("a")
	require.NotNil(t, found)
	require.Equal(t, "1", found.Data[0])

	last := doc.RFind("a")
	require.NotNil(t, last)
	require.Equal(t, "3", last.Data[0])

	require.Nil(t, doc.Find("missing"))
}

func TestAllAndRAll(t *testing.T) {
	doc := sample()

	var forward []string
	for n := range doc.All("a") {
		forward = append(forward, n.Data[0])
	}
	require.Equal(t, []string{"1", "3"}, forward)

	var backward []string
	for n := range doc.RAll("a") {
		backward = append(backward, n.Data[0])
	}
	require.Equal(t, []string{"3", "1"}, backward)
}

func TestAllStopsOnFalseYield(t *testing.T) {
	doc := sample()
	var seen int
	for range doc.All("a") {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

func TestDataAt(t *testing.T) {
	n := &Document{Data: []string{"x", "y"}}
	v, ok := n.DataAt(0)
	require.True(t, ok)
	require.Equal(t, "x", v)

	_, ok = n.DataAt(5)
	require.False(t, ok)

	_, ok = n.DataAt(-1)
	require.False(t, ok)
}

func TestMerge(t *testing.T) {
	a := &Document{Data: []string{"x"}, Children: []*Document{{ID: "c1"}}}
	b := &Document{Data: []string{"y"}, Children: []*Document{{ID: "c2"}}}

	a.Merge(b)
	require.Equal(t, []string{"x", "y"}, a.Data)
	require.Len(t, a.Children, 2)
	require.Len(t, b.Children, 1, "Merge must not mutate other")
}

func TestMergeMove(t *testing.T) {
	a := &Document{}
	b := &Document{Data: []string{"y"}, Children: []*Document{{ID: "c2"}}}

	a.MergeMove(b)
	require.Equal(t, []string{"y"}, a.Data)
	require.Len(t, a.Children, 1)
	require.Nil(t, b.Data)
	require.Nil(t, b.Children)
}

func TestEqual(t *testing.T) {
	a := sample()
	b := sample()
	require.True(t, a.Equal(b))

	c := sample()
	c.Children[0].Data[0] = "different"
	require.False(t, a.Equal(c))
}

func TestEqualViewAndBytesEqual(t *testing.T) {
	a := &ViewDocument{ID: []byte("x"), Data: [][]byte{[]byte("1")}}
	b := &ViewDocument{ID: []byte("x"), Data: [][]byte{[]byte("1")}}
	require.True(t, a.Equal(b))

	b.Data[0] = []byte("2")
	require.False(t, a.Equal(b))
}

func TestToBytes(t *testing.T) {
	require.Equal(t, []byte("hi"), ToBytes("hi"))
	require.Equal(t, []byte("hi"), ToBytes([]byte("hi")))
}
