package ndoc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndoc-lang/ndoc"
)

func TestOptionalBool(t *testing.T) {
	b, ok := ndoc.OptionalBool("true")
	require.True(t, ok)
	require.True(t, b)

	b, ok = ndoc.OptionalBool("false")
	require.True(t, ok)
	require.False(t, b)

	_, ok = ndoc.OptionalBool("")
	require.False(t, ok)

	_, ok = ndoc.OptionalBool("True")
	require.False(t, ok)
}

func TestOptionalInt(t *testing.T) {
	n, ok := ndoc.OptionalInt[int32]("-2147483648")
	require.True(t, ok)
	require.Equal(t, int32(-2147483648), n)

	n2, ok := ndoc.OptionalInt[int]("1'0")
	require.True(t, ok)
	require.Equal(t, 10, n2)

	n3, ok := ndoc.OptionalInt[int]("+10")
	require.True(t, ok)
	require.Equal(t, 10, n3)

	n4, ok := ndoc.OptionalInt[int]("-")
	require.True(t, ok)
	require.Equal(t, 0, n4)

	n5, ok := ndoc.OptionalInt[int]("")
	require.True(t, ok)
	require.Equal(t, 0, n5)

	_, ok = ndoc.OptionalInt[int]("error")
	require.False(t, ok)
}

func TestOptionalIntOnViewBytes(t *testing.T) {
	n, ok := ndoc.OptionalInt[int]([]byte("42"))
	require.True(t, ok)
	require.Equal(t, 42, n)
}
