package base64codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("hello"),
		[]byte("hello world, this is a longer message for base64"),
		{0x00, 0x01, 0xFF, 0x80, 0x7F},
	}

	for _, src := range cases {
		encoded := Encode(nil, src)
		decoded := DecodeInPlace(append([]byte(nil), encoded...))
		assert.Equal(t, src, decoded, "round trip of %q", src)
	}
}

func TestDecodeKnownVector(t *testing.T) {
	// "hello" base64-encodes to "aGVsbG8=".
	decoded := DecodeInPlace([]byte("aGVsbG8="))
	require.Equal(t, []byte("hello"), decoded)
}

func TestDecodeNoPaddingTail(t *testing.T) {
	// Each '=' in a padded final quartet removes one output byte.
	require.Equal(t, []byte("hello"), DecodeInPlace([]byte("aGVsbG8=")))

	// With its '=' stripped, "ab" leaves a tail of 3 bytes, which yields two
	// output bytes.
	full := Encode(nil, []byte("ab"))
	noPad := full[:len(full)-1] // strip trailing '='
	require.Equal(t, []byte("ab"), DecodeInPlace(noPad))

	// A full quartet needs no padding and leaves no tail.
	full = Encode(nil, []byte("abc"))
	require.Equal(t, []byte("abc"), DecodeInPlace(full))
}

func TestDecodeToleratesInvalidBytes(t *testing.T) {
	// Stray bytes outside the alphabet decode as zero rather than erroring.
	out := DecodeInPlace([]byte("AA~~"))
	require.Len(t, out, 3)
}

func TestEncodeLength(t *testing.T) {
	require.Equal(t, 0, len(Encode(nil, []byte{})))
	require.Equal(t, 4, len(Encode(nil, []byte{1})))
	require.Equal(t, 4, len(Encode(nil, []byte{1, 2})))
	require.Equal(t, 4, len(Encode(nil, []byte{1, 2, 3})))
	require.Equal(t, 8, len(Encode(nil, []byte{1, 2, 3, 4})))
}
