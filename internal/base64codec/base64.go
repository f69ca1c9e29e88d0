// Package base64codec implements the block codec used by the document
// writer/parser: a tolerant base64 alphabet decoder that works in place on
// a byte buffer, and an encoder producing the same alphabet.
package base64codec

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = 0
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = byte(i)
	}
}

// DecodeInPlace decodes the base64 content of buf, overwriting its own
// storage, and returns the (shorter or equal length) decoded slice backed
// by the same array. Bytes outside the alphabet are tolerated and treated
// as the zero value, matching the format's relaxed decoder.
func DecodeInPlace(buf []byte) []byte {
	n := len(buf)
	// Count trailing '=' padding within the final quartet, if any.
	pad := 0
	for pad < 2 && pad < n && buf[n-1-pad] == '=' {
		pad++
	}

	out := 0
	i := 0
	for ; i+4 <= n; i += 4 {
		b0 := decodeTable[buf[i]]
		b1 := decodeTable[buf[i+1]]
		b2 := decodeTable[buf[i+2]]
		b3 := decodeTable[buf[i+3]]

		group := [3]byte{
			b0<<2 | b1>>4,
			b1<<4 | b2>>2,
			b2<<6 | b3,
		}

		isLastQuartet := i+4 >= n
		produce := 3
		if isLastQuartet {
			produce = 3 - pad
		}
		for j := 0; j < produce; j++ {
			buf[out] = group[j]
			out++
		}
	}

	// Tail without trailing padding: 1, 2 or 3 leftover alphabet bytes.
	tail := n - i
	if tail > 0 {
		var b [4]byte
		for j := 0; j < tail; j++ {
			b[j] = decodeTable[buf[i+j]]
		}
		switch tail {
		case 2:
			// A single leftover pair carries 12 bits: one full output byte.
			buf[out] = b[0]<<2 | b[1]>>4
			out++
		case 3:
			// Three leftover bytes carry 18 bits: two full output bytes.
			buf[out] = b[0]<<2 | b[1]>>4
			out++
			buf[out] = b[1]<<4 | b[2]>>2
			out++
		case 1:
			// A single leftover byte carries only 6 bits: not enough for
			// a full output byte, so it is dropped.
		}
	}

	return buf[:out]
}

// Encode appends the base64 encoding of src to dst and returns the
// extended slice.
func Encode(dst []byte, src []byte) []byte {
	i := 0
	for ; i+3 <= len(src); i += 3 {
		dst = appendQuartet(dst, src[i], src[i+1], src[i+2], 4)
	}
	switch rem := len(src) - i; rem {
	case 1:
		dst = appendQuartet(dst, src[i], 0, 0, 2)
	case 2:
		dst = appendQuartet(dst, src[i], src[i+1], 0, 3)
	}
	return dst
}

// appendQuartet encodes three input bytes into up to 4 alphabet characters,
// padding with '=' so that exactly 4 characters are always appended; n is
// the number of characters drawn from the alphabet before padding begins.
func appendQuartet(dst []byte, b0, b1, b2 byte, n int) []byte {
	chars := [4]byte{
		alphabet[b0>>2],
		alphabet[(b0&0x03)<<4|b1>>4],
		alphabet[(b1&0x0F)<<2|b2>>6],
		alphabet[b2&0x3F],
	}
	for i := 0; i < 4; i++ {
		if i < n {
			dst = append(dst, chars[i])
		} else {
			dst = append(dst, '=')
		}
	}
	return dst
}
