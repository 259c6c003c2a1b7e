package ebml

import "math/bits"

// pack concatenates the first n bytes of b big-endian into an unsigned
// integer.
func pack(n int, b []byte) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v = v<<8 | uint64(b[i])
	}

	return v
}

// unpack is the inverse of pack: the low n bytes of v, big-endian.
func unpack(n int, v uint64) []byte {
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}

	return b
}

// vintLength returns the octet count signalled by the first byte of a
// length-prefixed integer, 1 through 8. A first byte of 0x00 has no marker
// bit inside the byte; it still introduces an 8-octet value, so the count
// is clamped rather than treated as a ninth class.
func vintLength(b byte) int {
	n := bits.LeadingZeros8(b) + 1
	if n > 8 {
		n = 8
	}

	return n
}

// vintMax is the largest value a masked vint of length n can carry. The
// encoding with every value bit set is reserved for "unknown size".
func vintMax(n int) uint64 {
	return 1<<(7*n) - 1
}
