// SPDX-License-Identifier: EPL-2.0

// Package bitpack converts between sequences of symbolic bits and packed
// bytes.
//
// Bits are represented as bytes valued 0 or 1. Packing is LSB-first:
// within each output byte, the first bit of the chunk occupies bit
// position 0 and the eighth occupies bit position 7. The final byte is
// zero-padded when the bit count is not a multiple of 8, so the caller
// must carry the exact bit count alongside the packed bytes to unpack
// unambiguously.
package bitpack

import "errors"

// ErrShortBuffer reports that a packed buffer holds fewer bits than the
// requested count.
var ErrShortBuffer = errors.New("packed buffer too short for bit count")

// PackedLen returns the number of bytes needed to pack n bits.
func PackedLen(n int) int {
	return (n + 7) / 8
}

// Pack packs bits (bytes valued 0 or 1) into bytes, LSB-first, padding
// the final byte with zero bits.
func Pack(bits []byte) []byte {
	packed := make([]byte, PackedLen(len(bits)))
	for i, b := range bits {
		if b != 0 {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return packed
}

// Unpack expands packed bytes into exactly n bits (bytes valued 0 or 1),
// dropping any trailing pad bits. It is the inverse of Pack.
func Unpack(packed []byte, n int) ([]byte, error) {
	if n < 0 || len(packed)*8 < n {
		return nil, ErrShortBuffer
	}

	bits := make([]byte, n)
	for i := range bits {
		bits[i] = (packed[i/8] >> (i % 8)) & 1
	}
	return bits, nil
}
