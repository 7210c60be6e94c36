package ruuid

import "encoding/binary"

// Every RFC 4122 layout is a handful of fixed-width fields packed into two
// 64-bit words. The helpers below centralize the mask/shift arithmetic so
// each version constructor describes its layout as (width, offset) pairs
// instead of repeating raw shift expressions.

// fieldMask returns a word with width contiguous one-bits starting at
// bit-position offset (0 = least significant). width+offset must not
// exceed 64; every call site uses compile-time constants, so a violation
// is a defect and panics rather than returning an error.
func fieldMask(width, offset uint) uint64 {
	if width+offset > 64 {
		panic("ruuid: bit field exceeds 64 bits")
	}
	return (uint64(1)<<width - 1) << offset
}

// readField extracts the field at (width, offset) from word, shifted down
// to position 0.
func readField(word uint64, width, offset uint) uint64 {
	return (word & fieldMask(width, offset)) >> offset
}

// writeField returns word with the field at (width, offset) replaced by
// value. Bits of value beyond width are discarded. Pure: word is not
// mutated.
func writeField(word uint64, width, offset uint, value uint64) uint64 {
	m := fieldMask(width, offset)
	return word&^m | value<<offset&m
}

// wordToBytes writes word into dst as 8 big-endian bytes.
func wordToBytes(dst []byte, word uint64) {
	binary.BigEndian.PutUint64(dst, word)
}

// wordFromBytes packs b into a word, big-endian. Inputs shorter than 8
// bytes fill the low-order positions; this is how a 6-byte node id or a
// digest half becomes a word.
func wordFromBytes(b []byte) uint64 {
	if len(b) >= 8 {
		return binary.BigEndian.Uint64(b[:8])
	}
	var w uint64
	for _, c := range b {
		w = w<<8 | uint64(c)
	}
	return w
}
