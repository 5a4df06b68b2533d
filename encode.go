package pextvarint

import (
	"fmt"
	"math/bits"
)

// terminatorFlags holds, per encoded length - 1, the continuation flags of
// every active byte except the last one. Together with payloadMasks this is
// the encoder's length ladder:
//
//	0x0              .. 0x7F             1 byte
//	0x80             .. 0x3FFF           2 bytes
//	0x4000           .. 0x1FFFFF         3 bytes
//	0x200000         .. 0xFFFFFFF        4 bytes
//	0x10000000       .. 0x7FFFFFFFF      5 bytes
//	0x800000000      .. 0x3FFFFFFFFFF    6 bytes
//	0x40000000000    .. 0x1FFFFFFFFFFFF  7 bytes
//	0x2000000000000  .. 0xFFFFFFFFFFFFFF 8 bytes
//
// The flags sit in bytes 0..n-2, so the first n bytes of the word are a
// standard LEB128 encoding. The decoder only counts flags and would accept
// them in any n-1 of the active bytes.
var terminatorFlags = [MaxLen]uint64{
	0x00,
	0x80,
	0x8080,
	0x808080,
	0x80808080,
	0x8080808080,
	0x808080808080,
	0x80808080808080,
}

// EncodedLen returns the number of bytes needed to encode x.
func EncodedLen(x uint64) (int, error) {
	n := encodedLen(x)
	if n > MaxLen {
		return 0, fmt.Errorf("%w: %#x needs %d bytes, max %d", ErrValueTooLarge, x, n, MaxLen)
	}
	return n, nil
}

// encodedLen is the unchecked length class of x (1..10). Zero still takes
// one byte, hence the |1.
func encodedLen(x uint64) int {
	return (bits.Len64(x|1) + 6) / 7
}

// encodeWord builds the little-endian word for x. n must be in 1..MaxLen.
func encodeWord(x uint64, n int) uint64 {
	return Deposit(payloadMasks[n-1], x) | terminatorFlags[n-1]
}

// Encode encodes x into a full WordSize window. Bytes past the encoded
// length are zero; use EncodedLen or DecodedLen to find the true length.
func Encode(x uint64) ([WordSize]byte, error) {
	var out [WordSize]byte
	n, err := EncodedLen(x)
	if err != nil {
		return out, err
	}
	bo.PutUint64(out[:], encodeWord(x, n))
	return out, nil
}

// PutUint64 writes the full WordSize window for x into dst and returns the
// encoded length. dst must hold at least WordSize bytes; only the first n
// bytes belong to the varint, the rest are zeroed.
func PutUint64(dst []byte, x uint64) (int, error) {
	if len(dst) < WordSize {
		return 0, fmt.Errorf("%w: need %d bytes, got %d", ErrBufferTooShort, WordSize, len(dst))
	}
	n, err := EncodedLen(x)
	if err != nil {
		return 0, err
	}
	bo.PutUint64(dst[:WordSize], encodeWord(x, n))
	return n, nil
}

// AppendUint64 appends the encoded bytes of x to dst. Unlike Encode it only
// appends the encoded length, so consecutive calls produce a plain LEB128
// stream. On error dst is returned unchanged.
func AppendUint64(dst []byte, x uint64) ([]byte, error) {
	n, err := EncodedLen(x)
	if err != nil {
		return dst, err
	}
	var word [WordSize]byte
	bo.PutUint64(word[:], encodeWord(x, n))
	return append(dst, word[:n]...), nil
}
