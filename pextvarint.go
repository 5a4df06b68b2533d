// Package pextvarint implements a branchless LEB128-style varint codec.
//
// Every encoded byte carries 7 payload bits and a continuation flag in its
// most-significant bit. Instead of scanning byte by byte, the codec always
// works on a full 64-bit little-endian word: the decoder counts the set
// continuation flags, picks a selector mask for that many 7-bit lanes and
// gathers the payload with a parallel bit extract; the encoder scatters the
// value into the lanes with a parallel bit deposit and ORs in the flags.
// On amd64 CPUs with BMI2 the extract/deposit run as single PEXT/PDEP
// instructions, elsewhere a portable fallback is used.
//
// Because of the fixed 8-byte window, values are limited to 56 bits
// (8 bytes × 7 bits) and the decoder needs at least 8 readable bytes even
// for a one-byte varint. The package maintains no mutable state after init
// and all functions are safe for concurrent use.
package pextvarint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

const (
	// WordSize is the fixed read/write window in bytes.
	WordSize = 8
	// MaxLen is the longest supported encoding in bytes.
	MaxLen = WordSize
	// MaxLen32 is the longest encoding accepted by Decode32.
	MaxLen32 = 5
	// MaxValue is the largest value that fits into MaxLen 7-bit lanes.
	MaxValue = uint64(1)<<(7*MaxLen) - 1

	// continuationMask selects bit 7 of every byte lane.
	continuationMask = 0x8080808080808080
)

// payloadMasks maps the number of set continuation flags (active bytes - 1)
// to the selector mask covering the payload bits of the active bytes.
var payloadMasks = [MaxLen]uint64{
	0x7F,
	0x7F7F,
	0x7F7F7F,
	0x7F7F7F7F,
	0x7F7F7F7F7F,
	0x7F7F7F7F7F7F,
	0x7F7F7F7F7F7F7F,
	0x7F7F7F7F7F7F7F7F,
}

var bo = binary.LittleEndian

// ErrBufferTooShort is returned when fewer than WordSize bytes are available.
var ErrBufferTooShort = errors.New("pextvarint: buffer too short")

// ErrVarIntTooLong is returned when the window holds more continuation
// flags than the decoder supports.
var ErrVarIntTooLong = errors.New("pextvarint: varint too long")

// ErrValueTooLarge is returned when a value needs more than MaxLen bytes.
var ErrValueTooLarge = errors.New("pextvarint: value too large")

// Decode reads a varint from the first WordSize bytes of buf.
//
// The active byte count is derived from the popcount of all continuation
// flags in the window, not from the position of the first flag-clear byte.
// If unrelated data with a set continuation flag follows a short varint
// inside the window, it is folded into the result. Callers decoding from a
// stream must ensure the bytes after the varint do not carry set flags, or
// pad the window with zeros.
func Decode(buf []byte) (uint64, error) {
	word, err := loadWord(buf)
	if err != nil {
		return 0, err
	}
	active := bits.OnesCount64(word & continuationMask)
	if active >= MaxLen {
		return 0, fmt.Errorf("%w: all %d continuation flags set", ErrVarIntTooLong, active)
	}
	return Extract(payloadMasks[active], word), nil
}

// Decode32 is Decode narrowed to 32-bit values. Encodings longer than
// MaxLen32 bytes fail with ErrVarIntTooLong. A five-byte encoding can hold
// up to 35 bits; such values are truncated to their low 32 bits without an
// error.
func Decode32(buf []byte) (uint32, error) {
	word, err := loadWord(buf)
	if err != nil {
		return 0, err
	}
	active := bits.OnesCount64(word & continuationMask)
	if active >= MaxLen32 {
		return 0, fmt.Errorf("%w: %d active bytes exceed %d for uint32",
			ErrVarIntTooLong, active+1, MaxLen32)
	}
	return uint32(Extract(payloadMasks[active], word)), nil
}

// DecodedLen returns the number of bytes Decode treats as part of the varint
// at the start of buf. It shares Decode's failure modes.
func DecodedLen(buf []byte) (int, error) {
	word, err := loadWord(buf)
	if err != nil {
		return 0, err
	}
	active := bits.OnesCount64(word & continuationMask)
	if active >= MaxLen {
		return 0, fmt.Errorf("%w: all %d continuation flags set", ErrVarIntTooLong, active)
	}
	return active + 1, nil
}

// loadWord interprets buf[:WordSize] as a little-endian word.
func loadWord(buf []byte) (uint64, error) {
	if len(buf) < WordSize {
		return 0, fmt.Errorf("%w: need %d bytes, got %d", ErrBufferTooShort, WordSize, len(buf))
	}
	return bo.Uint64(buf[:WordSize]), nil
}
