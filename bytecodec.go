package wav

import (
	"encoding/binary"
	"math/bits"
	"strings"
)

// Uint16LE reads an unsigned 16-bit value, b[0] being the least significant
// byte. b must hold at least 2 bytes.
func Uint16LE(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

// Int16LE reads a signed 16-bit value stored little-endian.
func Int16LE(b []byte) int16 {
	return int16(binary.LittleEndian.Uint16(b))
}

// Uint32LE reads an unsigned 32-bit value stored little-endian.
func Uint32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// Int32LE reads a signed 32-bit value stored little-endian.
func Int32LE(b []byte) int32 {
	return int32(Uint32LE(b))
}

// Uint64LE reads an unsigned 64-bit value stored little-endian.
func Uint64LE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// ASCII converts every byte to one character. No validation is done, which
// is what chunk tags need: a garbage tag must still be printable in an error.
func ASCII(b []byte) string {
	var sb strings.Builder

	sb.Grow(len(b))

	for _, c := range b {
		sb.WriteRune(rune(c))
	}

	return sb.String()
}

// Uint16ToBytesLE returns the little-endian encoding of v.
func Uint16ToBytesLE(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(make([]byte, 0, 2), v)
}

// Uint32ToBytesLE returns the little-endian encoding of v.
func Uint32ToBytesLE(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), v)
}

// Uint64ToBytesLE returns the little-endian encoding of v.
func Uint64ToBytesLE(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, 8), v)
}

// Uint16ToBytesBE returns the big-endian encoding of v.
func Uint16ToBytesBE(v uint16) []byte {
	return binary.BigEndian.AppendUint16(make([]byte, 0, 2), v)
}

// Uint32ToBytesBE returns the big-endian encoding of v.
func Uint32ToBytesBE(v uint32) []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), v)
}

// ReverseBytes16 swaps the byte order of v. Writing the result big-endian
// yields the little-endian encoding of v.
func ReverseBytes16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// ReverseBytes32 swaps the byte order of v.
func ReverseBytes32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}
