package wire

import (
	"encoding/binary"
	"math/bits"
)

// Word widths in bytes.
const (
	Size16 = 2
	Size32 = 4
	Size64 = 8
)

// Word16 is a 16-bit big-endian wire word.
type Word16 struct{ raw uint16 }

// Word32 is a 32-bit big-endian wire word.
type Word32 struct{ raw uint32 }

// Word64 is a 64-bit big-endian wire word.
type Word64 struct{ raw uint64 }

// Wire16 converts a host value to its wire representation.
func Wire16(v uint16) Word16 { return Word16{swap16(v)} }

// Wire32 converts a host value to its wire representation.
func Wire32(v uint32) Word32 { return Word32{swap32(v)} }

// Wire64 converts a host value to its wire representation.
func Wire64(v uint64) Word64 { return Word64{swap64(v)} }

// Host converts the wire word to a host-order value.
func (w Word16) Host() uint16 { return swap16(w.raw) }

// Host converts the wire word to a host-order value.
func (w Word32) Host() uint32 { return swap32(w.raw) }

// Host converts the wire word to a host-order value.
func (w Word64) Host() uint64 { return swap64(w.raw) }

// Load16 loads the wire word stored at the start of b. The load copies byte
// by byte, so b may sit at any offset of a raw buffer; alignment is never
// assumed. Panics if len(b) < Size16.
func Load16(b []byte) Word16 { return Word16{binary.NativeEndian.Uint16(b)} }

// Load32 loads the wire word stored at the start of b. See Load16 for the
// alignment contract. Panics if len(b) < Size32.
func Load32(b []byte) Word32 { return Word32{binary.NativeEndian.Uint32(b)} }

// Load64 loads the wire word stored at the start of b. See Load16 for the
// alignment contract. Panics if len(b) < Size64.
func Load64(b []byte) Word64 { return Word64{binary.NativeEndian.Uint64(b)} }

// Put16 stores the wire word at the start of b. Panics if len(b) < Size16.
func Put16(b []byte, w Word16) { binary.NativeEndian.PutUint16(b, w.raw) }

// Put32 stores the wire word at the start of b. Panics if len(b) < Size32.
func Put32(b []byte, w Word32) { binary.NativeEndian.PutUint32(b, w.raw) }

// Put64 stores the wire word at the start of b. Panics if len(b) < Size64.
func Put64(b []byte, w Word64) { binary.NativeEndian.PutUint64(b, w.raw) }

func swap16(v uint16) uint16 {
	if hostIsBE {
		return v
	}
	return bits.ReverseBytes16(v)
}

func swap32(v uint32) uint32 {
	if hostIsBE {
		return v
	}
	return bits.ReverseBytes32(v)
}

func swap64(v uint64) uint64 {
	if hostIsBE {
		return v
	}
	return bits.ReverseBytes64(v)
}
