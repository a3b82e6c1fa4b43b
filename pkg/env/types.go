package env

import "math"

// Canonical fixed-width aliases. The aliases are zero-cost: they exist so the
// parser's source names its field widths the way the DTB specification does,
// not to introduce new types.
type (
	Int8   = int8
	Uint8  = uint8
	Int16  = int16
	Uint16 = uint16
	Int32  = int32
	Uint32 = uint32
	Int64  = int64
	Uint64 = uint64

	// Size is the pointer-width unsigned type used for in-blob offsets and
	// object sizes.
	Size = uintptr
)

// Boundary constants for the widths the numeric parser can saturate at.
const (
	MaxInt32  = math.MaxInt32
	MaxUint32 = math.MaxUint32
	MaxUint64 = math.MaxUint64
)

// NotFound is returned by scan and search operations when the target byte does
// not occur in the scanned range. It is never a valid offset.
const NotFound = -1
