package blob

import (
	"errors"
	"fmt"

	"github.com/kernelfdt/fdtenv-go/pkg/mem"
	"github.com/kernelfdt/fdtenv-go/pkg/wire"
)

// Access errors.
var (
	// ErrOutOfRange indicates a field range beyond the end of the blob.
	ErrOutOfRange = errors.New("range beyond end of blob")

	// ErrUnterminated indicates a string with no NUL before the end of the blob.
	ErrUnterminated = errors.New("string not terminated within blob")
)

// Blob is a borrowed, read-only view of a device-tree image.
type Blob struct {
	b []byte
}

// New borrows b as a device-tree image. The caller keeps ownership of the
// underlying memory and must not mutate it while the Blob is in use.
func New(b []byte) Blob {
	return Blob{b: b}
}

// Len returns the image size in bytes.
func (bl Blob) Len() int {
	return len(bl.b)
}

// Bytes borrows the n-byte range starting at off.
func (bl Blob) Bytes(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || n > len(bl.b) || off > len(bl.b)-n {
		return nil, fmt.Errorf("%w: %d bytes at offset %d in %d-byte image",
			ErrOutOfRange, n, off, len(bl.b))
	}
	return bl.b[off : off+n : off+n], nil
}

// U16 extracts the 16-bit wire word at off and returns its host value.
func (bl Blob) U16(off int) (uint16, error) {
	raw, err := bl.Bytes(off, wire.Size16)
	if err != nil {
		return 0, err
	}
	return wire.Load16(raw).Host(), nil
}

// U32 extracts the 32-bit wire word at off and returns its host value.
func (bl Blob) U32(off int) (uint32, error) {
	raw, err := bl.Bytes(off, wire.Size32)
	if err != nil {
		return 0, err
	}
	return wire.Load32(raw).Host(), nil
}

// U64 extracts the 64-bit wire word at off and returns its host value.
func (bl Blob) U64(off int) (uint64, error) {
	raw, err := bl.Bytes(off, wire.Size64)
	if err != nil {
		return 0, err
	}
	return wire.Load64(raw).Host(), nil
}

// CString borrows the NUL-terminated string starting at off, without its
// terminator. The string must terminate before the end of the image.
func (bl Blob) CString(off int) ([]byte, error) {
	if off < 0 || off > len(bl.b) {
		return nil, fmt.Errorf("%w: string at offset %d in %d-byte image",
			ErrOutOfRange, off, len(bl.b))
	}
	rest := bl.b[off:]
	n := mem.Length(rest)
	if n == len(rest) {
		return nil, fmt.Errorf("%w: offset %d", ErrUnterminated, off)
	}
	return rest[:n:n], nil
}
