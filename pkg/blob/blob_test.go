package blob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernelfdt/fdtenv-go/pkg/blob"
)

// image lays out the first fields of a DTB header (magic, totalsize) followed
// by a miniature strings block, which covers every accessor width.
func image() []byte {
	return []byte{
		0xD0, 0x0D, 0xFE, 0xED, // magic
		0x00, 0x00, 0x00, 0x20, // totalsize = 32
		0x12, 0x34, // a 16-bit field
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2A, // a 64-bit field = 42
		'r', 'e', 'g', 0,
		'c', 'p', 'u', 's', 0,
	}
}

func TestWordAccessors(t *testing.T) {
	bl := blob.New(image())

	magic, err := bl.U32(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xD00DFEED), magic)

	size, err := bl.U32(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(32), size)

	v16, err := bl.U16(8)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)

	v64, err := bl.U64(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v64)
}

func TestOutOfRange(t *testing.T) {
	bl := blob.New(image())

	tests := []struct {
		name string
		call func() error
	}{
		{"word past end", func() error { _, err := bl.U32(bl.Len() - 2); return err }},
		{"word at end", func() error { _, err := bl.U16(bl.Len()); return err }},
		{"negative offset", func() error { _, err := bl.U64(-1); return err }},
		{"range past end", func() error { _, err := bl.Bytes(20, 100); return err }},
		{"negative length", func() error { _, err := bl.Bytes(0, -4); return err }},
		{"huge length", func() error { _, err := bl.Bytes(4, int(^uint(0)>>1)); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), blob.ErrOutOfRange)
		})
	}
}

func TestBytesBorrows(t *testing.T) {
	backing := image()
	bl := blob.New(backing)

	b, err := bl.Bytes(18, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{'e', 'g'}, b)

	// The view aliases the image rather than copying it.
	backing[18] = 'X'
	assert.Equal(t, byte('X'), b[0])
}

func TestCString(t *testing.T) {
	bl := blob.New(image())

	s, err := bl.CString(18)
	require.NoError(t, err)
	assert.Equal(t, []byte("reg"), s)

	s, err = bl.CString(22)
	require.NoError(t, err)
	assert.Equal(t, []byte("cpus"), s)

	// Offset of a terminator is the empty string.
	s, err = bl.CString(21)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestCStringErrors(t *testing.T) {
	bl := blob.New([]byte{'a', 'b', 'c'}) // no terminator anywhere

	_, err := bl.CString(0)
	assert.ErrorIs(t, err, blob.ErrUnterminated)

	_, err = bl.CString(99)
	assert.ErrorIs(t, err, blob.ErrOutOfRange)

	_, err = bl.CString(-1)
	assert.ErrorIs(t, err, blob.ErrOutOfRange)
}

func TestEmptyBlob(t *testing.T) {
	bl := blob.New(nil)
	assert.Zero(t, bl.Len())

	_, err := bl.U32(0)
	assert.ErrorIs(t, err, blob.ErrOutOfRange)

	b, err := bl.Bytes(0, 0)
	require.NoError(t, err)
	assert.Empty(t, b)
}
