// Package blob defines the boundary a device-tree parser relies on when it
// reads a DTB image through the environment layer.
//
// A Blob is a borrowed, read-only view of the image. The package never copies
// the image, never mutates it, and keeps no state beyond the borrowed slice,
// so the surrounding kernel retains full ownership of the memory.
//
// # Contract
//
// Every multi-byte field in the image is a big-endian wire word. The
// accessors here are the only sanctioned way to extract one: each performs a
// bounds check, loads the word byte by byte (so the field's offset need not
// be aligned), and converts it through pkg/wire before returning a host
// value. A parser that indexes the raw bytes directly for multi-byte fields
// is outside the contract.
//
// String and memory work on the image goes through pkg/mem; CString hands the
// parser a bounded view it can pass to those primitives.
//
// Bounds checks here are memory safety only. Nothing in this package
// validates DTB structure, walks nodes, allocates on a successful path, or
// performs I/O; error construction on a failed bounds check is the single
// exception to the no-allocation rule, and a failed bounds check always
// means a malformed image or a parser bug.
package blob
