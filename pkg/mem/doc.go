// Package mem is the minimal string/memory primitive library the FDT parser
// uses in place of a hosted standard library.
//
// The operation set is deliberately closed: byte copy, fill, move, compare,
// and scan, plus the NUL-terminated string operations and the unsigned
// numeric parse. The parser calls nothing else for string or memory work, so
// this package fully defines its freestanding footprint.
//
// All operations are pure or write only to caller-supplied slices, allocate
// nothing, hold no state between calls, and are safe to call before any
// diagnostics or fault-handling infrastructure exists.
//
// # Strings
//
// The string operations treat their argument as a NUL-terminated byte string
// viewed through a slice. The slice bound is a hard stop: a buffer with no
// terminator is handled as if terminated at the end of the slice, so no
// operation can over-read regardless of blob contents.
//
// # Sentinels and saturation
//
// Searches report absence with env.NotFound. ParseUint reports overflow by
// saturating at env.MaxUint64, never by wrapping. Nothing in this package
// returns an error or aborts on valid input.
package mem
