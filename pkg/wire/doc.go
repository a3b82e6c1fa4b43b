// Package wire defines the big-endian wire-word types of the DTB format and
// their conversions to and from host byte order.
//
// Every multi-byte field in a flattened device tree is stored big-endian
// regardless of the CPU reading it. The central correctness rule of the whole
// environment layer is that such a field must never take part in host
// arithmetic, indexing, or comparison until it has been converted.
//
// # Distinct wire types
//
// Word16, Word32, and Word64 are single-field wrapper types rather than
// integer aliases, so an unconverted wire word cannot be used as a number by
// accident; the compiler forces an explicit Host call first. A Word holds the
// raw register pattern a native-order load of the wire bytes produces, which
// on a big-endian host is already the value itself.
//
// # Conversions
//
// The six scalar conversions (Wire16/32/64 and the Host methods) are pure and
// total: identity on big-endian hosts, a full byte reversal on little-endian
// hosts. Byte reversal is self-inverse, so Wire32(w.Host()) == w and
// Wire32(v).Host() == v for every value.
//
// The scalar conversions never touch memory. Loading a word out of a raw
// buffer is the caller's step, and Load16/32/64 perform it safely for any
// byte offset, aligned or not.
package wire
