package wire

import "encoding/binary"

// hostIsBE reports whether the running CPU loads multi-byte integers in
// big-endian order. binary.NativeEndian resolves to the platform's true order,
// so the probe costs one comparison at package init.
var hostIsBE = binary.NativeEndian.Uint16([]byte{0x01, 0x02}) == 0x0102
