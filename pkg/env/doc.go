// Package env declares the canonical type set and boundary constants the
// FDT environment layer is built on.
//
// A flattened device tree (DTB) declares every field width explicitly, so the
// parser written against this layer must see integer types of exact binary
// width on every platform. Go's built-in fixed-width types already guarantee
// that; this package pins the canonical names, the pointer-width size type,
// and the limits the numeric parser's saturation policy is defined against.
//
// Everything here is declarative. The package has no runtime behavior, holds
// no state, and allocates nothing.
//
// # Collision safety
//
// The original freestanding environment injects names like uint32_t and NULL
// into the global namespace and must guard against host headers declaring the
// same names. Package qualification makes that guard unnecessary here: env.Size
// can never collide with a host declaration.
//
// # Sentinels
//
// Scan and search operations across the layer signal absence with NotFound
// rather than an error value, because they are called on paths where no error
// infrastructure exists yet. Go's bool and nil are already canonical, so the
// boolean and null-pointer values need no declarations of their own.
package env
