// Package engine implements the pixel-domain embedding algorithms that write
// a bitstream into a [pixel.Buffer] and read it back.
//
// # Architecture
//
// The central abstraction is the [Engine] interface.  Three engines ship with
// this package:
//
//   - [LSB]: least significant bit of R, G and B in every pixel.
//   - [PVD]: the same substitution, restricted to low-contrast pixels.
//   - [DWT]: one adjusted sample per 2×2 block, a cheap stand-in for
//     frequency-domain embedding.
//
// Engines never touch the alpha channel.  Every engine checks its capacity
// before writing, so a failed Embed leaves the buffer unchanged.
//
// The [Registry] maps [Algorithm] names to engines, with a default.
//
// # Offsets
//
// Every operation takes a from argument: the index of the first pixel the
// engine may use.  Pixels before it belong to the caller (the frame header
// lives there) and are never written.
//
// # Capacity
//
// [Engine.Capacity] is authoritative and depends on the buffer contents for
// [PVD].  [Estimate] is a closed-form advisory figure for UIs.
package engine
