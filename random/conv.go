package random

// Lossless mappings among the three 32-bit value encodings. The signed
// and unsigned encodings share a bit pattern; the fraction encoding is
// the lattice of multiples of 2^-32 in [0,1).

// Uint32ToInt32 reinterprets an unsigned word as a signed integer.
func Uint32ToInt32(v uint32) int32 {
	return int32(v)
}

// Int32ToUint32 reinterprets a signed integer as an unsigned word.
func Int32ToUint32(v int32) uint32 {
	return uint32(v)
}

// Uint32ToFract32 maps an unsigned word onto the [0,1) lattice.
func Uint32ToFract32(v uint32) float64 {
	return float64(v) * twoPowNeg32
}

// Fract32ToUint32 maps a lattice point in [0,1) back to its word.
func Fract32ToUint32(f float64) uint32 {
	return uint32(f * (1 << 32))
}
