package random

import "fmt"

// samplerDrawBound caps the rejection loop as a sanity check against a
// defective raw source. Each draw is accepted with probability >= 1/2,
// so a uniform source cannot reach this bound.
const samplerDrawBound = 1 << 16

// Uint32n returns a uniform value in [0, n), drawing raw words from
// `draw`. n must be in [1, 2^32].
//
// The raw word is masked down to the smallest 2^k-1 covering n-1 and
// rejected when the masked value still falls outside [0, n). Masking
// preserves the per-bit uniformity of the source; rejection (rather than
// modulo or rescaling) is what keeps the result unbiased. The masked
// acceptance probability is always >= 50%, so the loop needs fewer than
// 2 draws on average.
func Uint32n(draw RawSource, n uint64) (uint32, error) {
	if n == 0 || n > MaxUint32Excl {
		return 0, rangeErrorf("sample width must be in [1, 2^32], got %d", n)
	}
	if n == 1 {
		// the only possible result; drawing would be a wasted,
		// observable side effect
		return 0, nil
	}
	max := n - 1
	// smallest mask of form 2^k - 1 covering max, built by shifting
	// rather than floating-point log2 which loses precision near 2^32
	mask := uint64(0)
	for max&mask != max {
		mask = mask<<1 | 1
	}
	for i := 0; i < samplerDrawBound; i++ {
		v := uint64(draw()) & mask
		if v < n {
			return uint32(v), nil
		}
	}
	return 0, fmt.Errorf("rejection sampling exceeded %d draws, raw source is defective", samplerDrawBound)
}
