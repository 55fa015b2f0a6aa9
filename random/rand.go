// Package random implements deterministic 32-bit pseudo random number
// generators with seed-or-restore construction, state export, and
// unbiased bounded sampling over three domains: unsigned integers,
// signed integers, and fractions in [0,1) at 32-bit granularity.
//
// Generators are statistical, not cryptographic, primitives. A generator
// instance is exclusively owned by its caller; callers needing parallel
// streams must construct independent instances.
package random

import (
	"math"
)

// RawSource is a zero-argument function returning one raw 32-bit word.
// It is assumed, not verified, to be uniformly distributed.
type RawSource func() uint32

// Domain bounds of the three value domains. The exclusive ceilings do not
// fit their 32-bit representations, so ranged operations take 64-bit
// bounds.
const (
	MaxUint32Excl uint64 = 1 << 32
	MinInt32      int64  = -(1 << 31)
	MaxInt32Excl  int64  = 1 << 31
	MinFract32           = 0.0
	MaxFract32Excl       = 1.0
)

const twoPowNeg32 = 1.0 / (1 << 32)

// Rand is a seeded pseudo random number generator.
//
// The no-argument methods return the next raw value unmodified, without
// touching the sampler. The Range methods constrain the next value to
// [min, max) without statistical bias; they re-validate the bounds on
// every call and return a RangeError for bounds outside the domain or
// with max <= min.
type Rand interface {
	// Uint32 returns the next raw word.
	Uint32() uint32

	// Uint32Range returns a uniform value in [min, max),
	// with 0 <= min < max <= 2^32.
	Uint32Range(min, max uint64) (uint32, error)

	// Int32 returns the next raw word reinterpreted as a signed integer.
	Int32() int32

	// Int32Range returns a uniform value in [min, max),
	// with -2^31 <= min < max <= 2^31.
	Int32Range(min, max int64) (int32, error)

	// Fract32 returns the next raw word mapped onto the [0,1) lattice
	// of multiples of 2^-32.
	Fract32() float64

	// Fract32Range returns a uniform lattice point in [min, max),
	// with 0 <= min < max <= 1.
	Fract32Range(min, max float64) (float64, error)

	// State returns a structurally independent deep copy of the current
	// internal state. Feeding it to Restore reproduces the exact
	// continuation of this generator's output sequence.
	State() State
}

// randCore is the capability contract implemented by each algorithm.
// In order to add a new algorithm, it is enough to implement randCore
// and a State record; genericGen provides all Rand methods on top.
type randCore interface {
	// advance mutates the state and returns one raw 32-bit word.
	advance() uint32

	// snapshot returns a deep copy of the current state.
	snapshot() State
}

// fractCore is implemented by cores whose native output is a fraction
// (Alea). The unconstrained fraction path uses it directly instead of
// converting through the integer word.
type fractCore interface {
	advanceFract() float64
}

// genericGen implements Rand over any randCore.
type genericGen struct {
	randCore
}

var _ Rand = (*genericGen)(nil)

func (g *genericGen) Uint32() uint32 {
	return g.advance()
}

func (g *genericGen) Int32() int32 {
	return int32(g.advance())
}

func (g *genericGen) Fract32() float64 {
	if f, ok := g.randCore.(fractCore); ok {
		return f.advanceFract()
	}
	return Uint32ToFract32(g.advance())
}

func (g *genericGen) State() State {
	return g.snapshot()
}

func (g *genericGen) Uint32Range(min, max uint64) (uint32, error) {
	if max > MaxUint32Excl {
		return 0, rangeErrorf("max %d is above the uint32 domain ceiling %d", max, MaxUint32Excl)
	}
	if max <= min {
		return 0, rangeErrorf("max %d must be strictly greater than min %d", max, min)
	}
	width := max - min
	// the minimal legal range has a single possible result
	if width == 1 {
		return uint32(min), nil
	}
	v, err := Uint32n(g.advance, width)
	if err != nil {
		return 0, err
	}
	return uint32(min) + v, nil
}

func (g *genericGen) Int32Range(min, max int64) (int32, error) {
	if min < MinInt32 {
		return 0, rangeErrorf("min %d is below the int32 domain floor %d", min, MinInt32)
	}
	if max > MaxInt32Excl {
		return 0, rangeErrorf("max %d is above the int32 domain ceiling %d", max, MaxInt32Excl)
	}
	if max <= min {
		return 0, rangeErrorf("max %d must be strictly greater than min %d", max, min)
	}
	if max-min == 1 {
		return int32(min), nil
	}
	// shift the asymmetric signed domain into [0, 2^32) so the one
	// unsigned sampler serves all three domains
	lo := uint64(min + (1 << 31))
	width := uint64(max+(1<<31)) - lo
	v, err := Uint32n(g.advance, width)
	if err != nil {
		return 0, err
	}
	return int32(int64(lo+uint64(v)) - (1 << 31)), nil
}

func (g *genericGen) Fract32Range(min, max float64) (float64, error) {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return 0, rangeErrorf("fraction bounds must be finite, got [%v, %v)", min, max)
	}
	if min < MinFract32 {
		return 0, rangeErrorf("min %v is below the fraction domain floor 0", min)
	}
	if max > MaxFract32Excl {
		return 0, rangeErrorf("max %v is above the fraction domain ceiling 1", max)
	}
	if max <= min {
		return 0, rangeErrorf("max %v must be strictly greater than min %v", max, min)
	}
	// map the bounds onto the 2^-32 lattice: min rounds up so no result
	// can fall below it, max truncates so no result can reach it; a pair
	// collapsing into one lattice cell is indistinguishable from
	// max <= min at 32-bit granularity
	lo := uint64(math.Ceil(min * (1 << 32)))
	hi := uint64(max * (1 << 32))
	if hi <= lo {
		return 0, rangeErrorf("range [%v, %v) is narrower than one representable unit", min, max)
	}
	width := hi - lo
	if width == 1 {
		return float64(lo) * twoPowNeg32, nil
	}
	v, err := Uint32n(g.advance, width)
	if err != nil {
		return 0, err
	}
	return float64(lo+uint64(v)) * twoPowNeg32, nil
}
