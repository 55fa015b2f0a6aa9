package random

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"pgregory.net/rapid"
)

// math/rand is only used to randomize test inputs

type algoCase struct {
	algo Algo
	new  func(Seed) (Rand, error)
}

func algoCases() []algoCase {
	return []algoCase{
		{AlgoAlea, NewAlea},
		{AlgoMulberry32, NewMulberry32},
		{AlgoTychei, NewTychei},
		{AlgoXor128, NewXor128},
		{AlgoXorWow, NewXorWow},
		{AlgoXorShift7, NewXorShift7},
		{AlgoXor4096, NewXor4096},
	}
}

func testSeeds() []Seed {
	return []Seed{
		IntSeed(0),
		IntSeed(1),
		IntSeed(-123456),
		IntSeed(1 << 40),
		StringSeed(""),
		StringSeed("hello"),
		StringSeed("日本語のたね"),
	}
}

// Two generators of the same algorithm built from equal seeds must
// produce bit-identical sequences, for every output domain.
func TestDeterminism(t *testing.T) {
	for _, c := range algoCases() {
		c := c
		t.Run(string(c.algo), func(t *testing.T) {
			for _, seed := range testSeeds() {
				g1, err := c.new(seed)
				require.NoError(t, err)
				g2, err := c.new(seed)
				require.NoError(t, err)
				for i := 0; i < 300; i++ {
					require.Equal(t, g1.Uint32(), g2.Uint32(), "seed %v diverged at word %d", seed, i)
					require.Equal(t, g1.Fract32(), g2.Fract32(), "seed %v diverged at fraction %d", seed, i)
					require.Equal(t, g1.Int32(), g2.Int32(), "seed %v diverged at int %d", seed, i)
				}
			}
		})
	}
}

func TestDistinctSeedsDiverge(t *testing.T) {
	for _, c := range algoCases() {
		c := c
		t.Run(string(c.algo), func(t *testing.T) {
			g1, err := c.new(IntSeed(1))
			require.NoError(t, err)
			g2, err := c.new(IntSeed(2))
			require.NoError(t, err)
			same := true
			for i := 0; i < 64; i++ {
				if g1.Uint32() != g2.Uint32() {
					same = false
					break
				}
			}
			assert.False(t, same, "seeds 1 and 2 produced identical 64-word prefixes")
		})
	}
}

func TestNumberAndStringSeedsAreDistinct(t *testing.T) {
	for _, c := range algoCases() {
		if c.algo == AlgoAlea {
			// Alea hashes numeric seeds through their decimal text, so
			// IntSeed(n) and StringSeed of the same digits coincide
			continue
		}
		g1, err := c.new(IntSeed(12345))
		require.NoError(t, err)
		g2, err := c.new(StringSeed("12345"))
		require.NoError(t, err)
		same := true
		for i := 0; i < 64; i++ {
			if g1.Uint32() != g2.Uint32() {
				same = false
				break
			}
		}
		assert.False(t, same, "%s: numeric and string seed 12345 collided", c.algo)
	}
}

func TestAleaNumericSeedMatchesDecimalString(t *testing.T) {
	g1, err := NewAlea(IntSeed(12345))
	require.NoError(t, err)
	g2, err := NewAlea(StringSeed("12345"))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.Equal(t, g1.Fract32(), g2.Fract32())
	}
}

// TestStateRestore checks that State is the Restore reverse function and
// that a restored generator continues the stream in lockstep.
func TestStateRestore(t *testing.T) {
	for _, c := range algoCases() {
		c := c
		t.Run(string(c.algo), func(t *testing.T) {
			g1, err := c.new(IntSeed(rand.Int63()))
			require.NoError(t, err)

			// evolve the internal state
			iterations := rand.Intn(1000)
			for i := 0; i < iterations; i++ {
				_ = g1.Uint32()
			}

			state := g1.State()
			g2, err := Restore(state)
			require.NoError(t, err)
			require.Equal(t, state, g2.State(), "State o Restore is not identity")

			for i := 0; i < 200; i++ {
				require.Equal(t, g1.Uint32(), g2.Uint32(), "restored generator diverged at word %d", i)
			}
		})
	}
}

func TestStateExportsAreIndependentCopies(t *testing.T) {
	for _, c := range algoCases() {
		s1, s2 := func() (State, State) {
			g, err := c.new(IntSeed(7))
			require.NoError(t, err)
			return g.State(), g.State()
		}()
		assert.NotSame(t, s1, s2, "%s: consecutive exports returned the same instance", c.algo)
		assert.Equal(t, s1, s2, "%s: consecutive exports differ in value", c.algo)
	}
}

func TestMutatingExportedStateDoesNotAffectGenerator(t *testing.T) {
	g, err := NewXor128(IntSeed(7))
	require.NoError(t, err)
	tampered := g.State().(*Xor128State)
	pristine := g.State()
	tampered.X = 0
	tampered.W ^= 0xdeadbeef

	ref, err := Restore(pristine)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		require.Equal(t, ref.Uint32(), g.Uint32())
	}
}

func TestMutatingExportedBufferDoesNotAffectGenerator(t *testing.T) {
	g, err := NewXor4096(IntSeed(99))
	require.NoError(t, err)
	tampered := g.State().(*Xor4096State)
	pristine := g.State()
	for i := range tampered.X {
		tampered.X[i] = 0
	}

	ref, err := Restore(pristine)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		require.Equal(t, ref.Uint32(), g.Uint32())
	}
}

func TestRestoreNilState(t *testing.T) {
	_, err := Restore(nil)
	require.Error(t, err)
}

func TestNewByName(t *testing.T) {
	for _, algo := range Algorithms() {
		g, err := New(algo, IntSeed(3))
		require.NoError(t, err)
		require.Equal(t, algo, g.State().Algo())
	}
	_, err := New("mersenne", IntSeed(3))
	require.Error(t, err)
}

// scriptedCore drives a genericGen from a scripted word list, for
// white-box checks of the wrapper/sampler interplay.
type scriptedCore struct {
	src scriptedSource
}

func (c *scriptedCore) advance() uint32 {
	return c.src.next()
}

func (c *scriptedCore) snapshot() State {
	return nil
}

func scripted(words ...uint32) (*genericGen, *scriptedSource) {
	core := &scriptedCore{src: scriptedSource{words: words}}
	return &genericGen{core}, &core.src
}

func TestUnboundedCallsBypassSampler(t *testing.T) {
	g, src := scripted(0x80000000)
	assert.Equal(t, uint32(0x80000000), g.Uint32())
	assert.Equal(t, int32(math.MinInt32), g.Int32())
	assert.Equal(t, 0.5, g.Fract32())
	assert.Equal(t, 3, src.draws, "each unbounded call must cost exactly one raw draw")
}

func TestSingleUnitRangeSkipsSource(t *testing.T) {
	g, src := scripted(1, 2, 3)

	u, err := g.Uint32Range(5, 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), u)

	i, err := g.Int32Range(-3, -2)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), i)

	f, err := g.Fract32Range(0, math.Ldexp(1, -32))
	require.NoError(t, err)
	assert.Equal(t, 0.0, f)

	assert.Equal(t, 0, src.draws)
}

// The unsigned wrapper remaps the sampled width back onto [min, max).
func TestUint32RangeRemapsOffset(t *testing.T) {
	// width 24576, mask 0b0111111111111111
	g, src := scripted(40000)
	v, err := g.Uint32Range(8192, 32768)
	require.NoError(t, err)
	assert.Equal(t, uint32(8192+7232), v) // 40000&32767 = 7232
	assert.Equal(t, 1, src.draws)

	// 57344&32767 = 24576 is rejected, 100 is accepted
	g, src = scripted(57344, 100)
	v, err = g.Uint32Range(8192, 32768)
	require.NoError(t, err)
	assert.Equal(t, uint32(8292), v)
	assert.Equal(t, 2, src.draws)
}

// The signed wrapper shifts through the unsigned sampler.
func TestInt32RangeSharedSampler(t *testing.T) {
	g, _ := scripted(0)
	v, err := g.Int32Range(MinInt32, MaxInt32Excl)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), v)

	g, _ = scripted(1)
	v, err = g.Int32Range(5, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(6), v)
}

func TestFract32RangeLattice(t *testing.T) {
	g, _ := scripted(3)
	v, err := g.Fract32Range(0.5, 0.75)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.5)
	assert.Less(t, v, 0.75)
	// results are exact lattice points
	assert.Equal(t, math.Trunc(v*(1<<32)), v*(1<<32))
}

// Bounds off the 2^-32 lattice must still confine the result: the lower
// bound rounds up to the next lattice point, never down below min.
func TestFract32RangeNonLatticeBounds(t *testing.T) {
	// raw word 0 lands exactly on the mapped lower bound
	g, _ := scripted(0)
	v, err := g.Fract32Range(0.3, 0.5)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.3, "lower bound mapped below min")
	assert.Less(t, v, 0.5)

	// the topmost accepted word lands on the highest lattice point < max
	g, _ = scripted(858993458) // width-1 for [0.3, 0.5)
	v, err = g.Fract32Range(0.3, 0.5)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0.3)
	assert.Less(t, v, 0.5)
}

func TestRangeValidation(t *testing.T) {
	g, src := scripted(0)

	cases := []struct {
		name string
		call func() error
	}{
		{"uint32 empty", func() error { _, err := g.Uint32Range(5, 5); return err }},
		{"uint32 inverted", func() error { _, err := g.Uint32Range(6, 5); return err }},
		{"uint32 above ceiling", func() error { _, err := g.Uint32Range(0, (1<<32)+1); return err }},
		{"int32 below floor", func() error { _, err := g.Int32Range(MinInt32-1, 0); return err }},
		{"int32 above ceiling", func() error { _, err := g.Int32Range(0, MaxInt32Excl+1); return err }},
		{"int32 empty", func() error { _, err := g.Int32Range(3, 3); return err }},
		{"fract below floor", func() error { _, err := g.Fract32Range(-0.1, 0.5); return err }},
		{"fract above ceiling", func() error { _, err := g.Fract32Range(0, 1.5); return err }},
		{"fract empty", func() error { _, err := g.Fract32Range(0.5, 0.5); return err }},
		{"fract nan", func() error { _, err := g.Fract32Range(math.NaN(), 1); return err }},
		{"fract sub-unit", func() error { _, err := g.Fract32Range(0.5, 0.5 + math.Ldexp(1, -40)); return err }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.call()
			require.Error(t, err)
			assert.True(t, IsRangeError(err), "expected a RangeError, got %v", err)
		})
	}
	assert.Equal(t, 0, src.draws, "validation failures must not draw")
}

func TestRangedOutputsStayInRange(t *testing.T) {
	gen, err := NewTychei(IntSeed(2024))
	require.NoError(t, err)
	rapid.Check(t, func(t *rapid.T) {
		min := rapid.Uint64Range(0, (1<<32)-1).Draw(t, "min")
		max := rapid.Uint64Range(min+1, 1<<32).Draw(t, "max")
		v, err := gen.Uint32Range(min, max)
		require.NoError(t, err)
		require.GreaterOrEqual(t, uint64(v), min)
		require.Less(t, uint64(v), max)

		smin := rapid.Int64Range(MinInt32, MaxInt32Excl-1).Draw(t, "smin")
		smax := rapid.Int64Range(smin+1, MaxInt32Excl).Draw(t, "smax")
		s, err := gen.Int32Range(smin, smax)
		require.NoError(t, err)
		require.GreaterOrEqual(t, int64(s), smin)
		require.Less(t, int64(s), smax)

		// arbitrary fractional bounds, almost never on the lattice
		fmin := rapid.Float64Range(0, 0.5).Draw(t, "fmin")
		fmax := rapid.Float64Range(fmin+0.25, 1).Draw(t, "fmax")
		f, err := gen.Fract32Range(fmin, fmax)
		require.NoError(t, err)
		require.GreaterOrEqual(t, f, fmin)
		require.Less(t, f, fmax)
	})
}

// The only purpose of this function is unit testing. It implements a very
// basic randomness sanity check, not an advanced statistical test.
func TestBasicUniformity(t *testing.T) {
	sampleSize := 64768
	tolerance := 0.05
	sampleSpace := uint64(16) // a power of 2 for a more uniform distribution

	for _, c := range algoCases() {
		c := c
		t.Run(string(c.algo), func(t *testing.T) {
			gen, err := c.new(IntSeed(45))
			require.NoError(t, err)
			distribution := make([]float64, sampleSpace)
			for i := 0; i < sampleSize; i++ {
				r, err := gen.Uint32Range(0, sampleSpace)
				require.NoError(t, err)
				require.Less(t, uint64(r), sampleSpace)
				distribution[r] += 1.0
			}
			stdev := stat.StdDev(distribution, nil)
			mean := stat.Mean(distribution, nil)
			assert.Greater(t, tolerance*mean, stdev,
				fmt.Sprintf("basic randomness test failed. stdev %v, mean %v", stdev, mean))
		})
	}
}

func TestFract32StaysInUnitInterval(t *testing.T) {
	for _, c := range algoCases() {
		gen, err := c.new(StringSeed("unit interval"))
		require.NoError(t, err)
		for i := 0; i < 1000; i++ {
			f := gen.Fract32()
			require.GreaterOrEqual(t, f, 0.0, "%s produced %v", c.algo, f)
			require.Less(t, f, 1.0, "%s produced %v", c.algo, f)
		}
	}
}

// The empty string seed must not leave a protected buffer in the
// all-zero fixed point. Xor128 is exempt: it carries no zero-state
// escape, so degenerate seeds genuinely pin it at zero.
func TestDegenerateSeedsEscapeZeroState(t *testing.T) {
	for _, c := range algoCases() {
		if c.algo == AlgoXor128 {
			continue
		}
		gen, err := c.new(StringSeed(""))
		require.NoError(t, err)
		var nonZero bool
		for i := 0; i < 64; i++ {
			if gen.Uint32() != 0 {
				nonZero = true
				break
			}
		}
		assert.True(t, nonZero, "%s emits only zeroes for the empty string seed", c.algo)
	}
}
