package random

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedToUint32Numeric(t *testing.T) {
	// numeric seeds wrap to their low 32 bits
	assert.Equal(t, uint32(0), SeedToUint32(IntSeed(0)))
	assert.Equal(t, uint32(12345), SeedToUint32(IntSeed(12345)))
	assert.Equal(t, uint32(0xffffffff), SeedToUint32(IntSeed(-1)))
	assert.Equal(t, uint32(5), SeedToUint32(IntSeed((1<<32)+5)))
	assert.Equal(t, uint32(0), SeedToUint32(IntSeed(1<<32)))
}

func TestSeedToUint32String(t *testing.T) {
	// h = h*31 + unit, starting from 0
	assert.Equal(t, uint32(0), SeedToUint32(StringSeed("")))
	assert.Equal(t, uint32(97), SeedToUint32(StringSeed("a")))
	assert.Equal(t, uint32(97*31+98), SeedToUint32(StringSeed("ab")))
	// U+1F600 folds as its two UTF-16 surrogates 0xD83D, 0xDE00
	assert.Equal(t, uint32(0xd83d*31+0xde00), SeedToUint32(StringSeed("😀")))
}

func TestSeedToUint32StringWraps(t *testing.T) {
	long := ""
	for i := 0; i < 1000; i++ {
		long += "wraparound"
	}
	// the hash must be stable, whatever it wrapped to
	assert.Equal(t, SeedToUint32(StringSeed(long)), SeedToUint32(StringSeed(long)))
	assert.NotEqual(t, SeedToUint32(StringSeed(long)), SeedToUint32(StringSeed(long+"x")))
}

func TestFloat64Seed(t *testing.T) {
	s, err := Float64Seed(3.0)
	require.NoError(t, err)
	assert.False(t, s.IsString())
	assert.Equal(t, uint32(3), SeedToUint32(s))

	s, err = Float64Seed(-2.0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xfffffffe), SeedToUint32(s))

	// non-integral values canonicalize to their decimal text
	s, err = Float64Seed(1.5)
	require.NoError(t, err)
	assert.True(t, s.IsString())
	assert.Equal(t, "1.5", s.String())
}

func TestFloat64SeedRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Float64Seed(f)
		require.Error(t, err, "expected rejection of %v", f)
	}
}

func TestResolveSeedPrecedence(t *testing.T) {
	explicit := IntSeed(11)
	producer := func() (Seed, error) { return IntSeed(22), nil }
	src := stubEntropy{word: 33}

	s, err := ResolveSeed(&explicit, producer, src)
	require.NoError(t, err)
	assert.Equal(t, explicit, s)

	s, err = ResolveSeed(nil, producer, src)
	require.NoError(t, err)
	assert.Equal(t, IntSeed(22), s)

	s, err = ResolveSeed(nil, nil, src)
	require.NoError(t, err)
	assert.Equal(t, IntSeed(33), s)
}

func TestResolveSeedProducerFailure(t *testing.T) {
	producer := func() (Seed, error) { return Seed{}, fmt.Errorf("no seed today") }
	_, err := ResolveSeed(nil, producer, stubEntropy{word: 5})
	require.Error(t, err)
}

func TestRandomSeedDrawsOneWord(t *testing.T) {
	s, err := RandomSeed(stubEntropy{word: 0xfeedface})
	require.NoError(t, err)
	assert.Equal(t, IntSeed(int64(0xfeedface)), s)

	_, err = RandomSeed(stubEntropy{err: fmt.Errorf("pool exhausted")})
	require.Error(t, err)
}

// stubEntropy is a fixed-word entropy source for seed tests.
type stubEntropy struct {
	word uint32
	err  error
}

func (s stubEntropy) Uint32() (uint32, error) {
	return s.word, s.err
}
