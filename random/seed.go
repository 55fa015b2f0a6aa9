package random

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/rand32/rand32/entropy"
)

// Seed is a generator seed: a 64-bit integer or a string of arbitrary
// length (including empty). The zero value is the numeric seed 0.
type Seed struct {
	str   string
	num   int64
	isStr bool
}

// IntSeed returns a numeric seed.
func IntSeed(n int64) Seed {
	return Seed{num: n}
}

// StringSeed returns a string seed.
func StringSeed(s string) Seed {
	return Seed{str: s, isStr: true}
}

// Float64Seed converts a float into a Seed. Non-finite values are
// rejected. Integral values become numeric seeds; other finite values
// are canonicalized to their shortest decimal representation and treated
// as string seeds.
func Float64Seed(f float64) (Seed, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Seed{}, fmt.Errorf("seed must be a finite number, got %v", f)
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return IntSeed(int64(f)), nil
	}
	return StringSeed(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// IsString reports whether the seed is a string seed.
func (s Seed) IsString() bool {
	return s.isStr
}

func (s Seed) String() string {
	return s.text()
}

// text returns the character stream fed to string-based seed-mixing
// procedures. Numeric seeds use their decimal form.
func (s Seed) text() string {
	if s.isStr {
		return s.str
	}
	return strconv.FormatInt(s.num, 10)
}

// fold32 resolves the seeding path shared by the xorshift-family
// algorithms: numeric seeds representable in 32 bits occupy one state
// word directly, everything else is folded in character by character.
func (s Seed) fold32() (units []uint16, word uint32, numeric bool) {
	if !s.isStr && s.num >= math.MinInt32 && s.num <= math.MaxInt32 {
		return nil, uint32(s.num), true
	}
	return utf16Units(s.text()), 0, false
}

// utf16Units returns the UTF-16 code units of s. Seed-mixing iterates
// code units rather than runes or bytes so persisted seeds reproduce
// across implementations on UTF-16 runtimes.
func utf16Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// SeedToUint32 canonicalizes a seed into one unsigned 32-bit word.
// Numeric seeds wrap to their low 32 bits. String seeds reduce through
// the rolling hash h = h*31 + unit over UTF-16 code units, wrapping in
// two's-complement 32-bit arithmetic at every step. The recurrence and
// integer width are fixed: deviating breaks reproducibility of persisted
// seeds.
func SeedToUint32(seed Seed) uint32 {
	if !seed.isStr {
		return uint32(seed.num)
	}
	var h uint32
	for _, u := range utf16Units(seed.str) {
		h = h*31 + uint32(u)
	}
	return h
}

// SeedProducer supplies a seed on demand.
type SeedProducer func() (Seed, error)

// RandomSeed draws exactly one unsigned 32-bit word from src for use as
// a generator seed.
func RandomSeed(src entropy.Source) (Seed, error) {
	v, err := src.Uint32()
	if err != nil {
		return Seed{}, fmt.Errorf("drawing entropy for seed failed: %w", err)
	}
	return IntSeed(int64(v)), nil
}

// ResolveSeed picks the seed to use: the explicit seed when non-nil,
// else the producer's output, else one word drawn from src. A nil src
// falls back to entropy.Default().
func ResolveSeed(seed *Seed, producer SeedProducer, src entropy.Source) (Seed, error) {
	if seed != nil {
		return *seed, nil
	}
	if producer != nil {
		return producer()
	}
	if src == nil {
		src = entropy.Default()
	}
	return RandomSeed(src)
}
