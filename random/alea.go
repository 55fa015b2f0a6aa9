package random

// Alea is Baagoe's multiply-with-carry generator over fractional
// accumulators, with a period of roughly 2^116. Its native output is a
// fraction in [0,1); the integer word is derived from it.

// AleaState holds three fractional accumulators and a carry.
type AleaState struct {
	S0 float64 `cbor:"s0"`
	S1 float64 `cbor:"s1"`
	S2 float64 `cbor:"s2"`
	C  uint32  `cbor:"c"`
}

func (s *AleaState) Algo() Algo {
	return AlgoAlea
}

func (s *AleaState) clone() State {
	c := *s
	return &c
}

func (s *AleaState) restore() randCore {
	return &aleaCore{s: *s}
}

type aleaCore struct {
	s AleaState
}

// NewAlea builds an Alea generator from seed.
func NewAlea(seed Seed) (Rand, error) {
	return &genericGen{&aleaCore{s: aleaSeedState(seed)}}, nil
}

func (a *aleaCore) advanceFract() float64 {
	s := &a.s
	t := 2091639*s.S0 + float64(s.C)*twoPowNeg32
	s.S0 = s.S1
	s.S1 = s.S2
	s.C = uint32(t)
	s.S2 = t - float64(s.C)
	return s.S2
}

func (a *aleaCore) advance() uint32 {
	return uint32(a.advanceFract() * (1 << 32))
}

func (a *aleaCore) snapshot() State {
	return a.s.clone()
}

// aleaSeedState derives the initial accumulators by hashing the seed
// text through the mash mixer three times, wrapping underflows back into
// [0,1).
func aleaSeedState(seed Seed) AleaState {
	m := newMash()
	st := AleaState{
		C:  1,
		S0: m.mix(" "),
		S1: m.mix(" "),
		S2: m.mix(" "),
	}
	text := seed.text()
	st.S0 -= m.mix(text)
	if st.S0 < 0 {
		st.S0++
	}
	st.S1 -= m.mix(text)
	if st.S1 < 0 {
		st.S1++
	}
	st.S2 -= m.mix(text)
	if st.S2 < 0 {
		st.S2++
	}
	return st
}

// mash is the dedicated 32-bit string mixer used for Alea seeding. The
// accumulator deliberately lives in a float64: the fractional part left
// behind by each step feeds the next one, so the mixer cannot be
// rewritten over pure integers without changing its output.
type mash struct {
	n float64
}

func newMash() *mash {
	return &mash{n: 0xefc8249d}
}

func (m *mash) mix(data string) float64 {
	for _, u := range utf16Units(data) {
		m.n += float64(u)
		h := 0.02519603282416938 * m.n
		n := float64(uint32(uint64(h)))
		h -= n
		h *= n
		n = float64(uint32(uint64(h)))
		h -= n
		m.n = n + h*(1<<32)
	}
	return float64(uint32(uint64(m.n))) * twoPowNeg32
}
