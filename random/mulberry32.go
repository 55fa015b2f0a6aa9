package random

// Mulberry32 is a single-word generator: one additive step followed by
// two xor-shift foldings. Period 2^32. The seed word is adopted directly
// through SeedToUint32, with no warm-up.

// Mulberry32State holds the single seed word.
type Mulberry32State struct {
	A uint32 `cbor:"a"`
}

func (s *Mulberry32State) Algo() Algo {
	return AlgoMulberry32
}

func (s *Mulberry32State) clone() State {
	c := *s
	return &c
}

func (s *Mulberry32State) restore() randCore {
	return &mulberry32Core{s: *s}
}

type mulberry32Core struct {
	s Mulberry32State
}

// NewMulberry32 builds a Mulberry32 generator from seed.
func NewMulberry32(seed Seed) (Rand, error) {
	core := &mulberry32Core{s: Mulberry32State{A: SeedToUint32(seed)}}
	return &genericGen{core}, nil
}

func (m *mulberry32Core) advance() uint32 {
	m.s.A += 0x6d2b79f5
	z := m.s.A
	z = (z ^ z>>15) * (z | 1)
	z ^= z + (z^z>>7)*(z|61)
	return z ^ z>>14
}

func (m *mulberry32Core) snapshot() State {
	return m.s.clone()
}
