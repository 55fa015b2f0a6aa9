package random

// Xor128 is Marsaglia's classic xorshift recurrence rotating four words.
// Period 2^128-1.

// Xor128State holds the four rotating words.
type Xor128State struct {
	X uint32 `cbor:"x"`
	Y uint32 `cbor:"y"`
	Z uint32 `cbor:"z"`
	W uint32 `cbor:"w"`
}

func (s *Xor128State) Algo() Algo {
	return AlgoXor128
}

func (s *Xor128State) clone() State {
	c := *s
	return &c
}

func (s *Xor128State) restore() randCore {
	return &xor128Core{s: *s}
}

type xor128Core struct {
	s Xor128State
}

// NewXor128 builds an Xor128 generator from seed. 32-bit numeric seeds
// occupy the first word; other seeds are xor-folded into it character by
// character. 64 advances are discarded as warm-up.
func NewXor128(seed Seed) (Rand, error) {
	core := &xor128Core{}
	units, word, numeric := seed.fold32()
	if numeric {
		core.s.X = word
	}
	for k := 0; k < len(units)+64; k++ {
		if k < len(units) {
			core.s.X ^= uint32(units[k])
		}
		core.advance()
	}
	return &genericGen{core}, nil
}

func (x *xor128Core) advance() uint32 {
	s := &x.s
	t := s.X ^ s.X<<11
	s.X, s.Y, s.Z = s.Y, s.Z, s.W
	s.W = s.W ^ s.W>>19 ^ t ^ t>>8
	return s.W
}

func (x *xor128Core) snapshot() State {
	return x.s.clone()
}
