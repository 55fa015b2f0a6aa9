package random

// XorWow extends the five-word xorshift recurrence with an additive Weyl
// counter for extra period. Period 2^192-2^32.

// XorWowState holds the five rotating words and the Weyl counter D.
type XorWowState struct {
	X uint32 `cbor:"x"`
	Y uint32 `cbor:"y"`
	Z uint32 `cbor:"z"`
	W uint32 `cbor:"w"`
	V uint32 `cbor:"v"`
	D uint32 `cbor:"d"`
}

func (s *XorWowState) Algo() Algo {
	return AlgoXorWow
}

func (s *XorWowState) clone() State {
	c := *s
	return &c
}

func (s *XorWowState) restore() randCore {
	return &xorwowCore{s: *s}
}

type xorwowCore struct {
	s XorWowState
}

// NewXorWow builds an XorWow generator from seed. Seeding follows the
// Xor128 pattern, with the Weyl counter initialized from the folded
// first word before the 64 discarded warm-up advances.
func NewXorWow(seed Seed) (Rand, error) {
	core := &xorwowCore{}
	units, word, numeric := seed.fold32()
	if numeric {
		core.s.X = word
	}
	for k := 0; k < len(units)+64; k++ {
		if k < len(units) {
			core.s.X ^= uint32(units[k])
		}
		if k == len(units) {
			core.s.D = core.s.X<<10 ^ core.s.X>>4
		}
		core.advance()
	}
	return &genericGen{core}, nil
}

func (x *xorwowCore) advance() uint32 {
	s := &x.s
	t := s.X ^ s.X>>2
	s.X, s.Y, s.Z, s.W = s.Y, s.Z, s.W, s.V
	s.V = s.V ^ s.V<<4 ^ t ^ t<<1
	s.D += 362437
	return s.D + s.V
}

func (x *xorwowCore) snapshot() State {
	return x.s.clone()
}
