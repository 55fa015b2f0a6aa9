package random

// Xor4096 is Brent's xorgens generator: a 128-word xorshift buffer
// combined with a Weyl word. Period 2^4128-2^32.

const weylIncrement = 0x61c88647

// Xor4096State holds the circular buffer, the cursor, and the Weyl word.
type Xor4096State struct {
	X [128]uint32 `cbor:"x"`
	I int         `cbor:"i"`
	W uint32      `cbor:"w"`
}

func (s *Xor4096State) Algo() Algo {
	return AlgoXor4096
}

func (s *Xor4096State) clone() State {
	c := *s
	return &c
}

func (s *Xor4096State) restore() randCore {
	return &xor4096Core{s: *s}
}

type xor4096Core struct {
	s Xor4096State
}

// NewXor4096 builds an Xor4096 generator from seed. Seeding runs two
// phases: a shuffle pass pushing a xorshift-scrambled mix of seed and
// Weyl words through the whole buffer, then 512 discarded advances. The
// buffer is forced non-zero if the shuffle pass left it all zero.
func NewXor4096(seed Seed) (Rand, error) {
	core := &xor4096Core{}
	s := &core.s

	var units []uint16
	var v uint32
	limit := 128
	if u, word, numeric := seed.fold32(); numeric {
		v = word
	} else {
		// trailing NUL terminates the character fold cycle
		units = append(u, 0)
		if len(units) > limit {
			limit = len(units)
		}
	}

	// shuffle pass: 32 scramble-only rounds, then fill the buffer; the
	// Weyl word starts from the scrambled value at round 0
	var w uint32
	zeroes := 0
	for j := -32; j < limit; j++ {
		if units != nil {
			v ^= uint32(units[(j+32)%len(units)])
		}
		if j == 0 {
			w = v
		}
		v ^= v << 10
		v ^= v >> 15
		v ^= v << 4
		v ^= v >> 13
		if j >= 0 {
			w += weylIncrement
			s.X[j&127] ^= v + w
			if s.X[j&127] == 0 {
				zeroes++
			} else {
				zeroes = 0
			}
		}
	}
	if zeroes >= 128 {
		s.X[len(units)&127] = 0xffffffff
	}

	// warm-up mixes the buffer without advancing the Weyl word
	i := 127
	for j := 0; j < 512; j++ {
		v := s.X[(i+34)&127]
		i = (i + 1) & 127
		t := s.X[i]
		v ^= v << 13
		t ^= t << 17
		v ^= v >> 15
		t ^= t >> 12
		s.X[i] = v ^ t
	}
	s.I = i
	s.W = w

	return &genericGen{core}, nil
}

func (c *xor4096Core) advance() uint32 {
	s := &c.s
	s.W += weylIncrement
	v := s.X[(s.I+34)&127]
	s.I = (s.I + 1) & 127
	t := s.X[s.I]
	v ^= v << 13
	t ^= t << 17
	v ^= v >> 15
	t ^= t >> 12
	v ^= t
	s.X[s.I] = v
	return v + (s.W ^ s.W>>16)
}

func (c *xor4096Core) snapshot() State {
	return c.s.clone()
}
