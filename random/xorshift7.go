package random

// XorShift7 is Panneton and L'Ecuyer's generator combining shifted
// values from several offsets of an eight-word circular buffer. Period
// 2^256-1.

// XorShift7State holds the circular buffer and the cursor index.
type XorShift7State struct {
	X [8]uint32 `cbor:"x"`
	I int       `cbor:"i"`
}

func (s *XorShift7State) Algo() Algo {
	return AlgoXorShift7
}

func (s *XorShift7State) clone() State {
	c := *s
	return &c
}

func (s *XorShift7State) restore() randCore {
	return &xorshift7Core{s: *s}
}

type xorshift7Core struct {
	s XorShift7State
}

// NewXorShift7 builds an XorShift7 generator from seed. 32-bit numeric
// seeds occupy slot 0; string seeds fold across all eight slots. The
// buffer is forced non-zero and 256 advances are discarded as warm-up.
func NewXorShift7(seed Seed) (Rand, error) {
	core := &xorshift7Core{}
	x := &core.s.X
	units, word, numeric := seed.fold32()
	if numeric {
		x[0] = word
	} else {
		for j, u := range units {
			x[j&7] = x[j&7]<<15 ^ (uint32(u)+x[(j+1)&7])<<13
		}
	}
	// an all-zero buffer is a fixed point of the recurrence
	allZero := true
	for _, w := range x {
		if w != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		x[7] = 0xffffffff
	}
	for j := 0; j < 256; j++ {
		core.advance()
	}
	return &genericGen{core}, nil
}

func (c *xorshift7Core) advance() uint32 {
	s := &c.s
	x := &s.X
	i := s.I
	t := x[i]
	t ^= t >> 7
	v := t ^ t<<24
	t = x[(i+1)&7]
	v ^= t ^ t>>10
	t = x[(i+3)&7]
	v ^= t ^ t>>3
	t = x[(i+4)&7]
	v ^= t ^ t<<7
	t = x[(i+7)&7]
	t ^= t << 13
	v ^= t ^ t<<9
	x[i] = v
	s.I = (i + 1) & 7
	return v
}

func (c *xorshift7Core) snapshot() State {
	return c.s.clone()
}
