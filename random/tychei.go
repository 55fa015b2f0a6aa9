package random

// Tyche-i advances four words through interdependent rotate/subtract
// steps, the inverted variant of the Tyche recurrence. Period roughly
// 2^127.

// TycheiState holds the four state words.
type TycheiState struct {
	A uint32 `cbor:"a"`
	B uint32 `cbor:"b"`
	C uint32 `cbor:"c"`
	D uint32 `cbor:"d"`
}

func (s *TycheiState) Algo() Algo {
	return AlgoTychei
}

func (s *TycheiState) clone() State {
	c := *s
	return &c
}

func (s *TycheiState) restore() randCore {
	return &tycheiCore{s: *s}
}

type tycheiCore struct {
	s TycheiState
}

// NewTychei builds a Tyche-i generator from seed. Numeric seeds split
// across the first two words; string seeds are folded into the second
// word one character at a time. 20 advances are discarded as warm-up.
func NewTychei(seed Seed) (Rand, error) {
	core := &tycheiCore{s: TycheiState{C: 2654435769, D: 1367130551}}
	var units []uint16
	if seed.IsString() {
		units = utf16Units(seed.text())
	} else {
		core.s.A = uint32(seed.num / (1 << 32))
		core.s.B = uint32(seed.num)
	}
	for k := 0; k < len(units)+20; k++ {
		if k < len(units) {
			core.s.B ^= uint32(units[k])
		}
		core.advance()
	}
	return &genericGen{core}, nil
}

func (t *tycheiCore) advance() uint32 {
	s := &t.s
	b := s.B<<25 ^ s.B>>7 ^ s.C
	c := s.C - s.D
	d := s.D<<24 ^ s.D>>8 ^ s.A
	a := s.A - b
	b = b<<20 ^ b>>12 ^ c
	c = c - d
	d = d<<16 ^ c>>16 ^ a
	a = a - b
	s.A, s.B, s.C, s.D = a, b, c, d
	return a
}

func (t *tycheiCore) snapshot() State {
	return t.s.clone()
}
