package random

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Algo identifies one of the implemented algorithms.
type Algo string

const (
	AlgoAlea       Algo = "alea"
	AlgoMulberry32 Algo = "mulberry32"
	AlgoTychei     Algo = "tychei"
	AlgoXor128     Algo = "xor128"
	AlgoXorWow     Algo = "xorwow"
	AlgoXorShift7  Algo = "xorshift7"
	AlgoXor4096    Algo = "xor4096"
)

// Algorithms lists the implemented algorithms.
func Algorithms() []Algo {
	return []Algo{
		AlgoAlea,
		AlgoMulberry32,
		AlgoTychei,
		AlgoXor128,
		AlgoXorWow,
		AlgoXorShift7,
		AlgoXor4096,
	}
}

// State is an exported deep copy of a generator's internal state. Every
// export is an independent copy: mutating it never affects the live
// generator, and two consecutive exports are distinct instances even
// when value-equal.
//
// A state record carries no version tag; restoring a record produced by
// a different algorithm's implementation is undefined.
type State interface {
	// Algo returns the algorithm this state belongs to.
	Algo() Algo

	// clone returns an independent deep copy.
	clone() State

	// restore builds a core adopting a deep copy of this state verbatim,
	// without re-running seed-mixing.
	restore() randCore
}

// Restore builds a generator from a previously exported state. The
// restored generator continues the exact output sequence the exporting
// generator would have produced.
func Restore(state State) (Rand, error) {
	if state == nil {
		return nil, fmt.Errorf("state must not be nil")
	}
	return &genericGen{state.restore()}, nil
}

// New builds a generator of the named algorithm from seed.
func New(algo Algo, seed Seed) (Rand, error) {
	switch algo {
	case AlgoAlea:
		return NewAlea(seed)
	case AlgoMulberry32:
		return NewMulberry32(seed)
	case AlgoTychei:
		return NewTychei(seed)
	case AlgoXor128:
		return NewXor128(seed)
	case AlgoXorWow:
		return NewXorWow(seed)
	case AlgoXorShift7:
		return NewXorShift7(seed)
	case AlgoXor4096:
		return NewXor4096(seed)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algo)
	}
}

// stateEnvelope wraps a state payload with its algorithm identifier so
// snapshots are self-describing on the wire.
type stateEnvelope struct {
	Algo  Algo            `cbor:"algo"`
	State cbor.RawMessage `cbor:"state"`
}

// EncodeState serializes a state snapshot to CBOR.
func EncodeState(s State) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("state must not be nil")
	}
	payload, err := cbor.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("could not encode %s state payload: %w", s.Algo(), err)
	}
	data, err := cbor.Marshal(stateEnvelope{Algo: s.Algo(), State: payload})
	if err != nil {
		return nil, fmt.Errorf("could not encode state envelope: %w", err)
	}
	return data, nil
}

// DecodeState deserializes a snapshot produced by EncodeState.
func DecodeState(data []byte) (State, error) {
	var env stateEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("could not decode state envelope: %w", err)
	}
	state, err := blankState(env.Algo)
	if err != nil {
		return nil, err
	}
	if err := cbor.Unmarshal(env.State, state); err != nil {
		return nil, fmt.Errorf("could not decode %s state payload: %w", env.Algo, err)
	}
	return state, nil
}

func blankState(algo Algo) (State, error) {
	switch algo {
	case AlgoAlea:
		return &AleaState{}, nil
	case AlgoMulberry32:
		return &Mulberry32State{}, nil
	case AlgoTychei:
		return &TycheiState{}, nil
	case AlgoXor128:
		return &Xor128State{}, nil
	case AlgoXorWow:
		return &XorWowState{}, nil
	case AlgoXorShift7:
		return &XorShift7State{}, nil
	case AlgoXor4096:
		return &Xor4096State{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q in state envelope", algo)
	}
}
