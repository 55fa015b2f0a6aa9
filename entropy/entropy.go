// Package entropy provides non-deterministic 32-bit word sources used to
// seed the deterministic generators in the random package.
//
// The secure source wraps the system CSPRNG through `crypto/rand`; the
// insecure source is a time-seeded `math/rand` stream kept only as a
// fallback for environments where the system source fails. Neither
// source is deterministic; for seeded, replayable randomness use the
// random package.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"sync"
	"time"
)

// Source provides raw non-deterministic 32-bit words.
type Source interface {
	// Uint32 returns one word. A non-nil error is an irrecoverable
	// exception of the underlying system source and propagates to
	// callers uninterpreted.
	Uint32() (uint32, error)
}

// Secure returns the Source backed by crypto/rand.
func Secure() Source {
	return secureSource{}
}

type secureSource struct{}

func (secureSource) Uint32() (uint32, error) {
	// allocate per call so the source stays safe for concurrent use
	buffer := make([]byte, 4)
	if _, err := crand.Read(buffer); err != nil {
		return 0, fmt.Errorf("crypto/rand read failed: %w", err)
	}
	return binary.LittleEndian.Uint32(buffer), nil
}

// Insecure returns the weaker Source: a time-seeded math/rand stream.
// It never fails, but offers no unpredictability guarantees.
func Insecure() Source {
	return &insecureSource{
		r: mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}
}

type insecureSource struct {
	mu sync.Mutex
	r  *mrand.Rand
}

func (s *insecureSource) Uint32() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Uint32(), nil
}

// Default returns the strongest available Source: the secure source,
// falling back to the insecure one on failure. The fallback is built
// lazily on the first primary failure, so each failing source gets its
// own independently seeded stream.
func Default() Source {
	return &fallbackSource{primary: Secure()}
}

type fallbackSource struct {
	primary Source

	once      sync.Once
	secondary Source
}

func (s *fallbackSource) Uint32() (uint32, error) {
	v, err := s.primary.Uint32()
	if err != nil {
		s.once.Do(func() {
			if s.secondary == nil {
				s.secondary = Insecure()
			}
		})
		return s.secondary.Uint32()
	}
	return v, nil
}
