// Package prng provides the small seeded generator that drives food
// placement. Given the same Seed it produces the same sequence on every
// platform, which is what makes engine runs replayable.
package prng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Seed is the two-word generator seed.
type Seed [2]uint16

// zeroState replaces an all-zero state, which is a fixed point of xorshift.
const zeroState uint32 = 0x9E3779B9

// Prng16 is a 32-bit xorshift generator that yields 16-bit values.
type Prng16 struct {
	seed  Seed
	state uint32
}

// New creates a generator from a seed.
func New(seed Seed) *Prng16 {
	state := uint32(seed[0])<<16 | uint32(seed[1])
	if state == 0 {
		state = zeroState
	}
	return &Prng16{seed: seed, state: state}
}

// Next returns the next value in the sequence.
func (p *Prng16) Next() uint16 {
	x := p.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	p.state = x
	return uint16(x >> 16)
}

// Seed returns the seed the generator was created with.
func (p *Prng16) Seed() Seed {
	return p.seed
}

// SeedFromReader reads four bytes of entropy from r.
func SeedFromReader(r io.Reader) (Seed, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Seed{}, fmt.Errorf("prng: read entropy: %w", err)
	}
	return Seed{
		binary.BigEndian.Uint16(buf[0:2]),
		binary.BigEndian.Uint16(buf[2:4]),
	}, nil
}

// SeedFromTime derives a coarse seed from a wall-clock reading, for hosts
// without an entropy source.
func SeedFromTime(t time.Time) Seed {
	return Seed{
		uint16(t.Unix()),
		uint16(t.Nanosecond() >> 16),
	}
}

// SeedFromEntropy seeds from the host's cryptographic source and falls back
// to the clock if that source is unavailable.
func SeedFromEntropy() Seed {
	seed, err := SeedFromReader(rand.Reader)
	if err != nil {
		return SeedFromTime(time.Now())
	}
	return seed
}

// SeedFromInt64 folds a 64-bit value (e.g. a --seed flag) into a Seed.
func SeedFromInt64(v int64) Seed {
	u := uint64(v)
	folded := uint32(u) ^ uint32(u>>32)
	return Seed{uint16(folded >> 16), uint16(folded)}
}

// String formats the seed as "hhhh:hhhh".
func (s Seed) String() string {
	return fmt.Sprintf("%04x:%04x", s[0], s[1])
}

// ParseSeed parses the "hhhh:hhhh" form produced by String.
func ParseSeed(str string) (Seed, error) {
	hi, lo, ok := strings.Cut(str, ":")
	if !ok {
		return Seed{}, fmt.Errorf("prng: invalid seed %q: missing ':'", str)
	}
	a, err := strconv.ParseUint(hi, 16, 16)
	if err != nil {
		return Seed{}, fmt.Errorf("prng: invalid seed %q: %w", str, err)
	}
	b, err := strconv.ParseUint(lo, 16, 16)
	if err != nil {
		return Seed{}, fmt.Errorf("prng: invalid seed %q: %w", str, err)
	}
	return Seed{uint16(a), uint16(b)}, nil
}
