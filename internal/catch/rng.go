package catch

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies the randomness for simulated throws.
type Source interface {
	Float64() float64 // [0,1)
}

// crypto-backed source, used when the caller passes nil
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// a throw is better served by the PRNG than by an error
		return rand.Float64()
	}
	// a float64 mantissa holds 53 bits, so shift the rest away
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

func DefaultSource() Source { return cryptoSource{} }

// seeded PCG source; simulation runs under the same seed replay exactly
type seededSource struct{ r *rand.Rand }

func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
