package treap

import "sync/atomic"

// goldenGamma is the splitmix64 increment (2^64 / φ, rounded to odd).
const goldenGamma = 0x9E3779B97F4A7C15

// defaultSeed is the process-wide source of per-instance seeds. Each New
// without WithSeed claims the next value atomically, so concurrently
// constructed treaps receive distinct priority streams without locking.
var defaultSeed atomic.Uint64

func init() {
	defaultSeed.Store(goldenGamma)
}

// splitmix64 is a tiny per-instance PRNG: fast, well-distributed, and
// fully determined by its seed, which is what WithSeed relies on.
type splitmix64 struct {
	state uint64
}

// next advances the stream and returns the next 64 uniform bits.
func (s *splitmix64) next() uint64 {
	s.state += goldenGamma
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB

	return z ^ (z >> 31)
}
