package numeral

import (
	"math"
	"math/rand"
	"time"
)

// NewRand returns the generator a run threads through every policy call.
// Seed 0 selects a non-deterministic seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform draws a numeral from [lo, hi). Integer numerals draw from the
// integers in that range. When hi <= lo the draw collapses to lo.
func Uniform[N Numeral](rng *rand.Rand, lo, hi N) N {
	if hi <= lo {
		return lo
	}
	if IsFloat[N]() {
		return Convert[N](Float64(rng, float64(lo), float64(hi)))
	}
	// Wrapping subtraction keeps the span exact for signed numerals.
	span := uint64(hi) - uint64(lo)
	if span <= math.MaxInt64 {
		return lo + N(rng.Int63n(int64(span)))
	}
	return lo + N(rng.Uint64()%span)
}

// Float64 draws from [lo, hi).
func Float64(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	v := lo + rng.Float64()*(hi-lo)
	if v >= hi {
		// lo + f*(hi-lo) can round up to hi for wide ranges.
		v = math.Nextafter(hi, lo)
	}
	return v
}

// Closed draws from [lo, hi]; both bounds are reachable.
func Closed(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	u := float64(rng.Int63n(closedSteps+1)) / closedSteps
	return lo + u*(hi-lo)
}

const closedSteps = 1 << 53
