// Package avalanche measures how far a single flipped input bit spreads
// through a 64-bit block transform.
package avalanche

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/aclements/go-moremath/stats"
)

// Transform is a keyed 64-bit block function such as des.Encrypt.
type Transform func(block, key uint64) uint64

// parityMask selects the low (parity) bit of every key byte.
const parityMask = 0x0101010101010101

type Config struct {
	Samples int
	Seed    uint64
	// KeyBits additionally flips each of the 56 effective key bits.
	KeyBits bool
}

// Distribution summarises Hamming distances between paired outputs.
type Distribution struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func (d Distribution) String() string {
	return fmt.Sprintf("n=%d mean=%.3f sd=%.3f min=%.0f max=%.0f", d.Count, d.Mean, d.StdDev, d.Min, d.Max)
}

type Report struct {
	Plaintext Distribution
	Key       Distribution
}

func Analyze(ctx context.Context, f Transform, cfg Config) (Report, error) {
	if f == nil {
		return Report{}, errors.New("transform cannot be nil")
	}
	if cfg.Samples <= 0 {
		return Report{}, fmt.Errorf("invalid sample count: %d", cfg.Samples)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))

	plain := make([]float64, 0, cfg.Samples*64)
	var key []float64
	if cfg.KeyBits {
		key = make([]float64, 0, cfg.Samples*56)
	}

	for i := 0; i < cfg.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("avalanche interrupted after %d samples: %w", i, err)
		}

		block, k := rng.Uint64(), rng.Uint64()
		base := f(block, k)

		for bit := 0; bit < 64; bit++ {
			flipped := f(block^(1<<uint(bit)), k)
			plain = append(plain, float64(bits.OnesCount64(base^flipped)))
		}

		if !cfg.KeyBits {
			continue
		}
		for bit := 0; bit < 64; bit++ {
			mask := uint64(1) << uint(bit)
			if mask&parityMask != 0 {
				continue
			}
			flipped := f(block, k^mask)
			key = append(key, float64(bits.OnesCount64(base^flipped)))
		}
	}

	report := Report{Plaintext: summarize(plain)}
	if cfg.KeyBits {
		report.Key = summarize(key)
	}
	return report, nil
}

func summarize(xs []float64) Distribution {
	sample := stats.Sample{Xs: xs}
	lo, hi := sample.Bounds()
	return Distribution{
		Count:  len(xs),
		Mean:   sample.Mean(),
		StdDev: sample.StdDev(),
		Min:    lo,
		Max:    hi,
	}
}
