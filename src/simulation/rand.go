package simulation

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Sampler is the stream of random draws consumed by a run. Every draw made by
// the generators and the simulator goes through one Sampler, in a fixed order.
type Sampler interface {
	Normal(mean, sd float64) float64
	LogNormal(logMean, logSD float64) float64
	Bernoulli(p float64) int
	SampleWithoutReplacement(n, k int) ([]int, error)
}

// Rand draws from gonum distributions sharing one seeded PCG source. Two
// Rand values created with the same seed yield the same sequence of draws.
type Rand struct {
	src rand.Source
}

func NewRand(seed uint64) *Rand {
	return &Rand{
		src: rand.NewPCG(seed, seed),
	}
}

func (r *Rand) Normal(mean, sd float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: sd, Src: r.src}.Rand()
}

func (r *Rand) LogNormal(logMean, logSD float64) float64 {
	return distuv.LogNormal{Mu: logMean, Sigma: logSD, Src: r.src}.Rand()
}

func (r *Rand) Bernoulli(p float64) int {
	return int(distuv.Bernoulli{P: p, Src: r.src}.Rand())
}

// SampleWithoutReplacement returns k distinct indices in [0, n), in the order
// they were drawn.
func (r *Rand) SampleWithoutReplacement(n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, fmt.Errorf("SampleWithoutReplacement: cannot draw %d of %d", k, n)
	}

	idxs := make([]int, k)
	if k == 0 {
		return idxs, nil
	}

	sampleuv.WithoutReplacement(idxs, n, r.src)
	return idxs, nil
}
