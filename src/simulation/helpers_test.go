package simulation

import (
	"fmt"
	"math"
)

// scriptedSampler replays fixed standard normal draws and treatment
// assignments. Scenario selection is always the first k in order.
type scriptedSampler struct {
	normals   []float64
	bernoulli []int
}

func (s *scriptedSampler) nextNormal() float64 {
	if len(s.normals) == 0 {
		return 0
	}

	z := s.normals[0]
	s.normals = s.normals[1:]
	return z
}

func (s *scriptedSampler) Normal(mean, sd float64) float64 {
	return mean + sd*s.nextNormal()
}

func (s *scriptedSampler) LogNormal(logMean, logSD float64) float64 {
	return math.Exp(s.Normal(logMean, logSD))
}

func (s *scriptedSampler) Bernoulli(p float64) int {
	if len(s.bernoulli) == 0 {
		return 0
	}

	b := s.bernoulli[0]
	s.bernoulli = s.bernoulli[1:]
	return b
}

func (s *scriptedSampler) SampleWithoutReplacement(n, k int) ([]int, error) {
	if k > n {
		return nil, fmt.Errorf("cannot draw %d of %d", k, n)
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	return idx, nil
}
