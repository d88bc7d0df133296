package genome

import (
	"math/rand"
)

// MutationParams controls weight perturbation.
type MutationParams struct {
	MinPerturbations int // per mutation event
	MaxPerturbations int
	MaxDelta         int // delta is uniform in [-MaxDelta, MaxDelta]
}

// DefaultMutation returns 1..5 perturbations of at most ±10 per event.
func DefaultMutation() MutationParams {
	return MutationParams{
		MinPerturbations: 1,
		MaxPerturbations: 5,
		MaxDelta:         10,
	}
}

// Perturb nudges one random weight component of one random sensor and
// clamps it to the weight limit. It mutates g in place.
func (g Genome) Perturb(rng *rand.Rand, maxDelta int) {
	if len(g) == 0 {
		return
	}
	s := &g[rng.Intn(len(g))]
	c := rng.Intn(len(s.Weights))
	delta := rng.Intn(2*maxDelta+1) - maxDelta
	s.Weights[c] = Clamp(s.Weights[c]+delta, WeightLimit)
}

// Mutate applies one mutation event: a random number of perturbations in
// [MinPerturbations, MaxPerturbations]. Returns how many were applied.
func (g Genome) Mutate(rng *rand.Rand, p MutationParams) int {
	lo := max(p.MinPerturbations, 0)
	hi := max(p.MaxPerturbations, lo)
	n := lo + rng.Intn(hi-lo+1)
	for range n {
		g.Perturb(rng, p.MaxDelta)
	}
	return n
}
