// Package simulate implements the single-entry Monte-Carlo simulator:
// for each candidate first-week pick, estimate survival probability
// under a shared greedy continuation for the remaining season.
package simulate

import (
	"math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"nfl-survivor-go/matchup"
)

// DefaultNSims is the default simulation count used when a caller
// doesn't override it.
const DefaultNSims = 50000

// maxShards bounds how many goroutines one Run call spawns; sharding
// beyond available cores buys nothing and just adds scheduling
// overhead for the sub-millisecond per-sim Bernoulli draw.
const maxShards = 8

// Run estimates, for every team available in the current (first, row
// 0) week, the probability that an entry survives the rest of the
// season having picked that team now and following a shared greedy
// continuation afterward. usedMask marks team columns already consumed
// by this entry; seed controls the deterministic worker-pool RNG split
// across shards.
func Run(grid matchup.Matrix, teams []string, usedMask []bool, nSims int, seed uint64) map[string]float64 {
	result := make(map[string]float64)
	if len(grid) == 0 || len(teams) == 0 {
		return result
	}
	if nSims <= 0 {
		nSims = DefaultNSims
	}

	row0 := grid[0]
	for t, p := range row0 {
		if usedMask[t] || math.IsNaN(p) || p < 0 || p > 1 {
			continue
		}
		seq := greedySequence(grid, usedMask, t)
		survival := simulateCandidate(p, seq, nSims, seed, uint64(t))
		result[teams[t]] = survival
	}
	return result
}

// greedySequence computes the fixed future pick sequence for weeks
// 1..n-1 after picking column `first` in week 0: at each week, choose
// the highest-probability unused, non-NaN column, ties broken by
// column index. Once no team is available, every remaining week
// contributes probability 0 (entry cannot continue).
func greedySequence(grid matchup.Matrix, usedMask []bool, first int) []float64 {
	used := make([]bool, len(usedMask))
	copy(used, usedMask)
	used[first] = true

	seq := make([]float64, 0, len(grid)-1)
	deadEnd := false
	for w := 1; w < len(grid); w++ {
		if deadEnd {
			seq = append(seq, 0)
			continue
		}
		best := -1
		bestP := -1.0
		for t, p := range grid[w] {
			if used[t] || math.IsNaN(p) || p < 0 || p > 1 {
				continue
			}
			if p > bestP {
				bestP = p
				best = t
			}
		}
		if best == -1 {
			deadEnd = true
			seq = append(seq, 0)
			continue
		}
		used[best] = true
		seq = append(seq, bestP)
	}
	return seq
}

// simulateCandidate draws nSims Bernoulli paths through pFirst and seq,
// sharded across goroutines that each own an independently seeded PCG
// generator, and returns the fraction of paths that survived every
// draw. Results are deterministic for a given (seed, candidate column)
// pair regardless of GOMAXPROCS, since the shard split and per-shard
// seed derivation are fixed functions of the inputs, not of scheduling
// order.
func simulateCandidate(pFirst float64, seq []float64, nSims int, seed, candidateID uint64) float64 {
	shards := maxShards
	if nSims < shards {
		shards = nSims
	}
	if shards < 1 {
		shards = 1
	}

	base := nSims / shards
	remainder := nSims % shards

	survivorCounts := make([]int, shards)
	var g errgroup.Group
	for s := 0; s < shards; s++ {
		s := s
		n := base
		if s < remainder {
			n++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, candidateID*1000+uint64(s)))
			survivorCounts[s] = runShard(rng, pFirst, seq, n)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, c := range survivorCounts {
		total += c
	}
	return float64(total) / float64(nSims)
}

func runShard(rng *rand.Rand, pFirst float64, seq []float64, n int) int {
	survivors := 0
	for i := 0; i < n; i++ {
		alive := bernoulli(rng, pFirst)
		for _, p := range seq {
			outcome := bernoulli(rng, p)
			alive = alive && outcome
		}
		if alive {
			survivors++
		}
	}
	return survivors
}

func bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
