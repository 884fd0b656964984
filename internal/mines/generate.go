package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// placeMines returns a fresh row-major mine layout with exactly mineCount
// mines, chosen uniformly among all placements.
func placeMines(width, height, mineCount int, r *rand.Rand) []bool {
	grid := make([]bool, width*height)

	/*
	 * Write down the list of possible mine locations, then pick n off the
	 * list at random, swapping each pick out of the live prefix.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid
}
