package ga

import (
	"math/rand"
	"sort"
)

// EliteCount returns how many individuals survive unchanged: floor(rate*n),
// at least one and never more than n
func EliteCount(rate float64, n int) int {
	if n <= 0 {
		return 0
	}
	k := int(rate * float64(n))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	return k
}

// EliteIndices returns the indices of the k highest scores, best first.
// Equal scores keep population order.
func EliteIndices(scores []int, k int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}

// RouletteSelect draws k indices with replacement, each with probability
// proportional to its score. When every score is zero it draws uniformly.
func RouletteSelect(scores []int, k int, rng *rand.Rand) []int {
	if len(scores) == 0 || k <= 0 {
		return nil
	}

	cumulative := make([]int, len(scores))
	total := 0
	for i, s := range scores {
		total += s
		cumulative[i] = total
	}

	picked := make([]int, k)
	for i := range picked {
		if total == 0 {
			picked[i] = rng.Intn(len(scores))
			continue
		}
		// first index whose cumulative weight exceeds the spin
		spin := rng.Intn(total)
		picked[i] = sort.Search(len(cumulative), func(j int) bool {
			return cumulative[j] > spin
		})
	}
	return picked
}
