package funding

import "slices"

// TopK returns the k groups with the highest value, highest first.
//
// Groups with equal values keep their order in the aggregation, that is their
// order of first appearance. When k exceeds the number of groups, or k <= 0,
// every group is returned. An empty aggregation yields an empty result.
func TopK(a Aggregation, k int) []Group {
	if a.IsEmpty() {
		return nil
	}
	ranked := slices.Clone(a.Groups)
	slices.SortStableFunc(ranked, func(x, y Group) int { return y.Value.Cmp(x.Value) })
	if k > 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// RankOf returns the 1-based position of key in ranked, or 0 when absent.
func RankOf(ranked []Group, key string) int {
	for i, g := range ranked {
		if SameName(g.Key, key) {
			return i + 1
		}
	}
	return 0
}
