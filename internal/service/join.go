package service

// joinSortedChildren resolves each child row, already sorted and capped by
// its own query, to a parent via an in-memory lookup table. The result
// keeps the children's order. Children whose key has no parent are
// dropped, which tolerates dangling foreign keys in the prediction
// tables.
func joinSortedChildren[C, P, R any, K comparable](
	children []C,
	parents []P,
	childKey func(C) K,
	parentKey func(P) K,
	merge func(C, P) R,
) []R {
	lookup := make(map[K]P, len(parents))
	for _, p := range parents {
		lookup[parentKey(p)] = p
	}

	out := make([]R, 0, len(children))
	for _, c := range children {
		p, ok := lookup[childKey(c)]
		if !ok {
			continue
		}
		out = append(out, merge(c, p))
	}
	return out
}
