package main

import "iter"

type pair struct {
	first  int64
	second int64
}

// pairs yields every 2-combination of list by position, ordered by (i, j).
func pairs(list []int64) iter.Seq[pair] {
	return func(yield func(pair) bool) {
		for i := range list {
			for j := i + 1; j < len(list); j++ {
				if !yield(pair{list[i], list[j]}) {
					return
				}
			}
		}
	}
}
