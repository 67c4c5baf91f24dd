package search

import "sort"

// rank orders results in place. Only one key is honored, by precedence:
// price desc, time desc, price asc, then time asc. Ties keep input order.
func rank(results []Result, sortPrice, sortTime string) {
	var less func(a, b Result) bool
	switch {
	case sortPrice == Desc:
		less = func(a, b Result) bool { return a.PricePerGolfer > b.PricePerGolfer }
	case sortTime == Desc:
		less = func(a, b Result) bool { return a.Time > b.Time }
	case sortPrice == Asc:
		less = func(a, b Result) bool { return a.PricePerGolfer < b.PricePerGolfer }
	default:
		less = func(a, b Result) bool { return a.Time < b.Time }
	}
	sort.SliceStable(results, func(i, j int) bool { return less(results[i], results[j]) })
}
