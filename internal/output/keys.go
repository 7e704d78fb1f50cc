// Package output holds the small helpers that keep CLI output stable across
// runs: float rounding and ordered map iteration.
package output

import "sort"

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
