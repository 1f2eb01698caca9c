package trajectory

import "sort"

// SortedJoints returns a sorted copy of the given joint names with duplicates
// collapsed. Set comparisons in this package operate on sorted copies so that
// callers may pass names in any order.
func SortedJoints(names []string) []string {
	out := append([]string{}, names...)
	sort.Strings(out)
	deduped := out[:0]
	for i, name := range out {
		if i > 0 && name == out[i-1] {
			continue
		}
		deduped = append(deduped, name)
	}
	return deduped
}

// IsSubset reports whether every joint in sub also appears in super,
// independent of ordering or duplicates in either input.
func IsSubset(sub, super []string) bool {
	subSorted := SortedJoints(sub)
	superSorted := SortedJoints(super)
	i := 0
	for _, name := range subSorted {
		for i < len(superSorted) && superSorted[i] < name {
			i++
		}
		if i == len(superSorted) || superSorted[i] != name {
			return false
		}
	}
	return true
}

// Exclude returns the joints of names not present in excluded, preserving the
// order of names.
func Exclude(names, excluded []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if IndexOf(excluded, name) < 0 {
			out = append(out, name)
		}
	}
	return out
}

// IndexOf returns the position of name within names, or -1 if absent.
func IndexOf(names []string, name string) int {
	for i, jn := range names {
		if jn == name {
			return i
		}
	}
	return -1
}
