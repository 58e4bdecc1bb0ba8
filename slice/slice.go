package slice

import "strings"

// FindIndex returns the first index of t in vs, or -1.
func FindIndex[T comparable](vs []T, t T) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}

	return -1
}

// Contains returns true if t exists in vs.
func Contains[T comparable](vs []T, t T) bool {
	return FindIndex(vs, t) > -1
}

// FindIndexFold returns the first index of a string equal to t ignoring case, or -1.
func FindIndexFold(vs []string, t string) int {
	for i, v := range vs {
		if strings.EqualFold(v, t) {
			return i
		}
	}

	return -1
}

// FindSubFold returns the index of the first string containing sub ignoring case, or -1.
func FindSubFold(vs []string, sub string) int {
	sub = strings.ToLower(sub)

	for i, v := range vs {
		if strings.Contains(strings.ToLower(v), sub) {
			return i
		}
	}

	return -1
}

// Unique returns the distinct values of vs in first-seen order.
func Unique[T comparable](vs []T) []T {
	seen := make(map[T]struct{}, len(vs))
	out := make([]T, 0, len(vs))

	for _, v := range vs {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

