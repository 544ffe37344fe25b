package util

// Maps the input slice using the provided mapping function.
func MappedSlice[V any, U any](values []V, f func(V) U) []U {
	result := make([]U, 0, len(values))
	for _, v := range values {
		result = append(result, f(v))
	}
	return result
}

// Keeps the elements of the input slice for which the predicate holds.
func FilteredSlice[V any](values []V, pred func(V) bool) []V {
	result := []V{}
	for _, v := range values {
		if pred(v) {
			result = append(result, v)
		}
	}
	return result
}
