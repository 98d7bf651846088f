package sheet

// ReconcileRows returns the item list a dynamic-row editor should show:
// every non-empty item in order, followed by exactly one trailing empty
// row. The UI layer diffs elements against the result; this function only
// operates on data.
func ReconcileRows[T any](items []T, isEmpty func(T) bool) []T {
	result := make([]T, 0, len(items)+1)
	for _, item := range items {
		if !isEmpty(item) {
			result = append(result, item)
		}
	}
	var blank T
	return append(result, blank)
}
