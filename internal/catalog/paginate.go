package catalog

// PageSize is the number of exercise cards shown per results page.
const PageSize = 9

// PageCount returns the number of pages needed for total records.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// Page returns the 1-based page n of records. Out-of-range pages are empty.
func Page(records []Exercise, n int) []Exercise {
	if n < 1 {
		return nil
	}
	start := (n - 1) * PageSize
	if start >= len(records) {
		return nil
	}
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Paginated reports whether the page selector should be shown at all.
func Paginated(total int) bool {
	return total > PageSize
}
