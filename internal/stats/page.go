package stats

// Page describes one slice of a paginated view. All paged endpoints use the
// same hasMore convention.
type Page struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	HasMore bool `json:"hasMore"`
}

// Paginate slices items for a 1-based page. Out-of-range pages return an
// empty slice, not an error; non-positive limits fall back to defaultLimit.
func Paginate[T any](items []T, page, limit, defaultLimit int) ([]T, Page) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	total := len(items)
	info := Page{Total: total, Page: page}

	// Checking with division keeps huge client-supplied pages from
	// overflowing the start offset.
	if page-1 > total/limit {
		return []T{}, info
	}
	start := (page - 1) * limit
	if start >= total {
		return []T{}, info
	}
	end := start + limit
	if end < total {
		info.HasMore = true
	} else {
		end = total
	}
	return items[start:end], info
}
