package query

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 25

// Page is one page of a filtered row set.
type Page struct {
	Rows []Row
	// Page is the 1-based page actually returned after clamping.
	Page      int
	PageCount int
	Total     int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Page < p.PageCount }

// Paginate slices rows into fixed-size pages. The requested page is clamped
// to [1, PageCount]; PageCount is at least 1 so an empty set has one empty
// page.
func Paginate(rows []Row, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(rows)
	pageCount := max(1, (total+pageSize-1)/pageSize)
	page = min(max(page, 1), pageCount)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	return Page{
		Rows:      rows[start:end:end],
		Page:      page,
		PageCount: pageCount,
		Total:     total,
	}
}
