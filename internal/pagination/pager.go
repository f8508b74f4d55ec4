package pagination

// DefaultPageRange is the number of page buttons shown when none is configured.
const DefaultPageRange = 5

// Page is one entry of the rendered window.
type Page struct {
	Number int
	Active bool
}

// Pager models a pagination bar: the current position, the page count and
// how many page buttons fit. Its zero value is not usable; build one with
// NewPager.
type Pager struct {
	Current   int
	Total     int
	PageRange int
	window    []int
}

// NewPager validates its inputs and precomputes the visible window.
func NewPager(current, total, pageRange int) (*Pager, error) {
	window, err := Window(current, total, pageRange)
	if err != nil {
		return nil, err
	}
	return &Pager{
		Current:   current,
		Total:     total,
		PageRange: pageRange,
		window:    window,
	}, nil
}

// Pages returns the visible window with the current page flagged.
func (p *Pager) Pages() []Page {
	pages := make([]Page, len(p.window))
	for i, n := range p.window {
		pages[i] = Page{Number: n, Active: n == p.Current}
	}
	return pages
}

// HasPrev reports whether the previous-page control is enabled.
func (p *Pager) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether the next-page control is enabled.
func (p *Pager) HasNext() bool { return p.Current < p.Total }

// Prev is the page the previous control points at.
func (p *Pager) Prev() int { return p.Current - 1 }

// Next is the page the next control points at.
func (p *Pager) Next() int { return p.Current + 1 }

// Accept reports whether a request to move to page should be honoured.
// Pages outside [1, Total] and the current page are ignored rather than
// treated as errors.
func (p *Pager) Accept(page int) bool {
	return page >= 1 && page <= p.Total && page != p.Current
}

// Clamp brings a requested page back into [1, total]; used when the page
// number comes from an untrusted query string.
func Clamp(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
