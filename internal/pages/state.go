// Package pages composes components into the diary screens: the list, the
// detail view, the new-diary form and the pictures placeholder.
package pages

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/conneroisu/diary/internal/diary"
	"github.com/conneroisu/diary/internal/routes"
)

// ModalNew is the ?modal= value that opens the new-diary form.
const ModalNew = "new"

// ListState is the list page UI state carried in the query string.
type ListState struct {
	Filter     string
	Search     string
	Page       int
	FilterOpen bool
	Modal      string
}

// ParseListState reads the list state from query values. Malformed page
// numbers fall back to the first page.
func ParseListState(q url.Values) ListState {
	s := ListState{
		Filter:     strings.TrimSpace(q.Get("filter")),
		Search:     q.Get("q"),
		FilterOpen: q.Get("filter_open") == "1" || q.Get("filter_open") == "true",
		Modal:      q.Get("modal"),
		Page:       1,
	}
	if s.Filter == "" {
		s.Filter = diary.FilterAll
	}
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		s.Page = p
	}
	return s
}

// Query converts the state into a store query.
func (s ListState) Query(pageSize, pageRange int) diary.Query {
	return diary.Query{
		Filter:    s.Filter,
		Search:    s.Search,
		Page:      s.Page,
		PageSize:  pageSize,
		PageRange: pageRange,
	}
}

// URL renders the state as a list page link. Default values are left out.
func (s ListState) URL() string {
	q := url.Values{}
	if s.Filter != "" && s.Filter != diary.FilterAll {
		q.Set("filter", s.Filter)
	}
	if s.Search != "" {
		q.Set("q", s.Search)
	}
	if s.Page > 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	if s.FilterOpen {
		q.Set("filter_open", "1")
	}
	if s.Modal != "" {
		q.Set("modal", s.Modal)
	}
	if len(q) == 0 {
		return routes.DiariesList.Path
	}
	return routes.DiariesList.Path + "?" + q.Encode()
}

// WithPage returns a copy pointing at page, with transient UI closed.
func (s ListState) WithPage(page int) ListState {
	s.Page = page
	s.FilterOpen = false
	s.Modal = ""
	return s
}

// WithFilterOpen returns a copy with the filter list open or closed.
func (s ListState) WithFilterOpen(open bool) ListState {
	s.FilterOpen = open
	s.Modal = ""
	return s
}

// WithModal returns a copy with the given modal open.
func (s ListState) WithModal(modal string) ListState {
	s.Modal = modal
	s.FilterOpen = false
	return s
}
