package components

import (
	"context"

	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/pagination"
	"github.com/conneroisu/diary/internal/theme"
)

// PaginationProps configures Pagination.
type PaginationProps struct {
	Pager   *pagination.Pager
	Href    func(page int) string
	Variant Variant
	Size    Size
	Theme   theme.Mode
	Class   string
}

func (p PaginationProps) class(ctx context.Context) string {
	return markup.Classes("pagination", p.Size.orDefault(), resolveTheme(ctx, p.Theme), p.Variant.orDefault(), p.Class)
}

// href links page, or returns "" when the pager would ignore it.
func (p PaginationProps) href(page int) string {
	if p.Href == nil || !p.Pager.Accept(page) {
		return ""
	}
	return p.Href(page)
}

// navHref is the previous or next link; "" leaves the control disabled.
func (p PaginationProps) navHref(page int, enabled bool) string {
	if !enabled {
		return ""
	}
	return p.href(page)
}
