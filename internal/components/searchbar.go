package components

import (
	"context"

	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/theme"
)

// DefaultSearchPlaceholder is used when SearchbarProps.Placeholder is empty.
const DefaultSearchPlaceholder = "검색어를 입력해 주세요."

// SearchbarProps configures Searchbar.
type SearchbarProps struct {
	Variant     Variant
	Size        Size
	Theme       theme.Mode
	Class       string
	Placeholder string
	// Name defaults to "q".
	Name  string
	Value string
}

func (p SearchbarProps) class(ctx context.Context) string {
	return markup.Classes("searchbar",
		"variant-"+p.Variant.orDefault(),
		"size-"+p.Size.orDefault(),
		"theme-"+resolveTheme(ctx, p.Theme),
		p.Class)
}

func (p SearchbarProps) name() string {
	if p.Name == "" {
		return "q"
	}
	return p.Name
}

func (p SearchbarProps) placeholder() string {
	if p.Placeholder == "" {
		return DefaultSearchPlaceholder
	}
	return p.Placeholder
}
