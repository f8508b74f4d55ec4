package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/theme"
)

// ButtonProps configures Button.
type ButtonProps struct {
	Variant Variant
	Size    Size
	Theme   theme.Mode
	Class   string
	// Icon renders before the label.
	Icon templ.Component
	// Type defaults to "button".
	Type     string
	Name     string
	Value    string
	Href     string
	Disabled bool
	Attrs    templ.Attributes
}

func (p ButtonProps) class(ctx context.Context) string {
	return markup.Classes("button",
		p.Size.orDefault(),
		resolveTheme(ctx, p.Theme),
		p.Variant.orDefault(),
		p.Class)
}

func (p ButtonProps) buttonType() string {
	if p.Type == "" {
		return "button"
	}
	return p.Type
}
