package components

import (
	"context"
	"math/rand/v2"

	"github.com/a-h/templ"

	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/theme"
)

// DefaultInputPlaceholder is used when InputProps.Placeholder is empty.
const DefaultInputPlaceholder = "회고를 남겨보세요."

// InputProps configures Input.
type InputProps struct {
	Variant      Variant
	Size         Size
	Theme        theme.Mode
	Class        string
	Label        string
	ErrorMessage string
	Placeholder  string
	// ID links the label to the field; generated when empty.
	ID       string
	Name     string
	Value    string
	Type     string
	Disabled bool
	Attrs    templ.Attributes
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewInputID returns "input-" followed by seven random base-36 characters.
func NewInputID() string {
	b := make([]byte, 7)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return "input-" + string(b)
}

func (p InputProps) inputID() string {
	if p.ID == "" {
		return NewInputID()
	}
	return p.ID
}

func (p InputProps) placeholder() string {
	if p.Placeholder == "" {
		return DefaultInputPlaceholder
	}
	return p.Placeholder
}

func (p InputProps) inputType() string {
	if p.Type == "" {
		return "text"
	}
	return p.Type
}

func (p InputProps) wrapperClass() string {
	return markup.Classes("wrapper", p.Size.orDefault()+"Wrapper")
}

func (p InputProps) class(ctx context.Context) string {
	errClass := ""
	if p.ErrorMessage != "" {
		errClass = "error"
	}
	return markup.Classes("input", p.Size.orDefault(), resolveTheme(ctx, p.Theme), p.Variant.orDefault(), errClass, p.Class)
}
