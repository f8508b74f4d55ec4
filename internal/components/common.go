// Package components is the UI component library: buttons, inputs, the
// selectbox, pagination, searchbar and toggle. Every component is a props
// struct and a constructor returning a templ.Component.
package components

import (
	"context"

	"github.com/conneroisu/diary/internal/theme"
)

// Variant is the visual emphasis of a component.
type Variant string

const (
	Primary   Variant = "primary"
	Secondary Variant = "secondary"
	Tertiary  Variant = "tertiary"
)

func (v Variant) orDefault() string {
	switch v {
	case Secondary, Tertiary:
		return string(v)
	default:
		return string(Primary)
	}
}

// Size is the component scale.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

func (s Size) orDefault() string {
	switch s {
	case Small, Large:
		return string(s)
	default:
		return string(Medium)
	}
}

// resolveTheme uses the explicit mode when set, otherwise the mode of the
// request being rendered.
func resolveTheme(ctx context.Context, m theme.Mode) string {
	if m != "" {
		return theme.ResolveMode(string(m)).String()
	}
	return theme.ModeFrom(ctx).String()
}

// ariaBool renders "true" or "false", as ARIA state attributes expect.
func ariaBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
