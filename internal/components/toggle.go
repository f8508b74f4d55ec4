package components

import (
	"context"

	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/theme"
)

// ToggleProps configures Toggle.
type ToggleProps struct {
	Checked         bool
	Disabled        bool
	Variant         Variant
	Size            Size
	Theme           theme.Mode
	Class           string
	AriaLabel       string
	AriaDescribedBy string
	// Type defaults to "button"; use "submit" to post the switch inside a form.
	Type  string
	Name  string
	Value string
}

func (p ToggleProps) buttonType() string {
	if p.Type == "" {
		return "button"
	}
	return p.Type
}

// classes builds the state classes for base, "toggle" or "handle". Only the
// button carries the caller's Class.
func (p ToggleProps) classes(ctx context.Context, base string) string {
	checked, disabled := "", ""
	if p.Checked {
		checked = "--checked"
	}
	if p.Disabled {
		disabled = "--disabled"
	}
	extra := ""
	if base == "toggle" {
		extra = p.Class
	}
	return markup.Classes(
		base,
		base+"--"+p.Variant.orDefault(),
		base+"--"+p.Size.orDefault(),
		base+"--"+resolveTheme(ctx, p.Theme),
		affix(base, checked),
		affix(base, disabled),
		extra)
}

func affix(base, suffix string) string {
	if suffix == "" {
		return ""
	}
	return base + suffix
}

// ToggleState holds a switch value that is either controlled by the caller
// or kept internally.
type ToggleState struct {
	// Checked, when non-nil, is the externally controlled value.
	Checked  *bool
	internal bool
	Disabled bool
	OnChange func(checked bool)
}

// NewToggleState starts uncontrolled at defaultChecked unless checked is
// supplied.
func NewToggleState(checked *bool, defaultChecked bool) *ToggleState {
	return &ToggleState{Checked: checked, internal: defaultChecked}
}

// Controlled reports whether the value comes from outside.
func (s *ToggleState) Controlled() bool { return s.Checked != nil }

// IsChecked is the value the switch shows.
func (s *ToggleState) IsChecked() bool {
	if s.Checked != nil {
		return *s.Checked
	}
	return s.internal
}

// Toggle flips the switch and returns the new value. Disabled switches do
// nothing. A controlled switch only reports the new value through
// OnChange; the caller decides whether to apply it.
func (s *ToggleState) Toggle() bool {
	if s.Disabled {
		return s.IsChecked()
	}
	next := !s.IsChecked()
	if !s.Controlled() {
		s.internal = next
	}
	if s.OnChange != nil {
		s.OnChange(next)
	}
	return next
}
