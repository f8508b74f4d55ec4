package components

import (
	"github.com/a-h/templ"

	"github.com/conneroisu/diary/internal/markup"
)

// DefaultSelectPlaceholder is shown when no option is selected.
const DefaultSelectPlaceholder = "선택하세요"

// Option is one selectbox choice.
type Option struct {
	Value string
	Label string
}

// SelectboxProps configures Selectbox.
type SelectboxProps struct {
	Variant      Variant
	Size         Size
	Class        string
	Options      []Option
	Value        string
	Placeholder  string
	Label        string
	ErrorMessage string
	Disabled     bool
	Open         bool
	// Name makes each option a submit button carrying Name=value.
	Name string
	// ToggleHref, when set, turns the trigger into a link that flips Open.
	ToggleHref string
	// ListID is the id of the option list; defaults to "selectbox-options".
	ListID string
}

// DisplayText is the selected option's label, or the placeholder.
func (p SelectboxProps) DisplayText() string {
	for _, o := range p.Options {
		if o.Value == p.Value {
			return o.Label
		}
	}
	if p.Placeholder == "" {
		return DefaultSelectPlaceholder
	}
	return p.Placeholder
}

func (p SelectboxProps) hasSelection() bool {
	for _, o := range p.Options {
		if o.Value == p.Value {
			return true
		}
	}
	return false
}

func (p SelectboxProps) listID() string {
	if p.ListID == "" {
		return "selectbox-options"
	}
	return p.ListID
}

func (p SelectboxProps) isOpen() bool { return p.Open && !p.Disabled }

// linked reports whether the trigger is a link that flips Open.
func (p SelectboxProps) linked() bool { return p.ToggleHref != "" && !p.Disabled }

func (p SelectboxProps) containerClass() string {
	return markup.Classes("selectContainer", p.Class)
}

// triggerAttrs are the combobox attributes shared by the div and link
// forms of the trigger.
func (p SelectboxProps) triggerAttrs() templ.OrderedAttributes {
	var state []string
	if p.Disabled {
		state = append(state, "select--disabled")
	}
	if p.ErrorMessage != "" {
		state = append(state, "select--error")
	}
	if p.isOpen() {
		state = append(state, "select--open")
	}
	if !p.hasSelection() {
		state = append(state, "select--placeholder")
	}
	class := markup.Classes(append([]string{
		"select",
		"select--" + p.Variant.orDefault(),
		"select--" + p.Size.orDefault(),
	}, state...)...)

	tabIndex := "0"
	if p.Disabled {
		tabIndex = "-1"
	}
	label := p.Label
	if label == "" {
		label = p.DisplayText()
	}
	return templ.OrderedAttributes{
		{Key: "class", Value: class},
		{Key: "tabindex", Value: tabIndex},
		{Key: "role", Value: "combobox"},
		{Key: "aria-haspopup", Value: "listbox"},
		{Key: "aria-expanded", Value: ariaBool(p.isOpen())},
		{Key: "aria-controls", Value: p.listID()},
		{Key: "aria-label", Value: label},
	}
}

// Selectbox keys understood by SelectState.HandleKey.
const (
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyEscape    = "Escape"
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
)

// SelectState is the interaction model behind a selectbox: whether the
// list is open, which value is selected, and how keys move between them.
type SelectState struct {
	Options  []Option
	Value    string
	Open     bool
	Disabled bool
	// OnChange is called with the new value whenever an option is selected.
	OnChange func(value string)
}

// Toggle flips the open state unless disabled.
func (s *SelectState) Toggle() {
	if s.Disabled {
		return
	}
	s.Open = !s.Open
}

// Select picks value and closes the list.
func (s *SelectState) Select(value string) {
	s.Value = value
	s.Open = false
	if s.OnChange != nil {
		s.OnChange(value)
	}
}

// HandleKey applies one key press. Enter and Space toggle the list, Escape
// closes it, and the arrow keys open a closed list or move the selection
// with wrap-around. Disabled selectboxes ignore every key.
func (s *SelectState) HandleKey(key string) {
	if s.Disabled {
		return
	}

	switch key {
	case KeyEnter, KeySpace:
		s.Open = !s.Open
	case KeyEscape:
		s.Open = false
	case KeyArrowDown:
		if !s.Open {
			s.Open = true
			return
		}
		if len(s.Options) == 0 {
			return
		}
		i := s.index()
		next := 0
		if i < len(s.Options)-1 {
			next = i + 1
		}
		s.Select(s.Options[next].Value)
	case KeyArrowUp:
		if !s.Open {
			s.Open = true
			return
		}
		if len(s.Options) == 0 {
			return
		}
		i := s.index()
		prev := len(s.Options) - 1
		if i > 0 {
			prev = i - 1
		}
		s.Select(s.Options[prev].Value)
	}
}

func (s *SelectState) index() int {
	for i, o := range s.Options {
		if o.Value == s.Value {
			return i
		}
	}
	return -1
}
