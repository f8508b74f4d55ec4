package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleRender(t *testing.T) {
	doc := render(t, Toggle(ToggleProps{
		Checked:         true,
		AriaLabel:       "다크 모드",
		AriaDescribedBy: "theme-help",
		Size:            Small,
	}))

	btn := first(t, doc, byAttr("role", "switch"))
	assert.Equal(t, "true", attrOf(btn, "aria-checked"))
	assert.Equal(t, "다크 모드", attrOf(btn, "aria-label"))
	assert.Equal(t, "theme-help", attrOf(btn, "aria-describedby"))
	assert.Equal(t, []string{"toggle", "toggle--primary", "toggle--small", "toggle--light", "toggle--checked"}, classes(btn))

	handle := first(t, btn, byTag("span"))
	assert.Equal(t, []string{"handle", "handle--primary", "handle--small", "handle--light", "handle--checked"}, classes(handle))
}

func TestToggleDisabledDark(t *testing.T) {
	doc := renderDark(t, Toggle(ToggleProps{Disabled: true, Type: "submit", Name: "mode", Value: "dark"}))

	btn := first(t, doc, byAttr("role", "switch"))
	assert.Equal(t, "false", attrOf(btn, "aria-checked"))
	assert.Equal(t, "submit", attrOf(btn, "type"))
	assert.Equal(t, "mode", attrOf(btn, "name"))
	_, disabled := attr(btn, "disabled")
	assert.True(t, disabled)
	assert.Contains(t, classes(btn), "toggle--dark")
	assert.Contains(t, classes(btn), "toggle--disabled")
	assert.NotContains(t, classes(btn), "toggle--checked")
}

func TestToggleStateUncontrolled(t *testing.T) {
	var changes []bool
	s := NewToggleState(nil, true)
	s.OnChange = func(v bool) { changes = append(changes, v) }

	assert.False(t, s.Controlled())
	assert.True(t, s.IsChecked())
	assert.False(t, s.Toggle())
	assert.False(t, s.IsChecked())
	assert.True(t, s.Toggle())
	assert.Equal(t, []bool{false, true}, changes)
}

func TestToggleStateControlled(t *testing.T) {
	checked := false
	var changes []bool
	s := NewToggleState(&checked, true)
	s.OnChange = func(v bool) { changes = append(changes, v) }

	assert.True(t, s.Controlled())
	assert.False(t, s.IsChecked(), "external value wins over default")

	assert.True(t, s.Toggle())
	assert.False(t, s.IsChecked(), "controlled state only changes from outside")
	assert.Equal(t, []bool{true}, changes)

	checked = true
	assert.True(t, s.IsChecked())
}

func TestToggleStateDisabled(t *testing.T) {
	called := false
	s := NewToggleState(nil, false)
	s.Disabled = true
	s.OnChange = func(bool) { called = true }

	assert.False(t, s.Toggle())
	assert.False(t, s.IsChecked())
	assert.False(t, called)
}
