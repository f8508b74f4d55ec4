package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var filterOptions = []Option{
	{Value: "all", Label: "전체"},
	{Value: "happy", Label: "기쁨"},
	{Value: "sad", Label: "슬픔"},
}

func TestSelectboxClosed(t *testing.T) {
	doc := render(t, Selectbox(SelectboxProps{Options: filterOptions, Value: "happy", Class: "filterSelect"}))

	container := first(t, doc, byAttr("class", "selectContainer filterSelect"))
	trigger := first(t, container, byAttr("role", "combobox"))
	assert.Equal(t, []string{"select", "select--primary", "select--medium"}, classes(trigger))
	assert.Equal(t, "listbox", attrOf(trigger, "aria-haspopup"))
	assert.Equal(t, "false", attrOf(trigger, "aria-expanded"))
	assert.Equal(t, "selectbox-options", attrOf(trigger, "aria-controls"))
	assert.Equal(t, "0", attrOf(trigger, "tabindex"))
	assert.Equal(t, "기쁨", textOf(first(t, trigger, byAttr("class", "selectText"))))
	assert.Empty(t, findAll(doc, byAttr("role", "listbox")))
}

func TestSelectboxOpenWithSubmitOptions(t *testing.T) {
	doc := render(t, Selectbox(SelectboxProps{
		Options:    filterOptions,
		Value:      "sad",
		Open:       true,
		Name:       "filter",
		ToggleHref: "/diaries?filter=sad",
	}))

	trigger := first(t, doc, byAttr("role", "combobox"))
	assert.Equal(t, "a", trigger.Data)
	assert.Equal(t, "/diaries?filter=sad", attrOf(trigger, "href"))
	assert.Equal(t, "true", attrOf(trigger, "aria-expanded"))
	assert.Contains(t, classes(trigger), "select--open")

	list := first(t, doc, byAttr("role", "listbox"))
	assert.Equal(t, "selectbox-options", attrOf(list, "id"))

	opts := findAll(list, byAttr("role", "option"))
	assert.Len(t, opts, 3)
	for _, o := range opts {
		assert.Equal(t, "button", o.Data)
		assert.Equal(t, "filter", attrOf(o, "name"))
		assert.Equal(t, "submit", attrOf(o, "type"))
	}
	assert.Equal(t, "true", attrOf(opts[2], "aria-selected"))
	assert.Equal(t, "false", attrOf(opts[0], "aria-selected"))
	assert.Contains(t, classes(opts[2]), "option--selected")
}

func TestSelectboxPlaceholderAndStates(t *testing.T) {
	doc := render(t, Selectbox(SelectboxProps{
		Options:      filterOptions,
		Disabled:     true,
		Open:         true,
		ErrorMessage: "필수",
		Label:        "감정",
		ToggleHref:   "/x",
	}))

	trigger := first(t, doc, byAttr("role", "combobox"))
	assert.Equal(t, "div", trigger.Data, "disabled trigger is not a link")
	assert.Equal(t, "-1", attrOf(trigger, "tabindex"))
	assert.Equal(t, "감정", attrOf(trigger, "aria-label"))
	assert.Subset(t, classes(trigger), []string{"select--disabled", "select--error", "select--placeholder"})
	assert.NotContains(t, classes(trigger), "select--open")
	assert.Equal(t, DefaultSelectPlaceholder, textOf(first(t, trigger, byAttr("class", "selectText"))))
	assert.Empty(t, findAll(doc, byAttr("role", "listbox")))
	assert.Equal(t, "필수", textOf(first(t, doc, byAttr("class", "errorMessage"))))
}

func TestSelectboxDisplayText(t *testing.T) {
	assert.Equal(t, "전체", SelectboxProps{Options: filterOptions, Value: "all"}.DisplayText())
	assert.Equal(t, "고르세요", SelectboxProps{Options: filterOptions, Value: "x", Placeholder: "고르세요"}.DisplayText())
	assert.Equal(t, DefaultSelectPlaceholder, SelectboxProps{}.DisplayText())
}

func TestSelectStateKeys(t *testing.T) {
	tests := []struct {
		name      string
		start     SelectState
		keys      []string
		wantOpen  bool
		wantValue string
	}{
		{name: "enter opens", start: SelectState{Value: "all"}, keys: []string{KeyEnter}, wantOpen: true, wantValue: "all"},
		{name: "space toggles twice", start: SelectState{Value: "all"}, keys: []string{KeySpace, KeySpace}, wantOpen: false, wantValue: "all"},
		{name: "escape closes", start: SelectState{Open: true, Value: "all"}, keys: []string{KeyEscape}, wantOpen: false, wantValue: "all"},
		{name: "arrow down opens first", start: SelectState{Value: "all"}, keys: []string{KeyArrowDown}, wantOpen: true, wantValue: "all"},
		{name: "arrow down selects next and closes", start: SelectState{Open: true, Value: "all"}, keys: []string{KeyArrowDown}, wantOpen: false, wantValue: "happy"},
		{name: "arrow down wraps", start: SelectState{Open: true, Value: "sad"}, keys: []string{KeyArrowDown}, wantValue: "all"},
		{name: "arrow up wraps", start: SelectState{Open: true, Value: "all"}, keys: []string{KeyArrowUp}, wantValue: "sad"},
		{name: "arrow up from nothing picks last", start: SelectState{Open: true}, keys: []string{KeyArrowUp}, wantValue: "sad"},
		{name: "arrow down from nothing picks first", start: SelectState{Open: true}, keys: []string{KeyArrowDown}, wantValue: "all"},
		{name: "disabled ignores keys", start: SelectState{Disabled: true, Value: "happy"}, keys: []string{KeyEnter, KeyArrowDown}, wantValue: "happy"},
		{name: "unknown key", start: SelectState{Value: "happy"}, keys: []string{"Tab"}, wantValue: "happy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.Options = filterOptions
			for _, k := range tt.keys {
				s.HandleKey(k)
			}
			assert.Equal(t, tt.wantOpen, s.Open)
			assert.Equal(t, tt.wantValue, s.Value)
		})
	}
}

func TestSelectStateOnChange(t *testing.T) {
	var got []string
	s := SelectState{Options: filterOptions, Value: "all", OnChange: func(v string) { got = append(got, v) }}

	s.Toggle()
	assert.True(t, s.Open)
	s.Select("sad")
	assert.False(t, s.Open)

	s.Open = true
	s.HandleKey(KeyArrowUp)
	assert.Equal(t, []string{"sad", "happy"}, got)

	empty := SelectState{Open: true}
	empty.HandleKey(KeyArrowDown)
	assert.True(t, empty.Open)

	disabled := SelectState{Disabled: true}
	disabled.Toggle()
	assert.False(t, disabled.Open)
}
