package components

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/theme"
)

func TestButtonClasses(t *testing.T) {
	tests := []struct {
		name  string
		props ButtonProps
		want  []string
	}{
		{name: "defaults", props: ButtonProps{}, want: []string{"button", "medium", "light", "primary"}},
		{name: "explicit", props: ButtonProps{Variant: Tertiary, Size: Large, Theme: theme.ModeDark, Class: "writeButton"},
			want: []string{"button", "large", "dark", "tertiary", "writeButton"}},
		{name: "unknown values fall back", props: ButtonProps{Variant: "loud", Size: "huge"}, want: []string{"button", "medium", "light", "primary"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, Button(tt.props, markup.Text("일기쓰기")))
			btn := first(t, doc, byTag("button"))
			assert.Equal(t, tt.want, classes(btn))
			assert.Equal(t, "button", attrOf(btn, "type"))
			assert.Equal(t, "일기쓰기", textOf(btn))
		})
	}
}

func TestButtonThemeFromContext(t *testing.T) {
	doc := renderDark(t, Button(ButtonProps{}, markup.Text("x")))
	assert.Contains(t, classes(first(t, doc, byTag("button"))), "dark")
}

func TestButtonIconAndAttrs(t *testing.T) {
	doc := render(t, Button(ButtonProps{
		Icon:     IconPlus,
		Type:     "submit",
		Name:     "action",
		Value:    "save",
		Disabled: true,
		Attrs:    templ.Attributes{"data-testid": "save"},
	}, markup.Text("저장")))

	btn := first(t, doc, byTag("button"))
	assert.Equal(t, "submit", attrOf(btn, "type"))
	assert.Equal(t, "action", attrOf(btn, "name"))
	assert.Equal(t, "save", attrOf(btn, "value"))
	assert.Equal(t, "save", attrOf(btn, "data-testid"))
	_, disabled := attr(btn, "disabled")
	assert.True(t, disabled)

	icon := first(t, btn, byAttr("class", "icon"))
	assert.NotEmpty(t, findAll(icon, byTag("svg")))
}

func TestButtonLink(t *testing.T) {
	doc := render(t, Button(ButtonProps{Href: "/diaries?modal=new"}, markup.Text("일기쓰기")))
	a := first(t, doc, byTag("a"))
	assert.Equal(t, "/diaries?modal=new", attrOf(a, "href"))
	assert.Empty(t, findAll(doc, byTag("button")))

	doc = render(t, Button(ButtonProps{Href: "/x", Disabled: true}, markup.Text("x")))
	a = first(t, doc, byTag("a"))
	_, hasHref := attr(a, "href")
	assert.False(t, hasHref)
	assert.Equal(t, "true", attrOf(a, "aria-disabled"))
}

func TestButtonLinkSanitizesScheme(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"javascript:alert(1)", string(templ.FailedSanitizationURL)},
		{"JavaScript:alert(1)", string(templ.FailedSanitizationURL)},
		{"https://example.com/a?b=c", "https://example.com/a?b=c"},
		{"/diaries/3", "/diaries/3"},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			doc := render(t, Button(ButtonProps{Href: tt.href}, markup.Text("x")))
			assert.Equal(t, tt.want, attrOf(first(t, doc, byTag("a")), "href"))
		})
	}
}
