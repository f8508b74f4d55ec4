package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conneroisu/diary/internal/markup"
	"github.com/conneroisu/diary/internal/modal"
	tu "github.com/conneroisu/diary/internal/testutils"
	"github.com/conneroisu/diary/internal/theme"
)

func TestPageSectionsPerRoute(t *testing.T) {
	tests := []struct {
		path       string
		header     bool
		banner     bool
		navigation bool
		footer     bool
	}{
		{"/diaries", true, true, true, true},
		{"/pictures", true, true, true, true},
		{"/diaries/3", true, false, false, true},
		{"/auth/login", false, false, false, false},
		{"/missing", true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc, _ := tu.Render(t, context.Background(), Page(Props{Path: tt.path}, markup.Text("본문")))

			assert.Equal(t, tt.header, len(tu.FindAll(doc, tu.ByTag("header"))) == 1)
			assert.Equal(t, tt.banner, len(tu.FindAll(doc, tu.ByClass("banner"))) == 1)
			assert.Equal(t, tt.navigation, len(tu.FindAll(doc, tu.ByClass("navigation"))) == 1)
			assert.Equal(t, tt.footer, len(tu.FindAll(doc, tu.ByTag("footer"))) == 1)
			assert.Equal(t, "본문", tu.Text(tu.First(t, doc, tu.ByTag("main"))))
		})
	}
}

func TestPageHeadAndLogo(t *testing.T) {
	doc, _ := tu.Render(t, context.Background(), Page(Props{Path: "/diaries", Title: "일기"}, nil))

	html := tu.First(t, doc, tu.ByTag("html"))
	assert.Equal(t, "ko", tu.AttrOf(html, "lang"))
	assert.Equal(t, "light", tu.AttrOf(html, "data-theme"))
	assert.Equal(t, "일기", tu.Text(tu.First(t, doc, tu.ByTag("title"))))
	assert.Equal(t, StylesheetPath, tu.AttrOf(tu.First(t, doc, tu.ByAttr("rel", "stylesheet")), "href"))

	logo := tu.First(t, doc, tu.ByAttr("data-testid", "logo"))
	assert.Equal(t, "/diaries", tu.AttrOf(logo, "href"))
	assert.Equal(t, SiteTitle, tu.Text(logo))

	footer := tu.First(t, doc, tu.ByTag("footer"))
	assert.Contains(t, tu.Text(footer), "Copyright © 2024.")
	assert.Contains(t, tu.Text(footer), "대표 : 민지")

	assert.Empty(t, tu.FindAll(doc, tu.ByAttr("role", "switch")), "no route enables the toggle")
	assert.Empty(t, tu.FindAll(doc, tu.ByTag("script")))
}

func TestNavigationTabs(t *testing.T) {
	doc, _ := tu.Render(t, context.Background(), Page(Props{Path: "/pictures"}, nil))

	diaries := tu.First(t, doc, tu.ByAttr("data-testid", "diaries-tab"))
	pictures := tu.First(t, doc, tu.ByAttr("data-testid", "pictures-tab"))

	assert.Equal(t, "/diaries", tu.AttrOf(diaries, "href"))
	assert.Equal(t, "일기보관함", tu.Text(diaries))
	assert.NotContains(t, tu.Classes(diaries), "tabActive")

	assert.Equal(t, "/pictures", tu.AttrOf(pictures, "href"))
	assert.Equal(t, "사진보관함", tu.Text(pictures))
	assert.Contains(t, tu.Classes(pictures), "tabActive")
	assert.Equal(t, "page", tu.AttrOf(pictures, "aria-current"))
}

func TestDarkModeToggle(t *testing.T) {
	ctx := theme.WithMode(context.Background(), theme.ModeDark)
	doc, _ := tu.Render(t, ctx, Page(Props{Path: "/diaries", Return: "/diaries?page=2", DarkModeToggle: true}, nil))

	assert.Equal(t, "dark", tu.AttrOf(tu.First(t, doc, tu.ByTag("html")), "data-theme"))

	form := tu.First(t, doc, tu.ByTag("form"))
	assert.Equal(t, ThemePath, tu.AttrOf(form, "action"))
	assert.Equal(t, "/diaries?page=2", tu.AttrOf(tu.First(t, form, tu.ByAttr("name", "return")), "value"))

	sw := tu.First(t, form, tu.ByAttr("role", "switch"))
	assert.Equal(t, "true", tu.AttrOf(sw, "aria-checked"))
	assert.Equal(t, "light", tu.AttrOf(sw, "value"))
	assert.Equal(t, "submit", tu.AttrOf(sw, "type"))
}

func TestModalPortalAndLiveReload(t *testing.T) {
	ctx := modal.With(context.Background(), markup.Text("모달 내용"), "/diaries")
	doc, out := tu.Render(t, ctx, Page(Props{Path: "/diaries", LiveReload: true, Owner: "지수"}, nil))

	overlay := tu.First(t, doc, tu.ByClass("modalOverlay"))
	assert.Contains(t, tu.Text(overlay), "모달 내용")
	assert.Equal(t, "body", overlay.Parent.Data, "portal renders directly under body")

	assert.Contains(t, out, `new WebSocket(proto + location.host + "/ws")`)
	assert.Contains(t, tu.Text(tu.First(t, doc, tu.ByTag("footer"))), "대표 : 지수")
}
