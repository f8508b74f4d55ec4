package components

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/conneroisu/diary/internal/testutils"
	"github.com/conneroisu/diary/internal/theme"
)

var (
	findAll = testutils.FindAll
	byTag   = testutils.ByTag
	byAttr  = testutils.ByAttr
	first   = testutils.First
	attr    = testutils.Attr
	attrOf  = testutils.AttrOf
	classes = testutils.Classes
	textOf  = testutils.Text
)

func render(t *testing.T, c templ.Component) *html.Node {
	t.Helper()
	doc, _ := testutils.Render(t, context.Background(), c)
	return doc
}

func renderDark(t *testing.T, c templ.Component) *html.Node {
	t.Helper()
	doc, _ := testutils.Render(t, theme.WithMode(context.Background(), theme.ModeDark), c)
	return doc
}
