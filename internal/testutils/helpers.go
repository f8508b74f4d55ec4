// Package testutils holds helpers shared by package tests: rendering
// components into parsed HTML, querying the tree, and writing fixtures.
package testutils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/conneroisu/diary/internal/config"
)

// Render renders c and parses the output as an HTML document.
func Render(t *testing.T, ctx context.Context, c templ.Component) (*html.Node, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return Parse(t, buf.String())
}

// Parse parses markup, returning the tree and the markup.
func Parse(t *testing.T, markup string) (*html.Node, string) {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc, markup
}

// Matcher selects element nodes.
type Matcher func(*html.Node) bool

// ByTag matches elements by tag name.
func ByTag(tag string) Matcher {
	return func(n *html.Node) bool { return n.Data == tag }
}

// ByAttr matches elements whose attribute key equals val.
func ByAttr(key, val string) Matcher {
	return func(n *html.Node) bool {
		v, ok := Attr(n, key)
		return ok && v == val
	}
}

// ByClass matches elements carrying class among their classes.
func ByClass(class string) Matcher {
	return func(n *html.Node) bool {
		for _, c := range Classes(n) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// FindAll returns matching elements in document order.
func FindAll(n *html.Node, match Matcher) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// First returns the first match and fails the test when there is none.
func First(t *testing.T, n *html.Node, match Matcher) *html.Node {
	t.Helper()
	all := FindAll(n, match)
	require.NotEmpty(t, all, "no matching element")
	return all[0]
}

// Attr returns an attribute value and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOf returns an attribute value or "".
func AttrOf(n *html.Node, key string) string {
	v, _ := Attr(n, key)
	return v
}

// Classes splits the class attribute.
func Classes(n *html.Node) []string {
	return strings.Fields(AttrOf(n, "class"))
}

// Text concatenates the text beneath n, trimmed.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// WriteFixture writes diary fixture YAML into dir and returns its path.
func WriteFixture(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "diaries.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// CreateTestConfig returns a valid configuration for handler tests.
func CreateTestConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 8080
	cfg.Log.Level = "error"
	return cfg
}
