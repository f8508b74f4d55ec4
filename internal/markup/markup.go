// Package markup is a small writer for page bodies that are assembled in Go
// rather than in .templ files. Escaping and URL sanitizing are delegated to
// templ so both paths render attributes the same way.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one HTML attribute. The zero value is skipped.
type Attr struct {
	Name  string
	Value string
	bare  bool
	keep  bool
}

// A is an attribute that is omitted when value is empty.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// Keep is an attribute rendered even when value is empty.
func Keep(name, value string) Attr { return Attr{Name: name, Value: value, keep: true} }

// Flag is a boolean attribute present only when on.
func Flag(name string, on bool) Attr {
	if !on {
		return Attr{}
	}
	return Attr{Name: name, bare: true}
}

// Bool renders "true" or "false", as ARIA state attributes expect.
func Bool(name string, v bool) Attr {
	if v {
		return Keep(name, "true")
	}
	return Keep(name, "false")
}

// Classes joins the non-empty class names with single spaces.
func Classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

// Writer accumulates the first write error so render code can stay linear.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err is the first error seen.
func (w *Writer) Err() error { return w.err }

// Raw writes s unescaped.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) { w.Raw(templ.EscapeString(s)) }

// urlAttrs carry URLs and go through templ.URL, which replaces unsafe
// schemes such as javascript: with templ.FailedSanitizationURL.
var urlAttrs = map[string]bool{
	"href":       true,
	"src":        true,
	"action":     true,
	"formaction": true,
}

// Open writes a start tag.
func (w *Writer) Open(tag string, attrs ...Attr) {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range attrs {
		switch {
		case a.Name == "":
		case a.bare:
			b.WriteByte(' ')
			b.WriteString(a.Name)
		case a.Value != "" || a.keep:
			value := a.Value
			if urlAttrs[a.Name] {
				value = string(templ.URL(value))
			}
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(value))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	w.Raw(b.String())
}

// Close writes an end tag.
func (w *Writer) Close(tag string) { w.Raw("</" + tag + ">") }

// Element writes a start tag, escaped text and the end tag.
func (w *Writer) Element(tag, text string, attrs ...Attr) {
	w.Open(tag, attrs...)
	w.Text(text)
	w.Close(tag)
}

// Render renders c in place. A nil component renders nothing.
func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Text is a component rendering escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders components one after another.
func Group(cs ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range cs {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Func adapts a render function over a Writer into a component.
func Func(fn func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewWriter(out)
		fn(ctx, w)
		return w.Err()
	})
}
