package markup

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestOpenAttributes(t *testing.T) {
	out := render(t, Func(func(_ context.Context, w *Writer) {
		w.Open("button",
			A("class", "a b"),
			A("title", ""),
			Keep("value", ""),
			Flag("disabled", true),
			Flag("hidden", false),
			Bool("aria-checked", false),
			A("data-x", `"<q>`),
			Attr{},
		)
		w.Close("button")
	}))

	assert.Equal(t, `<button class="a b" value="" disabled aria-checked="false" data-x="&#34;&lt;q&gt;"></button>`, out)
}

func TestTextEscapes(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;일기&amp;", render(t, Text("<b>일기&")))
}

func TestClasses(t *testing.T) {
	assert.Equal(t, "button medium light primary", Classes("button", "medium", "", " light ", "primary"))
	assert.Equal(t, "", Classes("", " "))
}

func TestGroupSkipsNil(t *testing.T) {
	assert.Equal(t, "ab", render(t, Group(Text("a"), nil, Text("b"))))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriterStopsAtFirstError(t *testing.T) {
	calls := 0
	c := templ.ComponentFunc(func(context.Context, io.Writer) error {
		calls++
		return nil
	})

	w := NewWriter(failWriter{})
	w.Raw("x")
	w.Render(context.Background(), c)
	w.Element("p", "y")

	assert.EqualError(t, w.Err(), "closed")
	assert.Equal(t, 0, calls)
}

func TestOpenSanitizesURLAttributes(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		want string
	}{
		{"relative href", A("href", "/diaries?page=2&filter=happy"), `<a href="/diaries?page=2&amp;filter=happy">`},
		{"javascript href", A("href", "javascript:alert(1)"), `<a href="about:invalid#TemplFailedSanitizationURL">`},
		{"data src", A("src", "data:text/html,x"), `<a src="about:invalid#TemplFailedSanitizationURL">`},
		{"form action", A("action", "/diaries"), `<a action="/diaries">`},
		{"mailto formaction", A("formaction", "mailto:a@b.c"), `<a formaction="mailto:a@b.c">`},
		{"other attribute untouched", A("data-href", "javascript:x"), `<a data-href="javascript:x">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, Func(func(_ context.Context, w *Writer) { w.Open("a", tt.attr) }))
			assert.Equal(t, tt.want, out)
		})
	}
}
