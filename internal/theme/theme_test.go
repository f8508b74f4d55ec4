package theme

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/diary/internal/logging"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"dark", ModeDark},
		{" DARK ", ModeDark},
		{"light", ModeLight},
		{"", ModeLight},
		{"sepia", ModeLight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMode(tt.in))
		})
	}
}

func TestModeToggleAndTokens(t *testing.T) {
	assert.Equal(t, ModeDark, ModeLight.Toggle())
	assert.Equal(t, ModeLight, ModeDark.Toggle())
	assert.True(t, ModeDark.IsDark())
	assert.Equal(t, Light, ModeLight.Tokens())
	assert.Equal(t, Dark, ModeDark.Tokens())
}

func TestModeAsFlag(t *testing.T) {
	var m Mode = ModeLight
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&m, "theme", "color scheme")

	require.NoError(t, fs.Parse([]string{"--theme", "Dark"}))
	assert.Equal(t, ModeDark, m)

	assert.Error(t, fs.Parse([]string{"--theme", "blue"}))
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		cookie   string
		fallback Mode
		want     Mode
	}{
		{name: "query wins", url: "/?theme=dark", cookie: "light", fallback: ModeLight, want: ModeDark},
		{name: "cookie", url: "/", cookie: "dark", fallback: ModeLight, want: ModeDark},
		{name: "fallback", url: "/", fallback: ModeDark, want: ModeDark},
		{name: "empty fallback", url: "/", want: ModeLight},
		{name: "unknown query is light", url: "/?theme=x", cookie: "dark", want: ModeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			assert.Equal(t, tt.want, FromRequest(r, tt.fallback))
		})
	}
}

func TestModeContext(t *testing.T) {
	assert.Equal(t, ModeLight, ModeFrom(context.Background()))
	assert.Equal(t, ModeDark, ModeFrom(WithMode(context.Background(), ModeDark)))
}

func TestLookupTypography(t *testing.T) {
	style, ok := LookupTypography("title", "title01", Desktop)
	require.True(t, ok)
	assert.Equal(t, 18, style.FontSize)

	style, ok = LookupTypography("title", "title01", Mobile)
	require.True(t, ok)
	assert.Equal(t, 16, style.FontSize)

	style, ok = LookupTypography("en", "en_body01", Desktop)
	require.True(t, ok)
	assert.Equal(t, "suit", style.FontFamily)

	style, ok = LookupTypography("title", "missing", Desktop)
	assert.False(t, ok)
	assert.Equal(t, DefaultTypography, style)

	_, ok = LookupTypography("missing", "title01", Desktop)
	assert.False(t, ok)
}

func TestResolveTypographyWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelWarn, Output: &buf})

	style := ResolveTypography(context.Background(), logger, "body", "nope", Mobile)
	assert.Equal(t, DefaultTypography, style)
	assert.Contains(t, buf.String(), "Typography style not found")
	assert.Contains(t, buf.String(), "variant=nope")
}

func TestTypographyVar(t *testing.T) {
	assert.Equal(t, "--typography-body-body01-size-desktop", TypographyVar("body", "body01", "size", ""))
	assert.Equal(t, "--typography-title-title02-weight-mobile", TypographyVar("title", "title02", "weight", Mobile))
}

func TestStylesheet(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelWarn, Output: &buf})

	css := Stylesheet(context.Background(), logger)

	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, "--color-primary: #6DA5FA;")
	assert.Contains(t, css, "[data-theme=\"dark\"] {")
	assert.Contains(t, css, "--color-primary: #497CFF;")
	assert.Contains(t, css, "--typography-body-body01-size-desktop: 16px;")
	assert.Contains(t, css, "@media (max-width: 767px)")
	assert.Contains(t, css, ".text-logo {")
	assert.Contains(t, css, ".toggle--checked")
	assert.Empty(t, buf.String(), "every text role should resolve")

	root := css[:strings.Index(css, "[data-theme")]
	assert.NotContains(t, root, "--color-primary: #497CFF;")
}

func TestStylesheetLogsTiming(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelDebug, Output: &buf})

	css := Stylesheet(context.Background(), logger)
	assert.NotEmpty(t, css)
	assert.Contains(t, buf.String(), "operation=generate_stylesheet")
	assert.Contains(t, buf.String(), "Operation completed")

	assert.NotEmpty(t, Stylesheet(context.Background(), nil))
}

func TestSemanticVarsComplete(t *testing.T) {
	for _, set := range []Semantic{Light, Dark} {
		for _, v := range set.Vars() {
			assert.NotEmpty(t, v.Value, v.Name)
			assert.True(t, strings.HasPrefix(v.Name, "--"))
		}
	}
}
