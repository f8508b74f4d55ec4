package theme

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Mode is the resolved color scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// CookieName stores the visitor's chosen mode.
const CookieName = "theme"

// ResolveMode maps any value to a mode; only "dark" selects dark.
func ResolveMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeDark)) {
		return ModeDark
	}
	return ModeLight
}

// Tokens returns the semantic token set for the mode.
func (m Mode) Tokens() Semantic {
	if m == ModeDark {
		return Dark
	}
	return Light
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// IsDark reports whether m is dark.
func (m Mode) IsDark() bool { return m == ModeDark }

func (m Mode) String() string { return string(m) }

// Set implements pflag.Value so the mode can be a CLI flag.
func (m *Mode) Set(s string) error {
	switch strings.ToLower(s) {
	case string(ModeLight), string(ModeDark):
		*m = Mode(strings.ToLower(s))
		return nil
	default:
		return fmt.Errorf("theme must be light or dark, got %q", s)
	}
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "theme" }

// FromRequest picks the mode for a request: the ?theme= query wins, then
// the theme cookie, then fallback.
func FromRequest(r *http.Request, fallback Mode) Mode {
	if q := r.URL.Query().Get("theme"); q != "" {
		return ResolveMode(q)
	}
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return ResolveMode(c.Value)
	}
	if fallback == "" {
		return ModeLight
	}
	return fallback
}

type modeKey struct{}

// WithMode stores the resolved mode for components rendered under ctx.
func WithMode(ctx context.Context, m Mode) context.Context {
	return context.WithValue(ctx, modeKey{}, m)
}

// ModeFrom returns the mode stored in ctx, or light.
func ModeFrom(ctx context.Context) Mode {
	if m, ok := ctx.Value(modeKey{}).(Mode); ok && m != "" {
		return m
	}
	return ModeLight
}
