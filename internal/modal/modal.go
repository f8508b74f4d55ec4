// Package modal lets a page open a dialog that the layout renders at the
// end of <body>, outside the page's own markup.
package modal

import (
	"context"
	"errors"

	"github.com/a-h/templ"
)

// ErrNoProvider is returned when no controller was installed in the context.
var ErrNoProvider = errors.New("modal: FromContext must be used within a provider")

// Controller holds the dialog for one render. It is not shared between
// requests.
type Controller struct {
	content   templ.Component
	closeHref string
}

// Open shows content. closeHref is where the close link leads; the server
// closes the dialog by rendering that URL.
func (c *Controller) Open(content templ.Component, closeHref string) {
	c.content = content
	c.closeHref = closeHref
}

// Close removes the dialog.
func (c *Controller) Close() {
	c.content = nil
	c.closeHref = ""
}

// IsOpen reports whether a dialog will be rendered.
func (c *Controller) IsOpen() bool { return c.content != nil }

type ctxKey struct{}

// Provide installs an empty controller.
func Provide(ctx context.Context) (context.Context, *Controller) {
	c := &Controller{}
	return context.WithValue(ctx, ctxKey{}, c), c
}

// With installs a controller that already shows content.
func With(ctx context.Context, content templ.Component, closeHref string) context.Context {
	ctx, c := Provide(ctx)
	c.Open(content, closeHref)
	return ctx
}

// FromContext returns the controller installed by Provide or With.
func FromContext(ctx context.Context) (*Controller, error) {
	c, ok := ctx.Value(ctxKey{}).(*Controller)
	if !ok || c == nil {
		return nil, ErrNoProvider
	}
	return c, nil
}
