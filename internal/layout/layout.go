// Package layout renders the page shell shared by every route: header,
// banner, navigation tabs, main area, footer and the modal portal.
package layout

import (
	"context"

	"github.com/conneroisu/diary/internal/components"
	"github.com/conneroisu/diary/internal/routes"
	"github.com/conneroisu/diary/internal/theme"
)

// SiteTitle is the logo text.
const SiteTitle = "민지의 다이어리"

// DefaultOwner fills the footer when Props.Owner is empty.
const DefaultOwner = "민지"

// StylesheetPath serves the generated token and component CSS.
const StylesheetPath = "/static/theme.css"

// ThemePath accepts the dark-mode toggle form.
const ThemePath = "/theme"

// Props configures the shell.
type Props struct {
	// Title is the document title; SiteTitle when empty.
	Title string
	// Path is the request path. It selects the route visibility and the
	// active navigation tab.
	Path string
	// Return is where the theme form redirects after switching; Path when empty.
	Return string
	Mode   theme.Mode
	// DarkModeToggle shows the header switch even where the route hides it.
	DarkModeToggle bool
	// LiveReload adds the websocket client that reloads the page on change.
	LiveReload bool
	Owner      string
}

// fallback is used for paths outside the route table, such as error pages.
var fallback = routes.Visibility{Header: true, HeaderLogo: true, Footer: true}

// Visibility resolves which sections to show for path.
func Visibility(path string) routes.Visibility {
	if r, ok := routes.Lookup(path); ok {
		return r.Visibility
	}
	return fallback
}

func (p Props) mode(ctx context.Context) theme.Mode {
	if p.Mode == "" {
		return theme.ModeFrom(ctx)
	}
	return p.Mode
}

func (p Props) title() string {
	if p.Title == "" {
		return SiteTitle
	}
	return p.Title
}

func (p Props) returnPath() string {
	if p.Return == "" {
		return p.Path
	}
	return p.Return
}

func (p Props) owner() string {
	if p.Owner == "" {
		return DefaultOwner
	}
	return p.Owner
}

func (p Props) themeToggle(mode theme.Mode) components.ToggleProps {
	return components.ToggleProps{
		Checked:   mode.IsDark(),
		Type:      "submit",
		Name:      "mode",
		Value:     mode.Toggle().String(),
		AriaLabel: "다크 모드",
		Size:      components.Small,
	}
}

const liveReloadScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onmessage = function (e) {
    try {
      if (JSON.parse(e.data).type === "reload") { location.reload(); }
    } catch (_) {}
  };
})();
</script>`
