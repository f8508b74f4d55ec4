// Package routes is the URL table of the app: every page path, who may see
// it and which layout sections it shows.
package routes

import (
	"fmt"
	"strings"
)

// AccessStatus says who may open a route.
type AccessStatus string

const (
	Public      AccessStatus = "Public"
	MembersOnly AccessStatus = "MembersOnly"
)

// Visibility toggles the shared layout sections for a route.
type Visibility struct {
	Header               bool
	HeaderLogo           bool
	HeaderDarkModeToggle bool
	Banner               bool
	Navigation           bool
	Footer               bool
}

// Route is one entry of the URL table. Path may contain [param] segments.
type Route struct {
	Name       string
	Path       string
	Access     AccessStatus
	Visibility Visibility
}

var hidden = Visibility{}

var fullChrome = Visibility{
	Header:     true,
	HeaderLogo: true,
	Banner:     true,
	Navigation: true,
	Footer:     true,
}

var (
	Login = Route{Name: "auth.login", Path: "/auth/login", Access: Public, Visibility: hidden}

	Signup = Route{Name: "auth.signup", Path: "/auth/signup", Access: Public, Visibility: hidden}

	DiariesList = Route{Name: "diaries.list", Path: "/diaries", Access: Public, Visibility: fullChrome}

	DiariesDetail = Route{
		Name:   "diaries.detail",
		Path:   "/diaries/[id]",
		Access: MembersOnly,
		Visibility: Visibility{
			Header:     true,
			HeaderLogo: true,
			Footer:     true,
		},
	}

	PicturesList = Route{Name: "pictures.list", Path: "/pictures", Access: Public, Visibility: fullChrome}
)

// All lists the table in declaration order.
var All = []Route{Login, Signup, DiariesList, DiariesDetail, PicturesList}

// DynamicPath substitutes each [key] in route's path with its value.
// Keys missing from params are left as-is.
func DynamicPath(route Route, params map[string]interface{}) string {
	path := route.Path
	for key, value := range params {
		path = strings.Replace(path, "["+key+"]", fmt.Sprint(value), 1)
	}
	return path
}

// DiaryDetailURL is the detail page path for a diary.
func DiaryDetailURL(id interface{}) string {
	return DynamicPath(DiariesDetail, map[string]interface{}{"id": id})
}

// Lookup finds the route serving path. Bracketed segments match any
// single non-empty segment.
func Lookup(path string) (Route, bool) {
	path = normalizePath(path)
	for _, r := range All {
		if matches(r.Path, path) {
			return r, true
		}
	}
	return Route{}, false
}

func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func matches(pattern, path string) bool {
	ps := strings.Split(pattern, "/")
	xs := strings.Split(path, "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], "[") && strings.HasSuffix(ps[i], "]") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}

// NavState is which navigation tab is active for a path.
type NavState struct {
	DiariesActive  bool
	PicturesActive bool
	DiariesPath    string
	PicturesPath   string
}

// LinkState derives the navigation tab state from the request path.
func LinkState(path string) NavState {
	path = normalizePath(path)
	return NavState{
		DiariesActive:  path == DiariesList.Path || strings.HasPrefix(path, DiariesList.Path+"/"),
		PicturesActive: path == PicturesList.Path,
		DiariesPath:    DiariesList.Path,
		PicturesPath:   PicturesList.Path,
	}
}
