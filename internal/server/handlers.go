package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/conneroisu/diary/internal/components"
	"github.com/conneroisu/diary/internal/diary"
	"github.com/conneroisu/diary/internal/errors"
	"github.com/conneroisu/diary/internal/layout"
	"github.com/conneroisu/diary/internal/modal"
	"github.com/conneroisu/diary/internal/pages"
	"github.com/conneroisu/diary/internal/routes"
	"github.com/conneroisu/diary/internal/theme"
	"github.com/conneroisu/diary/internal/version"
)

// themeCookieMaxAge keeps the chosen theme for a year.
const themeCookieMaxAge = 365 * 24 * 60 * 60

// view is one full-page response.
type view struct {
	status int
	title  string
	// path picks the chrome and the active tab; the request path when empty.
	path string
	// ret is where the theme switch returns to; path when empty.
	ret  string
	body templ.Component

	dialog    templ.Component
	closeHref string
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, v view) {
	mode := theme.FromRequest(r, theme.ResolveMode(s.config.UI.Theme))
	ctx := theme.WithMode(r.Context(), mode)
	if v.dialog != nil {
		ctx = modal.With(ctx, v.dialog, v.closeHref)
	}

	if v.status == 0 {
		v.status = http.StatusOK
	}
	if v.path == "" {
		v.path = r.URL.Path
	}

	page := layout.Page(layout.Props{
		Title:          v.title,
		Path:           v.path,
		Return:         v.ret,
		Mode:           mode,
		DarkModeToggle: s.config.UI.DarkModeToggle,
		LiveReload:     s.config.Development.HotReload,
		Owner:          s.config.UI.Owner,
	}, v.body)

	templ.Handler(page,
		templ.WithStatus(v.status),
		templ.WithErrorHandler(s.renderFailed),
	).ServeHTTP(w, r.WithContext(ctx))
}

func (s *Server) renderFailed(r *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.errors.Handle(r.Context(),
			errors.WrapInternal(err, errors.ErrCodeRenderFailed, "render page").WithContext("path", r.URL.Path))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	})
}

// renderError logs err and shows the error page for its status.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	s.errors.Handle(r.Context(), err)

	status := errors.StatusCode(err)
	message := ""
	if errors.IsNotFound(err) {
		message = "요청한 일기를 찾을 수 없습니다."
		if de := errors.GetErrorContext(err); de["code"] == errors.ErrCodeRouteNotFound {
			message = ""
		}
	}

	s.render(w, r, view{
		status: status,
		title:  strconv.Itoa(status) + " | " + layout.SiteTitle,
		body:   pages.ErrorPage(status, message),
	})
}

// HandleRoot sends visitors to the diary list.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routes.DiariesList.Path, http.StatusFound)
}

// HandleNotFound renders the 404 page for paths outside the route table.
func (s *Server) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r,
		errors.NewNotFoundError(errors.ErrCodeRouteNotFound, "route not found").
			WithContext("path", r.URL.Path).
			WithContext("method", r.Method))
}

func filterOptions() []components.Option {
	opts := make([]components.Option, len(diary.FilterOptions))
	for i, o := range diary.FilterOptions {
		opts[i] = components.Option{Value: o.Value, Label: o.Label}
	}
	return opts
}

// HandleDiaryList renders the list page. A ?key= parameter drives the
// filter selectbox from the keyboard and redirects to the resulting state.
func (s *Server) HandleDiaryList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := pages.ParseListState(q)

	if key := q.Get("key"); key != "" {
		sel := components.SelectState{Options: filterOptions(), Value: state.Filter, Open: state.FilterOpen}
		sel.HandleKey(key)
		if sel.Value != state.Filter {
			state.Page = 1
		}
		state.Filter, state.FilterOpen = sel.Value, sel.Open
		http.Redirect(w, r, state.URL(), http.StatusSeeOther)
		return
	}

	page, err := s.store.List(r.Context(), state.Query(s.config.UI.PageSize, s.config.UI.PageRange))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	state.Page = page.Query.Page

	v := view{
		title: layout.SiteTitle,
		ret:   r.URL.RequestURI(),
		body:  pages.DiaryList(pages.ListProps{State: state, Page: page}),
	}
	if state.Modal == pages.ModalNew {
		v.closeHref = state.WithModal("").URL()
		v.dialog = pages.DiaryNew(pages.NewProps{CloseHref: v.closeHref})
	}

	s.render(w, r, v)
}

// HandleDiaryCreate stores a submitted diary and redirects to it. A
// rejected form is shown again in the modal with its values and message.
func (s *Server) HandleDiaryCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, errors.WrapValidation(err, errors.ErrCodeInvalidArgument, "malformed form"))
		return
	}

	in := diary.NewDiary{
		Emotion: r.PostForm.Get("emotion"),
		Title:   r.PostForm.Get("title"),
		Content: r.PostForm.Get("content"),
	}

	d, err := s.store.Create(r.Context(), in)
	if err == nil {
		s.logger.Info(r.Context(), "Diary created", "diary_id", d.ID, "emotion", string(d.Emotion))
		http.Redirect(w, r, routes.DiaryDetailURL(d.ID), http.StatusSeeOther)
		return
	}
	if !errors.IsValidation(err) {
		s.renderError(w, r, err)
		return
	}
	s.errors.Handle(r.Context(), err)

	state := pages.ListState{Filter: diary.FilterAll, Page: 1}
	page, lerr := s.store.List(r.Context(), state.Query(s.config.UI.PageSize, s.config.UI.PageRange))
	if lerr != nil {
		s.renderError(w, r, lerr)
		return
	}

	closeHref := state.URL()
	s.render(w, r, view{
		status: errors.StatusCode(err),
		title:  layout.SiteTitle,
		path:   routes.DiariesList.Path,
		ret:    closeHref,
		body:   pages.DiaryList(pages.ListProps{State: state, Page: page}),
		dialog: pages.DiaryNew(pages.NewProps{
			Values:    in,
			Error:     errors.Message(err, diary.MsgAllFieldsRequired),
			CloseHref: closeHref,
		}),
		closeHref: closeHref,
	})
}

// diaryID reads the {id} path segment. Anything but a positive integer is
// reported as an unknown diary.
func diaryID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.NewNotFoundError(errors.ErrCodeDiaryNotFound, "diary not found: "+raw).
			WithContext("id", raw)
	}
	return id, nil
}

// HandleDiaryDetail renders one diary with its retrospects.
func (s *Server) HandleDiaryDetail(w http.ResponseWriter, r *http.Request) {
	id, err := diaryID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	entry, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, view{
		title: entry.Title + " | " + layout.SiteTitle,
		body:  pages.DiaryDetail(pages.DetailProps{Entry: entry}),
	})
}

// HandleRetrospectCreate appends a retrospect and returns to the diary.
func (s *Server) HandleRetrospectCreate(w http.ResponseWriter, r *http.Request) {
	id, err := diaryID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, errors.WrapValidation(err, errors.ErrCodeInvalidArgument, "malformed form"))
		return
	}

	content := r.PostForm.Get("content")
	_, err = s.store.AddRetrospect(r.Context(), id, content)
	if err == nil {
		http.Redirect(w, r, routes.DiaryDetailURL(id), http.StatusSeeOther)
		return
	}
	if !errors.IsValidation(err) {
		s.renderError(w, r, err)
		return
	}
	s.errors.Handle(r.Context(), err)

	entry, gerr := s.store.Get(r.Context(), id)
	if gerr != nil {
		s.renderError(w, r, gerr)
		return
	}

	detailPath := routes.DiaryDetailURL(id)
	s.render(w, r, view{
		status: errors.StatusCode(err),
		title:  entry.Title + " | " + layout.SiteTitle,
		path:   detailPath,
		ret:    detailPath,
		body: pages.DiaryDetail(pages.DetailProps{
			Entry:           entry,
			RetrospectValue: content,
			RetrospectError: errors.Message(err, diary.MsgRetrospectRequired),
		}),
	})
}

// HandleDiaryDelete removes a diary and returns to the list.
func (s *Server) HandleDiaryDelete(w http.ResponseWriter, r *http.Request) {
	id, err := diaryID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.renderError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Diary deleted", "diary_id", id)
	http.Redirect(w, r, routes.DiariesList.Path, http.StatusSeeOther)
}

// HandlePictures renders the picture archive placeholder.
func (s *Server) HandlePictures(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, view{
		title: "사진보관함 | " + layout.SiteTitle,
		body:  pages.Pictures(),
	})
}

// HandleTheme switches between light and dark. The header form posts the
// mode it wants; without one the current mode is flipped. The choice is
// kept in a cookie and the browser is sent back to the return path.
func (s *Server) HandleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, errors.WrapValidation(err, errors.ErrCodeInvalidArgument, "malformed form"))
		return
	}

	current := theme.FromRequest(r, theme.ResolveMode(s.config.UI.Theme))
	next := current

	dark := current.IsDark()
	toggle := components.ToggleState{
		Checked: &dark,
		OnChange: func(checked bool) {
			next = theme.ModeLight
			if checked {
				next = theme.ModeDark
			}
		},
	}
	requested := r.PostForm.Get("mode")
	if requested == "" || theme.ResolveMode(requested) != current {
		toggle.Toggle()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     theme.CookieName,
		Value:    next.String(),
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, safeReturn(r.PostForm.Get("return")), http.StatusSeeOther)
}

// safeReturn only allows local paths, falling back to the list.
func safeReturn(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") ||
		strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return routes.DiariesList.Path
	}
	u, err := url.Parse(target)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return routes.DiariesList.Path
	}
	return u.RequestURI()
}

// HandleStylesheet serves the generated token and component CSS.
func (s *Server) HandleStylesheet(w http.ResponseWriter, r *http.Request) {
	s.stylesheetOnce.Do(func() {
		s.stylesheet = theme.Stylesheet(r.Context(), s.logger)
	})

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if s.config.IsDevelopment() {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	_, _ = w.Write([]byte(s.stylesheet))
}

// HandleHealth reports liveness with build and data details.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	storeCheck := map[string]interface{}{"status": "healthy"}

	page, err := s.store.List(r.Context(), diary.Query{Filter: diary.FilterAll, Page: 1})
	if err != nil {
		status = http.StatusServiceUnavailable
		storeCheck = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
	} else {
		storeCheck["diaries"] = page.Total
	}

	health := map[string]interface{}{
		"status":     "healthy",
		"timestamp":  time.Now().UTC(),
		"version":    version.GetShortVersion(),
		"build_info": version.GetBuildInfo(),
		"checks": map[string]interface{}{
			"store": storeCheck,
			"websocket": map[string]interface{}{
				"status":     "healthy",
				"clients":    s.hub.ConnectedClients(),
				"hot_reload": s.config.Development.HotReload,
			},
		},
	}
	if status != http.StatusOK {
		health["status"] = "unhealthy"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(health); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to encode health response")
	}
}

// HandleWebSocket hands the live reload socket to the hub.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.HandleWebSocket(w, r)
}
