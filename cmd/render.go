package cmd

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/diary/internal/config"
	"github.com/conneroisu/diary/internal/errors"
	"github.com/conneroisu/diary/internal/logging"
	"github.com/conneroisu/diary/internal/server"
)

var (
	renderTheme  string
	renderStatus bool
)

var renderCmd = &cobra.Command{
	Use:     "render [path]",
	Aliases: []string{"r"},
	Short:   "Render one page to stdout",
	Long: `Render one page to stdout without starting a listener.

The path is any GET route, query string included. Redirects are reported
instead of followed.

Examples:
  diary render
  diary render "/diaries?filter=happy&page=2"
  diary render /diaries/1 --theme dark`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "Render with this theme (light, dark)")
	renderCmd.Flags().BoolVar(&renderStatus, "status", false, "Print the status line before the body")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Live reload needs a browser on the other end.
	cfg.Development.HotReload = false

	srv, err := server.New(cfg, logging.Discard())
	if err != nil {
		return errors.WrapInternal(err, errors.ErrCodeInternalError, "failed to create server")
	}

	path := "/diaries"
	if len(args) == 1 {
		path = args[0]
	}
	return renderPage(cmd.OutOrStdout(), srv.Handler(), path, renderTheme, renderStatus)
}

func renderPage(out io.Writer, h http.Handler, path, mode string, withStatus bool) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mode != "" {
		q := req.URL.Query()
		q.Set("theme", mode)
		req.URL.RawQuery = q.Encode()
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if withStatus {
		fmt.Fprintf(out, "%d %s\n", rec.Code, http.StatusText(rec.Code))
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		fmt.Fprintf(out, "Redirect: %s\n", loc)
		return nil
	}

	if _, err := io.Copy(out, rec.Body); err != nil {
		return err
	}
	if rec.Code >= http.StatusBadRequest {
		return fmt.Errorf("render %s: %d %s", path, rec.Code, http.StatusText(rec.Code))
	}
	return nil
}
