package middleware

import (
	"bufio"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/conneroisu/diary/internal/config"
)

// OriginValidator decides which cross-origin callers are trusted. The
// websocket hub uses the same validator.
type OriginValidator interface {
	IsAllowedOrigin(origin string) bool
}

// ConfigOriginValidator trusts the configured origins and, in development,
// any loopback origin.
type ConfigOriginValidator struct {
	allowed     map[string]bool
	development bool
}

// NewOriginValidator builds a validator from the server section.
func NewOriginValidator(cfg *config.Config) *ConfigOriginValidator {
	v := &ConfigOriginValidator{
		allowed:     make(map[string]bool, len(cfg.Server.AllowedOrigins)),
		development: cfg.IsDevelopment(),
	}
	for _, o := range cfg.Server.AllowedOrigins {
		v.allowed[strings.TrimRight(strings.ToLower(o), "/")] = true
	}
	return v
}

// IsAllowedOrigin implements OriginValidator.
func (v *ConfigOriginValidator) IsAllowedOrigin(origin string) bool {
	if origin == "" {
		return false
	}
	if v.allowed[strings.TrimRight(strings.ToLower(origin), "/")] {
		return true
	}
	if !v.development {
		return false
	}

	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Hijack lets the websocket upgrade through the logging wrapper.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if r.status == 0 {
		r.status = http.StatusSwitchingProtocols
	}
	return http.NewResponseController(r.ResponseWriter).Hijack()
}

func (r *statusRecorder) Flush() {
	_ = http.NewResponseController(r.ResponseWriter).Flush()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
