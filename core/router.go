package core

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"
	"strings"
)

const (
	NotFoundTemplate = "_error/404.html"

	routeHeader  = "X-Showcase-Route"
	maxBodyBytes = 1 << 20
)

type RuntimeContext struct {
	Env         string
	EnableWatch bool
	OnReload    func()
}

type Router struct {
	config   Config
	renderer *Renderer
	routes   map[string]Route
	byName   map[string]Route
	watcher  *Watcher
}

var NewRouter = func(config Config, ctx RuntimeContext, routes []Route) http.Handler {
	r := newRouter(config, ctx.Env, routes)

	if ctx.EnableWatch {
		logger := NewLogger(config, os.Stderr)
		w, err := WatchDirs(logger, func() {
			r.renderer.Reset()
			if ctx.OnReload != nil {
				ctx.OnReload()
			}
		}, config.TemplatesDir, config.PublicDir)
		if err != nil {
			logger.Warn("template watcher disabled", "err", err)
		} else {
			r.watcher = w
		}
	}

	return r
}

func newRouter(config Config, env string, routes []Route) *Router {
	r := &Router{
		config:   config,
		renderer: NewRenderer(config, env),
		routes:   make(map[string]Route, len(routes)),
		byName:   make(map[string]Route, len(routes)),
	}
	for _, route := range routes {
		r.routes[normalizePath(route.Path)] = route
		if route.Name != "" {
			r.byName[route.Name] = route
		}
	}
	return r
}

// Close stops the dev watcher, if one was started.
func (r *Router) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}

// normalizePath gives every non-root path a trailing slash so /about and
// /about/ resolve to the same route.
func normalizePath(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	return "/" + strings.Trim(p, "/") + "/"
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := normalizePath(req.URL.Path)

	if strings.HasPrefix(path, apiPrefix) {
		r.serveAPI(w, req, strings.Trim(strings.TrimPrefix(path, apiPrefix), "/"))
		return
	}

	route, ok := r.routes[path]
	if !ok {
		r.renderNotFound(w, req)
		return
	}
	r.servePage(w, req, route)
}

func (r *Router) servePage(w http.ResponseWriter, req *http.Request, route Route) {
	logger := Logger(req.Context())
	cacheable := r.cacheable(route, req)

	if cacheable && r.serveCached(w, req, route) {
		return
	}

	view, err := r.buildView(w, req, route)
	if err != nil {
		if IsNotFoundError(err) {
			r.renderNotFound(w, req)
			return
		}
		logger.Error("view failed", "route", route.Path, "err", err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := r.renderer.Render(req.Context(), &buf, view.Template, view.Data); err != nil {
		logger.Error("render failed", "route", route.Path, "template", view.Template, "err", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		if err := SaveCachedHTML(r.config, route.Path, buf.Bytes()); err != nil {
			logger.Warn("caching page failed", "route", route.Path, "err", err)
		}
	}

	r.writeHTML(w, req, route.Path, buf.Bytes(), http.StatusOK)
}

func (r *Router) buildView(w http.ResponseWriter, req *http.Request, route Route) (View, error) {
	if req.Body != nil {
		req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	}
	return route.View(req)
}

func (r *Router) cacheable(route Route, req *http.Request) bool {
	return r.config.CacheEnabled && route.Cacheable && req.Method == http.MethodGet
}

func (r *Router) serveCached(w http.ResponseWriter, req *http.Request, route Route) bool {
	if AcceptsGzip(req) {
		if gz, ok := GetCachedGzip(r.config, route.Path); ok {
			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Set("Vary", "Accept-Encoding")
			r.writeHTML(w, req, route.Path, gz, http.StatusOK)
			return true
		}
	}

	if html, ok := GetCachedHTML(r.config, route.Path); ok {
		w.Header().Set("Vary", "Accept-Encoding")
		r.writeHTML(w, req, route.Path, html, http.StatusOK)
		return true
	}
	return false
}

func (r *Router) renderNotFound(w http.ResponseWriter, req *http.Request) {
	if !r.renderer.Exists(NotFoundTemplate) {
		http.NotFound(w, req)
		return
	}

	var buf bytes.Buffer
	data := map[string]any{"Path": req.URL.Path}
	if err := r.renderer.Render(req.Context(), &buf, NotFoundTemplate, data); err != nil {
		Logger(req.Context()).Error("render failed", "template", NotFoundTemplate, "err", err)
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(buf.Bytes())
}

func (r *Router) writeHTML(w http.ResponseWriter, req *http.Request, routePath string, body []byte, status int) {
	etag := generateETag(body)
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.config.DebugHeaders {
		w.Header().Set(routeHeader, routePath)
	}

	if (req.Method == http.MethodGet || req.Method == http.MethodHead) && req.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(status)
	if req.Method != http.MethodHead {
		w.Write(body)
	}
}

func generateETag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:])[:16] + `"`
}

func AcceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
