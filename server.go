package showcase

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-barry/showcase/core"
	"github.com/go-barry/showcase/pages"
)

const (
	cacheForever = "public, max-age=31536000, immutable"
	noStore      = "no-store"
)

type RuntimeConfig struct {
	Env         string
	EnableCache bool
	Port        int
	ConfigPath  string
}

func (c RuntimeConfig) configPath() string {
	if c.ConfigPath == "" {
		return core.ConfigFile
	}
	return c.ConfigPath
}

var (
	ListenAndServe = http.ListenAndServe
	Exit           = os.Exit
)

var Start = func(cfg RuntimeConfig) {
	addr, handler, err := BuildServer(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Server failed:", err)
		Exit(1)
		return
	}

	fmt.Println("Starting showcase in", cfg.Env, "mode...")
	fmt.Printf("✅ Showcase running at http://localhost%s\n", addr)

	if err := ListenAndServe(addr, handler); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Server failed:", err)
		Exit(1)
	}
}

// NewSite builds the page handlers from the framework section of the config.
func NewSite(config *core.Config) (*pages.Site, error) {
	raw := config.Framework.Version
	if raw == "" {
		raw = pages.DefaultVersion
	}
	version, err := pages.ParseVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("framework version: %w", err)
	}
	return pages.New(pages.Options{
		FrameworkName: config.Framework.Name,
		Version:       version,
	}), nil
}

func BuildServer(cfg RuntimeConfig) (string, http.Handler, error) {
	config := core.LoadConfig(cfg.configPath())
	config.CacheEnabled = cfg.EnableCache

	site, err := NewSite(config)
	if err != nil {
		return "", nil, err
	}

	mux := http.NewServeMux()
	publicDir := config.PublicDir
	cacheStaticDir := filepath.Join(config.OutputDir, "static")

	if cfg.Env == "dev" {
		setupDevStaticRoutes(mux, publicDir)

		reloader := core.NewLiveReloader()
		mux.HandleFunc(core.ReloadPath, reloader.Handler)

		mux.Handle("/", core.NewRouter(*config, core.RuntimeContext{
			Env:         cfg.Env,
			EnableWatch: true,
			OnReload:    reloader.BroadcastReload,
		}, site.Routes()))
	} else {
		setupProdStaticRoutes(mux, publicDir, cacheStaticDir)

		mux.Handle("/", core.NewRouter(*config, core.RuntimeContext{
			Env: cfg.Env,
		}, site.Routes()))
	}

	logger := core.NewLogger(*config, os.Stderr)
	return fmt.Sprintf(":%d", cfg.Port), core.LogRequests(logger, mux), nil
}

func setupDevStaticRoutes(mux *http.ServeMux, publicDir string) {
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(publicDir)))
	mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", noStore)
		fileServer.ServeHTTP(w, r)
	}))

	for _, name := range []string{"favicon.ico", "robots.txt"} {
		file := filepath.Join(publicDir, name)
		mux.HandleFunc("/"+name, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", noStore)
			http.ServeFile(w, r, file)
		})
	}
}

func setupProdStaticRoutes(mux *http.ServeMux, publicDir, cacheDir string) {
	mux.Handle("/static/", makeStaticHandler(publicDir, cacheDir))

	for _, name := range []string{"favicon.ico", "robots.txt"} {
		file := filepath.Join(publicDir, name)
		mux.HandleFunc("/"+name, func(w http.ResponseWriter, r *http.Request) {
			serveFileWithHeaders(w, r, file, cacheForever)
		})
	}
}

// makeStaticHandler serves /static/ from the minified cache first (gzip copy
// when accepted), then from the public dir.
func makeStaticHandler(publicDir, cacheDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trimmed := strings.TrimPrefix(r.URL.Path, "/static/")
		if trimmed == "" || strings.Contains(trimmed, "..") {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		rel := filepath.FromSlash(trimmed)

		cachedFile := filepath.Join(cacheDir, rel)
		gzipFile := cachedFile + ".gz"

		if core.AcceptsGzip(r) && fileExists(gzipFile) {
			w.Header().Set("Content-Type", detectMimeType(cachedFile))
			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Set("Vary", "Accept-Encoding")
			w.Header().Set("Cache-Control", cacheForever)
			http.ServeFile(w, r, gzipFile)
			return
		}

		if fileExists(cachedFile) {
			serveFileWithHeaders(w, r, cachedFile, cacheForever)
			return
		}

		publicFile := filepath.Join(publicDir, rel)
		if fileExists(publicFile) {
			serveFileWithHeaders(w, r, publicFile, cacheForever)
			return
		}

		http.NotFound(w, r)
	})
}

func serveFileWithHeaders(w http.ResponseWriter, r *http.Request, path, cacheControl string) {
	w.Header().Set("Content-Type", detectMimeType(path))
	w.Header().Set("Cache-Control", cacheControl)
	http.ServeFile(w, r, path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func detectMimeType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".ico":
		return "image/x-icon"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
