package core

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
)

const cachedPageFile = "index.html"

// cacheKey maps a route path onto a directory under the output dir. The home
// page lives at the root of it.
func cacheKey(routePath string) string {
	key := strings.Trim(routePath, "/")
	if key == "" {
		return "."
	}
	return filepath.FromSlash(key)
}

func GetCachedHTML(config Config, route string) ([]byte, bool) {
	return readCached(filepath.Join(config.OutputDir, cacheKey(route), cachedPageFile))
}

// GetCachedGzip returns the gzip-compressed copy written by SaveCachedHTML.
func GetCachedGzip(config Config, route string) ([]byte, bool) {
	return readCached(filepath.Join(config.OutputDir, cacheKey(route), cachedPageFile+".gz"))
}

func readCached(path string) ([]byte, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return content, true
}

func SaveCachedHTML(config Config, route string, html []byte) error {
	outDir := filepath.Join(config.OutputDir, cacheKey(route))
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return err
	}

	htmlPath := filepath.Join(outDir, cachedPageFile)
	if err := os.WriteFile(htmlPath, html, 0644); err != nil {
		return err
	}

	f, err := os.Create(htmlPath + ".gz")
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(html); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
