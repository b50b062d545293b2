package core

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveCachedHTMLAndGetCachedHTML(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{OutputDir: tmpDir}
	route := "/portfolio/"
	html := []byte("<html><body>Portfolio</body></html>")

	if err := SaveCachedHTML(cfg, route, html); err != nil {
		t.Fatalf("SaveCachedHTML failed: %v", err)
	}

	htmlPath := filepath.Join(tmpDir, "portfolio", "index.html")
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("Failed to read index.html: %v", err)
	}
	if !bytes.Equal(data, html) {
		t.Errorf("Cached HTML does not match original")
	}

	gzFile, err := os.Open(htmlPath + ".gz")
	if err != nil {
		t.Fatalf("Failed to read gzip file: %v", err)
	}
	defer gzFile.Close()

	gzReader, err := gzip.NewReader(gzFile)
	if err != nil {
		t.Fatalf("Failed to create gzip reader: %v", err)
	}
	defer gzReader.Close()

	unzipped, err := io.ReadAll(gzReader)
	if err != nil {
		t.Fatalf("Failed to read from gzip reader: %v", err)
	}
	if !bytes.Equal(unzipped, html) {
		t.Errorf("Gzipped content does not match original HTML")
	}

	cached, ok := GetCachedHTML(cfg, route)
	if !ok || !bytes.Equal(cached, html) {
		t.Errorf("GetCachedHTML returned %q, %v", cached, ok)
	}

	if _, ok := GetCachedGzip(cfg, route); !ok {
		t.Error("expected gzip copy to be readable")
	}
}

func TestSaveCachedHTML_HomeRouteAtRoot(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{OutputDir: tmpDir}

	if err := SaveCachedHTML(cfg, "/", []byte("home")); err != nil {
		t.Fatalf("SaveCachedHTML failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "index.html")); err != nil {
		t.Errorf("expected home page at cache root: %v", err)
	}
}

func TestGetCachedHTML_MissingFile(t *testing.T) {
	cfg := Config{OutputDir: t.TempDir()}

	data, ok := GetCachedHTML(cfg, "/non-existent/")
	if ok {
		t.Errorf("Expected ok=false for missing file")
	}
	if data != nil {
		t.Errorf("Expected nil data for missing file")
	}
}
