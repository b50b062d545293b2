package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-barry/showcase"
	"github.com/go-barry/showcase/core"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// withConfig makes core.LoadConfig return a copy of config for the rest of
// the test.
func withConfig(t *testing.T, config core.Config) {
	t.Helper()
	orig := core.LoadConfig
	core.LoadConfig = func(_ string) *core.Config {
		c := config
		return &c
	}
	t.Cleanup(func() { core.LoadConfig = orig })
}

// starterSite writes the embedded demo site into a temp dir and returns a
// config pointing at it.
func starterSite(t *testing.T) core.Config {
	t.Helper()
	dir := t.TempDir()
	if _, _, err := copyEmbeddedDir(showcase.Starter(), ".", dir); err != nil {
		t.Fatalf("copy starter: %v", err)
	}
	return core.Config{
		OutputDir:    filepath.Join(dir, "cache"),
		TemplatesDir: filepath.Join(dir, "templates"),
		PublicDir:    filepath.Join(dir, "public"),
	}
}
