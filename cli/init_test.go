package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-barry/showcase"
	"github.com/urfave/cli/v2"
)

func TestCopyEmbeddedDir(t *testing.T) {
	tmpDir := t.TempDir()

	written, skipped, err := copyEmbeddedDir(showcase.Starter(), ".", tmpDir)
	if err != nil {
		t.Fatalf("unexpected error copying embedded dir: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("expected nothing skipped in an empty dir, got %v", skipped)
	}

	count := 0
	err = fs.WalkDir(showcase.Starter(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		count++
		if _, err := os.Stat(filepath.Join(tmpDir, filepath.FromSlash(path))); err != nil {
			t.Errorf("expected file %s to exist, but got error: %v", path, err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected walk error: %v", err)
	}
	if written != count {
		t.Errorf("expected %d files written, got %d", count, written)
	}
}

func TestCopyEmbeddedDir_KeepsExistingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	source := fstest.MapFS{
		"showcase.config.yml":   {Data: []byte("cache: true\n")},
		"templates/layout.html": {Data: []byte("new layout")},
	}

	existing := filepath.Join(tmpDir, "templates", "layout.html")
	_ = os.MkdirAll(filepath.Dir(existing), 0755)
	_ = os.WriteFile(existing, []byte("my layout"), 0644)

	written, skipped, err := copyEmbeddedDir(source, ".", tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != 1 {
		t.Errorf("expected 1 file written, got %d", written)
	}
	if len(skipped) != 1 || skipped[0] != filepath.Join("templates", "layout.html") {
		t.Errorf("unexpected skipped list %v", skipped)
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "my layout" {
		t.Errorf("existing file was overwritten: %q", data)
	}
}

func TestInitCommand_RunSuccess(t *testing.T) {
	tmpDir := t.TempDir()

	original := starterFS
	starterFS = func() fs.FS {
		return fstest.MapFS{
			"showcase.config.yml":    {Data: []byte("cache: true\n")},
			"templates/pages/a.html": {Data: []byte("a")},
			"public/css/style.css":   {Data: []byte("body{}")},
		}
	}
	t.Cleanup(func() { starterFS = original })

	app := &cli.App{
		Commands: []*cli.Command{InitCommand},
	}

	var err error
	output := captureOutput(func() {
		err = app.Run([]string{"showcase", "init", tmpDir})
	})
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	for _, f := range []string{"showcase.config.yml", "templates/pages/a.html", "public/css/style.css"} {
		if _, err := os.Stat(filepath.Join(tmpDir, filepath.FromSlash(f))); err != nil {
			t.Errorf("expected file %s to exist, but got error: %v", f, err)
		}
	}
	if !strings.Contains(output, "3 files written, 0 kept") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestInitCommand_DefaultsToWorkingDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	_ = os.WriteFile(filepath.Join(tmpDir, "showcase.config.yml"), []byte("outputDir: ./out\n"), 0644)

	app := &cli.App{Commands: []*cli.Command{InitCommand}}
	var err error
	output := captureOutput(func() {
		err = app.Run([]string{"showcase", "init"})
	})
	if err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	if !strings.Contains(output, "Kept existing: showcase.config.yml") {
		t.Errorf("expected existing config to be kept, got:\n%s", output)
	}
	data, _ := os.ReadFile(filepath.Join(tmpDir, "showcase.config.yml"))
	if string(data) != "outputDir: ./out\n" {
		t.Errorf("config was overwritten: %q", data)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "templates", "layout.html")); err != nil {
		t.Errorf("expected starter layout to be written: %v", err)
	}
}
