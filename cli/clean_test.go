package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-barry/showcase/core"
	"github.com/urfave/cli/v2"
)

func runClean(args ...string) error {
	app := &cli.App{
		Commands: []*cli.Command{CleanCommand},
	}
	return app.Run(append([]string{"showcase", "clean"}, args...))
}

func TestCleanCommand_CleansOutputDir(t *testing.T) {
	tmpDir := t.TempDir()
	cached := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(cached, []byte("cached!"), 0644); err != nil {
		t.Fatal(err)
	}
	withConfig(t, core.Config{OutputDir: tmpDir})

	if err := runClean(); err != nil {
		t.Fatalf("clean command failed: %v", err)
	}
	if _, err := os.Stat(cached); !os.IsNotExist(err) {
		t.Errorf("expected file to be deleted, but still exists: %s", cached)
	}
}

func TestCleanCommand_CleansSingleRoute(t *testing.T) {
	tmpDir := t.TempDir()
	about := filepath.Join(tmpDir, "about")
	home := filepath.Join(tmpDir, "index.html")
	_ = os.MkdirAll(about, 0755)
	_ = os.WriteFile(filepath.Join(about, "index.html"), []byte("about"), 0644)
	_ = os.WriteFile(home, []byte("home"), 0644)
	withConfig(t, core.Config{OutputDir: tmpDir})

	if err := runClean("/about/"); err != nil {
		t.Fatalf("clean command failed: %v", err)
	}
	if _, err := os.Stat(about); !os.IsNotExist(err) {
		t.Error("expected route directory to be deleted")
	}
	if _, err := os.Stat(home); err != nil {
		t.Errorf("expected other cached pages to survive: %v", err)
	}
}

func TestCleanCommand_RejectsTraversal(t *testing.T) {
	withConfig(t, core.Config{OutputDir: t.TempDir()})

	err := runClean("../etc")
	if err == nil || !strings.Contains(err.Error(), "invalid route") {
		t.Errorf("expected invalid route error, got: %v", err)
	}
}

func TestCleanCommand_NoOpOnNonexistentDir(t *testing.T) {
	withConfig(t, core.Config{OutputDir: filepath.Join(t.TempDir(), "does-not-exist")})

	if err := runClean(); err != nil {
		t.Fatalf("expected no error for nonexistent dir, got: %v", err)
	}
}

func TestCleanCommand_ErrIfNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notadir")
	_ = os.WriteFile(file, []byte("I'm a file"), 0644)
	withConfig(t, core.Config{OutputDir: file})

	err := runClean()
	if err == nil || err.Error() != fmt.Sprintf("not a directory: %s", file) {
		t.Errorf("expected 'not a directory' error, got: %v", err)
	}
}

func TestCleanCommand_ErrIfStatFails(t *testing.T) {
	withConfig(t, core.Config{OutputDir: "/hopefully/invalid/\x00"})

	if err := runClean(); err == nil {
		t.Fatal("expected error due to stat failure, got nil")
	}
}
