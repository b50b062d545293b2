package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-barry/showcase"
	"github.com/urfave/cli/v2"
)

var starterFS = showcase.Starter

var InitCommand = &cli.Command{
	Name:      "init",
	Usage:     "Write the demo site (config, templates, public assets) into a directory",
	ArgsUsage: "[dir (optional)]",
	Action: func(c *cli.Context) error {
		targetDir := c.Args().First()
		if targetDir == "" {
			targetDir, _ = os.Getwd()
		}
		fmt.Println("🚀 Creating showcase site in:", targetDir)

		written, skipped, err := copyEmbeddedDir(starterFS(), ".", targetDir)
		if err != nil {
			return fmt.Errorf("failed to create site: %w", err)
		}

		for _, path := range skipped {
			fmt.Println("⏭️  Kept existing:", path)
		}
		fmt.Printf("✅ Site created: %d files written, %d kept.\n", written, len(skipped))
		fmt.Println("▶  Run: showcase dev")
		return nil
	},
}

// copyEmbeddedDir copies sourceDir into targetDir. Files that already exist
// are left untouched and reported back in skipped.
func copyEmbeddedDir(source fs.FS, sourceDir string, targetDir string) (written int, skipped []string, err error) {
	err = fs.WalkDir(source, sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, filepath.FromSlash(path))
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		targetPath := filepath.Join(targetDir, rel)

		if d.IsDir() {
			return os.MkdirAll(targetPath, os.ModePerm)
		}

		if _, err := os.Stat(targetPath); err == nil {
			skipped = append(skipped, rel)
			return nil
		}

		data, err := fs.ReadFile(source, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(targetPath, data, 0644); err != nil {
			return err
		}
		written++
		return nil
	})
	return written, skipped, err
}
