package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-barry/showcase"
	"github.com/go-barry/showcase/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print site configuration, templates, and cache summary",
	Flags: []cli.Flag{configFlag()},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))

		site, err := showcase.NewSite(config)
		if err != nil {
			return err
		}

		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🧩 Templates Directory:", config.TemplatesDir)
		fmt.Println("🌐 Public Directory:", config.PublicDir)
		fmt.Println("🔁 Cache Enabled:", config.CacheEnabled)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Printf("🏷️  Framework: %s %s\n", site.FrameworkName(), site.Version())
		fmt.Println()

		componentsDir := filepath.Join(config.TemplatesDir, "components")
		templateCount := countFiles(config.TemplatesDir, func(path string) bool {
			return strings.HasSuffix(path, ".html") && !strings.HasPrefix(path, componentsDir+string(filepath.Separator))
		})
		componentCount := countFiles(componentsDir, func(path string) bool {
			return strings.HasSuffix(path, ".html")
		})
		cacheCount := countFiles(config.OutputDir, func(path string) bool {
			return filepath.Base(path) == "index.html"
		})

		fmt.Println("🗂️  Routes Found:", len(site.Routes()))
		fmt.Println("📄 Templates Found:", templateCount)
		fmt.Println("📦 Components Found:", componentCount)
		fmt.Println("💾 Cached Pages:", cacheCount)

		return nil
	},
}

func countFiles(root string, match func(path string) bool) int {
	count := 0
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && match(path) {
			count++
		}
		return nil
	})
	return count
}
