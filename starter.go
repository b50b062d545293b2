package showcase

import (
	"embed"
	"io/fs"
)

//go:embed showcase.config.yml all:templates public
var starterFS embed.FS

// Starter is the demo site `showcase init` writes into a new project: the
// config file plus the templates and public trees.
func Starter() fs.FS {
	return starterFS
}
