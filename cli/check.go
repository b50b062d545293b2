package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-barry/showcase"
	"github.com/go-barry/showcase/core"
	"github.com/urfave/cli/v2"
)

// CheckCommand parses every routed page with its layout and components, then
// executes it against the contexts its handler builds for a GET and for a
// sample form POST.
var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate page templates, components, and layouts",
	Flags: []cli.Flag{configFlag()},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))

		site, err := showcase.NewSite(config)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		renderer := core.NewRenderer(*config, "dev")
		var failed bool

		for _, route := range site.Routes() {
			if err := checkRoute(c.Context, renderer, route); err != nil {
				failed = true
				fmt.Printf("❌ %s → %v\n", route.Path, err)
				continue
			}
			fmt.Printf("✅ %s\n", route.Path)
		}

		if renderer.Exists(core.NotFoundTemplate) {
			data := map[string]any{"Path": "/missing/"}
			if err := checkTemplate(c.Context, renderer, core.NotFoundTemplate, data); err != nil {
				failed = true
				fmt.Printf("❌ %s → %v\n", core.NotFoundTemplate, err)
			} else {
				fmt.Printf("✅ %s\n", core.NotFoundTemplate)
			}
		}

		if failed {
			return cli.Exit("some templates failed to compile", 1)
		}

		fmt.Println("✅ All templates validated successfully.")
		return nil
	},
}

var sampleForm = url.Values{
	"name":       {"Check"},
	"email":      {"check@example.com"},
	"subject":    {"general"},
	"message":    {"Template check message"},
	"newsletter": {"on"},
}

func checkRoute(ctx context.Context, renderer *core.Renderer, route core.Route) error {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		var body io.Reader
		if method == http.MethodPost {
			body = strings.NewReader(sampleForm.Encode())
		}

		req, err := http.NewRequestWithContext(ctx, method, route.Path, body)
		if err != nil {
			return err
		}
		if method == http.MethodPost {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}

		view, err := route.View(req)
		if err != nil {
			return fmt.Errorf("view error: %w", err)
		}
		if err := checkTemplate(ctx, renderer, view.Template, view.Data); err != nil {
			return err
		}
	}
	return nil
}

func checkTemplate(ctx context.Context, renderer *core.Renderer, name string, data any) error {
	if _, err := renderer.Lookup(name); err != nil {
		if errors.Is(err, core.ErrTemplateNotFound) {
			return fmt.Errorf("missing template %s", name)
		}
		return fmt.Errorf("parse error: %w", err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(ctx, &buf, name, data); err != nil {
		return fmt.Errorf("exec error: %w", err)
	}
	return nil
}
