package core

import (
	"bufio"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	layoutTemplate = "layout"
	componentsDir  = "components"
	layoutPrefix   = "<!-- layout:"
	layoutSuffix   = "-->"

	// layoutScanLines bounds how far into a page the layout directive is
	// looked for.
	layoutScanLines = 5
)

var tracer = otel.Tracer("github.com/go-barry/showcase/core")

// Renderer turns a template identifier and its data into HTML. Identifiers
// are slash-separated paths relative to the templates directory. A page that
// starts with a layout directive is executed through that layout's "layout"
// template; every file in components/ is parsed alongside it.
type Renderer struct {
	dir     string
	funcs   template.FuncMap
	caching bool
	cache   sync.Map
}

func NewRenderer(config Config, env string) *Renderer {
	return &Renderer{
		dir:     config.TemplatesDir,
		funcs:   TemplateFuncs(env, config.PublicDir, config.OutputDir),
		caching: env == "prod",
	}
}

func (r *Renderer) Render(ctx context.Context, w io.Writer, name string, data any) error {
	_, span := tracer.Start(ctx, "core.Render", trace.WithAttributes(
		attribute.String("showcase.template", name),
	))
	defer span.End()

	err := r.render(w, name, data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *Renderer) render(w io.Writer, name string, data any) error {
	tmpl, err := r.Lookup(name)
	if err != nil {
		return err
	}

	if tmpl.Lookup(layoutTemplate) != nil {
		err = tmpl.ExecuteTemplate(w, layoutTemplate, data)
	} else {
		err = tmpl.Execute(w, data)
	}
	if err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	return nil
}

// Lookup returns the parsed template set for name. In prod the result is
// kept until Reset is called.
func (r *Renderer) Lookup(name string) (*template.Template, error) {
	if r.caching {
		if cached, ok := r.cache.Load(name); ok {
			return cached.(*template.Template), nil
		}
	}

	tmpl, err := r.parse(name)
	if err != nil {
		return nil, err
	}

	if r.caching {
		r.cache.Store(name, tmpl)
	}
	return tmpl, nil
}

func (r *Renderer) parse(name string) (*template.Template, error) {
	pagePath := r.path(name)
	if _, err := os.Stat(pagePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	files := []string{pagePath}
	files = append(files, r.components()...)
	if layout := getLayoutPath(pagePath); layout != "" {
		files = append([]string{r.path(layout)}, files...)
	}

	tmpl, err := template.New(filepath.Base(files[0])).Funcs(r.funcs).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return tmpl, nil
}

func (r *Renderer) Exists(name string) bool {
	info, err := os.Stat(r.path(name))
	return err == nil && !info.IsDir()
}

// Reset drops every cached template set.
func (r *Renderer) Reset() {
	r.cache.Range(func(key, _ any) bool {
		r.cache.Delete(key)
		return true
	})
}

func (r *Renderer) path(name string) string {
	return filepath.Join(r.dir, filepath.FromSlash(name))
}

func (r *Renderer) components() []string {
	matches, _ := filepath.Glob(filepath.Join(r.dir, componentsDir, "*.html"))
	return matches
}

// getLayoutPath reads the `<!-- layout: file.html -->` directive from the
// first lines of a page. The returned path is relative to the templates dir.
func getLayoutPath(htmlPath string) string {
	f, err := os.Open(htmlPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; i < layoutScanLines && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, layoutPrefix) && strings.HasSuffix(line, layoutSuffix) {
			return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, layoutPrefix), layoutSuffix))
		}
	}
	return ""
}
