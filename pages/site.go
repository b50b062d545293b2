package pages

import "github.com/go-barry/showcase/core"

const (
	HomeTemplate      = "pages/home.html"
	AboutTemplate     = "pages/about.html"
	PortfolioTemplate = "pages/portfolio.html"
	ContactTemplate   = "pages/contact.html"
)

type Options struct {
	FrameworkName string
	Version       Version
}

// Site carries the injected framework metadata the handlers report. It holds
// no per-request state.
type Site struct {
	frameworkName string
	version       Version
}

func New(opts Options) *Site {
	name := opts.FrameworkName
	if name == "" {
		name = DefaultFrameworkName
	}
	return &Site{frameworkName: name, version: opts.Version}
}

func (s *Site) FrameworkName() string { return s.frameworkName }

func (s *Site) Version() Version { return s.version }

func (s *Site) Routes() []core.Route {
	return []core.Route{
		{Path: "/", Name: "home", View: s.Home, Cacheable: true},
		{Path: "/about/", Name: "about", View: s.About, Cacheable: true},
		{Path: "/portfolio/", Name: "portfolio", View: s.Portfolio, Cacheable: true},
		{Path: "/contact/", Name: "contact", View: s.Contact},
	}
}
