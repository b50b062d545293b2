package pages

import (
	"net/http"

	"github.com/go-barry/showcase/core"
)

type AboutContext struct {
	DjangoVersion string `json:"django_version"`
	TemplateCount int    `json:"template_count"`
}

func (s *Site) About(_ *http.Request) (core.View, error) {
	return core.View{
		Template: AboutTemplate,
		Data: AboutContext{
			DjangoVersion: s.version.String(),
			TemplateCount: 5,
		},
	}, nil
}
