package pages

import (
	"net/http"

	"github.com/go-barry/showcase/core"
)

type HomeContext struct {
	FrameworkName  string  `json:"framework_name"`
	DjangoVersion  Version `json:"django_version"`
	TotalTemplates int     `json:"total_templates"`
	LinesOfCode    int     `json:"lines_of_code"`
	FeaturesCount  int     `json:"features_count"`
}

func (s *Site) Home(_ *http.Request) (core.View, error) {
	return core.View{
		Template: HomeTemplate,
		Data: HomeContext{
			FrameworkName:  s.frameworkName,
			DjangoVersion:  s.version,
			TotalTemplates: 5,
			LinesOfCode:    500,
			FeaturesCount:  10,
		},
	}, nil
}
