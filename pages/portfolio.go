package pages

import (
	"net/http"

	"github.com/go-barry/showcase/core"
)

type PortfolioContext struct {
	ProjectCount int `json:"project_count"`
}

func (s *Site) Portfolio(_ *http.Request) (core.View, error) {
	return core.View{
		Template: PortfolioTemplate,
		Data:     PortfolioContext{ProjectCount: 9},
	}, nil
}
