package pages

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-barry/showcase/core"
)

const maxFormMemory = 1 << 20

const (
	newsletterYes = "Yes"
	newsletterNo  = "No"
)

// Submission echoes a posted contact form back to the page. Nothing is
// validated or stored.
type Submission struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Newsletter string `json:"newsletter"`
}

type ContactContext struct {
	FormSubmitted bool        `json:"form_submitted"`
	SubmittedData *Submission `json:"submitted_data"`
}

// Contact shows the empty form on a fetch and echoes the fields back on a
// POST. Missing fields become empty strings; the newsletter checkbox is
// "Yes" when sent with any non-empty value.
func (s *Site) Contact(r *http.Request) (core.View, error) {
	var ctx ContactContext

	if r.Method == http.MethodPost {
		form := postForm(r)
		ctx = ContactContext{
			FormSubmitted: true,
			SubmittedData: &Submission{
				Name:       lastValue(form, "name"),
				Email:      lastValue(form, "email"),
				Subject:    lastValue(form, "subject"),
				Message:    lastValue(form, "message"),
				Newsletter: yesNo(lastValue(form, "newsletter") != ""),
			},
		}
	}

	return core.View{Template: ContactTemplate, Data: ctx}, nil
}

// postForm returns the decoded POST body, urlencoded or multipart. Pairs that
// fail to decode are dropped and the rest are kept; a broken multipart body
// reads as an empty form.
func postForm(r *http.Request) url.Values {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return url.Values{}
	}
	return r.PostForm
}

func lastValue(form url.Values, key string) string {
	vs := form[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}

func yesNo(b bool) string {
	if b {
		return newsletterYes
	}
	return newsletterNo
}
