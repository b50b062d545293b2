package core

import (
	"net/http"

	"github.com/segmentio/encoding/json"
)

const apiPrefix = "/api/"

type apiError struct {
	Error string `json:"error"`
}

// serveAPI answers /api/<name> with the JSON encoding of the named route's
// view data, bypassing templates entirely.
func (r *Router) serveAPI(w http.ResponseWriter, req *http.Request, name string) {
	route, ok := r.byName[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, apiError{Error: "not found"})
		return
	}

	view, err := r.buildView(w, req, route)
	if err != nil {
		if IsNotFoundError(err) {
			writeJSON(w, http.StatusNotFound, apiError{Error: "not found"})
			return
		}
		Logger(req.Context()).Error("view failed", "route", route.Path, "err", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "server error"})
		return
	}

	writeJSON(w, http.StatusOK, view.Data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
