package middleware

import (
	"net/http"
	"strings"

	"github.com/snackradar/snackradar/internal/api/models"
)

// ContentTypeJSON defaults the response Content-Type to application/json.
// Handlers that write other media types (GPX exports, problem+json) set the
// header themselves before this default applies.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

// RequireJSON rejects body-carrying requests whose Content-Type is not
// application/json. Requests without a Content-Type header pass through; the
// decoder will reject them if the body is not valid JSON anyway.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				models.NewProblem(models.ProblemTypeValidation, "Unsupported media type",
					http.StatusUnsupportedMediaType, GetRequestID(r.Context())).
					WithDetail("Content-Type must be application/json").
					WithInstance(r.URL.Path).
					Write(w)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
