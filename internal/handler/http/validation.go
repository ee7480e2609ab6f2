package http

import (
	"errors"
	"mime"
	"net/http"

	"textdigest/internal/handler/http/respond"
)

// maxURILength bounds the request path plus query string.
const maxURILength = 2048

// InputValidation rejects requests with an overlong URI (414) and bodies
// sent with a content type other than application/json (415).
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.RequestURI()) > maxURILength {
				respond.SafeError(w, http.StatusRequestURITooLong, errors.New("URI too long"))
				return
			}

			if hasBody(r) && !isJSON(r.Header.Get("Content-Type")) {
				respond.SafeError(w, http.StatusUnsupportedMediaType,
					errors.New("content type must be application/json"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return r.ContentLength != 0
	}
	return false
}

// isJSON accepts application/json with optional parameters such as charset.
// A missing content type is treated as JSON.
func isJSON(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
