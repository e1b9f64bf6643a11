package api

import (
	"net/http"
)

// NewRouter wires the endpoints and middleware into a single handler.
// Only exact method and path matches are served; everything else is a 404.
func NewRouter(deps Dependencies) http.Handler {
	h := NewHandler(deps)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.HealthHandler)
	mux.HandleFunc("POST /api/contact", h.ContactHandler)
	mux.HandleFunc("POST /api/suggestion", h.SuggestionHandler)
	mux.HandleFunc("POST /api/visitor", h.VisitorHandler)

	routes := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// ServeMux answers a method mismatch with a plain-text 405; we want the JSON 404
		if _, pattern := mux.Handler(r); pattern == "" {
			NotFoundHandler(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	var handler http.Handler = routes
	handler = RecoverMiddleware(h.logger)(handler)
	handler = CORSMiddleware(deps.CORSOrigin)(handler)
	handler = RequestLogMiddleware(h.logger)(handler)
	return handler
}
