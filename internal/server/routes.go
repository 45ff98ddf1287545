package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	// FastAPI-style trailing slash, with the bare path accepted too.
	mux.HandleFunc("POST /tasks/{$}", s.handleCreate)
	mux.HandleFunc("POST /tasks", s.handleCreate)
	mux.HandleFunc("GET /tasks/{$}", s.handleList)
	mux.HandleFunc("GET /tasks", s.handleList)

	mux.HandleFunc("GET /tasks/{id}", s.handleGet)
	mux.HandleFunc("PUT /tasks/{id}", s.handleReplace)
	mux.HandleFunc("PATCH /tasks/{id}", s.handlePatch)
	mux.HandleFunc("DELETE /tasks/{id}", s.handleDelete)

	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return chain(mux,
		requestID,
		s.logRequests,
		s.metrics.instrument,
	)
}

// chain wraps h so the first middleware is outermost.
func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
