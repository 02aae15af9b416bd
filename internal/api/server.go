// Package api serves the cabling engine over HTTP.
//
// Routes:
//
//	GET  /healthz        liveness and build version
//	POST /v1/cabling     cable schedule of one wall
//	POST /v1/bom         bill of materials of a whole project
//	POST /v1/diagram     diagram of one wall (?format=svg|dot, ?power=true)
//
// Request bodies are JSON. Errors come back as
// {"error": {"code": "...", "message": "..."}} with a 4xx or 5xx status.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wallcable/pkg/observability"
	"github.com/matzehuels/wallcable/pkg/pipeline"
)

// maxBodyBytes bounds request bodies. A large project is a few hundred KB.
const maxBodyBytes = 4 << 20

// Server handles API requests. It is safe for concurrent use.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server that computes through runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/cabling", s.handleCabling)
		r.Post("/bom", s.handleBOM)
		r.Post("/diagram", s.handleDiagram)
	})
	return r
}

// observe logs each request and reports it to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, route)
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))

		s.logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
			"id", middleware.GetReqID(r.Context()))
	})
}
