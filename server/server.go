// Package server exposes the funding profiles over HTTP, as JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/etnz/funding"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Config holds the HTTP server configuration.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves the profiles of an analyzer.
type Server struct {
	analyzer *funding.Analyzer
	metrics  *Metrics
	reload   func() (*funding.Ledger, error)
	log      zerolog.Logger
	top      int
	router   *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(log zerolog.Logger) Option { return func(s *Server) { s.log = log } }

// WithReload enables POST /api/reload, loading the ledger with load.
func WithReload(load func() (*funding.Ledger, error)) Option {
	return func(s *Server) { s.reload = load }
}

// WithTop sets the default size of the rankings.
func WithTop(n int) Option { return func(s *Server) { s.top = n } }

// New creates a server of the analyzer. metrics should be the observer of the analyzer.
func New(a *funding.Analyzer, metrics *Metrics, opts ...Option) *Server {
	s := &Server{
		analyzer: a,
		metrics:  metrics,
		log:      zerolog.Nop(),
		top:      funding.DefaultTopN,
		router:   mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.events.Set(float64(a.Ledger().Len()))
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)

	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.health).Methods(http.MethodGet)
	api.HandleFunc("/overall", s.overall).Methods(http.MethodGet)
	api.HandleFunc("/startups", s.startups).Methods(http.MethodGet)
	api.HandleFunc("/startups/{name}", s.startup).Methods(http.MethodGet)
	api.HandleFunc("/investors", s.investors).Methods(http.MethodGet)
	api.HandleFunc("/investors/{query}", s.investor).Methods(http.MethodGet)
	api.HandleFunc("/aggregate", s.aggregate).Methods(http.MethodGet)
	if s.reload != nil {
		api.HandleFunc("/reload", s.reloadLedger).Methods(http.MethodPost)
	}

	s.router.NotFoundHandler = s.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusNotFound, errors.New("the requested endpoint does not exist"))
	}))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// ListenAndServe serves until ctx is done, then shuts the server down.
func (s *Server) ListenAndServe(ctx context.Context, cfg Config) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", cfg.Addr).Msg("starting HTTP server")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.log.Info().Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

type ctxKey struct{}

// requestID returns the id set by requestIDMiddleware.
func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

// requestIDMiddleware adds a unique request ID to each request.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestID(r) != "" {
			next.ServeHTTP(w, r)
			return
		}
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// requestLoggingMiddleware logs and measures every routed request.
func (s *Server) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		elapsed := time.Since(start)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(wrapper.statusCode)).Inc()
		s.metrics.duration.WithLabelValues(route).Observe(elapsed.Seconds())
		s.log.Info().
			Str("request_id", requestID(r)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", elapsed).
			Msg("request")
	})
}

// responseWrapper captures HTTP status codes for logging.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("encoding response")
	}
}

// errorResponse is the body of every error.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Str("request_id", requestID(r)).Msg("request failed")
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: requestID(r)})
}
