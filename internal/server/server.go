package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/VentureBot_Go/docs"
	"github.com/osse101/VentureBot_Go/internal/config"
	"github.com/osse101/VentureBot_Go/internal/database"
	"github.com/osse101/VentureBot_Go/internal/handler"
	"github.com/osse101/VentureBot_Go/internal/logger"
	"github.com/osse101/VentureBot_Go/internal/metrics"
	"github.com/osse101/VentureBot_Go/internal/repository"
	"github.com/osse101/VentureBot_Go/internal/sse"
	"github.com/osse101/VentureBot_Go/internal/venture"
)

// Dependencies are the services the HTTP surface routes to. DBPool is nil
// when the in-memory store is used.
type Dependencies struct {
	DBPool   database.Pool
	Ventures venture.Service
	Turns    handler.TurnSubmitter
	History  handler.HistoryReader
	Roster   repository.Roster
	Presence handler.ParticipantLister
	Hub      *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(cfg *config.Config, deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// Outermost first
	detector := NewSuspiciousActivityDetector(DefaultRateWindow, DefaultMaxRequests)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion(cfg.ServiceName, cfg.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	ventures := handler.NewVentureHandler(deps.Ventures)
	roster := handler.NewRosterHandler(deps.Roster, deps.Presence)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/turns", handler.HandleSubmitTurn(deps.Turns))

		r.Route("/ventures/{"+handler.URLParamFacilityID+"}", func(r chi.Router) {
			r.Get("/", ventures.HandleGet)
			r.Put("/config", ventures.HandleUpdateConfig)
			r.Post("/boons/purchase", ventures.HandlePurchaseBoon)
			r.Post("/treasury/claim", ventures.HandleClaimTreasury)
			r.Post("/reset", ventures.HandleReset)
			r.Get("/history", handler.HandleGetHistory(deps.History))
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/stream", sse.Handler(deps.Hub))
			r.Post("/responses", handler.HandleSessionResponse(deps.Hub))
			r.Get("/participants", roster.HandleListParticipants)
			r.Put("/participants/{"+handler.URLParamParticipantID+"}", roster.HandleUpsertParticipant)
		})

		r.Route("/actors/{"+handler.URLParamActorID+"}", func(r chi.Router) {
			r.Get("/owners", roster.HandleGetOwners)
			r.Put("/owners", roster.HandleSetOwners)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the session stream working behind the logger.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	return slices.ContainsFunc(quietPaths, func(prefix string) bool {
		return strings.HasPrefix(path, prefix)
	})
}

// redactHeaders copies h with secret values replaced
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
