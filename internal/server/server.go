// Package server exposes profiles over an HTTP JSON API for the dashboard.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/singleflight"

	"github.com/naka-gawa/ghprofile/internal/cache"
	"github.com/naka-gawa/ghprofile/internal/domain"
	"github.com/naka-gawa/ghprofile/internal/usecase"
)

// ProfileService is the part of the use case layer the API needs.
type ProfileService interface {
	Aggregate(ctx context.Context, login string) (*domain.Profile, error)
	Search(ctx context.Context, query string) (*usecase.SearchResult, error)
}

// Server serves profile data over HTTP.
type Server struct {
	service  ProfileService
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
	group    singleflight.Group
	router   chi.Router
}

// New wires the routes. A nil cache disables caching.
func New(service ProfileService, c cache.Cache, cacheTTL time.Duration, logger *log.Logger) *Server {
	if c == nil {
		c = cache.Null{}
	}
	s := &Server{
		service:  service,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Route("/users/{login}", func(r chi.Router) {
			r.Get("/", s.handleProfile)
			r.Get("/repos", s.handleRepos)
			r.Get("/badges", s.handleBadges)
		})
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the API on addr until ctx is canceled, then drains
// in-flight requests for at most shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// profile returns the cached profile or loads it once for all concurrent callers.
func (s *Server) profile(ctx context.Context, login string) (*domain.Profile, error) {
	key := "profile:" + strings.ToLower(login)

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache read failed", "key", key, "err", err)
	} else if ok {
		var p domain.Profile
		if err := json.Unmarshal(data, &p); err == nil {
			s.logger.Debug("cache hit", "key", key)
			return &p, nil
		}
		_ = s.cache.Delete(ctx, key)
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		// Detached from the first caller so its cancellation does not fail the others.
		loadCtx := context.WithoutCancel(ctx)
		p, err := s.service.Aggregate(loadCtx, login)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(p); err == nil {
			if err := s.cache.Set(loadCtx, key, data, s.cacheTTL); err != nil {
				s.logger.Warn("cache write failed", "key", key, "err", err)
			}
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("shared in-flight profile load", "key", key)
	}
	return v.(*domain.Profile), nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
