package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naka-gawa/ghprofile/internal/domain"
	"github.com/naka-gawa/ghprofile/internal/gateway"
	"github.com/naka-gawa/ghprofile/internal/usecase"
)

// reposResponse is the payload of the repository listing endpoint.
type reposResponse struct {
	Repositories []domain.Repository `json:"repositories"`
	Counts       usecase.TabCounts   `json:"counts"`
	Languages    []string            `json:"languages"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r.Context(), chi.URLParam(r, "login"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRepos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := usecase.RepoFilter{
		Tab:      usecase.Tab(q.Get("tab")),
		Query:    q.Get("q"),
		Language: q.Get("language"),
		Sort:     usecase.SortOrder(q.Get("sort")),
	}
	if err := filter.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	p, err := s.profile(r.Context(), chi.URLParam(r, "login"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reposResponse{
		Repositories: filter.Apply(p.Repositories),
		Counts:       usecase.CountTabs(p.Repositories),
		Languages:    usecase.Languages(p.Repositories),
	})
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile(r.Context(), chi.URLParam(r, "login"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.Badges)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeError maps use case and gateway errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "an unexpected error occurred"

	var apiErr *gateway.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
		message = apiErr.Message
	case errors.Is(err, usecase.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
