// Package server exposes the project directory and entry submission
// over HTTP for local clients.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stint-sh/stint/internal/project"
	"github.com/stint-sh/stint/internal/tracker"
	"github.com/stint-sh/stint/internal/validate"
)

// maxRequestBodySize limits POST body sizes.
const maxRequestBodySize = 1 << 20 // 1 MB

// Server wires the tracker and project directory into an http.Handler.
type Server struct {
	tracker   *tracker.Tracker
	directory project.Directory
	staticDir string
}

// New creates a Server. staticDir may be empty; when set, the directory
// is served at the root path alongside the API.
func New(t *tracker.Tracker, dir project.Directory, staticDir string) *Server {
	return &Server{tracker: t, directory: dir, staticDir: staticDir}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", s.handleProjects)
	mux.HandleFunc("POST /api/entries", s.handleCreateEntry)
	if s.staticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(s.staticDir)))
	}
	return withSecurityHeaders(mux)
}

type errorResponse struct {
	Error   string                `json:"error"`
	Message string                `json:"message"`
	Fields  []validate.FieldError `json:"fields,omitempty"`
}

// handleProjects proxies the project directory. An unreachable
// directory is a 503 so clients can distinguish "retry later" from a
// genuinely empty project list.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.directory.Projects(r.Context())
	if err != nil {
		if errors.Is(err, project.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "directory_unavailable", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

type createEntryRequest struct {
	ProjectID       int      `json:"projectId"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime,omitempty"`
	EndTime         string   `json:"endTime,omitempty"`
	DurationMinutes *float64 `json:"durationMinutes,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be a JSON entry")
		return
	}

	created, err := s.tracker.Create(tracker.CreateInput{
		ProjectID:       req.ProjectID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		var verrs validate.Errors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "validation_failed",
				Message: verrs.Error(),
				Fields:  verrs,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
