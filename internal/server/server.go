package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChicagoDave/relcoords/pkg/geo"
	"github.com/ChicagoDave/relcoords/pkg/replay"
	"github.com/ChicagoDave/relcoords/pkg/spec"
	"github.com/ChicagoDave/relcoords/pkg/validation"
)

// maxBodyBytes bounds scenario documents posted to /api/check.
const maxBodyBytes = 1 << 20

// Server exposes the clamper and the replay harness over HTTP.
type Server struct {
	projectPath string
	addr        string
}

// New creates a server for the given project directory listening on addr.
// An empty projectPath disables the project endpoints.
func New(projectPath, addr string) *Server {
	return &Server{
		projectPath: projectPath,
		addr:        addr,
	}
}

// Addr returns the listen address, taking RELCOORDS_ADDR when port is 0.
func Addr(port int) string {
	if port == 0 {
		if addr := os.Getenv("RELCOORDS_ADDR"); addr != "" {
			return addr
		}
		port = 3000
	}
	return fmt.Sprintf(":%d", port)
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	log.Printf("relcoords server starting on http://localhost%s", s.addr)
	if s.projectPath != "" {
		log.Printf("Project: %s", s.projectPath)
	}
	return http.ListenAndServe(s.addr, s.Routes())
}

// Routes returns the router serving every endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/relative", s.handleRelative)
		r.Get("/scenario", s.handleScenario)
		r.Get("/check", s.handleCheckProject)
		r.Post("/check", s.handleCheckBody)
	})
	return r
}

type relativeResponse struct {
	X       int64       `json:"x"`
	Z       int64       `json:"z"`
	Clamped bool        `json:"clamped"`
	Point   geo.Point2D `json:"point"`
}

func (s *Server) handleRelative(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var vals [5]float64
	for i, name := range []string{"event_x", "event_z", "observer_x", "observer_z", "radius"} {
		raw := q.Get(name)
		if raw == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("missing parameter %s", name))
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("parameter %s: %v", name, err))
			return
		}
		vals[i] = v
	}

	event, observer, radius := geo.Pt(vals[0], vals[1]), geo.Pt(vals[2], vals[3]), vals[4]
	if err := geo.ValidateInputs(event, observer, radius); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := geo.Clamp(event, observer, radius)
	respondJSON(w, http.StatusOK, relativeResponse{
		X:       c.Pos.X,
		Z:       c.Pos.Z,
		Clamped: c.Clamped,
		Point:   c.Point,
	})
}

func (s *Server) handleScenario(w http.ResponseWriter, _ *http.Request) {
	scenario, report, ok := s.loadProject(w)
	if !ok {
		return
	}
	if !report.Valid {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": report})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"scenario":   scenario,
		"radius":     scenario.Radius(),
		"validation": report,
	})
}

func (s *Server) handleCheckProject(w http.ResponseWriter, _ *http.Request) {
	scenario, report, ok := s.loadProject(w)
	if !ok {
		return
	}
	respondCheck(w, scenario, report)
}

func (s *Server) handleCheckBody(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "scenario document too large")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	scenario, report := validation.ParseAndValidate(raw)
	respondCheck(w, scenario, report)
}

// loadProject reads and validates the project scenario. The scenario is nil
// when the report says it could not be parsed.
func (s *Server) loadProject(w http.ResponseWriter) (*spec.Scenario, *validation.Report, bool) {
	if s.projectPath == "" {
		respondError(w, http.StatusNotFound, "no project loaded")
		return nil, nil, false
	}
	raw, err := os.ReadFile(spec.ProjectFile(s.projectPath))
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("reading scenario file: %v", err))
		return nil, nil, false
	}
	scenario, report := validation.ParseAndValidate(raw)
	return scenario, report, true
}

// respondCheck replays a validated scenario. Invalid scenarios get 422 with
// the validation report.
func respondCheck(w http.ResponseWriter, scenario *spec.Scenario, report *validation.Report) {
	if !report.Valid {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": report})
		return
	}
	out := replay.Run(scenario)
	respondJSON(w, http.StatusOK, map[string]any{
		"validation": report,
		"outcome":    out,
	})
}

// respondJSON encodes data before writing the header; an encoding failure
// becomes a 500.
func respondJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"encoding response failed"}`+"\n")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
