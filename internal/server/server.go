// Package server exposes the pipeline over HTTP.
//
// Routes:
//
//	GET    /health
//	POST   /solve                   simplex solve of a problem document
//	POST   /graph                   graphical solve of a two-variable document
//	POST   /rationalize             continued-fraction approximation
//	POST   /sessions                start a step session
//	GET    /sessions/{id}           current snapshot
//	POST   /sessions/{id}/next      step forward, optionally {"row": r, "col": c}
//	POST   /sessions/{id}/previous  step back
//	POST   /sessions/{id}/reset     start over
//	GET    /sessions/{id}/solution  outcome once stopped
//	DELETE /sessions/{id}
//
// Problem documents use the JSON shape of converters.Document; query
// parameters field, goal and form override the document entries.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/graphical"
	"github.com/katalvlaran/lplab/internal/config"
	"github.com/katalvlaran/lplab/internal/pipeline"
	"github.com/katalvlaran/lplab/lp"
	"github.com/katalvlaran/lplab/simplex"
)

const (
	maxBodyBytes = 1 << 20
	sessionTTL   = 30 * time.Minute
)

// Server holds the runner and the session table.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	sessions *store
}

// New returns a Server for cfg; a nil logger discards.
func New(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Server{
		runner:   pipeline.NewRunner(cfg, logger),
		logger:   logger,
		sessions: newStore(sessionTTL),
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.health)
	r.Post("/solve", s.solve)
	r.Post("/graph", s.graph)
	r.Post("/rationalize", s.rationalize)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.sessionState)
			r.Delete("/", s.deleteSession)
			r.Post("/next", s.sessionNext)
			r.Post("/previous", s.sessionPrevious)
			r.Post("/reset", s.sessionReset)
			r.Get("/solution", s.sessionSolution)
		})
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"id", middleware.GetReqID(r.Context()),
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.len(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

// readRequest decodes a problem document and applies the query overrides.
func (s *Server) readRequest(w http.ResponseWriter, r *http.Request) (pipeline.Request, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	doc, err := converters.Decode(r.Body, converters.JSON)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return pipeline.Request{}, false
	}
	q := r.URL.Query()
	req, err := pipeline.NewRequest(s.runner.Config(), doc, pipeline.Overrides{
		Field: q.Get("field"),
		Goal:  q.Get("goal"),
		Form:  q.Get("form"),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return pipeline.Request{}, false
	}
	req.Verify = q.Get("verify") == "true"

	return req, true
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	req, ok := s.readRequest(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Solve(r.Context(), req)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	req, ok := s.readRequest(w, r)
	if !ok {
		return
	}
	res, err := s.runner.Graph(r.Context(), req)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type rationalizeRequest struct {
	X              *float64 `json:"x"`
	Epsilon        float64  `json:"epsilon"`
	MaxIterations  int      `json:"max_iterations"`
	MaxDenominator int64    `json:"max_denominator"`
}

func (s *Server) rationalize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var body rationalizeRequest
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.X == nil {
		writeError(w, http.StatusBadRequest, errors.New("x is required"))
		return
	}
	res, err := s.runner.Rationalize(*body.X, field.Rationalizer{
		Eps:            body.Epsilon,
		MaxIterations:  body.MaxIterations,
		MaxDenominator: body.MaxDenominator,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type sessionResponse struct {
	ID    uuid.UUID          `json:"id"`
	State pipeline.StateView `json:"state"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	req, ok := s.readRequest(w, r)
	if !ok {
		return
	}
	sess, err := s.runner.NewSession(req)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	st, err := sess.State()
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	id := s.sessions.add(sess)
	s.logger.Debug("session created", "id", id)
	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, State: st})
}

// onSession resolves {id} and runs op under the session lock.
func (s *Server) onSession(w http.ResponseWriter, r *http.Request, op func(pipeline.Session) (any, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("session id: %w", err))
		return
	}
	var out any
	err = s.sessions.with(id, func(sess pipeline.Session) error {
		var err error
		out, err = op(sess)
		return err
	})
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponseOf(id, out))
}

func sessionResponseOf(id uuid.UUID, out any) any {
	if st, ok := out.(pipeline.StateView); ok {
		return sessionResponse{ID: id, State: st}
	}

	return out
}

func (s *Server) sessionState(w http.ResponseWriter, r *http.Request) {
	s.onSession(w, r, func(sess pipeline.Session) (any, error) { return sess.State() })
}

func (s *Server) sessionNext(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var manual *simplex.Pivot
	if r.ContentLength != 0 {
		var p simplex.Pivot
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, err)
			return
		} else if err == nil {
			manual = &p
		}
	}
	s.onSession(w, r, func(sess pipeline.Session) (any, error) { return sess.Next(manual) })
}

func (s *Server) sessionPrevious(w http.ResponseWriter, r *http.Request) {
	s.onSession(w, r, func(sess pipeline.Session) (any, error) { return sess.Previous() })
}

func (s *Server) sessionReset(w http.ResponseWriter, r *http.Request) {
	s.onSession(w, r, func(sess pipeline.Session) (any, error) { return sess.Reset() })
}

func (s *Server) sessionSolution(w http.ResponseWriter, r *http.Request) {
	s.onSession(w, r, func(sess pipeline.Session) (any, error) { return sess.Solution() })
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("session id: %w", err))
		return
	}
	if !s.sessions.remove(id) {
		writeError(w, http.StatusNotFound, ErrSessionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, simplex.ErrOutOfRange), errors.Is(err, simplex.ErrNoSolution):
		return http.StatusConflict
	case errors.Is(err, lp.ErrInvalidArgument),
		errors.Is(err, converters.ErrInvalidDocument),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, simplex.ErrPivotOutOfRange),
		errors.Is(err, simplex.ErrZeroPivot),
		errors.Is(err, simplex.ErrInvalidPivot),
		errors.Is(err, graphical.ErrNotTwoDimensional):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
