// Package server implements the HTTP surface of the SCALR minimization
// service.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/copyleftdev/SCALR/internal/config"
	apperrors "github.com/copyleftdev/SCALR/internal/errors"
	"github.com/copyleftdev/SCALR/internal/logging"
	"github.com/copyleftdev/SCALR/internal/optimization"
	"github.com/copyleftdev/SCALR/internal/optimization/univariate"
)

// Method names accepted by the minimize endpoint.
const (
	MethodBounded = "bounded"
	MethodBrent   = "brent"
	MethodGolden  = "golden"
)

// Methods lists the available minimization methods.
var Methods = []string{MethodBounded, MethodBrent, MethodGolden}

// Logger defines the logging interface used by the server. It allows us
// to be flexible with the logging implementation.
type Logger interface {
	Debug(msg string, fields ...map[string]interface{})
	Info(msg string, fields ...map[string]interface{})
	Warn(msg string, fields ...map[string]interface{})
	Error(msg string, fields ...map[string]interface{})
	Fatal(msg string, fields ...map[string]interface{})
	WithFields(fields map[string]interface{}) *logging.Logger
}

// Server exposes the scalar minimizers over HTTP. Minimization runs are
// synchronous: the whole computation completes before the response is
// written, and no state outlives the request.
type Server struct {
	cfg     *config.Config
	logger  Logger
	metrics *Metrics
}

// NewServer creates a server with the given config, logger, and metrics.
func NewServer(cfg *config.Config, logger Logger, metrics *Metrics) *Server {
	return &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// RegisterRoutes mounts the API routes on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/minimize", s.handleMinimize)
		r.Get("/methods", s.handleMethods)
	})
}

// minimizeRequest is the body of POST /api/v1/minimize.
type minimizeRequest struct {
	// Method selects the minimizer: bounded, brent, or golden.
	Method string `json:"method"`
	// Objective is the polynomial to minimize.
	Objective optimization.Polynomial `json:"objective"`
	// Bounds is the closed interval [lower, upper]; required for the
	// bounded method, rejected for the others.
	Bounds []float64 `json:"bounds,omitempty"`
	// Xtol is the optional displacement tolerance for brent and golden.
	Xtol *float64 `json:"xtol,omitempty"`
	// MaxIter is the iteration budget; the configured default applies
	// when it is absent or zero.
	MaxIter int `json:"maxiter,omitempty"`
}

// minimizeResponse is the body of a successful minimize call.
type minimizeResponse struct {
	Method string               `json:"method"`
	Result *optimization.Result `json:"result"`
}

// handleMinimize runs one minimization and answers with its Result.
func (s *Server) handleMinimize(w http.ResponseWriter, r *http.Request) {
	var req minimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	res, err := s.run(&req)
	if err != nil {
		switch {
		case errors.Is(err, optimization.ErrInvalidArgument):
			s.metrics.observeRequest(req.Method, "invalid_argument")
			s.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, optimization.ErrMaxIterExceeded):
			s.metrics.observeRequest(req.Method, "maxiter_exceeded")
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			wrapped := apperrors.Wrap(err, "minimize failed").WithComponent("server")
			s.logger.Error("minimize failed", map[string]interface{}{
				"method": req.Method,
				"error":  wrapped.Error(),
				"stack":  wrapped.StackTrace(),
			})
			s.metrics.observeRequest(req.Method, "internal_error")
			s.respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.metrics.observeRequest(req.Method, "ok")
	s.metrics.observeRun(req.Method, res.Nfev)
	s.logger.Debug("minimize finished", map[string]interface{}{
		"method":  req.Method,
		"x":       res.X,
		"fun":     res.Fun,
		"nfev":    res.Nfev,
		"success": res.Success,
	})

	s.respondJSON(w, http.StatusOK, minimizeResponse{
		Method: req.Method,
		Result: res,
	})
}

// run validates the request and dispatches it to the selected method.
func (s *Server) run(req *minimizeRequest) (*optimization.Result, error) {
	if len(req.Objective.Coefficients) == 0 {
		return nil, optimization.NewArgumentError("objective coefficients are required")
	}

	maxiter := req.MaxIter
	if maxiter <= 0 {
		maxiter = s.cfg.Optimization.DefaultMaxIter
	}

	var xtol optimization.Tolerance
	if req.Xtol != nil {
		xtol = optimization.Tol(*req.Xtol)
	}

	switch req.Method {
	case MethodBounded:
		if req.Xtol != nil {
			return nil, optimization.NewArgumentError("xtol is not supported by the bounded method")
		}
		if len(req.Bounds) != 2 {
			return nil, optimization.NewArgumentError("the bounded method requires bounds of the form [lower, upper]")
		}
		return univariate.Bounded(req.Objective, req.Bounds[0], req.Bounds[1], maxiter)
	case MethodBrent:
		if len(req.Bounds) != 0 {
			return nil, optimization.NewArgumentError("bounds are only supported by the bounded method")
		}
		return univariate.Brent(req.Objective, xtol, maxiter)
	case MethodGolden:
		if len(req.Bounds) != 0 {
			return nil, optimization.NewArgumentError("bounds are only supported by the bounded method")
		}
		return univariate.Golden(req.Objective, xtol, maxiter)
	default:
		return nil, optimization.NewArgumentError(fmt.Sprintf("unknown method %q", req.Method))
	}
}

// handleMethods lists the available minimization methods.
func (s *Server) handleMethods(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"methods": Methods,
	})
}

// respondJSON writes v as a JSON response with the given status.
func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", map[string]interface{}{"error": err.Error()})
	}
}

// respondError writes a JSON error response with the given status.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
