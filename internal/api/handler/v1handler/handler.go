// Package v1handler implements the v1 REST endpoints of the gap analysis
// service on top of the engine's Analyzer interface.
package v1handler

import (
	"encoding/json"
	"errors"
	"linkgap/internal/gap"
	"linkgap/pkg/logger"
	"linkgap/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps contains the dependencies required by the v1 handlers.
type Deps struct {
	// Analyzer runs and serves gap analyses.
	Analyzer gap.Analyzer
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on the given mux. The sec middleware is
// applied by the caller around the whole mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/gap-analyses", h.CreateAnalysis)
	mux.HandleFunc("GET /v1/gap-analyses/{property}", h.GetAnalysis)
}

// writeJSON marshals v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"INTERNAL"}`, http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError maps an engine error to an HTTP status and a small structured
// payload carrying the semantic kind and a human-readable message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, gap.ErrUnsupportedIdentifier), errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, gap.ErrNoCompetitors):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, gap.ErrTargetUnreachable), errors.Is(err, serrors.ErrUpstream):
		status = http.StatusBadGateway
	case errors.Is(err, serrors.ErrTimeout):
		status = http.StatusGatewayTimeout
	}

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	}

	code := "INTERNAL"
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Kind() != nil {
		code = serr.Kind().Error()
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("error")
	e.Str(code)
	e.FieldStart("message")
	e.Str(err.Error())
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
